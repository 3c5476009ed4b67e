package services

import (
	"context"
	"errors"
	"testing"

	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	user  *tables.User
	err   error
	calls int
}

func (ff *fakeFetcher) FetchSession(ctx context.Context) (*tables.User, error) {
	ff.calls++
	return ff.user, ff.err
}

type fakeRoles struct {
	admins map[uuid.UUID]bool
	calls  int
}

func (fr *fakeRoles) IsAdmin(ctx context.Context, userID uuid.UUID) bool {
	fr.calls++
	return fr.admins[userID]
}

func newTestGate(fetcher *fakeFetcher, roles *fakeRoles) *SessionGate {
	return NewSessionGate(gecho.NewDefaultLogger(), fetcher, roles)
}

func TestSessionGate_StartsLoading(t *testing.T) {
	gate := newTestGate(&fakeFetcher{}, &fakeRoles{})

	snap := gate.Snapshot()
	assert.True(t, snap.Loading)
	assert.Nil(t, snap.User)
	assert.False(t, snap.IsAdmin)
}

func TestSessionGate_SignedOutSkipsRoleLookup(t *testing.T) {
	fetcher := &fakeFetcher{}
	roles := &fakeRoles{}
	gate := newTestGate(fetcher, roles)

	require.NoError(t, gate.Initialize(context.Background()))

	snap := gate.Snapshot()
	assert.False(t, snap.Loading)
	assert.Nil(t, snap.User)
	assert.False(t, snap.IsAdmin)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 0, roles.calls, "no session must mean no role lookup")
}

func TestSessionGate_AdminResolvedOnInitialize(t *testing.T) {
	user := &tables.User{Id: uuid.New(), Email: "admin@dxbdubi.com"}
	fetcher := &fakeFetcher{user: user}
	roles := &fakeRoles{admins: map[uuid.UUID]bool{user.Id: true}}
	gate := newTestGate(fetcher, roles)

	require.NoError(t, gate.Initialize(context.Background()))

	snap := gate.Snapshot()
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.User)
	assert.Equal(t, user.Id, snap.User.Id)
	assert.True(t, snap.IsAdmin)
}

func TestSessionGate_NonAdminUser(t *testing.T) {
	user := &tables.User{Id: uuid.New(), Email: "shopper@example.com"}
	fetcher := &fakeFetcher{user: user}
	roles := &fakeRoles{}
	gate := newTestGate(fetcher, roles)

	require.NoError(t, gate.Initialize(context.Background()))

	snap := gate.Snapshot()
	assert.False(t, snap.IsAdmin)
	assert.Equal(t, 1, roles.calls)
}

func TestSessionGate_FetchFailureResolvesSignedOut(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("network down")}
	roles := &fakeRoles{}
	gate := newTestGate(fetcher, roles)

	require.NoError(t, gate.Initialize(context.Background()))

	snap := gate.Snapshot()
	assert.False(t, snap.Loading, "a failed fetch must still end the loading state")
	assert.Nil(t, snap.User)
	assert.False(t, snap.IsAdmin)
	assert.Equal(t, 0, roles.calls)
}

func TestSessionGate_InitializeIsSingleShot(t *testing.T) {
	fetcher := &fakeFetcher{}
	gate := newTestGate(fetcher, &fakeRoles{})

	require.NoError(t, gate.Initialize(context.Background()))
	require.NoError(t, gate.Initialize(context.Background()))

	assert.Equal(t, 1, fetcher.calls)
}

func TestSessionGate_SubscribeReceivesCurrentThenUpdates(t *testing.T) {
	user := &tables.User{Id: uuid.New(), Email: "admin@dxbdubi.com"}
	roles := &fakeRoles{admins: map[uuid.UUID]bool{user.Id: true}}
	gate := newTestGate(&fakeFetcher{}, roles)

	require.NoError(t, gate.Initialize(context.Background()))

	var seen []SessionSnapshot
	unsubscribe := gate.Subscribe(func(s SessionSnapshot) {
		seen = append(seen, s)
	})

	// Immediate delivery of the current snapshot
	require.Len(t, seen, 1)
	assert.Nil(t, seen[0].User)

	gate.Update(context.Background(), user)
	require.Len(t, seen, 2)
	assert.True(t, seen[1].IsAdmin)

	unsubscribe()
	gate.Update(context.Background(), nil)
	assert.Len(t, seen, 2, "unsubscribed listener must not be called")
}

func TestSessionGate_UpdateBeforeInitializeIsIgnored(t *testing.T) {
	user := &tables.User{Id: uuid.New()}
	gate := newTestGate(&fakeFetcher{}, &fakeRoles{})

	gate.Update(context.Background(), user)

	snap := gate.Snapshot()
	assert.True(t, snap.Loading)
	assert.Nil(t, snap.User)
}

func TestSessionGate_DisposeDropsListeners(t *testing.T) {
	user := &tables.User{Id: uuid.New()}
	gate := newTestGate(&fakeFetcher{}, &fakeRoles{})
	require.NoError(t, gate.Initialize(context.Background()))

	var calls int
	gate.Subscribe(func(SessionSnapshot) { calls++ })
	require.Equal(t, 1, calls)

	gate.Dispose()
	gate.Update(context.Background(), user)
	assert.Equal(t, 1, calls)
}
