package services

import (
	"context"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"
	"github.com/google/uuid"
)

// SessionFetcher resolves the currently authenticated user, if any.
// A nil user with a nil error means "signed out".
type SessionFetcher interface {
	FetchSession(ctx context.Context) (*tables.User, error)
}

// RoleChecker resolves admin membership for a user. Implementations must
// fail closed: any lookup problem reports false.
type RoleChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) bool
}

// SessionSnapshot is the gate's view of the current principal. Loading is
// true only until the first authoritative fetch completes.
type SessionSnapshot struct {
	User    *tables.User
	IsAdmin bool
	Loading bool
}

// SessionGate owns the session lifecycle for a client: one authoritative
// fetch at startup, then change notifications. Consumers read Snapshot or
// Subscribe for updates; they never resolve roles themselves, so the
// fail-closed admin decision is made in exactly one place.
type SessionGate struct {
	logger  *gecho.Logger
	fetcher SessionFetcher
	roles   RoleChecker

	mu          sync.RWMutex
	snapshot    SessionSnapshot
	subscribers map[int]func(SessionSnapshot)
	nextSubID   int
	initialized bool
	disposed    bool
}

func NewSessionGate(logger *gecho.Logger, fetcher SessionFetcher, roles RoleChecker) *SessionGate {
	return &SessionGate{
		logger:      logger,
		fetcher:     fetcher,
		roles:       roles,
		snapshot:    SessionSnapshot{Loading: true},
		subscribers: map[int]func(SessionSnapshot){},
	}
}

// Initialize performs the single authoritative session fetch. Change
// subscriptions must only be attached after this returns, so a change event
// can never race the initial state. Fetch failures resolve to a signed-out,
// non-loading snapshot.
func (sg *SessionGate) Initialize(ctx context.Context) error {
	sg.mu.Lock()
	if sg.initialized || sg.disposed {
		sg.mu.Unlock()
		return nil
	}
	sg.initialized = true
	sg.mu.Unlock()

	user, err := sg.fetcher.FetchSession(ctx)
	if err != nil {
		sg.logger.Warn("Session fetch failed, treating as signed out", gecho.Field("error", err))
		sg.publish(SessionSnapshot{Loading: false})
		return nil
	}

	sg.publish(sg.resolve(ctx, user))
	return nil
}

// Update applies a session change (sign-in, sign-out, token refresh) that
// happened after initialization
func (sg *SessionGate) Update(ctx context.Context, user *tables.User) {
	sg.mu.RLock()
	ready := sg.initialized && !sg.disposed
	sg.mu.RUnlock()
	if !ready {
		return
	}

	sg.publish(sg.resolve(ctx, user))
}

// Snapshot returns the current session state
func (sg *SessionGate) Snapshot() SessionSnapshot {
	sg.mu.RLock()
	defer sg.mu.RUnlock()
	return sg.snapshot
}

// Subscribe registers a listener for snapshot changes and returns an
// unsubscribe function. The listener immediately receives the current
// snapshot.
func (sg *SessionGate) Subscribe(fn func(SessionSnapshot)) func() {
	sg.mu.Lock()
	id := sg.nextSubID
	sg.nextSubID++
	sg.subscribers[id] = fn
	current := sg.snapshot
	sg.mu.Unlock()

	fn(current)

	return func() {
		sg.mu.Lock()
		delete(sg.subscribers, id)
		sg.mu.Unlock()
	}
}

// Dispose detaches all subscribers and freezes the gate
func (sg *SessionGate) Dispose() {
	sg.mu.Lock()
	defer sg.mu.Unlock()
	sg.disposed = true
	sg.subscribers = map[int]func(SessionSnapshot){}
}

// resolve derives the full snapshot for a session. No session means no role
// lookup at all.
func (sg *SessionGate) resolve(ctx context.Context, user *tables.User) SessionSnapshot {
	if user == nil {
		return SessionSnapshot{Loading: false}
	}

	return SessionSnapshot{
		User:    user,
		IsAdmin: sg.roles.IsAdmin(ctx, user.Id),
		Loading: false,
	}
}

func (sg *SessionGate) publish(snapshot SessionSnapshot) {
	sg.mu.Lock()
	if sg.disposed {
		sg.mu.Unlock()
		return
	}
	sg.snapshot = snapshot
	listeners := make([]func(SessionSnapshot), 0, len(sg.subscribers))
	for _, fn := range sg.subscribers {
		listeners = append(listeners, fn)
	}
	sg.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
