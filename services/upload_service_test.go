package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avira1987/remix-of-dxb-dubi/structs"
	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu       sync.Mutex
	keys     []string
	failFor  map[string]bool // object key suffix match
	inFlight atomic.Int64
	maxSeen  atomic.Int64
}

func (fs *fakeStore) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	cur := fs.inFlight.Add(1)
	defer fs.inFlight.Add(-1)
	for {
		seen := fs.maxSeen.Load()
		if cur <= seen || fs.maxSeen.CompareAndSwap(seen, cur) {
			break
		}
	}

	// Give the rest of the batch a chance to overlap
	time.Sleep(5 * time.Millisecond)

	if _, err := io.ReadAll(reader); err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	for name := range fs.failFor {
		if strings.HasSuffix(key, name) {
			return errors.New("storage unavailable")
		}
	}
	fs.keys = append(fs.keys, key)
	return nil
}

func (fs *fakeStore) Remove(ctx context.Context, key string) error { return nil }

func (fs *fakeStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

type fakeDrafts struct {
	mu      sync.Mutex
	created []*tables.Product
	failFor map[string]bool // fail by derived name
}

func (fd *fakeDrafts) CreateDraft(ctx context.Context, name, slug, imageURL string, brandID, categoryID *uuid.UUID) (*tables.Product, error) {
	fd.mu.Lock()
	defer fd.mu.Unlock()

	if fd.failFor[name] {
		return nil, errors.New("insert failed")
	}

	draft := &tables.Product{
		ID:         uuid.New(),
		Name:       name,
		Slug:       slug,
		ImageURL:   imageURL,
		Status:     tables.ProductStatusDraft,
		BrandID:    brandID,
		CategoryID: categoryID,
	}
	fd.created = append(fd.created, draft)
	return draft, nil
}

func newTestUploadService(store *fakeStore, drafts *fakeDrafts) *UploadService {
	cfg := &structs.Config{
		Upload: &structs.UploadConfig{
			MaxFiles:  100,
			BatchSize: 5,
			KeyPrefix: "products",
		},
	}
	return NewUploadService(gecho.NewDefaultLogger(), cfg, store, drafts)
}

func makeFiles(n int) []UploadFile {
	files := make([]UploadFile, 0, n)
	for i := range n {
		files = append(files, UploadFile{
			TempID:      fmt.Sprintf("tmp-%d", i),
			Name:        fmt.Sprintf("item-%d.jpg", i),
			ContentType: "image/jpeg",
			Size:        3,
			Reader:      strings.NewReader("img"),
		})
	}
	return files
}

func TestUploadRun_CreatesDraftPerFile(t *testing.T) {
	store := &fakeStore{}
	drafts := &fakeDrafts{}
	us := newTestUploadService(store, drafts)

	brandID := uuid.New()
	categoryID := uuid.New()

	report, err := us.Run(context.Background(), makeFiles(7), UploadPreset{
		BrandID:    &brandID,
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, 7, report.Done)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 2, report.Batches)
	assert.Len(t, report.Items, 7)
	assert.Len(t, drafts.created, 7)

	slugs := make(map[string]bool)
	for _, draft := range drafts.created {
		require.NotNil(t, draft.BrandID)
		require.NotNil(t, draft.CategoryID)
		assert.Equal(t, brandID, *draft.BrandID)
		assert.Equal(t, categoryID, *draft.CategoryID)
		assert.Equal(t, tables.ProductStatusDraft, draft.Status)
		assert.False(t, slugs[draft.Slug], "slug %q repeated", draft.Slug)
		slugs[draft.Slug] = true
	}

	for _, item := range report.Items {
		assert.Equal(t, structs.UploadStatusDone, item.Status)
		assert.NotEmpty(t, item.ProductID)
		assert.Contains(t, item.ImageURL, "https://cdn.example.com/products/")
	}
}

func TestUploadRun_ReportPreservesInputOrder(t *testing.T) {
	store := &fakeStore{}
	drafts := &fakeDrafts{}
	us := newTestUploadService(store, drafts)

	files := makeFiles(6)
	report, err := us.Run(context.Background(), files, UploadPreset{})
	require.NoError(t, err)

	require.Len(t, report.Items, 6)
	for i, item := range report.Items {
		assert.Equal(t, files[i].TempID, item.TempID)
		assert.Equal(t, files[i].Name, item.FileName)
	}
}

func TestUploadRun_ConcurrencyBoundedByBatchSize(t *testing.T) {
	store := &fakeStore{}
	drafts := &fakeDrafts{}
	us := newTestUploadService(store, drafts)

	report, err := us.Run(context.Background(), makeFiles(17), UploadPreset{})
	require.NoError(t, err)

	assert.Equal(t, 17, report.Done)
	assert.Equal(t, 4, report.Batches)
	assert.LessOrEqual(t, store.maxSeen.Load(), int64(5))
}

func TestUploadRun_RejectsOversizedRun(t *testing.T) {
	store := &fakeStore{}
	drafts := &fakeDrafts{}
	us := newTestUploadService(store, drafts)

	report, err := us.Run(context.Background(), makeFiles(101), UploadPreset{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyFiles)
	assert.Nil(t, report)

	// Nothing was touched
	assert.Empty(t, store.keys)
	assert.Empty(t, drafts.created)
}

func TestUploadRun_FailedFileDoesNotAbortRun(t *testing.T) {
	store := &fakeStore{failFor: map[string]bool{}}
	drafts := &fakeDrafts{failFor: map[string]bool{
		// derived from "item-3.jpg"
		"Item 3": true,
	}}
	us := newTestUploadService(store, drafts)

	report, err := us.Run(context.Background(), makeFiles(5), UploadPreset{})
	require.NoError(t, err)

	assert.Equal(t, 4, report.Done)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, drafts.created, 4)

	var failed *structs.UploadItem
	for i := range report.Items {
		if report.Items[i].Status == structs.UploadStatusError {
			failed = &report.Items[i]
		}
	}
	require.NotNil(t, failed)
	assert.Equal(t, "item-3.jpg", failed.FileName)
	assert.Equal(t, "draft creation failed", failed.Error)
	assert.Empty(t, failed.ProductID)
}

func TestUploadRun_StorageFailureKeepsOthersGoing(t *testing.T) {
	// Object keys end in "-<index>.<ext>", so "-1.jpg" fails the second file
	store := &fakeStore{failFor: map[string]bool{"-1.jpg": true}}
	drafts := &fakeDrafts{}
	us := newTestUploadService(store, drafts)

	report, err := us.Run(context.Background(), makeFiles(3), UploadPreset{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Done)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, drafts.created, 2)

	assert.Equal(t, structs.UploadStatusError, report.Items[1].Status)
	assert.Equal(t, "upload failed", report.Items[1].Error)
}

func TestUploadRun_NamesDerivedFromFilenames(t *testing.T) {
	store := &fakeStore{}
	drafts := &fakeDrafts{}
	us := newTestUploadService(store, drafts)

	files := []UploadFile{{
		TempID:      "tmp-0",
		Name:        "blue_leather-bag.JPG",
		ContentType: "image/jpeg",
		Size:        3,
		Reader:      strings.NewReader("img"),
	}}

	report, err := us.Run(context.Background(), files, UploadPreset{})
	require.NoError(t, err)
	require.Equal(t, 1, report.Done)

	require.Len(t, drafts.created, 1)
	assert.Equal(t, "Blue Leather Bag", drafts.created[0].Name)
	assert.True(t, strings.HasPrefix(drafts.created[0].Slug, "blue-leather-bag-"))
}

func TestUploadRun_DuplicateTempIDsGetDistinctSlots(t *testing.T) {
	store := &fakeStore{}
	drafts := &fakeDrafts{}
	us := newTestUploadService(store, drafts)

	files := []UploadFile{
		{
			TempID:      "tmp-0",
			Name:        "first.jpg",
			ContentType: "image/jpeg",
			Size:        3,
			Reader:      strings.NewReader("img"),
		},
		{
			TempID:      "tmp-0",
			Name:        "second.jpg",
			ContentType: "image/jpeg",
			Size:        3,
			Reader:      strings.NewReader("img"),
		},
	}

	report, err := us.Run(context.Background(), files, UploadPreset{})
	require.NoError(t, err)

	require.Len(t, report.Items, 2)
	assert.Equal(t, 2, report.Done)
	assert.Equal(t, 0, report.Failed)
	assert.Len(t, drafts.created, 2)

	assert.NotEqual(t, report.Items[0].TempID, report.Items[1].TempID)
	assert.Equal(t, "first.jpg", report.Items[0].FileName)
	assert.Equal(t, "second.jpg", report.Items[1].FileName)
	for _, item := range report.Items {
		assert.Equal(t, structs.UploadStatusDone, item.Status)
	}
}
