package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/avira1987/remix-of-dxb-dubi/lib"
	"github.com/avira1987/remix-of-dxb-dubi/structs"
	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"
	"github.com/google/uuid"
)

// ErrTooManyFiles rejects a bulk-upload run exceeding the configured cap.
// Nothing from the run is processed.
var ErrTooManyFiles = errors.New("too many files")

// ObjectStorage is the slice of the object store the pipeline needs
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PublicURL(key string) string
}

// DraftCreator persists a placeholder product for an uploaded image
type DraftCreator interface {
	CreateDraft(ctx context.Context, name, slug, imageURL string, brandID, categoryID *uuid.UUID) (*tables.Product, error)
}

// UploadFile is one incoming file of a bulk-upload run
type UploadFile struct {
	TempID      string
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// UploadPreset optionally tags every draft of a run with one brand and
// category choice. Nil fields leave the draft untagged.
type UploadPreset struct {
	BrandID    *uuid.UUID
	CategoryID *uuid.UUID
}

type UploadService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	store  ObjectStorage
	drafts DraftCreator
}

func NewUploadService(logger *gecho.Logger, cfg *structs.Config, store ObjectStorage, drafts DraftCreator) *UploadService {
	return &UploadService{
		logger: logger,
		cfg:    cfg,
		store:  store,
		drafts: drafts,
	}
}

// Run executes a bulk-upload run: files are processed in fixed-size batches,
// each batch fanned out to one goroutine per file, batches strictly
// sequential. Per-file progress flows through a channel into a collector
// keyed by temp ID, so no two goroutines ever touch shared report state.
// A failed file never aborts the run; a run larger than the cap never
// starts.
func (us *UploadService) Run(ctx context.Context, files []UploadFile, preset UploadPreset) (*structs.UploadReport, error) {
	if len(files) > us.cfg.Upload.MaxFiles {
		us.logger.Warn("Bulk upload rejected",
			gecho.Field("files", len(files)),
			gecho.Field("max", us.cfg.Upload.MaxFiles),
		)
		return nil, fmt.Errorf("%w: %d files exceeds the limit of %d", ErrTooManyFiles, len(files), us.cfg.Upload.MaxFiles)
	}

	batchSize := us.cfg.Upload.BatchSize
	if batchSize < 1 {
		batchSize = 1
	}

	runStamp := time.Now().UnixMilli()

	// Collector keys must be unique per file. Client-supplied temp ids are
	// kept only when distinct; a missing or repeated id gets a minted one so
	// no two files can share a report slot.
	seen := make(map[string]struct{}, len(files))
	for i := range files {
		id := files[i].TempID
		if id == "" {
			id = fmt.Sprintf("tmp-%d-%d", runStamp, i)
		}
		for {
			if _, dup := seen[id]; !dup {
				break
			}
			id = fmt.Sprintf("%s-%d", id, i)
		}
		seen[id] = struct{}{}
		files[i].TempID = id
	}

	// Every status change for every file flows through here
	events := make(chan structs.UploadItem, len(files)*4)

	// Collector owns the report state; keyed by temp ID so late events for a
	// file overwrite its earlier state
	order := make([]string, len(files))
	latest := make(map[string]structs.UploadItem, len(files))
	var collectorDone sync.WaitGroup
	collectorDone.Add(1)
	go func() {
		defer collectorDone.Done()
		for item := range events {
			latest[item.TempID] = item
		}
	}()

	batches := 0
	for start := 0; start < len(files); start += batchSize {
		end := min(start+batchSize, len(files))
		batches++

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			file := files[i]
			order[i] = file.TempID

			wg.Add(1)
			go func(index int, file UploadFile) {
				defer wg.Done()
				us.processFile(ctx, runStamp, index, file, preset, events)
			}(i, file)
		}
		wg.Wait()
	}

	close(events)
	collectorDone.Wait()

	report := &structs.UploadReport{
		Items:   make([]structs.UploadItem, 0, len(files)),
		Batches: batches,
	}
	for _, tempID := range order {
		item := latest[tempID]
		report.Items = append(report.Items, item)
		switch item.Status {
		case structs.UploadStatusDone:
			report.Done++
		default:
			report.Failed++
		}
	}

	us.logger.Info("Bulk upload run finished",
		gecho.Field("files", len(files)),
		gecho.Field("done", report.Done),
		gecho.Field("failed", report.Failed),
		gecho.Field("batches", report.Batches),
	)

	return report, nil
}

// processFile pushes one file through upload and draft creation, emitting a
// status event on every transition. The last event is always done or error.
func (us *UploadService) processFile(ctx context.Context, runStamp int64, index int, file UploadFile, preset UploadPreset, events chan<- structs.UploadItem) {
	item := structs.UploadItem{
		TempID:   file.TempID,
		FileName: file.Name,
		Status:   structs.UploadStatusUploading,
	}
	events <- item

	ext := strings.ToLower(filepath.Ext(file.Name))
	key := fmt.Sprintf("%s/%d-%d%s", us.cfg.Upload.KeyPrefix, runStamp, index, ext)

	if err := us.store.Upload(ctx, key, file.Reader, file.Size, file.ContentType); err != nil {
		us.logger.Error("Image upload failed",
			gecho.Field("error", err),
			gecho.Field("file", file.Name),
			gecho.Field("key", key),
		)
		item.Status = structs.UploadStatusError
		item.Error = "upload failed"
		events <- item
		return
	}

	item.ImageURL = us.store.PublicURL(key)
	item.Status = structs.UploadStatusUploaded
	events <- item

	item.Status = structs.UploadStatusCreating
	events <- item

	name := lib.ProductNameFromFilename(file.Name)
	slug := lib.MakeUniqueSlug(name, fmt.Sprintf("%d%d", runStamp, index))

	draft, err := us.drafts.CreateDraft(ctx, name, slug, item.ImageURL, preset.BrandID, preset.CategoryID)
	if err != nil {
		// The stored object is kept; drafts can be re-created from the
		// bucket listing without re-uploading
		us.logger.Warn("Draft creation failed, uploaded object kept",
			gecho.Field("error", err),
			gecho.Field("file", file.Name),
			gecho.Field("key", key),
		)
		item.Status = structs.UploadStatusError
		item.Error = "draft creation failed"
		events <- item
		return
	}

	item.ProductID = draft.ID.String()
	item.Status = structs.UploadStatusDone
	events <- item
}
