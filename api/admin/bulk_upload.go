package admin

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/avira1987/remix-of-dxb-dubi/services"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// multipart form is streamed to disk above this threshold
const bulkUploadMemoryLimit = 32 << 20

// presetNone is the sentinel the back-office sends for "no brand/category"
const presetNone = "none"

// BulkUploadProducts handles POST /admin/products/bulk-upload. Each uploaded
// image becomes a draft product; the optional brand/category preset applies
// to the whole run. The file cap is enforced before any file is touched.
func (arm *AdminRoutesManager) BulkUploadProducts(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(bulkUploadMemoryLimit); err != nil {
		arm.logger.Warn("Failed to parse multipart form", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid upload request"), gecho.Send())
		return
	}
	defer r.MultipartForm.RemoveAll()

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		gecho.BadRequest(w, gecho.WithMessage("No files provided"), gecho.Send())
		return
	}
	if len(fileHeaders) > arm.cfg.Upload.MaxFiles {
		gecho.BadRequest(w,
			gecho.WithMessage(fmt.Sprintf("Too many files: %d exceeds the limit of %d", len(fileHeaders), arm.cfg.Upload.MaxFiles)),
			gecho.Send(),
		)
		return
	}

	preset, err := parsePreset(r.FormValue("brand_id"), r.FormValue("category_id"))
	if err != nil {
		arm.logger.Warn("Invalid upload preset", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid brand or category preset"), gecho.Send())
		return
	}

	tempIDs := r.MultipartForm.Value["temp_ids"]

	files := make([]services.UploadFile, 0, len(fileHeaders))
	opened := make([]multipart.File, 0, len(fileHeaders))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for i, fh := range fileHeaders {
		contentType := fh.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			gecho.BadRequest(w,
				gecho.WithMessage(fmt.Sprintf("File %q is not an image", fh.Filename)),
				gecho.Send(),
			)
			return
		}

		f, err := fh.Open()
		if err != nil {
			arm.logger.Error("Failed to open uploaded file", gecho.Field("error", err), gecho.Field("file", fh.Filename))
			gecho.InternalServerError(w, gecho.WithMessage("Unable to read uploaded files"), gecho.Send())
			return
		}
		opened = append(opened, f)

		tempID := ""
		if i < len(tempIDs) {
			tempID = tempIDs[i]
		}

		files = append(files, services.UploadFile{
			TempID:      tempID,
			Name:        fh.Filename,
			ContentType: contentType,
			Size:        fh.Size,
			Reader:      f,
		})
	}

	report, err := arm.uploadService.Run(r.Context(), files, preset)
	if err != nil {
		if errors.Is(err, services.ErrTooManyFiles) {
			gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
			return
		}
		arm.logger.Error("Bulk upload failed", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Bulk upload failed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage(fmt.Sprintf("Processed %d files: %d drafts created, %d failed", len(files), report.Done, report.Failed)),
		gecho.WithData(report),
		gecho.Send(),
	)
}

// parsePreset maps the preset form values to UUIDs. Empty and "none" both
// mean untagged.
func parsePreset(brandValue, categoryValue string) (services.UploadPreset, error) {
	var preset services.UploadPreset

	if brandValue != "" && brandValue != presetNone {
		id, err := uuid.Parse(brandValue)
		if err != nil {
			return preset, fmt.Errorf("invalid brand preset %q: %w", brandValue, err)
		}
		preset.BrandID = &id
	}

	if categoryValue != "" && categoryValue != presetNone {
		id, err := uuid.Parse(categoryValue)
		if err != nil {
			return preset, fmt.Errorf("invalid category preset %q: %w", categoryValue, err)
		}
		preset.CategoryID = &id
	}

	return preset, nil
}
