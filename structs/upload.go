package structs

// UploadMode selects how bulk-uploaded drafts are tagged: "manual" leaves
// brand and category unset, "preset" applies one choice to the whole run.
type UploadMode string

const (
	UploadModeManual UploadMode = "manual"
	UploadModePreset UploadMode = "preset"
)

// UploadItemStatus tracks one file through the pipeline. Every item ends in
// exactly Done or Error; intermediate states are only visible while the run
// is in flight.
type UploadItemStatus string

const (
	UploadStatusUploading UploadItemStatus = "uploading"
	UploadStatusUploaded  UploadItemStatus = "uploaded"
	UploadStatusCreating  UploadItemStatus = "creating"
	UploadStatusDone      UploadItemStatus = "done"
	UploadStatusError     UploadItemStatus = "error"
)

// UploadItem is transient client-reporting state for a single file in a
// bulk-upload run. It is never persisted.
type UploadItem struct {
	TempID    string           `json:"temp_id"`
	ProductID string           `json:"product_id,omitempty"`
	FileName  string           `json:"file_name"`
	ImageURL  string           `json:"image_url,omitempty"`
	Status    UploadItemStatus `json:"status"`
	Error     string           `json:"error,omitempty"`
}

// UploadReport is the aggregate result of one bulk-upload run.
type UploadReport struct {
	Items   []UploadItem `json:"items"`
	Done    int          `json:"done"`
	Failed  int          `json:"failed"`
	Batches int          `json:"batches"`
}
