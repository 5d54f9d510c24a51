package compression

// Status is the terminal outcome of a pipeline run.
type Status string

const (
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)

// ProgressFunc receives (pages completed, total pages) plus a status string
// after each page. Per-page is the only progress granularity.
type ProgressFunc func(done, total int, message string)

// BatchProgressFunc receives (files completed, total files) plus the file
// currently finished, independent of per-page progress inside each file.
type BatchProgressFunc func(completed, total int, filename string)

// Result is the labeled outcome of one pipeline run. Failures travel as a
// value here, never as a panic across a goroutine boundary.
type Result struct {
	Status           Status
	OutputPath       string
	PageCount        int
	InputSize        int64
	OutputSize       int64
	ReductionPercent float64
	Err              error
}

// FileResult is one entry of a batch run.
type FileResult struct {
	FileID             string  `json:"file_id"`
	OriginalFilename   string  `json:"original_filename"`
	CompressedFilename string  `json:"compressed_filename"`
	CompressedPath     string  `json:"compressed_path"`
	OriginalSize       int64   `json:"original_size"`
	CompressedSize     int64   `json:"compressed_size"`
	ReductionPercent   float64 `json:"reduction_percent"`
	Status             Status  `json:"status"`
	Error              string  `json:"error,omitempty"`
}

// BatchResult aggregates a batch run. A per-file failure never fails the
// batch; Cancelled is set only when the run stopped between files.
type BatchResult struct {
	Files               []FileResult `json:"files"`
	TotalFiles          int          `json:"total_files"`
	Completed           int          `json:"completed"`
	Failed              int          `json:"failed"`
	TotalOriginalSize   int64        `json:"total_original_size"`
	TotalCompressedSize int64        `json:"total_compressed_size"`
	OverallReduction    float64      `json:"overall_reduction"`
	Cancelled           bool         `json:"cancelled"`
}
