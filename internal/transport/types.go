package transport

// Transport layer types for the Wails API

// Event names pushed to the frontend
const (
	EventFileProgress        = "file:progress"
	EventCompressionProgress = "compression:progress"
	EventFileMetadata        = "file:metadata"
	EventStatsUpdate         = "stats:update"
)

// EventEmitter delivers events to the observing UI context. The production
// implementation posts to the Wails event loop; tests substitute a recorder.
type EventEmitter interface {
	Emit(event string, payload interface{})
}

// DialogHandler is the interface for system dialogs
type DialogHandler interface {
	OpenFileDialog() ([]string, error)
	OpenDirectoryDialog() (string, error)
	ShowSaveDialog(filename string) (string, error)
	OpenFile(filePath string) error
}

type CompressionRequest struct {
	Files        []string `json:"files"`
	Level        string   `json:"level"`
	QualityBoost bool     `json:"qualityBoost"`
	OutputDir    string   `json:"outputDir"`
}

type CompressionProgressUpdate struct {
	JobID   string  `json:"job_id"`
	Percent float64 `json:"percent"`
	Current int     `json:"current"`
	Total   int     `json:"total"`
	Message string  `json:"message"`
}

type FileProgressUpdate struct {
	JobID    string  `json:"job_id"`
	Filename string  `json:"filename"`
	Done     int     `json:"done"`
	Total    int     `json:"total"`
	Percent  float64 `json:"percent"`
	Message  string  `json:"message"`
}

// FileMetadataUpdate mirrors one DocumentItem for the frontend. The
// thumbnail travels as a PNG data URL.
type FileMetadataUpdate struct {
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	PageCount int    `json:"page_count"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Loading   bool   `json:"loading"`
	Error     string `json:"error,omitempty"`
}

type MergeRequest struct {
	Files      []string `json:"files"`
	OutputPath string   `json:"outputPath"`
}

type ExtractRequest struct {
	File       string `json:"file"`
	StartPage  int    `json:"startPage"`
	EndPage    int    `json:"endPage"`
	OutputPath string `json:"outputPath"`
}

type ProtectRequest struct {
	File          string `json:"file"`
	OutputPath    string `json:"outputPath"`
	UserPassword  string `json:"userPassword"`
	OwnerPassword string `json:"ownerPassword"`
}

type OperationResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
