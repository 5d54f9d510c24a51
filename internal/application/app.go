package application

import (
	"context"
	"log/slog"
	"path/filepath"

	"slimpdf/internal/compression"
	"slimpdf/internal/config"
	"slimpdf/internal/container"
	"slimpdf/internal/services"
	"slimpdf/internal/transport"
)

// App is the Wails binding surface. All methods run on binding goroutines;
// heavy work is handed to the loader pool or a dedicated compression
// goroutine.
type App struct {
	ctx       context.Context
	config    *config.Config
	container *container.Container
	logger    *slog.Logger

	files    *FileListManager
	jobs     *CompressionHandler
	previews *PreviewHandler
	stats    *StatsManager
	dialogs  transport.DialogHandler
}

func NewApp() *App {
	return &App{}
}

// OnStartup wires the dependency graph once the Wails context exists.
func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx

	cfg := config.New()
	a.config = cfg
	a.logger = cfg.Logger

	c, err := container.New(cfg)
	if err != nil {
		cfg.Logger.Error("failed to initialize services", "error", err)
		return
	}
	a.container = c

	emitter := transport.NewWailsEmitter(ctx)
	a.stats = NewStatsManager(c.History(), emitter, cfg.Logger)
	a.files = NewFileListManager(c.Loader(), c.PageThumbnails(), emitter)
	a.jobs = NewCompressionHandler(c.Orchestrator(), c.History(), a.stats, emitter, cfg.Logger)
	a.previews = NewPreviewHandler(c.Engine(), c.PreviewThumbnails())
	a.dialogs = transport.NewDialogsHandler(ctx)

	c.Loader().Start(ctx)
	a.files.Start(ctx)

	cfg.Logger.Info("application started",
		"working_directory", cfg.WorkingDir,
		"database_path", cfg.DatabasePath)
}

// OnShutdown releases the engine and drains the loader pool.
func (a *App) OnShutdown(ctx context.Context) {
	a.jobs.Cancel()
	if a.container != nil {
		a.container.Close()
	}
}

// SelectFiles opens the file dialog and adds the selection to the list.
func (a *App) SelectFiles() ([]string, error) {
	selection, err := a.dialogs.OpenFileDialog()
	if err != nil {
		return nil, err
	}
	a.files.Add(selection)
	return selection, nil
}

// SelectOutputDir opens the directory dialog.
func (a *App) SelectOutputDir() (string, error) {
	return a.dialogs.OpenDirectoryDialog()
}

// AddFiles registers paths (e.g. from drag and drop) and starts their
// metadata loads.
func (a *App) AddFiles(paths []string) {
	a.files.Add(paths)
}

func (a *App) RemoveFile(path string) {
	a.files.Remove(path)
}

func (a *App) ClearFiles() {
	a.files.Clear()
}

// GetFiles returns current snapshots of the picker list.
func (a *App) GetFiles() []transport.FileMetadataUpdate {
	return a.files.Snapshots()
}

// Compress starts a compression job over the requested files.
func (a *App) Compress(request transport.CompressionRequest) transport.OperationResponse {
	if err := a.jobs.Start(request); err != nil {
		return transport.OperationResponse{Error: err.Error()}
	}
	return transport.OperationResponse{Success: true}
}

// CancelCompression requests cancellation of the running job.
func (a *App) CancelCompression() {
	a.jobs.Cancel()
}

// GetPagePreview renders (or serves from cache) one page at a zoom level.
func (a *App) GetPagePreview(path string, pageIndex int, zoom float64) (string, error) {
	return a.previews.PagePreview(a.ctx, path, pageIndex, zoom)
}

func (a *App) MergeFiles(request transport.MergeRequest) transport.OperationResponse {
	if err := a.container.Documents().Merge(request.Files, request.OutputPath); err != nil {
		a.logger.Error("merge failed", "error", err)
		return transport.OperationResponse{Error: err.Error()}
	}
	return transport.OperationResponse{Success: true}
}

func (a *App) SplitFile(path, outputDir string) transport.OperationResponse {
	if err := a.container.Documents().Split(path, outputDir); err != nil {
		a.logger.Error("split failed", "file", path, "error", err)
		return transport.OperationResponse{Error: err.Error()}
	}
	return transport.OperationResponse{Success: true}
}

func (a *App) ExtractPages(request transport.ExtractRequest) transport.OperationResponse {
	pageRange, err := compression.NewPageRange(request.StartPage, request.EndPage)
	if err != nil {
		return transport.OperationResponse{Error: err.Error()}
	}
	if err := a.container.Documents().ExtractRange(request.File, request.OutputPath, pageRange); err != nil {
		a.logger.Error("extract failed", "file", request.File, "error", err)
		return transport.OperationResponse{Error: err.Error()}
	}
	return transport.OperationResponse{Success: true}
}

func (a *App) ProtectFile(request transport.ProtectRequest) transport.OperationResponse {
	err := a.container.Documents().Protect(request.File, request.OutputPath, request.UserPassword, request.OwnerPassword)
	if err != nil {
		a.logger.Error("protect failed", "file", request.File, "error", err)
		return transport.OperationResponse{Error: err.Error()}
	}
	return transport.OperationResponse{Success: true}
}

// LevelInfo describes one compression level for the UI.
type LevelInfo struct {
	Value   string  `json:"value"`
	Label   string  `json:"label"`
	DPI     float64 `json:"dpi"`
	Quality float64 `json:"quality"`
}

func (a *App) GetCompressionLevels() []LevelInfo {
	levels := compression.Levels()
	infos := make([]LevelInfo, 0, len(levels))
	for _, level := range levels {
		infos = append(infos, LevelInfo{
			Value:   string(level),
			Label:   level.Label(),
			DPI:     level.DPI(),
			Quality: level.Quality(),
		})
	}
	return infos
}

func (a *App) GetStats() *AppStats {
	return a.stats.GetStats()
}

func (a *App) GetRecentHistory(limit int) ([]services.CompressionRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	return a.container.History().Recent(limit)
}

// SuggestOutputName returns the collision-free output name compression
// would use for a file, for display before the job starts.
func (a *App) SuggestOutputName(path, outputDir string) string {
	return filepath.Base(compression.ResolveOutputPath(outputDir, path))
}
