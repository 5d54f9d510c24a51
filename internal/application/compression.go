package application

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"slimpdf/internal/common"
	"slimpdf/internal/compression"
	"slimpdf/internal/services"
	"slimpdf/internal/transport"
)

// CompressionHandler runs compression jobs. Each user-initiated operation
// gets its own background goroutine, separate from the metadata pool, so
// heavy page rendering never starves UI responsiveness loads.
type CompressionHandler struct {
	orchestrator *compression.Orchestrator
	history      *services.HistoryService
	stats        *StatsManager
	emitter      transport.EventEmitter
	logger       *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewCompressionHandler(
	orchestrator *compression.Orchestrator,
	history *services.HistoryService,
	stats *StatsManager,
	emitter transport.EventEmitter,
	logger *slog.Logger,
) *CompressionHandler {
	return &CompressionHandler{
		orchestrator: orchestrator,
		history:      history,
		stats:        stats,
		emitter:      emitter,
		logger:       logger,
	}
}

// Start validates the request and launches the job. Only one job runs at a
// time.
func (h *CompressionHandler) Start(request transport.CompressionRequest) error {
	if len(request.Files) == 0 {
		return ErrNoFilesProvided
	}
	if request.OutputDir == "" {
		return ErrNoOutputDir
	}

	levelName := request.Level
	if levelName == "" {
		levelName = common.DefaultCompressionLevel
	}
	level, err := compression.ParseLevel(levelName)
	if err != nil {
		return ErrInvalidLevel
	}

	h.mu.Lock()
	if h.cancel != nil {
		h.mu.Unlock()
		return ErrJobAlreadyActive
	}
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	h.mu.Unlock()

	go func() {
		defer h.finish()
		h.run(ctx, request, level)
	}()

	return nil
}

// Cancel requests cooperative cancellation of the running job, if any.
func (h *CompressionHandler) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cancel != nil {
		h.cancel()
	}
}

func (h *CompressionHandler) finish() {
	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.mu.Unlock()
}

func (h *CompressionHandler) run(ctx context.Context, request transport.CompressionRequest, level compression.Level) {
	jobID := common.GenerateUUID()

	if len(request.Files) == 1 {
		h.runSingle(ctx, jobID, request, level)
		return
	}
	h.runBatch(ctx, jobID, request, level)
}

func (h *CompressionHandler) runSingle(ctx context.Context, jobID string, request transport.CompressionRequest, level compression.Level) {
	inputPath := request.Files[0]
	filename := filepath.Base(inputPath)

	result := h.orchestrator.CompressFile(ctx, inputPath, request.OutputDir, level, request.QualityBoost,
		func(done, total int, message string) {
			percent := 0.0
			if total > 0 {
				percent = float64(done) / float64(total) * 100
			}
			h.emitter.Emit(transport.EventFileProgress, transport.FileProgressUpdate{
				JobID:    jobID,
				Filename: filename,
				Done:     done,
				Total:    total,
				Percent:  percent,
				Message:  message,
			})
		})

	switch result.Status {
	case compression.StatusDone:
		h.recordResult(filename, string(level), result.InputSize, result.OutputSize, result.ReductionPercent)
		h.stats.UpdateStats(1, result.InputSize-result.OutputSize)
		h.emitter.Emit(transport.EventCompressionProgress, transport.CompressionProgressUpdate{
			JobID:   jobID,
			Percent: 100,
			Current: 1,
			Total:   1,
			Message: "All files processed",
		})
	case compression.StatusCancelled:
		h.logger.Info("compression job cancelled", "job_id", jobID)
	default:
		h.emitter.Emit(transport.EventCompressionProgress, transport.CompressionProgressUpdate{
			JobID:   jobID,
			Percent: 100,
			Current: 1,
			Total:   1,
			Message: result.Err.Error(),
		})
	}
}

func (h *CompressionHandler) runBatch(ctx context.Context, jobID string, request transport.CompressionRequest, level compression.Level) {
	total := len(request.Files)

	batch := h.orchestrator.CompressBatch(ctx, request.Files, request.OutputDir, level, request.QualityBoost,
		func(completed, totalFiles int, filename string) {
			h.emitter.Emit(transport.EventCompressionProgress, transport.CompressionProgressUpdate{
				JobID:   jobID,
				Percent: float64(completed) / float64(totalFiles) * 100,
				Current: completed,
				Total:   totalFiles,
				Message: filename,
			})
		})

	if batch.Cancelled {
		h.logger.Info("batch job cancelled", "job_id", jobID, "completed", batch.Completed)
		return
	}

	var dataSaved int64
	for _, file := range batch.Files {
		if file.Status != compression.StatusDone {
			continue
		}
		dataSaved += file.OriginalSize - file.CompressedSize
		h.recordResult(file.OriginalFilename, string(level), file.OriginalSize, file.CompressedSize, file.ReductionPercent)
	}
	if batch.Completed > 0 {
		h.stats.UpdateStats(batch.Completed, dataSaved)
	}

	h.emitter.Emit(transport.EventCompressionProgress, transport.CompressionProgressUpdate{
		JobID:   jobID,
		Percent: 100,
		Current: total,
		Total:   total,
		Message: "All files processed",
	})
}

func (h *CompressionHandler) recordResult(filename, level string, originalSize, compressedSize int64, reduction float64) {
	err := h.history.Record(&services.CompressionRecord{
		FileName:         filename,
		Level:            level,
		OriginalSize:     originalSize,
		CompressedSize:   compressedSize,
		ReductionPercent: reduction,
	})
	if err != nil {
		h.logger.Warn("failed to record compression history", "file", filename, "error", err)
	}
}
