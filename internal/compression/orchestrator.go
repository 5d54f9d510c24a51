package compression

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"slimpdf/internal/common"
)

// Orchestrator drives pipeline runs for one or many files. Batch runs are
// strictly sequential: each rendered page can be tens of megabytes, so only
// one document is in flight at a time.
type Orchestrator struct {
	pipeline *Pipeline
	logger   *slog.Logger
}

// NewOrchestrator creates an orchestrator over the given pipeline.
func NewOrchestrator(pipeline *Pipeline, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		pipeline: pipeline,
		logger:   logger,
	}
}

// CompressFile compresses a single file into outputDir at the level's
// resolved parameters, honoring the quality boost.
func (o *Orchestrator) CompressFile(ctx context.Context, inputPath, outputDir string, level Level, qualityBoost bool, progress ProgressFunc) Result {
	dpi, quality := level.Resolve(qualityBoost)
	outputPath := ResolveOutputPath(outputDir, inputPath)

	return o.pipeline.Run(ctx, inputPath, outputPath, dpi, quality, progress)
}

// CompressBatch compresses the inputs in list order. A failing file is
// recorded and skipped; the batch still runs to completion. Cancellation
// stops before the next file starts, leaving already-finished outputs on
// disk.
func (o *Orchestrator) CompressBatch(ctx context.Context, inputs []string, outputDir string, level Level, qualityBoost bool, onFile BatchProgressFunc) BatchResult {
	if onFile == nil {
		onFile = func(int, int, string) {}
	}

	dpi, quality := level.Resolve(qualityBoost)
	batch := BatchResult{TotalFiles: len(inputs)}

	for i, inputPath := range inputs {
		select {
		case <-ctx.Done():
			batch.Cancelled = true
			o.logger.Info("batch cancelled", "files_done", i, "total", len(inputs))
			return batch
		default:
		}

		filename := filepath.Base(inputPath)
		outputPath := ResolveOutputPath(outputDir, inputPath)

		fileResult := FileResult{
			FileID:             common.GenerateUUID(),
			OriginalFilename:   filename,
			CompressedFilename: filepath.Base(outputPath),
		}

		result := o.pipeline.Run(ctx, inputPath, outputPath, dpi, quality, nil)
		switch result.Status {
		case StatusDone:
			fileResult.Status = StatusDone
			fileResult.CompressedPath = result.OutputPath
			fileResult.OriginalSize = result.InputSize
			fileResult.CompressedSize = result.OutputSize
			fileResult.ReductionPercent = result.ReductionPercent
			batch.Completed++
			batch.TotalOriginalSize += result.InputSize
			batch.TotalCompressedSize += result.OutputSize
		case StatusCancelled:
			batch.Cancelled = true
			o.logger.Info("batch cancelled mid-file", "file", filename)
			return batch
		default:
			fileResult.Status = StatusFailed
			fileResult.Error = result.Err.Error()
			batch.Failed++
			o.logger.Warn("batch file failed", "file", filename, "error", result.Err)
		}

		batch.Files = append(batch.Files, fileResult)
		onFile(i+1, len(inputs), filename)
	}

	if batch.TotalOriginalSize > 0 {
		batch.OverallReduction = (1 - float64(batch.TotalCompressedSize)/float64(batch.TotalOriginalSize)) * 100
	}

	o.logger.Info("all files processed",
		"total", batch.TotalFiles,
		"completed", batch.Completed,
		"failed", batch.Failed)

	return batch
}

// ResolveOutputPath derives `<base>_compressed.pdf` inside outputDir,
// appending `_(n)` before the extension until the name is unique. It never
// selects a path that would overwrite an existing file.
func ResolveOutputPath(outputDir, inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	candidate := filepath.Join(outputDir, base+common.CompressedFileSuffix+".pdf")

	counter := 1
	for {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
		candidate = filepath.Join(outputDir, fmt.Sprintf("%s%s_(%d).pdf", base, common.CompressedFileSuffix, counter))
		counter++
	}
}
