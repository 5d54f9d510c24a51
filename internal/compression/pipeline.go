package compression

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"slimpdf/internal/common"
	"slimpdf/internal/imaging"
	"slimpdf/internal/pdf"
)

const pointsPerInch = 72.0

// Pipeline transforms one source document into one compressed output
// document by rasterizing every page at a target DPI, re-encoding the
// rasters, and rebuilding the document page by page. Vector content is not
// preserved; that tradeoff is what buys the size reduction.
type Pipeline struct {
	engine    pdf.Engine
	newWriter pdf.WriterFactory
	logger    *slog.Logger
}

// NewPipeline creates a pipeline over the given document engine.
func NewPipeline(engine pdf.Engine, newWriter pdf.WriterFactory, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		engine:    engine,
		newWriter: newWriter,
		logger:    logger,
	}
}

// Run compresses inputPath into outputPath at the given resolution and
// quality. Cancellation is cooperative: the context is polled once per page,
// and a cancelled run leaves no file at the destination path. The returned
// Result is always labeled Done, Cancelled, or Failed.
func (p *Pipeline) Run(ctx context.Context, inputPath, outputPath string, dpi, quality float64, progress ProgressFunc) Result {
	if progress == nil {
		progress = func(int, int, string) {}
	}

	if dpi <= 0 || quality <= 0 || quality > 1 {
		return p.failed(fmt.Errorf("invalid compression parameters: dpi=%v quality=%v", dpi, quality))
	}

	progress(0, 0, "Opening "+filepath.Base(inputPath))

	doc, err := p.engine.Open(ctx, inputPath)
	if err != nil {
		return p.failed(err)
	}
	defer doc.Close()

	total := doc.PageCount()
	if total == 0 {
		return p.failed(fmt.Errorf("%w: document has no pages", pdf.ErrDocumentUnreadable))
	}
	writer := p.newWriter()

	for i := 0; i < total; i++ {
		// Cooperative cancellation, checked once per page. In-flight
		// rendering calls are never interrupted preemptively.
		select {
		case <-ctx.Done():
			p.logger.Info("compression cancelled", "input", inputPath, "pages_done", i)
			return Result{Status: StatusCancelled}
		default:
		}

		widthPt, heightPt, err := doc.PageSize(i)
		if err != nil {
			return p.failed(err)
		}

		raster, err := doc.RenderPage(ctx, i, dpi)
		if err != nil {
			return p.failed(err)
		}

		payload, err := imaging.Recompress(raster, quality)
		if err != nil {
			return p.failed(err)
		}

		// The raster's pixel dimensions follow from DPI x page size, so the
		// image fills the rebuilt page exactly. No cropping or letterboxing.
		if err := writer.AddImagePage(payload, widthPt, heightPt); err != nil {
			return p.failed(err)
		}

		progress(i+1, total, fmt.Sprintf("Compressed page %d of %d", i+1, total))
	}

	progress(total, total, "Saving "+filepath.Base(outputPath))

	if err := os.MkdirAll(filepath.Dir(outputPath), common.DefaultFilePermissions); err != nil {
		return p.failed(err)
	}
	if err := writer.WriteFile(outputPath); err != nil {
		os.Remove(outputPath)
		return p.failed(err)
	}

	result := Result{
		Status:     StatusDone,
		OutputPath: outputPath,
		PageCount:  total,
	}

	if inputInfo, err := os.Stat(inputPath); err == nil {
		result.InputSize = inputInfo.Size()
	}
	if outputInfo, err := os.Stat(outputPath); err == nil {
		result.OutputSize = outputInfo.Size()
	}
	if result.InputSize > 0 {
		result.ReductionPercent = (1 - float64(result.OutputSize)/float64(result.InputSize)) * 100
	}

	progress(total, total, fmt.Sprintf("Done: %d pages, %.1f%% smaller", total, result.ReductionPercent))
	p.logger.Info("compression finished",
		"input", inputPath,
		"output", outputPath,
		"pages", total,
		"reduction_percent", result.ReductionPercent)

	return result
}

func (p *Pipeline) failed(err error) Result {
	// A cancellation surfacing through the engine is still a cancellation,
	// not a failure
	if errors.Is(err, context.Canceled) {
		p.logger.Info("compression cancelled", "error", err)
		return Result{Status: StatusCancelled}
	}

	wrapped := fmt.Errorf("compression failed: %w", err)
	p.logger.Error("compression failed", "error", err)
	return Result{Status: StatusFailed, Err: wrapped}
}
