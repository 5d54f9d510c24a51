package pdf

import (
	"context"
	"errors"
	"image"
)

// ErrDocumentUnreadable is returned when a source file cannot be parsed as a
// PDF or contains no pages.
var ErrDocumentUnreadable = errors.New("document cannot be read")

// Engine opens documents for reading and rendering. Implementations must be
// safe for concurrent use; document handles returned by Open are not and are
// owned by the caller that opened them.
type Engine interface {
	Open(ctx context.Context, path string) (Document, error)
	Close() error
}

// Document is an open PDF handle. Page indexes are zero-based. Callers must
// Close the document on every exit path.
type Document interface {
	PageCount() int
	// PageSize returns the media box of a page in points.
	PageSize(index int) (width, height float64, err error)
	// RenderPage rasterizes a page at the given DPI.
	RenderPage(ctx context.Context, index int, dpi float64) (image.Image, error)
	Close() error
}

// Writer builds a new document one image page at a time. Nothing touches the
// filesystem until WriteFile.
type Writer interface {
	// AddImagePage appends a page of the given size in points, filled edge to
	// edge with the supplied JPEG data.
	AddImagePage(jpegData []byte, widthPt, heightPt float64) error
	WriteFile(path string) error
}

// WriterFactory produces a fresh Writer per pipeline run.
type WriterFactory func() Writer
