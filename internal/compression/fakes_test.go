package compression

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"sync"

	"slimpdf/internal/pdf"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakePage describes one page of a fake document in points.
type fakePage struct {
	width  float64
	height float64
}

type fakeDocument struct {
	pages      []fakePage
	renderErr  map[int]error
	onRender   func(index int)
	closed     bool
	renderDPIs []float64
}

func (d *fakeDocument) PageCount() int {
	return len(d.pages)
}

func (d *fakeDocument) PageSize(index int) (float64, float64, error) {
	if index < 0 || index >= len(d.pages) {
		return 0, 0, fmt.Errorf("page %d out of range", index)
	}
	return d.pages[index].width, d.pages[index].height, nil
}

func (d *fakeDocument) RenderPage(ctx context.Context, index int, dpi float64) (image.Image, error) {
	if d.onRender != nil {
		d.onRender(index)
	}
	if err := d.renderErr[index]; err != nil {
		return nil, err
	}
	d.renderDPIs = append(d.renderDPIs, dpi)

	page := d.pages[index]
	w := int(page.width / pointsPerInch * dpi)
	h := int(page.height / pointsPerInch * dpi)
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}

type fakeEngine struct {
	mu      sync.Mutex
	docs    map[string]*fakeDocument
	openErr map[string]error
	opened  []string
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		docs:    make(map[string]*fakeDocument),
		openErr: make(map[string]error),
	}
}

func (e *fakeEngine) addDocument(path string, pages ...fakePage) *fakeDocument {
	doc := &fakeDocument{pages: pages, renderErr: make(map[int]error)}
	e.docs[path] = doc
	return doc
}

func (e *fakeEngine) Open(ctx context.Context, path string) (pdf.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.openErr[path]; err != nil {
		return nil, err
	}
	doc, ok := e.docs[path]
	if !ok {
		return nil, fmt.Errorf("%w: no such document", pdf.ErrDocumentUnreadable)
	}
	e.opened = append(e.opened, path)
	return doc, nil
}

func (e *fakeEngine) Close() error {
	return nil
}

// writtenPage is one page recorded by the fake writer.
type writtenPage struct {
	payloadLen int
	widthPt    float64
	heightPt   float64
}

type fakeWriter struct {
	pages    []writtenPage
	writeErr error
	written  string
}

func (w *fakeWriter) AddImagePage(jpegData []byte, widthPt, heightPt float64) error {
	w.pages = append(w.pages, writtenPage{
		payloadLen: len(jpegData),
		widthPt:    widthPt,
		heightPt:   heightPt,
	})
	return nil
}

func (w *fakeWriter) WriteFile(path string) error {
	if w.writeErr != nil {
		return w.writeErr
	}

	size := 0
	for _, page := range w.pages {
		size += page.payloadLen
	}
	w.written = path
	return os.WriteFile(path, make([]byte, size), 0644)
}

// fakeWriterFactory hands out fresh writers and remembers them for
// inspection.
type fakeWriterFactory struct {
	mu      sync.Mutex
	writers []*fakeWriter
}

func (f *fakeWriterFactory) new() pdf.Writer {
	f.mu.Lock()
	defer f.mu.Unlock()

	w := &fakeWriter{}
	f.writers = append(f.writers, w)
	return w
}

func (f *fakeWriterFactory) last() *fakeWriter {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.writers) == 0 {
		return nil
	}
	return f.writers[len(f.writers)-1]
}
