package pdf

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/klippa-app/go-pdfium/single_threaded"
)

const instanceTimeout = 30 * time.Second

// PdfiumEngine implements Engine on top of the PDFium library. The
// single-threaded pool serializes calls internally, so one engine can be
// shared by the metadata workers and the compression task.
type PdfiumEngine struct {
	pool     pdfium.Pool
	instance pdfium.Pdfium
}

// NewPdfiumEngine initializes the PDFium runtime and acquires an instance.
func NewPdfiumEngine() (*PdfiumEngine, error) {
	pool := single_threaded.Init(single_threaded.Config{})

	instance, err := pool.GetInstance(instanceTimeout)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to acquire pdfium instance: %w", err)
	}

	return &PdfiumEngine{
		pool:     pool,
		instance: instance,
	}, nil
}

func (e *PdfiumEngine) Open(ctx context.Context, path string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := e.instance.OpenDocument(&requests.OpenDocument{
		FilePath: &path,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	pageCount, err := e.instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: doc.Document,
	})
	if err != nil {
		e.closeDocument(doc.Document)
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	if pageCount.PageCount <= 0 {
		e.closeDocument(doc.Document)
		return nil, fmt.Errorf("%w: document has no pages", ErrDocumentUnreadable)
	}

	return &pdfiumDocument{
		engine:    e,
		ref:       doc.Document,
		pageCount: pageCount.PageCount,
	}, nil
}

func (e *PdfiumEngine) Close() error {
	if e.instance != nil {
		e.instance.Close()
	}
	e.pool.Close()
	return nil
}

func (e *PdfiumEngine) closeDocument(ref references.FPDF_DOCUMENT) {
	e.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{Document: ref})
}

type pdfiumDocument struct {
	engine    *PdfiumEngine
	ref       references.FPDF_DOCUMENT
	pageCount int
}

func (d *pdfiumDocument) PageCount() int {
	return d.pageCount
}

func (d *pdfiumDocument) PageSize(index int) (float64, float64, error) {
	size, err := d.engine.instance.GetPageSize(&requests.GetPageSize{
		Page: requests.Page{
			ByIndex: &requests.PageByIndex{
				Document: d.ref,
				Index:    index,
			},
		},
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read page %d media box: %w", index, err)
	}

	return size.Width, size.Height, nil
}

func (d *pdfiumDocument) RenderPage(ctx context.Context, index int, dpi float64) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rendered, err := d.engine.instance.RenderPageInDPI(&requests.RenderPageInDPI{
		DPI: int(dpi),
		Page: requests.Page{
			ByIndex: &requests.PageByIndex{
				Document: d.ref,
				Index:    index,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", index, err)
	}

	return rendered.Result.Image, nil
}

func (d *pdfiumDocument) Close() error {
	d.engine.closeDocument(d.ref)
	return nil
}
