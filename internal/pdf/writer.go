package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// pageWriter implements Writer using gofpdf. Pages are sized in points to
// match the source media boxes exactly.
type pageWriter struct {
	doc   *gofpdf.Fpdf
	pages int
}

// NewPageWriter returns a Writer that assembles an image-only PDF.
func NewPageWriter() Writer {
	doc := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt"})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)

	return &pageWriter{doc: doc}
}

func (w *pageWriter) AddImagePage(jpegData []byte, widthPt, heightPt float64) error {
	// AddPageFormat interprets the size as portrait dimensions and swaps
	// them under "L" orientation. Passing "P" keeps the media box exactly
	// as given, for wide pages too.
	w.doc.AddPageFormat("P", gofpdf.SizeType{Wd: widthPt, Ht: heightPt})

	name := fmt.Sprintf("page-%d", w.pages)
	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	w.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(jpegData))
	w.doc.ImageOptions(name, 0, 0, widthPt, heightPt, false, opts, 0, "")
	w.pages++

	if err := w.doc.Error(); err != nil {
		return fmt.Errorf("failed to place page image: %w", err)
	}
	return nil
}

func (w *pageWriter) WriteFile(path string) error {
	return w.doc.OutputFileAndClose(path)
}
