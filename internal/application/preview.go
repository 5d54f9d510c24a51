package application

import (
	"context"
	"fmt"

	"slimpdf/internal/common"
	"slimpdf/internal/pdf"
	"slimpdf/internal/thumbcache"
)

const previewBaseDPI = 72.0

// PreviewHandler renders page previews for the merge and compress views.
// Previews go through their own bounded cache, separate from the file-list
// thumbnails.
type PreviewHandler struct {
	engine pdf.Engine
	cache  *thumbcache.Cache
}

func NewPreviewHandler(engine pdf.Engine, cache *thumbcache.Cache) *PreviewHandler {
	return &PreviewHandler{
		engine: engine,
		cache:  cache,
	}
}

// PagePreview returns a data URL for one page at the given zoom, rendering
// and caching on a miss. Zoom shares the cache's 0.1 bucketing, so two
// requests at nearly the same zoom hit the same entry.
func (h *PreviewHandler) PagePreview(ctx context.Context, path string, pageIndex int, zoom float64) (string, error) {
	if zoom <= 0 {
		zoom = 1.0
	}
	normalized := common.NormalizePath(path)

	if img, ok := h.cache.Get(normalized, pageIndex, zoom); ok {
		return encodeThumbnail(img), nil
	}

	doc, err := h.engine.Open(ctx, normalized)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	if pageIndex < 0 || pageIndex >= doc.PageCount() {
		return "", fmt.Errorf("page %d out of range (document has %d pages)", pageIndex, doc.PageCount())
	}

	img, err := doc.RenderPage(ctx, pageIndex, previewBaseDPI*zoom)
	if err != nil {
		return "", err
	}

	h.cache.Put(normalized, pageIndex, zoom, img)
	return encodeThumbnail(img), nil
}
