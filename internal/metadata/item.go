package metadata

import "image"

// DocumentItem is the UI-facing metadata record for one file in a picker
// list. Identity is the normalized absolute path. The item is owned by the
// UI list that holds it; only the single goroutine draining loader updates
// may mutate it, through Apply.
type DocumentItem struct {
	Path      string      `json:"path"`
	Size      int64       `json:"size"`
	PageCount int         `json:"page_count"`
	Thumbnail image.Image `json:"-"`
	Loading   bool        `json:"loading"`
	Error     string      `json:"error,omitempty"`
}

// NewDocumentItem creates an item in its loading state.
func NewDocumentItem(path string) *DocumentItem {
	return &DocumentItem{
		Path:    path,
		Loading: true,
	}
}

// Apply folds one loader update into the item.
func (item *DocumentItem) Apply(u Update) {
	switch u.Kind {
	case UpdateLoading:
		item.Loading = true
	case UpdateSize:
		item.Size = u.Size
	case UpdatePageCount:
		item.PageCount = u.PageCount
	case UpdateThumbnail:
		item.Thumbnail = u.Thumbnail
	case UpdateError:
		item.Error = u.Error
		item.Loading = false
	case UpdateDone:
		item.Error = ""
		item.Loading = false
	}
}
