package metadata

import (
	"context"
	"image"
	"log/slog"
	"os"
	"sync"

	"slimpdf/internal/imaging"
	"slimpdf/internal/pdf"
	"slimpdf/internal/thumbcache"
)

// DefaultZoom is the zoom bucket used for file-list thumbnails.
const DefaultZoom = 1.0

// Thumbnails are scaled into this box, preserving aspect ratio.
const (
	thumbnailMaxWidth  = 160
	thumbnailMaxHeight = 160
)

const jobQueueSize = 256

// UpdateKind discriminates loader updates.
type UpdateKind int

const (
	UpdateLoading UpdateKind = iota
	UpdateSize
	UpdatePageCount
	UpdateThumbnail
	UpdateError
	UpdateDone
)

// Update is one computed result handed from a worker to the consumer. The
// consumer applies updates to the owning DocumentItem; workers never touch
// shared state directly. Updates for different paths arrive in no particular
// order, so consumers must key on Path.
type Update struct {
	Path      string
	Kind      UpdateKind
	Size      int64
	PageCount int
	Thumbnail image.Image
	Error     string
}

// Loader populates document metadata off the UI goroutine using a fixed
// worker pool. One item's failure never blocks or cancels another's load.
type Loader struct {
	engine   pdf.Engine
	cache    *thumbcache.Cache
	logger   *slog.Logger
	workers  int
	thumbDPI float64

	jobs    chan string
	updates chan Update

	startOnce sync.Once
	closeOnce sync.Once
	wg        sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewLoader creates a loader with the given pool size and thumbnail render
// DPI. The cache is shared with the rest of the app; the loader keeps no
// private thumbnail store.
func NewLoader(engine pdf.Engine, cache *thumbcache.Cache, workers int, thumbDPI float64, logger *slog.Logger) *Loader {
	return &Loader{
		engine:   engine,
		cache:    cache,
		logger:   logger,
		workers:  workers,
		thumbDPI: thumbDPI,
		jobs:     make(chan string, jobQueueSize),
		updates:  make(chan Update, jobQueueSize),
	}
}

// Start launches the worker pool. Workers exit when the context is cancelled
// or Close is called.
func (l *Loader) Start(ctx context.Context) {
	l.startOnce.Do(func() {
		for i := 0; i < l.workers; i++ {
			l.wg.Add(1)
			go l.worker(ctx)
		}
		go func() {
			l.wg.Wait()
			close(l.updates)
		}()
	})
}

// Load schedules a metadata load for path. Results arrive on Updates.
// Loads after Close are dropped.
func (l *Loader) Load(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	l.jobs <- path
}

// Updates is the completion channel. Exactly one consumer goroutine should
// drain it and apply updates to the observable items.
func (l *Loader) Updates() <-chan Update {
	return l.updates
}

// Close stops accepting new loads and lets in-flight ones finish. Updates is
// closed once the pool drains.
func (l *Loader) Close() {
	l.closeOnce.Do(func() {
		l.mu.Lock()
		l.closed = true
		l.mu.Unlock()
		close(l.jobs)
	})
}

func (l *Loader) worker(ctx context.Context) {
	defer l.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-l.jobs:
			if !ok {
				return
			}
			l.loadOne(ctx, path)
		}
	}
}

// loadOne runs the per-item algorithm: size, page count, thumbnail. Once the
// document read begins the item is loaded to completion; cancellation is
// only honored before the read starts.
func (l *Loader) loadOne(ctx context.Context, path string) {
	if !l.emit(ctx, Update{Path: path, Kind: UpdateLoading}) {
		return
	}

	if info, err := os.Stat(path); err == nil {
		if !l.emit(ctx, Update{Path: path, Kind: UpdateSize, Size: info.Size()}) {
			return
		}
	}

	if ctx.Err() != nil {
		return
	}

	doc, err := l.engine.Open(ctx, path)
	if err != nil {
		l.logger.Warn("metadata load failed", "path", path, "error", err)
		l.emit(ctx, Update{Path: path, Kind: UpdateError, Error: err.Error()})
		return
	}
	defer doc.Close()

	if !l.emit(ctx, Update{Path: path, Kind: UpdatePageCount, PageCount: doc.PageCount()}) {
		return
	}

	thumb, ok := l.cache.Get(path, 0, DefaultZoom)
	if !ok {
		raster, err := doc.RenderPage(ctx, 0, l.thumbDPI)
		if err != nil {
			l.logger.Warn("thumbnail render failed", "path", path, "error", err)
			l.emit(ctx, Update{Path: path, Kind: UpdateError, Error: err.Error()})
			return
		}
		thumb = imaging.FitInto(raster, thumbnailMaxWidth, thumbnailMaxHeight)
		l.cache.Put(path, 0, DefaultZoom, thumb)
	}

	if !l.emit(ctx, Update{Path: path, Kind: UpdateThumbnail, Thumbnail: thumb}) {
		return
	}

	l.emit(ctx, Update{Path: path, Kind: UpdateDone})
}

func (l *Loader) emit(ctx context.Context, u Update) bool {
	select {
	case l.updates <- u:
		return true
	case <-ctx.Done():
		return false
	}
}
