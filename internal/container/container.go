package container

import (
	"log/slog"

	"slimpdf/internal/compression"
	"slimpdf/internal/config"
	"slimpdf/internal/metadata"
	"slimpdf/internal/pdf"
	"slimpdf/internal/services"
	"slimpdf/internal/thumbcache"
)

// Container holds all dependencies for the application. The thumbnail
// caches and the loader are deliberately single long-lived instances: one
// cache for the whole app, held here instead of in package globals.
type Container struct {
	config *config.Config
	logger *slog.Logger

	engine       pdf.Engine
	pageThumbs   *thumbcache.Cache
	previewCache *thumbcache.Cache
	loader       *metadata.Loader
	orchestrator *compression.Orchestrator
	documents    *services.DocumentService
	history      *services.HistoryService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	engine, err := pdf.NewPdfiumEngine()
	if err != nil {
		return nil, err
	}

	history, err := services.NewHistoryService(cfg.DatabasePath)
	if err != nil {
		engine.Close()
		return nil, err
	}

	pageThumbs := thumbcache.New(cfg.PageThumbnailCacheSize)
	previewCache := thumbcache.New(cfg.PreviewThumbnailCacheSize)

	pipeline := compression.NewPipeline(engine, pdf.NewPageWriter, cfg.Logger)

	return &Container{
		config:       cfg,
		logger:       cfg.Logger,
		engine:       engine,
		pageThumbs:   pageThumbs,
		previewCache: previewCache,
		loader:       metadata.NewLoader(engine, pageThumbs, cfg.MetadataWorkers, cfg.ThumbnailDPI, cfg.Logger),
		orchestrator: compression.NewOrchestrator(pipeline, cfg.Logger),
		documents:    services.NewDocumentService(),
		history:      history,
	}, nil
}

func (c *Container) Engine() pdf.Engine {
	return c.engine
}

func (c *Container) PageThumbnails() *thumbcache.Cache {
	return c.pageThumbs
}

func (c *Container) PreviewThumbnails() *thumbcache.Cache {
	return c.previewCache
}

func (c *Container) Loader() *metadata.Loader {
	return c.loader
}

func (c *Container) Orchestrator() *compression.Orchestrator {
	return c.orchestrator
}

func (c *Container) Documents() *services.DocumentService {
	return c.documents
}

func (c *Container) History() *services.HistoryService {
	return c.history
}

// Close releases the document engine. The loader must be closed first so no
// worker still holds a document handle.
func (c *Container) Close() {
	c.loader.Close()
	c.engine.Close()
}
