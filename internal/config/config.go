package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds application configuration
type Config struct {
	WorkingDir   string
	AppDataDir   string
	DatabasePath string
	Logger       *slog.Logger

	// Thumbnail cache capacities (hard entry-count ceilings)
	PageThumbnailCacheSize    int
	PreviewThumbnailCacheSize int

	// Worker pool size for async metadata loads
	MetadataWorkers int

	// DPI used when rendering page 0 for file-list thumbnails
	ThumbnailDPI float64
}

// New creates a new configuration instance
func New() *Config {
	cfg := &Config{
		Logger:                    slog.New(slog.NewTextHandler(os.Stderr, nil)),
		PageThumbnailCacheSize:    200,
		PreviewThumbnailCacheSize: 64,
		MetadataWorkers:           3,
		ThumbnailDPI:              36,
	}

	cfg.setupDirectories()

	return cfg
}

func (c *Config) setupDirectories() {
	// Working directory for in-flight compression output
	c.WorkingDir = filepath.Join(os.TempDir(), "slimpdf")
	os.MkdirAll(c.WorkingDir, 0755)

	// App data directory holds the history database
	c.AppDataDir = getAppDataDir()
	os.MkdirAll(c.AppDataDir, 0755)

	c.DatabasePath = filepath.Join(c.AppDataDir, "database.sqlite3")
}

func getAppDataDir() string {
	homeDir, _ := os.UserHomeDir()
	if runtime.GOOS == "darwin" {
		return filepath.Join(homeDir, "Library", "Application Support", "SlimPDF")
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "slimpdf")
	}
	return filepath.Join(homeDir, ".local", "share", "slimpdf")
}
