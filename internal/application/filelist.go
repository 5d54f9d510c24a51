package application

import (
	"context"
	"sort"
	"sync"

	"slimpdf/internal/common"
	"slimpdf/internal/metadata"
	"slimpdf/internal/thumbcache"
	"slimpdf/internal/transport"
)

// FileListManager owns the picker list of DocumentItems. It is the single
// consumer of the loader's update channel: workers compute values, and only
// the drain goroutine here applies them to items before pushing snapshots to
// the UI.
type FileListManager struct {
	loader  *metadata.Loader
	cache   *thumbcache.Cache
	emitter transport.EventEmitter

	mu    sync.Mutex
	items map[string]*metadata.DocumentItem
}

func NewFileListManager(loader *metadata.Loader, cache *thumbcache.Cache, emitter transport.EventEmitter) *FileListManager {
	return &FileListManager{
		loader:  loader,
		cache:   cache,
		emitter: emitter,
		items:   make(map[string]*metadata.DocumentItem),
	}
}

// Start launches the drain goroutine. It exits when the loader's update
// channel closes.
func (m *FileListManager) Start(ctx context.Context) {
	go m.drain(ctx)
}

func (m *FileListManager) drain(ctx context.Context) {
	for update := range m.loader.Updates() {
		m.mu.Lock()
		item, ok := m.items[update.Path]
		if !ok {
			// Item was removed while its load was in flight
			m.mu.Unlock()
			continue
		}
		item.Apply(update)
		snapshot := m.snapshot(item)
		m.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		m.emitter.Emit(transport.EventFileMetadata, snapshot)
	}
}

// Add registers paths and schedules their metadata loads. Paths already in
// the list are ignored.
func (m *FileListManager) Add(paths []string) {
	for _, path := range paths {
		normalized := common.NormalizePath(path)

		m.mu.Lock()
		_, exists := m.items[normalized]
		if !exists {
			m.items[normalized] = metadata.NewDocumentItem(normalized)
		}
		m.mu.Unlock()

		if !exists {
			m.loader.Load(normalized)
		}
	}
}

// Remove drops an item and evicts its cached thumbnails so a replaced file
// never serves stale pages.
func (m *FileListManager) Remove(path string) {
	normalized := common.NormalizePath(path)

	m.mu.Lock()
	delete(m.items, normalized)
	m.mu.Unlock()

	m.cache.ClearForDocument(normalized)
}

// Clear empties the list.
func (m *FileListManager) Clear() {
	m.mu.Lock()
	paths := make([]string, 0, len(m.items))
	for path := range m.items {
		paths = append(paths, path)
	}
	m.items = make(map[string]*metadata.DocumentItem)
	m.mu.Unlock()

	for _, path := range paths {
		m.cache.ClearForDocument(path)
	}
}

// Paths returns the current list of document paths in stable order.
func (m *FileListManager) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	paths := make([]string, 0, len(m.items))
	for path := range m.items {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Snapshots returns UI snapshots of all items in stable order.
func (m *FileListManager) Snapshots() []transport.FileMetadataUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshots := make([]transport.FileMetadataUpdate, 0, len(m.items))
	for _, item := range m.items {
		snapshots = append(snapshots, m.snapshot(item))
	}
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].Path < snapshots[j].Path })
	return snapshots
}

// snapshot converts an item to its transport form. Callers hold m.mu.
func (m *FileListManager) snapshot(item *metadata.DocumentItem) transport.FileMetadataUpdate {
	return transport.FileMetadataUpdate{
		Path:      item.Path,
		Size:      item.Size,
		PageCount: item.PageCount,
		Thumbnail: encodeThumbnail(item.Thumbnail),
		Loading:   item.Loading,
		Error:     item.Error,
	}
}
