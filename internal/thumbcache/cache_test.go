package thumbcache

import (
	"fmt"
	"image"
	"sync"
	"testing"
)

func thumb(n int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, n+1, n+1))
}

func TestCacheRoundTrip(t *testing.T) {
	cache := New(10)
	img := thumb(1)

	cache.Put("/docs/a.pdf", 0, 1.0, img)

	got, ok := cache.Get("/docs/a.pdf", 0, 1.0)
	if !ok {
		t.Fatal("Expected cache hit")
	}
	if got != img {
		t.Error("Expected the same image back")
	}

	if _, ok := cache.Get("/docs/a.pdf", 1, 1.0); ok {
		t.Error("Expected miss for a different page index")
	}
	if _, ok := cache.Get("/docs/b.pdf", 0, 1.0); ok {
		t.Error("Expected miss for a different path")
	}
}

func TestCacheZoomQuantization(t *testing.T) {
	cache := New(10)
	img := thumb(1)

	cache.Put("/docs/a.pdf", 0, 1.0, img)

	tests := []struct {
		name string
		zoom float64
		hit  bool
	}{
		{name: "exact", zoom: 1.0, hit: true},
		{name: "rounds down into bucket", zoom: 1.04, hit: true},
		{name: "rounds up into bucket", zoom: 0.96, hit: true},
		{name: "next bucket", zoom: 1.1, hit: false},
		{name: "previous bucket", zoom: 0.9, hit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := cache.Get("/docs/a.pdf", 0, tt.zoom)
			if ok != tt.hit {
				t.Errorf("zoom %v: expected hit=%v, got %v", tt.zoom, tt.hit, ok)
			}
		})
	}
}

func TestCacheEviction(t *testing.T) {
	const capacity = 5
	cache := New(capacity)

	for i := 0; i < capacity; i++ {
		cache.Put(fmt.Sprintf("/docs/%d.pdf", i), 0, 1.0, thumb(i))
	}

	// One over capacity: the oldest entry must go
	cache.Put("/docs/extra.pdf", 0, 1.0, thumb(99))

	if cache.Len() != capacity {
		t.Errorf("Expected %d entries, got %d", capacity, cache.Len())
	}
	if _, ok := cache.Get("/docs/0.pdf", 0, 1.0); ok {
		t.Error("Expected the least-recently-used entry to be evicted")
	}
}

func TestCacheReadRefreshesRecency(t *testing.T) {
	const capacity = 3
	cache := New(capacity)

	cache.Put("/docs/0.pdf", 0, 1.0, thumb(0))
	cache.Put("/docs/1.pdf", 0, 1.0, thumb(1))
	cache.Put("/docs/2.pdf", 0, 1.0, thumb(2))

	// Reading the oldest entry must protect it from the next eviction
	if _, ok := cache.Get("/docs/0.pdf", 0, 1.0); !ok {
		t.Fatal("Expected hit for /docs/0.pdf")
	}

	cache.Put("/docs/3.pdf", 0, 1.0, thumb(3))

	if _, ok := cache.Get("/docs/0.pdf", 0, 1.0); !ok {
		t.Error("Expected refreshed entry to survive eviction")
	}
	if _, ok := cache.Get("/docs/1.pdf", 0, 1.0); ok {
		t.Error("Expected the cold entry to be evicted instead")
	}
}

func TestCacheClearForDocument(t *testing.T) {
	cache := New(10)

	cache.Put("/docs/a.pdf", 0, 1.0, thumb(0))
	cache.Put("/docs/a.pdf", 1, 1.0, thumb(1))
	cache.Put("/docs/a.pdf", 1, 2.0, thumb(2))
	cache.Put("/docs/b.pdf", 0, 1.0, thumb(3))

	cache.ClearForDocument("/docs/a.pdf")

	if cache.Len() != 1 {
		t.Errorf("Expected 1 entry after clearing, got %d", cache.Len())
	}
	if _, ok := cache.Get("/docs/b.pdf", 0, 1.0); !ok {
		t.Error("Expected entries for other documents to survive")
	}
}

func TestCacheClear(t *testing.T) {
	cache := New(10)

	cache.Put("/docs/a.pdf", 0, 1.0, thumb(0))
	cache.Put("/docs/b.pdf", 0, 1.0, thumb(1))

	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("Expected empty cache, got %d entries", cache.Len())
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	cache := New(50)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				path := fmt.Sprintf("/docs/%d.pdf", i%20)
				cache.Put(path, w, 1.0, thumb(i))
				cache.Get(path, w, 1.0)
				if i%50 == 0 {
					cache.ClearForDocument(path)
				}
			}
		}(w)
	}
	wg.Wait()

	if cache.Len() > 50 {
		t.Errorf("Cache exceeded its capacity: %d entries", cache.Len())
	}
}
