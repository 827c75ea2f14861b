package cache

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

// ImageCache decodes local image files in the background and keeps the
// results in memory.
type ImageCache struct {
	root    string
	memory  sync.Map // path -> *ebiten.Image
	loading sync.Map // path -> *loadEntry (in-flight dedup with waiters)
	sem     chan struct{}
	log     *zap.Logger

	// toImage converts a decoded image; replaced in tests.
	toImage func(image.Image) *ebiten.Image

	loaded *atomic.Int64
	failed *atomic.Int64
}

// loadEntry tracks in-flight loads and their waiters.
type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(*ebiten.Image)
}

// Stats are cumulative load counters.
type Stats struct {
	Loaded int64
	Failed int64
}

// NewImageCache creates a cache resolving relative paths against root.
func NewImageCache(root string, logger *zap.Logger) *ImageCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageCache{
		root:    root,
		sem:     make(chan struct{}, 4),
		log:     logger.Named("images"),
		toImage: ebiten.NewImageFromImage,
		loaded:  atomic.NewInt64(0),
		failed:  atomic.NewInt64(0),
	}
}

// Resolve maps an image reference to a file path. Remote references are
// not fetched and resolve to "".
func (ic *ImageCache) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.Contains(ref, "://") {
		return ""
	}
	ref = filepath.FromSlash(strings.TrimPrefix(ref, "/"))
	if filepath.IsAbs(ref) || ic.root == "" {
		return ref
	}
	return filepath.Join(ic.root, ref)
}

// Get returns a cached image if available, or nil.
func (ic *ImageCache) Get(ref string) *ebiten.Image {
	if v, ok := ic.memory.Load(ic.Resolve(ref)); ok {
		return v.(*ebiten.Image)
	}
	return nil
}

// LoadAsync starts decoding ref in the background. The callback runs on a
// loader goroutine once the image is ready; it is not called on failure.
func (ic *ImageCache) LoadAsync(ref string, callback func(*ebiten.Image)) {
	path := ic.Resolve(ref)
	if path == "" {
		return
	}

	if v, ok := ic.memory.Load(path); ok {
		callback(v.(*ebiten.Image))
		return
	}

	entry := &loadEntry{}
	entry.callbacks = append(entry.callbacks, callback)

	if existing, loaded := ic.loading.LoadOrStore(path, entry); loaded {
		existingEntry := existing.(*loadEntry)
		existingEntry.mu.Lock()
		existingEntry.callbacks = append(existingEntry.callbacks, callback)
		existingEntry.mu.Unlock()
		return
	}

	go func() {
		defer ic.loading.Delete(path)

		ic.sem <- struct{}{}
		defer func() { <-ic.sem }()

		img, err := DecodeFile(path)
		if err != nil {
			ic.failed.Inc()
			ic.log.Warn("image load failed", zap.String("path", path), zap.Error(err))
			return
		}

		eimg := ic.toImage(img)
		ic.memory.Store(path, eimg)
		ic.loaded.Inc()

		entry.mu.Lock()
		cbs := make([]func(*ebiten.Image), len(entry.callbacks))
		copy(cbs, entry.callbacks)
		entry.mu.Unlock()

		for _, cb := range cbs {
			cb(eimg)
		}
	}()
}

// DecodeFile decodes a png, jpeg or webp file.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Stats returns the load counters.
func (ic *ImageCache) Stats() Stats {
	return Stats{Loaded: ic.loaded.Load(), Failed: ic.failed.Load()}
}

// Root returns the directory relative references resolve against.
func (ic *ImageCache) Root() string {
	return ic.root
}

// Clear removes all cached images from memory.
func (ic *ImageCache) Clear() {
	ic.memory.Range(func(k, _ any) bool {
		ic.memory.Delete(k)
		return true
	})
}
