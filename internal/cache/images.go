package cache

import (
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxConcurrentDownloads = 6

var httpClient = &http.Client{Timeout: 10 * time.Second}

// ImageCache keeps slide artwork on disk and decoded in memory.
type ImageCache struct {
	cacheDir string
	client   *http.Client
	memory   sync.Map // url -> *ebiten.Image
	loading  sync.Map // url -> *loadEntry
	sem      chan struct{}
}

// loadEntry collects the callbacks waiting on one download.
type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(*ebiten.Image)
}

func (e *loadEntry) add(cb func(*ebiten.Image)) {
	e.mu.Lock()
	e.callbacks = append(e.callbacks, cb)
	e.mu.Unlock()
}

func (e *loadEntry) waiters() []func(*ebiten.Image) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append(([]func(*ebiten.Image))(nil), e.callbacks...)
}

// NewImageCache creates a cache rooted at cacheDir.
func NewImageCache(cacheDir string) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		cacheDir: cacheDir,
		client:   httpClient,
		sem:      make(chan struct{}, maxConcurrentDownloads),
	}, nil
}

// Get returns the decoded image for url if it is in memory.
func (ic *ImageCache) Get(url string) *ebiten.Image {
	if v, ok := ic.memory.Load(url); ok {
		return v.(*ebiten.Image)
	}
	return nil
}

// LoadAsync fetches url in the background and calls cb with the image.
// Concurrent requests for the same url share one download. cb may run on
// another goroutine and is not called when the download fails.
func (ic *ImageCache) LoadAsync(url string, cb func(*ebiten.Image)) {
	if img := ic.Get(url); img != nil {
		cb(img)
		return
	}

	entry := &loadEntry{callbacks: []func(*ebiten.Image){cb}}
	if existing, loaded := ic.loading.LoadOrStore(url, entry); loaded {
		existing.(*loadEntry).add(cb)
		return
	}

	go func() {
		defer ic.loading.Delete(url)

		ic.sem <- struct{}{}
		img, err := ic.loadImage(url)
		<-ic.sem
		if err != nil {
			return
		}

		eimg := ebiten.NewImageFromImage(img)
		ic.memory.Store(url, eimg)
		for _, waiter := range entry.waiters() {
			waiter(eimg)
		}
	}()
}

// loadImage decodes url from the disk cache, downloading it on a miss.
func (ic *ImageCache) loadImage(url string) (image.Image, error) {
	diskPath := ic.diskPath(url)

	if img, err := decodeFile(diskPath); err == nil {
		return img, nil
	} else if !os.IsNotExist(err) {
		// Corrupt cache file, fetch it again.
		os.Remove(diskPath)
	}

	resp, err := ic.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	if err == nil {
		// Keep whatever the decoder left unread so the disk copy is whole.
		_, err = io.Copy(io.Discard, tee)
	}
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return img, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func (ic *ImageCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// Clear drops every decoded image from memory.
func (ic *ImageCache) Clear() {
	ic.memory.Range(func(k, _ any) bool {
		ic.memory.Delete(k)
		return true
	})
}

// ClearDisk removes the on-disk cache.
func (ic *ImageCache) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
