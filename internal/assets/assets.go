// Package assets loads the images the games draw (partner logos, avatars)
// into a per-instance cache. Loading happens once, concurrently, when a host
// mounts a game; a failed image is logged and simply stays missing so the
// renderer falls back to placeholder art.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/mlai-aus/arcade/internal/core"
)

// maxConcurrentLoads bounds the number of images decoded at once.
const maxConcurrentLoads = 8

// Asset is a decoded image plus the colour summary terminal hosts use
// when they cannot draw pixels.
type Asset struct {
	Path  string
	Image image.Image
	Avg   core.RGB
	Color core.Color
}

// Lookup is the read side of a Cache.
type Lookup interface {
	Get(path string) (*Asset, bool)
}

// Cache holds decoded assets keyed by path. It is owned by one host
// instance and discarded with it.
type Cache struct {
	fsys   fs.FS
	logger *log.Logger

	mu    sync.RWMutex
	items map[string]*Asset
}

// NewCache creates an empty cache reading from fsys. A nil fsys makes every
// load fail, which is useful for terminal hosts that never need pixels.
func NewCache(fsys fs.FS, logger *log.Logger) *Cache {
	if logger == nil {
		logger = log.Default()
	}
	return &Cache{
		fsys:   fsys,
		logger: logger,
		items:  make(map[string]*Asset),
	}
}

// Load decodes every path not already cached. Individual failures are
// logged and skipped; the returned error is non-nil only when ctx ends
// before loading finishes. It reports how many new assets were stored.
func (c *Cache) Load(ctx context.Context, paths []string) (int, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)

	var (
		countMu sync.Mutex
		loaded  int
	)

	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, ok := c.Get(p); ok {
			continue
		}

		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			a, err := c.decode(p)
			if err != nil {
				c.logger.Warn("asset load failed", "path", p, "error", err)
				return nil
			}

			c.mu.Lock()
			c.items[p] = a
			c.mu.Unlock()

			countMu.Lock()
			loaded++
			countMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return loaded, fmt.Errorf("assets: load interrupted: %w", err)
	}
	c.logger.Debug("assets loaded", "requested", len(paths), "loaded", loaded)
	return loaded, nil
}

func (c *Cache) decode(path string) (*Asset, error) {
	if c.fsys == nil {
		return nil, fmt.Errorf("assets: no filesystem for %s", path)
	}
	f, err := c.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}

	avg := Average(img)
	return &Asset{
		Path:  path,
		Image: img,
		Avg:   avg,
		Color: core.Nearest(avg),
	}, nil
}

// Get returns the cached asset for path.
func (c *Cache) Get(path string) (*Asset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.items[path]
	return a, ok
}

// Len returns the number of cached assets.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Clear drops every cached asset.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]*Asset)
	c.mu.Unlock()
}

// Average returns the alpha-weighted mean colour of img. Fully transparent
// images average to black.
func Average(img image.Image) core.RGB {
	b := img.Bounds()
	if b.Empty() {
		return core.RGB{}
	}

	// Sample on a coarse grid; logos are large and flat.
	step := max(1, min(b.Dx(), b.Dy())/32)

	var r, g, bl, weight uint64
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			if ca == 0 {
				continue
			}
			// RGBA is alpha-premultiplied, so summing and dividing by total
			// alpha yields the straight mean.
			r += uint64(cr)
			g += uint64(cg)
			bl += uint64(cb)
			weight += uint64(ca)
		}
	}
	if weight == 0 {
		return core.RGB{}
	}
	return core.RGB{
		R: uint8(r * 255 / weight),
		G: uint8(g * 255 / weight),
		B: uint8(bl * 255 / weight),
	}
}
