// Package charts rasterizes dashboard chart configs as PNG images, with an
// in-memory cache keyed by request URI.
package charts

import (
	"github.com/dgraph-io/ristretto/v2"

	"github.com/Terry84/sdg2-dashboard/internal/analytics"
)

// Renderer renders chart configs to PNG and caches the results. Safe for
// concurrent use.
type Renderer struct {
	cache *ristretto.Cache[string, []byte]
}

// NewRenderer builds a renderer with a bounded in-memory PNG cache.
func NewRenderer() (*Renderer, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 1e4,
		MaxCost:     64 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{cache: cache}, nil
}

// Render returns the PNG for a chart config, reusing cached bytes when the
// key has been rendered before.
func (r *Renderer) Render(key string, config analytics.ChartConfig) ([]byte, error) {
	if data, found := r.cache.Get(key); found {
		return data, nil
	}

	data, err := RenderPNG(config)
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, data, int64(len(data)))
	return data, nil
}

// Wait blocks until pending cache writes are visible to readers.
func (r *Renderer) Wait() {
	r.cache.Wait()
}

// Close releases the cache's resources.
func (r *Renderer) Close() {
	r.cache.Close()
}
