package labels

import "github.com/gogpu/plotview/internal/lru"

// DefaultCacheSize is the number of widths Cached keeps by default.
const DefaultCacheSize = 512

// Cached remembers the widths reported by another Measurer. Axis labels
// repeat from frame to frame, so shaping each distinct string once is
// enough.
//
// Cached is safe for concurrent use if the wrapped Measurer is.
type Cached struct {
	m      Measurer
	widths *lru.Cache[string, float64]
}

// NewCached wraps m with a cache of up to size widths. Sizes <= 0 use
// DefaultCacheSize.
func NewCached(m Measurer, size int) *Cached {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cached{m: m, widths: lru.New[string, float64](size)}
}

// Width implements Measurer.
func (c *Cached) Width(s string) float64 {
	return c.widths.GetOrAdd(s, func() float64 { return c.m.Width(s) })
}

// Stats returns the cache counters.
func (c *Cached) Stats() lru.Stats {
	return c.widths.Stats()
}
