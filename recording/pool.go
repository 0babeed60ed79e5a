package recording

import (
	"slices"

	"github.com/gogpu/plotview"
)

// ResourcePool stores the polylines and stroke styles referenced by
// recording commands. Add operations copy their input so that a
// Recording is unaffected by later changes to the caller's slices.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	polylines [][]plotview.Point
	strokes   []Stroke
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		polylines: make([][]plotview.Point, 0, 16),
		strokes:   make([]Stroke, 0, 8),
	}
}

// AddPolyline adds a copy of pts to the pool and returns its reference.
func (p *ResourcePool) AddPolyline(pts []plotview.Point) PolylineRef {
	p.polylines = append(p.polylines, slices.Clone(pts))
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PolylineRef(uint32(len(p.polylines) - 1))
}

// Polyline returns the polyline for ref, or nil if ref is out of range.
func (p *ResourcePool) Polyline(ref PolylineRef) []plotview.Point {
	if int(ref) >= len(p.polylines) {
		return nil
	}
	return p.polylines[ref]
}

// PolylineCount returns the number of polylines in the pool.
func (p *ResourcePool) PolylineCount() int {
	return len(p.polylines)
}

// AddStroke adds a stroke style and returns its reference. A style equal
// to the most recently added one is shared rather than stored again, so
// runs of identically styled lines cost one entry.
func (p *ResourcePool) AddStroke(s Stroke) StrokeRef {
	if n := len(p.strokes); n > 0 && strokeEqual(p.strokes[n-1], s) {
		// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
		return StrokeRef(uint32(n - 1))
	}
	s.Dash = slices.Clone(s.Dash)
	p.strokes = append(p.strokes, s)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return StrokeRef(uint32(len(p.strokes) - 1))
}

// Stroke returns the stroke style for ref, or the zero Stroke if ref is
// out of range.
func (p *ResourcePool) Stroke(ref StrokeRef) Stroke {
	if int(ref) >= len(p.strokes) {
		return Stroke{}
	}
	return p.strokes[ref]
}

// StrokeCount returns the number of stroke styles in the pool.
func (p *ResourcePool) StrokeCount() int {
	return len(p.strokes)
}

func strokeEqual(a, b Stroke) bool {
	return a.Width == b.Width && a.Color == b.Color && slices.Equal(a.Dash, b.Dash)
}
