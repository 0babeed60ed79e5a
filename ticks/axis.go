package ticks

import (
	"math"

	"github.com/gogpu/plotview"
)

// Axis selects the direction ForAxis computes ticks for.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// ForAxis computes ticks for one axis of a view: the spacing follows the
// visible bounds, and the ticks cover the outer bounds plus overscan so a
// pan within the outer bounds never exposes an untick'd edge.
func ForAxis(bounds, outer plotview.Rect, axis Axis, density float64) GridTickInfo {
	var span, lo, hi float64
	switch axis {
	case AxisY:
		span = bounds.SpanY()
		lo, hi = outer.Y, outer.Height
	default:
		span = bounds.SpanX()
		lo, hi = outer.X, outer.Width
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return Grid(math.Abs(span), lo, hi-lo, density)
}
