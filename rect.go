package plotview

import "math"

// Size is a canvas size in device pixels (after device-pixel-ratio scaling).
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Valid reports whether both dimensions are finite and non-negative.
func (s Size) Valid() bool {
	return s.Width >= 0 && s.Height >= 0 &&
		!math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0)
}

// Rect is a data-space rectangle.
//
// For view bounds, X and Y hold the data coordinates of the canvas'
// top-left corner while Width and Height hold the coordinates of the
// bottom-right corner rather than a size. Tick generators read the spans
// as Width-X and Height-Y.
type Rect struct {
	X, Y, Width, Height float64
}

// SpanX returns Width - X.
func (r Rect) SpanX() float64 {
	return r.Width - r.X
}

// SpanY returns Height - Y.
func (r Rect) SpanY() float64 {
	return r.Height - r.Y
}

// Corner returns the point stored in Width/Height.
func (r Rect) Corner() Point {
	return Point{X: r.Width, Y: r.Height}
}

// Origin returns the point stored in X/Y.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}
