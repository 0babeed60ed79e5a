package plotview

import (
	"fmt"
	"math"
)

// OuterPadFactor is the ratio between the outer-bounds span and the visible
// span. It is empirically tuned: large enough that precomputed ticks
// survive small pans, small enough to keep tick arrays short.
const OuterPadFactor = 1.5

// ComputeBounds returns the data-space rectangle visible through m on a
// canvas of the given size. The canvas corners (0,0) and (w,h) are
// inverse-transformed; the first lands in X/Y and the second in
// Width/Height.
func ComputeBounds(m Matrix, size Size) (Rect, error) {
	if !size.Valid() {
		return Rect{}, fmt.Errorf("%w: %gx%g", ErrInvalidSize, size.Width, size.Height)
	}
	inv, err := m.Invert()
	if err != nil {
		return Rect{}, err
	}
	tl := inv.TransformPoint(Point{})
	br := inv.TransformPoint(Point{X: size.Width, Y: size.Height})
	return Rect{X: tl.X, Y: tl.Y, Width: br.X, Height: br.Y}, nil
}

// ComputeOuterBounds pads bounds on every side so that the padded span is
// OuterPadFactor times the visible span. The result uses the same corner
// convention as bounds and is always ordered (X <= Width, Y <= Height),
// even when an axis is flipped.
func ComputeOuterBounds(bounds Rect) Rect {
	x0, x1 := ordered(bounds.X, bounds.Width)
	y0, y1 := ordered(bounds.Y, bounds.Height)
	padX := (x1 - x0) * (OuterPadFactor - 1) / 2
	padY := (y1 - y0) * (OuterPadFactor - 1) / 2
	return Rect{
		X:      x0 - padX,
		Y:      y0 - padY,
		Width:  x1 + padX,
		Height: y1 + padY,
	}
}

func ordered(a, b float64) (float64, float64) {
	return math.Min(a, b), math.Max(a, b)
}
