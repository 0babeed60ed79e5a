package recording

import (
	"image"
	"image/color"
	"math"
)

// Rect is an axis-aligned rectangle in canvas pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect creates a Rect.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// Intersect returns the largest rectangle contained in both r and s.
func (r Rect) Intersect(s Rect) Rect {
	x0 := math.Max(r.X, s.X)
	y0 := math.Max(r.Y, s.Y)
	x1 := math.Min(r.X+r.Width, s.X+s.Width)
	y1 := math.Min(r.Y+r.Height, s.Y+s.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Image returns the pixel rectangle covered by r, rounded outward.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
}

// Align is the horizontal alignment of a text label about its anchor.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Stroke describes how a line is stroked.
type Stroke struct {
	// Width is the line width in pixels.
	Width float64
	Color color.RGBA
	// Dash alternates on and off lengths in pixels. Empty means solid.
	Dash []float64
}

// IsDashed reports whether the stroke has a usable dash pattern.
func (s Stroke) IsDashed() bool {
	total := 0.0
	for _, d := range s.Dash {
		if d < 0 {
			return false
		}
		total += d
	}
	return total > 0
}

// Hex parses a "#rrggbb" or "#rrggbbaa" color, with straight alpha,
// into a premultiplied color. Malformed input yields opaque black.
func Hex(s string) color.RGBA {
	c := color.RGBA{A: 0xff}
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 8 {
		return c
	}
	var v [4]uint8
	v[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return c
		}
		v[i] = hi<<4 | lo
	}
	nc := color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
	return color.RGBAModel.Convert(nc).(color.RGBA)
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
