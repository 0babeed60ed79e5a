// Package labels measures the pixel width of axis labels.
//
// Two measurers are provided. Fixed uses the 7x13 bitmap face that the
// raster backend draws with, so measured and drawn widths agree exactly.
// Shaped runs text through a HarfBuzz shaper over a TrueType face and is
// used when labels are drawn by a renderer with proportional fonts.
package labels

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Measurer reports the advance width of a label in pixels.
type Measurer interface {
	Width(s string) float64
}

// Fixed measures text set in a fixed-advance bitmap face.
type Fixed struct {
	face font.Face
}

// NewFixed returns a Fixed measurer over basicfont.Face7x13.
func NewFixed() *Fixed {
	return &Fixed{face: basicfont.Face7x13}
}

// Face returns the underlying font face.
func (f *Fixed) Face() font.Face {
	return f.face
}

// Width implements Measurer.
func (f *Fixed) Width(s string) float64 {
	return toFloat(font.MeasureString(f.face, s))
}

// Height returns the line height of the face in pixels.
func (f *Fixed) Height() float64 {
	return toFloat(f.face.Metrics().Height)
}

// Ascent returns the distance from the baseline to the top of the face.
func (f *Fixed) Ascent() float64 {
	return toFloat(f.face.Metrics().Ascent)
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
