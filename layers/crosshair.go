package layers

import (
	"image/color"

	"github.com/gogpu/plotview"
	"github.com/gogpu/plotview/recording"
)

// Crosshair draws dashed full-canvas lines through the pointer.
type Crosshair struct {
	Color color.RGBA
	Width float64
	Dash  []float64

	pos     plotview.Point
	visible bool
}

// NewCrosshair returns a hidden crosshair in the colors of theme.
func NewCrosshair(theme Theme) *Crosshair {
	return &Crosshair{
		Color: theme.Crosshair,
		Width: 1,
		Dash:  []float64{5, 5},
	}
}

// Move shows the crosshair at pos, in canvas pixels.
func (c *Crosshair) Move(pos plotview.Point) {
	c.pos = pos
	c.visible = true
}

// Hide removes the crosshair until the next Move.
func (c *Crosshair) Hide() {
	c.visible = false
}

// Position returns the pointer position and whether the crosshair is
// shown.
func (c *Crosshair) Position() (plotview.Point, bool) {
	return c.pos, c.visible
}

// Draw implements Layer.
func (c *Crosshair) Draw(rec *recording.Recorder, s plotview.ViewState) {
	if !c.visible {
		return
	}
	st := recording.Stroke{Width: lineWidth(c.Width), Color: c.Color, Dash: c.Dash}
	w, h := s.CanvasSize.Width, s.CanvasSize.Height
	rec.ResetTransform()
	rec.StrokeLine(plotview.Pt(0, c.pos.Y), plotview.Pt(w, c.pos.Y), st)
	rec.StrokeLine(plotview.Pt(c.pos.X, 0), plotview.Pt(c.pos.X, h), st)
}
