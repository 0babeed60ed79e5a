package layers

import (
	"image/color"
	"math"

	"github.com/gogpu/plotview"
	"github.com/gogpu/plotview/recording"
	"github.com/gogpu/plotview/ticks"
)

// MinMinorAlpha is the opacity floor of minor grid lines.
const MinMinorAlpha = 0.1

// Grid draws minor and major grid lines for both axes and the origin
// lines through zero.
//
// Lines span the outer bounds so that a small pan does not uncover an
// unlined edge before the next frame.
type Grid struct {
	// Density multiplies the number of major lines. Zero means 1.
	Density float64
	// Width is the line width in pixels. Zero means 1.
	Width float64

	Minor  color.RGBA
	Major  color.RGBA
	Origin color.RGBA

	// HideOrigin suppresses the origin lines.
	HideOrigin bool
}

// NewGrid returns a grid in the colors of theme.
func NewGrid(theme Theme) *Grid {
	return &Grid{
		Density: 1,
		Width:   1,
		Minor:   theme.MinorGrid,
		Major:   theme.MajorGrid,
		Origin:  theme.Origin,
	}
}

// MinorAlpha returns the opacity of minor lines for a visible span. Minor
// lines fade out as the span grows toward the next power of ten, where
// they are about to become major lines.
func MinorAlpha(span float64) float64 {
	span = math.Abs(span)
	if !(span > 0) || math.IsInf(span, 0) {
		return 1
	}
	blend := span / math.Pow(10, float64(ticks.ZoomLevel(span)))
	return math.Max(MinMinorAlpha, 1-blend/10)
}

// Draw implements Layer.
func (g *Grid) Draw(rec *recording.Recorder, s plotview.ViewState) {
	density := g.Density
	if density <= 0 {
		density = 1
	}
	width := g.Width
	if width <= 0 {
		width = 1
	}
	o := s.OuterBounds
	xs := ticks.ForAxis(s.Bounds, o, ticks.AxisX, density)
	ys := ticks.ForAxis(s.Bounds, o, ticks.AxisY, density)

	rec.SetTransform(s.Transform)

	vertical := func(values []float64, st recording.Stroke) {
		for _, x := range values {
			rec.StrokeLine(plotview.Pt(x, o.Y), plotview.Pt(x, o.Height), st)
		}
	}
	horizontal := func(values []float64, st recording.Stroke) {
		for _, y := range values {
			rec.StrokeLine(plotview.Pt(o.X, y), plotview.Pt(o.Width, y), st)
		}
	}

	vertical(xs.MinorTicks, recording.Stroke{Width: width, Color: withAlpha(g.Minor, MinorAlpha(s.Bounds.SpanX()))})
	horizontal(ys.MinorTicks, recording.Stroke{Width: width, Color: withAlpha(g.Minor, MinorAlpha(s.Bounds.SpanY()))})

	major := recording.Stroke{Width: width, Color: g.Major}
	vertical(xs.MajorTicks, major)
	horizontal(ys.MajorTicks, major)

	if g.HideOrigin {
		return
	}
	origin := recording.Stroke{Width: width, Color: g.Origin}
	if inside(0, o.X, o.Width) {
		vertical([]float64{0}, origin)
	}
	if inside(0, o.Y, o.Height) {
		horizontal([]float64{0}, origin)
	}
}
