package layers

import (
	"image/color"

	"github.com/gogpu/plotview"
	"github.com/gogpu/plotview/recording"
	"github.com/gogpu/plotview/ticks"
	"github.com/gogpu/plotview/timeaxis"
)

// DefaultLabelPadding is the gap, in pixels, between a label and the
// canvas edge it is attached to.
const DefaultLabelPadding = 5

// ValueAxis labels the major Y ticks along the left edge of the canvas.
type ValueAxis struct {
	Density float64
	// Threshold is the decimal exponent beyond which labels use
	// exponential notation. Zero means ticks.DefaultLabelThreshold.
	Threshold int
	Padding   float64
	Color     color.RGBA
}

// Draw implements Layer.
func (a *ValueAxis) Draw(rec *recording.Recorder, s plotview.ViewState) {
	info := ticks.ForAxis(s.Bounds, s.OuterBounds, ticks.AxisY, orOne(a.Density))
	half := face.Height() / 2
	for _, v := range info.MajorTicks {
		p := s.TransformY.TransformPoint(plotview.Pt(0, v))
		if !inside(p.Y, 0, s.CanvasSize.Height) {
			continue
		}
		label := ticks.FormatLabel(v, info.MajorStepExponent, threshold(a.Threshold))
		rec.DrawText(label, plotview.Pt(a.Padding, p.Y-half), recording.AlignLeft, a.Color)
	}
}

// NumericAxis labels the major X ticks along the bottom edge of the
// canvas.
type NumericAxis struct {
	Density   float64
	Threshold int
	Padding   float64
	Color     color.RGBA
}

// Draw implements Layer.
func (a *NumericAxis) Draw(rec *recording.Recorder, s plotview.ViewState) {
	info := ticks.ForAxis(s.Bounds, s.OuterBounds, ticks.AxisX, orOne(a.Density))
	y := s.CanvasSize.Height - face.Height() - a.Padding
	for _, v := range info.MajorTicks {
		p := s.TransformX.TransformPoint(plotview.Pt(v, 0))
		if !inside(p.X, 0, s.CanvasSize.Width) {
			continue
		}
		label := ticks.FormatLabel(v, info.MajorStepExponent, threshold(a.Threshold))
		rec.DrawText(label, plotview.Pt(p.X, y), recording.AlignCenter, a.Color)
	}
}

// TimeAxis labels the X axis with calendar ticks, treating X as Unix
// seconds. Each spec of the active zoom level gets its own row, the
// coarsest at the bottom.
type TimeAxis struct {
	Axis    *timeaxis.Axis
	Padding float64
	// TickLength is the length, in pixels, of the mark drawn up from the
	// bottom edge at every tick. Zero draws no marks.
	TickLength float64
	Color      color.RGBA
}

// NewTimeAxis returns a time axis layer over axis in the colors of theme.
func NewTimeAxis(axis *timeaxis.Axis, theme Theme) *TimeAxis {
	return &TimeAxis{
		Axis:       axis,
		Padding:    DefaultLabelPadding,
		TickLength: 4,
		Color:      theme.Label,
	}
}

// Draw implements Layer.
func (a *TimeAxis) Draw(rec *recording.Recorder, s plotview.ViewState) {
	if a.Axis == nil {
		return
	}
	lo, hi := ordered(s.Bounds.X, s.Bounds.Width)
	levels := a.Axis.TickValues(lo, hi, s.CanvasSize.Width)
	h := s.CanvasSize.Height
	mark := recording.Stroke{Width: 1, Color: a.Color}
	for row, lt := range levels {
		y := h - a.TickLength - a.Padding - float64(row+1)*face.Height()
		for i, label := range a.Axis.Labels(lt) {
			p := s.TransformX.TransformPoint(plotview.Pt(lt.Values[i], 0))
			if !inside(p.X, 0, s.CanvasSize.Width) {
				continue
			}
			if a.TickLength > 0 {
				rec.StrokeLine(plotview.Pt(p.X, h), plotview.Pt(p.X, h-a.TickLength), mark)
			}
			rec.DrawText(label, plotview.Pt(p.X, y), recording.AlignCenter, a.Color)
		}
	}
}

func orOne(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}

func threshold(t int) int {
	if t <= 0 {
		return ticks.DefaultLabelThreshold
	}
	return t
}
