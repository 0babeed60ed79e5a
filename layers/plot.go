package layers

import (
	"image/color"

	"github.com/gogpu/plotview"
	"github.com/gogpu/plotview/recording"
	"github.com/gogpu/plotview/sample"
)

// DefaultLineWidth is the stroke width of plotted data in pixels.
const DefaultLineWidth = 1

// Series draws a polyline through data points sorted by X.
type Series struct {
	Points []plotview.Point
	Width  float64
	Color  color.RGBA
}

// Draw implements Layer. Long series are culled to the visible x range
// widened by one line width.
func (l *Series) Draw(rec *recording.Recorder, s plotview.ViewState) {
	if len(l.Points) < 2 {
		return
	}
	width := lineWidth(l.Width)
	pad := sample.LineWidth(s.Transform, width)
	lo, hi := ordered(s.Bounds.X, s.Bounds.Width)
	pts := sample.VisibleSlice(l.Points, lo-pad, hi+pad)

	rec.SetTransform(s.Transform)
	rec.StrokePolyline(pts, recording.Stroke{Width: width, Color: l.Color})
}

// FunctionPlot samples a function across the visible x range every frame
// and draws each continuous segment.
type FunctionPlot struct {
	Fn sample.Func
	// Resolution is the number of samples per data unit at unit scale.
	// Zero means sample.DefaultResolution.
	Resolution float64
	Width      float64
	Color      color.RGBA
}

// Draw implements Layer.
func (l *FunctionPlot) Draw(rec *recording.Recorder, s plotview.ViewState) {
	if l.Fn == nil {
		return
	}
	st := recording.Stroke{Width: lineWidth(l.Width), Color: l.Color}
	rec.SetTransform(s.Transform)
	for _, seg := range sample.Sample(l.Fn, sample.FunctionRange(s, l.Resolution)) {
		rec.StrokePolyline(seg, st)
	}
}

func lineWidth(w float64) float64 {
	if w <= 0 {
		return DefaultLineWidth
	}
	return w
}
