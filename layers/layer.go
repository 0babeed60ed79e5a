// Package layers draws a chart frame from a plotview.ViewState.
//
// A frame is a stack of layers: background, grid, plotted data, axis
// labels and overlays. Each layer records its drawing into a shared
// recording.Recorder; Compose runs them in order and returns the
// recording for playback on any registered backend.
//
// Layers never mutate the ViewState they are given. Layers that draw in
// data space set the view transform on the recorder; the recorder state
// is saved and restored around every layer.
package layers

import (
	"image/color"
	"math"

	"github.com/gogpu/plotview"
	"github.com/gogpu/plotview/labels"
	"github.com/gogpu/plotview/recording"
)

// Layer draws one part of a frame.
type Layer interface {
	Draw(rec *recording.Recorder, s plotview.ViewState)
}

// Func adapts an ordinary function to the Layer interface.
type Func func(rec *recording.Recorder, s plotview.ViewState)

// Draw calls f(rec, s).
func (f Func) Draw(rec *recording.Recorder, s plotview.ViewState) {
	f(rec, s)
}

// Compose records layers, bottom first, into a recording sized to the
// canvas of s. Nil layers are skipped.
func Compose(s plotview.ViewState, layers ...Layer) *recording.Recording {
	rec := recording.NewRecorder(canvasPixels(s.CanvasSize))
	for _, l := range layers {
		if l == nil {
			continue
		}
		rec.Save()
		l.Draw(rec, s)
		rec.Restore()
	}
	return rec.Finish()
}

func canvasPixels(size plotview.Size) (w, h int) {
	return int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
}

// face supplies label metrics. It matches the face the raster backend
// draws with.
var face = labels.NewFixed()

// Background fills the canvas with a solid color.
type Background struct {
	Color color.RGBA
}

// Draw implements Layer.
func (b Background) Draw(rec *recording.Recorder, s plotview.ViewState) {
	rec.FillRect(recording.NewRect(0, 0, s.CanvasSize.Width, s.CanvasSize.Height), b.Color)
}

func ordered(a, b float64) (float64, float64) {
	return math.Min(a, b), math.Max(a, b)
}

func inside(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
