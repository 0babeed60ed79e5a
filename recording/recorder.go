package recording

import (
	"image/color"
	"math"

	"github.com/gogpu/plotview"
)

// Recorder captures drawing commands for one frame.
//
// Geometry passed to the Recorder is in the space set by SetTransform
// (canvas pixels by default) and is mapped to canvas pixels as it is
// recorded. Stroke widths, dash lengths and text are always in pixels.
//
// Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int

	commands  []Command
	resources *ResourcePool

	state recorderState
	stack []recorderState
}

// recorderState is the part of the recorder state covered by
// Save/Restore.
type recorderState struct {
	transform plotview.Matrix
}

// NewRecorder creates a recorder for a canvas of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
		state:     recorderState{transform: plotview.Identity()},
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Save pushes the current transform and records a clip save.
func (r *Recorder) Save() {
	r.stack = append(r.stack, r.state)
	r.commands = append(r.commands, SaveCommand{})
}

// Restore pops the state pushed by the matching Save. An unmatched
// Restore is ignored.
func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.commands = append(r.commands, RestoreCommand{})
}

// SetTransform sets the transform applied to subsequently recorded
// geometry.
func (r *Recorder) SetTransform(m plotview.Matrix) {
	r.state.transform = m
}

// Transform returns the current transform.
func (r *Recorder) Transform() plotview.Matrix {
	return r.state.transform
}

// ResetTransform restores the identity transform.
func (r *Recorder) ResetTransform() {
	r.state.transform = plotview.Identity()
}

func (r *Recorder) project(p plotview.Point) plotview.Point {
	return r.state.transform.TransformPoint(p)
}

// projectRect maps the corners of rect and returns their bounding box.
func (r *Recorder) projectRect(rect Rect) Rect {
	a := r.project(plotview.Pt(rect.X, rect.Y))
	b := r.project(plotview.Pt(rect.X+rect.Width, rect.Y+rect.Height))
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// SetClip intersects the clip with rect.
func (r *Recorder) SetClip(rect Rect) {
	r.commands = append(r.commands, SetClipCommand{Rect: r.projectRect(rect)})
}

// ClearClip resets the clip to the full canvas.
func (r *Recorder) ClearClip() {
	r.commands = append(r.commands, ClearClipCommand{})
}

// FillRect fills rect with c.
func (r *Recorder) FillRect(rect Rect, c color.RGBA) {
	r.commands = append(r.commands, FillRectCommand{Rect: r.projectRect(rect), Color: c})
}

// StrokeLine strokes the segment from a to b.
func (r *Recorder) StrokeLine(a, b plotview.Point, s Stroke) {
	r.commands = append(r.commands, StrokeLineCommand{
		From:   r.project(a),
		To:     r.project(b),
		Stroke: r.resources.AddStroke(s),
	})
}

// StrokePolyline strokes the polyline through pts. Polylines of fewer
// than two points are not recorded.
func (r *Recorder) StrokePolyline(pts []plotview.Point, s Stroke) {
	if len(pts) < 2 {
		return
	}
	mapped := make([]plotview.Point, len(pts))
	for i, p := range pts {
		mapped[i] = r.project(p)
	}
	r.commands = append(r.commands, StrokePolylineCommand{
		Points: r.resources.AddPolyline(mapped),
		Stroke: r.resources.AddStroke(s),
	})
}

// DrawText draws s with its anchor at p. The text top is at the anchor's
// y and align positions it horizontally.
func (r *Recorder) DrawText(s string, p plotview.Point, align Align, c color.RGBA) {
	if s == "" {
		return
	}
	q := r.project(p)
	r.commands = append(r.commands, DrawTextCommand{Text: s, X: q.X, Y: q.Y, Align: align, Color: c})
}

// Finish returns the recording of everything drawn so far. The recorder
// must not be used afterwards.
func (r *Recorder) Finish() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Recording is an immutable list of drawing commands in canvas pixels.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool referenced by the commands.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Count returns how many commands of type t the recording holds.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to backend, bracketed by Begin and End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			backend.Save()
		case RestoreCommand:
			backend.Restore()
		case SetClipCommand:
			backend.SetClip(c.Rect)
		case ClearClipCommand:
			backend.ClearClip()
		case FillRectCommand:
			backend.FillRect(c.Rect, c.Color)
		case StrokeLineCommand:
			backend.StrokeLine(c.From, c.To, r.resources.Stroke(c.Stroke))
		case StrokePolylineCommand:
			backend.StrokePolyline(r.resources.Polyline(c.Points), r.resources.Stroke(c.Stroke))
		case DrawTextCommand:
			backend.DrawText(c.Text, c.X, c.Y, c.Align, c.Color)
		}
	}
	return backend.End()
}
