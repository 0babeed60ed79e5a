package plotview

import (
	"log/slog"
	"math"
)

// Viewport owns one ViewState and the gesture session acting on it. It
// turns pointer, wheel and resize events into reducer transitions.
//
// Viewport is event-driven and NOT safe for concurrent use: every handler
// runs synchronously on the caller's event and notifies subscribers
// before returning.
type Viewport struct {
	opts    options
	state   ViewState
	session *GestureSession

	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(ViewState)
}

// New creates a Viewport for a canvas of the given size.
func New(size Size, opts ...Option) *Viewport {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	v := &Viewport{
		opts:  o,
		state: NewViewState(size),
	}
	if !o.initial.IsIdentity() {
		v.state = Reduce(v.state, SetTransform{Matrix: o.initial})
	}
	return v
}

// State returns the current view state.
func (v *Viewport) State() ViewState {
	return v.state
}

// Session returns the active gesture session, or nil between drags.
func (v *Viewport) Session() *GestureSession {
	return v.session
}

// Subscribe registers fn to be called with every new ViewState. The
// returned function removes the subscription.
func (v *Viewport) Subscribe(fn func(ViewState)) (unsubscribe func()) {
	id := v.nextID
	v.nextID++
	v.subs = append(v.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range v.subs {
			if s.id == id {
				v.subs = append(v.subs[:i:i], v.subs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch applies a to the current state and notifies subscribers.
func (v *Viewport) Dispatch(a Action) {
	v.state = Reduce(v.state, a)
	for _, s := range v.subs {
		s.fn(v.state)
	}
}

// Resize recomputes the bounds for a new canvas size without touching the
// transform.
func (v *Viewport) Resize(size Size) {
	v.Dispatch(SetCanvasSize{Size: size})
}

// Reset restores the identity transform.
func (v *Viewport) Reset() {
	v.Dispatch(ResetTransform{})
}

// toCanvas converts an element-local pointer position to canvas pixels.
func (v *Viewport) toCanvas(pos Point) Point {
	return pos.Mul(v.opts.dpr)
}

// PointerDown starts a gesture on region with button at pos, given in
// element-local pixels. Any session left over from a previous drag is
// discarded.
func (v *Viewport) PointerDown(region Region, button Button, pos Point) {
	v.session = nil
	if button != ButtonPrimary && button != ButtonSecondary {
		return
	}
	s, err := NewGestureSession(region, button, v.state.Transform, v.toCanvas(pos))
	if err != nil {
		Logger().Warn("plotview: cannot start gesture", slog.Any("error", err))
		return
	}
	v.session = s
	Logger().Debug("plotview: gesture start",
		slog.String("region", region.String()),
		slog.Int("button", int(button)))
}

// PointerUp ends the active gesture.
func (v *Viewport) PointerUp() {
	v.endGesture()
}

// PointerLeave ends the active gesture.
func (v *Viewport) PointerLeave() {
	v.endGesture()
}

func (v *Viewport) endGesture() {
	if v.session != nil {
		Logger().Debug("plotview: gesture end")
	}
	v.session = nil
}

// PointerMove applies the active gesture for the pointer now at pos and
// reports whether the view changed. Moves with no active session are
// ignored.
func (v *Viewport) PointerMove(pos Point) bool {
	s := v.session
	if s == nil {
		return false
	}
	target, ok := v.target(s, pos)
	if !ok {
		return false
	}
	v.Dispatch(SetTransform{Matrix: target})
	return true
}

// target computes the transform for session s with the pointer at pos.
func (v *Viewport) target(s *GestureSession, pos Point) (Matrix, bool) {
	// delta is in element-local pixels; the anchor is in canvas pixels.
	delta := v.toCanvas(pos).Sub(s.ScreenAnchor).Mul(1 / v.opts.dpr)
	translate := s.Button == ButtonPrimary
	if s.Region != RegionPlot {
		// Axis strips swap the roles of the two buttons.
		translate = !translate
	}

	if translate {
		switch s.Region {
		case RegionAxisX:
			delta.Y = 0
		case RegionAxisY:
			delta.X = 0
		}
		return TranslateFrom(s.Initial, delta, v.opts.dpr), true
	}

	if math.Abs(delta.X) < dragTolerance && math.Abs(delta.Y) < dragTolerance {
		return Matrix{}, false
	}
	var factor Point
	switch s.Region {
	case RegionAxisX:
		factor = Point{X: DragFactor(delta.X, v.opts.dragSensitivity), Y: 1}
	case RegionAxisY:
		factor = Point{X: 1, Y: DragFactor(delta.Y, v.opts.axisYSensitivity)}
	default:
		factor = v.opts.policy.apply(Point{
			X: DragFactor(delta.X, v.opts.dragSensitivity),
			Y: DragFactor(delta.Y, v.opts.dragSensitivity),
		})
	}
	return ScaleAbout(s.Initial, s.DataAnchor, s.ScreenAnchor, factor), true
}

// Wheel zooms about pos (element-local pixels) by one wheel tick and reports whether the view
// changed. A zero delta is ignored.
func (v *Viewport) Wheel(pos Point, deltaY float64) bool {
	if deltaY == 0 || math.IsNaN(deltaY) {
		return false
	}
	m, err := WheelZoom(v.state.Transform, v.toCanvas(pos), deltaY, v.opts.zoomStep, v.opts.policy)
	if err != nil {
		Logger().Warn("plotview: wheel zoom skipped", slog.Any("error", err))
		return false
	}
	v.Dispatch(SetTransform{Matrix: m})
	return true
}
