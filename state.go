package plotview

import "log/slog"

// ViewState is the single source of truth for a viewport: the current
// transform and everything derived from it.
//
// A ViewState is a value. Consumers read it and never patch it; every
// transition produced by Reduce recomputes all derived fields.
type ViewState struct {
	// Transform maps data space to canvas pixels.
	Transform Matrix

	// TransformX and TransformY are the single-axis projections of
	// Transform, used by axis renderers that only track one direction.
	TransformX Matrix
	TransformY Matrix

	// Bounds is the visible data rectangle (corner convention, see Rect).
	Bounds Rect

	// OuterBounds is Bounds padded by OuterPadFactor.
	OuterBounds Rect

	// CanvasSize is the canvas size in device pixels.
	CanvasSize Size
}

// NewViewState returns the state of a freshly mounted viewport: identity
// transform on a canvas of the given size.
func NewViewState(size Size) ViewState {
	s, err := derive(Identity(), size)
	if err != nil {
		// Identity is always invertible; only an invalid size gets here.
		Logger().Warn("plotview: invalid initial canvas size", slog.Any("error", err))
		s, _ = derive(Identity(), Size{})
	}
	return s
}

// DataToScreen maps a data-space point to canvas pixels.
func (s ViewState) DataToScreen(p Point) Point {
	return s.Transform.TransformPoint(p)
}

// ScreenToData maps a canvas pixel to data space. The transform held by a
// ViewState is always invertible, so this cannot fail.
func (s ViewState) ScreenToData(p Point) Point {
	inv, err := s.Transform.Invert()
	if err != nil {
		return p
	}
	return inv.TransformPoint(p)
}

// Action is a ViewState transition request.
type Action interface {
	isAction()
}

// SetTransform replaces the view transform.
type SetTransform struct {
	Matrix Matrix
}

// SetCanvasSize changes the canvas size without altering the transform.
type SetCanvasSize struct {
	Size Size
}

// ResetTransform restores the identity transform.
type ResetTransform struct{}

func (SetTransform) isAction()   {}
func (SetCanvasSize) isAction()  {}
func (ResetTransform) isAction() {}

// Reduce returns the state that results from applying a to s. It is a pure
// function of its inputs.
//
// A transition that would leave the viewport with a singular transform or
// an invalid size is rejected: s is returned unchanged so the last valid
// transform stays in effect. Scales below MinScale are clamped to it.
func Reduce(s ViewState, a Action) ViewState {
	var (
		next ViewState
		err  error
	)
	switch a := a.(type) {
	case SetTransform:
		next, err = derive(a.Matrix, s.CanvasSize)
	case SetCanvasSize:
		next, err = derive(s.Transform, a.Size)
	case ResetTransform:
		next, err = derive(Identity(), s.CanvasSize)
	default:
		Logger().Warn("plotview: unhandled action", slog.Any("action", a))
		return s
	}
	if err != nil {
		Logger().Warn("plotview: transition rejected",
			slog.Any("action", a), slog.Any("error", err))
		return s
	}
	Logger().Debug("plotview: transition",
		slog.String("transform", next.Transform.String()),
		slog.Float64("spanX", next.Bounds.SpanX()),
		slog.Float64("spanY", next.Bounds.SpanY()))
	return next
}

// derive builds a complete ViewState for a transform and canvas size.
// m must be invertible before its scale is clamped.
func derive(m Matrix, size Size) (ViewState, error) {
	if _, err := m.Invert(); err != nil {
		return ViewState{}, err
	}
	m = m.ClampScale(MinScale)
	bounds, err := ComputeBounds(m, size)
	if err != nil {
		return ViewState{}, err
	}
	return ViewState{
		Transform:   m,
		TransformX:  m.AxisX(),
		TransformY:  m.AxisY(),
		Bounds:      bounds,
		OuterBounds: ComputeOuterBounds(bounds),
		CanvasSize:  size,
	}, nil
}
