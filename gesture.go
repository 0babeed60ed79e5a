package plotview

import "math"

// Button identifies the pointer button that started a gesture, using the
// DOM numbering.
type Button int

const (
	// ButtonPrimary translates in the plot area and scales on an axis.
	ButtonPrimary Button = 0
	// ButtonSecondary scales in the plot area and translates on an axis.
	ButtonSecondary Button = 1
	// ButtonReserved is accepted but starts no gesture.
	ButtonReserved Button = 2
)

// Region identifies the surface a pointer gesture started on.
type Region int

const (
	// RegionPlot is the main 2-D plot area.
	RegionPlot Region = iota
	// RegionAxisX is the horizontal axis strip.
	RegionAxisX
	// RegionAxisY is the vertical axis strip.
	RegionAxisY
)

// String returns the region name.
func (r Region) String() string {
	switch r {
	case RegionPlot:
		return "plot"
	case RegionAxisX:
		return "axis-x"
	case RegionAxisY:
		return "axis-y"
	default:
		return "unknown"
	}
}

// ScalePolicy decides how a scale gesture couples the two axes.
type ScalePolicy int

const (
	// ScaleIndependent scales each axis by its own factor. Drags use the
	// per-axis pointer delta; the wheel scales both axes equally.
	ScaleIndependent ScalePolicy = iota
	// ScaleIsotropic always scales both axes by the same factor.
	ScaleIsotropic
	// ScaleXOnly never scales the Y axis.
	ScaleXOnly
	// ScaleYOnly never scales the X axis.
	ScaleYOnly
)

// Gesture tuning defaults.
const (
	// DefaultZoomStep is the scale factor of one wheel tick.
	DefaultZoomStep = 1.05
	// DefaultDragSensitivity is the pointer travel, in pixels, that
	// doubles the scale in a plot-area or X-axis scale drag.
	DefaultDragSensitivity = 500.0
	// DefaultAxisYSensitivity is the same for a Y-axis scale drag.
	DefaultAxisYSensitivity = 250.0
	// dragTolerance suppresses scale drags that have not moved yet.
	dragTolerance = 0.1
)

// GestureSession is the state captured when a pointer goes down. It is
// created fresh for every drag, consumed by every move and discarded on
// pointer-up or leave.
type GestureSession struct {
	Button Button
	Region Region

	// Initial is a snapshot of the view transform at pointer-down. Every
	// move recomputes the target transform from Initial, never from the
	// running transform.
	Initial Matrix

	// ScreenAnchor is the pointer position at pointer-down, in canvas pixels.
	ScreenAnchor Point

	// DataAnchor is ScreenAnchor mapped through the inverse of Initial.
	DataAnchor Point
}

// NewGestureSession captures a session for a drag starting at screen
// position pos under transform m.
func NewGestureSession(region Region, button Button, m Matrix, pos Point) (*GestureSession, error) {
	inv, err := m.Invert()
	if err != nil {
		return nil, err
	}
	return &GestureSession{
		Button:       button,
		Region:       region,
		Initial:      m,
		ScreenAnchor: pos,
		DataAnchor:   inv.TransformPoint(pos),
	}, nil
}

// TranslateFrom returns initial with the screen-space delta, scaled by
// the device pixel ratio, added to its translation. Scale and skew are
// untouched.
func TranslateFrom(initial Matrix, delta Point, dpr float64) Matrix {
	if dpr <= 0 {
		dpr = 1
	}
	initial.E += delta.X * dpr
	initial.F += delta.Y * dpr
	return initial
}

// ScaleAbout scales initial about dataAnchor by factor and then corrects
// the translation so that dataAnchor lands exactly on screenAnchor.
//
// Each factor component is floored at MinScale. The scale is built as
// T(anchor)·S(factor)·T(-anchor) and applied on the left of initial.
func ScaleAbout(initial Matrix, dataAnchor, screenAnchor, factor Point) Matrix {
	fx := math.Max(factor.X, MinScale)
	fy := math.Max(factor.Y, MinScale)

	s := Translate(dataAnchor.X, dataAnchor.Y).
		Multiply(Scale(fx, fy)).
		Multiply(Translate(-dataAnchor.X, -dataAnchor.Y))
	scaled := s.Multiply(initial).ClampScale(MinScale)

	landed := scaled.TransformPoint(dataAnchor)
	scaled.E += screenAnchor.X - landed.X
	scaled.F += screenAnchor.Y - landed.Y
	return scaled
}

// WheelFactor returns the scale factor for one wheel event: step when the
// wheel moves up (deltaY < 0, zoom in) and 1/step otherwise.
func WheelFactor(deltaY, step float64) float64 {
	if step <= 0 {
		step = DefaultZoomStep
	}
	if deltaY < 0 {
		return step
	}
	return 1 / step
}

// WheelZoom zooms m about the pointer position pos by one wheel tick.
// The anchor is taken at wheel-event time.
func WheelZoom(m Matrix, pos Point, deltaY, step float64, policy ScalePolicy) (Matrix, error) {
	inv, err := m.Invert()
	if err != nil {
		return m, err
	}
	f := WheelFactor(deltaY, step)
	factor := policy.apply(Point{X: f, Y: f})
	return ScaleAbout(m, inv.TransformPoint(pos), pos, factor), nil
}

// DragFactor converts a pointer travel into a linear scale factor,
// 1 + delta/sensitivity, floored at MinScale.
func DragFactor(delta, sensitivity float64) float64 {
	if sensitivity <= 0 {
		sensitivity = DefaultDragSensitivity
	}
	return math.Max(MinScale, 1+delta/sensitivity)
}

// apply restricts a per-axis scale factor according to the policy.
func (p ScalePolicy) apply(f Point) Point {
	switch p {
	case ScaleIsotropic:
		// Use whichever axis moved further away from 1.
		if math.Abs(math.Log(f.Y)) > math.Abs(math.Log(f.X)) {
			return Point{X: f.Y, Y: f.Y}
		}
		return Point{X: f.X, Y: f.X}
	case ScaleXOnly:
		return Point{X: f.X, Y: 1}
	case ScaleYOnly:
		return Point{X: 1, Y: f.Y}
	default:
		return f
	}
}
