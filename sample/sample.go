// Package sample turns functions and data series into polylines ready to
// stroke under a view transform.
package sample

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/aclements/go-moremath/vec"

	"github.com/gogpu/plotview"
)

// Func is a function of one variable. Returning an error marks x as
// outside the function's domain.
type Func func(x float64) (float64, error)

// Plain adapts an infallible function to Func.
func Plain(f func(float64) float64) Func {
	return func(x float64) (float64, error) { return f(x), nil }
}

// ErrNotFinite reports a NaN or infinite sample.
var ErrNotFinite = errors.New("sample: value is not finite")

// Segment is a run of consecutive valid samples, drawn as one polyline.
type Segment []plotview.Point

// Range is a sampling plan for one frame.
type Range struct {
	Min, Max float64
	Samples  int
	// MaxJump is the largest change in y between consecutive samples
	// that is still drawn as a connected line. Zero disables the check.
	MaxJump float64
}

// Sampling tunables.
const (
	// DefaultResolution is the number of samples per data unit at unit
	// scale.
	DefaultResolution = 10
	// RangePadding widens the sampled x range on each side, as a fraction
	// of the visible range.
	RangePadding = 0.05
	// MaxSamples bounds the samples taken per frame.
	MaxSamples = 10000
	// MinStep is the smallest x distance between samples.
	MinStep = 0.1
	// jumpFactor scales the visible x range into the discontinuity
	// threshold.
	jumpFactor = 10
)

// FunctionRange returns the sampling plan for the x range visible in s.
// Resolution grows with the horizontal zoom so curves stay smooth when
// magnified; the sample count is capped at MaxSamples.
func FunctionRange(s plotview.ViewState, resolution float64) Range {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	w, h := s.CanvasSize.Width, s.CanvasSize.Height
	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, c := range []plotview.Point{{}, {X: w}, {Y: h}, {X: w, Y: h}} {
		x := s.ScreenToData(c).X
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
	}
	pad := (maxX - minX) * RangePadding
	lo, hi := minX-pad, maxX+pad
	visible := hi - lo
	if !(visible > 0) || math.IsInf(visible, 0) {
		return Range{Min: lo, Max: hi, Samples: 1}
	}

	adaptive := resolution * math.Max(1, math.Abs(s.Transform.A)*0.5)
	points := math.Min(MaxSamples, visible*adaptive)
	step := math.Max(MinStep, visible/points)
	return Range{
		Min:     lo,
		Max:     hi,
		Samples: int(math.Floor(visible/step)) + 1,
		MaxJump: visible * jumpFactor,
	}
}

// Sample evaluates fn over r.
func Sample(fn Func, r Range) []Segment {
	return Function(fn, r.Min, r.Max, r.Samples, r.MaxJump)
}

// Function evaluates fn at n evenly spaced points over [xmin, xmax] and
// splits the result into connected segments.
//
// A sample whose evaluation fails, panics, or yields NaN or ±Inf ends the
// current segment and is dropped; sampling continues with the next x. A
// change in y larger than maxJump between neighbours also starts a new
// segment. Segments of a single point are kept so that isolated values
// can still be marked.
func Function(fn Func, xmin, xmax float64, n int, maxJump float64) []Segment {
	if n <= 0 || fn == nil {
		return nil
	}
	var (
		segs   []Segment
		cur    Segment
		lastY  float64
		faults int
		first  error
	)
	flush := func() {
		if len(cur) > 0 {
			segs = append(segs, cur)
		}
		cur = nil
	}
	for _, x := range vec.Linspace(xmin, xmax, n) {
		y, err := eval(fn, x)
		if err != nil {
			if faults == 0 {
				first = err
			}
			faults++
			flush()
			continue
		}
		if len(cur) > 0 && maxJump > 0 && math.Abs(y-lastY) > maxJump {
			flush()
		}
		cur = append(cur, plotview.Pt(x, y))
		lastY = y
	}
	flush()
	if faults > 0 {
		plotview.Logger().Warn("sample: skipped faulting samples",
			slog.Int("count", faults), slog.Int("samples", n), slog.Any("error", first))
	}
	return segs
}

// eval calls fn, turning a panic or a non-finite value into an error.
func eval(fn Func, x float64) (y float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sample: panic at x=%g: %v", x, r)
		}
	}()
	y, err = fn(x)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, ErrNotFinite
	}
	return y, nil
}
