package timeaxis

import (
	"log/slog"
	"math"
	"time"

	"github.com/gogpu/plotview"
	"github.com/gogpu/plotview/labels"
)

// LabelPadding is the horizontal gap, in pixels, kept around each label
// when deciding whether a zoom level fits.
const LabelPadding = 10

// Axis picks the zoom level for a time axis and generates its ticks and
// labels. The active level is per-instance state, updated by every call
// to TickValues.
//
// Axis is not safe for concurrent use.
type Axis struct {
	measure   labels.Measurer
	levels    []Level
	utcOffset time.Duration
	loc       *time.Location

	current    int
	minSpacing float64
}

// AxisOption configures an Axis.
type AxisOption func(*Axis)

// WithMeasurer sets the measurer used to size example labels.
func WithMeasurer(m labels.Measurer) AxisOption {
	return func(a *Axis) {
		if m != nil {
			a.measure = m
		}
	}
}

// WithUTCOffset sets the display zone as an offset east of UTC. Day,
// hour and minute boundaries are aligned in that zone.
func WithUTCOffset(d time.Duration) AxisOption {
	return func(a *Axis) {
		a.utcOffset = d
	}
}

// NewAxis returns an Axis over the standard Levels.
func NewAxis(opts ...AxisOption) *Axis {
	a := &Axis{
		measure: labels.NewFixed(),
		levels:  Levels(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.loc = time.FixedZone("", int(a.utcOffset/time.Second))
	return a
}

// Level returns the active zoom level.
func (a *Axis) Level() ZoomLevel {
	return a.levels[a.current].Zoom
}

// MinSpacing returns the minimum tick spacing, in seconds, computed by
// the last SetZoomLevelForDensity call.
func (a *Axis) MinSpacing() float64 {
	return a.minSpacing
}

func (a *Axis) labelSize(z ZoomLevel) float64 {
	return a.measure.Width(z.ExampleText) + LabelPadding
}

// SetZoomLevelForDensity selects the finest zoom level whose example
// label still fits at density seconds per pixel. Levels are tried from
// coarse to fine; the first level that is too fine stops the walk. When
// no level fits, the coarsest one is used.
func (a *Axis) SetZoomLevelForDensity(density float64) {
	a.current = 0
	for i, l := range a.levels {
		if l.MaxSpacing/a.labelSize(l.Zoom) < density {
			break
		}
		a.current = i
	}
	a.minSpacing = density * a.labelSize(a.Level())
	plotview.Logger().Debug("timeaxis: zoom level",
		slog.String("level", a.Level().Name),
		slog.Float64("density", density),
		slog.Float64("minSpacing", a.minSpacing))
}

// TickValues selects the zoom level for a range of timestamps drawn
// across sizePx pixels and returns the ticks of that level.
func (a *Axis) TickValues(minVal, maxVal, sizePx float64) []LevelTicks {
	if !(sizePx > 0) || !(maxVal > minVal) || math.IsInf(maxVal-minVal, 0) {
		return nil
	}
	a.SetZoomLevelForDensity((maxVal - minVal) / sizePx)
	return a.Level().TickValues(minVal, maxVal, a.minSpacing, a.utcOffset.Seconds())
}

// Labels formats the ticks of one spec in the display zone. Fractional
// seconds are shown to the millisecond.
func (a *Axis) Labels(lt LevelTicks) []string {
	out := make([]string, len(lt.Values))
	for i, v := range lt.Values {
		s, err := formatTime(lt.Format, toTime(v).In(a.loc), 3)
		if err != nil {
			plotview.Logger().Warn("timeaxis: bad label format", slog.Any("error", err))
			s = ""
		}
		out[i] = s
	}
	return out
}
