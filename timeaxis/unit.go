// Package timeaxis selects calendar-aware ticks for a time axis whose
// values are Unix timestamps in seconds.
//
// Ticks are organised in zoom levels. Each level holds one or more tick
// specs of decreasing coarseness (for example years, then months), and an
// Axis picks the finest level whose labels still fit at the current
// density.
package timeaxis

import (
	"math"
	"time"
)

// Unit is a calendar or clock unit a Stepper advances by.
type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Month
	Year
)

var unitNames = [...]string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Month:       "month",
	Year:        "year",
}

// String returns the unit name.
func (u Unit) String() string {
	if u >= 0 && int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "unknown"
}

// Approximate spacing of one unit in seconds. Months and years are
// nominal; the steppers use the calendar.
const (
	MillisecondSpacing = 1.0 / 1000
	SecondSpacing      = 1.0
	MinuteSpacing      = 60 * SecondSpacing
	HourSpacing        = 60 * MinuteSpacing
	DaySpacing         = 24 * HourSpacing
	MonthSpacing       = 30 * DaySpacing
	YearSpacing        = 365 * DaySpacing
)

// Seconds returns the nominal length of one unit in seconds.
func (u Unit) Seconds() float64 {
	switch u {
	case Millisecond:
		return MillisecondSpacing
	case Second:
		return SecondSpacing
	case Minute:
		return MinuteSpacing
	case Hour:
		return HourSpacing
	case Day:
		return DaySpacing
	case Month:
		return MonthSpacing
	case Year:
		return YearSpacing
	default:
		return 0
	}
}

// Timestamps outside [MinTimestamp, MaxTimestamp] cannot be stepped.
var (
	MinTimestamp = float64(time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix())
	MaxTimestamp = float64(time.Date(9999, time.January, 1, 0, 0, 0, 0, time.UTC).Unix())
)

// maxYear is the last year a year stepper may land on.
const maxYear = 9999

// Stepper advances a timestamp by whole multiples of Count units.
type Stepper struct {
	Unit  Unit
	Count int
}

// NewStepper returns a Stepper for count units. A count below 1 is
// treated as 1.
func NewStepper(unit Unit, count int) Stepper {
	if count < 1 {
		count = 1
	}
	return Stepper{Unit: unit, Count: count}
}

// Step returns the timestamp n steps after ts.
//
// With first set, Step returns the first step boundary strictly after ts,
// aligned to a multiple of n·Count units; later calls pass first=false
// and simply advance. Month steps land on the first day of a month and
// year steps on January 1st, both in UTC. Step returns +Inf for NaN
// input, for timestamps outside [MinTimestamp, MaxTimestamp], and when a
// year step would pass 9999.
func (s Stepper) Step(ts float64, n int, first bool) float64 {
	if math.IsNaN(ts) || ts < MinTimestamp || ts > MaxTimestamp {
		return math.Inf(1)
	}
	if n < 1 {
		n = 1
	}
	count := max(s.Count, 1)

	switch s.Unit {
	case Millisecond:
		if first {
			f := float64(n * count)
			return math.Floor(ts*1000/f+1) * f / 1000
		}
		return ts + float64(n*count)/1000
	case Month:
		return stepMonth(ts, n*count)
	case Year:
		return stepYear(ts, n*count)
	default:
		size := float64(n*count) * s.Unit.Seconds()
		if first {
			return math.Floor(ts/size+1) * size
		}
		return ts + size
	}
}

// stepMonth returns the first day of the month that is months after the
// month containing ts.
func stepMonth(ts float64, months int) float64 {
	t := toTime(ts)
	base0 := int(t.Month()) - 1 + months
	year := t.Year() + floorDiv(base0, 12)
	if year > maxYear {
		return math.Inf(1)
	}
	month := time.Month(base0 - floorDiv(base0, 12)*12 + 1)
	return float64(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Unix())
}

// stepYear returns January 1st of the next year that is a multiple of
// years.
func stepYear(ts float64, years int) float64 {
	t := toTime(ts)
	next := (floorDiv(t.Year(), years) + 1) * years
	if next > maxYear {
		return math.Inf(1)
	}
	return float64(time.Date(next, time.January, 1, 0, 0, 0, 0, time.UTC).Unix())
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// toTime converts a fractional Unix timestamp to a UTC time with
// microsecond resolution.
func toTime(ts float64) time.Time {
	sec := math.Floor(ts)
	micros := math.Round((ts - sec) * 1e6)
	if micros >= 1e6 {
		sec++
		micros -= 1e6
	}
	return time.Unix(int64(sec), int64(micros)*1000).UTC()
}
