package timeaxis

import "math"

// ZoomLevel is a set of tick specs, coarsest first, that are shown
// together at one range of zoom.
type ZoomLevel struct {
	Name  string
	Specs []TickSpec
	// ExampleText is a label of typical width at this level, measured to
	// decide whether the level fits.
	ExampleText string
}

// LevelTicks are the ticks one spec contributed to a level.
type LevelTicks struct {
	Spacing float64
	Format  string
	Values  []float64
}

// TickValues returns the ticks of each spec in [minVal, maxVal].
//
// utcOffset is the offset of the display zone east of UTC in seconds:
// steps are aligned in that zone and the ticks returned as Unix
// timestamps. A tick already produced by a coarser spec is not repeated by
// a finer one, and no finer spec is generated once a spec had to skip
// ticks.
func (z ZoomLevel) TickValues(minVal, maxVal, minSpc, utcOffset float64) []LevelTicks {
	var (
		out  []LevelTicks
		seen = make(map[float64]struct{})
	)
	for _, spec := range z.Specs {
		ticks, skip := spec.MakeTicks(minVal+utcOffset, maxVal+utcOffset, minSpc)
		values := make([]float64, 0, len(ticks))
		for _, t := range ticks {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			values = append(values, t-utcOffset)
		}
		out = append(out, LevelTicks{Spacing: spec.Spacing, Format: spec.Format, Values: values})
		if skip > 1 {
			break
		}
	}
	return out
}

// Level pairs a zoom level with the largest seconds-per-pixel density it
// is used up to.
type Level struct {
	MaxSpacing float64
	Zoom       ZoomLevel
}

// Zoom level names.
const (
	YearMonth  = "year-month"
	MonthDay   = "month-day"
	DayHour    = "day-hour"
	HourMinute = "hour-minute"
	HMS        = "hms"
	MS         = "ms"
)

// Levels returns the standard zoom levels, coarsest first. Each call
// returns a fresh table.
func Levels() []Level {
	year := TickSpec{Spacing: YearSpacing, Stepper: NewStepper(Year, 1), Format: "%Y", AutoSkip: []int{1, 5, 10, 25}}
	month := TickSpec{Spacing: MonthSpacing, Stepper: NewStepper(Month, 1), Format: "%b"}
	day := TickSpec{Spacing: DaySpacing, Stepper: NewStepper(Day, 1), Format: "%d", AutoSkip: []int{1, 5}}
	weekday := TickSpec{Spacing: DaySpacing, Stepper: NewStepper(Day, 1), Format: "%a %d"}
	hour := TickSpec{Spacing: HourSpacing, Stepper: NewStepper(Hour, 1), Format: "%H:%M", AutoSkip: []int{1, 6}}
	minute := TickSpec{Spacing: MinuteSpacing, Stepper: NewStepper(Minute, 1), Format: "%H:%M", AutoSkip: []int{1, 5, 15}}
	second := TickSpec{Spacing: SecondSpacing, Stepper: NewStepper(Second, 1), Format: "%H:%M:%S", AutoSkip: []int{1, 5, 15, 30}}
	wholeMinute := TickSpec{Spacing: MinuteSpacing, Stepper: NewStepper(Minute, 1), Format: "%H:%M:%S"}
	milli := TickSpec{Spacing: MillisecondSpacing, Stepper: NewStepper(Millisecond, 1), Format: "%S.%f", AutoSkip: []int{1, 5, 10, 25}}

	return []Level{
		{MaxSpacing: math.Inf(1), Zoom: ZoomLevel{Name: YearMonth, Specs: []TickSpec{year, month}, ExampleText: "YYYY"}},
		{MaxSpacing: 5 * DaySpacing, Zoom: ZoomLevel{Name: MonthDay, Specs: []TickSpec{month, day}, ExampleText: "MMM"}},
		{MaxSpacing: 6 * HourSpacing, Zoom: ZoomLevel{Name: DayHour, Specs: []TickSpec{weekday, hour}, ExampleText: "MMM 00"}},
		{MaxSpacing: 15 * MinuteSpacing, Zoom: ZoomLevel{Name: HourMinute, Specs: []TickSpec{weekday, minute}, ExampleText: "MMM 00"}},
		{MaxSpacing: 30 * SecondSpacing, Zoom: ZoomLevel{Name: HMS, Specs: []TickSpec{second}, ExampleText: "99:99:99"}},
		{MaxSpacing: SecondSpacing, Zoom: ZoomLevel{Name: MS, Specs: []TickSpec{wholeMinute, milli}, ExampleText: "99:99:99"}},
	}
}
