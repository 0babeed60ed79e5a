package timeaxis

import (
	"slices"
	"testing"
	"time"
)

// constWidth measures every label as the same width.
type constWidth float64

func (w constWidth) Width(string) float64 { return float64(w) }

func TestSetZoomLevelForDensity(t *testing.T) {
	tests := []struct {
		name    string
		span    float64
		sizePx  float64
		want    string
	}{
		{"decade", 10 * YearSpacing, 1000, YearMonth},
		{"month", 30 * DaySpacing, 1000, MonthDay},
		{"day", DaySpacing, 1000, DayHour},
		{"hour", HourSpacing, 1000, HourMinute},
		{"minute", MinuteSpacing, 1000, HMS},
		{"seconds", 10, 1000, MS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAxis(WithMeasurer(constWidth(50)))
			a.SetZoomLevelForDensity(tt.span / tt.sizePx)
			if got := a.Level().Name; got != tt.want {
				t.Errorf("Level() = %s, want %s", got, tt.want)
			}
			if want := tt.span / tt.sizePx * 60; a.MinSpacing() != want {
				t.Errorf("MinSpacing() = %v, want %v", a.MinSpacing(), want)
			}
		})
	}
}

func TestAxisTickValuesDayHour(t *testing.T) {
	a := NewAxis(WithMeasurer(constWidth(50)), WithUTCOffset(2*time.Hour))
	lts := a.TickValues(ts(2024, 3, 10, 0, 0), ts(2024, 3, 11, 0, 0), 1000)
	if a.Level().Name != DayHour {
		t.Fatalf("Level() = %s, want %s", a.Level().Name, DayHour)
	}
	if len(lts) != 2 {
		t.Fatalf("len(TickValues()) = %d, want 2", len(lts))
	}

	if got, want := a.Labels(lts[0]), []string{"Mon 11"}; !slices.Equal(got, want) {
		t.Errorf("day labels = %v, want %v", got, want)
	}
	if got, want := a.Labels(lts[1]), []string{"06:00", "12:00", "18:00"}; !slices.Equal(got, want) {
		t.Errorf("hour labels = %v, want %v", got, want)
	}
}

func TestAxisTickValuesDegenerate(t *testing.T) {
	a := NewAxis()
	if got := a.TickValues(10, 10, 100); got != nil {
		t.Errorf("empty range: TickValues() = %v, want nil", got)
	}
	if got := a.TickValues(0, 10, 0); got != nil {
		t.Errorf("zero size: TickValues() = %v, want nil", got)
	}
}

func TestAxisLabelsMilliseconds(t *testing.T) {
	a := NewAxis()
	got := a.Labels(LevelTicks{Format: "%S.%f", Values: []float64{61.25, 62.5}})
	if want := []string{"01.250", "02.500"}; !slices.Equal(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
}

func TestFormatTime(t *testing.T) {
	tm := time.Date(2009, time.November, 10, 23, 1, 2, 345678000, time.UTC)
	tests := []struct {
		format string
		want   string
	}{
		{"%Y", "2009"},
		{"%b", "Nov"},
		{"%a %d", "Tue 10"},
		{"%H:%M:%S", "23:01:02"},
		{"%S.%f", "02.345678"},
		{"%%f", "%f"},
	}
	for _, tt := range tests {
		got, err := FormatTime(tt.format, tm)
		if err != nil {
			t.Errorf("FormatTime(%q) error = %v", tt.format, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatTime(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatTimeUnknownDirective(t *testing.T) {
	if _, err := FormatTime("%g", time.Unix(0, 0)); err == nil {
		t.Errorf("FormatTime(%%g) error = nil, want error")
	}
}
