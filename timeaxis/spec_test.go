package timeaxis

import (
	"math"
	"slices"
	"testing"
)

func TestSkipFactor(t *testing.T) {
	spec := TickSpec{Spacing: 1, Stepper: NewStepper(Second, 1), Format: "%S", AutoSkip: []int{1, 5, 15, 30}}
	tests := []struct {
		minSpc float64
		want   int
	}{
		{0.5, 1},
		{1, 5},
		{3, 5},
		{20, 30},
		{40, 50},
		{400, 500},
		{math.Inf(1), 1},
		{math.NaN(), 1},
	}
	for _, tt := range tests {
		if got := spec.SkipFactor(tt.minSpc); got != tt.want {
			t.Errorf("SkipFactor(%v) = %d, want %d", tt.minSpc, got, tt.want)
		}
	}

	spec.AutoSkip = nil
	if got := spec.SkipFactor(1e6); got != 1 {
		t.Errorf("SkipFactor() without auto-skip = %d, want 1", got)
	}
}

func TestMakeTicks(t *testing.T) {
	spec := TickSpec{Spacing: 1, Stepper: NewStepper(Second, 1), AutoSkip: []int{1, 5}}

	ticks, n := spec.MakeTicks(0.5, 5.5, 0)
	if n != 1 {
		t.Errorf("skip = %d, want 1", n)
	}
	if want := []float64{1, 2, 3, 4, 5}; !slices.Equal(ticks, want) {
		t.Errorf("ticks = %v, want %v", ticks, want)
	}

	ticks, n = spec.MakeTicks(0, 20, 3)
	if n != 5 {
		t.Errorf("skip = %d, want 5", n)
	}
	if want := []float64{5, 10, 15, 20}; !slices.Equal(ticks, want) {
		t.Errorf("ticks = %v, want %v", ticks, want)
	}
}

func TestMakeTicksEmpty(t *testing.T) {
	spec := TickSpec{Spacing: 1, Stepper: NewStepper(Second, 1)}
	if ticks, _ := spec.MakeTicks(5, 5.5, 0); len(ticks) != 0 {
		t.Errorf("ticks = %v, want none", ticks)
	}
	if ticks, _ := spec.MakeTicks(MaxTimestamp+1, MaxTimestamp+10, 0); len(ticks) != 0 {
		t.Errorf("ticks beyond range = %v, want none", ticks)
	}
}
