package timeaxis

import "math"

// maxTicks bounds the ticks one spec may generate for a single range.
const maxTicks = 100000

// TickSpec describes one family of date ticks: years, months, whole
// hours and so on.
type TickSpec struct {
	// Spacing is the approximate distance between ticks in seconds.
	Spacing float64
	Stepper Stepper
	// Format is a strftime format for tick labels. %f expands to
	// microseconds.
	Format string
	// AutoSkip lists step multipliers tried, in order, when ticks would
	// be closer than the minimum spacing. The list is repeated with every
	// factor multiplied by 10, 100 and so on until one fits. A nil list
	// disables skipping.
	AutoSkip []int
}

// SkipFactor returns the step multiplier needed so that ticks are at
// least minSpc seconds apart. It is 1 when skipping is disabled or not
// needed.
func (s TickSpec) SkipFactor(minSpc float64) int {
	if len(s.AutoSkip) == 0 || minSpc < s.Spacing || math.IsNaN(minSpc) {
		return 1
	}
	if math.IsInf(minSpc, 1) || !(s.Spacing > 0) {
		return 1
	}
	for scale := 1; ; scale *= 10 {
		for _, f := range s.AutoSkip {
			if s.Spacing*float64(f*scale) > minSpc {
				return f * scale
			}
		}
		if float64(scale) > math.MaxInt32 {
			return s.AutoSkip[len(s.AutoSkip)-1] * scale
		}
	}
}

// MakeTicks returns the ticks of s in [minVal, maxVal] and the skip
// factor used to generate them.
func (s TickSpec) MakeTicks(minVal, maxVal, minSpc float64) ([]float64, int) {
	n := s.SkipFactor(minSpc)
	var ticks []float64
	x := s.Stepper.Step(minVal, n, true)
	for x <= maxVal && len(ticks) < maxTicks {
		ticks = append(ticks, x)
		next := s.Stepper.Step(x, n, false)
		if !(next > x) {
			break
		}
		x = next
	}
	return ticks, n
}
