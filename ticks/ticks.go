// Package ticks computes "nice" numeric axis ticks: major spacing of
// 1, 2 or 5 times a power of ten, chosen so that roughly a target number
// of ticks covers the visible range at any zoom level.
package ticks

import "math"

// Tunables. The target count and snapping thresholds are empirically
// chosen and must stay fixed for output to match reference renders.
const (
	// DefaultTargetTicks is the number of major ticks aimed for across the
	// visible span at density 1.
	DefaultTargetTicks = 10

	// Residual thresholds for snapping to 1, 2, 5 or 10.
	SnapTo1Below = 1.5
	SnapTo2Below = 3.5
	SnapTo5Below = 7.5

	// Overscan is the number of major steps generated beyond each end of
	// the outer range.
	Overscan = 2

	// maxTicks bounds the enumeration; anything larger is a degenerate
	// request and yields no ticks.
	maxTicks = 100000

	// maxIndex is the first tick index float64 cannot step past by one.
	maxIndex = 1 << 53
)

// GridTickInfo describes the ticks of one axis.
//
// MajorTicks and MinorTicks are each strictly increasing and disjoint.
// Every major tick is an integer multiple of MajorSpacing and every minor
// tick an integer multiple of MinorSpacing, which evenly divides
// MajorSpacing.
type GridTickInfo struct {
	// MajorStepExponent is floor(log10(MajorSpacing)); label precision is
	// derived from it.
	MajorStepExponent int
	// NiceFactor is the leading digit of MajorSpacing: 1, 2 or 5.
	NiceFactor   float64
	MinorSpacing float64
	MajorSpacing float64
	MajorTicks   []float64
	MinorTicks   []float64
}

// Empty reports whether info carries no ticks.
func (info GridTickInfo) Empty() bool {
	return len(info.MajorTicks) == 0 && len(info.MinorTicks) == 0
}

// NiceFactor snaps a residual in [1, 10) to 1, 2, 5 or 10.
func NiceFactor(residual float64) float64 {
	switch {
	case residual < SnapTo1Below:
		return 1
	case residual < SnapTo2Below:
		return 2
	case residual < SnapTo5Below:
		return 5
	default:
		return 10
	}
}

// MinorDivisor returns how many minor intervals one major interval is
// split into for a nice factor: 5 for 1 and 5, 4 for 2.
func MinorDivisor(niceFactor float64) int {
	if niceFactor == 2 {
		return 4
	}
	return 5
}

// ZoomLevel returns floor(log10(dist)), or 0 when dist <= 0.
func ZoomLevel(dist float64) int {
	if dist <= 0 || math.IsNaN(dist) || math.IsInf(dist, 0) {
		return 0
	}
	return int(math.Floor(math.Log10(dist)))
}

// Grid computes major and minor ticks for an axis whose visible span is
// span, and whose outer (pre-staged) range starts at origin and extends
// for outerRange. density multiplies the target tick count; values <= 0
// mean 1.
//
// Ticks cover [origin - 2*major, origin + outerRange + 2*major]. A
// non-positive or non-finite span yields empty tick sets.
func Grid(span, origin, outerRange, density float64) GridTickInfo {
	if !(span > 0) || math.IsInf(span, 0) || !finite(origin) || !finite(outerRange) {
		return GridTickInfo{}
	}
	if !(density > 0) {
		density = 1
	}

	ideal := span / (DefaultTargetTicks * density)
	exp := int(math.Floor(math.Log10(ideal)))
	residual := ideal / math.Pow10(exp)
	nice := NiceFactor(residual)
	if nice == 10 {
		nice = 1
		exp++
	}
	div := MinorDivisor(nice)

	st := newSteps(nice, exp, div)
	major := st.major()
	minor := st.minor()
	if !(major > 0) || !(minor > 0) || math.IsInf(major, 0) {
		return GridTickInfo{}
	}

	outerRange = math.Abs(outerRange)
	lo := origin - Overscan*major
	hi := origin + outerRange + Overscan*major

	firstMajor, lastMajor := math.Ceil(lo/major), math.Floor(hi/major)
	firstMinor, lastMinor := math.Ceil(lo/minor), math.Floor(hi/minor)
	if math.Abs(firstMinor) >= maxIndex || math.Abs(lastMinor) >= maxIndex {
		// Indices past 2^53 no longer step by one.
		return GridTickInfo{}
	}
	if lastMinor-firstMinor > maxTicks {
		return GridTickInfo{}
	}
	nMajor, nMinor := int(lastMajor-firstMajor), int(lastMinor-firstMinor)

	info := GridTickInfo{
		MajorStepExponent: exp,
		NiceFactor:        nice,
		MajorSpacing:      major,
		MinorSpacing:      minor,
		MajorTicks:        make([]float64, 0, max(nMajor+1, 0)),
		MinorTicks:        make([]float64, 0, max(nMinor+1, 0)),
	}
	for i := 0; i <= nMajor; i++ {
		info.MajorTicks = append(info.MajorTicks, st.majorAt(firstMajor+float64(i)))
	}
	for i := 0; i <= nMinor; i++ {
		j := firstMinor + float64(i)
		if math.Mod(j, float64(div)) == 0 {
			// Coincides with a major tick.
			continue
		}
		info.MinorTicks = append(info.MinorTicks, st.minorAt(j))
	}
	return info
}

// steps computes tick values from integer indices so that ticks come out
// as the closest float64 to the exact decimal (0.6, not
// 0.6000000000000001).
type steps struct {
	nice float64
	exp  int
	div  float64
}

func newSteps(nice float64, exp, div int) steps {
	return steps{nice: nice, exp: exp, div: float64(div)}
}

func (s steps) major() float64 { return s.majorAt(1) }
func (s steps) minor() float64 { return s.minorAt(1) }

func (s steps) majorAt(k float64) float64 {
	if s.exp < 0 {
		return k * s.nice / math.Pow10(-s.exp)
	}
	return k * s.nice * math.Pow10(s.exp)
}

func (s steps) minorAt(j float64) float64 {
	if s.exp < 0 {
		return j * s.nice / (s.div * math.Pow10(-s.exp))
	}
	return j * s.nice * math.Pow10(s.exp) / s.div
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
