package ticks

import (
	"math"
	"strconv"
	"strings"
)

// DefaultLabelThreshold is the decimal exponent beyond which labels switch
// to exponential notation.
const DefaultLabelThreshold = 6

// FormatLabel formats a tick value for display. exponent is the major
// step exponent of the tick set (GridTickInfo.MajorStepExponent), and
// threshold the magnitude exponent beyond which the label is written as
// mantissa and exponent with two fractional digits.
//
// Values too small to show at the chosen precision print as zero.
func FormatLabel(value float64, exponent, threshold int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	if threshold <= 0 {
		threshold = DefaultLabelThreshold
	}
	prec := max(0, -exponent+1)
	abs := math.Abs(value)
	if abs < 0.5*math.Pow10(-prec) {
		return strconv.FormatFloat(0, 'f', prec, 64)
	}
	if abs >= math.Pow10(threshold) || abs <= math.Pow10(-threshold) {
		return exponential(value)
	}
	return strconv.FormatFloat(value, 'f', prec, 64)
}

// exponential formats v as "1.23e+6": two fractional digits and no
// leading zeros in the exponent.
func exponential(v float64) string {
	s := strconv.FormatFloat(v, 'e', 2, 64)
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}
