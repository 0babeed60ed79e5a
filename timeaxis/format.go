package timeaxis

import (
	"fmt"
	"strings"
	"time"

	"github.com/tebeka/strftime"
)

// FormatTime formats t with a strftime format. In addition to the
// directives strftime understands, %f expands to the zero-padded
// microseconds of t.
func FormatTime(format string, t time.Time) (string, error) {
	return formatTime(format, t, 6)
}

// formatTime expands %f to the first digits of the fractional second and
// hands the rest to strftime.
func formatTime(format string, t time.Time, digits int) (string, error) {
	if strings.Contains(format, "%f") {
		format = expandFraction(format, t, digits)
	}
	s, err := strftime.Format(format, t)
	if err != nil {
		return "", fmt.Errorf("timeaxis: format %q: %w", format, err)
	}
	return s, nil
}

func expandFraction(format string, t time.Time, digits int) string {
	frac := fmt.Sprintf("%06d", t.Nanosecond()/1000)[:digits]
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 == len(format) {
			b.WriteByte(format[i])
			continue
		}
		switch next := format[i+1]; next {
		case 'f':
			b.WriteString(frac)
		default:
			b.WriteByte('%')
			b.WriteByte(next)
		}
		i++
	}
	return b.String()
}
