package layers

import (
	"image/color"

	"github.com/gogpu/plotview/recording"
)

// Theme holds the colors used by the default layer stack.
type Theme struct {
	Background color.RGBA
	MinorGrid  color.RGBA
	MajorGrid  color.RGBA
	Origin     color.RGBA
	Label      color.RGBA
	Series     color.RGBA
	Function   color.RGBA
	Crosshair  color.RGBA
}

// DefaultTheme returns the dark theme the chart ships with.
func DefaultTheme() Theme {
	return Theme{
		Background: recording.Hex("#222222"),
		MinorGrid:  recording.Hex("#000aff"),
		MajorGrid:  recording.Hex("#000aff"),
		Origin:     recording.Hex("#ff0000"),
		Label:      recording.Hex("#dddddd"),
		Series:     recording.Hex("#26dc57"),
		Function:   recording.Hex("#dc26ac"),
		Crosshair:  recording.Hex("#ff0000"),
	}
}

// withAlpha scales a premultiplied color by alpha in [0, 1].
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	switch {
	case alpha <= 0:
		return color.RGBA{}
	case alpha >= 1:
		return c
	}
	scale := func(v uint8) uint8 { return uint8(float64(v)*alpha + 0.5) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
