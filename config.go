package plotview

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the file form of the viewport and axis settings.
//
// Example:
//
//	[viewport]
//	zoom_step = 1.05
//	scale_policy = "isotropic"
//
//	[ticks]
//	density = 1.5
//
//	[time_axis]
//	enabled = true
//	utc_offset = "2h"
type Config struct {
	Viewport ViewportConfig `toml:"viewport"`
	Ticks    TickConfig     `toml:"ticks"`
	TimeAxis TimeAxisConfig `toml:"time_axis"`
}

// ViewportConfig holds gesture tuning.
type ViewportConfig struct {
	ZoomStep         float64     `toml:"zoom_step"`
	DragSensitivity  float64     `toml:"drag_sensitivity"`
	AxisSensitivity  float64     `toml:"axis_sensitivity"`
	DevicePixelRatio float64     `toml:"device_pixel_ratio"`
	ScalePolicy      ScalePolicy `toml:"scale_policy"`
}

// TickConfig holds numeric tick settings.
type TickConfig struct {
	// Density multiplies the target tick count.
	Density float64 `toml:"density"`
	// LabelThreshold is the decimal exponent beyond which labels switch
	// to exponential notation.
	LabelThreshold int `toml:"label_threshold"`
}

// TimeAxisConfig holds calendar axis settings.
type TimeAxisConfig struct {
	Enabled bool `toml:"enabled"`
	// UTCOffset is a Go duration string such as "-5h" or "5h30m".
	UTCOffset string `toml:"utc_offset"`
	// Font selects the label measurer: "fixed" or "shaped".
	Font string `toml:"font"`
}

// DefaultConfig returns the configuration matching the package defaults.
func DefaultConfig() Config {
	return Config{
		Viewport: ViewportConfig{
			ZoomStep:         DefaultZoomStep,
			DragSensitivity:  DefaultDragSensitivity,
			AxisSensitivity:  DefaultAxisYSensitivity,
			DevicePixelRatio: 1,
			ScalePolicy:      ScaleIndependent,
		},
		Ticks: TickConfig{
			Density:        1,
			LabelThreshold: 6,
		},
		TimeAxis: TimeAxisConfig{
			Font: "fixed",
		},
	}
}

// LoadConfig reads a TOML configuration. Keys missing from r keep their
// DefaultConfig value; unknown keys are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	v := c.Viewport
	switch {
	case v.ZoomStep <= 1:
		return fmt.Errorf("%w: zoom_step must be > 1, got %g", ErrInvalidConfig, v.ZoomStep)
	case v.DragSensitivity <= 0:
		return fmt.Errorf("%w: drag_sensitivity must be > 0, got %g", ErrInvalidConfig, v.DragSensitivity)
	case v.AxisSensitivity <= 0:
		return fmt.Errorf("%w: axis_sensitivity must be > 0, got %g", ErrInvalidConfig, v.AxisSensitivity)
	case v.DevicePixelRatio <= 0:
		return fmt.Errorf("%w: device_pixel_ratio must be > 0, got %g", ErrInvalidConfig, v.DevicePixelRatio)
	case c.Ticks.Density <= 0:
		return fmt.Errorf("%w: ticks.density must be > 0, got %g", ErrInvalidConfig, c.Ticks.Density)
	case c.Ticks.LabelThreshold <= 0:
		return fmt.Errorf("%w: ticks.label_threshold must be > 0, got %d", ErrInvalidConfig, c.Ticks.LabelThreshold)
	}
	switch c.TimeAxis.Font {
	case "", "fixed", "shaped":
	default:
		return fmt.Errorf("%w: unknown time_axis.font %q", ErrInvalidConfig, c.TimeAxis.Font)
	}
	return nil
}

// Options converts the viewport section into Viewport options.
func (c Config) Options() []Option {
	v := c.Viewport
	return []Option{
		WithZoomStep(v.ZoomStep),
		WithDragSensitivity(v.DragSensitivity),
		WithAxisSensitivity(v.AxisSensitivity),
		WithDevicePixelRatio(v.DevicePixelRatio),
		WithScalePolicy(v.ScalePolicy),
	}
}

var scalePolicyNames = [...]string{
	ScaleIndependent: "independent",
	ScaleIsotropic:   "isotropic",
	ScaleXOnly:       "x",
	ScaleYOnly:       "y",
}

// String returns the policy name used in configuration files.
func (p ScalePolicy) String() string {
	if int(p) >= 0 && int(p) < len(scalePolicyNames) {
		return scalePolicyNames[p]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (p ScalePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ScalePolicy) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	for i, n := range scalePolicyNames {
		if n == name {
			*p = ScalePolicy(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown scale policy %q", ErrInvalidConfig, name)
}
