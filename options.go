package plotview

// Option configures a Viewport during creation.
// Use functional options to customize Viewport behavior.
//
// Example:
//
//	// Default behavior
//	v := plotview.New(plotview.Sz(800, 400))
//
//	// Faster wheel zoom on a HiDPI display
//	v := plotview.New(plotview.Sz(1600, 800),
//	    plotview.WithZoomStep(1.1),
//	    plotview.WithDevicePixelRatio(2))
type Option func(*options)

// options holds optional configuration for Viewport creation.
type options struct {
	zoomStep         float64
	dragSensitivity  float64
	axisYSensitivity float64
	dpr              float64
	policy           ScalePolicy
	initial          Matrix
}

// defaultOptions returns the default viewport options.
func defaultOptions() options {
	return options{
		zoomStep:         DefaultZoomStep,
		dragSensitivity:  DefaultDragSensitivity,
		axisYSensitivity: DefaultAxisYSensitivity,
		dpr:              1,
		policy:           ScaleIndependent,
		initial:          Identity(),
	}
}

// WithZoomStep sets the scale factor applied per wheel tick.
// Values <= 1 are ignored.
func WithZoomStep(step float64) Option {
	return func(o *options) {
		if step > 1 {
			o.zoomStep = step
		}
	}
}

// WithDragSensitivity sets the pointer travel, in pixels, that doubles the
// scale during a plot-area or X-axis scale drag.
func WithDragSensitivity(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.dragSensitivity = px
		}
	}
}

// WithAxisSensitivity sets the pointer travel, in pixels, that doubles the
// scale during a Y-axis scale drag.
func WithAxisSensitivity(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.axisYSensitivity = px
		}
	}
}

// WithDevicePixelRatio sets the ratio between canvas pixels and the
// element-local pointer coordinates. Translations are scaled by it.
func WithDevicePixelRatio(dpr float64) Option {
	return func(o *options) {
		if dpr > 0 {
			o.dpr = dpr
		}
	}
}

// WithScalePolicy sets how scale gestures couple the X and Y axes.
func WithScalePolicy(p ScalePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithTransform sets the initial view transform. A singular matrix is
// ignored and the identity is used instead.
func WithTransform(m Matrix) Option {
	return func(o *options) {
		if _, err := m.Invert(); err == nil {
			o.initial = m
		}
	}
}
