package plotview

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.zoomStep != DefaultZoomStep || o.dragSensitivity != DefaultDragSensitivity ||
		o.axisYSensitivity != DefaultAxisYSensitivity || o.dpr != 1 ||
		o.policy != ScaleIndependent || !o.initial.IsIdentity() {
		t.Errorf("defaultOptions() = %+v", o)
	}
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zoom step 1", WithZoomStep(1)},
		{"zoom step below 1", WithZoomStep(0.5)},
		{"zero drag sensitivity", WithDragSensitivity(0)},
		{"negative axis sensitivity", WithAxisSensitivity(-1)},
		{"zero dpr", WithDevicePixelRatio(0)},
		{"singular transform", WithTransform(Scale(0, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			if o != defaultOptions() {
				t.Errorf("option applied: %+v", o)
			}
		})
	}
}

func TestOptionsApply(t *testing.T) {
	m := NewMatrix(50, 0, 0, -50, 400, 200)
	o := defaultOptions()
	for _, opt := range []Option{
		WithZoomStep(1.2),
		WithDragSensitivity(100),
		WithAxisSensitivity(50),
		WithDevicePixelRatio(1.5),
		WithScalePolicy(ScaleIsotropic),
		WithTransform(m),
	} {
		opt(&o)
	}
	want := options{
		zoomStep:         1.2,
		dragSensitivity:  100,
		axisYSensitivity: 50,
		dpr:              1.5,
		policy:           ScaleIsotropic,
		initial:          m,
	}
	if o != want {
		t.Errorf("options = %+v, want %+v", o, want)
	}
}

func TestNewWithTransform(t *testing.T) {
	m := NewMatrix(50, 0, 0, -50, 400, 200)
	v := New(Sz(800, 400), WithTransform(m))
	if got := v.State().Transform; got != m {
		t.Errorf("Transform = %v, want %v", got, m)
	}
	if got := v.State().Bounds; !rectNear(got, Rect{X: -8, Y: 4, Width: 8, Height: -4}, 1e-9) {
		t.Errorf("Bounds = %+v", got)
	}
}
