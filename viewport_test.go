package plotview

import (
	"math"
	"testing"
)

func TestViewportWheelZoomScenario(t *testing.T) {
	v := New(Sz(800, 400))
	anchor := Pt(400, 200)
	data := v.State().ScreenToData(anchor)

	for _i := 0; _i < 10; _i++ {
		if !v.Wheel(anchor, -1) {
			t.Fatal("Wheel() reported no change")
		}
	}

	m := v.State().Transform
	want := math.Pow(1.05, 10)
	if math.Abs(m.A-want) > 1e-9 || math.Abs(m.D-want) > 1e-9 {
		t.Errorf("scale = (%g, %g), want %g", m.A, m.D, want)
	}
	if math.Abs(want-1.629) > 1e-3 {
		t.Fatalf("1.05^10 = %g", want)
	}
	if got := m.TransformPoint(data); got.Distance(anchor) > 0.5 {
		t.Errorf("anchor moved to %v, want within 0.5px of %v", got, anchor)
	}
	if got, wantSpan := v.State().Bounds.SpanX(), 800/want; math.Abs(got-wantSpan) > 1e-6 {
		t.Errorf("visible span = %g, want %g", got, wantSpan)
	}
}

func TestViewportWheelIgnoresZeroDelta(t *testing.T) {
	v := New(Sz(800, 400))
	if v.Wheel(Pt(1, 1), 0) || v.Wheel(Pt(1, 1), math.NaN()) {
		t.Error("Wheel() reported a change for a zero or NaN delta")
	}
	if !v.State().Transform.IsIdentity() {
		t.Errorf("Transform = %v, want identity", v.State().Transform)
	}
}

func TestViewportWheelZoomOutThenIn(t *testing.T) {
	v := New(Sz(800, 400))
	for _i := 0; _i < 5; _i++ {
		v.Wheel(Pt(100, 300), 1)
	}
	for _i := 0; _i < 5; _i++ {
		v.Wheel(Pt(100, 300), -1)
	}
	if got := v.State().Transform; !got.ApproxEqual(Identity(), 1e-9) {
		t.Errorf("Transform = %v, want identity", got)
	}
}

func TestViewportDrag(t *testing.T) {
	tests := []struct {
		name   string
		region Region
		button Button
		from   Point
		to     Point
		check  func(t *testing.T, m Matrix)
	}{
		{
			name: "plot primary translates", region: RegionPlot, button: ButtonPrimary,
			from: Pt(100, 100), to: Pt(130, 80),
			check: func(t *testing.T, m Matrix) {
				if m != Translate(30, -20) {
					t.Errorf("Transform = %v, want translate(30, -20)", m)
				}
			},
		},
		{
			name: "plot secondary scales", region: RegionPlot, button: ButtonSecondary,
			from: Pt(100, 100), to: Pt(600, 350),
			check: func(t *testing.T, m Matrix) {
				if math.Abs(m.A-2) > 1e-12 || math.Abs(m.D-1.5) > 1e-12 {
					t.Errorf("scale = (%g, %g), want (2, 1.5)", m.A, m.D)
				}
				if got := m.TransformPoint(Pt(100, 100)); !pointsNear(got, Pt(100, 100), 1e-9) {
					t.Errorf("anchor moved to %v", got)
				}
			},
		},
		{
			name: "x axis primary scales x", region: RegionAxisX, button: ButtonPrimary,
			from: Pt(200, 10), to: Pt(700, 40),
			check: func(t *testing.T, m Matrix) {
				if math.Abs(m.A-2) > 1e-12 || m.D != 1 || m.F != 0 {
					t.Errorf("Transform = %v, want x scale 2 only", m)
				}
			},
		},
		{
			name: "x axis secondary translates x", region: RegionAxisX, button: ButtonSecondary,
			from: Pt(200, 10), to: Pt(250, 40),
			check: func(t *testing.T, m Matrix) {
				if m != Translate(50, 0) {
					t.Errorf("Transform = %v, want translate(50, 0)", m)
				}
			},
		},
		{
			name: "y axis primary scales y", region: RegionAxisY, button: ButtonPrimary,
			from: Pt(10, 100), to: Pt(60, 350),
			check: func(t *testing.T, m Matrix) {
				if math.Abs(m.D-2) > 1e-12 || m.A != 1 || m.E != 0 {
					t.Errorf("Transform = %v, want y scale 2 only", m)
				}
			},
		},
		{
			name: "y axis secondary translates y", region: RegionAxisY, button: ButtonSecondary,
			from: Pt(10, 100), to: Pt(60, 70),
			check: func(t *testing.T, m Matrix) {
				if m != Translate(0, -30) {
					t.Errorf("Transform = %v, want translate(0, -30)", m)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(Sz(800, 400))
			v.PointerDown(tt.region, tt.button, tt.from)
			if !v.PointerMove(tt.to) {
				t.Fatal("PointerMove() reported no change")
			}
			tt.check(t, v.State().Transform)
		})
	}
}

func TestViewportMovesRecomputeFromInitial(t *testing.T) {
	a := New(Sz(800, 400))
	a.PointerDown(RegionPlot, ButtonSecondary, Pt(400, 200))
	for _, p := range []Point{Pt(410, 190), Pt(700, 100), Pt(300, 300), Pt(500, 250)} {
		a.PointerMove(p)
	}

	b := New(Sz(800, 400))
	b.PointerDown(RegionPlot, ButtonSecondary, Pt(400, 200))
	b.PointerMove(Pt(500, 250))

	if a.State().Transform != b.State().Transform {
		t.Errorf("path-dependent result: %v != %v", a.State().Transform, b.State().Transform)
	}
}

func TestViewportButtonIsolation(t *testing.T) {
	v := New(Sz(800, 400))
	v.PointerDown(RegionPlot, ButtonReserved, Pt(10, 10))
	if v.Session() != nil {
		t.Fatal("reserved button started a session")
	}
	if v.PointerMove(Pt(50, 50)) {
		t.Error("PointerMove() changed the view without a session")
	}
	v.PointerDown(RegionPlot, Button(7), Pt(10, 10))
	if v.Session() != nil {
		t.Error("unknown button started a session")
	}
}

func TestViewportSessionDiscard(t *testing.T) {
	for _, end := range []struct {
		name string
		fn   func(*Viewport)
	}{
		{"up", (*Viewport).PointerUp},
		{"leave", (*Viewport).PointerLeave},
	} {
		t.Run(end.name, func(t *testing.T) {
			v := New(Sz(800, 400))
			v.PointerDown(RegionPlot, ButtonPrimary, Pt(10, 10))
			v.PointerMove(Pt(20, 20))
			end.fn(v)
			if v.Session() != nil {
				t.Fatal("session survived pointer " + end.name)
			}
			before := v.State()
			if v.PointerMove(Pt(300, 300)) {
				t.Error("PointerMove() after the drag changed the view")
			}
			if v.State() != before {
				t.Error("state changed after the drag ended")
			}
		})
	}
}

func TestViewportNewDragSnapshotsCurrentView(t *testing.T) {
	v := New(Sz(800, 400))
	v.PointerDown(RegionPlot, ButtonPrimary, Pt(0, 0))
	v.PointerMove(Pt(10, 0))
	v.PointerUp()

	v.PointerDown(RegionPlot, ButtonPrimary, Pt(0, 0))
	if got := v.Session().Initial; got != Translate(10, 0) {
		t.Errorf("second session Initial = %v, want translate(10, 0)", got)
	}
	v.PointerMove(Pt(5, 0))
	if got := v.State().Transform; got != Translate(15, 0) {
		t.Errorf("Transform = %v, want translate(15, 0)", got)
	}
}

func TestViewportScaleDragTolerance(t *testing.T) {
	v := New(Sz(800, 400))
	v.PointerDown(RegionPlot, ButtonSecondary, Pt(100, 100))
	if v.PointerMove(Pt(100.05, 99.95)) {
		t.Error("sub-tolerance move changed the view")
	}
}

func TestViewportDevicePixelRatio(t *testing.T) {
	v := New(Sz(1600, 800), WithDevicePixelRatio(2))
	v.PointerDown(RegionPlot, ButtonPrimary, Pt(100, 100))
	v.PointerMove(Pt(110, 95))
	if got := v.State().Transform; got != Translate(20, -10) {
		t.Errorf("Transform = %v, want translate(20, -10)", got)
	}

	w := New(Sz(1600, 800), WithDevicePixelRatio(2))
	w.Wheel(Pt(200, 100), -1)
	data := Pt(400, 200)
	if got := w.State().Transform.TransformPoint(data); !pointsNear(got, data, 1e-9) {
		t.Errorf("wheel anchor in canvas pixels moved to %v", got)
	}
}

func TestViewportScalePolicy(t *testing.T) {
	v := New(Sz(800, 400), WithScalePolicy(ScaleXOnly))
	v.Wheel(Pt(400, 200), -1)
	if m := v.State().Transform; m.D != 1 || math.Abs(m.A-DefaultZoomStep) > 1e-12 {
		t.Errorf("Transform = %v, want x-only zoom", m)
	}
}

func TestViewportSubscribe(t *testing.T) {
	v := New(Sz(800, 400))
	var a, b int
	unsubA := v.Subscribe(func(ViewState) { a++ })
	v.Subscribe(func(ViewState) { b++ })

	v.Wheel(Pt(1, 1), -1)
	unsubA()
	v.Resize(Sz(400, 400))
	v.Reset()

	if a != 1 {
		t.Errorf("unsubscribed listener saw %d states, want 1", a)
	}
	if b != 3 {
		t.Errorf("listener saw %d states, want 3", b)
	}
	if v.State().CanvasSize != Sz(400, 400) || !v.State().Transform.IsIdentity() {
		t.Errorf("state = %+v", v.State())
	}
}
