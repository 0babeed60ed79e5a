package plotview

import (
	"errors"
	"math"
	"testing"
)

func pointsNear(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestMultiplyOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 20).Multiply(Scale(2, 3))
	if got, want := m.TransformPoint(Pt(1, 1)), Pt(12, 23); got != want {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
	if got := Scale(2, 3).Then(Translate(10, 20)); got != m {
		t.Errorf("Then() = %v, want %v", got, m)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(-300, 42)},
		{"scale", Scale(0.01, 250)},
		{"flipped y", NewMatrix(50, 0, 0, -50, 400, 200)},
		{"skew", NewMatrix(1, 0.5, 0.25, 1, 3, 4)},
	}
	pts := []Point{{}, {X: 1, Y: -1}, {X: 800, Y: 400}, {X: -1e4, Y: 3.5}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.m.Invert()
			if err != nil {
				t.Fatalf("Invert() error = %v", err)
			}
			if got := tt.m.Multiply(inv); !got.ApproxEqual(Identity(), 1e-9) {
				t.Errorf("m * m^-1 = %v, want identity", got)
			}
			back, err := inv.Invert()
			if err != nil {
				t.Fatalf("second Invert() error = %v", err)
			}
			if !back.ApproxEqual(tt.m, 1e-9*math.Max(1, math.Abs(tt.m.E)+math.Abs(tt.m.F))) {
				t.Errorf("double inverse = %v, want %v", back, tt.m)
			}
			for _, p := range pts {
				back := inv.TransformPoint(tt.m.TransformPoint(p))
				if !pointsNear(back, p, 1e-9*math.Max(1, math.Abs(p.X))) {
					t.Errorf("round trip of %v = %v", p, back)
				}
			}
		})
	}
}

func TestInvertSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"zero", Matrix{}},
		{"zero x scale", Scale(0, 1)},
		{"collinear", NewMatrix(1, 2, 2, 4, 0, 0)},
		{"nan", Scale(math.NaN(), 1)},
		{"inf", Scale(math.Inf(1), 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.m.Invert(); !errors.Is(err, ErrSingularMatrix) {
				t.Errorf("Invert() error = %v, want ErrSingularMatrix", err)
			}
		})
	}
}

func TestClampScale(t *testing.T) {
	tests := []struct {
		name  string
		m     Matrix
		wantA float64
		wantD float64
	}{
		{"above floor", Scale(2, -3), 2, -3},
		{"positive below", Scale(0.001, 1), MinScale, 1},
		{"negative below", Scale(1, -0.001), 1, -MinScale},
		{"zero", Scale(0, 0), MinScale, MinScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.ClampScale(MinScale)
			if got.A != tt.wantA || got.D != tt.wantD {
				t.Errorf("ClampScale() = %v, want A=%g D=%g", got, tt.wantA, tt.wantD)
			}
		})
	}
}

func TestAxisProjections(t *testing.T) {
	m := NewMatrix(2, 0, 0, -3, 10, 20)
	if got, want := m.AxisX(), NewMatrix(2, 0, 0, 1, 10, 0); got != want {
		t.Errorf("AxisX() = %v, want %v", got, want)
	}
	if got, want := m.AxisY(), NewMatrix(1, 0, 0, -3, 0, 20); got != want {
		t.Errorf("AxisY() = %v, want %v", got, want)
	}
}

func TestMatrixString(t *testing.T) {
	if got, want := NewMatrix(1, 0, 0, 2, 3.5, -4).String(), "matrix(1, 0, 0, 2, 3.5, -4)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	m := NewMatrix(2, 0, 0, 3, 100, 100)
	if got, want := m.TransformVector(Pt(1, 1)), Pt(2, 3); got != want {
		t.Errorf("TransformVector = %v, want %v", got, want)
	}
}
