package plotview

import (
	"fmt"
	"math"
)

// MinScale is the smallest scale magnitude a view transform may carry.
// Scales are floored here before they are composed so that the transform
// stays invertible and the visible data range never collapses to zero.
const MinScale = 0.01

// singularEpsilon is the determinant magnitude below which a matrix is
// treated as not invertible.
const singularEpsilon = 1e-12

// Matrix represents a 2D affine transformation matrix in canvas order:
//
//	| A  C  E |
//	| B  D  F |
//	| 0  0  1 |
//
// This represents the transformation:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// A view Matrix maps a data-space point to a canvas pixel. Matrix is an
// immutable value; every method returns a new Matrix.
type Matrix struct {
	A, B, C, D, E, F float64
}

// NewMatrix creates a matrix from its six components in (a, b, c, d, e, f)
// order, the same order a canvas setTransform call takes.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, E: x, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// Multiply returns m * other: other is applied first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// Then returns the transform that applies m first and other second.
func (m Matrix) Then(other Matrix) Matrix {
	return other.Multiply(m)
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// Determinant returns A*D - B*C.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse matrix.
// It returns ErrSingularMatrix if the matrix is not invertible; callers
// keep their last valid transform in that case.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < singularEpsilon || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, fmt.Errorf("%w: det=%g", ErrSingularMatrix, det)
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.D * invDet,
		B: -m.B * invDet,
		C: -m.C * invDet,
		D: m.A * invDet,
		E: (m.C*m.F - m.D*m.E) * invDet,
		F: (m.B*m.E - m.A*m.F) * invDet,
	}, nil
}

// ClampScale returns a copy of m whose scale components have a magnitude
// of at least min. The sign is preserved; an exact zero becomes +min.
func (m Matrix) ClampScale(min float64) Matrix {
	m.A = clampMagnitude(m.A, min)
	m.D = clampMagnitude(m.D, min)
	return m
}

func clampMagnitude(v, min float64) float64 {
	if math.Abs(v) >= min {
		return v
	}
	if v < 0 {
		return -min
	}
	return min
}

// AxisX returns the horizontal projection of m: the X scale and
// translation with identity on the Y axis.
func (m Matrix) AxisX() Matrix {
	return Matrix{A: m.A, D: 1, E: m.E}
}

// AxisY returns the vertical projection of m: the Y scale and
// translation with identity on the X axis.
func (m Matrix) AxisY() Matrix {
	return Matrix{A: 1, D: m.D, F: m.F}
}

// Array returns the components in (a, b, c, d, e, f) order.
func (m Matrix) Array() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 1 && m.E == 0 && m.F == 0
}

// ApproxEqual reports whether every component of m is within eps of the
// matching component of other.
func (m Matrix) ApproxEqual(other Matrix, eps float64) bool {
	a, b := m.Array(), other.Array()
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// String formats the matrix like a CSS matrix() function.
func (m Matrix) String() string {
	return fmt.Sprintf("matrix(%g, %g, %g, %g, %g, %g)", m.A, m.B, m.C, m.D, m.E, m.F)
}
