package svgtiles

import (
	"math"
)

// Tuple is an X,Y coordinate
type Tuple [2]float64

// Matrix is a 2D affine transform. The six values form the matrix
//
//	[ A C E ]
//	[ B D F ]
//
// which maps (x, y) to (A*x + C*y + E, B*x + D*y + F).
type Matrix struct {
	A, B, C, D, E, F float64
}

// singularEpsilon bounds the determinant magnitude below which a matrix is
// treated as non-invertible.
const singularEpsilon = 1e-12

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scale returns a scale by (sx, sy) about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotate returns a rotation by deg degrees about the origin.
func Rotate(deg float64) Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// RotateAbout returns a rotation by deg degrees about (cx, cy).
func RotateAbout(deg, cx, cy float64) Matrix {
	return Translate(cx, cy).Mul(Rotate(deg)).Mul(Translate(-cx, -cy))
}

// SkewX returns a skew along the x axis by deg degrees.
func SkewX(deg float64) Matrix {
	return Matrix{A: 1, C: math.Tan(deg * math.Pi / 180), D: 1}
}

// SkewY returns a skew along the y axis by deg degrees.
func SkewY(deg float64) Matrix {
	return Matrix{A: 1, B: math.Tan(deg * math.Pi / 180), D: 1}
}

// Mul composes m with n so that n is applied first and m second: the
// result maps p to m.Apply(n.Apply(p)). Nested frames compose as
// outer.Mul(inner).
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply transforms p by m.
func (m Matrix) Apply(p Tuple) Tuple {
	return Tuple{
		m.A*p[0] + m.C*p[1] + m.E,
		m.B*p[0] + m.D*p[1] + m.F,
	}
}

// Det returns the determinant of the linear part of m.
func (m Matrix) Det() float64 {
	return m.A*m.D - m.C*m.B
}

// Invert returns the inverse of m, or ErrSingularMatrix when the
// determinant is zero or too close to it.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Det()
	if math.Abs(det) < singularEpsilon || math.IsNaN(det) {
		return Matrix{}, ErrSingularMatrix
	}
	inv := 1 / det
	a, b, c, d := m.D*inv, -m.B*inv, -m.C*inv, m.A*inv
	return Matrix{
		A: a,
		B: b,
		C: c,
		D: d,
		E: -(a*m.E + c*m.F),
		F: -(b*m.E + d*m.F),
	}, nil
}

// Equal reports whether m and n differ by at most eps in every component.
func (m Matrix) Equal(n Matrix, eps float64) bool {
	return math.Abs(m.A-n.A) <= eps && math.Abs(m.B-n.B) <= eps &&
		math.Abs(m.C-n.C) <= eps && math.Abs(m.D-n.D) <= eps &&
		math.Abs(m.E-n.E) <= eps && math.Abs(m.F-n.F) <= eps
}

// Box is an axis-aligned rectangle given by its minimum and maximum corners.
type Box struct {
	Min, Max Tuple
}

// EmptyBox returns a box that any point expands.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{Min: Tuple{inf, inf}, Max: Tuple{-inf, -inf}}
}

// Expand grows b so that it contains p.
func (b Box) Expand(p Tuple) Box {
	return Box{
		Min: Tuple{math.Min(b.Min[0], p[0]), math.Min(b.Min[1], p[1])},
		Max: Tuple{math.Max(b.Max[0], p[0]), math.Max(b.Max[1], p[1])},
	}
}

// Size returns the width and height of b.
func (b Box) Size() Tuple {
	return Tuple{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1]}
}

// TransformedRectBounds returns the axis-aligned bounds of the rectangle
// (x, y, w, h) after transforming its four corners by m.
func TransformedRectBounds(m Matrix, x, y, w, h float64) Box {
	b := EmptyBox()
	for _, cx := range []float64{x, x + w} {
		for _, cy := range []float64{y, y + h} {
			b = b.Expand(m.Apply(Tuple{cx, cy}))
		}
	}
	return b
}

// FitRect returns the transform that maps page-space box b onto the output
// rectangle [0,w]x[0,h]. The y axis is flipped: the top edge of b (its
// minimum y) lands on h and the bottom edge on 0.
func FitRect(b Box, w, h float64) (Matrix, error) {
	size := b.Size()
	if !(size[0] > singularEpsilon) || !(size[1] > singularEpsilon) || math.IsInf(size[0], 0) || math.IsInf(size[1], 0) {
		return Matrix{}, ErrSingularMatrix
	}
	sx := w / size[0]
	sy := h / size[1]
	return Matrix{
		A: sx,
		D: -sy,
		E: -b.Min[0] * sx,
		F: b.Max[1] * sy,
	}, nil
}
