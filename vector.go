package grpol

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vec4 is a contiguous four-component real vector: a spacetime position,
// a tangent/wave vector, or a one-form, depending on context.
type Vec4 [4]float64

// Mat4 is a 4x4 real matrix, row-major. Used for the metric tensor and for
// tetrad legs.
type Mat4 [4][4]float64

// Christoffel holds the connection coefficients Gamma^i_{jk}(X), indexed
// [i][j][k].
type Christoffel [4][4][4]float64

// dot4 contracts two Vec4 componentwise (not a metric contraction).
func dot4(a, b Vec4) float64 {
	var s float64
	for i := 0; i < 4; i++ {
		s += a[i] * b[i]
	}
	return s
}

// contractLower contracts a one-form (down-index) with a vector (up-index):
// g_{mu nu} U^mu U^nu style usage is built from this by first lowering U
// with a metric's LowerIndex.
func contractLower(down, up Vec4) float64 {
	return dot4(down, up)
}

// mulMat4Vec multiplies a Mat4 by a Vec4: out_i = sum_j m[i][j] v[j].
func mulMat4Vec(m Mat4, v Vec4) Vec4 {
	var out Vec4
	for i := 0; i < 4; i++ {
		var s float64
		for j := 0; j < 4; j++ {
			s += m[i][j] * v[j]
		}
		out[i] = s
	}
	return out
}

// quadForm evaluates v^T m v for a Vec4 v and Mat4 m, i.e. g_{mu nu} v^mu v^nu.
func quadForm(m Mat4, v Vec4) float64 {
	return dot4(v, mulMat4Vec(m, v))
}

// norm3 returns the Euclidean norm of the spatial part of a Vec4 (indices 1-3).
func norm3(v Vec4) float64 {
	return math.Sqrt(v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
}

// approxEqual reports whether a and b agree within an absolute tolerance,
// built on gonum's floats helper the same way the teacher's sign()/unit()
// helpers in math.go build on it.
func approxEqual(a, b, tol float64) bool {
	return floats.EqualWithinAbs(a, b, tol)
}

// sign returns the sign of v, treating values within 1e-12 of zero as
// positive. Mirrors the teacher's sign() in math.go.
func sign(v float64) float64 {
	if approxEqual(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}

// sqrtSumSquares returns sqrt(a^2+b^2+c^2).
func sqrtSumSquares(a, b, c float64) float64 {
	return math.Sqrt(a*a + b*b + c*c)
}

// sqrtNonNeg returns sqrt(v) for v >= 0 and 0 for v < 0, guarding against
// tiny negative values from floating-point rounding.
func sqrtNonNeg(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}
