package metricimpl

import (
	"math"

	"github.com/rittickrr/raptor"
	"gonum.org/v1/gonum/mat"
)

// trialAxes are fallback candidate vectors tried, in order, whenever a
// preferred leg (the photon wave vector or the magnetic field) turns out to
// be degenerate with the legs already built -- the same "try the next
// candidate" pattern the teacher's rotation helpers assume a well-posed
// input, generalized here because a Gram-Schmidt build can't assume one.
var trialAxes = []grpol.Vec4{
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
	{0, 1, 1, 1},
}

// GramSchmidtTetrad builds an orthonormal observer tetrad by Gram-Schmidt
// orthonormalization against the metric at the sample point: e0 along the
// four-velocity, e1 along the (projected) photon wave vector, e2 along the
// (projected) magnetic field, and e3 completing the frame from the first
// trial axis not degenerate with the first three.
type GramSchmidtTetrad struct {
	Metric grpol.MetricTensor
}

func inner(metric grpol.MetricTensor, x, a, b grpol.Vec4) float64 {
	aDown := metric.LowerIndex(x, a)
	var s float64
	for i := 0; i < 4; i++ {
		s += aDown[i] * b[i]
	}
	return s
}

// projectOut removes the component of v along each vector in basis,
// measuring the projection with the metric inner product, signed by each
// basis vector's own norm-squared (basis legs are assumed already unit,
// timelike or spacelike).
func projectOut(metric grpol.MetricTensor, x, v grpol.Vec4, basis []grpol.Vec4, basisSign []float64) grpol.Vec4 {
	out := v
	for i, e := range basis {
		proj := inner(metric, x, out, e) / basisSign[i]
		for k := 0; k < 4; k++ {
			out[k] -= proj * e[k]
		}
	}
	return out
}

// normalize returns v scaled to unit norm (timelike if wantTimelike,
// spacelike otherwise), the leg's norm-squared sign (-1 or +1), and whether
// the candidate was non-degenerate.
func normalize(metric grpol.MetricTensor, x, v grpol.Vec4, wantTimelike bool) (grpol.Vec4, float64, bool) {
	g := inner(metric, x, v, v)
	if wantTimelike && g >= -1e-12 {
		return grpol.Vec4{}, 0, false
	}
	if !wantTimelike && g <= 1e-12 {
		return grpol.Vec4{}, 0, false
	}
	n := math.Sqrt(math.Abs(g))
	var out grpol.Vec4
	for k := 0; k < 4; k++ {
		out[k] = v[k] / n
	}
	sign := 1.0
	if wantTimelike {
		sign = -1.0
	}
	return out, sign, true
}

func (t GramSchmidtTetrad) CreateObserverTetrad(x, k, u, b grpol.Vec4) grpol.Tetrad {
	legs := make([]grpol.Vec4, 0, 4)
	signs := make([]float64, 0, 4)

	e0, s0, _ := normalize(t.Metric, x, u, true)
	legs = append(legs, e0)
	signs = append(signs, s0)

	candidates := [][]grpol.Vec4{{k, b}, trialAxes}
	for _, group := range candidates {
		if len(legs) >= 4 {
			break
		}
		for _, cand := range group {
			if len(legs) >= 4 {
				break
			}
			proj := projectOut(t.Metric, x, cand, legs, signs)
			e, s, ok := normalize(t.Metric, x, proj, false)
			if !ok {
				continue
			}
			legs = append(legs, e)
			signs = append(signs, s)
		}
	}
	for len(legs) < 4 {
		legs = append(legs, grpol.Vec4{})
		signs = append(signs, 1)
	}

	upDense := mat.NewDense(4, 4, nil)
	downDense := mat.NewDense(4, 4, nil)
	for a := 0; a < 4; a++ {
		downLeg := t.Metric.LowerIndex(x, legs[a])
		for mu := 0; mu < 4; mu++ {
			upDense.Set(mu, a, legs[a][mu])
			// The dual leg carries its own Minkowski sign so that
			// Down[mu][a]*Up[mu][b] contracts to delta_{ab}, not eta_{ab}:
			// leg a is already unit under g(e_a,e_a) = signs[a], so
			// dividing that factor back out here is what makes the pair
			// (Up, Down) an honest dual basis rather than just one metric
			// contraction away from it.
			downDense.Set(mu, a, downLeg[mu]*signs[a])
		}
	}

	var tet grpol.Tetrad
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			tet.Up[i][j] = upDense.At(i, j)
			tet.Down[i][j] = downDense.At(i, j)
		}
	}
	return tet
}
