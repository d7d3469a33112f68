package metricimpl

import (
	"math"

	"github.com/rittickrr/raptor"
	"gonum.org/v1/gonum/mat"
)

// deltaNum is the central-difference step used to numerically differentiate
// the metric tensor when building the connection. Matches the reference
// implementation's convention of a fixed, small finite-difference step
// rather than an adaptive one.
const deltaNum = 1e-4

// KerrSchild is spinning black hole spacetime in spherical Kerr-Schild
// coordinates, with a logarithmic radial coordinate: X1 = log(r). Its
// Christoffel symbols are obtained by numerically differentiating the
// analytic covariant metric and inverting with gonum/mat, rather than from
// a closed-form connection -- the same approach a GRMHD-coupled ray tracer
// takes when the metric itself might eventually come from a numerical
// spacetime solver instead of a closed form.
type KerrSchild struct {
	Spin float64
}

func (ks KerrSchild) Radius(x grpol.Vec4) float64 {
	return math.Exp(x[1])
}

// metricDD returns the covariant Kerr-Schild metric at coordinate x, where
// x[1] = log(r).
func (ks KerrSchild) metricDD(x grpol.Vec4) grpol.Mat4 {
	r := math.Exp(x[1])
	theta := x[2]
	a := ks.Spin

	sinTheta, cosTheta := math.Sincos(theta)
	sigma := r*r + a*a*cosTheta*cosTheta
	zz := 2 * r / sigma

	var g grpol.Mat4
	g[0][0] = zz - 1
	g[0][1] = zz * r // scaled by dr/dX1 = r (chain rule for X1 = log r)
	g[1][0] = g[0][1]
	g[0][3] = -zz * a * sinTheta * sinTheta
	g[3][0] = g[0][3]

	g[1][1] = (1 + zz) * r * r // scaled by (dr/dlogr)^2 = r^2
	g[1][3] = -(1 + zz) * a * sinTheta * sinTheta * r
	g[3][1] = g[1][3]

	g[2][2] = sigma
	g[3][3] = (r*r + a*a + zz*a*a*sinTheta*sinTheta) * sinTheta * sinTheta

	return g
}

func (ks KerrSchild) MetricUU(x grpol.Vec4) grpol.Mat4 {
	gdd := ks.metricDD(x)
	dense := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			dense.Set(i, j, gdd[i][j])
		}
	}
	var inv mat.Dense
	if err := inv.Inverse(dense); err != nil {
		return grpol.Mat4{}
	}
	var guu grpol.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			guu[i][j] = inv.At(i, j)
		}
	}
	return guu
}

func (ks KerrSchild) RaiseIndex(x grpol.Vec4, down grpol.Vec4) grpol.Vec4 {
	guu := ks.MetricUU(x)
	var up grpol.Vec4
	for i := 0; i < 4; i++ {
		var s float64
		for j := 0; j < 4; j++ {
			s += guu[i][j] * down[j]
		}
		up[i] = s
	}
	return up
}

func (ks KerrSchild) LowerIndex(x grpol.Vec4, up grpol.Vec4) grpol.Vec4 {
	gdd := ks.metricDD(x)
	var down grpol.Vec4
	for i := 0; i < 4; i++ {
		var s float64
		for j := 0; j < 4; j++ {
			s += gdd[i][j] * up[j]
		}
		down[i] = s
	}
	return down
}

// Connection builds Gamma^l_{mu nu} = 1/2 g^{l sigma} (d_mu g_{sigma nu} +
// d_nu g_{sigma mu} - d_sigma g_{mu nu}) from central-difference derivatives
// of metricDD and the inverse metric from MetricUU.
func (ks KerrSchild) Connection(x grpol.Vec4) grpol.Christoffel {
	guu := ks.MetricUU(x)

	var dg [4]grpol.Mat4 // dg[mu][sigma][nu] = d_mu g_{sigma nu}
	for mu := 0; mu < 4; mu++ {
		xPlus, xMinus := x, x
		xPlus[mu] += deltaNum
		xMinus[mu] -= deltaNum
		gPlus := ks.metricDD(xPlus)
		gMinus := ks.metricDD(xMinus)
		for sigma := 0; sigma < 4; sigma++ {
			for nu := 0; nu < 4; nu++ {
				dg[mu][sigma][nu] = (gPlus[sigma][nu] - gMinus[sigma][nu]) / (2 * deltaNum)
			}
		}
	}

	var gamma grpol.Christoffel
	for l := 0; l < 4; l++ {
		for mu := 0; mu < 4; mu++ {
			for nu := 0; nu < 4; nu++ {
				var s float64
				for sigma := 0; sigma < 4; sigma++ {
					s += guu[l][sigma] * (dg[mu][sigma][nu] + dg[nu][sigma][mu] - dg[sigma][mu][nu])
				}
				gamma[l][mu][nu] = 0.5 * s
			}
		}
	}
	return gamma
}
