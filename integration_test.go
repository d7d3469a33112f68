package grpol_test

import (
	"math"
	"testing"

	"github.com/rittickrr/raptor"
	"github.com/rittickrr/raptor/metricimpl"
)

// straightLineInit seeds a photon at (t0=0, 10, pi/2, 0) with a fixed
// tangent vector, for the flat-spacetime straight-line test.
type straightLineInit struct {
	u grpol.Vec4
}

func (s straightLineInit) InitializePhoton(alpha, beta, t0 float64) grpol.GeodesicState {
	return grpol.NewGeodesicState(grpol.Vec4{t0, 10, math.Pi / 2, 0}, s.u)
}

func TestFlatSpacetimeStraightLine(t *testing.T) {
	metric := metricimpl.Minkowski{}
	u := grpol.Vec4{1, -0.2, 0, 0}
	init := straightLineInit{u: u}
	cfg := grpol.DefaultConfig()
	cfg.Step = 0.05
	cfg.MaxSteps = 200
	cfg.CutoffOuter = 50

	path := grpol.IntegrateGeodesic(metric, init, cfg, 0, 0, 0)
	if len(path.Samples) < 2 {
		t.Fatalf("expected a multi-sample path, got %d", len(path.Samples))
	}

	x0 := path.Samples[0].Y.Position()
	var lambda float64
	for i := 1; i < len(path.Samples); i++ {
		lambda -= path.Samples[i-1].DLambda
		x := path.Samples[i].Y.Position()
		for k := 0; k < 4; k++ {
			want := x0[k] + lambda*u[k]
			if math.Abs(x[k]-want) > 1e-6 {
				t.Fatalf("sample %d component %d: got %v, want %v (flat-space straight line)", i, k, x[k], want)
			}
		}
	}
}

func TestNullGeodesicConservationKerrSchild(t *testing.T) {
	metric := metricimpl.KerrSchild{Spin: 0}
	x0 := grpol.Vec4{0, math.Log(20), math.Pi / 2, 0}

	// Seed an exactly null wave covector: fix k_0 = -1, k_2 = k_3 = 0, and
	// solve g^{00} k_0^2 + 2 g^{01} k_0 k_1 + g^{11} k_1^2 = 0 for k_1 using
	// the inverse metric -- this is the same quadratic as the null
	// condition on U, just carried on the covector that RaiseIndex turns
	// into U, since g_{mu nu} U^mu U^nu = g^{mu nu} k_mu k_nu whenever
	// k = g U.
	guu := metric.MetricUU(x0)
	g00, g01, g11 := guu[0][0], guu[0][1], guu[1][1]
	k0 := -1.0
	disc := g01*g01 - g00*g11
	if disc < 0 {
		t.Fatalf("no real null root: discriminant=%v", disc)
	}
	k1 := k0 * (-g01 + math.Sqrt(disc)) / g11

	uDown := grpol.Vec4{k0, k1, 0, 0}
	u := metric.RaiseIndex(x0, uDown)

	y := grpol.NewGeodesicState(x0, u)
	cfg := grpol.DefaultConfig()
	cfg.Step = 0.01
	rhs := func(s grpol.GeodesicState) grpol.GeodesicState {
		return grpol.GeodesicRHS(metric, s)
	}

	norm0 := quadFormPublic(metric, x0, u)
	for i := 0; i < 50; i++ {
		dl := grpol.AdaptiveStep(y.Position(), y.Velocity(), cfg.Step)
		y = cfg.Method.Step(y, rhs, dl)
	}
	normN := quadFormPublic(metric, y.Position(), y.Velocity())

	u0 := y.Velocity()[0]
	if u0 == 0 {
		t.Fatal("U^0 vanished during integration")
	}
	rel := math.Abs(normN-norm0) / (u0 * u0)
	if rel > 1e-6 {
		t.Fatalf("geodesic norm drifted too much: rel=%v", rel)
	}
}

func quadFormPublic(metric grpol.MetricTensor, x, u grpol.Vec4) float64 {
	down := metric.LowerIndex(x, u)
	var s float64
	for i := 0; i < 4; i++ {
		s += down[i] * u[i]
	}
	return s
}
