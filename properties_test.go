package grpol_test

import (
	"math"
	"testing"

	"github.com/rittickrr/raptor"
	"github.com/rittickrr/raptor/metricimpl"
)

// TestTetradOrthonormality covers Property 6: (T_d)_{mu,a} * (T_u)_{mu,c}
// must equal the Kronecker delta, not eta_ac -- Down already carries each
// leg's own Minkowski sign so that it is the metric dual of Up, not a bare
// lowering of it.
func TestTetradOrthonormality(t *testing.T) {
	metric := metricimpl.Minkowski{}
	gs := metricimpl.GramSchmidtTetrad{Metric: metric}
	x := grpol.Vec4{0, 8, math.Pi / 3, 0.4}
	u := grpol.Vec4{1, 0, 0, 0}
	k := grpol.Vec4{-1, 0.3, 0.1, 0.2}
	b := grpol.Vec4{0, 0.1, 0.9, 0.2}

	tet := gs.CreateObserverTetrad(x, k, u, b)

	for a := 0; a < 4; a++ {
		for c := 0; c < 4; c++ {
			var g float64
			for mu := 0; mu < 4; mu++ {
				g += tet.Down[mu][a] * tet.Up[mu][c]
			}
			want := 0.0
			if a == c {
				want = 1.0
			}
			if math.Abs(g-want) > 1e-8 {
				t.Fatalf("tetrad leg (%d,%d): g=%v, want %v", a, c, g, want)
			}
		}
	}
}

// TestOrderCullingRespectsMaxOrder covers Property 4: the recorded number of
// theta sign flips for a path that terminates at MaxOrder never exceeds the
// bound the tracer enforces (MaxOrder for beta<0, MaxOrder+1 for beta>0).
func TestOrderCullingRespectsMaxOrder(t *testing.T) {
	metric := metricimpl.KerrSchild{Spin: 0.9}
	cfg := grpol.DefaultConfig()
	cfg.MaxOrder = 2
	cfg.MaxSteps = 20000
	cfg.Step = 0.02

	init := poloidalPhotonInit{}
	path := grpol.IntegrateGeodesic(metric, init, cfg, 0.1, 0.2, 0)

	thetaTurns := 0
	var prevThetaDot float64
	for i, s := range path.Samples {
		thetaDot := s.Y.Velocity()[2]
		if i > 2 && prevThetaDot*thetaDot < 0 {
			thetaTurns++
		}
		prevThetaDot = thetaDot
	}
	if thetaTurns > cfg.MaxOrder+1 {
		t.Fatalf("recorded %d sign flips, exceeds MaxOrder+1=%d", thetaTurns, cfg.MaxOrder+1)
	}
}

type poloidalPhotonInit struct{}

func (poloidalPhotonInit) InitializePhoton(alpha, beta, t0 float64) grpol.GeodesicState {
	x := grpol.Vec4{t0, math.Log(30), math.Pi/2 + 0.05, 0}
	u := grpol.Vec4{1, -0.2, 0.35, 0.02}
	return grpol.NewGeodesicState(x, u)
}

// TestIntegrationIsDeterministic covers Property 10: tracing the same
// photon twice with the same inputs produces bit-identical paths, since no
// CORE component reads wall-clock time, randomness, or shared mutable
// state.
func TestIntegrationIsDeterministic(t *testing.T) {
	metric := metricimpl.KerrSchild{Spin: 0.5}
	cfg := grpol.DefaultConfig()
	cfg.MaxSteps = 500
	init := poloidalPhotonInit{}

	p1 := grpol.IntegrateGeodesic(metric, init, cfg, 0.3, -0.1, 0)
	p2 := grpol.IntegrateGeodesic(metric, init, cfg, 0.3, -0.1, 0)

	if len(p1.Samples) != len(p2.Samples) {
		t.Fatalf("sample counts differ: %d vs %d", len(p1.Samples), len(p2.Samples))
	}
	for i := range p1.Samples {
		if p1.Samples[i].Y != p2.Samples[i].Y || p1.Samples[i].DLambda != p2.Samples[i].DLambda {
			t.Fatalf("sample %d differs between identical runs", i)
		}
	}
}

// emptyFluid never reports a point as inside the simulation volume, for the
// flat-spacetime pass-through scenario (S1): a photon that never crosses an
// emitting region must emerge with zero intensity.
type emptyFluid struct{}

func (emptyFluid) Sample(x grpol.Vec4) grpol.FluidSample {
	return grpol.FluidSample{InVolume: false}
}

type zeroCoeffs struct{}

func (zeroCoeffs) EmissionI(thetaE, nE, nuP, b, pitch float64) float64 { return 0 }
func (zeroCoeffs) EmissionQ(thetaE, nE, nuP, b, pitch float64) float64 { return 0 }
func (zeroCoeffs) EmissionV(thetaE, nE, nuP, b, pitch float64) float64 { return 0 }
func (zeroCoeffs) RhoQ(thetaE, nE, nuP, b, pitch float64) float64      { return 0 }
func (zeroCoeffs) RhoV(thetaE, nE, nuP, b, pitch float64) float64      { return 0 }
func (zeroCoeffs) AbsorptionTH(j, nuP, thetaE float64) float64         { return 0 }

func TestFlatSpacetimePassThroughIsZero(t *testing.T) {
	metric := metricimpl.Minkowski{}
	gs := metricimpl.GramSchmidtTetrad{Metric: metric}
	pitch := metricimpl.NewPitchAngleFunc(metric)

	cfg := grpol.DefaultConfig()
	cfg.Step = 0.05
	cfg.CutoffOuter = 50
	cfg.MaxSteps = 400

	init := straightLineInit{u: grpol.Vec4{1, -0.2, 0, 0}}
	path := grpol.IntegrateGeodesic(metric, init, cfg, 0, 0, 0)

	col := grpol.Collaborators{
		Metric:     metric,
		Fluid:      emptyFluid{},
		Coeffs:     zeroCoeffs{},
		Tetrads:    gs,
		PitchAngle: pitch,
		PlasmaFreq: metricimpl.PlasmaFrameFrequency,
		MassGrams:  1e33,
	}

	iquv := grpol.RadiativeTransferPolarized(col, cfg, path, 230e9)
	for i, v := range iquv {
		if v != 0 {
			t.Fatalf("component %d: got %v, want exactly 0 for a vacuum path", i, v)
		}
	}
}

// rotatorOnlyCoeffs reports a constant Faraday rotation coefficient and
// nothing else, for the pure-rotation scenario (S4): emission and
// absorption are identically zero, so the invariant transfer ODE reduces to
// a rigid rotation of (Q, U) by angle rho_V*dl.
type rotatorOnlyCoeffs struct{ rv float64 }

func (rotatorOnlyCoeffs) EmissionI(thetaE, nE, nuP, b, pitch float64) float64 { return 0 }
func (rotatorOnlyCoeffs) EmissionQ(thetaE, nE, nuP, b, pitch float64) float64 { return 0 }
func (rotatorOnlyCoeffs) EmissionV(thetaE, nE, nuP, b, pitch float64) float64 { return 0 }
func (c rotatorOnlyCoeffs) RhoQ(thetaE, nE, nuP, b, pitch float64) float64    { return 0 }
func (c rotatorOnlyCoeffs) RhoV(thetaE, nE, nuP, b, pitch float64) float64    { return c.rv }
func (rotatorOnlyCoeffs) AbsorptionTH(j, nuP, thetaE float64) float64         { return 0 }

func TestFaradayRotationOnlyRotatesQU(t *testing.T) {
	c := grpol.InvariantCoeffs{RV: 0.7}
	dl := 0.05
	s := grpol.Stokes{1, 1, 0, 0}

	out := grpol.TransferRK4Step(c, dl, 1.0, s)

	phi := c.RV * dl
	wantQ := math.Cos(phi)
	wantU := math.Sin(phi)

	if math.Abs(real(out[1])-wantQ) > 1e-6 {
		t.Fatalf("Q after pure Faraday rotation: got %v, want %v", real(out[1]), wantQ)
	}
	if math.Abs(real(out[2])-wantU) > 1e-6 {
		t.Fatalf("U after pure Faraday rotation: got %v, want %v", real(out[2]), wantU)
	}
	if math.Abs(real(out[0])-1) > 1e-9 {
		t.Fatalf("I must be conserved under pure rotation, got %v", real(out[0]))
	}
}
