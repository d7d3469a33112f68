package grpol

import (
	"math"
	"testing"
)

func TestTransferStepsFixedPointAtZero(t *testing.T) {
	var zero InvariantCoeffs
	s := Stokes{1, 0.3, -0.2, 0.1}

	rk4 := TransferRK4Step(zero, 0.5, 1.0, s)
	if rk4 != s {
		t.Fatalf("RK4 transfer step changed S_A with j=0, K=0: got %v, want %v", rk4, s)
	}

	trap := TransferTrapezoidStep(zero, 0.5, 1.0, s)
	if trap != s {
		t.Fatalf("trapezoid transfer step changed S_A with j=0, K=0: got %v, want %v", trap, s)
	}
}

func TestTransferTrapezoidEquilibrium(t *testing.T) {
	c := InvariantCoeffs{JI: 2, JQ: 0.5, AI: 1, AQ: 0.1, RQ: 0.05, RV: 0.02, AV: 0.05, JV: 0.1}
	// Build the steady-state solution K^-1 j the slow way via repeated
	// trapezoidal stepping from an arbitrary start; it should converge.
	s := Stokes{0, 0, 0, 0}
	for i := 0; i < 2000; i++ {
		s = TransferTrapezoidStep(c, 1e-3, 1.0, s)
	}
	s2 := TransferTrapezoidStep(c, 1e-3, 1.0, s)
	var maxRel float64
	for i := 0; i < 4; i++ {
		d := math.Abs(real(s2[i]) - real(s[i]))
		if d > maxRel {
			maxRel = d
		}
	}
	if maxRel > 1e-6 {
		t.Fatalf("trapezoid step has not reached equilibrium after 2000 steps: delta=%v", maxRel)
	}
}

func TestScalarTransferStepIdentityWhenNoAbsorption(t *testing.T) {
	out := ScalarTransferStep(0.7, 1.0, 0, 0.3, 0)
	if out != 0.7 {
		t.Fatalf("ScalarTransferStep with K_inv=0 must be the identity, got %v", out)
	}
}

func TestScalarTransferStepMatchesExponentialAwayFromBoundary(t *testing.T) {
	jInv, kInv, dl := 2.0, 1.0, 0.5
	got := ScalarTransferStep(0, jInv, kInv, dl, 0)
	tau := kInv * dl
	want := (jInv / kInv) * (1 - math.Exp(-tau))
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("ScalarTransferStep = %v, want %v", got, want)
	}
}
