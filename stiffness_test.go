package grpol

import (
	"math/cmplx"
	"testing"
)

func TestDetectStiffnessGating(t *testing.T) {
	stiffCoeffs := InvariantCoeffs{RV: 1e3}
	if !DetectStiffness(stiffCoeffs, 1.0, 0.99) {
		t.Fatal("expected STIFF=true for rho_V*dl = 1e3, a_I*dl = 0")
	}

	calmCoeffs := InvariantCoeffs{RV: 1e-3}
	if DetectStiffness(calmCoeffs, 1.0, 0.99) {
		t.Fatal("expected STIFF=false for rho_V*dl = 1e-3, a_I*dl = 0")
	}
}

func TestTaylorExp4MatchesExpForSmallTau(t *testing.T) {
	tau := complex(0.01, 0)
	got := taylorExp4(tau)
	want := complex(1.0100501670841679, 0) // exp(0.01) to 16 digits
	if diff := cmplx.Abs(got - want); diff > 1e-12 {
		t.Fatalf("taylorExp4(0.01) = %v, want %v", got, want)
	}
}
