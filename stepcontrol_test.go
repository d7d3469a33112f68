package grpol

import (
	"math"
	"testing"
)

func TestAdaptiveStepMonotonicityInU1(t *testing.T) {
	x := Vec4{0, 5, math.Pi / 2, 0}
	prev := math.Inf(1)
	for _, u1 := range []float64{0.1, 0.5, 1, 5, 10} {
		u := Vec4{1, u1, 0.01, 0.01}
		dl := math.Abs(AdaptiveStep(x, u, 0.02))
		if dl > prev {
			t.Fatalf("|dLambda| increased as |U1| grew: u1=%v got %v, prev %v", u1, dl, prev)
		}
		prev = dl
	}
}

func TestAdaptiveStepContractsNearPole(t *testing.T) {
	u := Vec4{1, 0.5, 0.5, 0.01}
	dlMid := math.Abs(AdaptiveStep(Vec4{0, 5, math.Pi / 2, 0}, u, 0.02))
	dlPole := math.Abs(AdaptiveStep(Vec4{0, 5, 1e-6, 0}, u, 0.02))
	if dlPole >= dlMid {
		t.Fatalf("step did not contract near the polar singularity: pole=%v mid=%v", dlPole, dlMid)
	}
}

func TestAdaptiveStepIsNegative(t *testing.T) {
	dl := AdaptiveStep(Vec4{0, 5, math.Pi / 2, 0}, Vec4{1, 1, 0, 0}, 0.02)
	if dl >= 0 {
		t.Fatalf("AdaptiveStep must return a negative step for backward integration, got %v", dl)
	}
}
