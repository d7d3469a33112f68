package grpol

import "testing"

func TestRK4StepFreeParticle(t *testing.T) {
	y := NewGeodesicState(Vec4{0, 1, 2, 3}, Vec4{1, 0.5, 0, 0})
	zero := func(GeodesicState) GeodesicState { return GeodesicState{} }
	out := RK4Step(y, zero, 0.1)
	if out != y {
		t.Fatalf("RK4Step with zero RHS changed state: got %v, want %v", out, y)
	}
}

func TestRK4StepConstantVelocity(t *testing.T) {
	u := Vec4{1, 2, 0, 0}
	y := NewGeodesicState(Vec4{0, 0, 0, 0}, u)
	f := func(s GeodesicState) GeodesicState {
		return NewGeodesicState(s.Velocity(), Vec4{})
	}
	out := RK4Step(y, f, 1.0)
	want := NewGeodesicState(u, u)
	if !approxEqual(out[0], want[0], 1e-12) || !approxEqual(out[1], want[1], 1e-12) {
		t.Fatalf("RK4Step constant-velocity integration mismatch: got %v, want %v", out, want)
	}
}

func TestIntegratorStepDispatch(t *testing.T) {
	y := NewGeodesicState(Vec4{0, 0, 0, 0}, Vec4{1, 0, 0, 0})
	f := func(s GeodesicState) GeodesicState { return NewGeodesicState(s.Velocity(), Vec4{}) }
	for _, m := range []Integrator{MethodRK4, MethodRK2, MethodVerlet} {
		out := m.Step(y, f, 0.5)
		if out[0] <= y[0] {
			t.Errorf("method %v did not advance X0", m)
		}
	}
}
