package grpol

// GeodesicState is the 8-component state (X0..X3, U0..U3) of a geodesic:
// position and tangent (wave) vector, laid out contiguously so one step
// touches no heap.
type GeodesicState [8]float64

// Position returns the spacetime position slot of the state.
func (y GeodesicState) Position() Vec4 {
	return Vec4{y[0], y[1], y[2], y[3]}
}

// Velocity returns the tangent-vector slot of the state.
func (y GeodesicState) Velocity() Vec4 {
	return Vec4{y[4], y[5], y[6], y[7]}
}

// NewGeodesicState assembles a state from position and tangent vectors.
func NewGeodesicState(x, u Vec4) GeodesicState {
	return GeodesicState{x[0], x[1], x[2], x[3], u[0], u[1], u[2], u[3]}
}

// GeodesicRHSFunc is the right-hand side functor C1 steps advance: given a
// state Y it returns Ydot of the same shape.
type GeodesicRHSFunc func(y GeodesicState) GeodesicState

// RK4Step advances y by one affine step dLambda using the standard
// (1/2, 1/2, 1, 0) stage / (1,2,2,1)/6 combination Butcher tableau.
func RK4Step(y GeodesicState, f GeodesicRHSFunc, dLambda float64) GeodesicState {
	const (
		half     = 0.5
		oneSixth = 1.0 / 6.0
	)
	weights := [4]float64{0.5, 0.5, 1.0, 0.0}

	yshift := y
	var dx [4]GeodesicState

	for q := 0; q < 4; q++ {
		fv := f(yshift)
		for i := 0; i < 8; i++ {
			dx[q][i] = dLambda * fv[i]
			yshift[i] = y[i] + dx[q][i]*weights[q]
		}
	}

	var out GeodesicState
	for i := 0; i < 8; i++ {
		out[i] = y[i] + oneSixth*(dx[0][i]+2*dx[1][i]+2*dx[2][i]+dx[3][i])
	}
	return out
}

// RK2Step advances y by one affine step dLambda using the midpoint method:
// stage weights (1/2, 0), final update equal to k2.
func RK2Step(y GeodesicState, f GeodesicRHSFunc, dLambda float64) GeodesicState {
	weights := [2]float64{0.5, 0.0}

	yshift := y
	var dx [2]GeodesicState

	for q := 0; q < 2; q++ {
		fv := f(yshift)
		for i := 0; i < 8; i++ {
			dx[q][i] = dLambda * fv[i]
			yshift[i] = y[i] + dx[q][i]*weights[q]
		}
	}

	var out GeodesicState
	for i := 0; i < 8; i++ {
		out[i] = y[i] + dx[1][i]
	}
	return out
}

// VerletStep advances y by one affine step dLambda using velocity-Verlet
// (Dolence & Moscibrodzka 2009, eqn 14a-14d). f is required to treat the
// velocity slots of its output as the acceleration of y's velocity slots:
// the position half of f(y) must equal y's velocity, and the velocity half
// of f(y) must be the acceleration driving that velocity. This coupling is
// the stepper's documented precondition, not something it checks.
func VerletStep(y GeodesicState, f GeodesicRHSFunc, dLambda float64) GeodesicState {
	fv := f(y) // fv[4:8] = A_u(lambda)
	var aOld [4]float64
	copy(aOld[:], fv[4:8])

	yshift := y
	for i := 0; i < 4; i++ {
		yshift[i] += dLambda*y[i+4] + 0.5*dLambda*dLambda*fv[i+4]
		yshift[i+4] = y[i+4] + fv[i+4]*dLambda
	}

	fv2 := f(yshift) // fv2[4:8] = A_u(lambda + dLambda)

	var out GeodesicState
	for i := 0; i < 4; i++ {
		out[i] = yshift[i]
		out[i+4] = y[i+4] + 0.5*(aOld[i]+fv2[i+4])*dLambda
	}
	return out
}

// Integrator names the fixed-order stepping method used by the tracer.
type Integrator uint8

const (
	// MethodRK4 selects the fourth-order Runge-Kutta stepper.
	MethodRK4 Integrator = iota
	// MethodRK2 selects the midpoint (second-order) stepper.
	MethodRK2
	// MethodVerlet selects velocity-Verlet.
	MethodVerlet
)

// Step dispatches to the stepper named by m.
func (m Integrator) Step(y GeodesicState, f GeodesicRHSFunc, dLambda float64) GeodesicState {
	switch m {
	case MethodRK2:
		return RK2Step(y, f, dLambda)
	case MethodVerlet:
		return VerletStep(y, f, dLambda)
	default:
		return RK4Step(y, f, dLambda)
	}
}
