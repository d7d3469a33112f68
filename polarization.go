package grpol

// Jones is the complex four-vector polarization state, transported in
// parallel with a geodesic. Outside any active plasma region it is
// identically zero.
type Jones [4]complex128

// PolarizationState couples the real geodesic state to the complex
// polarization four-vector for the coupled stepper (C5).
type PolarizationState struct {
	Y GeodesicState
	F Jones
}

// PolarizationRHSFunc evaluates (Udot=U, Adot=A, Fdot) for the coupled
// system.
type PolarizationRHSFunc func(s PolarizationState) PolarizationState

// ParallelTransportRHS implements C5's right-hand side: parallel transport
// of F alongside the geodesic equation, Fdot^i = -Gamma^i_{jk}(X) U^j F^k,
// evaluating the connection once per call (and hence once per RK stage).
func ParallelTransportRHS(conn Connection, s PolarizationState) PolarizationState {
	x := s.Y.Position()
	u := s.Y.Velocity()
	gamma := conn.Connection(x)

	var a Vec4
	for i := 0; i < 4; i++ {
		var acc float64
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				acc -= gamma[i][j][k] * u[j] * u[k]
			}
		}
		a[i] = acc
	}

	var fdot Jones
	for i := 0; i < 4; i++ {
		var acc complex128
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				acc -= complex(gamma[i][j][k]*u[j], 0) * s.F[k]
			}
		}
		fdot[i] = acc
	}

	return PolarizationState{Y: NewGeodesicState(u, a), F: fdot}
}

// CoupledRK4Step advances (X, U, F) together by one affine step dLambda,
// using the same Butcher tableau as RK4Step but evaluating the real and
// complex stages independently (per Design Notes §9: duplicating the
// tableau constants is fine, mixing real and complex state in one stage
// vector is not).
func CoupledRK4Step(conn Connection, s PolarizationState, dLambda float64) PolarizationState {
	weights := [4]float64{0.5, 0.5, 1.0, 0.0}

	yshift := s.Y
	fshift := s.F
	var dy [4]GeodesicState
	var df [4]Jones

	for q := 0; q < 4; q++ {
		next := ParallelTransportRHS(conn, PolarizationState{Y: yshift, F: fshift})
		for i := 0; i < 8; i++ {
			dy[q][i] = dLambda * next.Y[i]
			yshift[i] = s.Y[i] + dy[q][i]*weights[q]
		}
		for i := 0; i < 4; i++ {
			df[q][i] = complex(dLambda, 0) * next.F[i]
			fshift[i] = s.F[i] + df[q][i]*complex(weights[q], 0)
		}
	}

	var outY GeodesicState
	for i := 0; i < 8; i++ {
		outY[i] = s.Y[i] + (1.0/6.0)*(dy[0][i]+2*dy[1][i]+2*dy[2][i]+dy[3][i])
	}
	var outF Jones
	for i := 0; i < 4; i++ {
		outF[i] = s.F[i] + complex(1.0/6.0, 0)*(df[0][i]+2*df[1][i]+2*df[2][i]+df[3][i])
	}

	return PolarizationState{Y: outY, F: outF}
}
