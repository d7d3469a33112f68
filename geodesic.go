package grpol

// GeodesicRHS implements C2: given Y = (X, U), returns Ydot = (U, A) with
// A^i = -Gamma^i_{jk}(X) U^j U^k (Einstein summation). It never signals
// failure; coordinate-singularity NaNs propagate into Y and are handled by
// the tracer's stop conditions and, downstream, by the polarization-active
// latch (§7).
func GeodesicRHS(conn Connection, y GeodesicState) GeodesicState {
	x := y.Position()
	u := y.Velocity()
	gamma := conn.Connection(x)

	var a Vec4
	for i := 0; i < 4; i++ {
		var s float64
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				s -= gamma[i][j][k] * u[j] * u[k]
			}
		}
		a[i] = s
	}
	return NewGeodesicState(u, a)
}
