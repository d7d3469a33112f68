package grpol

// Connection supplies the Christoffel symbols of the chosen metric at a
// spacetime point. It is the only external dependency of the geodesic RHS
// (C2).
type Connection interface {
	Connection(X Vec4) Christoffel
}

// MetricTensor supplies the inverse metric and the index bookkeeping that
// the CORE needs: raising a one-form to a vector, lowering a vector to a
// one-form, and the coordinate radius (so the tracer never has to branch on
// which coordinate chart is in use, per the logscale design note).
type MetricTensor interface {
	MetricUU(X Vec4) Mat4
	RaiseIndex(X Vec4, down Vec4) Vec4
	LowerIndex(X Vec4, up Vec4) Vec4
	Radius(X Vec4) float64
}

// MetricBackend is the full capability set a metric implementation must
// provide. Compile-time selection (a concrete struct) or runtime selection
// (an interface value chosen by config) are both acceptable; the CORE only
// ever depends on this interface.
type MetricBackend interface {
	Connection
	MetricTensor
}

// PhotonInitializer produces the initial 8-component state of a backward-
// traced photon from image-plane coordinates (alpha, beta). Implementations
// live outside the CORE (camera geometry, observer distance, inclination).
type PhotonInitializer interface {
	InitializePhoton(alpha, beta, t0 float64) GeodesicState
}

// TetradConstructor builds the orthonormal observer/plasma tetrad at a
// sample. Its time axis aligns with the four-velocity u, and its spatial
// axes are built from the photon wave vector k and the magnetic field b.
type TetradConstructor interface {
	CreateObserverTetrad(x, k, u, b Vec4) Tetrad
}
