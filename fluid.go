package grpol

// FluidSample is the set of plasma quantities the external GRMHD sampler
// returns at a spacetime point.
type FluidSample struct {
	ElectronDensity     float64 // n_e, cm^-3
	ElectronTemperature float64 // Theta_e, dimensionless (kT_e / m_e c^2)
	MagFieldMagnitude   float64 // |B|, Gauss
	MagField            Vec4    // B^mu
	PlasmaVelocity      Vec4    // U_plasma^mu
	InVolume            bool    // whether X lies inside the simulation domain
}

// FluidSampler is the external, thread-safe GRMHD snapshot sampler (§6).
// Implementations must be safe for concurrent use by multiple render
// goroutines; any internal cache must be per-goroutine or lock-protected
// (§5).
type FluidSampler interface {
	Sample(x Vec4) FluidSample
}

// PitchAngle computes the angle between the photon wave vector and the
// magnetic field in the plasma frame; it is an external closure because it
// depends on the same tetrad/metric machinery the fluid model uses to
// define "in the plasma frame".
type PitchAngleFunc func(x, k, b, uPlasma Vec4) float64

// PlasmaFrameFrequency computes nu_p from the plasma four-velocity and the
// lowered photon wave vector.
type PlasmaFrameFrequencyFunc func(uPlasma, kDown Vec4) float64
