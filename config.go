package grpol

// Config is the immutable configuration record threaded through every CORE
// component; no component ever reads process-wide mutable state (Design
// Notes §9). The grpol/config subpackage knows how to build one of these
// from a config file and command-line flags; CORE code never imports it.
type Config struct {
	Step          float64    // STEP scale used by the adaptive step controller
	MaxSteps      int        // hard cap on recorded samples per path
	CutoffInner   float64    // inner radial termination bound
	CutoffOuter   float64    // outer radial termination bound
	MaxOrder      int        // maximum lensed image order
	Method        Integrator // RK4 / RK2 / Verlet
	Polarization  bool       // whether to run the polarized transfer pass
	RTOuterCutoff float64    // stop accumulating unpolarized intensity beyond this radius
	OuterBoundPol float64    // stop the polarized plasma update beyond this radius (distinct from CutoffOuter, per design)
	StiffThresh   float64    // |M(tau)| threshold above which a step is STIFF
	ZeroPolFloor  float64    // floor below which Iinv_pol is treated as zero and the latch clears
}

// DefaultConfig returns the constants used throughout spec.md's worked
// scenarios: max_steps=1e4, max_order=100, the 0.99 stiffness threshold and
// the 1e-100 zero-polarization floor.
func DefaultConfig() Config {
	return Config{
		Step:          0.02,
		MaxSteps:      10000,
		CutoffInner:   1 + 1e-2,
		CutoffOuter:   1.1e4,
		MaxOrder:      100,
		Method:        MethodRK4,
		Polarization:  true,
		RTOuterCutoff: 1000,
		OuterBoundPol: 1000,
		StiffThresh:   0.99,
		ZeroPolFloor:  1e-100,
	}
}
