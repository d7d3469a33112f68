package grpol

// StepSample is one recorded sample along a traced geodesic: the state at
// that point plus the absolute affine-parameter step taken to the next
// sample.
type StepSample struct {
	Y       GeodesicState
	DLambda float64 // |delta lambda| from this sample to the next
}

// Path is an ordered, append-only record of a traced geodesic, produced by
// the tracer (C4) and consumed once, in reverse, by the transfer
// orchestrator (C10).
type Path struct {
	Samples []StepSample
	// Truncated is true when the hard step cap (MaxSteps) was reached
	// before any other termination criterion fired.
	Truncated bool
}

// Flatten packs the path into the 9-float-per-sample layout
// [X0 X1 X2 X3 U0 U1 U2 U3 |dLambda|] described in §4.4, matching the
// contiguous buffer the original C implementation used.
func (p *Path) Flatten() []float64 {
	out := make([]float64, 9*len(p.Samples))
	for i, s := range p.Samples {
		copy(out[i*9:i*9+8], s.Y[:])
		out[i*9+8] = s.DLambda
	}
	return out
}

func (p *Path) append(y GeodesicState, dLambda float64) {
	p.Samples = append(p.Samples, StepSample{Y: y, DLambda: dLambda})
}
