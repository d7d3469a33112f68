package grpol

import "math"

// tiny is the floor preventing division by zero in the step controller,
// matching the SMALL constant of the original implementation.
const tiny = 1e-40

// AdaptiveStep implements C3: a signed affine-parameter step for backward
// integration, minus the reciprocal of the sum of the reciprocals of three
// per-coordinate step estimates.
// step is the user-supplied STEP scale from config. X and U must be the
// current position and tangent vector; indices 1..3 of X are the spatial
// coordinates in whatever chart the metric backend uses.
func AdaptiveStep(x, u Vec4, step float64) float64 {
	dl1 := step / (math.Abs(u[1]) + tiny*tiny)
	dl2 := step * math.Min(x[2], math.Pi-x[2]) / (math.Abs(u[2]) + tiny*tiny)
	dl3 := step / (math.Abs(u[3]) + tiny*tiny)

	idl1 := 1.0 / (math.Abs(dl1) + tiny*tiny)
	idl2 := 1.0 / (math.Abs(dl2) + tiny*tiny)
	idl3 := 1.0 / (math.Abs(dl3) + tiny*tiny)

	return -1.0 / (idl1 + idl2 + idl3)
}
