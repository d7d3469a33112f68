package grpol

import "math"

// ObserverFourVelocity implements §4.11: it constructs a stationary,
// rigidly-rotating observer aligned with the coordinate time Killing
// vector where one exists, from the inverse metric at camera position x.
func ObserverFourVelocity(metric MetricTensor, x Vec4) Vec4 {
	guu := metric.MetricUU(x)
	g00, g03, g33 := guu[0][0], guu[0][3], guu[3][3]

	uDown := Vec4{-1, 0, 0, 0}
	b := -g03 * uDown[0] / g33
	cc := -(1 + g00*uDown[0]*uDown[0]) / g33

	uDown[3] = b + math.Sqrt(b*b+cc)

	return metric.RaiseIndex(x, uDown)
}
