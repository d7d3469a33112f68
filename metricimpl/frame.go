package metricimpl

import (
	"math"

	"github.com/rittickrr/raptor"
)

// PlasmaFrameFrequency computes nu_p = -k_mu U^mu, the photon frequency
// measured by an observer comoving with the plasma.
func PlasmaFrameFrequency(uPlasma, kDown grpol.Vec4) float64 {
	var s float64
	for i := 0; i < 4; i++ {
		s += uPlasma[i] * kDown[i]
	}
	return -s
}

// NewPitchAngleFunc closes over a metric to build a PitchAngleFunc that
// computes the angle between the photon wave vector and the magnetic field
// as measured in the plasma rest frame: cos(theta) = (k_mu B^mu) /
// (nu_p |B|), clipped to [-1, 1] against floating-point overshoot before
// the acos.
func NewPitchAngleFunc(metric grpol.MetricTensor) grpol.PitchAngleFunc {
	return func(x, k, b, uPlasma grpol.Vec4) float64 {
		kDown := metric.LowerIndex(x, k)
		bDown := metric.LowerIndex(x, b)

		var kDotB, bDotB float64
		for i := 0; i < 4; i++ {
			kDotB += kDown[i] * b[i]
			bDotB += bDown[i] * b[i]
		}
		if bDotB <= 0 {
			return 0
		}
		bMag := math.Sqrt(bDotB)
		nuP := PlasmaFrameFrequency(uPlasma, kDown)

		if nuP == 0 {
			return 0
		}
		cosTheta := kDotB / (nuP * bMag)
		if cosTheta > 1 {
			cosTheta = 1
		}
		if cosTheta < -1 {
			cosTheta = -1
		}
		return math.Acos(cosTheta)
	}
}
