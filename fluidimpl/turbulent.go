package fluidimpl

import (
	"math/rand"

	"github.com/rittickrr/raptor"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// TurbulentSlab wraps a UniformSlab and perturbs its density, temperature,
// and field magnitude with independent Gaussian jitter, the same
// distmv.Normal-driven noise pattern the teacher used for station
// measurement noise, reseeded per sample rather than per station so every
// goroutine calling Sample gets an independent draw.
type TurbulentSlab struct {
	Base            UniformSlab
	DensitySigma    float64
	TemperatureSig  float64
	FieldSigma      float64
	Seed            uint64
}

func (t TurbulentSlab) Sample(x grpol.Vec4) grpol.FluidSample {
	s := t.Base.Sample(x)
	if !s.InVolume {
		return s
	}

	seed := t.Seed ^ uint64(x[1]*1e6) ^ uint64(x[2]*1e9) ^ uint64(x[3]*1e3)
	src := rand.New(rand.NewSource(int64(seed)))

	s.ElectronDensity += t.jitter(t.DensitySigma, src) * s.ElectronDensity
	s.ElectronTemperature += t.jitter(t.TemperatureSig, src) * s.ElectronTemperature
	s.MagFieldMagnitude += t.jitter(t.FieldSigma, src) * s.MagFieldMagnitude
	if s.ElectronDensity < 0 {
		s.ElectronDensity = 0
	}
	if s.MagFieldMagnitude < 0 {
		s.MagFieldMagnitude = 0
	}
	return s
}

func (t TurbulentSlab) jitter(sigma float64, src *rand.Rand) float64 {
	if sigma == 0 {
		return 0
	}
	noise, ok := distmv.NewNormal([]float64{0}, mat.NewSymDense(1, []float64{sigma * sigma}), src)
	if !ok {
		return 0
	}
	return noise.Rand(nil)[0]
}
