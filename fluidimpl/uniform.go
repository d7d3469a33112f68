// Package fluidimpl provides reference FluidSampler implementations used by
// the worked scenarios: a constant-density slab and a turbulently-jittered
// variant of it.
package fluidimpl

import "github.com/rittickrr/raptor"

// UniformSlab is a constant-property plasma occupying the coordinate range
// [RInner, ROuter]: uniform electron density, temperature, and a purely
// toroidal magnetic field. cmd/grtrace uses it as its plasma model.
type UniformSlab struct {
	RInner, ROuter      float64
	ElectronDensity     float64
	ElectronTemperature float64
	MagFieldMagnitude   float64
}

func (s UniformSlab) Sample(x grpol.Vec4) grpol.FluidSample {
	r := x[1]
	inVolume := r >= s.RInner && r <= s.ROuter
	if !inVolume {
		return grpol.FluidSample{InVolume: false}
	}

	var b grpol.Vec4
	b[3] = s.MagFieldMagnitude / r // toroidal: B^phi ~ 1/r, B^t=B^r=B^theta=0

	u := grpol.Vec4{1, 0, 0, 0} // plasma at rest in the coordinate frame

	return grpol.FluidSample{
		ElectronDensity:     s.ElectronDensity,
		ElectronTemperature: s.ElectronTemperature,
		MagFieldMagnitude:   s.MagFieldMagnitude,
		MagField:            b,
		PlasmaVelocity:      u,
		InVolume:            true,
	}
}
