// Package grpol traces null geodesics through a curved, magnetized
// spacetime and integrates polarized synchrotron radiative transfer along
// the recorded path.
//
// The package is the numerical core only: the metric (Christoffel symbols,
// index raising/lowering), the fluid sampler backing a GRMHD snapshot, and
// the emission/absorption/Faraday closures are all external collaborators
// injected through the Connection, FluidSampler, TetradConstructor and
// CoefficientCloser interfaces. See the metricimpl, fluidimpl and
// coeffsimpl subpackages for reference implementations used by the tests
// and by the render/cmd ambient layers.
package grpol
