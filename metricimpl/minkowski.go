// Package metricimpl provides reference MetricBackend implementations:
// flat spacetime in spherical coordinates and numerically-differentiated
// Kerr-Schild spacetime, plus a reference observer tetrad constructor.
package metricimpl

import (
	"math"

	"github.com/rittickrr/raptor"
)

// Minkowski is flat spacetime expressed in spherical coordinates
// (t, r, theta, phi); its Christoffel symbols are the standard flat-space
// connection of that chart, not identically zero -- a photon traced
// through it still follows a straight line, it simply does so through
// curved coordinates. Used for Testable Property 2 and Scenario S1.
type Minkowski struct{}

func (Minkowski) Radius(x grpol.Vec4) float64 { return x[1] }

func (Minkowski) MetricUU(x grpol.Vec4) grpol.Mat4 {
	r, theta := x[1], x[2]
	sinTheta := math.Sin(theta)
	var m grpol.Mat4
	m[0][0] = -1
	m[1][1] = 1
	m[2][2] = 1 / (r * r)
	m[3][3] = 1 / (r * r * sinTheta * sinTheta)
	return m
}

func (mk Minkowski) metricDD(x grpol.Vec4) grpol.Mat4 {
	r, theta := x[1], x[2]
	sinTheta := math.Sin(theta)
	var m grpol.Mat4
	m[0][0] = -1
	m[1][1] = 1
	m[2][2] = r * r
	m[3][3] = r * r * sinTheta * sinTheta
	return m
}

func (mk Minkowski) RaiseIndex(x grpol.Vec4, down grpol.Vec4) grpol.Vec4 {
	guu := mk.MetricUU(x)
	var up grpol.Vec4
	for i := 0; i < 4; i++ {
		up[i] = guu[i][i] * down[i]
	}
	return up
}

func (mk Minkowski) LowerIndex(x grpol.Vec4, up grpol.Vec4) grpol.Vec4 {
	gdd := mk.metricDD(x)
	var down grpol.Vec4
	for i := 0; i < 4; i++ {
		down[i] = gdd[i][i] * up[i]
	}
	return down
}

// Connection returns the standard flat-space-in-spherical-coordinates
// connection:
//
//	Gamma^r_thth = -r          Gamma^r_phph = -r sin^2(theta)
//	Gamma^th_rth = Gamma^th_thr = 1/r    Gamma^th_phph = -sin(theta)cos(theta)
//	Gamma^ph_rph = Gamma^ph_phr = 1/r    Gamma^ph_thph = Gamma^ph_phth = cot(theta)
func (Minkowski) Connection(x grpol.Vec4) grpol.Christoffel {
	r, theta := x[1], x[2]
	sinTheta, cosTheta := math.Sincos(theta)

	var g grpol.Christoffel
	g[1][2][2] = -r
	g[1][3][3] = -r * sinTheta * sinTheta
	g[2][1][2] = 1 / r
	g[2][2][1] = 1 / r
	g[2][3][3] = -sinTheta * cosTheta
	g[3][1][3] = 1 / r
	g[3][3][1] = 1 / r
	g[3][2][3] = cosTheta / sinTheta
	g[3][3][2] = cosTheta / sinTheta
	return g
}
