package grpol

import "math"

// IntegrateGeodesic implements C4: it creates the initial photon state from
// image-plane coordinates (alpha, beta) via init, then backward-integrates
// it under metric until one of the termination criteria of §4.4 fires. The
// returned Path is owned solely by the caller; it is never mutated again
// once returned.
func IntegrateGeodesic(metric MetricBackend, init PhotonInitializer, cfg Config, alpha, beta, t0 float64) *Path {
	photon := init.InitializePhoton(alpha, beta, t0)

	path := &Path{Samples: make([]StepSample, 0, cfg.MaxSteps)}

	rhs := func(y GeodesicState) GeodesicState {
		return GeodesicRHS(metric, y)
	}

	rCurrent := metric.Radius(photon.Position())

	thetaTurns := 0
	var thetadotPrev float64
	steps := 0

	for rCurrent > cfg.CutoffInner && rCurrent < cfg.CutoffOuter && steps < cfg.MaxSteps {
		x := photon.Position()
		u := photon.Velocity()

		// Order culling: count sign flips of U^2 (theta-dot) after the
		// first couple of steps, per the Open Question guard in spec.md §9.
		if steps > 2 && thetadotPrev*photon[6] < 0 {
			thetaTurns++
		}
		thetadotPrev = photon[6]

		terminate := (beta < 0 && thetaTurns > cfg.MaxOrder) ||
			(beta > 0 && thetaTurns > cfg.MaxOrder+1)
		if terminate {
			break
		}

		dLambda := AdaptiveStep(x, u, cfg.Step)

		path.append(photon, math.Abs(dLambda))

		photon = cfg.Method.Step(photon, rhs, dLambda)

		rCurrent = metric.Radius(photon.Position())
		steps++
	}

	path.Truncated = steps >= cfg.MaxSteps
	return path
}
