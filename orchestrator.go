package grpol

import "math"

// Collaborators bundles every external capability the transfer
// orchestrator (C10) depends on, so call sites don't have to thread six
// separate interfaces through every function -- the same grouping the
// teacher used for Perturbations and Thruster.
type Collaborators struct {
	Metric     MetricBackend
	Fluid      FluidSampler
	Coeffs     CoefficientCloser
	Tetrads    TetradConstructor
	PitchAngle PitchAngleFunc
	PlasmaFreq PlasmaFrameFrequencyFunc
	// MassGrams is the black hole mass in grams, used to derive the
	// geometric-to-CGS units constant C = Rg*h/(m_e c^2).
	MassGrams float64
}

// RadiativeTransferPolarized implements C10: it walks path in reverse,
// samples the fluid, evaluates coefficients, decides stiffness, steps the
// Stokes vector, and transports the polarization four-vector between
// samples. It returns the non-invariant observer Stokes quartet (I,Q,U,V).
func RadiativeTransferPolarized(col Collaborators, cfg Config, path *Path, frequency float64) [4]float64 {
	samples := path.Samples
	n := len(samples)
	if n < 2 {
		return [4]float64{}
	}

	cUnits := UnitsConstant(col.MassGrams)
	energyScale := EnergyScale(frequency)

	var f Jones
	var sa Stokes
	var iInv, iInvPol float64
	active := false

	for idx := n - 1; idx > 0; idx-- {
		x := samples[idx].Y.Position()
		k := samples[idx].Y.Velocity()
		dl := samples[idx-1].DLambda

		fluidSample := col.Fluid.Sample(x)
		r := col.Metric.Radius(x)

		if fluidSample.InVolume && r < cfg.OuterBoundPol {
			pitch := col.PitchAngle(x, k, fluidSample.MagField, fluidSample.PlasmaVelocity)

			// Scale the wave vector and step to CGS units.
			var kCGS Vec4
			for i := 0; i < 4; i++ {
				kCGS[i] = k[i] * energyScale
			}
			dlCGS := dl / energyScale

			kDown := col.Metric.LowerIndex(x, kCGS)
			nuP := col.PlasmaFreq(fluidSample.PlasmaVelocity, kDown)

			coeffs := EvaluateCoefficients(col.Coeffs, fluidSample.ElectronTemperature,
				fluidSample.ElectronDensity, nuP, fluidSample.MagFieldMagnitude, pitch)

			tetrad := col.Tetrads.CreateObserverTetrad(x, kCGS, fluidSample.PlasmaVelocity, fluidSample.MagField)

			if active {
				fTetrad := tetrad.ToTetradFrame(f)
				sa = JonesToStokes(iInv, iInvPol, fTetrad)
			}

			stiff := DetectStiffness(coeffs, dlCGS, cfg.StiffThresh)
			if stiff {
				sa = TransferTrapezoidStep(coeffs, dlCGS, cUnits, sa)
			} else {
				sa = TransferRK4Step(coeffs, dlCGS, cUnits, sa)
			}

			iInv = real(sa[0])
			iInvPol = sqrtSumSquares(real(sa[1]), real(sa[2]), real(sa[3]))

			if iInvPol > cfg.ZeroPolFloor {
				_, _, fTetrad := StokesToJones(sa)
				f = tetrad.FromTetradFrame(fTetrad)
				active = true
			} else {
				active = false
				sa[1], sa[2], sa[3] = 0, 0, 0
			}
		}

		if active && idx > 0 {
			state := PolarizationState{Y: NewGeodesicState(x, k), F: f}
			next := CoupledRK4Step(col.Metric, state, dl)
			f = next.F
		}
	}

	x0 := samples[0].Y.Position()
	k0 := samples[0].Y.Velocity()
	camUp := Vec4{0, 0, 0, -1}

	uObs := ObserverFourVelocity(col.Metric, x0)
	obsTetrad := col.Tetrads.CreateObserverTetrad(x0, k0, uObs, camUp)

	var iquv [4]float64
	nu3 := frequency * frequency * frequency
	if active {
		fObsTetrad := obsTetrad.ToTetradFrame(f)
		final := JonesToStokes(iInv, iInvPol, fObsTetrad)
		r := final.Real()
		for i := range iquv {
			iquv[i] = r[i] * nu3
		}
	} else {
		iquv[0] = iInv * nu3
	}
	return iquv
}

// RadiativeTransfer implements the legacy unpolarized transfer path
// (§6, optional). Per the Open Question in spec.md §9, dtau_old is
// intentionally never threaded between steps: the reference implementation
// declares it outside the loop but never updates it, so each step's optical
// depth reduces to its local contribution. That behaviour is preserved
// here, not "fixed".
func RadiativeTransfer(col Collaborators, cfg Config, path *Path, frequency float64) float64 {
	samples := path.Samples
	n := len(samples)
	if n < 2 {
		return 0
	}

	cUnits := UnitsConstant(col.MassGrams)
	energyScale := EnergyScale(frequency)

	var iCurrent float64
	const dtauOld = 0 // never threaded between steps, see doc comment above

	for idx := n - 1; idx > 0; idx-- {
		x := samples[idx].Y.Position()
		k := samples[idx].Y.Velocity()
		dl := samples[idx-1].DLambda

		fluidSample := col.Fluid.Sample(x)
		if !fluidSample.InVolume {
			continue
		}

		pitch := col.PitchAngle(x, k, fluidSample.MagField, fluidSample.PlasmaVelocity)

		var kCGS Vec4
		for i := 0; i < 4; i++ {
			kCGS[i] = k[i] * energyScale
		}
		dlCGS := dl / energyScale

		kDown := col.Metric.LowerIndex(x, kCGS)
		nuP := col.PlasmaFreq(fluidSample.PlasmaVelocity, kDown)

		jNu := col.Coeffs.EmissionI(fluidSample.ElectronTemperature, fluidSample.ElectronDensity,
			nuP, fluidSample.MagFieldMagnitude, pitch)
		aNu := col.Coeffs.AbsorptionTH(jNu, nuP, fluidSample.ElectronTemperature)

		kInv := nuP * aNu
		jInv := jNu / (nuP * nuP)

		r := col.Metric.Radius(x)
		if !math.IsNaN(jNu) && r < cfg.RTOuterCutoff {
			iCurrent = ScalarTransferStep(iCurrent, jInv, kInv, dlCGS*cUnits, dtauOld)
		}
	}

	return iCurrent * frequency * frequency * frequency
}
