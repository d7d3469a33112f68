package grpol

// CoefficientCloser supplies the geometric (non-invariant) emission,
// rotation, and absorption coefficients for one plasma sample. j_U and
// rho_U are not part of the interface: the tetrad choice forces them to
// zero (§4.7), and TransferTrapezoidStep's LU factorization assumes this.
type CoefficientCloser interface {
	EmissionI(thetaE, nE, nuP, b, pitch float64) float64
	EmissionQ(thetaE, nE, nuP, b, pitch float64) float64
	EmissionV(thetaE, nE, nuP, b, pitch float64) float64
	RhoQ(thetaE, nE, nuP, b, pitch float64) float64
	RhoV(thetaE, nE, nuP, b, pitch float64) float64
	// AbsorptionTH derives an absorption coefficient from an emission
	// coefficient via the thermal Kirchhoff-like closure.
	AbsorptionTH(j, nuP, thetaE float64) float64
}

// InvariantCoeffs are the Lorentz-invariant emission/absorption/rotation
// coefficients the polarized transfer ODE (C9) integrates: j scaled by
// 1/nu_p^2, a and rho scaled by nu_p.
type InvariantCoeffs struct {
	JI, JQ, JU, JV float64
	AI, AQ, AU, AV float64
	RQ, RU, RV     float64
}

// EvaluateCoefficients implements C7: it calls the injected closures, forces
// j_U = rho_U = 0 by construction, derives absorption from emission via the
// Kirchhoff closure, and scales everything to invariant form.
func EvaluateCoefficients(c CoefficientCloser, thetaE, nE, nuP, b, pitch float64) InvariantCoeffs {
	jI := c.EmissionI(thetaE, nE, nuP, b, pitch)
	jQ := c.EmissionQ(thetaE, nE, nuP, b, pitch)
	jU := 0.0
	jV := c.EmissionV(thetaE, nE, nuP, b, pitch)

	rQ := c.RhoQ(thetaE, nE, nuP, b, pitch)
	rU := 0.0
	rV := c.RhoV(thetaE, nE, nuP, b, pitch)

	aI := c.AbsorptionTH(jI, nuP, thetaE)
	aQ := c.AbsorptionTH(jQ, nuP, thetaE)
	aU := c.AbsorptionTH(jU, nuP, thetaE)
	aV := c.AbsorptionTH(jV, nuP, thetaE)

	nuP2 := nuP * nuP
	return InvariantCoeffs{
		JI: jI / nuP2, JQ: jQ / nuP2, JU: jU / nuP2, JV: jV / nuP2,
		AI: aI * nuP, AQ: aQ * nuP, AU: aU * nuP, AV: aV * nuP,
		RQ: rQ * nuP, RU: rU * nuP, RV: rV * nuP,
	}
}
