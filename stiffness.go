package grpol

import "math/cmplx"

// DetectStiffness implements C8. Given the invariant absorption and
// rotation coefficients and the local path length dl, it forms the four
// eigenvalues of the linearized transfer operator and flags the step STIFF
// if the fourth-order Taylor expansion of any exp(tau) overshoots the
// given threshold.
func DetectStiffness(c InvariantCoeffs, dl, threshold float64) bool {
	a2 := c.RQ*c.RQ + c.RV*c.RV - c.AQ*c.AQ - c.AV*c.AV
	a0 := -2*c.AV*c.AQ*c.RV*c.RQ - c.AQ*c.AQ*c.RQ*c.RQ - c.AV*c.AV*c.RV*c.RV

	disc := complex(a2*a2-4*a0, 0)
	sq := cmplx.Sqrt(disc)

	zPlus := (complex(-a2, 0) + sq) / 2
	zMinus := (complex(-a2, 0) - sq) / 2

	sqrtZPlus := cmplx.Sqrt(zPlus)
	sqrtZMinus := cmplx.Sqrt(zMinus)

	ai := complex(c.AI, 0)
	lambdas := [4]complex128{
		ai + sqrtZPlus,
		ai - sqrtZPlus,
		ai + sqrtZMinus,
		ai - sqrtZMinus,
	}

	for _, lambda := range lambdas {
		tau := complex(dl, 0) * lambda
		m := taylorExp4(tau)
		if cmplx.Abs(m) > threshold {
			return true
		}
	}
	return false
}

// taylorExp4 evaluates the fourth-order Taylor expansion of exp(tau):
// 1 + tau + tau^2/2 + tau^3/6 + tau^4/24.
func taylorExp4(tau complex128) complex128 {
	t2 := tau * tau
	t3 := t2 * tau
	t4 := t3 * tau
	return 1 + tau + t2/2 + t3/6 + t4/24
}
