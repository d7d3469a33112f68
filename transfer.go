package grpol

import "math"

// TransferRK4Step implements the explicit half of C9: a fixed-matrix RK4
// step of dS/dl = C*(j - K*S), using the same (1/2,1/2,1)/tableau, final
// (1,2,2,1)/6 combination as the geodesic stepper. K is reconstructed
// in-line from the invariant coefficients per the matrix in §4.9.
func TransferRK4Step(c InvariantCoeffs, dl, cUnits float64, s Stokes) Stokes {
	i0, q0, u0, v0 := s[0], s[1], s[2], s[3]

	step := complex(dl*cUnits, 0)
	jI, jQ, jU, jV := complex(c.JI, 0), complex(c.JQ, 0), complex(c.JU, 0), complex(c.JV, 0)
	aI, aQ, aU, aV := complex(c.AI, 0), complex(c.AQ, 0), complex(c.AU, 0), complex(c.AV, 0)
	rQ, rU, rV := complex(c.RQ, 0), complex(c.RU, 0), complex(c.RV, 0)

	deriv := func(i, q, u, v complex128) (complex128, complex128, complex128, complex128) {
		di := step*jI - step*(aI*i+aQ*q+aU*u+aV*v)
		dq := step*jQ - step*(aQ*i+aI*q+rV*u-rU*v)
		du := step*jU - step*(aU*i-rV*q+aI*u+rQ*v)
		dv := step*jV - step*(aV*i+rU*q-rQ*u+aI*v)
		return di, dq, du, dv
	}

	ik1, qk1, uk1, vk1 := deriv(i0, q0, u0, v0)
	ik2, qk2, uk2, vk2 := deriv(i0+0.5*ik1, q0+0.5*qk1, u0+0.5*uk1, v0+0.5*vk1)
	ik3, qk3, uk3, vk3 := deriv(i0+0.5*ik2, q0+0.5*qk2, u0+0.5*uk2, v0+0.5*vk2)
	ik4, qk4, uk4, vk4 := deriv(i0+ik3, q0+qk3, u0+uk3, v0+vk3)

	oneSixth := complex(1.0/6.0, 0)
	return Stokes{
		i0 + oneSixth*(ik1+2*ik2+2*ik3+ik4),
		q0 + oneSixth*(qk1+2*qk2+2*qk3+qk4),
		u0 + oneSixth*(uk1+2*uk2+2*uk3+uk4),
		v0 + oneSixth*(vk1+2*vk2+2*vk3+vk4),
	}
}

// TransferTrapezoidStep implements the implicit half of C9: the trapezoidal
// update (I + (dl*C/2) K) S^{n+1} = S^n + (dl*C/2) (2j - K S^n), solved via
// the hand-derived Crout LU of the specific sparsity pattern of K. This
// factorization assumes rho_U = 0 and j_U = 0 (enforced by the coefficient
// evaluator, C7); a closure that violates that precondition makes this
// factorization incorrect (documented Open Question, not guarded here).
//
// The u_ij/l_ij closed forms below are required to be numerically
// identical to any other implementation of this design.
func TransferTrapezoidStep(c InvariantCoeffs, dl, cUnits float64, s Stokes) Stokes {
	half := 0.5 * dl * cUnits
	i0, q0, u0, v0 := real(s[0]), real(s[1]), real(s[2]), real(s[3])

	u11 := 1 + half*c.AI
	u12 := half * c.AQ
	u14 := half * c.AV
	l21 := half * c.AQ / u11
	u22 := 1 + half*c.AI - l21*u12
	u23 := half * c.RV
	u24 := -l21 * u14
	l32 := -half * c.RV / u22
	u33 := 1 + half*c.AI - l32*u23
	u34 := half*c.RQ - l32*u24
	l41 := half * c.AV / u11
	l42 := -l41 * u12 / u22
	l43 := (-half*c.RQ - l42*u23) / u33
	u44 := 1 + half*c.AI - l41*u14 - l42*u24 - l43*u34

	b1 := i0 + half*(2*c.JI-(c.AI*i0+c.AQ*q0+c.AV*v0))
	b2 := q0 + half*(2*c.JQ-(c.AQ*i0+c.AI*q0+c.RV*u0))
	b3 := u0 + half*(2*c.JU-(-c.RV*q0+c.AI*u0+c.RQ*v0))
	b4 := v0 + half*(2*c.JV-(c.AV*i0-c.RQ*u0+c.AI*v0))

	y1 := b1
	y2 := b2 - l21*y1
	y3 := b3 - l32*y2
	y4 := b4 - l41*y1 - l42*y2 - l43*y3

	x4 := y4 / u44
	x3 := (y3 - u34*x4) / u33
	x2 := (y2 - u23*x3 - u24*x4) / u22
	x1 := (y1 - u12*x2 - u14*x4) / u11

	return Stokes{complex(x1, 0), complex(x2, 0), complex(x3, 0), complex(x4, 0)}
}

// ScalarTransferStep implements the boundary-case unpolarized source-
// function update of §4.9: exponential for moderate optical depth steps,
// a Horner-form truncated expansion for tau < 1e-5 (to avoid catastrophic
// cancellation in 1 - exp(-tau)), and the identity when K_inv == 0.
//
// Per the Open Question in spec.md §9, dtauOld is added to the local
// optical depth, but the caller (RadiativeTransfer) never accumulates it:
// it passes 0 on every step, as the reference implementation does, so the
// optical-depth term reduces to its local value per step. That behaviour
// is preserved here rather than "fixed".
func ScalarTransferStep(iCurrent, jInv, kInv, dl, dtauOld float64) float64 {
	tau := kInv*dl + dtauOld
	if kInv == 0 {
		return iCurrent
	}
	s := jInv / kInv
	if tau < 1e-5 {
		return iCurrent - (iCurrent-s)*(tau*(6-tau*(3-tau))/6)
	}
	efac := math.Exp(-tau)
	return iCurrent*efac + s*(1-efac)
}
