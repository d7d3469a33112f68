package grpol

import "math/cmplx"

// Tetrad is an orthonormal frame at a spacetime point. Up holds the
// up-index legs (columns are spacetime vectors of the frame basis); Down is
// its metric dual, laid out the same way (Down[mu][a], spacetime index
// first), satisfying sum_mu Down[mu][a] * Up[mu][b] = delta_{ab}.
type Tetrad struct {
	Up, Down Mat4
}

// ToTetradFrame projects a spacetime Jones vector into the tetrad frame:
// F_tetrad[i] = sum_j Down[j][i] * F_spacetime[j].
func (t Tetrad) ToTetradFrame(f Jones) Jones {
	var out Jones
	for i := 0; i < 4; i++ {
		var acc complex128
		for j := 0; j < 4; j++ {
			acc += complex(t.Down[j][i], 0) * f[j]
		}
		out[i] = acc
	}
	return out
}

// FromTetradFrame lifts a tetrad-frame Jones vector back to spacetime:
// F_spacetime[i] = sum_j Up[i][j] * F_tetrad[j].
func (t Tetrad) FromTetradFrame(f Jones) Jones {
	var out Jones
	for i := 0; i < 4; i++ {
		var acc complex128
		for j := 0; j < 4; j++ {
			acc += complex(t.Up[i][j], 0) * f[j]
		}
		out[i] = acc
	}
	return out
}

// Stokes holds the four Stokes parameters as complex numbers during
// computation (the transfer ODE is integrated in complex arithmetic even
// though the physical quantities are real).
type Stokes [4]complex128

// Real returns the (I, Q, U, V) quartet, dropping the (numerically
// negligible) imaginary parts accumulated during integration.
func (s Stokes) Real() [4]float64 {
	return [4]float64{real(s[0]), real(s[1]), real(s[2]), real(s[3])}
}

// JonesToStokes implements the tetrad-frame Jones -> Stokes map of §4.6.
func JonesToStokes(iInv, iInvPol float64, fTetrad Jones) Stokes {
	f1, f2 := fTetrad[1], fTetrad[2]
	var s Stokes
	s[0] = complex(iInv, 0)
	s[1] = complex(iInvPol, 0) * complex(cmplx.Abs(f1)*cmplx.Abs(f1)-cmplx.Abs(f2)*cmplx.Abs(f2), 0)
	s[2] = complex(iInvPol, 0) * (cmplx.Conj(f1)*f2 + f1*cmplx.Conj(f2))
	s[3] = complex(iInvPol, 0) * complex(0, 1) * (cmplx.Conj(f1)*f2 - f1*cmplx.Conj(f2))
	return s
}

// StokesToJones implements the inverse map of §4.6: it returns the
// invariant intensity, the invariant polarized intensity, and the
// tetrad-frame Jones vector (only components 1 and 2 are meaningful; 0 and
// 3 stay zero, matching the reference implementation).
func StokesToJones(s Stokes) (iInv, iInvPol float64, fTetrad Jones) {
	iInv = real(s[0])
	s1, s2, s3 := real(s[1]), real(s[2]), real(s[3])
	iInvPol = sqrtSumSquares(s1, s2, s3)

	q := s1 / iInvPol
	u := s2 / iInvPol
	v := s3 / iInvPol

	f1 := complex(sqrtNonNeg((1+q)/2), 0)
	var f2 complex128
	if f1 == 0 {
		f2 = complex(1, 0)
	} else {
		f2 = complex(u, 0)/(2*f1) - complex(0, 1)*complex(v, 0)/(2*f1)
	}

	fTetrad = Jones{0, f1, f2, 0}
	return iInv, iInvPol, fTetrad
}
