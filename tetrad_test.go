package grpol

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestStokesRoundTrip(t *testing.T) {
	cases := []Stokes{
		{1, 0.3, 0.2, 0.1},
		{1, 0.9, -0.2, 0.05},
		{1, -0.5, 0.5, -0.3},
	}
	for _, s := range cases {
		iInv, iInvPol, fTetrad := StokesToJones(s)
		back := JonesToStokes(iInv, iInvPol, fTetrad)
		for i := 0; i < 4; i++ {
			want := real(s[i])
			got := real(back[i])
			if want == 0 {
				if math.Abs(got) > 1e-9 {
					t.Fatalf("component %d: got %v, want ~0", i, got)
				}
				continue
			}
			if rel := math.Abs(got-want) / math.Abs(want); rel > 1e-9 {
				t.Fatalf("component %d round-trip mismatch: got %v, want %v (rel err %v)", i, got, want, rel)
			}
		}
	}
}

func TestTetradRoundTripIdentity(t *testing.T) {
	var up, down Mat4
	for i := 0; i < 4; i++ {
		up[i][i] = 1
		down[i][i] = 1
	}
	tet := Tetrad{Up: up, Down: down}
	f := Jones{complex(1, 0.5), complex(0.2, -0.1), complex(-0.3, 0), complex(0, 0.4)}
	got := tet.FromTetradFrame(tet.ToTetradFrame(f))
	for i := range f {
		if cmplx.Abs(got[i]-f[i]) > 1e-12 {
			t.Fatalf("identity tetrad round trip mismatch at %d: got %v, want %v", i, got[i], f[i])
		}
	}
}
