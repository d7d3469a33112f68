package coeffsimpl

import "math"

// besselK0 and besselK1 are the modified Bessel functions of the second
// kind, via the standard Abramowitz & Stegun rational/asymptotic
// approximations (9.8.5-9.8.8). No third-party special-function library
// is present anywhere in the corpus, so these are hand-rolled the same way
// the teacher hand-rolls its own small numeric helpers (sign, unit) in
// math.go rather than reaching for a dependency that was never pulled in.
func besselK0(x float64) float64 {
	if x <= 2 {
		t := x * x / 4
		return -math.Log(x/2)*besselI0(x) +
			(-0.57721566+t*(0.42278420+t*(0.23069756+t*(0.03488590+
				t*(0.00262698+t*(0.00010750+t*0.00000740))))))
	}
	t := 2 / x
	return math.Exp(-x) / math.Sqrt(x) *
		(1.25331414 + t*(-0.07832358+t*(0.02189568+t*(-0.01062446+
			t*(0.00587872+t*(-0.00251540+t*0.00053208))))))
}

func besselI0(x float64) float64 {
	if math.Abs(x) < 3.75 {
		t := (x / 3.75) * (x / 3.75)
		return 1 + t*(3.5156229+t*(3.0899424+t*(1.2067492+
			t*(0.2659732+t*(0.0360768+t*0.0045813)))))
	}
	ax := math.Abs(x)
	t := 3.75 / ax
	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + t*(0.01328592+t*(0.00225319+t*(-0.00157565+
			t*(0.00916281+t*(-0.02057706+t*(0.02635537+
				t*(-0.01647633+t*0.00392377))))))))
}

func besselK1(x float64) float64 {
	if x <= 2 {
		t := x * x / 4
		return math.Log(x/2)*besselI1(x) + (1/x)*
			(1+t*(0.15443144+t*(-0.67278579+t*(-0.18156897+
				t*(-0.01919402+t*(-0.00110404+t*(-0.00004686)))))))
	}
	t := 2 / x
	return math.Exp(-x) / math.Sqrt(x) *
		(1.25331414 + t*(0.23498619+t*(-0.03655620+t*(0.01504268+
			t*(-0.00780353+t*(0.00325614+t*(-0.00068245)))))))
}

func besselI1(x float64) float64 {
	ax := math.Abs(x)
	var result float64
	if ax < 3.75 {
		t := (x / 3.75) * (x / 3.75)
		result = ax * (0.5 + t*(0.87890594+t*(0.51498869+t*(0.15084934+
			t*(0.02658733+t*(0.00301532+t*0.00032411))))))
	} else {
		t := 3.75 / ax
		result = 0.02282967 + t*(-0.02895312+t*(0.01787654-t*0.00420059))
		result = 0.39894228 + t*(-0.03988024+t*(-0.00362018+t*(0.00163801+
			t*(-0.01031555+t*result))))
		result *= math.Exp(ax) / math.Sqrt(ax)
	}
	if x < 0 {
		return -result
	}
	return result
}

// besselK2 uses the standard recurrence K_{n+1}(x) = K_{n-1}(x) +
// (2n/x) K_n(x) to get K2 from K0 and K1.
func besselK2(x float64) float64 {
	return besselK0(x) + (2/x)*besselK1(x)
}
