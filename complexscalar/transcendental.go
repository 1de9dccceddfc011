package complexscalar

import "math"

// nanScalar is the propagation target for non-finite inputs, per spec
// section 4.7: "Non-finite inputs propagate to [NaN, NaN] except in
// csqrt/clog where branch rules force specific infinities."
var nanScalar = Complex{math.NaN(), math.NaN()}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Sqrt returns the principal square root, using the standard
// half-angle construction so the result lies in the right half-plane
// (Re >= 0), matching the branch jasmal-family libraries use for csqrt.
func (z Complex) Sqrt() Complex {
	if math.IsInf(z.Re, 1) && !math.IsNaN(z.Im) {
		return Complex{math.Inf(1), 0}
	}
	if math.IsInf(z.Re, -1) && !math.IsNaN(z.Im) {
		return Complex{0, math.Copysign(math.Inf(1), z.Im)}
	}
	if math.IsInf(z.Im, 0) {
		return Complex{math.Inf(1), z.Im}
	}
	if !finite(z.Re) || !finite(z.Im) {
		return nanScalar
	}
	if z.Re == 0 && z.Im == 0 {
		return Complex{0, 0}
	}
	r := z.Norm()
	re := math.Sqrt((r + z.Re) / 2)
	im := math.Sqrt((r - z.Re) / 2)
	if z.Im < 0 {
		im = -im
	}
	return Complex{re, im}
}

// Exp returns e**z.
func (z Complex) Exp() Complex {
	if !finite(z.Re) || !finite(z.Im) {
		if math.IsInf(z.Re, -1) && finite(z.Im) {
			return Complex{0, 0}
		}
		return nanScalar
	}
	r := math.Exp(z.Re)
	return Complex{r * math.Cos(z.Im), r * math.Sin(z.Im)}
}

// Log returns the principal natural logarithm. log(0) forces -Inf with a
// zero phase per the branch rule carve-out in spec section 4.7.
func (z Complex) Log() Complex {
	if z.Re == 0 && z.Im == 0 {
		return Complex{math.Inf(-1), 0}
	}
	if !finite(z.Re) || !finite(z.Im) {
		return nanScalar
	}
	return Complex{math.Log(z.Norm()), z.Arg()}
}

func (z Complex) Pow(w Complex) Complex {
	if z.IsReal() && w.IsReal() {
		if z.Re >= 0 || w.Re == math.Trunc(w.Re) {
			return Real(math.Pow(z.Re, w.Re))
		}
	}
	return w.Mul(z.Log()).Exp()
}

var i = Complex{0, 1}

func (z Complex) Sin() Complex {
	// sin(z) = -i*sinh(i*z)
	return i.Neg().Mul(i.Mul(z).Sinh())
}

func (z Complex) Cos() Complex {
	// cos(z) = cosh(i*z)
	return i.Mul(z).Cosh()
}

func (z Complex) Tan() Complex { return z.Sin().Div(z.Cos()) }
func (z Complex) Cot() Complex { return z.Cos().Div(z.Sin()) }

func (z Complex) Sinh() Complex {
	if !finite(z.Re) || !finite(z.Im) {
		return nanScalar
	}
	return Complex{
		Re: math.Sinh(z.Re) * math.Cos(z.Im),
		Im: math.Cosh(z.Re) * math.Sin(z.Im),
	}
}

func (z Complex) Cosh() Complex {
	if !finite(z.Re) || !finite(z.Im) {
		return nanScalar
	}
	return Complex{
		Re: math.Cosh(z.Re) * math.Cos(z.Im),
		Im: math.Sinh(z.Re) * math.Sin(z.Im),
	}
}

func (z Complex) Tanh() Complex { return z.Sinh().Div(z.Cosh()) }
func (z Complex) Coth() Complex { return z.Cosh().Div(z.Sinh()) }

// Asin, Acos, Atan and their hyperbolic counterparts are defined through the
// standard logarithmic closed forms.
func (z Complex) Asin() Complex {
	// asin(z) = -i * log(i*z + sqrt(1 - z*z))
	one := Complex{1, 0}
	root := one.Sub(z.Mul(z)).Sqrt()
	return i.Neg().Mul(i.Mul(z).Add(root).Log())
}

func (z Complex) Acos() Complex {
	halfPi := Complex{math.Pi / 2, 0}
	return halfPi.Sub(z.Asin())
}

func (z Complex) Atan() Complex {
	// atan(z) = (i/2) * log((1-iz)/(1+iz))
	one := Complex{1, 0}
	iz := i.Mul(z)
	numerator := one.Sub(iz)
	denominator := one.Add(iz)
	half := Complex{0, 0.5}
	return half.Mul(numerator.Div(denominator).Log())
}

func (z Complex) Asinh() Complex {
	one := Complex{1, 0}
	return z.Add(z.Mul(z).Add(one).Sqrt()).Log()
}

func (z Complex) Acosh() Complex {
	one := Complex{1, 0}
	return z.Add(z.Sub(one).Sqrt().Mul(z.Add(one).Sqrt())).Log()
}

func (z Complex) Atanh() Complex {
	one := Complex{1, 0}
	half := Complex{0.5, 0}
	return half.Mul(one.Add(z).Log().Sub(one.Sub(z).Log()))
}
