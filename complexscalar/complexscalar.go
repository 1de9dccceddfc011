// Package complexscalar implements ComplexScalar (C2): an immutable (re, im)
// value type with arithmetic and closed-form transcendentals whose
// numerical policy follows the Smith/EISPACK overflow-safe conventions
// called out in spec section 4.7, rather than a generic implementation.
// math/cmplx is not used: several of the required behaviors (Smith's
// rescaled division, the cpow real-fast-path, and the scale-by-larger
// hypotenuse) are prescribed exactly by the spec and differ from the
// stdlib's branch choices in edge cases, so hand-rolling them is the
// only way to honor the contract precisely. No third-party package in
// the retrieved corpus implements this exact numerical policy.
package complexscalar

import "math"

// Complex is an immutable complex scalar. Re/Im are exported so callers can
// pattern-match in switch/range-free code, matching the value-type feel of
// the teacher's DType enum (a comparable, zero-alloc value).
type Complex struct {
	Re, Im float64
}

// New returns a Complex with the given real and imaginary parts.
func New(re, im float64) Complex { return Complex{Re: re, Im: im} }

// Real returns the real-only complex scalar (im == 0).
func Real(re float64) Complex { return Complex{Re: re} }

// IsReal reports whether the imaginary part is exactly zero. Per spec
// section 3, "im == 0 makes it morally equal to a real scalar".
func (z Complex) IsReal() bool { return z.Im == 0 }

func (z Complex) Add(w Complex) Complex { return Complex{z.Re + w.Re, z.Im + w.Im} }
func (z Complex) Sub(w Complex) Complex { return Complex{z.Re - w.Re, z.Im - w.Im} }

func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Div implements Smith's formula with a rescaling step on |re(w)|+|im(w)| to
// guard against under/overflow, per spec section 4.7.
func (z Complex) Div(w Complex) Complex {
	if w.Im == 0 {
		return Complex{z.Re / w.Re, z.Im / w.Re}
	}
	if w.Re == 0 {
		return Complex{z.Im / w.Im, -z.Re / w.Im}
	}
	s := math.Abs(w.Re) + math.Abs(w.Im)
	z = Complex{z.Re / s, z.Im / s}
	w = Complex{w.Re / s, w.Im / s}
	if math.Abs(w.Re) >= math.Abs(w.Im) {
		ratio := w.Im / w.Re
		denom := w.Re + w.Im*ratio
		return Complex{
			Re: (z.Re + z.Im*ratio) / denom,
			Im: (z.Im - z.Re*ratio) / denom,
		}
	}
	ratio := w.Re / w.Im
	denom := w.Re*ratio + w.Im
	return Complex{
		Re: (z.Re*ratio + z.Im) / denom,
		Im: (z.Im*ratio - z.Re) / denom,
	}
}

func (z Complex) Neg() Complex  { return Complex{-z.Re, -z.Im} }
func (z Complex) Conj() Complex { return Complex{z.Re, -z.Im} }

func (z Complex) Inv() Complex { return Complex{1, 0}.Div(z) }

// Norm is the hypotenuse ||(re,im)||, computed with the standard
// scale-by-larger formula to avoid overflow/underflow.
func (z Complex) Norm() float64 { return hypot(z.Re, z.Im) }

func hypot(a, b float64) float64 {
	a, b = math.Abs(a), math.Abs(b)
	if a < b {
		a, b = b, a
	}
	if a == 0 {
		return 0
	}
	ratio := b / a
	return a * math.Sqrt(1+ratio*ratio)
}

// Arg is the principal argument (phase angle) in radians.
func (z Complex) Arg() float64 { return math.Atan2(z.Im, z.Re) }

func (z Complex) Equal(w Complex) bool { return z.Re == w.Re && z.Im == w.Im }
