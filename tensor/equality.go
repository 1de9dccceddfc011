package tensor

import "math"

// IsEqual is a structural comparison: same shape, same dtype, same
// "has complex storage" flag, and identical buffer contents -- two tensors
// that are numerically equal but differ in storage complexity (e.g. a real
// tensor vs. a complex tensor with all-zero imaginary part) are NOT IsEqual.
func (t *Tensor) IsEqual(other *Tensor) bool {
	if t.DType() != other.DType() {
		return false
	}
	if !EqualShapes(t.shape, other.shape) {
		return false
	}
	if t.HasComplexStorage() != other.HasComplexStorage() {
		return false
	}
	for i := 0; i < t.real.Len(); i++ {
		if t.real.GetFloat64(i) != other.real.GetFloat64(i) {
			return false
		}
	}
	if t.HasComplexStorage() {
		for i := 0; i < t.imag.Len(); i++ {
			if t.imag.GetFloat64(i) != other.imag.GetFloat64(i) {
				return false
			}
		}
	}
	return true
}

// IsNumericallyEqual compares shape and value only: a+0i == a regardless of
// whether either operand happens to carry complex storage.
func (t *Tensor) IsNumericallyEqual(other *Tensor) bool {
	if !EqualShapes(t.shape, other.shape) {
		return false
	}
	n := t.real.Len()
	for i := 0; i < n; i++ {
		if t.real.GetFloat64(i) != other.real.GetFloat64(i) {
			return false
		}
		var aIm, bIm float64
		if t.HasComplexStorage() {
			aIm = t.imag.GetFloat64(i)
		}
		if other.HasComplexStorage() {
			bIm = other.imag.GetFloat64(i)
		}
		if aIm != bIm {
			return false
		}
	}
	return true
}

// IsApproximatelyEqual is IsNumericallyEqual up to an absolute tolerance tol
// on both the real and imaginary parts.
func (t *Tensor) IsApproximatelyEqual(other *Tensor, tol float64) bool {
	if !EqualShapes(t.shape, other.shape) {
		return false
	}
	n := t.real.Len()
	for i := 0; i < n; i++ {
		if math.Abs(t.real.GetFloat64(i)-other.real.GetFloat64(i)) > tol {
			return false
		}
		var aIm, bIm float64
		if t.HasComplexStorage() {
			aIm = t.imag.GetFloat64(i)
		}
		if other.HasComplexStorage() {
			bIm = other.imag.GetFloat64(i)
		}
		if math.Abs(aIm-bIm) > tol {
			return false
		}
	}
	return true
}
