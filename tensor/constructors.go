package tensor

import (
	"github.com/morriswmz/jasmal/complexscalar"
	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/jerr"
	"github.com/morriswmz/jasmal/storage"
)

// Zeros returns a new zero-filled tensor of the given shape and dtype
// (FLOAT64 if dt is omitted by passing dtype.Invalid).
func Zeros(shape []int, dt dtype.DType) (*Tensor, error) {
	if err := validateShape(shape, "shape"); err != nil {
		return nil, err
	}
	if dt == dtype.Invalid {
		dt = dtype.Float64
	}
	real := storage.Create(Size(shape), dt)
	return newTensorAdopt(real, storage.Empty, shape), nil
}

// Ones returns a new tensor filled with the dtype's representation of "1"
// (LOGIC's 1 is true, consistent with spec.md's Open Questions discussion).
func Ones(shape []int, dt dtype.DType) (*Tensor, error) {
	t, err := Zeros(shape, dt)
	if err != nil {
		return nil, err
	}
	for i := 0; i < t.real.Len(); i++ {
		t.real.SetFloat64(i, 1)
	}
	return t, nil
}

// Scalar returns a 1-element tensor ([1]) holding the given complex value.
// If im == 0 the tensor carries no imaginary storage.
func Scalar(re, im float64, dt dtype.DType) (*Tensor, error) {
	if dt == dtype.Invalid {
		dt = dtype.Float64
	}
	real := storage.Create(1, dt)
	real.SetFloat64(0, re)
	var imag *storage.Storage = storage.Empty
	if im != 0 {
		imag = storage.Create(1, dt)
		imag.SetFloat64(0, im)
	}
	return newTensorAdopt(real, imag, []int{1}), nil
}

// ScalarFromComplex is a convenience wrapper over Scalar for a ComplexScalar
// value (C2).
func ScalarFromComplex(z complexscalar.Complex, dt dtype.DType) (*Tensor, error) {
	return Scalar(z.Re, z.Im, dt)
}

// FromFlat builds a 1-D tensor ([len(buf)]) from a flat real-valued buffer.
func FromFlat(buf []float64, dt dtype.DType) (*Tensor, error) {
	if dt == dtype.Invalid {
		dt = dtype.Float64
	}
	real, err := storage.FromFlat(buf, dt)
	if err != nil {
		return nil, err
	}
	return newTensorAdopt(real, storage.Empty, []int{len(buf)}), nil
}

// Complex composes a real tensor and an imaginary tensor of identical shape
// into a single complex tensor. Both inputs must share dtype and shape.
func Complex(re, im *Tensor) (*Tensor, error) {
	if !EqualShapes(re.shape, im.shape) {
		return nil, jerr.Shapef("complex(): real shape %v and imaginary shape %v differ", re.shape, im.shape)
	}
	if re.DType() != im.DType() {
		return nil, jerr.DTypef("complex(): real dtype %s and imaginary dtype %s differ", re.DType(), im.DType())
	}
	return newTensorShare(re.real, im.real, re.shape), nil
}

// FromNested builds a tensor from a recursively nested []any/[]float64/...
// structure. Shape inference is done by flattenNested; InputInfo
// normalization (C4) routes nested arrays through this constructor, so
// "nested array" has exactly one code path across the engine.
func FromNested(value any, dt dtype.DType) (*Tensor, error) {
	shape, flat, err := flattenNested(value)
	if err != nil {
		return nil, err
	}
	if dt == dtype.Invalid {
		dt = dtype.Float64
	}
	real, err := storage.FromFlat(flat, dt)
	if err != nil {
		return nil, err
	}
	return newTensorAdopt(real, storage.Empty, shape), nil
}
