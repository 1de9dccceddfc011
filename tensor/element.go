package tensor

import (
	"github.com/morriswmz/jasmal/complexscalar"
	"github.com/morriswmz/jasmal/jerr"
)

// FlatOffset validates indices against the tensor's shape and returns the
// row-major flat offset. Negative indices are not accepted here -- callers
// doing user-facing indexing should normalize negatives first (see package
// index).
func (t *Tensor) FlatOffset(indices []int) (int, error) {
	if len(indices) != t.NDim() {
		return 0, jerr.Indexf("expected %d indices, got %d", t.NDim(), len(indices))
	}
	strides := t.Strides()
	offset := 0
	for axis, idx := range indices {
		if idx < 0 || idx >= t.shape[axis] {
			return 0, jerr.IndexOperandf(itoa(axis), "index %d out of bounds for axis of length %d", idx, t.shape[axis])
		}
		offset += idx * strides[axis]
	}
	return offset, nil
}

// GetElFlat reads the element at a flat offset (0 <= offset < Size()).
func (t *Tensor) GetElFlat(offset int) (complexscalar.Complex, error) {
	if offset < 0 || offset >= t.Size() {
		return complexscalar.Complex{}, jerr.Indexf("flat offset %d out of bounds for size %d", offset, t.Size())
	}
	re := t.real.GetFloat64(offset)
	im := 0.0
	if t.HasComplexStorage() {
		im = t.imag.GetFloat64(offset)
	}
	return complexscalar.New(re, im), nil
}

// GetEl reads the element at the given n-dimensional indices.
func (t *Tensor) GetEl(indices []int) (complexscalar.Complex, error) {
	offset, err := t.FlatOffset(indices)
	if err != nil {
		return complexscalar.Complex{}, err
	}
	return t.GetElFlat(offset)
}

// SetElFlat writes value at a flat offset, calling EnsureUnshared first.
// Writing a non-zero imaginary part into a tensor with no imaginary storage
// lazily allocates one.
func (t *Tensor) SetElFlat(offset int, value complexscalar.Complex) error {
	if offset < 0 || offset >= t.Size() {
		return jerr.Indexf("flat offset %d out of bounds for size %d", offset, t.Size())
	}
	t.prepareWrite(value)
	t.real.SetFloat64(offset, value.Re)
	if t.HasComplexStorage() {
		t.imag.SetFloat64(offset, value.Im)
	}
	return nil
}

// SetEl writes value at the given n-dimensional indices.
func (t *Tensor) SetEl(indices []int, value complexscalar.Complex) error {
	offset, err := t.FlatOffset(indices)
	if err != nil {
		return err
	}
	return t.SetElFlat(offset, value)
}

// prepareWrite ensures both storages are unshared, and lazily materializes
// imaginary storage if value carries a non-zero imaginary part.
func (t *Tensor) prepareWrite(value complexscalar.Complex) {
	t.real = t.real.EnsureUnshared()
	if value.Im != 0 && !t.HasComplexStorage() {
		t.imag = materializeImag(t.DType(), t.Size())
		return
	}
	if t.HasComplexStorage() {
		t.imag = t.imag.EnsureUnshared()
	}
}
