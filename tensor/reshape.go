package tensor

import (
	"github.com/morriswmz/jasmal/jerr"
	"github.com/morriswmz/jasmal/storage"
)

// resolveShape expands a single -1 placeholder to the size implied by total,
// per spec.md section 6: "Reshape accepts a single -1 dimension... two -1s
// or a non-divisible size is an error."
func resolveShape(shape []int, total int) ([]int, error) {
	unknown := -1
	known := 1
	for i, n := range shape {
		if n == -1 {
			if unknown != -1 {
				return nil, jerr.Shapef("reshape: at most one axis may be -1, found at both %d and %d", unknown, i)
			}
			unknown = i
			continue
		}
		if n < 0 {
			return nil, jerr.Shapef("reshape: invalid negative axis length %d at position %d", n, i)
		}
		known *= n
	}
	if unknown == -1 {
		if known != total {
			return nil, jerr.Shapef("reshape: shape %v has size %d, want %d", shape, known, total)
		}
		return append([]int(nil), shape...), nil
	}
	if known == 0 || total%known != 0 {
		return nil, jerr.Shapef("reshape: cannot infer axis %d of shape %v for total size %d", unknown, shape, total)
	}
	resolved := append([]int(nil), shape...)
	resolved[unknown] = total / known
	return resolved, nil
}

// Reshape is a pointer-level operation: it never reallocates the buffer
// unless EnsureUnshared was already forced elsewhere. It mutates t in place
// and also returns t for chaining.
func (t *Tensor) Reshape(shape []int) (*Tensor, error) {
	resolved, err := resolveShape(shape, t.Size())
	if err != nil {
		return nil, err
	}
	t.shape = resolved
	return t, nil
}

// GetReshapedCopy returns a new Tensor sharing t's storages (pointer-level,
// same buffer identity) but with a new shape, per spec.md testable property
// 3: "get_reshaped_copy(s).real_data is the same buffer as the source's
// (until a write forces ensure-unshared)."
func (t *Tensor) GetReshapedCopy(shape []int) (*Tensor, error) {
	resolved, err := resolveShape(shape, t.Size())
	if err != nil {
		return nil, err
	}
	return newTensorShare(t.real, t.imag, resolved), nil
}

// PrependAxis returns a tensor with a new length-1 axis inserted at
// position 0, sharing storage with t.
func (t *Tensor) PrependAxis() *Tensor {
	shape := append([]int{1}, t.shape...)
	return newTensorShare(t.real, t.imag, shape)
}

// AppendAxis returns a tensor with a new length-1 axis appended at the end,
// sharing storage with t.
func (t *Tensor) AppendAxis() *Tensor {
	shape := append(append([]int(nil), t.shape...), 1)
	return newTensorShare(t.real, t.imag, shape)
}

// TrimImaginaryPart drops the imaginary storage, leaving RealData bitwise
// unchanged (spec.md testable property 2). It mutates t in place.
func (t *Tensor) TrimImaginaryPart() *Tensor {
	t.imag.Release()
	t.imag = storage.Empty
	storage.Empty.Retain()
	return t
}
