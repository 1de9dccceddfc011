// Package tensor implements Tensor (C3): a composition of one real Storage,
// an optional imaginary Storage, and a shape vector, with row-major strides
// derived from the shape. See spec.md section 3 for the full invariant set.
package tensor

import (
	"slices"

	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/jerr"
	"github.com/morriswmz/jasmal/storage"
)

// Tensor is an n-dimensional array with a real Storage, an optional
// imaginary Storage (storage.Empty when the tensor is real-only), and a
// shape that the Tensor defensively owns -- it is never aliased with caller
// input, per spec.md section 3.
type Tensor struct {
	real  *storage.Storage
	imag  *storage.Storage
	shape []int
}

// newTensorAdopt wraps real/imag without retaining them, for storages that
// are freshly allocated (storage.Create/Clone/FromFlat) and therefore
// already have exactly one owner: the Tensor being constructed here.
func newTensorAdopt(real, imag *storage.Storage, shape []int) *Tensor {
	return &Tensor{real: real, imag: imag, shape: slices.Clone(shape)}
}

// newTensorShare wraps real/imag and retains them, for storages that
// already belong to another live Tensor and are being shared with a new
// one (reshape, pointer-level copy, composing a complex tensor from
// existing real/imaginary tensors).
func newTensorShare(real, imag *storage.Storage, shape []int) *Tensor {
	t := &Tensor{real: real, imag: imag, shape: slices.Clone(shape)}
	real.Retain()
	imag.Retain()
	return t
}

// DType returns the element dtype, read from the real storage.
func (t *Tensor) DType() dtype.DType { return t.real.DType }

// Shape returns a defensive copy of the shape vector.
func (t *Tensor) Shape() []int { return slices.Clone(t.shape) }

// Strides returns the row-major strides for this tensor's shape.
func (t *Tensor) Strides() []int { return cachedStrides(t.shape) }

// NDim returns the number of axes.
func (t *Tensor) NDim() int { return len(t.shape) }

// Size returns the total element count (product of shape).
func (t *Tensor) Size() int { return Size(t.shape) }

// HasComplexStorage reports whether an imaginary Storage exists, regardless
// of whether its values are all zero.
func (t *Tensor) HasComplexStorage() bool { return !t.imag.IsEmpty() }

// HasNonzeroComplexStorage reports whether the imaginary storage exists AND
// carries at least one non-zero value -- the "is numerically complex"
// predicate used throughout the engine, distinct from HasComplexStorage.
func (t *Tensor) HasNonzeroComplexStorage() bool {
	if !t.HasComplexStorage() {
		return false
	}
	for i := 0; i < t.imag.Len(); i++ {
		if t.imag.GetFloat64(i) != 0 {
			return true
		}
	}
	return false
}

// IsScalar reports whether the tensor holds exactly one element.
func (t *Tensor) IsScalar() bool { return t.Size() == 1 }

// IsEmpty reports whether the tensor holds zero elements.
func (t *Tensor) IsEmpty() bool { return t.Size() == 0 }

// RealStorage and ImagStorage borrow the tensor's backing storages. Writing
// through them bypasses the copy-on-write contract; callers that intend to
// mutate must go through EnsureUnshared first (see tensor.EnsureUnshared).
func (t *Tensor) RealStorage() *storage.Storage { return t.real }
func (t *Tensor) ImagStorage() *storage.Storage { return t.imag }

// RealData returns the flat real buffer as a freshly allocated []float64
// copy, regardless of native dtype representation; Int32/Logic buffers are
// converted on read. Writes to the returned slice do not reach the tensor;
// RealStorage gives access to the tensor's own buffer.
func (t *Tensor) RealData() []float64 {
	out := make([]float64, t.real.Len())
	for i := range out {
		out[i] = t.real.GetFloat64(i)
	}
	return out
}

// ImagData returns a freshly allocated []float64 copy of the flat imaginary
// buffer (writes to it do not reach the tensor), or returns an error if the
// tensor carries no imaginary storage at all (StateError per spec.md
// section 7: "attempting to read imag data on a real-only tensor").
func (t *Tensor) ImagData() ([]float64, error) {
	if !t.HasComplexStorage() {
		return nil, jerr.Statef("tensor has no imaginary storage to read")
	}
	out := make([]float64, t.imag.Len())
	for i := range out {
		out[i] = t.imag.GetFloat64(i)
	}
	return out, nil
}

// EnsureUnshared returns a Tensor safe to mutate in place: it reuses t's own
// storages if they are uniquely referenced, or deep-copies them (and their
// shape) otherwise. The returned Tensor may be t itself. Callers are
// expected to replace their reference to t with the result (see
// index.Set's `*t = *t.EnsureUnshared()` pattern) rather than keep both
// around, so the old storages' ownership is treated as transferred, not
// additionally shared.
func (t *Tensor) EnsureUnshared() *Tensor {
	newReal := t.real.EnsureUnshared()
	newImag := t.imag.EnsureUnshared()
	if newReal == t.real && newImag == t.imag {
		return t
	}
	return newTensorAdopt(newReal, newImag, t.shape)
}

// Release drops this Tensor's references to its storages. Go's GC reclaims
// the buffers once unreferenced; Release exists purely to keep the
// spec-mandated refcount bookkeeping observable (see storage.Storage).
func (t *Tensor) Release() {
	t.real.Release()
	t.imag.Release()
}

// Copy returns a tensor with the same shape and values. If deep is false,
// both the real and the imaginary storage are retained and shared
// (pointer-level copy). If deep is true, both storages are fully cloned.
func (t *Tensor) Copy(deep bool) *Tensor {
	if deep {
		return newTensorAdopt(t.real.Clone(), t.imag.Clone(), t.shape)
	}
	return newTensorShare(t.real, t.imag, t.shape)
}
