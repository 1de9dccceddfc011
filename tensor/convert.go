package tensor

import (
	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/storage"
)

// AsType converts the tensor to dt. If dt already equals t.DType() and
// alwaysCopy is false, t itself is returned (no-op, matching the teacher's
// fast path of returning the receiver when nothing needs to change).
func (t *Tensor) AsType(dt dtype.DType, alwaysCopy bool) (*Tensor, error) {
	if dt == t.DType() && !alwaysCopy {
		return t, nil
	}
	if dt == t.DType() {
		return t.Copy(true), nil
	}
	real, err := storage.FromFlat(t.RealData(), dt)
	if err != nil {
		return nil, err
	}
	imag := storage.Empty
	if t.HasComplexStorage() {
		imagData, _ := t.ImagData()
		imag, err = storage.FromFlat(imagData, dt)
		if err != nil {
			return nil, err
		}
	}
	return newTensorAdopt(real, imag, t.shape), nil
}
