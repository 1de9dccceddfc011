package tensor

import (
	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/storage"
)

// materializeImag allocates a fresh zero-filled imaginary storage, the
// "lazy allocation of a second buffer" promoting a real tensor to complex,
// per spec.md section 3.
func materializeImag(dt dtype.DType, length int) *storage.Storage {
	return storage.Create(length, dt)
}
