package linalg

import (
	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/tensor"
	"github.com/rs/zerolog/log"
	"github.com/x448/float16"
)

// ExportFloat16 narrows a real-valued matrix's data to IEEE-754 binary16,
// the half-precision layout device collaborators (GPU/accelerator buffers)
// expect when they consume a factorization result, per dtype.NarrowestFloat16.
func ExportFloat16(t *tensor.Tensor) ([]float16.Float16, error) {
	dense, err := toDense(t, "export_float16")
	if err != nil {
		return nil, err
	}
	rows, cols := dense.Dims()
	log.Debug().Int("rows", rows).Int("cols", cols).Msg("linalg: exporting matrix as float16")
	return dtype.NarrowestFloat16(t.RealData()), nil
}

// ImportFloat16 widens a half-precision buffer back to a FLOAT64 matrix of
// the given shape, the inverse of ExportFloat16.
func ImportFloat16(values []float16.Float16, shape []int) (*tensor.Tensor, error) {
	out, err := tensor.FromFlat(dtype.WidenFloat16(values), dtype.Float64)
	if err != nil {
		return nil, err
	}
	return out.Reshape(shape)
}
