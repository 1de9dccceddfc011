// Package linalg implements JASMAL's dense linear algebra layer on top of
// gonum's mat package: LU, QR, Cholesky, SVD and symmetric eigendecomposition
// over *tensor.Tensor operands. Matrices must be real-valued and rank 2; see
// spec.md section 4.8.
package linalg

import (
	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/jerr"
	"github.com/morriswmz/jasmal/tensor"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

// toDense validates t is a real-valued rank-2 tensor and converts it to a
// gonum *mat.Dense, row-major to row-major (gonum's native layout).
func toDense(t *tensor.Tensor, op string) (*mat.Dense, error) {
	if t.HasNonzeroComplexStorage() {
		return nil, jerr.DTypef("%s: complex-valued matrices are not supported", op)
	}
	if t.NDim() != 2 {
		return nil, jerr.ShapeOperandf("matrix", "%s: expected a rank-2 tensor, got shape %v", op, t.Shape())
	}
	rows, cols := t.Shape()[0], t.Shape()[1]
	log.Debug().Str("op", op).Int("rows", rows).Int("cols", cols).Msg("linalg: converting tensor to dense matrix")
	return mat.NewDense(rows, cols, t.RealData()), nil
}

// fromDense converts a gonum matrix back into a FLOAT64 tensor.
func fromDense(m mat.Matrix) (*tensor.Tensor, error) {
	rows, cols := m.Dims()
	flat := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			flat[i*cols+j] = m.At(i, j)
		}
	}
	out, err := tensor.FromFlat(flat, dtype.Float64)
	if err != nil {
		return nil, err
	}
	return out.Reshape([]int{rows, cols})
}
