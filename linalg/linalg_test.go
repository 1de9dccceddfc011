package linalg

import (
	"testing"

	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/tensor"
	"github.com/stretchr/testify/require"
)

func TestLU_Identity(t *testing.T) {
	a, _ := tensor.FromFlat([]float64{1, 0, 0, 1}, dtype.Float64)
	a, _ = a.Reshape([]int{2, 2})
	res, err := LU(a)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, res.L.Shape())
	require.Equal(t, []int{2, 2}, res.U.Shape())
}

func TestCholesky_PositiveDefinite(t *testing.T) {
	a, _ := tensor.FromFlat([]float64{4, 2, 2, 3}, dtype.Float64)
	a, _ = a.Reshape([]int{2, 2})
	l, err := Cholesky(a)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, l.Shape())
}

func TestCholesky_NotPositiveDefinite_Errors(t *testing.T) {
	a, _ := tensor.FromFlat([]float64{1, 2, 2, 1}, dtype.Float64)
	a, _ = a.Reshape([]int{2, 2})
	_, err := Cholesky(a)
	require.Error(t, err)
}

func TestQR_Rectangular(t *testing.T) {
	a, _ := tensor.FromFlat([]float64{1, 2, 3, 4, 5, 6}, dtype.Float64)
	a, _ = a.Reshape([]int{3, 2})
	res, err := QR(a)
	require.NoError(t, err)
	require.Equal(t, 3, res.Q.Shape()[0])
	require.Equal(t, 2, res.R.Shape()[1])
}

func TestEigSym_Diagonal(t *testing.T) {
	a, _ := tensor.FromFlat([]float64{2, 0, 0, 3}, dtype.Float64)
	a, _ = a.Reshape([]int{2, 2})
	res, err := EigSym(a)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 3}, res.Values, 1e-9)
}

func TestExportImportFloat16_RoundTrips(t *testing.T) {
	a, _ := tensor.FromFlat([]float64{1, 2, 3, 4}, dtype.Float64)
	a, _ = a.Reshape([]int{2, 2})
	half, err := ExportFloat16(a)
	require.NoError(t, err)
	require.Len(t, half, 4)
	back, err := ImportFloat16(half, []int{2, 2})
	require.NoError(t, err)
	require.Equal(t, a.RealData(), back.RealData())
}

func TestExportFloat16_ComplexInput_Errors(t *testing.T) {
	re, _ := tensor.FromFlat([]float64{1, 0, 0, 1}, dtype.Float64)
	re, _ = re.Reshape([]int{2, 2})
	im, _ := tensor.FromFlat([]float64{1, 0, 0, 1}, dtype.Float64)
	im, _ = im.Reshape([]int{2, 2})
	z, _ := tensor.Complex(re, im)
	_, err := ExportFloat16(z)
	require.Error(t, err)
}

func TestLU_ComplexInput_Errors(t *testing.T) {
	re, _ := tensor.FromFlat([]float64{1, 0, 0, 1}, dtype.Float64)
	re, _ = re.Reshape([]int{2, 2})
	im, _ := tensor.FromFlat([]float64{1, 0, 0, 1}, dtype.Float64)
	im, _ = im.Reshape([]int{2, 2})
	z, _ := tensor.Complex(re, im)
	_, err := LU(z)
	require.Error(t, err)
}
