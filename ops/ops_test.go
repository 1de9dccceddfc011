package ops

import (
	"testing"

	"github.com/morriswmz/jasmal/complexscalar"
	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/jerr"
	"github.com/morriswmz/jasmal/tensor"
	"github.com/stretchr/testify/require"
)

func TestAdd_BroadcastColumnRow(t *testing.T) {
	col, _ := tensor.FromFlat([]float64{1, 2, 3}, dtype.Float64)
	col, _ = col.Reshape([]int{3, 1})
	row, _ := tensor.FromFlat([]float64{10, 20, 30}, dtype.Float64)
	row, _ = row.Reshape([]int{1, 3})

	res, err := Add(col, row, false)
	require.NoError(t, err)
	out := res.(*tensor.Tensor)
	require.Equal(t, []int{3, 3}, out.Shape())
	require.Equal(t, []float64{11, 21, 31, 12, 22, 32, 13, 23, 33}, out.RealData())
}

func TestAdd_MixedDType(t *testing.T) {
	ints, _ := tensor.FromFlat([]float64{1, 2, 3}, dtype.Int32)
	floats, _ := tensor.FromFlat([]float64{0.5, 0.5, 0.5}, dtype.Float64)
	res, err := Add(ints, floats, false)
	require.NoError(t, err)
	out := res.(*tensor.Tensor)
	require.Equal(t, dtype.Float64, out.DType())
}

func TestSum_WholeTensor(t *testing.T) {
	tn, _ := tensor.FromFlat([]float64{1, 2, 3, 4}, dtype.Float64)
	res, err := Sum(tn, nil, false)
	require.NoError(t, err)
	require.Equal(t, 10.0, res.(float64))
}

func TestSum_Axis(t *testing.T) {
	tn, _ := tensor.FromFlat([]float64{1, 2, 3, 4, 5, 6}, dtype.Float64)
	tn, _ = tn.Reshape([]int{2, 3})
	axis := 1
	res, err := Sum(tn, &axis, false)
	require.NoError(t, err)
	out := res.(*tensor.Tensor)
	require.Equal(t, []float64{6, 15}, out.RealData())
}

func TestMax_WithIndex(t *testing.T) {
	tn, _ := tensor.FromFlat([]float64{3, 1, 2, 9, 4, 5}, dtype.Float64)
	tn, _ = tn.Reshape([]int{2, 3})
	res, err := Max(tn, 1, false)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 9}, res.Values.RealData())
	require.Equal(t, []float64{0, 0}, res.Indices.RealData())
}

func TestSqrt_NegativeReal_SwitchesToComplexBranch(t *testing.T) {
	res, err := Sqrt(-4.0, false)
	require.NoError(t, err)
	z := res.(complexscalar.Complex)
	require.InDelta(t, 0, z.Re, 1e-12)
	require.InDelta(t, 2, z.Im, 1e-12)
}

func TestAdd_InPlace_DTypeViolation_Errors(t *testing.T) {
	ints, _ := tensor.FromFlat([]float64{1, 2, 3}, dtype.Int32)
	floats, _ := tensor.FromFlat([]float64{0.5, 0.5, 0.5}, dtype.Float64)
	_, err := Add(ints, floats, true)
	require.Error(t, err)
	require.True(t, jerr.Is(err, jerr.DType))
}

func TestDiv_ScalarScalar(t *testing.T) {
	res, err := Div(7.0, 2.0, false)
	require.NoError(t, err)
	require.Equal(t, 3.5, res.(float64))
}
