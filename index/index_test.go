package index

import (
	"testing"

	"github.com/morriswmz/jasmal/complexscalar"
	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/tensor"
	"github.com/stretchr/testify/require"
)

func TestParseSlice_NegativeStep(t *testing.T) {
	// S6 from spec.md: x=[10,20,30,40,50], x.get("::-2") == [50,30,10].
	tn, err := tensor.FromFlat([]float64{10, 20, 30, 40, 50}, dtype.Float64)
	require.NoError(t, err)
	res, err := Get(tn, []any{"::-2"}, false)
	require.NoError(t, err)
	require.Equal(t, []float64{50, 30, 10}, res.Tensor.RealData())
}

func TestGet_ConstantSqueezesByDefault(t *testing.T) {
	tn, _ := tensor.FromFlat([]float64{1, 2, 3, 4, 5, 6}, dtype.Float64)
	tn.Reshape([]int{2, 3})
	res, err := Get(tn, []any{0, ":"}, false)
	require.NoError(t, err)
	require.Equal(t, []int{3}, res.Tensor.Shape())
}

func TestGet_KeepDims(t *testing.T) {
	tn, _ := tensor.FromFlat([]float64{1, 2, 3, 4, 5, 6}, dtype.Float64)
	tn.Reshape([]int{2, 3})
	res, err := Get(tn, []any{0, ":"}, true)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, res.Tensor.Shape())
}

func TestGet_FullScalarSqueeze(t *testing.T) {
	tn, _ := tensor.FromFlat([]float64{1, 2, 3, 4}, dtype.Float64)
	tn.Reshape([]int{2, 2})
	res, err := Get(tn, []any{1, 1}, false)
	require.NoError(t, err)
	require.NotNil(t, res.Real)
	require.Equal(t, 4.0, *res.Real)
}

func TestSet_MaskWrite(t *testing.T) {
	// S2 from spec.md.
	tn, _ := tensor.FromFlat([]float64{1, -2, 3, -4, 5, -6}, dtype.Float64)
	tn.Reshape([]int{2, 3})

	mask, _ := tensor.FromFlat([]float64{0, 1, 0, 1, 0, 1}, dtype.Logic)
	mask.Reshape([]int{2, 3})

	err := Set(tn, []any{mask}, 0.0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 3, 0, 5, 0}, tn.RealData())
}

func TestGet_ArrayBackedIndices(t *testing.T) {
	tn, _ := tensor.FromFlat([]float64{10, 20, 30, 40}, dtype.Float64)
	res, err := Get(tn, []any{[]int{0, -1, 2}}, false)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 40, 30}, res.Tensor.RealData())
}

func TestGet_PredicateWholeTensor(t *testing.T) {
	tn, _ := tensor.FromFlat([]float64{1, -2, 3, -4}, dtype.Float64)
	res, err := Get(tn, []any{Predicate(func(re, im float64) bool { return re < 0 })}, false)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -4}, res.Tensor.RealData())
}

func TestSet_ScalarBroadcastToSlice(t *testing.T) {
	tn, _ := tensor.FromFlat([]float64{1, 2, 3, 4}, dtype.Float64)
	err := Set(tn, []any{"1:3"}, 9.0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 9, 9, 4}, tn.RealData())
}

func TestSet_ComplexScalarMaterializesImaginary(t *testing.T) {
	tn, _ := tensor.FromFlat([]float64{1, 2}, dtype.Float64)
	err := Set(tn, []any{0}, complexscalar.New(5, 7))
	require.NoError(t, err)
	require.True(t, tn.HasComplexStorage())
}

func TestGet_OutOfBounds(t *testing.T) {
	tn, _ := tensor.FromFlat([]float64{1, 2, 3}, dtype.Float64)
	_, err := Get(tn, []any{5}, false)
	require.Error(t, err)
}

func TestParseSlice_StepZero_Errors(t *testing.T) {
	_, err := ParseSlice("1:3:0", 5)
	require.Error(t, err)
}
