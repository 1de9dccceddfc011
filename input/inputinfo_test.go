package input

import (
	"testing"

	"github.com/morriswmz/jasmal/complexscalar"
	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/tensor"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Number(t *testing.T) {
	info, err := Normalize(3.5)
	require.NoError(t, err)
	require.True(t, info.IsScalar)
	require.Equal(t, []int{1}, info.OriginalShape)
	require.Equal(t, dtype.Float64, info.DType)
}

func TestNormalize_ComplexScalar(t *testing.T) {
	info, err := Normalize(complexscalar.New(1, 2))
	require.NoError(t, err)
	require.True(t, info.IsComplex)
	require.Equal(t, 2.0, info.Im)
}

func TestNormalize_ComplexScalar_ZeroImagNotComplex(t *testing.T) {
	info, err := Normalize(complexscalar.New(1, 0))
	require.NoError(t, err)
	require.False(t, info.IsComplex)
}

func TestNormalize_FlatIntArray(t *testing.T) {
	info, err := Normalize([]int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, dtype.Int32, info.DType)
	require.Equal(t, []int{3}, info.OriginalShape)
}

func TestNormalize_FlatFloatArray(t *testing.T) {
	info, err := Normalize([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, dtype.Float64, info.DType)
}

func TestNormalize_NestedArray(t *testing.T) {
	info, err := Normalize([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, info.OriginalShape)
}

func TestNormalize_Tensor_AliasesFloat64Buffer(t *testing.T) {
	tn, _ := tensor.FromFlat([]float64{1, 2, 3}, dtype.Float64)
	info, err := Normalize(tn)
	require.NoError(t, err)
	require.True(t, info.Aliases)
	info.ReArr[0] = 99
	require.Equal(t, 99.0, tn.RealData()[0])
}

func TestNormalize_UnsupportedInput(t *testing.T) {
	_, err := Normalize(struct{ X int }{1})
	require.Error(t, err)
}

func TestNormalize_RaggedNestedRejected(t *testing.T) {
	_, err := Normalize([][]float64{{1}, {1, 2}})
	require.Error(t, err)
}
