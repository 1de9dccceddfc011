package tensor

import (
	"testing"

	"github.com/morriswmz/jasmal/complexscalar"
	"github.com/morriswmz/jasmal/dtype"
	"github.com/stretchr/testify/require"
)

func TestZeros_Ones(t *testing.T) {
	z, err := Zeros([]int{2, 3}, dtype.Float64)
	require.NoError(t, err)
	require.Equal(t, 6, z.Size())
	require.False(t, z.HasComplexStorage())

	o, err := Ones([]int{2, 3}, dtype.Logic)
	require.NoError(t, err)
	for _, v := range o.RealData() {
		require.Equal(t, 1.0, v)
	}
}

func TestStrides_RowMajor(t *testing.T) {
	tn, err := Zeros([]int{3, 1, 2}, dtype.Float64)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 1}, tn.Strides())
}

func TestReshape_PointerLevel(t *testing.T) {
	tn, err := FromFlat([]float64{1, 2, 3, 4, 5, 6}, dtype.Float64)
	require.NoError(t, err)
	before := tn.RealStorage()
	_, err = tn.Reshape([]int{2, 3})
	require.NoError(t, err)
	require.Same(t, before, tn.RealStorage())
	require.Equal(t, []int{2, 3}, tn.Shape())
}

func TestReshape_InferNegativeOne(t *testing.T) {
	tn, _ := FromFlat([]float64{1, 2, 3, 4, 5, 6}, dtype.Float64)
	_, err := tn.Reshape([]int{-1, 2})
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, tn.Shape())
}

func TestReshape_TwoNegativeOnes_Errors(t *testing.T) {
	tn, _ := FromFlat([]float64{1, 2, 3, 4}, dtype.Float64)
	_, err := tn.Reshape([]int{-1, -1})
	require.Error(t, err)
}

func TestReshape_NonDivisible_Errors(t *testing.T) {
	tn, _ := FromFlat([]float64{1, 2, 3, 4, 5}, dtype.Float64)
	_, err := tn.Reshape([]int{-1, 2})
	require.Error(t, err)
}

func TestGetReshapedCopy_SharesBuffer(t *testing.T) {
	tn, _ := FromFlat([]float64{1, 2, 3, 4}, dtype.Float64)
	copy, err := tn.GetReshapedCopy([]int{2, 2})
	require.NoError(t, err)
	require.Same(t, tn.RealStorage(), copy.RealStorage())
}

func TestTrimImaginaryPart_KeepsRealBitwise(t *testing.T) {
	re, _ := FromFlat([]float64{1, 2}, dtype.Float64)
	im, _ := FromFlat([]float64{3, 4}, dtype.Float64)
	c, err := Complex(re, im)
	require.NoError(t, err)
	c.TrimImaginaryPart()
	require.False(t, c.HasComplexStorage())
	require.Equal(t, []float64{1, 2}, c.RealData())
}

func TestSetEl_LazyComplexAllocation(t *testing.T) {
	tn, _ := Zeros([]int{2}, dtype.Float64)
	require.False(t, tn.HasComplexStorage())
	err := tn.SetEl([]int{0}, complexscalar.New(1, 2))
	require.NoError(t, err)
	require.True(t, tn.HasComplexStorage())
	got, err := tn.GetEl([]int{0})
	require.NoError(t, err)
	require.Equal(t, complexscalar.New(1, 2), got)
}

func TestGetEl_OutOfBounds(t *testing.T) {
	tn, _ := Zeros([]int{2, 2}, dtype.Float64)
	_, err := tn.GetEl([]int{2, 0})
	require.Error(t, err)
}

func TestIsEqual_Vs_IsNumericallyEqual(t *testing.T) {
	re, _ := FromFlat([]float64{1, 2}, dtype.Float64)
	im, _ := FromFlat([]float64{0, 0}, dtype.Float64)
	complexZero, _ := Complex(re, im)
	plain, _ := FromFlat([]float64{1, 2}, dtype.Float64)

	require.False(t, complexZero.IsEqual(plain))
	require.True(t, complexZero.IsNumericallyEqual(plain))
}

func TestFromNested_ToNested_RoundTrip(t *testing.T) {
	nested := [][]float64{{1, 2, 3}, {4, 5, 6}}
	tn, err := FromNested(nested, dtype.Float64)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, tn.Shape())

	rebuilt, err := FromNested(tn.ToNested(true), dtype.Float64)
	require.NoError(t, err)
	require.True(t, tn.IsEqual(rebuilt))
}

func TestFromNested_RaggedRejected(t *testing.T) {
	_, err := FromNested([][]float64{{1, 2}, {3}}, dtype.Float64)
	require.Error(t, err)
}

func TestAsType_NoOpReturnsReceiver(t *testing.T) {
	tn, _ := FromFlat([]float64{1, 2}, dtype.Float64)
	same, err := tn.AsType(dtype.Float64, false)
	require.NoError(t, err)
	require.Same(t, tn, same)
}

func TestAsType_Widens(t *testing.T) {
	tn, _ := FromFlat([]float64{1, 2, 3}, dtype.Int32)
	widened, err := tn.AsType(dtype.Float64, false)
	require.NoError(t, err)
	require.Equal(t, dtype.Float64, widened.DType())
	require.Equal(t, []float64{1, 2, 3}, widened.RealData())
}

func TestConcatIdentity_ViaCopy(t *testing.T) {
	tn, _ := FromFlat([]float64{1, 2, 3}, dtype.Float64)
	cp := tn.Copy(true)
	require.True(t, tn.IsEqual(cp))
	require.NotSame(t, tn.RealStorage(), cp.RealStorage())
}
