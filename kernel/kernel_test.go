package kernel

import (
	"testing"

	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/jerr"
	"github.com/morriswmz/jasmal/tensor"
	"github.com/stretchr/testify/require"
)

func addBody(reX, imX, reY, imY float64) (float64, float64) {
	return reX + reY, imX + imY
}

func TestBinaryOp_Broadcast_ColumnPlusRow(t *testing.T) {
	// S1 from spec.md: a 3x1 column plus a 1x3 row broadcasts to 3x3.
	col, _ := tensor.FromFlat([]float64{1, 2, 3}, dtype.Float64)
	col, _ = col.Reshape([]int{3, 1})
	row, _ := tensor.FromFlat([]float64{10, 20, 30}, dtype.Float64)
	row, _ = row.Reshape([]int{1, 3})

	op := MakeBinaryOp("add", addBody, dtype.WiderPolicy, false)
	res, err := op.Eval(col, row, false)
	require.NoError(t, err)
	out := res.(*tensor.Tensor)
	require.Equal(t, []int{3, 3}, out.Shape())
	require.Equal(t, []float64{11, 21, 31, 12, 22, 32, 13, 23, 33}, out.RealData())
}

func TestBinaryOp_MixedDType_WidensToFloat64(t *testing.T) {
	// S3 from spec.md: INT32 + FLOAT64 widens to FLOAT64.
	ints, _ := tensor.FromFlat([]float64{1, 2, 3}, dtype.Int32)
	floats, _ := tensor.FromFlat([]float64{0.5, 0.5, 0.5}, dtype.Float64)
	op := MakeBinaryOp("add", addBody, dtype.WiderPolicy, false)
	res, err := op.Eval(ints, floats, false)
	require.NoError(t, err)
	out := res.(*tensor.Tensor)
	require.Equal(t, dtype.Float64, out.DType())
	require.Equal(t, []float64{1.5, 2.5, 3.5}, out.RealData())
}

func TestReductionOp_MaxWithIndex_Axis(t *testing.T) {
	// S5 from spec.md: reduction with the index of the winning element.
	tn, _ := tensor.FromFlat([]float64{3, 1, 2, 9, 4, 5}, dtype.Float64)
	tn, _ = tn.Reshape([]int{2, 3})
	r := NewIndexedReducer(0, func(best, cand float64) bool { return cand > best })
	axis := 1
	res, err := EvalIndexedReduction("max", r, tn, axis, false)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 9}, res.Values.RealData())
	require.Equal(t, []int{0, 0}, intData(res.Indices))
}

func TestUnaryOp_InPlace_DTypeViolation_Errors(t *testing.T) {
	// S7 from spec.md: an in-place op whose result dtype is wider than the
	// operand's own dtype must raise DTypeError, not silently truncate.
	ints, _ := tensor.FromFlat([]float64{1, 2, 3}, dtype.Int32)
	sqrtOp := MakeUnaryOp("sqrt", func(reX, imX float64) (float64, float64) {
		return reX, imX
	}, dtype.ToFloat64Policy, false)
	_, err := sqrtOp.Eval(ints, true)
	require.Error(t, err)
	require.True(t, jerr.Is(err, jerr.DType))
}

func TestUnaryOp_InPlace_ZeroesStaleImaginary(t *testing.T) {
	re, _ := tensor.FromFlat([]float64{3, 4}, dtype.Float64)
	im, _ := tensor.FromFlat([]float64{1, 1}, dtype.Float64)
	z, _ := tensor.Complex(re, im)
	absOp := MakeUnaryOp("abs", func(reX, imX float64) (float64, float64) {
		return reX*reX + imX*imX, 0
	}, dtype.OnlyLogicToFloat64Policy, false)
	res, err := absOp.Eval(z, true)
	require.NoError(t, err)
	out := res.(*tensor.Tensor)
	require.True(t, out.HasComplexStorage())
	imData, err := out.ImagData()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, imData)
}

func intData(t *tensor.Tensor) []int {
	data := t.RealData()
	out := make([]int, len(data))
	for i, v := range data {
		out[i] = int(v)
	}
	return out
}
