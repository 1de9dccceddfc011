package ops

import (
	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/kernel"
)

var sumOp = kernel.MakeReductionOp("sum", kernel.NewReducer(0, 0, func(accRe, accIm, re, im float64) (float64, float64) {
	return accRe + re, accIm + im
}), dtype.WiderWithLogicToIntPolicy)

// Sum folds x by addition, along axis if given or over the whole tensor
// when axis is nil.
func Sum(x any, axis *int, keepDims bool) (any, error) { return sumOp.Eval(x, axis, keepDims) }

var prodOp = kernel.MakeReductionOp("prod", kernel.NewReducer(1, 0, func(accRe, accIm, re, im float64) (float64, float64) {
	z := toComplex(accRe, accIm).Mul(toComplex(re, im))
	return z.Re, z.Im
}), dtype.WiderWithLogicToIntPolicy)

// Prod folds x by multiplication.
func Prod(x any, axis *int, keepDims bool) (any, error) { return prodOp.Eval(x, axis, keepDims) }

var maxIndexed = kernel.NewIndexedReducer(0, func(best, cand float64) bool { return cand > best })
var minIndexed = kernel.NewIndexedReducer(0, func(best, cand float64) bool { return cand < best })

// Max returns the maximum along axis plus the index of the winning element,
// the "with-index variant" of spec.md section 4.6 (scenario S5).
func Max(x any, axis int, keepDims bool) (*kernel.IndexedReductionResult, error) {
	return kernel.EvalIndexedReduction("max", maxIndexed, x, axis, keepDims)
}

// Min returns the minimum along axis plus the index of the winning element.
func Min(x any, axis int, keepDims bool) (*kernel.IndexedReductionResult, error) {
	return kernel.EvalIndexedReduction("min", minIndexed, x, axis, keepDims)
}
