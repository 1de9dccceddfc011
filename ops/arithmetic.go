// Package ops exposes the user-facing operations assembled from the kernel
// framework (C7): element-wise arithmetic, transcendental functions and
// reductions. Each op is built once, at package init, from a small body
// closure plus a dtype policy (C8) -- the same "assemble a functor" shape
// spec.md section 4.6 describes, minus the runtime template compilation.
package ops

import (
	"math"

	"github.com/morriswmz/jasmal/complexscalar"
	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/kernel"
)

func toComplex(re, im float64) complexscalar.Complex { return complexscalar.Complex{Re: re, Im: im} }

var addOp = kernel.MakeBinaryOp("add", func(reX, imX, reY, imY float64) (float64, float64) {
	return reX + reY, imX + imY
}, dtype.WiderWithLogicToIntPolicy, true)

var subOp = kernel.MakeBinaryOp("sub", func(reX, imX, reY, imY float64) (float64, float64) {
	return reX - reY, imX - imY
}, dtype.WiderWithLogicToIntPolicy, true)

var mulOp = kernel.MakeBinaryOp("mul", func(reX, imX, reY, imY float64) (float64, float64) {
	z := toComplex(reX, imX).Mul(toComplex(reY, imY))
	return z.Re, z.Im
}, dtype.WiderWithLogicToIntPolicy, true)

var divOp = kernel.MakeBinaryOp("div", func(reX, imX, reY, imY float64) (float64, float64) {
	z := toComplex(reX, imX).Div(toComplex(reY, imY))
	return z.Re, z.Im
}, dtype.ToFloat64Policy, true)

// Add computes x + y, broadcasting per spec.md section 4.6. If inPlace is
// true, x must be a *tensor.Tensor and becomes the result.
func Add(x, y any, inPlace bool) (any, error) { return addOp.Eval(x, y, inPlace) }

// Sub computes x - y.
func Sub(x, y any, inPlace bool) (any, error) { return subOp.Eval(x, y, inPlace) }

// Mul computes x * y element-wise (Hadamard product for tensors).
func Mul(x, y any, inPlace bool) (any, error) { return mulOp.Eval(x, y, inPlace) }

// Div computes x / y element-wise, always promoting to FLOAT64.
func Div(x, y any, inPlace bool) (any, error) { return divOp.Eval(x, y, inPlace) }

var negOp = kernel.MakeUnaryOp("neg", func(reX, imX float64) (float64, float64) {
	return -reX, -imX
}, dtype.OnlyLogicToFloat64Policy, true)

// Neg computes -x.
func Neg(x any, inPlace bool) (any, error) { return negOp.Eval(x, inPlace) }

var absOp = kernel.MakeUnaryOp("abs", func(reX, imX float64) (float64, float64) {
	return toComplex(reX, imX).Norm(), 0
}, dtype.OnlyLogicToFloat64Policy, false)

// Abs computes the magnitude, always real-valued even for complex input.
func Abs(x any, inPlace bool) (any, error) { return absOp.Eval(x, inPlace) }

var sqrtOp = kernel.MakeUnaryOp("sqrt", func(reX, imX float64) (float64, float64) {
	if imX == 0 && reX >= 0 {
		return math.Sqrt(reX), 0
	}
	z := toComplex(reX, imX).Sqrt()
	return z.Re, z.Im
}, dtype.ToFloat64Policy, true)

// Sqrt computes the principal square root, switching to the complex branch
// (S4 from spec.md) whenever the input is already complex or its real part
// is negative.
func Sqrt(x any, inPlace bool) (any, error) { return sqrtOp.Eval(x, inPlace) }

var expOp = kernel.MakeUnaryOp("exp", func(reX, imX float64) (float64, float64) {
	if imX == 0 {
		return math.Exp(reX), 0
	}
	z := toComplex(reX, imX).Exp()
	return z.Re, z.Im
}, dtype.ToFloat64Policy, true)

// Exp computes e**x.
func Exp(x any, inPlace bool) (any, error) { return expOp.Eval(x, inPlace) }

var logOp = kernel.MakeUnaryOp("log", func(reX, imX float64) (float64, float64) {
	if imX == 0 && reX > 0 {
		return math.Log(reX), 0
	}
	z := toComplex(reX, imX).Log()
	return z.Re, z.Im
}, dtype.ToFloat64Policy, true)

// Log computes the principal natural logarithm, switching to the complex
// branch for negative or complex inputs.
func Log(x any, inPlace bool) (any, error) { return logOp.Eval(x, inPlace) }
