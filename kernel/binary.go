package kernel

import (
	"github.com/morriswmz/jasmal/complexscalar"
	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/input"
	"github.com/morriswmz/jasmal/jerr"
	"github.com/morriswmz/jasmal/tensor"
)

// BinaryBody evaluates one element pair. The four cases the framework
// assembles around it (SS/ST/TS/TT, per spec.md section 4.6) all funnel
// through this single body; broadcasting and complex-vs-real bookkeeping
// live in BinaryOp.Eval, not in per-case generated code.
type BinaryBody func(reX, imX, reY, imY float64) (reZ, imZ float64)

// BinaryOp is a functor assembled by MakeBinaryOp.
type BinaryOp struct {
	body       BinaryBody
	policy     dtype.Policy
	declaresIm bool
	name       string
}

// MakeBinaryOp assembles a binary kernel. See MakeUnaryOp for the meaning
// of declaresIm.
func MakeBinaryOp(name string, body BinaryBody, policy dtype.Policy, declaresIm bool) BinaryOp {
	return BinaryOp{name: name, body: body, policy: policy, declaresIm: declaresIm}
}

// Eval runs the op. When inPlace is true, x must be a *tensor.Tensor whose
// shape is the broadcast output shape (spec.md section 4.6: "broadcast
// output shape must equal the first operand's shape" for in-place calls).
func (op BinaryOp) Eval(x, y any, inPlace bool) (any, error) {
	xi, err := input.Normalize(x)
	if err != nil {
		return nil, err
	}
	yi, err := input.Normalize(y)
	if err != nil {
		return nil, err
	}

	outDType, ok := op.policy(xi.DType, xi.IsComplex, yi.DType, yi.IsComplex)
	if !ok {
		return nil, jerr.DTypef("%s: no result dtype for %s/%s operands", op.name, xi.DType, yi.DType)
	}

	if xi.IsScalar && yi.IsScalar && !inPlace {
		reZ, imZ := op.body(xi.Re, xi.Im, yi.Re, yi.Im)
		if imZ != 0 {
			return complexscalar.New(reZ, imZ), nil
		}
		return reZ, nil
	}

	outShape, vx, vy, err := broadcastShapes(xi.OriginalShape, yi.OriginalShape)
	if err != nil {
		return nil, err
	}

	if inPlace {
		xt, isTensor := xi.Original.(*tensor.Tensor)
		if !isTensor {
			return nil, jerr.Statef("%s: in-place requires the first operand to be a Tensor", op.name)
		}
		if !tensor.EqualShapes(outShape, xt.Shape()) {
			return nil, jerr.Shapef("%s: in-place broadcast output shape %v differs from operand shape %v", op.name, outShape, xt.Shape())
		}
		if dtype.Less(xt.DType(), outDType) {
			return nil, jerr.DTypef("%s: in-place result dtype %s is wider than operand dtype %s", op.name, outDType, xt.DType())
		}
		return op.evalInPlace(xt, xi, yi, vx, vy)
	}

	n := productShape(outShape)
	reOut := make([]float64, n)
	var imOut []float64
	idx := make([]int, len(outShape))
	for flat := 0; flat < n; flat++ {
		indexAt(flat, outShape, idx)
		xo := broadcastOffset(idx, vx)
		yo := broadcastOffset(idx, vy)
		var imX, imY float64
		if xi.ImArr != nil {
			imX = xi.ImArr[xo]
		}
		if yi.ImArr != nil {
			imY = yi.ImArr[yo]
		}
		reZ, imZ := op.body(xi.ReArr[xo], imX, yi.ReArr[yo], imY)
		reOut[flat] = reZ
		if op.declaresIm && imZ != 0 {
			if imOut == nil {
				imOut = make([]float64, n)
			}
			imOut[flat] = imZ
		}
	}

	out, err := tensor.FromFlat(reOut, outDType)
	if err != nil {
		return nil, err
	}
	out, err = out.Reshape(outShape)
	if err != nil {
		return nil, err
	}
	if imOut != nil {
		imTensor, err := tensor.FromFlat(imOut, outDType)
		if err != nil {
			return nil, err
		}
		imTensor, _ = imTensor.Reshape(outShape)
		out, err = tensor.Complex(out, imTensor)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (op BinaryOp) evalInPlace(xt *tensor.Tensor, xi, yi *input.Info, vx, vy []int) (any, error) {
	*xt = *xt.EnsureUnshared()
	shape := xt.Shape()
	n := xt.Size()
	realData := xt.RealStorage()
	var imagData *tensorImagAccessor
	if xt.HasComplexStorage() {
		imagData = &tensorImagAccessor{t: xt}
	}
	idx := make([]int, len(shape))
	var producedComplex bool
	for flat := 0; flat < n; flat++ {
		indexAt(flat, shape, idx)
		xo := broadcastOffset(idx, vx)
		yo := broadcastOffset(idx, vy)
		var imX, imY float64
		if xi.ImArr != nil {
			imX = xi.ImArr[xo]
		}
		if yi.ImArr != nil {
			imY = yi.ImArr[yo]
		}
		reZ, imZ := op.body(xi.ReArr[xo], imX, yi.ReArr[yo], imY)
		realData.SetFloat64(flat, reZ)
		if op.declaresIm && imZ != 0 {
			if imagData == nil {
				*xt = *materializeComplexInPlace(xt)
				imagData = &tensorImagAccessor{t: xt}
			}
			imagData.set(flat, imZ)
			producedComplex = true
		}
	}
	if imagData != nil && !producedComplex {
		imagData.zeroAll()
	}
	return xt, nil
}
