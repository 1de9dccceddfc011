package kernel

import (
	"github.com/morriswmz/jasmal/complexscalar"
	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/input"
	"github.com/morriswmz/jasmal/jerr"
	"github.com/morriswmz/jasmal/tensor"
)

// Reducer folds a running accumulator with one more element. init is called
// once per reduction group to produce the starting accumulator.
type Reducer struct {
	init func() (re, im float64)
	step func(accRe, accIm, re, im float64) (re2, im2 float64)
}

// NewReducer builds a Reducer from an initial value and a per-step combine
// function, covering the real-real/real-complex/complex-real/complex-complex
// cases of spec.md section 4.6 uniformly: step always sees both components
// and decides what to do with them.
func NewReducer(initRe, initIm float64, step func(accRe, accIm, re, im float64) (float64, float64)) Reducer {
	return Reducer{init: func() (float64, float64) { return initRe, initIm }, step: step}
}

// ReductionOp is a functor assembled by MakeReductionOp: a fold over either
// the whole tensor (axis == nil) or one axis, per spec.md section 4.6.
type ReductionOp struct {
	reducer Reducer
	policy  dtype.Policy
	name    string
}

func MakeReductionOp(name string, reducer Reducer, policy dtype.Policy) ReductionOp {
	return ReductionOp{name: name, reducer: reducer, policy: policy}
}

// Eval folds x along axis (nil means the whole tensor collapses to a
// scalar), optionally keeping the reduced axis as a size-1 dimension.
func (op ReductionOp) Eval(x any, axis *int, keepDims bool) (any, error) {
	info, err := input.Normalize(x)
	if err != nil {
		return nil, err
	}
	outDType, ok := op.policy(info.DType, info.IsComplex, dtype.Invalid, false)
	if !ok {
		return nil, jerr.DTypef("%s: no result dtype for input dtype %s", op.name, info.DType)
	}

	if axis == nil {
		re, im := op.reducer.init()
		for i := range info.ReArr {
			var imX float64
			if info.ImArr != nil {
				imX = info.ImArr[i]
			}
			re, im = op.reducer.step(re, im, info.ReArr[i], imX)
		}
		if im != 0 {
			return complexscalar.New(re, im), nil
		}
		return re, nil
	}

	shape := info.OriginalShape
	ax := *axis
	if ax < 0 {
		ax += len(shape)
	}
	if ax < 0 || ax >= len(shape) {
		return nil, jerr.IndexOperandf("axis", "axis %d out of range for rank %d", *axis, len(shape))
	}

	outShape := make([]int, len(shape))
	copy(outShape, shape)
	if keepDims {
		outShape[ax] = 1
	} else {
		outShape = append(outShape[:ax], outShape[ax+1:]...)
	}

	strides := rowMajorStrides(shape)
	groupCount := tensor.Size(shape) / shape[ax]
	reOut := make([]float64, groupCount)
	var imOut []float64
	idx := make([]int, len(shape))
	outFlat := 0
	err = walkExceptAxis(shape, ax, idx, func() {
		re, im := op.reducer.init()
		base := 0
		for i, v := range idx {
			if i == ax {
				continue
			}
			base += v * strides[i]
		}
		for k := 0; k < shape[ax]; k++ {
			offset := base + k*strides[ax]
			var imX float64
			if info.ImArr != nil {
				imX = info.ImArr[offset]
			}
			re, im = op.reducer.step(re, im, info.ReArr[offset], imX)
		}
		reOut[outFlat] = re
		if im != 0 {
			if imOut == nil {
				imOut = make([]float64, groupCount)
			}
			imOut[outFlat] = im
		}
		outFlat++
	})
	if err != nil {
		return nil, err
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

// IndexedReducer folds real-valued elements while tracking the winning
// element's position along the reduced axis, for ops like ArgMax/Max-with-
// index (spec.md section 4.6's "with-index variant").
type IndexedReducer struct {
	// better reports whether candidate should replace the current best.
	better func(bestVal, candidateVal float64) bool
	init   float64
}

func NewIndexedReducer(init float64, better func(bestVal, candidateVal float64) bool) IndexedReducer {
	return IndexedReducer{init: init, better: better}
}

// IndexedReductionResult carries both the folded values and the winning
// index along the reduced axis.
type IndexedReductionResult struct {
	Values  *tensor.Tensor
	Indices *tensor.Tensor
}

func EvalIndexedReduction(name string, r IndexedReducer, x any, axis int, keepDims bool) (*IndexedReductionResult, error) {
	info, err := input.Normalize(x)
	if err != nil {
		return nil, err
	}
	if info.ImArr != nil {
		return nil, jerr.DTypef("%s: with-index reductions require a real-valued input", name)
	}
	shape := info.OriginalShape
	if axis < 0 {
		axis += len(shape)
	}
	if axis < 0 || axis >= len(shape) {
		return nil, jerr.IndexOperandf("axis", "axis %d out of range for rank %d", axis, len(shape))
	}

	outShape := make([]int, len(shape))
	copy(outShape, shape)
	if keepDims {
		outShape[axis] = 1
	} else {
		outShape = append(outShape[:axis], outShape[axis+1:]...)
	}

	strides := rowMajorStrides(shape)
	groupCount := tensor.Size(shape) / shape[axis]
	values := make([]float64, groupCount)
	indices := make([]float64, groupCount)
	idx := make([]int, len(shape))
	outFlat := 0
	err = walkExceptAxis(shape, axis, idx, func() {
		base := 0
		for i, v := range idx {
			if i == axis {
				continue
			}
			base += v * strides[i]
		}
		best := r.init
		bestIdx := 0
		for k := 0; k < shape[axis]; k++ {
			v := info.ReArr[base+k*strides[axis]]
			if k == 0 || r.better(best, v) {
				best = v
				bestIdx = k
			}
		}
		values[outFlat] = best
		indices[outFlat] = float64(bestIdx)
		outFlat++
	})
	if err != nil {
		return nil, err
	}

	valT, err := tensor.FromFlat(values, dtype.Float64)
	if err != nil {
		return nil, err
	}
	valT, err = valT.Reshape(outShape)
	if err != nil {
		return nil, err
	}
	idxT, err := tensor.FromFlat(indices, dtype.Int32)
	if err != nil {
		return nil, err
	}
	idxT, err = idxT.Reshape(outShape)
	if err != nil {
		return nil, err
	}
	return &IndexedReductionResult{Values: valT, Indices: idxT}, nil
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return strides
}

// walkExceptAxis visits every combination of indices for axes other than
// skip, in row-major order, calling visit with idx[skip] left at 0.
func walkExceptAxis(shape []int, skip int, idx []int, visit func()) error {
	return walkExceptAxisAt(shape, skip, 0, idx, visit)
}

func walkExceptAxisAt(shape []int, skip, depth int, idx []int, visit func()) error {
	if depth == len(shape) {
		visit()
		return nil
	}
	if depth == skip {
		idx[depth] = 0
		return walkExceptAxisAt(shape, skip, depth+1, idx, visit)
	}
	for v := 0; v < shape[depth]; v++ {
		idx[depth] = v
		if err := walkExceptAxisAt(shape, skip, depth+1, idx, visit); err != nil {
			return err
		}
	}
	return nil
}
