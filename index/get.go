package index

import (
	"github.com/morriswmz/jasmal/complexscalar"
	"github.com/morriswmz/jasmal/tensor"
)

// Result is what Get returns: either a sub-tensor or, when the selection
// squeezes to zero dimensions, a boxed scalar value (ComplexScalar when the
// underlying element is numerically complex, else a plain float64).
type Result struct {
	Tensor *tensor.Tensor
	Scalar *complexscalar.Complex
	Real   *float64
}

// Get implements the read half of fancy indexing (spec.md section 4.5).
// args is the parsed argument tuple; keepDims controls whether axes
// selected via a bare integer (ConstantIterator) are squeezed out of the
// result shape.
func Get(t *tensor.Tensor, args []any, keepDims bool) (*Result, error) {
	if len(args) == 1 {
		if pred, ok := args[0].(Predicate); ok {
			return getByPredicate(t, pred)
		}
	}

	specs, whole, err := parseArgs(t.Shape(), args)
	if err != nil {
		return nil, err
	}
	if whole {
		return getByMask(t, specs[0].it)
	}

	positions := make([][]int, len(specs))
	resultShape := make([]int, 0, len(specs))
	squeeze := make([]bool, len(specs))
	for axis, spec := range specs {
		positions[axis] = ToSlice(spec.it)
		if spec.constant && !keepDims {
			squeeze[axis] = true
			continue
		}
		resultShape = append(resultShape, len(positions[axis]))
	}

	flatOut := make([]float64, 0, productOf(positions))
	var flatOutIm []float64
	hasComplex := t.HasComplexStorage()
	if hasComplex {
		flatOutIm = make([]float64, 0, cap(flatOut))
	}

	err = walkPositions(positions, func(indices []int) error {
		el, err := t.GetEl(indices)
		if err != nil {
			return err
		}
		flatOut = append(flatOut, el.Re)
		if hasComplex {
			flatOutIm = append(flatOutIm, el.Im)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(resultShape) == 0 {
		if hasComplex && flatOutIm[0] != 0 {
			z := complexscalar.New(flatOut[0], flatOutIm[0])
			return &Result{Scalar: &z}, nil
		}
		v := flatOut[0]
		return &Result{Real: &v}, nil
	}

	out, err := tensor.FromFlat(flatOut, t.DType())
	if err != nil {
		return nil, err
	}
	if hasComplex {
		imTensor, err := tensor.FromFlat(flatOutIm, t.DType())
		if err != nil {
			return nil, err
		}
		out, err = tensor.Complex(out, imTensor)
		if err != nil {
			return nil, err
		}
	}
	out, err = out.Reshape(resultShape)
	if err != nil {
		return nil, err
	}
	return &Result{Tensor: out}, nil
}

func productOf(positions [][]int) int {
	n := 1
	for _, p := range positions {
		n *= len(p)
	}
	return n
}

// walkPositions performs the nested odometer walk over the cartesian
// product of positions, calling visit with each full index tuple in
// row-major order. Trailing singleton axes collapse naturally since their
// positions slice has length 1, giving the "trailing offset fold" effect
// described in spec.md section 4.5 without a separate code path.
func walkPositions(positions [][]int, visit func(indices []int) error) error {
	idx := make([]int, len(positions))
	return walkPositionsAt(positions, 0, idx, visit)
}

func walkPositionsAt(positions [][]int, depth int, idx []int, visit func(indices []int) error) error {
	if depth == len(positions) {
		return visit(idx)
	}
	for _, p := range positions[depth] {
		idx[depth] = p
		if err := walkPositionsAt(positions, depth+1, idx, visit); err != nil {
			return err
		}
	}
	return nil
}

func getByMask(t *tensor.Tensor, it Iterator) (*Result, error) {
	offsets := ToSlice(it)
	flatOut := make([]float64, 0, len(offsets))
	var flatOutIm []float64
	hasComplex := t.HasComplexStorage()
	if hasComplex {
		flatOutIm = make([]float64, 0, len(offsets))
	}
	for _, off := range offsets {
		el, err := t.GetElFlat(off)
		if err != nil {
			return nil, err
		}
		flatOut = append(flatOut, el.Re)
		if hasComplex {
			flatOutIm = append(flatOutIm, el.Im)
		}
	}
	if len(flatOut) == 1 {
		if hasComplex && flatOutIm[0] != 0 {
			z := complexscalar.New(flatOut[0], flatOutIm[0])
			return &Result{Scalar: &z}, nil
		}
		v := flatOut[0]
		return &Result{Real: &v}, nil
	}
	out, err := tensor.FromFlat(flatOut, t.DType())
	if err != nil {
		return nil, err
	}
	if hasComplex {
		imTensor, err := tensor.FromFlat(flatOutIm, t.DType())
		if err != nil {
			return nil, err
		}
		out, err = tensor.Complex(out, imTensor)
		if err != nil {
			return nil, err
		}
	}
	return &Result{Tensor: out}, nil
}

func getByPredicate(t *tensor.Tensor, pred Predicate) (*Result, error) {
	n := t.Size()
	var offsets []int
	for i := 0; i < n; i++ {
		el, err := t.GetElFlat(i)
		if err != nil {
			return nil, err
		}
		if pred(el.Re, el.Im) {
			offsets = append(offsets, i)
		}
	}
	return getByMask(t, NewArrayBacked(offsets))
}
