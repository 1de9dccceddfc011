package index

import (
	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/jerr"
	"github.com/morriswmz/jasmal/tensor"
)

// Predicate selects elements by real/imaginary value, used in the
// single-argument predicate form of fancy indexing.
type Predicate func(re, im float64) bool

// axisSpec records whether the parsed iterator for one axis came from a
// bare integer (ConstantIterator), which controls squeeze behavior on read.
type axisSpec struct {
	it       Iterator
	constant bool
}

// parseArgs parses a tuple of up to D arguments (D == len(shape)) into one
// Iterator per axis, applying the rules of spec.md section 4.5. A single
// logic-mask argument matching the FULL shape is treated as a whole-tensor
// selector and returns exactly one axisSpec covering the flattened tensor.
// Predicates are not parsed here; Get and Set handle a single predicate
// argument before calling parseArgs.
func parseArgs(shape []int, args []any) ([]axisSpec, bool, error) {
	if len(args) == 1 {
		if mask, ok := args[0].(*tensor.Tensor); ok && mask.DType() == dtype.Logic && tensor.EqualShapes(mask.Shape(), shape) {
			return []axisSpec{maskAxis(mask)}, true, nil
		}
	}

	if len(args) != len(shape) {
		return nil, false, jerr.Shapef("indexer: expected %d axis arguments, got %d", len(shape), len(args))
	}
	specs := make([]axisSpec, len(args))
	for axis, arg := range args {
		spec, err := parseAxisArg(arg, shape[axis])
		if err != nil {
			return nil, false, jerr.IndexOperandf(itoaAxis(axis), "%v", err)
		}
		specs[axis] = spec
	}
	return specs, false, nil
}

func parseAxisArg(arg any, length int) (axisSpec, error) {
	switch v := arg.(type) {
	case int:
		idx := normalizeIndex(v, length)
		if idx < 0 || idx >= length {
			return axisSpec{}, jerr.Indexf("index %d out of bounds for axis of length %d", v, length)
		}
		return axisSpec{it: NewConstant(idx), constant: true}, nil
	case string:
		it, err := ParseSlice(v, length)
		if err != nil {
			return axisSpec{}, err
		}
		_, isConst := it.(*Constant)
		return axisSpec{it: it, constant: isConst}, nil
	case []int:
		idxs, err := normalizeAndCheck(v, length)
		if err != nil {
			return axisSpec{}, err
		}
		return axisSpec{it: NewArrayBacked(idxs)}, nil
	case *tensor.Tensor:
		return tensorAxisArg(v, length)
	default:
		return axisSpec{}, jerr.Indexf("unsupported index argument type %T", arg)
	}
}

func tensorAxisArg(v *tensor.Tensor, length int) (axisSpec, error) {
	if v.DType() == dtype.Logic {
		if v.NDim() != 1 || v.Shape()[0] != length {
			return axisSpec{}, jerr.Shapef("logic mask shape %v does not match axis length %d", v.Shape(), length)
		}
		return maskAxis(v), nil
	}
	data := v.RealData()
	idxs := make([]int, len(data))
	for i, f := range data {
		if f != float64(int(f)) {
			return axisSpec{}, jerr.Indexf("non-integer index %v at position %d", f, i)
		}
		idxs[i] = int(f)
	}
	normalized, err := normalizeAndCheck(idxs, length)
	if err != nil {
		return axisSpec{}, err
	}
	return axisSpec{it: NewArrayBacked(normalized)}, nil
}

func maskAxis(mask *tensor.Tensor) axisSpec {
	data := mask.RealData()
	var selected []int
	for i, v := range data {
		if v != 0 {
			selected = append(selected, i)
		}
	}
	return axisSpec{it: NewArrayBacked(selected)}
}

func normalizeAndCheck(raw []int, length int) ([]int, error) {
	out := make([]int, len(raw))
	for i, v := range raw {
		idx := normalizeIndex(v, length)
		if idx < 0 || idx >= length {
			return nil, jerr.Indexf("index %d out of bounds for axis of length %d", v, length)
		}
		out[i] = idx
	}
	return out, nil
}

func itoaAxis(axis int) string {
	return "axis" + itoaSimple(axis)
}

func itoaSimple(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
