package index

import (
	"github.com/morriswmz/jasmal/complexscalar"
	"github.com/morriswmz/jasmal/jerr"
	"github.com/morriswmz/jasmal/tensor"
)

// Set implements the write half of fancy indexing (spec.md section 4.5).
// value is either a scalar (complexscalar.Complex, float64, int) broadcast
// to every selected position, or a *tensor.Tensor whose shape -- possibly
// after squeezing trailing singleton dimensions -- matches the selected
// shape.
//
// Set always calls EnsureUnshared on both of t's storages before writing,
// per spec.md section 4.5, so the caller's other aliases are never mutated
// by surprise.
func Set(t *tensor.Tensor, args []any, value any) error {
	*t = *t.EnsureUnshared()

	if len(args) == 1 {
		if pred, ok := args[0].(Predicate); ok {
			return setByPredicate(t, pred, value)
		}
	}

	specs, whole, err := parseArgs(t.Shape(), args)
	if err != nil {
		return err
	}
	if whole {
		return setByMask(t, specs[0].it, value)
	}

	positions := make([][]int, len(specs))
	selectedShape := make([]int, len(specs))
	for axis, spec := range specs {
		positions[axis] = ToSlice(spec.it)
		selectedShape[axis] = len(positions[axis])
	}

	scalar, isScalar, err := asScalarValue(value)
	if isScalar {
		if err != nil {
			return err
		}
		return walkPositions(positions, func(indices []int) error {
			return t.SetEl(indices, scalar)
		})
	}

	values, err := flattenValueTensor(value, selectedShape)
	if err != nil {
		return err
	}
	i := 0
	return walkPositions(positions, func(indices []int) error {
		el := values[i]
		i++
		return t.SetEl(indices, el)
	})
}

func setByMask(t *tensor.Tensor, it Iterator, value any) error {
	offsets := ToSlice(it)
	scalar, isScalar, err := asScalarValue(value)
	if isScalar {
		if err != nil {
			return err
		}
		for _, off := range offsets {
			if err := t.SetElFlat(off, scalar); err != nil {
				return err
			}
		}
		return nil
	}
	values, err := flattenValueTensor(value, []int{len(offsets)})
	if err != nil {
		return err
	}
	for i, off := range offsets {
		if err := t.SetElFlat(off, values[i]); err != nil {
			return err
		}
	}
	return nil
}

func setByPredicate(t *tensor.Tensor, pred Predicate, value any) error {
	n := t.Size()
	var offsets []int
	for i := 0; i < n; i++ {
		el, err := t.GetElFlat(i)
		if err != nil {
			return err
		}
		if pred(el.Re, el.Im) {
			offsets = append(offsets, i)
		}
	}
	return setByMask(t, NewArrayBacked(offsets), value)
}

// asScalarValue recognizes the scalar forms accepted for broadcast writes.
func asScalarValue(value any) (complexscalar.Complex, bool, error) {
	switch v := value.(type) {
	case complexscalar.Complex:
		return v, true, nil
	case float64:
		return complexscalar.Real(v), true, nil
	case int:
		return complexscalar.Real(float64(v)), true, nil
	case int32:
		return complexscalar.Real(float64(v)), true, nil
	default:
		return complexscalar.Complex{}, false, nil
	}
}

// flattenValueTensor validates that value's shape matches selectedShape (up
// to squeezing trailing singleton dimensions) and returns its elements in
// row-major order.
func flattenValueTensor(value any, selectedShape []int) ([]complexscalar.Complex, error) {
	vt, ok := value.(*tensor.Tensor)
	if !ok {
		return nil, jerr.InvalidInputf("unsupported value type %T for indexed set", value)
	}
	if !shapeMatchesUpToTrailingSingletons(vt.Shape(), selectedShape) {
		return nil, jerr.Shapef("value shape %v does not match selected shape %v", vt.Shape(), selectedShape)
	}
	n := vt.Size()
	out := make([]complexscalar.Complex, n)
	for i := 0; i < n; i++ {
		el, err := vt.GetElFlat(i)
		if err != nil {
			return nil, err
		}
		out[i] = el
	}
	return out, nil
}

func shapeMatchesUpToTrailingSingletons(a, b []int) bool {
	trim := func(s []int) []int {
		i := len(s)
		for i > 0 && s[i-1] == 1 {
			i--
		}
		return s[:i]
	}
	ta, tb := trim(a), trim(b)
	if len(ta) != len(tb) {
		return false
	}
	for i := range ta {
		if ta[i] != tb[i] {
			return false
		}
	}
	return true
}
