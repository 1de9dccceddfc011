package tensor

import (
	"reflect"

	"github.com/morriswmz/jasmal/complexscalar"
	"github.com/morriswmz/jasmal/jerr"
)

// flattenNested walks a nested slice/array value (detected by "first element
// is itself a slice/array", per spec.md section 4.3) and returns its
// inferred shape plus a flattened real-valued buffer in row-major order.
// Ragged input is rejected with a shape-mismatch error naming the offending
// position, per spec.md section 4.3.
func flattenNested(value any) (shape []int, flat []float64, err error) {
	v := reflect.ValueOf(value)
	if err := inferShape(v, &shape, nil); err != nil {
		return nil, nil, err
	}
	flat = make([]float64, 0, Size(shape))
	if err := collectFlat(v, shape, &flat); err != nil {
		return nil, nil, err
	}
	return shape, flat, nil
}

func inferShape(v reflect.Value, shape *[]int, path []int) error {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil
	}
	n := v.Len()
	*shape = append(*shape, n)
	if n == 0 {
		return nil
	}
	return inferShape(v.Index(0), shape, append(path, 0))
}

func collectFlat(v reflect.Value, shape []int, out *[]float64) error {
	return collectFlatAt(v, shape, 0, nil, out)
}

func collectFlatAt(v reflect.Value, shape []int, depth int, position []int, out *[]float64) error {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if depth == len(shape) {
		f, err := toFloat64(v.Interface())
		if err != nil {
			return jerr.ShapeOperandf(formatPosition(position), "%v", err)
		}
		*out = append(*out, f)
		return nil
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return jerr.ShapeOperandf(formatPosition(position), "expected a nested array of depth %d, found scalar %v", len(shape), v.Interface())
	}
	if v.Len() != shape[depth] {
		return jerr.ShapeOperandf(formatPosition(append(position, -1)), "ragged array: axis %d has length %d, expected %d (inferred from first element)", depth, v.Len(), shape[depth])
	}
	for i := 0; i < v.Len(); i++ {
		if err := collectFlatAt(v.Index(i), shape, depth+1, append(position, i), out); err != nil {
			return err
		}
	}
	return nil
}

func formatPosition(position []int) string {
	if len(position) == 0 {
		return "root"
	}
	s := ""
	for i, p := range position {
		if i > 0 {
			s += ","
		}
		if p < 0 {
			s += "*"
		} else {
			s += itoa(p)
		}
	}
	return s
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
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

func toFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, jerr.InvalidInputf("unsupported nested-array element type %T", v)
	}
}

// ToNested converts the tensor back into a nested []any structure matching
// its shape. If realOnly is false and the tensor carries non-zero imaginary
// storage, leaf elements are complexscalar.Complex values; otherwise they
// are plain float64.
func (t *Tensor) ToNested(realOnly bool) any {
	complexOutput := !realOnly && t.HasNonzeroComplexStorage()
	return buildNested(t, t.shape, 0, 0, t.Strides(), complexOutput)
}

func buildNested(t *Tensor, shape []int, depth, offset int, strides []int, complexOutput bool) any {
	if depth == len(shape) {
		re := t.real.GetFloat64(offset)
		if complexOutput {
			im := 0.0
			if t.HasComplexStorage() {
				im = t.imag.GetFloat64(offset)
			}
			return complexscalar.New(re, im)
		}
		return re
	}
	n := shape[depth]
	out := make([]any, n)
	for i := 0; i < n; i++ {
		out[i] = buildNested(t, shape, depth+1, offset+i*strides[depth], strides, complexOutput)
	}
	return out
}
