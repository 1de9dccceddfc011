// Package input implements InputInfo (C4): the normalization layer that
// turns a heterogeneous user-facing input (a number, a ComplexScalar, a
// nested array, a flat typed slice, or a *tensor.Tensor) into a uniform
// view the kernel framework can drive. See spec.md section 4.3.
package input

import (
	"reflect"

	"github.com/morriswmz/jasmal/complexscalar"
	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/jerr"
	"github.com/morriswmz/jasmal/tensor"
)

// Info is the normalized view over one operand. ReArr/ImArr point at the
// underlying flattened buffers; for a *tensor.Tensor input with a FLOAT64
// real storage they genuinely alias the tensor's buffer (writes mutate the
// user's tensor), matching spec.md's "may alias" warning. For other native
// storage representations (INT32/LOGIC) or non-tensor inputs, ReArr/ImArr
// are freshly materialized float64 views since there is no underlying
// []float64 buffer to alias.
type Info struct {
	IsScalar          bool
	HasOnlyOneElement bool
	IsComplex         bool
	ReArr             []float64
	ImArr             []float64 // nil when the input carries no imaginary part
	OriginalShape     []int
	DType             dtype.DType
	Original          any

	// Re, Im are meaningful only when HasOnlyOneElement is true.
	Re, Im float64

	// Aliases is true when ReArr genuinely aliases the original tensor's
	// buffer (only possible for FLOAT64 *tensor.Tensor inputs).
	Aliases bool
}

// Normalize classifies value and builds its Info, per the five cases in
// spec.md section 4.3. Anything outside those five cases is rejected with
// an InvalidInput error ("UNSUPPORTED_INPUT").
func Normalize(value any) (*Info, error) {
	switch v := value.(type) {
	case *tensor.Tensor:
		return fromTensor(v)
	case complexscalar.Complex:
		return fromComplexScalar(v), nil
	case int, int32, int64, float32, float64:
		return fromNumber(v), nil
	}

	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return nil, jerr.InvalidInputf("unsupported input: nil")
	}
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if isNested(rv) {
			return fromNested(value)
		}
		return fromFlatArray(rv)
	}
	return nil, jerr.InvalidInputf("unsupported input type %T", value)
}

func fromNumber(v any) *Info {
	f := toFloat64(v)
	return &Info{
		IsScalar:          true,
		HasOnlyOneElement: true,
		ReArr:             []float64{f},
		OriginalShape:     []int{1},
		DType:             dtype.Float64,
		Original:          v,
		Re:                f,
	}
}

func fromComplexScalar(z complexscalar.Complex) *Info {
	info := &Info{
		IsScalar:          true,
		HasOnlyOneElement: true,
		IsComplex:         z.Im != 0,
		ReArr:             []float64{z.Re},
		OriginalShape:     []int{1},
		DType:             dtype.Float64,
		Original:          z,
		Re:                z.Re,
		Im:                z.Im,
	}
	if z.Im != 0 {
		info.ImArr = []float64{z.Im}
	}
	return info
}

func fromTensor(t *tensor.Tensor) (*Info, error) {
	info := &Info{
		IsScalar:          t.IsScalar(),
		HasOnlyOneElement: t.IsScalar(),
		IsComplex:         t.HasNonzeroComplexStorage(),
		OriginalShape:     t.Shape(),
		DType:             t.DType(),
		Original:          t,
	}
	if t.DType() == dtype.Float64 {
		info.ReArr = t.RealStorage().Float64s()
		info.Aliases = true
		if t.HasComplexStorage() {
			info.ImArr = t.ImagStorage().Float64s()
		}
	} else {
		info.ReArr = t.RealData()
		if t.HasComplexStorage() {
			imagData, err := t.ImagData()
			if err != nil {
				return nil, err
			}
			info.ImArr = imagData
		}
	}
	if info.HasOnlyOneElement {
		info.Re = info.ReArr[0]
		if info.ImArr != nil {
			info.Im = info.ImArr[0]
		}
	}
	return info, nil
}

func fromFlatArray(rv reflect.Value) (*Info, error) {
	n := rv.Len()
	re := make([]float64, n)
	dt := dtype.Float64
	allIntegral := n > 0
	for i := 0; i < n; i++ {
		elem := rv.Index(i).Interface()
		f, isInt, err := numericToFloat64(elem)
		if err != nil {
			return nil, jerr.InvalidInputf("unsupported flat array element type %T at position %d", elem, i)
		}
		if !isInt {
			allIntegral = false
		}
		re[i] = f
	}
	if allIntegral {
		dt = dtype.Int32
	}
	info := &Info{
		IsScalar:          false,
		HasOnlyOneElement: n == 1,
		ReArr:             re,
		OriginalShape:     []int{n},
		DType:             dt,
		Original:          rv.Interface(),
	}
	if info.HasOnlyOneElement {
		info.Re = re[0]
	}
	return info, nil
}

func fromNested(value any) (*Info, error) {
	t, err := tensor.FromNested(value, dtype.Float64)
	if err != nil {
		return nil, err
	}
	info, err := fromTensor(t)
	if err != nil {
		return nil, err
	}
	info.Original = value
	return info, nil
}

// isNested reports whether rv's first element is itself a slice/array, the
// detection rule spec.md section 4.3 prescribes for "nested array".
func isNested(rv reflect.Value) bool {
	if rv.Len() == 0 {
		return false
	}
	k := rv.Index(0).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func toFloat64(v any) float64 {
	f, _, _ := numericToFloat64(v)
	return f
}

func numericToFloat64(v any) (f float64, isIntegral bool, err error) {
	switch x := v.(type) {
	case float64:
		return x, false, nil
	case float32:
		return float64(x), false, nil
	case int:
		return float64(x), true, nil
	case int32:
		return float64(x), true, nil
	case int64:
		return float64(x), true, nil
	case bool:
		if x {
			return 1, true, nil
		}
		return 0, true, nil
	default:
		return 0, false, jerr.InvalidInputf("unsupported numeric type %T", v)
	}
}
