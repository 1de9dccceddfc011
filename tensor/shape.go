package tensor

import (
	"fmt"
	"slices"

	"github.com/morriswmz/jasmal/jerr"
)

// Strides computes row-major strides for shape: stride[D-1] = 1, stride[k] =
// stride[k+1] * shape[k+1]. Ported from the teacher's ArrayType.Strides,
// generalized from axis lengths to this engine's shape vector.
func Strides(shape []int) []int {
	n := len(shape)
	strides := make([]int, n)
	if n == 0 {
		return strides
	}
	current := 1
	for axis := n - 1; axis >= 0; axis-- {
		strides[axis] = current
		current *= shape[axis]
	}
	return strides
}

// Size returns the product of all axis lengths (1 for a 0-axis shape).
func Size(shape []int) int {
	size := 1
	for _, n := range shape {
		size *= n
	}
	return size
}

// ShapeString renders a shape the way the teacher renders an ArrayType.
func ShapeString(shape []int) string { return fmt.Sprintf("%v", shape) }

// EqualShapes reports whether two shapes describe the same axis lengths.
func EqualShapes(a, b []int) bool { return slices.Equal(a, b) }

// offsetOf returns the flat row-major offset of indices under strides.
// Callers are expected to have already bounds-checked indices.
func offsetOf(indices, strides []int) int {
	offset := 0
	for axis, idx := range indices {
		offset += idx * strides[axis]
	}
	return offset
}

// strideCache memoizes Strides() keyed by the shape's string form
// (ShapeString). It is a pure function of shape, lazily populated, never
// invalidated -- mirroring the "global cached offset-calculator map keyed by
// dimension count" called out in spec.md section 9, reimplemented here as a
// process-wide memo over the shape itself (safe because the key is the
// shape's value: a Reshape simply looks up a different entry).
var strideCache = map[string][]int{}

func cachedStrides(shape []int) []int {
	key := ShapeString(shape)
	if s, ok := strideCache[key]; ok {
		return s
	}
	s := Strides(shape)
	strideCache[key] = s
	return s
}

func validateShape(shape []int, operand string) error {
	for i, n := range shape {
		if n < 0 {
			return jerr.ShapeOperandf(operand, "shape %v has negative axis length at position %d", shape, i)
		}
	}
	return nil
}
