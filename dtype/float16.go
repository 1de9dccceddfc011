package dtype

import "github.com/x448/float16"

// NarrowestFloat16 converts a FLOAT64 buffer to the IEEE-754 binary16
// representation used by github.com/x448/float16. It is not part of the
// engine's closed {LOGIC, INT32, FLOAT64} dtype set — it exists purely as an
// export helper for domain collaborators (see package linalg) that hand
// tensor data to device code expecting half precision, the same role
// github.com/x448/float16 plays in the teacher's backend/atype/dtype.go.
func NarrowestFloat16(values []float64) []float16.Float16 {
	out := make([]float16.Float16, len(values))
	for i, v := range values {
		out[i] = float16.Fromfloat32(float32(v))
	}
	return out
}

// WidenFloat16 is the inverse of NarrowestFloat16.
func WidenFloat16(values []float16.Float16) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v.Float32())
	}
	return out
}
