package kernel

import "github.com/morriswmz/jasmal/jerr"

// broadcastShapes applies NumPy-style right-aligned broadcasting to two
// shapes, per spec.md section 4.6: shapes are right-aligned, missing
// leading axes act as size 1, and each axis pair must either match or have
// one side equal to 1. Returns the broadcast shape plus, for each operand,
// the stride-compatible "view shape" (same rank as the result, with 1s
// where that operand is stretched) used to drive index translation.
func broadcastShapes(a, b []int) (out, va, vb []int, err error) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out = make([]int, n)
	va = make([]int, n)
	vb = make([]int, n)
	for i := 0; i < n; i++ {
		da := dimAt(a, i, n)
		db := dimAt(b, i, n)
		va[n-1-i] = da
		vb[n-1-i] = db
		switch {
		case da == db:
			out[n-1-i] = da
		case da == 1:
			out[n-1-i] = db
		case db == 1:
			out[n-1-i] = da
		default:
			return nil, nil, nil, jerr.Shapef("cannot broadcast shapes %v and %v", a, b)
		}
	}
	return out, va, vb, nil
}

// dimAt returns shape[len(shape)-1-i] (right-aligned, counting axes from
// the trailing end) or 1 if i runs past the shape's own rank -- the missing
// leading axes a shorter operand is implicitly padded with.
func dimAt(shape []int, i, n int) int {
	if i >= len(shape) {
		return 1
	}
	return shape[len(shape)-1-i]
}

// broadcastOffset maps a position in the output shape to a flat offset in
// an operand of shape viewShape (row-major, stretched axes held at 0).
func broadcastOffset(indices []int, viewShape []int) int {
	offset := 0
	stride := 1
	for i := len(viewShape) - 1; i >= 0; i-- {
		dim := viewShape[i]
		idx := indices[i]
		if dim == 1 {
			idx = 0
		}
		offset += idx * stride
		stride *= dim
	}
	return offset
}

func productShape(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// indexAt converts a flat row-major offset within shape into its index
// tuple.
func indexAt(flat int, shape []int, out []int) {
	for i := len(shape) - 1; i >= 0; i-- {
		d := shape[i]
		if d == 0 {
			out[i] = 0
			continue
		}
		out[i] = flat % d
		flat /= d
	}
}
