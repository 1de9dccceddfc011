package dtype

// Policy decides the result dtype for an operation given the dtype and
// complexity ("is this operand numerically complex") of its operand(s). A
// unary policy ignores y; a binary policy uses both pairs. Returning ok ==
// false means the operation is unavailable for that combination of inputs
// and MUST surface as a jerr.DType error to the caller — the engine
// never silently falls back to a default dtype.
type Policy func(xDType DType, xComplex bool, yDType DType, yComplex bool) (DType, bool)

// WiderPolicy returns the wider of the two operand dtypes, widening LOGIC to
// INT32 to FLOAT64; two LOGIC operands give LOGIC. (The ops package's
// Add/Sub/Mul use WiderWithLogicToIntPolicy instead.)
func WiderPolicy(x DType, xComplex bool, y DType, yComplex bool) (DType, bool) {
	if !x.Valid() || !y.Valid() {
		return Invalid, false
	}
	return Wider(x, y), true
}

// ToFloat64Policy always promotes to FLOAT64, for operations like division
// or transcendental functions that are never exact over integers.
func ToFloat64Policy(x DType, xComplex bool, y DType, yComplex bool) (DType, bool) {
	if !x.Valid() {
		return Invalid, false
	}
	return Float64, true
}

// OnlyLogicToFloat64Policy promotes LOGIC to FLOAT64 and otherwise leaves the
// dtype unchanged; used by ops (e.g. unary minus) that are undefined on
// LOGIC but should otherwise be dtype-preserving.
func OnlyLogicToFloat64Policy(x DType, xComplex bool, y DType, yComplex bool) (DType, bool) {
	if !x.Valid() {
		return Invalid, false
	}
	if x == Logic {
		return Float64, true
	}
	return x, true
}

// ToLogicPolicy always produces LOGIC, for comparison/predicate operations.
func ToLogicPolicy(x DType, xComplex bool, y DType, yComplex bool) (DType, bool) {
	if !x.Valid() || !y.Valid() {
		return Invalid, false
	}
	return Logic, true
}

// NoChangePolicy leaves the first operand's dtype untouched. No op in this
// module uses it; Reshape and the other structural tensor methods keep the
// dtype without consulting a policy.
func NoChangePolicy(x DType, xComplex bool, y DType, yComplex bool) (DType, bool) {
	if !x.Valid() {
		return Invalid, false
	}
	return x, true
}

// WiderWithLogicToIntPolicy widens like WiderPolicy, but first promotes any
// LOGIC operand to INT32 before widening — used by ops where a bare boolean
// result (LOGIC) would be surprising (e.g. arithmetic over masks).
func WiderWithLogicToIntPolicy(x DType, xComplex bool, y DType, yComplex bool) (DType, bool) {
	if !x.Valid() || !y.Valid() {
		return Invalid, false
	}
	if x == Logic {
		x = Int32
	}
	if y == Logic {
		y = Int32
	}
	return Wider(x, y), true
}
