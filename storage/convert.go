package storage

import (
	"math"

	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/jerr"
)

// GetFloat64 reads the element at offset as a float64, regardless of the
// storage's native dtype. This is the common read path used by the kernel
// framework's per-dtype loops when it needs a generic numeric view.
func (s *Storage) GetFloat64(offset int) float64 {
	switch s.DType {
	case dtype.Logic:
		if s.logic[offset] != 0 {
			return 1
		}
		return 0
	case dtype.Int32:
		return float64(s.int32s[offset])
	case dtype.Float64:
		return s.float64s[offset]
	default:
		return 0
	}
}

// SetFloat64 writes v at offset, converting to the storage's native dtype.
// For LOGIC it coerces through SetAsLogicUnchecked without checking; the
// checked path that rejects non-finite values (INVALID_DTYPE_CONVERSION) is
// Storage.SetLogicFromFloat64. SetFloat64 itself never fails.
func (s *Storage) SetFloat64(offset int, v float64) {
	switch s.DType {
	case dtype.Logic:
		s.SetAsLogicUnchecked(offset, v)
	case dtype.Int32:
		s.int32s[offset] = int32(v)
	case dtype.Float64:
		s.float64s[offset] = v
	}
}

// SetAsLogicUnchecked coerces any finite real number to {0,1} for the LOGIC
// dtype: zero maps to 0, anything else (including NaN-free non-zero and
// negative values) maps to 1. "Unchecked" means it does not itself reject
// non-finite/complex input — that validation lives in SetLogicFromFloat64,
// which callers converting from an arbitrary dtype should prefer.
func (s *Storage) SetAsLogicUnchecked(offset int, v float64) {
	if v != 0 {
		s.logic[offset] = 1
	} else {
		s.logic[offset] = 0
	}
}

// SetLogicFromFloat64 is the checked counterpart of SetAsLogicUnchecked: it
// rejects non-finite input with INVALID_DTYPE_CONVERSION, per spec section
// 4.1.
func (s *Storage) SetLogicFromFloat64(offset int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return jerr.DTypef("cannot convert non-finite value %v to LOGIC", v)
	}
	s.SetAsLogicUnchecked(offset, v)
	return nil
}

// FromFlat builds a new Storage of dtype dt from a generic flat real-valued
// slice. When dt == dtype.Logic, non-finite values are rejected with a
// DType error (INVALID_DTYPE_CONVERSION) via SetLogicFromFloat64.
func FromFlat(src []float64, dt dtype.DType) (*Storage, error) {
	out := Create(len(src), dt)
	for i, v := range src {
		if dt == dtype.Logic {
			if err := out.SetLogicFromFloat64(i, v); err != nil {
				return nil, err
			}
			continue
		}
		out.SetFloat64(i, v)
	}
	return out, nil
}
