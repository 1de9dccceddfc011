// Package storage implements Storage (C1): a contiguous numeric buffer of a
// given dtype with a reference count, shared by reference equality.
// Mutation requires refcount == 1, enforced by EnsureUnshared, which
// performs a deep copy when the buffer is aliased by more than one tensor.
package storage

import (
	"github.com/morriswmz/jasmal/dtype"
	"github.com/pkg/errors"
)

// Storage owns a contiguous buffer for one of the engine's three dtypes plus
// a reference count. Logic values are stored as byte 0/1; Int32 as int32;
// Float64 as float64. Only one of the three slices is non-nil at a time.
type Storage struct {
	DType    dtype.DType
	logic    []byte
	int32s   []int32
	float64s []float64
	refcount int
}

// Empty is the process-wide, zero-length, reference-immortal sentinel used
// to represent "no imaginary part" on a real-only tensor. Its refcount
// operations are no-ops: Retain/Release never mutate it, matching the
// teacher's pattern of a singleton Invalid()/zero-value sentinel in
// atype.Invalid().
var Empty = &Storage{DType: dtype.Invalid, refcount: 1 << 30}

// IsEmpty reports whether s is the Empty sentinel.
func (s *Storage) IsEmpty() bool { return s == Empty }

// Create allocates a zero-initialized Storage of the given length and dtype.
func Create(length int, dt dtype.DType) *Storage {
	if length == 0 {
		return Empty
	}
	s := &Storage{DType: dt, refcount: 1}
	switch dt {
	case dtype.Logic:
		s.logic = make([]byte, length)
	case dtype.Int32:
		s.int32s = make([]int32, length)
	case dtype.Float64:
		s.float64s = make([]float64, length)
	default:
		panic(errors.Errorf("storage.Create: invalid dtype %s", dt))
	}
	return s
}

// Len returns the number of elements in the buffer.
func (s *Storage) Len() int {
	switch s.DType {
	case dtype.Logic:
		return len(s.logic)
	case dtype.Int32:
		return len(s.int32s)
	case dtype.Float64:
		return len(s.float64s)
	default:
		return 0
	}
}

// Retain increments the refcount; it is called whenever a tensor adopts a
// storage (including a second tensor sharing an existing one via a
// pointer-level reshape/copy).
func (s *Storage) Retain() {
	if s.IsEmpty() {
		return
	}
	s.refcount++
}

// Release decrements the refcount. The buffer itself is garbage collected by
// Go once unreferenced; Release exists so RefCount()/EnsureUnshared observe
// the correct sharing state, matching the spec's refcount model even though
// the host language doesn't require manual frees.
func (s *Storage) Release() {
	if s.IsEmpty() {
		return
	}
	if s.refcount > 0 {
		s.refcount--
	}
}

// RefCount returns the current reference count.
func (s *Storage) RefCount() int {
	if s.IsEmpty() {
		return s.refcount
	}
	return s.refcount
}

// Clone performs a deep copy of the buffer with a fresh refcount of 1.
func (s *Storage) Clone() *Storage {
	if s.IsEmpty() {
		return Empty
	}
	out := &Storage{DType: s.DType, refcount: 1}
	switch s.DType {
	case dtype.Logic:
		out.logic = append([]byte(nil), s.logic...)
	case dtype.Int32:
		out.int32s = append([]int32(nil), s.int32s...)
	case dtype.Float64:
		out.float64s = append([]float64(nil), s.float64s...)
	}
	return out
}

// EnsureUnshared returns a Storage safe to mutate in place: s itself if its
// refcount is 1, or a fresh Clone (with refcount 1) otherwise. A Clone
// already counts its new owner, so the caller adopts it without a further
// Retain; Release-ing the old reference is left to the caller.
func (s *Storage) EnsureUnshared() *Storage {
	if s.IsEmpty() || s.RefCount() <= 1 {
		return s
	}
	return s.Clone()
}

// Logic, Int32s and Float64s borrow the underlying typed buffer. Callers
// must not retain the slice beyond the Storage's lifetime without Retain-ing
// it, and must not write to it unless they have first called
// EnsureUnshared.
func (s *Storage) Logic() []byte      { return s.logic }
func (s *Storage) Int32s() []int32    { return s.int32s }
func (s *Storage) Float64s() []float64 { return s.float64s }
