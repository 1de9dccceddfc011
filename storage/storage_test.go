package storage

import (
	"math"
	"testing"

	"github.com/morriswmz/jasmal/dtype"
	"github.com/morriswmz/jasmal/jerr"
	"github.com/stretchr/testify/require"
)

func TestCreate_ZeroInitialized(t *testing.T) {
	s := Create(4, dtype.Float64)
	require.Equal(t, 4, s.Len())
	for _, v := range s.Float64s() {
		require.Zero(t, v)
	}
}

func TestCreate_ZeroLength_ReturnsEmpty(t *testing.T) {
	s := Create(0, dtype.Int32)
	require.True(t, s.IsEmpty())
	require.Same(t, Empty, s)
}

func TestEnsureUnshared_ClonesWhenShared(t *testing.T) {
	s := Create(3, dtype.Float64)
	s.Retain() // refcount now 2 as if two tensors adopted it
	unshared := s.EnsureUnshared()
	require.NotSame(t, s, unshared)
	require.Equal(t, 1, unshared.RefCount())
}

func TestEnsureUnshared_ReusesWhenUnique(t *testing.T) {
	s := Create(3, dtype.Float64)
	unshared := s.EnsureUnshared()
	require.Same(t, s, unshared)
}

func TestEnsureUnshared_Empty(t *testing.T) {
	require.Same(t, Empty, Empty.EnsureUnshared())
}

func TestSetLogicFromFloat64_RejectsNonFinite(t *testing.T) {
	s := Create(1, dtype.Logic)
	err := s.SetLogicFromFloat64(0, math.NaN())
	require.Error(t, err)
	require.True(t, jerr.Is(err, jerr.DType))
}

func TestSetAsLogicUnchecked_Coercion(t *testing.T) {
	s := Create(3, dtype.Logic)
	s.SetAsLogicUnchecked(0, 0)
	s.SetAsLogicUnchecked(1, -5)
	s.SetAsLogicUnchecked(2, 0.5)
	require.Equal(t, []byte{0, 1, 1}, s.Logic())
}

func TestFromFlat_Int32Truncates(t *testing.T) {
	s, err := FromFlat([]float64{1.9, -2.9, 3}, dtype.Int32)
	require.NoError(t, err)
	require.Equal(t, []int32{1, -2, 3}, s.Int32s())
}

func TestFromFlat_LogicRejectsInfinite(t *testing.T) {
	_, err := FromFlat([]float64{1, math.Inf(1)}, dtype.Logic)
	require.Error(t, err)
}

func TestClone_Independent(t *testing.T) {
	s := Create(2, dtype.Float64)
	s.SetFloat64(0, 1)
	clone := s.Clone()
	clone.SetFloat64(0, 2)
	require.Equal(t, 1.0, s.GetFloat64(0))
	require.Equal(t, 2.0, clone.GetFloat64(0))
}
