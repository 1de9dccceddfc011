package complexscalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplex_Div_Smith(t *testing.T) {
	z := New(1, 2)
	w := New(3, -4)
	got := z.Div(w)
	want := New(-0.2, 0.4)
	require.InDelta(t, want.Re, got.Re, 1e-12)
	require.InDelta(t, want.Im, got.Im, 1e-12)
}

func TestComplex_Div_LargeRatio(t *testing.T) {
	// Exercises the branch where |im(w)| > |re(w)|: rescale on w.Re/w.Im.
	z := New(1, 0)
	w := New(1e-200, 1e200)
	got := z.Div(w)
	require.False(t, math.IsNaN(got.Re))
	require.False(t, math.IsInf(got.Re, 0))
}

func TestComplex_Norm_Overflow(t *testing.T) {
	z := New(3e200, 4e200)
	got := z.Norm()
	require.InDelta(t, 5e200, got, 1e188)
}

func TestComplex_Sqrt_NegativeReal(t *testing.T) {
	// S4 scenario from spec.md: sqrt(-4) == (0, 2).
	got := New(-4, 0).Sqrt()
	require.InDelta(t, 0, got.Re, 1e-12)
	require.InDelta(t, 2, got.Im, 1e-12)
}

func TestComplex_Sqrt_Zero(t *testing.T) {
	got := New(0, 0).Sqrt()
	require.Equal(t, Complex{0, 0}, got)
}

func TestComplex_NonFinitePropagation(t *testing.T) {
	z := New(math.NaN(), 1)
	got := z.Exp()
	require.True(t, math.IsNaN(got.Re))
	require.True(t, math.IsNaN(got.Im))
}

func TestComplex_Pow_RealFastPath(t *testing.T) {
	got := New(2, 0).Pow(New(3, 0))
	require.InDelta(t, 8, got.Re, 1e-12)
	require.InDelta(t, 0, got.Im, 1e-12)
}

func TestComplex_Pow_NegativeBaseIntegerExponent(t *testing.T) {
	got := New(-2, 0).Pow(New(2, 0))
	require.InDelta(t, 4, got.Re, 1e-9)
	require.InDelta(t, 0, got.Im, 1e-9)
}

func TestComplex_TrigRoundTrip(t *testing.T) {
	z := New(0.3, 0.7)
	got := z.Sin().Asin()
	require.InDelta(t, z.Re, got.Re, 1e-9)
	require.InDelta(t, z.Im, got.Im, 1e-9)
}

func TestComplex_Conj_Inv(t *testing.T) {
	z := New(3, 4)
	require.Equal(t, Complex{3, -4}, z.Conj())
	inv := z.Inv()
	one := z.Mul(inv)
	require.InDelta(t, 1, one.Re, 1e-12)
	require.InDelta(t, 0, one.Im, 1e-12)
}
