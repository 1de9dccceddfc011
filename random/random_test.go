package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniform_ShapeAndRange(t *testing.T) {
	g := NewSeeded(42)
	tn, err := g.Uniform([]int{2, 3}, 0, 1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, tn.Shape())
	for _, v := range tn.RealData() {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestUniform_Deterministic_SameSeedSameDraws(t *testing.T) {
	a := NewSeeded(7).mustUniform(t, []int{5})
	b := NewSeeded(7).mustUniform(t, []int{5})
	require.Equal(t, a, b)
}

func (g *Generator) mustUniform(t *testing.T, shape []int) []float64 {
	t.Helper()
	tn, err := g.Uniform(shape, 0, 1)
	require.NoError(t, err)
	return tn.RealData()
}

func TestUniform_InvalidRange_Errors(t *testing.T) {
	g := NewSeeded(1)
	_, err := g.Uniform([]int{2}, 1, 1)
	require.Error(t, err)
}

func TestNormal_NegativeStddev_Errors(t *testing.T) {
	g := NewSeeded(1)
	_, err := g.Normal([]int{2}, 0, -1)
	require.Error(t, err)
}

func TestNew_UsesPlatformEntropy(t *testing.T) {
	g, err := New()
	require.NoError(t, err)
	require.NotNil(t, g)
}
