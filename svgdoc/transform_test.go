package svgdoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTransform(t *testing.T) {
	m, err := ParseTransform("matrix(2 0 0 3 10 20)")
	require.NoError(t, err)
	require.Equal(t, Matrix{A: 2, B: 0, C: 0, D: 3, E: 10, F: 20}, m)
}

func TestParseTransform_Malformed(t *testing.T) {
	_, err := ParseTransform("translate(1 2)")
	require.Error(t, err)

	_, err = ParseTransform("matrix(1 2 3)")
	require.Error(t, err)
}

func TestMatrix_ApplyInverseAxisAligned(t *testing.T) {
	m := Matrix{A: 2, B: 0, C: 0, D: 3, E: 10, F: 20}
	x, y := m.Apply(5, 4)
	require.Equal(t, 20.0, x)
	require.Equal(t, 32.0, y)

	nx, ny, ok := m.Inverse(x, y)
	require.True(t, ok)
	require.InDelta(t, 5, nx, 1e-9)
	require.InDelta(t, 4, ny, 1e-9)
}

func TestMatrix_ApplyInverseGeneral(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	x, y := m.Apply(7, 8)

	nx, ny, ok := m.Inverse(x, y)
	require.True(t, ok)
	require.InDelta(t, 7, nx, 1e-9)
	require.InDelta(t, 8, ny, 1e-9)
}

func TestMatrix_InverseUndefined(t *testing.T) {
	// a is zero (so the general branch is skipped) but b and c are not both
	// zero (so the axis-aligned branch doesn't apply either).
	m := Matrix{A: 0, B: 1, C: 2, D: 1, E: 1, F: 1}
	_, _, ok := m.Inverse(1, 1)
	require.False(t, ok)
}
