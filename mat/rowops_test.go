// Package mat_test contains unit tests for the row-operation primitives
// and their interaction with the sticky compute cache. The primitives
// are reached through the white-box hooks in export_test.go.
package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/mat"
	"github.com/katalvlaran/lvlmat/scalar"
)

// TestRowSwap verifies the exchange, the self-swap no-op, and bounds.
func TestRowSwap(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]scalar.Real{{1, 2}, {3, 4}, {5, 6}})

	require.NoError(t, m.RowSwap(0, 2))
	require.True(t, mat.Equal[scalar.Real](m, mustDense(t, [][]scalar.Real{{5, 6}, {3, 4}, {1, 2}})))

	// Swapping a row with itself leaves the matrix unchanged.
	require.NoError(t, m.RowSwap(1, 1))
	require.True(t, mat.Equal[scalar.Real](m, mustDense(t, [][]scalar.Real{{5, 6}, {3, 4}, {1, 2}})))

	require.ErrorIs(t, m.RowSwap(0, 3), mat.ErrOutOfBounds)
	require.ErrorIs(t, m.RowSwap(-1, 0), mat.ErrOutOfBounds)
}

// TestRowSwapSingleRow pins the 1-row degenerate case.
func TestRowSwapSingleRow(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]scalar.Real{{1, 2, 3}})

	require.NoError(t, m.RowSwap(0, 0))
	require.True(t, mat.Equal[scalar.Real](m, mustDense(t, [][]scalar.Real{{1, 2, 3}})))
}

// TestRowScale verifies in-place scaling and bounds.
func TestRowScale(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]scalar.Real{{1, 2}, {3, 4}})

	require.NoError(t, m.RowScale(1, 0.5))
	require.True(t, mat.Equal[scalar.Real](m, mustDense(t, [][]scalar.Real{{1, 2}, {1.5, 2}})))

	require.ErrorIs(t, m.RowScale(2, 1), mat.ErrOutOfBounds)
}

// TestRowAdd verifies row accumulation with a multiplier, including the
// r1 == r2 aliasing case (row doubles rather than runs away).
func TestRowAdd(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]scalar.Real{{1, 2}, {10, 20}})

	// row0 += 2·row1
	require.NoError(t, m.RowAdd(0, 1, 2))
	require.True(t, mat.Equal[scalar.Real](m, mustDense(t, [][]scalar.Real{{21, 42}, {10, 20}})))

	// row1 += 1·row1 doubles it exactly once.
	require.NoError(t, m.RowAdd(1, 1, 1))
	require.True(t, mat.Equal[scalar.Real](m, mustDense(t, [][]scalar.Real{{21, 42}, {20, 40}})))

	require.ErrorIs(t, m.RowAdd(0, 5, 1), mat.ErrOutOfBounds)
}

// TestRowOpsInvalidateCache ensures each primitive clears every sticky
// bit, because each goes through Set.
func TestRowOpsInvalidateCache(t *testing.T) {
	t.Parallel()

	prime := func(t *testing.T) *mat.Dense[scalar.Real] {
		t.Helper()
		m := mustDense(t, [][]scalar.Real{{2, 0}, {0, 3}})
		_ = m.Diag()
		_, err := m.Det()
		require.NoError(t, err)
		_, err = m.Inv()
		require.NoError(t, err)
		require.Equal(t, mat.CacheDiagBit|mat.CacheDetBit|mat.CacheInvBit, m.CacheMask())

		return m
	}

	t.Run("rowSwap", func(t *testing.T) {
		m := prime(t)
		require.NoError(t, m.RowSwap(0, 1))
		require.Equal(t, uint8(0), m.CacheMask())
	})

	t.Run("rowScale", func(t *testing.T) {
		m := prime(t)
		require.NoError(t, m.RowScale(0, 2))
		require.Equal(t, uint8(0), m.CacheMask())
	})

	t.Run("rowAdd", func(t *testing.T) {
		m := prime(t)
		require.NoError(t, m.RowAdd(0, 1, 1))
		require.Equal(t, uint8(0), m.CacheMask())
	})
}

// TestRowScaleLeftMultiplication pins the multiplication side, which is
// observable with quaternion rows.
func TestRowScaleLeftMultiplication(t *testing.T) {
	t.Parallel()

	i := scalar.Quaternion{X: 1}
	j := scalar.Quaternion{Y: 1}

	m, err := mat.NewDenseFromRows([][]scalar.Quaternion{{j}})
	require.NoError(t, err)

	require.NoError(t, m.RowScale(0, i)) // i·j = k

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, v.Equal(scalar.Quaternion{Z: 1}))
}
