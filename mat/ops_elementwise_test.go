// Package mat_test contains unit tests for the element-wise and
// multiplicative kernels.
package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/mat"
	"github.com/katalvlaran/lvlmat/scalar"
)

// TestAddSub covers both kernels on the Dense fast path and on the
// interface fallback (view operand), plus the shape errors.
func TestAddSub(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]scalar.Real{{1, 2}, {3, 4}})
	b := mustDense(t, [][]scalar.Real{{10, 20}, {30, 40}})

	sum, err := mat.Add[scalar.Real](a, b)
	require.NoError(t, err)
	require.True(t, mat.Equal[scalar.Real](sum, mustDense(t, [][]scalar.Real{{11, 22}, {33, 44}})))

	diff, err := mat.Sub[scalar.Real](b, a)
	require.NoError(t, err)
	require.True(t, mat.Equal[scalar.Real](diff, mustDense(t, [][]scalar.Real{{9, 18}, {27, 36}})))

	// Operands survive untouched.
	require.True(t, mat.Equal[scalar.Real](a, mustDense(t, [][]scalar.Real{{1, 2}, {3, 4}})))

	// View operand exercises the interface path; a is symmetric-shaped
	// only after transposing b's square layout, so use square inputs.
	viaView, err := mat.Add[scalar.Real](a, b.T())
	require.NoError(t, err)
	require.True(t, mat.Equal[scalar.Real](viaView, mustDense(t, [][]scalar.Real{{11, 32}, {23, 44}})))

	wide := mustDense(t, [][]scalar.Real{{1, 2, 3}, {4, 5, 6}})
	_, err = mat.Add[scalar.Real](a, wide)
	require.ErrorIs(t, err, mat.ErrBadDimensions)

	_, err = mat.Sub[scalar.Real](a, nil)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
}

// TestMul covers the product, inner-dimension validation and operation
// over views.
func TestMul(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]scalar.Real{{1, 2}, {3, 4}})
	b := mustDense(t, [][]scalar.Real{{5, 6}, {7, 8}})

	p, err := mat.Mul[scalar.Real](a, b)
	require.NoError(t, err)
	require.True(t, mat.Equal[scalar.Real](p, mustDense(t, [][]scalar.Real{{19, 22}, {43, 50}})))

	// (2×3)·(3×2) through a transpose view.
	wide := mustDense(t, [][]scalar.Real{{1, 2, 3}, {4, 5, 6}})
	q, err := mat.Mul[scalar.Real](wide, wide.T())
	require.NoError(t, err)
	require.True(t, mat.Equal[scalar.Real](q, mustDense(t, [][]scalar.Real{{14, 32}, {32, 77}})))

	_, err = mat.Mul[scalar.Real](wide, b)
	require.ErrorIs(t, err, mat.ErrBadDimensions)

	_, err = mat.Mul[scalar.Real](nil, b)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
}

// TestMulQuaternionOrder pins the left-operand-on-the-left convention,
// observable only with non-commutative scalars.
func TestMulQuaternionOrder(t *testing.T) {
	t.Parallel()

	i := scalar.Quaternion{X: 1}
	j := scalar.Quaternion{Y: 1}
	k := scalar.Quaternion{Z: 1}

	a, err := mat.NewDenseFromRows([][]scalar.Quaternion{{i}})
	require.NoError(t, err)
	b, err := mat.NewDenseFromRows([][]scalar.Quaternion{{j}})
	require.NoError(t, err)

	ij, err := mat.Mul[scalar.Quaternion](a, b)
	require.NoError(t, err)
	v, err := ij.At(0, 0)
	require.NoError(t, err)
	require.True(t, v.Equal(k)) // i·j = k

	ji, err := mat.Mul[scalar.Quaternion](b, a)
	require.NoError(t, err)
	v, err = ji.At(0, 0)
	require.NoError(t, err)
	require.True(t, v.Equal(k.Neg())) // j·i = -k
}

// TestScaleNeg covers scalar scaling and negation.
func TestScaleNeg(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]scalar.Real{{1, -2}, {3, 0}})

	s, err := mat.Scale[scalar.Real](a, 2)
	require.NoError(t, err)
	require.True(t, mat.Equal[scalar.Real](s, mustDense(t, [][]scalar.Real{{2, -4}, {6, 0}})))

	n, err := mat.Neg[scalar.Real](a)
	require.NoError(t, err)
	require.True(t, mat.Equal[scalar.Real](n, mustDense(t, [][]scalar.Real{{-1, 2}, {-3, 0}})))

	// Through a view (interface path).
	st, err := mat.Scale[scalar.Real](a.T(), 10)
	require.NoError(t, err)
	require.True(t, mat.Equal[scalar.Real](st, mustDense(t, [][]scalar.Real{{10, 30}, {-20, 0}})))

	_, err = mat.Scale[scalar.Real](nil, 1)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
	_, err = mat.Neg[scalar.Real](nil)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
}

// TestMatVec covers the matrix-vector product and its validation.
func TestMatVec(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]scalar.Real{{1, 2}, {3, 4}, {5, 6}})
	x, err := mat.NewColVecFrom([]scalar.Real{1, 10})
	require.NoError(t, err)

	y, err := mat.MatVec[scalar.Real](a, x)
	require.NoError(t, err)
	require.Equal(t, 3, y.Len())

	for idx, want := range []scalar.Real{21, 43, 65} {
		v, err := y.AtVec(idx)
		require.NoError(t, err)
		require.Equal(t, want, v)
	}

	short, err := mat.NewColVecFrom([]scalar.Real{1})
	require.NoError(t, err)
	_, err = mat.MatVec[scalar.Real](a, short)
	require.ErrorIs(t, err, mat.ErrBadDimensions)

	_, err = mat.MatVec[scalar.Real](nil, x)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
}

// TestEqual covers exact comparison semantics.
func TestEqual(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]scalar.Real{{1, 2}, {3, 4}})
	b := mustDense(t, [][]scalar.Real{{1, 2}, {3, 4}})
	c := mustDense(t, [][]scalar.Real{{1, 2}, {3, 5}})
	wide := mustDense(t, [][]scalar.Real{{1, 2, 0}, {3, 4, 0}})

	require.True(t, mat.Equal[scalar.Real](a, b))
	require.False(t, mat.Equal[scalar.Real](a, c))
	require.False(t, mat.Equal[scalar.Real](a, wide)) // shape mismatch, no error
	require.True(t, mat.Equal[scalar.Real](nil, nil))
	require.False(t, mat.Equal[scalar.Real](a, nil))
}

// TestEqualApprox covers tolerant comparison and the eps panic.
func TestEqualApprox(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]scalar.Real{{1, 2}})
	b := mustDense(t, [][]scalar.Real{{1 + 1e-13, 2 - 1e-13}})

	require.True(t, mat.EqualApprox[scalar.Real](a, b, 1e-12))
	require.False(t, mat.EqualApprox[scalar.Real](a, b, 1e-14))

	require.Panics(t, func() { mat.EqualApprox[scalar.Real](a, b, -1) })
}

// TestValidators exercises the exported validation helpers directly.
func TestValidators(t *testing.T) {
	t.Parallel()

	sq := mustDense(t, [][]scalar.Real{{1, 2}, {3, 4}})
	wide := mustDense(t, [][]scalar.Real{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, mat.ValidateNotNil[scalar.Real](sq))
	require.ErrorIs(t, mat.ValidateNotNil[scalar.Real](nil), mat.ErrNilMatrix)

	require.NoError(t, mat.ValidateSameShape[scalar.Real](sq, sq))
	require.ErrorIs(t, mat.ValidateSameShape[scalar.Real](sq, wide), mat.ErrBadDimensions)

	require.ErrorIs(t, mat.ValidateBinarySameShape[scalar.Real](nil, sq), mat.ErrNilMatrix)

	require.NoError(t, mat.ValidateSquare[scalar.Real](sq))
	require.ErrorIs(t, mat.ValidateSquare[scalar.Real](wide), mat.ErrBadDimensions)

	require.NoError(t, mat.ValidateMulCompat[scalar.Real](sq, wide))
	require.ErrorIs(t, mat.ValidateMulCompat[scalar.Real](wide, wide), mat.ErrBadDimensions)

	v, err := mat.NewRowVecFrom([]scalar.Real{1, 2})
	require.NoError(t, err)
	require.NoError(t, mat.ValidateVecLen[scalar.Real](v, 2))
	require.ErrorIs(t, mat.ValidateVecLen[scalar.Real](v, 3), mat.ErrBadDimensions)
	require.ErrorIs(t, mat.ValidateVecLen[scalar.Real](nil, 2), mat.ErrNilMatrix)
}
