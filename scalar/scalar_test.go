// Package scalar_test contains unit tests for the three scalar towers.
package scalar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/scalar"
)

// TestRealTower covers the float64 tower's arithmetic and predicates.
func TestRealTower(t *testing.T) {
	t.Parallel()

	a, b := scalar.Real(6), scalar.Real(2)

	require.Equal(t, scalar.Real(8), a.Add(b))
	require.Equal(t, scalar.Real(4), a.Sub(b))
	require.Equal(t, scalar.Real(12), a.Mul(b))
	require.Equal(t, scalar.Real(3), a.Div(b))
	require.Equal(t, scalar.Real(-6), a.Neg())

	require.True(t, a.Equal(6))
	require.False(t, a.Equal(6.1))
	require.True(t, a.Near(6+1e-13, 1e-12))
	require.False(t, a.Near(6.1, 1e-12))

	require.True(t, scalar.Real(0).IsZero())
	require.False(t, a.IsZero())
	require.Equal(t, scalar.Real(2.5), scalar.Real(0).FromFloat(2.5))
}

// TestComplexTower covers the complex128 tower.
func TestComplexTower(t *testing.T) {
	t.Parallel()

	i := scalar.Complex(complex(0, 1))
	two := scalar.Complex(complex(2, 0))

	require.Equal(t, scalar.Complex(complex(2, 1)), two.Add(i))
	require.Equal(t, scalar.Complex(complex(2, -1)), two.Sub(i))
	require.Equal(t, scalar.Complex(complex(0, 2)), two.Mul(i))
	require.Equal(t, scalar.Complex(complex(-1, 0)), i.Mul(i)) // i² = -1
	require.True(t, two.Div(i).Near(scalar.Complex(complex(0, -2)), 1e-12))
	require.Equal(t, scalar.Complex(complex(0, -1)), i.Neg())

	require.True(t, i.Equal(scalar.Complex(complex(0, 1))))
	require.True(t, scalar.Complex(0).IsZero())
	require.False(t, i.IsZero())
	require.Equal(t, scalar.Complex(complex(3, 0)), scalar.Complex(0).FromFloat(3))
}

// TestQuaternionTower covers the Hamilton tower, including the
// non-commutative basis products and right division.
func TestQuaternionTower(t *testing.T) {
	t.Parallel()

	one := scalar.Quaternion{W: 1}
	i := scalar.Quaternion{X: 1}
	j := scalar.Quaternion{Y: 1}
	k := scalar.Quaternion{Z: 1}

	// Basis table: i² = j² = k² = ijk = -1.
	require.True(t, i.Mul(i).Equal(one.Neg()))
	require.True(t, j.Mul(j).Equal(one.Neg()))
	require.True(t, k.Mul(k).Equal(one.Neg()))
	require.True(t, i.Mul(j).Equal(k))
	require.True(t, j.Mul(i).Equal(k.Neg()))
	require.True(t, j.Mul(k).Equal(i))
	require.True(t, k.Mul(j).Equal(i.Neg()))
	require.True(t, k.Mul(i).Equal(j))
	require.True(t, i.Mul(k).Equal(j.Neg()))

	// Additive structure.
	q := scalar.Quaternion{W: 1, X: 2, Y: 3, Z: 4}
	require.True(t, q.Add(q.Neg()).IsZero())
	require.True(t, q.Sub(q).IsZero())

	// Right division: (a·b)·b⁻¹ = a.
	ab := q.Mul(i)
	require.True(t, ab.Div(i).Near(q, 1e-12))

	// Conjugate and norm: q·conj(q) = |q|².
	prod := q.Mul(q.Conj())
	require.InDelta(t, 30.0, prod.W, 1e-12) // 1+4+9+16
	require.InDelta(t, 0.0, prod.X, 1e-12)
	require.InDelta(t, q.Norm()*q.Norm(), prod.W, 1e-12)

	require.Equal(t, scalar.Quaternion{W: 5}, one.FromFloat(5))
	require.True(t, scalar.Quaternion{}.IsZero())
	require.True(t, q.Near(scalar.Quaternion{W: 1, X: 2, Y: 3, Z: 4 + 1e-13}, 1e-12))
}

// TestIdentityHelpers covers the generic Zero/One/FromFloat helpers
// across all three towers.
func TestIdentityHelpers(t *testing.T) {
	t.Parallel()

	require.True(t, scalar.Zero[scalar.Real]().IsZero())
	require.True(t, scalar.Zero[scalar.Complex]().IsZero())
	require.True(t, scalar.Zero[scalar.Quaternion]().IsZero())

	require.Equal(t, scalar.Real(1), scalar.One[scalar.Real]())
	require.Equal(t, scalar.Complex(complex(1, 0)), scalar.One[scalar.Complex]())
	require.Equal(t, scalar.Quaternion{W: 1}, scalar.One[scalar.Quaternion]())

	require.Equal(t, scalar.Real(2.5), scalar.FromFloat[scalar.Real](2.5))
	require.Equal(t, scalar.Quaternion{W: -1}, scalar.FromFloat[scalar.Quaternion](-1))
}
