// SPDX-License-Identifier: MIT
package scalar

import "math"

// Quaternion is the Hamilton tower w + xi + yj + zk.
// Multiplication is non-commutative; Div is right division (a·b⁻¹),
// which is the form the elimination kernels rely on when they scale a
// pivot row by the reciprocal of the pivot.
type Quaternion struct {
	W, X, Y, Z float64
}

// Add returns a + b component-wise.
func (a Quaternion) Add(b Quaternion) Quaternion {
	return Quaternion{a.W + b.W, a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b component-wise.
func (a Quaternion) Sub(b Quaternion) Quaternion {
	return Quaternion{a.W - b.W, a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the Hamilton product a·b.
func (a Quaternion) Mul(b Quaternion) Quaternion {
	return Quaternion{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// Div returns the right quotient a·b⁻¹ where b⁻¹ = conj(b)/|b|².
func (a Quaternion) Div(b Quaternion) Quaternion {
	n := b.normSq() // |b|²; division by a zero quaternion yields Inf components, as with floats

	inv := Quaternion{b.W / n, -b.X / n, -b.Y / n, -b.Z / n}

	return a.Mul(inv)
}

// Neg returns -a.
func (a Quaternion) Neg() Quaternion {
	return Quaternion{-a.W, -a.X, -a.Y, -a.Z}
}

// Equal reports exact component-wise equality.
func (a Quaternion) Equal(b Quaternion) bool { return a == b }

// Near reports |a-b| <= eps under the quaternion norm.
func (a Quaternion) Near(b Quaternion, eps float64) bool {
	return a.Sub(b).Norm() <= eps
}

// IsZero reports that all components are exactly zero.
func (a Quaternion) IsZero() bool { return a == Quaternion{} }

// FromFloat builds a pure-real quaternion.
func (Quaternion) FromFloat(f float64) Quaternion { return Quaternion{W: f} }

// Conj returns the conjugate w - xi - yj - zk.
func (a Quaternion) Conj() Quaternion {
	return Quaternion{a.W, -a.X, -a.Y, -a.Z}
}

// Norm returns the Euclidean norm |a|.
func (a Quaternion) Norm() float64 {
	return math.Sqrt(a.normSq())
}

// normSq returns |a|² without the square root.
func (a Quaternion) normSq() float64 {
	return a.W*a.W + a.X*a.X + a.Y*a.Y + a.Z*a.Z
}
