// SPDX-License-Identifier: MIT

// Package scalar: the Scalar constraint and generic helpers.
// This file defines ONLY the capability set and the package-level
// constructors (Zero/One/FromFloat). Concrete towers live in dedicated
// files (real.go, complex.go, quaternion.go) per the global conventions.
package scalar

// Scalar is the capability set required from a matrix element type.
// The constraint is self-referential: a type T satisfies Scalar[T] when
// its methods consume and produce T itself.
//
// Contract (enforced by the tower implementations, relied on by kernels):
//   - Add/Sub/Mul/Div are total except division by a zero scalar.
//   - Div(b) means a·b⁻¹ (right division); kernels never assume
//     commutativity of Mul.
//   - Equal is exact; Near(b, eps) holds when |a-b| <= eps under the
//     tower's norm.
//   - IsZero reports exact equality with the additive identity.
//   - FromFloat is callable on the zero value and acts as the "generic
//     numeric literal" constructor: FromFloat(1) is the multiplicative
//     identity.
//
// Complexity: every method is O(1).
type Scalar[T any] interface {
	// Add returns the sum of the receiver and b.
	Add(b T) T

	// Sub returns the difference of the receiver and b.
	Sub(b T) T

	// Mul returns the product of the receiver and b, in that order.
	Mul(b T) T

	// Div returns the receiver right-divided by b (a·b⁻¹).
	Div(b T) T

	// Neg returns the additive inverse of the receiver.
	Neg() T

	// Equal reports exact equality with b.
	Equal(b T) bool

	// Near reports |receiver-b| <= eps under the tower's norm.
	Near(b T, eps float64) bool

	// IsZero reports exact equality with the additive identity.
	IsZero() bool

	// FromFloat builds a scalar from a float literal; usable on the
	// zero value of T.
	FromFloat(f float64) T
}

// Zero returns the additive identity of T.
// Complexity: O(1).
func Zero[T Scalar[T]]() T {
	var z T // zero value of the tower is its additive identity

	return z
}

// One returns the multiplicative identity of T.
// Complexity: O(1).
func One[T Scalar[T]]() T {
	var z T

	return z.FromFloat(1)
}

// FromFloat builds a T from a float literal without needing an instance.
// Complexity: O(1).
func FromFloat[T Scalar[T]](f float64) T {
	var z T

	return z.FromFloat(f)
}
