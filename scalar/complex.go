// SPDX-License-Identifier: MIT
package scalar

import "math/cmplx"

// Complex is the complex128 tower.
type Complex complex128

// Add returns a + b.
func (a Complex) Add(b Complex) Complex { return a + b }

// Sub returns a - b.
func (a Complex) Sub(b Complex) Complex { return a - b }

// Mul returns a * b.
func (a Complex) Mul(b Complex) Complex { return a * b }

// Div returns a / b.
func (a Complex) Div(b Complex) Complex { return a / b }

// Neg returns -a.
func (a Complex) Neg() Complex { return -a }

// Equal reports exact equality of both components.
func (a Complex) Equal(b Complex) bool { return a == b }

// Near reports |a-b| <= eps under the complex modulus.
func (a Complex) Near(b Complex, eps float64) bool {
	return cmplx.Abs(complex128(a-b)) <= eps
}

// IsZero reports a == 0.
func (a Complex) IsZero() bool { return a == 0 }

// FromFloat builds a Complex with zero imaginary part.
func (Complex) FromFloat(f float64) Complex { return Complex(complex(f, 0)) }
