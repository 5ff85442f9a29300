// SPDX-License-Identifier: MIT
package scalar

import "math"

// Real is the float64 tower. It is the default element type for the mat
// engine and the only tower accepted by render.
type Real float64

// Add returns a + b.
func (a Real) Add(b Real) Real { return a + b }

// Sub returns a - b.
func (a Real) Sub(b Real) Real { return a - b }

// Mul returns a * b.
func (a Real) Mul(b Real) Real { return a * b }

// Div returns a / b.
func (a Real) Div(b Real) Real { return a / b }

// Neg returns -a.
func (a Real) Neg() Real { return -a }

// Equal reports exact equality.
func (a Real) Equal(b Real) bool { return a == b }

// Near reports |a-b| <= eps.
func (a Real) Near(b Real, eps float64) bool {
	return math.Abs(float64(a-b)) <= eps
}

// IsZero reports a == 0.
func (a Real) IsZero() bool { return a == 0 }

// FromFloat builds a Real from a float literal.
func (Real) FromFloat(f float64) Real { return Real(f) }
