// Package scalar defines the numeric tower consumed by the mat engine.
//
// The scalar package provides:
//
//   - Scalar[T], a self-referential generic constraint capturing the
//     arithmetic capability set every matrix kernel relies on
//     (+ - * / ==, unary negation, construction from a float literal).
//   - Real, a float64 field.
//   - Complex, a complex128 field.
//   - Quaternion, the Hamilton algebra with right division.
//
// Division is defined as a·b⁻¹ and Mul/Div make no commutativity
// assumption, so quaternions flow through the same elimination kernels
// as reals. Near is the tolerance form of Equal used by approximate
// matrix comparison.
//
// See the examples in mat for usage patterns.
package scalar
