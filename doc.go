// Package lvlmat is an in-memory playground for dense linear algebra —
// rectangular storage over a parametric scalar type, cheap non-owning
// views, and classic Gaussian-elimination kernels.
//
// 🚀 What is lvlmat?
//
//	A modern, generics-first library that brings together:
//		• Storage core: row-major Dense[T] with bounds-checked access
//		• Views: transpose, sub-range, row/column projections — zero copies
//		• Vectors: RowVec/ColVec specializations with single-index access
//		• Kernels: rref (plain & augmented), determinant, inverse
//		• Scalars: Real, Complex and Quaternion towers behind one constraint
//
// ✨ Why choose lvlmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Deterministic – fixed loop orders, first-non-zero pivoting
//   - Extensible – implement scalar.Scalar once, every kernel follows
//
// Everything is organized under three subpackages:
//
//	scalar/ — the numeric tower: Real, Complex, Quaternion
//	mat/    — Dense storage, views, vectors & elimination kernels
//	render/ — heatmap diagnostics via gonum/plot
//
// Quick example:
//
//	m, _ := mat.NewDenseFromRows([][]scalar.Real{{2, 1}, {1, 1}})
//	inv, _ := m.Inv() // [[1 -1] [-1 2]]
//
// See each subpackage's doc.go for details and complexity notes.
package lvlmat
