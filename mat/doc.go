// Package mat implements a dense, row-major matrix engine over a
// parametric scalar type.
//
// The mat package provides:
//
//   - Dense[T], the owning storage core with bounds-checked access and a
//     sticky compute cache for expensive derived quantities (diagonal,
//     determinant, inverse) that is invalidated wholesale by any Set.
//   - Non-owning views (Transpose, SubRange, RowView, ColView) that
//     forward element access through an index transform and range-check
//     against their own extents.
//   - RowVec/ColVec, one-dimensional specializations with single-index
//     access.
//   - Gaussian-elimination kernels — RREF (plain and augmented), Det and
//     Inv — built purely from in-place row-operation primitives.
//   - Element-wise kernels: Add, Sub, Mul, Scale, Neg, MatVec.
//
// Every kernel clones its input before mutating, so callers' matrices
// are never changed implicitly; the only receiver side effect is sticky
// cache population. All user-facing failures are sentinel errors from
// errors.go, matched via errors.Is. The package is single-threaded by
// design: no locks, no atomics — callers needing concurrent access must
// serialize externally or clone per goroutine, and a view must never
// outlive its parent.
package mat
