// SPDX-License-Identifier: MIT

// Package mat: the read surface shared by owned storage and views.
// Views are expressed as separate concrete types dispatched through this
// single interface rather than as an inheritance hierarchy; mutation is
// deliberately absent so a view can never write through to its parent.
package mat

import "github.com/katalvlaran/lvlmat/scalar"

// Matrix is the uniform read surface over two-dimensional storage: the
// owning Dense core, and every non-owning view (Transpose, SubRange,
// RowView, ColView).
//
// Complexity notes: all methods are O(1); At performs a bounds check
// against the implementation's own extents.
type Matrix[T scalar.Scalar[T]] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at position (row, col).
	// Returns ErrOutOfBounds if row or col is outside the declared
	// extents of this matrix or view.
	At(row, col int) (T, error)
}

// Compile-time conformance of every read-surface implementation.
var (
	_ Matrix[scalar.Real] = (*Dense[scalar.Real])(nil)
	_ Matrix[scalar.Real] = (*Transpose[scalar.Real])(nil)
	_ Matrix[scalar.Real] = (*SubRange[scalar.Real])(nil)
	_ Matrix[scalar.Real] = (*RowView[scalar.Real])(nil)
	_ Matrix[scalar.Real] = (*ColView[scalar.Real])(nil)
	_ Matrix[scalar.Real] = (*RowVec[scalar.Real])(nil)
	_ Matrix[scalar.Real] = (*ColVec[scalar.Real])(nil)
)
