// SPDX-License-Identifier: MIT

// Package mat: non-owning views over a Matrix.
//
// A view carries a borrow of its parent plus the minimal index-transform
// state, owns no storage, and is valid only as long as the parent is. All
// views are read-only; index accesses are range-checked against the view's
// own extents, never against the parent's raw extents, so a caller cannot
// escape the declared region.
package mat

import "github.com/katalvlaran/lvlmat/scalar"

// viewErrorf tags for uniform error wrapping.
const (
	ctxTranspose = "Transpose.At"
	ctxSubRange  = "SubRange.At"
)

// Transpose presents the parent with rows and columns exchanged.
// No transform state beyond the borrow is needed.
type Transpose[T scalar.Scalar[T]] struct {
	parent Matrix[T]
}

// NewTranspose wraps m in a transpose view. Views compose: the parent may
// itself be a view. Complexity: O(1), no copies.
func NewTranspose[T scalar.Scalar[T]](m Matrix[T]) *Transpose[T] {
	return &Transpose[T]{parent: m}
}

// T returns a transpose view over the matrix. Cheap: aliases the original.
func (m *Dense[T]) T() *Transpose[T] {
	return NewTranspose[T](m)
}

// Rows returns the parent's column count. Complexity: O(1).
func (v *Transpose[T]) Rows() int { return v.parent.Cols() }

// Cols returns the parent's row count. Complexity: O(1).
func (v *Transpose[T]) Cols() int { return v.parent.Rows() }

// At returns parent(col, row) after checking the view's own extents.
// Complexity: O(1) plus the parent's At.
func (v *Transpose[T]) At(row, col int) (T, error) {
	if row < 0 || row >= v.Rows() || col < 0 || col >= v.Cols() {
		var zero T
		return zero, validatorErrorf(ctxTranspose, ErrOutOfBounds)
	}

	return v.parent.At(col, row)
}

// SubRange presents the rectangular sub-block [r1..r2]×[c1..c2] of the
// parent (inclusive bounds, matching the construction arguments).
type SubRange[T scalar.Scalar[T]] struct {
	parent Matrix[T]
	r1, c1 int // top-left corner in parent coordinates
	r, c   int // view extents
}

// NewSubRange wraps the sub-block [r1..r2]×[c1..c2] of m.
// Stage 1 (Validate): non-nil parent; inverted bounds → ErrBadDimensions.
// Stage 2 (Finalize): derive extents r2-r1+1 × c2-c1+1.
// Offsets that land outside the parent surface as ErrOutOfBounds on read,
// propagated from the parent's own bounds check.
// Complexity: O(1), no copies.
func NewSubRange[T scalar.Scalar[T]](m Matrix[T], r1, r2, c1, c2 int) (*SubRange[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf("NewSubRange", err)
	}
	if r2 < r1 || c2 < c1 {
		return nil, matErrorf("NewSubRange", ErrBadDimensions)
	}

	return &SubRange[T]{parent: m, r1: r1, c1: c1, r: r2 - r1 + 1, c: c2 - c1 + 1}, nil
}

// Range returns a sub-range view over [r1..r2]×[c1..c2] of the matrix.
func (m *Dense[T]) Range(r1, r2, c1, c2 int) (*SubRange[T], error) {
	return NewSubRange[T](m, r1, r2, c1, c2)
}

// Rows returns the view's row extent. Complexity: O(1).
func (v *SubRange[T]) Rows() int { return v.r }

// Cols returns the view's column extent. Complexity: O(1).
func (v *SubRange[T]) Cols() int { return v.c }

// At returns parent(row+r1, col+c1).
// The check runs against the view's own extents first, so an index that
// would read the parent outside the declared sub-range is rejected here
// even when it would be valid parent-wide.
// Complexity: O(1) plus the parent's At.
func (v *SubRange[T]) At(row, col int) (T, error) {
	if row < 0 || row >= v.r || col < 0 || col >= v.c {
		var zero T
		return zero, validatorErrorf(ctxSubRange, ErrOutOfBounds)
	}

	return v.parent.At(row+v.r1, col+v.c1)
}
