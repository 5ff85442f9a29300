// SPDX-License-Identifier: MIT

// Package mat: one-dimensional specializations and projections.
//
// A vector is a matrix with a fixed shape discipline, not a separate
// storage strategy: RowVec is 1×n, ColVec is n×1, both backed by a Dense.
// RowView/ColView are the projection counterparts — non-owning 1-D views
// over a single row or column of a parent matrix.
package mat

import "github.com/katalvlaran/lvlmat/scalar"

// Vector is the uniform single-index read surface over 1-D data.
type Vector[T scalar.Scalar[T]] interface {
	// Len returns the number of elements (the non-unit dimension).
	Len() int

	// AtVec retrieves the element at position i.
	// Returns ErrOutOfBounds when i is outside [0, Len()).
	AtVec(i int) (T, error)
}

// Compile-time conformance of the vector implementations.
var (
	_ Vector[scalar.Real] = (*RowVec[scalar.Real])(nil)
	_ Vector[scalar.Real] = (*ColVec[scalar.Real])(nil)
	_ Vector[scalar.Real] = (*RowView[scalar.Real])(nil)
	_ Vector[scalar.Real] = (*ColView[scalar.Real])(nil)
)

// ---------- owned vectors ----------

// RowVec is an owning 1×n vector.
type RowVec[T scalar.Scalar[T]] struct {
	d *Dense[T]
}

// NewRowVec allocates a zeroed row vector of length n.
// Errors as NewDense: n<0 → ErrBadDimensions, n==0 → ErrEmptyElement.
func NewRowVec[T scalar.Scalar[T]](n int) (*RowVec[T], error) {
	d, err := NewDense[T](1, n)
	if err != nil {
		return nil, err
	}

	return &RowVec[T]{d: d}, nil
}

// NewRowVecFrom builds a row vector from a literal slice.
func NewRowVecFrom[T scalar.Scalar[T]](vals []T) (*RowVec[T], error) {
	v, err := NewRowVec[T](len(vals))
	if err != nil {
		return nil, err
	}
	copy(v.d.data, vals)

	return v, nil
}

// Len returns the vector length. Complexity: O(1).
func (v *RowVec[T]) Len() int { return v.d.c }

// AtVec retrieves element i. Complexity: O(1).
func (v *RowVec[T]) AtVec(i int) (T, error) { return v.d.At(0, i) }

// SetVec assigns element i, invalidating the backing cache as Set does.
func (v *RowVec[T]) SetVec(i int, val T) error { return v.d.Set(0, i, val) }

// Rows returns 1. Complexity: O(1).
func (v *RowVec[T]) Rows() int { return 1 }

// Cols returns the vector length. Complexity: O(1).
func (v *RowVec[T]) Cols() int { return v.d.c }

// At retrieves the element at (row, col) under the 1×n shape.
func (v *RowVec[T]) At(row, col int) (T, error) { return v.d.At(row, col) }

// String renders the vector as a single space-separated row.
func (v *RowVec[T]) String() string { return v.d.String() }

// ColVec is an owning n×1 vector.
type ColVec[T scalar.Scalar[T]] struct {
	d *Dense[T]
}

// NewColVec allocates a zeroed column vector of length n.
// Errors as NewDense: n<0 → ErrBadDimensions, n==0 → ErrEmptyElement.
func NewColVec[T scalar.Scalar[T]](n int) (*ColVec[T], error) {
	d, err := NewDense[T](n, 1)
	if err != nil {
		return nil, err
	}

	return &ColVec[T]{d: d}, nil
}

// NewColVecFrom builds a column vector from a literal slice.
func NewColVecFrom[T scalar.Scalar[T]](vals []T) (*ColVec[T], error) {
	v, err := NewColVec[T](len(vals))
	if err != nil {
		return nil, err
	}
	copy(v.d.data, vals)

	return v, nil
}

// Len returns the vector length. Complexity: O(1).
func (v *ColVec[T]) Len() int { return v.d.r }

// AtVec retrieves element i. Complexity: O(1).
func (v *ColVec[T]) AtVec(i int) (T, error) { return v.d.At(i, 0) }

// SetVec assigns element i, invalidating the backing cache as Set does.
func (v *ColVec[T]) SetVec(i int, val T) error { return v.d.Set(i, 0, val) }

// Rows returns the vector length. Complexity: O(1).
func (v *ColVec[T]) Rows() int { return v.d.r }

// Cols returns 1. Complexity: O(1).
func (v *ColVec[T]) Cols() int { return 1 }

// At retrieves the element at (row, col) under the n×1 shape.
func (v *ColVec[T]) At(row, col int) (T, error) { return v.d.At(row, col) }

// String renders the vector one element per line.
func (v *ColVec[T]) String() string { return v.d.String() }

// ---------- projection views ----------

// RowView is a non-owning 1-D view over one row of a parent matrix.
type RowView[T scalar.Scalar[T]] struct {
	parent Matrix[T]
	row    int
}

// GetRow returns a projection view over row i.
// Returns ErrOutOfBounds when i is outside [0, Rows()).
// Complexity: O(1), no copies.
func (m *Dense[T]) GetRow(i int) (*RowView[T], error) {
	if i < 0 || i >= m.r {
		return nil, validatorErrorf("GetRow", ErrOutOfBounds)
	}

	return &RowView[T]{parent: m, row: i}, nil
}

// Len returns the parent's column count. Complexity: O(1).
func (v *RowView[T]) Len() int { return v.parent.Cols() }

// AtVec maps i to parent(row, i). Complexity: O(1) plus the parent's At.
func (v *RowView[T]) AtVec(i int) (T, error) { return v.parent.At(v.row, i) }

// Rows returns 1. Complexity: O(1).
func (v *RowView[T]) Rows() int { return 1 }

// Cols returns the projection length. Complexity: O(1).
func (v *RowView[T]) Cols() int { return v.parent.Cols() }

// At retrieves (row, col) under the 1×n shape of the projection.
func (v *RowView[T]) At(row, col int) (T, error) {
	if row != 0 {
		var zero T
		return zero, validatorErrorf("RowView.At", ErrOutOfBounds)
	}

	return v.AtVec(col)
}

// ColView is a non-owning 1-D view over one column of a parent matrix.
type ColView[T scalar.Scalar[T]] struct {
	parent Matrix[T]
	col    int
}

// GetCol returns a projection view over column j.
// Returns ErrOutOfBounds when j is outside [0, Cols()).
// Complexity: O(1), no copies.
func (m *Dense[T]) GetCol(j int) (*ColView[T], error) {
	if j < 0 || j >= m.c {
		return nil, validatorErrorf("GetCol", ErrOutOfBounds)
	}

	return &ColView[T]{parent: m, col: j}, nil
}

// Len returns the parent's row count. Complexity: O(1).
func (v *ColView[T]) Len() int { return v.parent.Rows() }

// AtVec maps i to parent(i, col). Complexity: O(1) plus the parent's At.
func (v *ColView[T]) AtVec(i int) (T, error) { return v.parent.At(i, v.col) }

// Rows returns the projection length. Complexity: O(1).
func (v *ColView[T]) Rows() int { return v.parent.Rows() }

// Cols returns 1. Complexity: O(1).
func (v *ColView[T]) Cols() int { return 1 }

// At retrieves (row, col) under the n×1 shape of the projection.
func (v *ColView[T]) At(row, col int) (T, error) {
	if col != 0 {
		var zero T
		return zero, validatorErrorf("ColView.At", ErrOutOfBounds)
	}

	return v.AtVec(row)
}

// ---------- diagonal, trace, row/col assignment ----------

// Diag returns the leading min(r,c) diagonal elements as a fresh column
// vector. Consults the sticky cache and populates its diagonal bit; the
// returned vector never aliases the cached copy.
// Complexity: O(min(r,c)) on a miss, O(min(r,c)) copy on a hit.
func (m *Dense[T]) Diag() *ColVec[T] {
	if !m.cache.has(cacheDiag) {
		n := m.r
		if m.c < n {
			n = m.c
		}
		d := make([]T, n)
		for i := 0; i < n; i++ {
			d[i] = m.at(i, i)
		}
		m.cache.diag = d
		m.cache.mask |= cacheDiag
	}

	// Copy out of the cache so callers cannot mutate it through SetVec.
	v, _ := NewColVecFrom(m.cache.diag) // cached slice is never empty

	return v
}

// Trace returns the sum of the leading diagonal.
// Complexity: O(min(r,c)).
func (m *Dense[T]) Trace() T {
	s, _ := Sum[T](m.Diag()) // Diag is non-nil by construction

	return s
}

// SetRow assigns vector v to row i.
// Returns ErrOutOfBounds for an invalid row, ErrBadDimensions when the
// vector length differs from Cols. Each element goes through Set, so the
// sticky cache is invalidated.
// Complexity: O(c).
func (m *Dense[T]) SetRow(i int, v Vector[T]) error {
	if i < 0 || i >= m.r {
		return validatorErrorf("SetRow", ErrOutOfBounds)
	}
	if err := ValidateVecLen(v, m.c); err != nil {
		return matErrorf("SetRow", err)
	}
	var j int
	var val T
	var err error
	for j = 0; j < m.c; j++ {
		if val, err = v.AtVec(j); err != nil {
			return matErrorf("SetRow", err)
		}
		_ = m.Set(i, j, val) // indices validated above
	}

	return nil
}

// SetCol assigns vector v to column j; the column-wise twin of SetRow.
// Complexity: O(r).
func (m *Dense[T]) SetCol(j int, v Vector[T]) error {
	if j < 0 || j >= m.c {
		return validatorErrorf("SetCol", ErrOutOfBounds)
	}
	if err := ValidateVecLen(v, m.r); err != nil {
		return matErrorf("SetCol", err)
	}
	var i int
	var val T
	var err error
	for i = 0; i < m.r; i++ {
		if val, err = v.AtVec(i); err != nil {
			return matErrorf("SetCol", err)
		}
		_ = m.Set(i, j, val)
	}

	return nil
}

// ---------- reductions ----------

// Sum returns the sum of all elements of v.
// Complexity: O(n).
func Sum[T scalar.Scalar[T]](v Vector[T]) (T, error) {
	var acc T
	if v == nil {
		return acc, validatorErrorf("Sum", ErrNilMatrix)
	}
	var i int
	var val T
	var err error
	for i = 0; i < v.Len(); i++ {
		if val, err = v.AtVec(i); err != nil {
			return acc, matErrorf("Sum", err)
		}
		acc = acc.Add(val)
	}

	return acc, nil
}

// Prod returns the product of all elements of v, in index order (the
// order matters for non-commutative scalars).
// Complexity: O(n).
func Prod[T scalar.Scalar[T]](v Vector[T]) (T, error) {
	if v == nil {
		var zero T
		return zero, validatorErrorf("Prod", ErrNilMatrix)
	}
	acc := scalar.One[T]()
	var i int
	var val T
	var err error
	for i = 0; i < v.Len(); i++ {
		if val, err = v.AtVec(i); err != nil {
			return acc, matErrorf("Prod", err)
		}
		acc = acc.Mul(val)
	}

	return acc, nil
}

// Dot returns the inner product Σ a[i]·b[i].
// Returns ErrNilMatrix for nil operands and ErrBadDimensions when the
// lengths differ.
// Complexity: O(n).
func Dot[T scalar.Scalar[T]](a, b Vector[T]) (T, error) {
	var acc T
	if a == nil || b == nil {
		return acc, validatorErrorf("Dot", ErrNilMatrix)
	}
	if a.Len() != b.Len() {
		return acc, validatorErrorf("Dot", ErrBadDimensions)
	}
	var i int
	var av, bv T
	var err error
	for i = 0; i < a.Len(); i++ {
		if av, err = a.AtVec(i); err != nil {
			return acc, matErrorf("Dot", err)
		}
		if bv, err = b.AtVec(i); err != nil {
			return acc, matErrorf("Dot", err)
		}
		acc = acc.Add(av.Mul(bv))
	}

	return acc, nil
}
