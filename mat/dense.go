// SPDX-License-Identifier: MIT

// Package mat - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Carry the sticky compute cache: one validity bit per derived quantity
//     (diagonal, determinant, inverse), cleared wholesale by every Set.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); String: O(r*c).
package mat

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlmat/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf wraps a sentinel with Dense method context and coordinates.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// cacheFlag is one validity bit per lazily derived quantity.
type cacheFlag uint8

const (
	cacheDiag cacheFlag = 1 << iota // Diag result is stored
	cacheDet                        // Det result is stored
	cacheInv                        // Inv result is stored
)

// stickyCache memoizes expensive derived quantities between mutations.
// The granularity is intentionally coarse: any Set clears every bit, not
// just the quantity a mutation could have affected.
type stickyCache[T scalar.Scalar[T]] struct {
	mask cacheFlag // validity bits
	diag []T       // leading diagonal, valid iff cacheDiag
	det  T         // determinant, valid iff cacheDet
	inv  *Dense[T] // inverse, valid iff cacheInv
}

// has reports whether the given quantity is currently valid.
func (s *stickyCache[T]) has(f cacheFlag) bool { return s.mask&f != 0 }

// invalidate transitions every quantity to Invalid and drops stored values.
func (s *stickyCache[T]) invalidate() { *s = stickyCache[T]{} }

// Dense is the owning, row-major storage core.
//   - r, c hold dimensions (rows, cols), both strictly positive.
//   - data is a flat buffer of length r*c in row-major order
//     (offset = i*c + j).
//   - cache is the sticky compute cache (see stickyCache).
type Dense[T scalar.Scalar[T]] struct {
	r, c  int
	data  []T
	cache stickyCache[T]
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[scalar.Real])(nil)

// NewDense creates an r×c matrix of zero scalars in row-major storage.
// Stage 1 (Validate): negative dimensions → ErrBadDimensions; zero
// dimensions → ErrEmptyElement.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the Dense with an empty sticky cache.
// Complexity: O(r*c) time and memory.
func NewDense[T scalar.Scalar[T]](rows, cols int) (*Dense[T], error) {
	// Reject negative sizes first: a negative extent is a shape error,
	// not an emptiness error.
	if rows < 0 || cols < 0 {
		return nil, ErrBadDimensions
	}
	// Reject empty matrices.
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyElement
	}
	// Allocate flat storage; the zero value of T is its additive identity.
	data := make([]T, rows*cols)

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfBounds.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Pure read: no side effects, the cache is untouched.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col) and clears the entire sticky cache.
// A single mutation invalidates ALL cached derived values; there is no
// per-cell dependency tracking.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	m.cache.invalidate()

	return nil
}

// at reads (row, col) without a bounds check. Internal kernels only;
// callers guarantee valid indices.
func (m *Dense[T]) at(row, col int) T {
	return m.data[row*m.c+col]
}

// Clone returns a deep copy of the matrix. The sticky cache is not
// carried: the copy starts with nothing cached.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// String renders the matrix row-major: values space-separated within a
// row, rows newline-separated. Diagnostics only, not a persisted format.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteByte('\n') // rows are newline-separated
		}
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ') // values are space-separated
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.c+j])
		}
	}

	return b.String()
}
