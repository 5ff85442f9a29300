// SPDX-License-Identifier: MIT
// Package mat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the mat
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel may panic on user-triggered error conditions;
// panics are reserved for programmer errors (nil option arguments and the
// like, see options.go).

package mat

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mat: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matErrorf at the facade —
// callers will still use errors.Is to match.

var (
	// ErrBadDimensions indicates structurally incompatible shapes: negative
	// allocation sizes, ragged literals, inverted sub-range bounds, block
	// rows of uneven height, Add/Sub shape mismatch, Mul inner-dimension
	// mismatch, or a non-square Det/Inv input.
	ErrBadDimensions = errors.New("mat: incompatible dimensions")

	// ErrEmptyElement indicates an attempt to allocate a zero-sized
	// dimension. Empty matrices are rejected at construction.
	ErrEmptyElement = errors.New("mat: zero-sized dimension")

	// ErrOutOfBounds indicates an index outside declared extents — the raw
	// storage's, or a view's own (a view never exposes its parent's range).
	ErrOutOfBounds = errors.New("mat: index out of bounds")

	// ErrUnknownFill indicates an unrecognized fill specifier, including a
	// specifier whose required parameters were not supplied.
	ErrUnknownFill = errors.New("mat: unknown fill type")

	// ErrSingular is returned by Inv when elimination exhausts a pivot
	// column before all rows are reduced.
	ErrSingular = errors.New("mat: singular matrix")

	// ErrNilMatrix indicates a nil Matrix or Vector argument.
	ErrNilMatrix = errors.New("mat: nil matrix")
)

// matErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil; wrapping a nil cause produces a non-nil error.
// Complexity: O(1).
func matErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
