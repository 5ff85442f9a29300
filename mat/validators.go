// SPDX-License-Identifier: MIT
// Package: mat
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation
//     checks.
//   - Keep kernels/facades minimal by delegating shape/nil checks here.
//   - Return sentinel errors wrapped only with the validator tag so call
//     sites can wrap uniformly with the operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.

package mat

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/scalar"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T scalar.Scalar[T]](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrBadDimensions. Complexity: O(1).
func ValidateSameShape[T scalar.Scalar[T]](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrBadDimensions)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrBadDimensions)
	}

	return nil
}

// ValidateBinarySameShape is the composite guard for element-wise binary
// kernels: NotNil(a) → NotNil(b) → SameShape(a, b).
// Complexity: O(1).
func ValidateBinarySameShape[T scalar.Scalar[T]](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil. Returns wrapped ErrBadDimensions when it is not.
// Complexity: O(1).
func ValidateSquare[T scalar.Scalar[T]](m Matrix[T]) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrBadDimensions)
	}

	return nil
}

// ValidateMulCompat checks the inner-dimension contract a.Cols == b.Rows.
// Assumes both operands are not nil. Complexity: O(1).
func ValidateMulCompat[T scalar.Scalar[T]](a, b Matrix[T]) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompat", ErrBadDimensions)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly length n.
// Complexity: O(1).
func ValidateVecLen[T scalar.Scalar[T]](x Vector[T], n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if x.Len() != n {
		return validatorErrorf("ValidateVecLen", ErrBadDimensions)
	}

	return nil
}
