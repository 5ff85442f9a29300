// SPDX-License-Identifier: MIT

// Package mat: element-wise and multiplicative kernels on any Matrix
// implementation. All functions perform strict fail-fast validation,
// allocate a fresh Dense result, and never mutate their operands.
// *Dense operands take a flat fast-path over the backing slices; other
// implementations fall back to the At/Set interface path with fixed
// i→j loop order for determinism.
package mat

import (
	"math"

	"github.com/katalvlaran/lvlmat/scalar"
)

// Operation tags for unified error wrapping.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opMul    = "Mul"
	opScale  = "Scale"
	opNeg    = "Neg"
	opMatVec = "MatVec"
)

const panicEpsilonInvalid = "mat: EqualApprox: eps must be finite, non-negative"

// addSub computes out = a ± b for identically shaped operands.
// Internal helper sharing validation, allocation and the fast-path
// between Add and Sub.
// Complexity: O(r*c), one result allocation.
func addSub[T scalar.Scalar[T]](a, b Matrix[T], negate bool, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range res.data {
				if negate {
					res.data[idx] = da.data[idx].Sub(db.data[idx])
				} else {
					res.data[idx] = da.data[idx].Add(db.data[idx])
				}
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matErrorf(opTag, err)
			}
			if negate {
				res.data[i*cols+j] = av.Sub(bv)
			} else {
				res.data[i*cols+j] = av.Add(bv)
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrBadDimensions. Complexity: O(r*c).
func Add[T scalar.Scalar[T]](a, b Matrix[T]) (*Dense[T], error) {
	return addSub(a, b, false, opAdd)
}

// Sub computes the element-wise difference C = A - B into a fresh Dense.
// Errors: ErrNilMatrix, ErrBadDimensions. Complexity: O(r*c).
func Sub[T scalar.Scalar[T]](a, b Matrix[T]) (*Dense[T], error) {
	return addSub(a, b, true, opSub)
}

// Mul computes the matrix product C = A·B into a fresh Dense.
// Scalar multiplication order is preserved (A's element on the left), so
// the kernel is correct for non-commutative towers.
// Errors: ErrNilMatrix; ErrBadDimensions when a.Cols != b.Rows.
// Complexity: O(a.r * b.c * a.c).
func Mul[T scalar.Scalar[T]](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matErrorf(opMul, err)
	}
	if err := ValidateMulCompat(a, b); err != nil {
		return nil, matErrorf(opMul, err)
	}

	res, err := NewDense[T](a.Rows(), b.Cols())
	if err != nil {
		return nil, matErrorf(opMul, err)
	}

	inner := a.Cols()
	var i, j, k int
	var av, bv T
	for i = 0; i < res.r; i++ {
		for j = 0; j < res.c; j++ {
			var sum T // additive identity
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matErrorf(opMul, err)
				}
				sum = sum.Add(av.Mul(bv))
			}
			res.data[i*res.c+j] = sum
		}
	}

	return res, nil
}

// Scale computes C = k·A (left scalar multiplication) into a fresh Dense.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale[T scalar.Scalar[T]](a Matrix[T], k T) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matErrorf(opScale, err)
	}
	res, err := NewDense[T](a.Rows(), a.Cols())
	if err != nil {
		return nil, matErrorf(opScale, err)
	}

	if da, ok := a.(*Dense[T]); ok {
		for idx := range res.data {
			res.data[idx] = k.Mul(da.data[idx])
		}

		return res, nil
	}

	var i, j int
	var v T
	for i = 0; i < res.r; i++ {
		for j = 0; j < res.c; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, matErrorf(opScale, err)
			}
			res.data[i*res.c+j] = k.Mul(v)
		}
	}

	return res, nil
}

// Neg computes C = -A into a fresh Dense.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Neg[T scalar.Scalar[T]](a Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matErrorf(opNeg, err)
	}
	res, err := NewDense[T](a.Rows(), a.Cols())
	if err != nil {
		return nil, matErrorf(opNeg, err)
	}

	if da, ok := a.(*Dense[T]); ok {
		for idx := range res.data {
			res.data[idx] = da.data[idx].Neg()
		}

		return res, nil
	}

	var i, j int
	var v T
	for i = 0; i < res.r; i++ {
		for j = 0; j < res.c; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, matErrorf(opNeg, err)
			}
			res.data[i*res.c+j] = v.Neg()
		}
	}

	return res, nil
}

// MatVec computes the matrix-vector product A·x into a fresh ColVec.
// Errors: ErrNilMatrix; ErrBadDimensions when len(x) != a.Cols.
// Complexity: O(r*c).
func MatVec[T scalar.Scalar[T]](a Matrix[T], x Vector[T]) (*ColVec[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.Cols()); err != nil {
		return nil, matErrorf(opMatVec, err)
	}

	res, err := NewColVec[T](a.Rows())
	if err != nil {
		return nil, matErrorf(opMatVec, err)
	}

	var i, k int
	var av, xv T
	for i = 0; i < a.Rows(); i++ {
		var sum T
		for k = 0; k < a.Cols(); k++ {
			if av, err = a.At(i, k); err != nil {
				return nil, matErrorf(opMatVec, err)
			}
			if xv, err = x.AtVec(k); err != nil {
				return nil, matErrorf(opMatVec, err)
			}
			sum = sum.Add(av.Mul(xv))
		}
		_ = res.SetVec(i, sum)
	}

	return res, nil
}

// Equal reports exact element-wise equality. Differently shaped matrices
// are unequal, never an error; two nil matrices are equal.
// Complexity: O(r*c).
func Equal[T scalar.Scalar[T]](a, b Matrix[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	var i, j int
	var av, bv T
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !av.Equal(bv) {
				return false
			}
		}
	}

	return true
}

// EqualApprox reports element-wise equality within eps under each
// tower's norm. Panics on a negative or non-finite eps (programmer
// error). Complexity: O(r*c).
func EqualApprox[T scalar.Scalar[T]](a, b Matrix[T], eps float64) bool {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	var i, j int
	var av, bv T
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !av.Near(bv, eps) {
				return false
			}
		}
	}

	return true
}
