// SPDX-License-Identifier: MIT

// Package mat: fill specifiers and populated construction.
// All fill constructors funnel through NewDense and then populate, so a
// failed construction never leaves a partially-initialized object behind.
package mat

import (
	"math/rand"

	"github.com/katalvlaran/lvlmat/scalar"
)

// Fill selects the population strategy of a fill constructor.
type Fill int

const (
	// FillZeros fills the matrix with the additive identity.
	FillZeros Fill = iota

	// FillOnes fills the matrix with the multiplicative identity.
	FillOnes

	// FillValue fills the matrix with a caller-supplied element; it is
	// only reachable through NewDenseConst, which carries the element.
	FillValue

	// FillEye zeroes the matrix and sets the leading min(r,c) diagonal
	// to the multiplicative identity.
	FillEye

	// FillRand fills the matrix with uniform values from [0, 1).
	FillRand
)

// NewDenseFill allocates an r×c matrix populated per the fill specifier.
// Stage 1 (Validate/Allocate): delegate to NewDense.
// Stage 2 (Populate): dispatch on the specifier.
// An unrecognized specifier — or one whose required parameters this
// constructor cannot carry, such as FillValue — fails with ErrUnknownFill.
// Complexity: O(r*c).
func NewDenseFill[T scalar.Scalar[T]](rows, cols int, fill Fill, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}

	switch fill {
	case FillZeros:
		// Fresh storage is already the additive identity.
	case FillOnes:
		m.fillConst(scalar.One[T]())
	case FillEye:
		m.fillEye()
	case FillRand:
		m.fillRand(0, 1, gatherOptions(opts...).rng)
	default:
		return nil, matErrorf("NewDenseFill", ErrUnknownFill)
	}

	return m, nil
}

// NewDenseConst allocates an r×c matrix with every element equal to elem.
// Complexity: O(r*c).
func NewDenseConst[T scalar.Scalar[T]](rows, cols int, elem T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.fillConst(elem)

	return m, nil
}

// NewDenseRand allocates an r×c matrix of uniform scalars from [lo, hi).
// hi < lo → ErrBadDimensions. Inject a seeded source with WithRand for
// reproducible output.
// Complexity: O(r*c).
func NewDenseRand[T scalar.Scalar[T]](rows, cols int, lo, hi float64, opts ...Option) (*Dense[T], error) {
	if hi < lo {
		return nil, matErrorf("NewDenseRand", ErrBadDimensions)
	}
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.fillRand(lo, hi, gatherOptions(opts...).rng)

	return m, nil
}

// Zeros returns an r×c matrix of zeros.
func Zeros[T scalar.Scalar[T]](rows, cols int) (*Dense[T], error) {
	return NewDenseFill[T](rows, cols, FillZeros)
}

// Ones returns an r×c matrix of ones.
func Ones[T scalar.Scalar[T]](rows, cols int) (*Dense[T], error) {
	return NewDenseFill[T](rows, cols, FillOnes)
}

// Eye returns an r×c matrix with ones on the leading diagonal.
func Eye[T scalar.Scalar[T]](rows, cols int) (*Dense[T], error) {
	return NewDenseFill[T](rows, cols, FillEye)
}

// ---------- internal fillers ----------

// fillConst writes v into every cell, then invalidates the cache once.
func (m *Dense[T]) fillConst(v T) {
	for i := range m.data {
		m.data[i] = v
	}
	m.cache.invalidate()
}

// fillEye zeroes the buffer and writes ones on the leading min(r,c)
// diagonal.
func (m *Dense[T]) fillEye() {
	var zero T
	one := scalar.One[T]()
	for i := range m.data {
		m.data[i] = zero
	}
	for i := 0; i < m.r && i < m.c; i++ {
		m.data[i*m.c+i] = one
	}
	m.cache.invalidate()
}

// fillRand writes uniform scalars from [lo, hi) built via FromFloat.
func (m *Dense[T]) fillRand(lo, hi float64, rng *rand.Rand) {
	var z T
	for i := range m.data {
		m.data[i] = z.FromFloat(lo + rng.Float64()*(hi-lo))
	}
	m.cache.invalidate()
}
