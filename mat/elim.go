// SPDX-License-Identifier: MIT

// Package mat: Gaussian-elimination kernels.
//
// One shared in-place engine (gaussJordan) drives rref, determinant and
// inverse. Kernels never mutate the receiver: they deep-clone first and
// reduce the clone; the only receiver side effect is population of the
// sticky compute cache.
//
// Pivot policy: the first non-zero entry scanning downward from the
// current row. Deterministic, but numerically naive — for ill-conditioned
// float inputs there is no magnitude-based pivoting; results are reliable
// for well-conditioned systems and exact scalars.
package mat

import "github.com/katalvlaran/lvlmat/scalar"

// Operation tags for unified error wrapping.
const (
	opRREFWith = "RREFWith"
	opDet      = "Det"
	opInv      = "Inv"
)

// gaussJordan fully reduces m in place; when aug is non-nil every row
// operation is mirrored onto it (the augmented form).
//
// Blueprint (forward elimination to fully reduced form, no separate
// back-substitution phase):
//
//	lead = 0; for each row r:
//	  1. lead == cols ⇒ done; reaching it with rows still unprocessed is
//	     rank deficiency (a skipped zero column advanced lead past r).
//	  2. Scan rows r, r+1, … for the first non-zero entry in column
//	     lead; a fully zero column segment advances lead and rescans
//	     from r; advancing past the last column is rank deficiency.
//	  3. Swap the found row into position r (both matrices).
//	  4. Left-multiply row r by the pivot's reciprocal so the pivot
//	     becomes exactly one (both matrices).
//	  5. Eliminate column lead from every other row via
//	     rowAdd(i, r, -m[i,lead]) (both matrices).
//	  6. Advance lead.
//
// Returns the accumulated determinant multiplier (each swap negates it,
// each normalization multiplies it by the pre-normalization pivot) and
// whether the pivot columns were exhausted before the rows (singular /
// rank-deficient input).
//
// Complexity: O(rows*cols*min(rows,cols)).
func gaussJordan[T scalar.Scalar[T]](m, aug *Dense[T]) (T, bool) {
	mult := scalar.One[T]()
	one := scalar.One[T]()

	lead := 0
	var r, i int
	for r = 0; r < m.r; r++ {
		if lead >= m.c {
			// Columns ran out before the rows did: skipped zero columns
			// pushed lead ahead of r, so the remaining rows have no pivot.
			return mult, r < m.r
		}

		// Find the pivot row for column lead, scanning downward from r.
		i = r
		for m.at(i, lead).IsZero() {
			i++
			if i == m.r {
				// Column exhausted below r: retry the same row on the
				// next column.
				i = r
				lead++
				if lead == m.c {
					return mult, true
				}
			}
		}

		// Move the pivot row into position; every swap flips the sign.
		if i != r {
			_ = m.rowSwap(i, r)
			if aug != nil {
				_ = aug.rowSwap(i, r)
			}
			mult = mult.Neg()
		}

		// Normalize the pivot to exactly one.
		if pivot := m.at(r, lead); !pivot.IsZero() {
			mult = mult.Mul(pivot)
			recip := one.Div(pivot)
			_ = m.rowScale(r, recip)
			if aug != nil {
				_ = aug.rowScale(r, recip)
			}
		}

		// Eliminate column lead from every other row. The factor is read
		// before either matrix's row i is touched.
		for i = 0; i < m.r; i++ {
			if i == r {
				continue
			}
			factor := m.at(i, lead).Neg()
			_ = m.rowAdd(i, r, factor)
			if aug != nil {
				_ = aug.rowAdd(i, r, factor)
			}
		}

		lead++
	}

	return mult, false
}

// RREF returns the row-reduced echelon form of the matrix as a fresh
// Dense. The receiver is deep-cloned first and never mutated.
// Complexity: O(r*c*min(r,c)).
func (m *Dense[T]) RREF() *Dense[T] {
	clone := m.Clone()
	gaussJordan(clone, nil)

	return clone
}

// RREFWith runs the reduction of the receiver while mirroring every row
// operation onto aug, and returns the transformed augmented matrix —
// pass the identity to read off the inverse, or a right-hand side to
// solve A·x = b.
// Returns ErrNilMatrix for a nil aug and ErrBadDimensions when the row
// counts differ. Neither operand is mutated.
// Complexity: O(r*(c+ac)*min(r,c)).
func (m *Dense[T]) RREFWith(aug Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(aug); err != nil {
		return nil, matErrorf(opRREFWith, err)
	}
	if aug.Rows() != m.r {
		return nil, matErrorf(opRREFWith, ErrBadDimensions)
	}

	// Materialize the augmented operand so views reduce safely.
	augClone, err := NewDenseFromMatrix(aug)
	if err != nil {
		return nil, matErrorf(opRREFWith, err)
	}
	gaussJordan(m.Clone(), augClone)

	return augClone, nil
}

// Det returns the determinant.
// Stage 1 (Cache): serve a valid sticky value without recomputation.
// Stage 2 (Validate): non-square input → ErrBadDimensions.
// Stage 3 (Execute): reduce a deep clone, accumulating the multiplier;
// an exhausted pivot column short-circuits to zero (singular).
// Stage 4 (Finalize): det = multiplier·Π diag(reduced); store in the
// sticky cache.
// Complexity: O(n³) on a miss, O(1) on a hit.
func (m *Dense[T]) Det() (T, error) {
	var zero T
	if m.cache.has(cacheDet) {
		return m.cache.det, nil
	}
	if m.r != m.c {
		return zero, matErrorf(opDet, ErrBadDimensions)
	}

	clone := m.Clone()
	mult, singular := gaussJordan(clone, nil)

	det := zero
	if !singular {
		p, _ := Prod[T](clone.Diag()) // diagonal of an owned clone cannot fail
		det = mult.Mul(p)
	}

	m.cache.det = det
	m.cache.mask |= cacheDet

	return det, nil
}

// Inv returns the inverse, computed as the augmented reduction of the
// receiver against the identity.
// Stage 1 (Cache): serve a clone of a valid sticky value.
// Stage 2 (Validate): non-square input → ErrBadDimensions.
// Stage 3 (Execute): reduce clone + identity in lockstep; an exhausted
// pivot column → ErrSingular, nothing cached.
// Stage 4 (Finalize): cache the pristine inverse; return a clone so the
// cache cannot be mutated through the result.
// Complexity: O(n³) on a miss, O(n²) clone on a hit.
func (m *Dense[T]) Inv() (*Dense[T], error) {
	if m.cache.has(cacheInv) {
		return m.cache.inv.Clone(), nil
	}
	if m.r != m.c {
		return nil, matErrorf(opInv, ErrBadDimensions)
	}

	identity, err := Eye[T](m.r, m.c)
	if err != nil {
		return nil, matErrorf(opInv, err)
	}
	if _, singular := gaussJordan(m.Clone(), identity); singular {
		return nil, matErrorf(opInv, ErrSingular)
	}

	m.cache.inv = identity
	m.cache.mask |= cacheInv

	return identity.Clone(), nil
}
