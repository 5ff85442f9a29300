// SPDX-License-Identifier: MIT

// Package mat: in-place row-operation primitives.
//
// These three mutators are the only operations the elimination kernels
// use to change a matrix. They stay unexported: callers observe only the
// higher-level kernels (RREF, Det, Inv). Every element write goes through
// Set, so each primitive leaves the sticky cache invalidated.
//
// Aliasing contract: a primitive that reads and writes overlapping rows
// first reads the full row into an owned buffer, then writes. rowSwap
// snapshots through the projection read path because the two rows can
// structurally alias when the read path is itself a view.
package mat

// checkRowPair validates row indices for the primitives.
func (m *Dense[T]) checkRowPair(tag string, r1, r2 int) error {
	if r1 < 0 || r1 >= m.r || r2 < 0 || r2 >= m.r {
		return validatorErrorf(tag, ErrOutOfBounds)
	}

	return nil
}

// rowSwap exchanges rows r1 and r2 in place.
// Stage 1 (Snapshot): load row r1 into an owned buffer via its projection.
// Stage 2 (Write): copy row r2 over r1, then the snapshot over r2.
// Swapping a row with itself (1-row matrices included) is a no-op apart
// from the cache invalidation issued by Set.
// Complexity: O(c).
func (m *Dense[T]) rowSwap(r1, r2 int) error {
	if err := m.checkRowPair("rowSwap", r1, r2); err != nil {
		return err
	}

	// Snapshot r1 through the view-based read path.
	proj, _ := m.GetRow(r1) // index validated above
	tmp := make([]T, m.c)
	var i int
	for i = 0; i < m.c; i++ {
		tmp[i], _ = proj.AtVec(i)
	}

	// Overwrite r1 with r2, then r2 with the snapshot.
	for i = 0; i < m.c; i++ {
		_ = m.Set(r1, i, m.at(r2, i))
	}
	for i = 0; i < m.c; i++ {
		_ = m.Set(r2, i, tmp[i])
	}

	return nil
}

// rowScale left-multiplies every element of row r by k: row[r] = k·row[r].
// Left multiplication keeps pivot normalization well-defined for
// non-commutative scalars.
// Complexity: O(c).
func (m *Dense[T]) rowScale(r int, k T) error {
	if err := m.checkRowPair("rowScale", r, r); err != nil {
		return err
	}
	for i := 0; i < m.c; i++ {
		_ = m.Set(r, i, k.Mul(m.at(r, i)))
	}

	return nil
}

// rowAdd accumulates row[r1] += k·row[r2] element-wise. Row r2 is
// read-only for the duration of the operation; when r1 == r2 the reads
// of the current element complete before its write.
// Complexity: O(c).
func (m *Dense[T]) rowAdd(r1, r2 int, k T) error {
	if err := m.checkRowPair("rowAdd", r1, r2); err != nil {
		return err
	}
	for i := 0; i < m.c; i++ {
		_ = m.Set(r1, i, m.at(r1, i).Add(k.Mul(m.at(r2, i))))
	}

	return nil
}
