// SPDX-License-Identifier: MIT
// Package mat: white-box hooks for the external test package.
// The row-operation primitives are deliberately unexported (callers see
// only the elimination kernels); tests exercise them through these
// aliases.
package mat

// RowSwap exposes rowSwap for tests.
func (m *Dense[T]) RowSwap(r1, r2 int) error { return m.rowSwap(r1, r2) }

// RowScale exposes rowScale for tests.
func (m *Dense[T]) RowScale(r int, k T) error { return m.rowScale(r, k) }

// RowAdd exposes rowAdd for tests.
func (m *Dense[T]) RowAdd(r1, r2 int, k T) error { return m.rowAdd(r1, r2, k) }

// CacheMask exposes the sticky-compute validity bits for tests.
func (m *Dense[T]) CacheMask() uint8 { return uint8(m.cache.mask) }

// Cache bit values mirrored for tests.
const (
	CacheDiagBit = uint8(cacheDiag)
	CacheDetBit  = uint8(cacheDet)
	CacheInvBit  = uint8(cacheInv)
)
