// SPDX-License-Identifier: MIT

// Package mat: construction from literals, views, other matrices and
// block compositions. Every builder validates fully before the first
// write, funnels allocation through NewDense, and never exposes a
// partially-built matrix.
package mat

import "github.com/katalvlaran/lvlmat/scalar"

// NewDenseFromRows builds a matrix from a nested literal.
// Stage 1 (Validate): non-empty outer and inner slices (ErrEmptyElement);
// every row the same length (ErrBadDimensions).
// Stage 2 (Populate): copy row by row.
// Complexity: O(r*c).
func NewDenseFromRows[T scalar.Scalar[T]](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matErrorf("NewDenseFromRows", ErrEmptyElement)
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, matErrorf("NewDenseFromRows", ErrBadDimensions)
		}
	}

	m, err := NewDense[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewDenseFromMatrix materializes any Matrix — owned or view — into a
// fresh owning Dense. The copy is independent of the source.
// Complexity: O(r*c) At calls.
func NewDenseFromMatrix[T scalar.Scalar[T]](src Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matErrorf("NewDenseFromMatrix", err)
	}
	m, err := NewDense[T](src.Rows(), src.Cols())
	if err != nil {
		return nil, err
	}

	var i, j int
	var v T
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			// Views may refuse offsets that escape their parent; surface that.
			if v, err = src.At(i, j); err != nil {
				return nil, matErrorf("NewDenseFromMatrix", err)
			}
			m.data[i*m.c+j] = v
		}
	}

	return m, nil
}

// Convert builds a Dense[T] from a matrix over a different scalar type,
// casting element-wise through conv. The caller names the result type;
// there is no implicit promotion rule.
// Panics on a nil conv (programmer error); nil src → ErrNilMatrix.
// Complexity: O(r*c).
func Convert[T scalar.Scalar[T], U scalar.Scalar[U]](src Matrix[U], conv func(U) T) (*Dense[T], error) {
	if conv == nil {
		panic(panicConvNil)
	}
	if src == nil {
		return nil, validatorErrorf("Convert", ErrNilMatrix)
	}
	m, err := NewDense[T](src.Rows(), src.Cols())
	if err != nil {
		return nil, err
	}

	var i, j int
	var u U
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if u, err = src.At(i, j); err != nil {
				return nil, matErrorf("Convert", err)
			}
			m.data[i*m.c+j] = conv(u)
		}
	}

	return m, nil
}

// NewDenseBlocks composes a matrix from a grid of blocks: blocks in a
// block row are adjoined horizontally, block rows vertically.
// Stage 1 (Validate): non-empty grid (ErrEmptyElement); no nil blocks
// (ErrNilMatrix); every block in a block row shares that row's height and
// every block row sums to the same total column count (ErrBadDimensions).
// Stage 2 (Populate): copy each block at its (rowStart, colStart) offset.
// Complexity: O(total r*c).
func NewDenseBlocks[T scalar.Scalar[T]](blocks [][]Matrix[T]) (*Dense[T], error) {
	if len(blocks) == 0 || len(blocks[0]) == 0 {
		return nil, matErrorf("NewDenseBlocks", ErrEmptyElement)
	}

	// Total width comes from the first block row; every other block row
	// must agree with it.
	var totalRows, totalCols int
	for _, blk := range blocks[0] {
		if err := ValidateNotNil(blk); err != nil {
			return nil, matErrorf("NewDenseBlocks", err)
		}
		totalCols += blk.Cols()
	}
	for _, blockRow := range blocks {
		if len(blockRow) == 0 {
			return nil, matErrorf("NewDenseBlocks", ErrEmptyElement)
		}
		if err := ValidateNotNil(blockRow[0]); err != nil {
			return nil, matErrorf("NewDenseBlocks", err)
		}
		height := blockRow[0].Rows()
		width := 0
		for _, blk := range blockRow {
			if err := ValidateNotNil(blk); err != nil {
				return nil, matErrorf("NewDenseBlocks", err)
			}
			if blk.Rows() != height {
				return nil, matErrorf("NewDenseBlocks", ErrBadDimensions)
			}
			width += blk.Cols()
		}
		if width != totalCols {
			return nil, matErrorf("NewDenseBlocks", ErrBadDimensions)
		}
		totalRows += height
	}

	m, err := NewDense[T](totalRows, totalCols)
	if err != nil {
		return nil, err
	}

	var v T
	rowStart := 0
	for _, blockRow := range blocks {
		colStart := 0
		for _, blk := range blockRow {
			for i := 0; i < blk.Rows(); i++ {
				for j := 0; j < blk.Cols(); j++ {
					if v, err = blk.At(i, j); err != nil {
						return nil, matErrorf("NewDenseBlocks", err)
					}
					m.data[(rowStart+i)*totalCols+colStart+j] = v
				}
			}
			colStart += blk.Cols()
		}
		rowStart += blockRow[0].Rows()
	}

	return m, nil
}
