// SPDX-License-Identifier: MIT
// Package matrix - in-place reshaping of a Dense by rows and/or columns.
//
// Purpose:
//   - SetRows/SetCols/Resize rebuild the buffer at the new shape, copy the
//     overlapping top-left region and zero-fill everything new.
//   - Shrinking drops trailing rows/columns silently.
//
// Behavior highlights:
//   - All validation happens before any allocation; on error m is untouched.
//   - The buffer is always replaced, so pointers from Ptr go stale.
//   - Resizing an empty (transferred-from) Dense yields an all-zero matrix.

package matrix

import "fmt"

const opResize = "Resize"

// SetRows changes the row count to n, keeping the column count.
//
// Errors:
//   - ErrInvalidDimensions when n < 1, or when m is empty (no column count to keep).
//
// Complexity:
//   - Time O(n*c), Space O(n*c).
func (m *Dense) SetRows(n int) error {
	if n < 1 {
		return matrixErrorf("SetRows", fmt.Errorf("rows=%d: %w", n, ErrInvalidDimensions))
	}
	if m.c < 1 {
		return matrixErrorf("SetRows", ErrInvalidDimensions)
	}
	m.reshape(n, m.c)

	return nil
}

// SetCols changes the column count to n, keeping the row count.
//
// Errors:
//   - ErrInvalidDimensions when n < 1, or when m is empty (no row count to keep).
//
// Complexity:
//   - Time O(r*n), Space O(r*n).
func (m *Dense) SetCols(n int) error {
	if n < 1 {
		return matrixErrorf("SetCols", fmt.Errorf("cols=%d: %w", n, ErrInvalidDimensions))
	}
	if m.r < 1 {
		return matrixErrorf("SetCols", ErrInvalidDimensions)
	}
	m.reshape(m.r, n)

	return nil
}

// Resize changes both dimensions in one pass.
// Unlike SetRows/SetCols it also revives an empty Dense as a rows×cols zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows < 1 or cols < 1.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) Resize(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return matrixErrorf(opResize, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
	m.reshape(rows, cols)

	return nil
}

// reshape builds a rows×cols zero buffer, copies the overlap and adopts it.
func (m *Dense) reshape(rows, cols int) {
	buf := make([]float64, rows*cols)
	keepR, keepC := min(rows, m.r), min(cols, m.c)
	for i := 0; i < keepR; i++ {
		copy(buf[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
	}
	m.adopt(rows, cols, buf)
}
