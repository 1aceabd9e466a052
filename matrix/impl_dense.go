// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), ownership & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Ptr return errors instead of panicking.
//   - Model value ownership explicitly: Clone/CopyFrom duplicate, Take/MoveFrom transfer,
//     Release drops the buffer. A transferred-from Dense is empty (0×0, nil buffer).
//   - Support copy-based submatrix extraction by index sets (Induced).
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra: operate on the flat data slice directly.
//   - Use Take when handing a large matrix to another owner; it is O(1).
//   - The numeric policy (eps, singular tolerance, NaN/Inf guard) travels with the buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Ptr: O(1); Clone/CopyFrom: O(r*c);
//     Take/MoveFrom/Release: O(1); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxPtr      = "Ptr"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxInduce   = "Induced"  // ctor/tag for Dense.Induced
	ctxCopyFrom = "CopyFrom" // tag for Dense.CopyFrom
	ctxMoveFrom = "MoveFrom" // tag for Dense.MoveFrom
	ctxFromRows = "NewFromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both are 0 only in the empty state.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opts is the numeric policy resolved from Option setters.
type Dense struct {
	r, c int       // row and column counts (>=1, or 0 after Take/Release)
	data []float64 // contiguous row-major storage (len == r*c)
	opts Options   // numeric policy: eps, singular tolerance, NaN/Inf guard
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options and allocate a zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (rows<1 or cols<1).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Pass WithEpsilon/WithSingularTolerance here; the policy sticks to the value.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseWithPolicy(rows, cols, gatherOptions(opts...)), nil
}

// NewDefault returns the 3×3 zero matrix.
// Complexity: O(1) (fixed size).
func NewDefault(opts ...Option) *Dense {
	return newDenseWithPolicy(DefaultRows, DefaultCols, gatherOptions(opts...))
}

// newDenseWithPolicy allocates an r×c zero matrix carrying an already resolved policy.
// Callers guarantee rows>0 && cols>0.
func newDenseWithPolicy(rows, cols int, policy Options) *Dense {
	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]float64, rows*cols), // make() zero-fills deterministically
		opts: policy,
	}
}

// NewFromRows builds a Dense from literal rows (copied, row-major).
// MAIN DESCRIPTION:
//   - Convenience constructor for fixtures and small literals.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
//   - ErrNaNInf when a value is non-finite and the policy rejects it.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := newDenseWithPolicy(r, c, gatherOptions(opts...))

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has %d cols, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch))
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if m.opts.validateNaNInf && !isFinite(v) {
				return nil, matrixErrorf(ctxFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether m has no backing store (after Take, MoveFrom or Release).
func (m *Dense) IsEmpty() bool { return m.data == nil }

// Options returns the numeric policy carried by m.
func (m *Dense) Options() Options { return m.opts }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the plain sentinel; public methods wrap with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range, including on an empty matrix.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values when the guard is on.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.opts.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Ptr returns a mutable slot for (row, col) inside the backing buffer.
// MAIN DESCRIPTION:
//   - Mutable accessor: *p = v writes straight into m.
//
// Behavior highlights:
//   - Writes through the pointer bypass the NaN/Inf guard.
//   - The pointer is invalidated by SetRows/SetCols/Resize, MulInPlace,
//     CopyFrom, Take, MoveFrom and Release (the buffer is replaced or dropped).
//
// Errors:
//   - ErrOutOfRange when indices are invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Ptr(row, col int) (*float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxPtr, row, col, err)
	}

	return &m.data[off], nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of the clone never affect the original and vice versa.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.CloneDense() }

// CloneDense is Clone with the concrete return type.
// Cloning an empty Dense yields another empty Dense.
func (m *Dense) CloneDense() *Dense {
	var cp []float64
	if m.data != nil {
		cp = make([]float64, len(m.data))
		copy(cp, m.data)
	}

	return &Dense{r: m.r, c: m.c, data: cp, opts: m.opts}
}

// CopyFrom replaces m's shape and contents with a deep copy of src.
// MAIN DESCRIPTION:
//   - Assignment-by-duplication: m drops its buffer and receives a fresh one.
//
// Implementation:
//   - Stage 1: self-assignment short-circuits.
//   - Stage 2: build the new buffer completely (fast path for *Dense).
//   - Stage 3: adopt it; m keeps its own numeric policy.
//
// Behavior highlights:
//   - On error m is left untouched.
//   - Copying from an empty Dense makes m empty.
//
// Errors:
//   - ErrNilMatrix when src is nil; At errors from a foreign src.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) CopyFrom(src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(ctxCopyFrom, err)
	}
	if d, ok := src.(*Dense); ok {
		if d == m {
			return nil // self-assignment
		}
		var buf []float64
		if d.data != nil {
			buf = make([]float64, len(d.data))
			copy(buf, d.data)
		}
		m.adopt(d.r, d.c, buf)

		return nil
	}

	rows, cols := src.Rows(), src.Cols()
	buf := make([]float64, rows*cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return matrixErrorf(ctxCopyFrom, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			buf[i*cols+j] = v
		}
	}
	m.adopt(rows, cols, buf)

	return nil
}

// Take transfers ownership of m's buffer, shape and policy to a new Dense.
// MAIN DESCRIPTION:
//   - Ownership-transfer construction: O(1), never fails, no element copy.
//
// Behavior highlights:
//   - m becomes empty (0×0, nil buffer). Using it afterwards returns errors,
//     never panics; its old values are gone.
//   - Taking from an empty Dense yields another empty Dense.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Take() *Dense {
	out := &Dense{r: m.r, c: m.c, data: m.data, opts: m.opts}
	m.Release()

	return out
}

// MoveFrom adopts src's buffer, shape and policy; src becomes empty.
// MAIN DESCRIPTION:
//   - Assignment-by-transfer. m's previous buffer is dropped.
//
// Errors:
//   - ErrNilMatrix when src is nil. Self-move is a no-op.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) MoveFrom(src *Dense) error {
	if src == nil {
		return matrixErrorf(ctxMoveFrom, ErrNilMatrix)
	}
	if src == m {
		return nil
	}
	m.adopt(src.r, src.c, src.data)
	m.opts = src.opts
	src.Release()

	return nil
}

// Release drops the backing store and leaves m empty (0×0).
// Safe to call any number of times.
// Complexity: O(1).
func (m *Dense) Release() {
	m.r, m.c = 0, 0
	m.data = nil
}

// adopt swaps in a new buffer of shape rows×cols (len(buf) == rows*cols).
func (m *Dense) adopt(rows, cols int, buf []float64) {
	m.r, m.c = rows, cols
	m.data = buf
}

// String provides a readable row-wise dump for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Returns:
//   - string: one "[a, b, ...]" line per row; "" for an empty matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: reject empty index sets (a Dense has at least one row and column).
//   - Stage 2: allocate result with m's policy.
//   - Stage 3: nested loops with direct offset math; bounds-check each index.
//
// Errors:
//   - ErrInvalidDimensions (empty index set), ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
//
// AI-Hints:
//   - Minor extraction is Induced with one row and one column left out.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	if rp == 0 || cp == 0 {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, ErrInvalidDimensions)
	}
	res := newDenseWithPolicy(rp, cp, m.opts)
	if err := m.inducedInto(rowsIdx, colsIdx, res); err != nil {
		return nil, err
	}

	return res, nil
}

// inducedInto writes m[rowsIdx, colsIdx] into dst, which must be len(rowsIdx)×len(colsIdx).
func (m *Dense) inducedInto(rowsIdx, colsIdx []int, dst *Dense) error {
	cp := len(colsIdx)
	var i, j, ri, cj int
	for i = 0; i < len(rowsIdx); i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			dst.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return nil
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value and the guard is on.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.opts.validateNaNInf && !isFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
