// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scalar scaling, matrix
// multiplication and transpose. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Canonical arithmetic kernels, each in two flavors:
//     non-mutating package functions returning a fresh *Dense, and
//     mutating *InPlace methods on *Dense.
//   - Operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Results inherit the numeric policy of the left operand when it is a *Dense.
//   - Failing calls never leave a receiver half-written.

package matrix

import "fmt"

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Behavior highlights:
//   - Preserves the underlying sentinel for errors.Is/errors.As.
//   - Keeps human-readable operation prefixes (e.g., "Add", "Inverse").
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// policyOf returns the numeric policy of m if it is a *Dense, else the defaults.
func policyOf(m Matrix) Options {
	if d, ok := m.(*Dense); ok && d != nil {
		return d.opts
	}

	return defaultOptions()
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidDimensions (empty operand).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDenseWithPolicy(rows, cols, policyOf(a))

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch),
//     ErrInvalidDimensions (empty operand).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer *Dense inputs for tight loops and contiguous data.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch),
//     ErrInvalidDimensions (empty operand).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// AddInPlace performs m += b.
// On error m is left unchanged.
// Complexity: O(r*c).
func (m *Dense) AddInPlace(b Matrix) error { return m.addSubInPlace(b, +1, opAdd) }

// SubInPlace performs m -= b.
// On error m is left unchanged.
// Complexity: O(r*c).
func (m *Dense) SubInPlace(b Matrix) error { return m.addSubInPlace(b, -1, opSub) }

// addSubInPlace mutates m directly when b is a *Dense (no failure is possible
// after validation); a foreign b is staged through addSub first.
func (m *Dense) addSubInPlace(b Matrix, sign float64, opTag string) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opTag, err)
	}
	if db, ok := b.(*Dense); ok {
		for idx := range m.data {
			m.data[idx] += sign * db.data[idx]
		}

		return nil
	}

	res, err := addSub(m, b, sign, opTag)
	if err != nil {
		return err
	}
	copy(m.data, res.data)

	return nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k via At.
//
// Behavior highlights:
//   - Every cell accumulates A[i,k]·B[k,j] for k = 0..n-1 in ascending order on
//     both paths, so the two paths agree bitwise.
//   - The result is a separate buffer: Mul(A, A) never reads a half-written operand.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch),
//     ErrInvalidDimensions (empty operand).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDenseWithPolicy(aRows, bCols, policyOf(a))
	var (
		i, j, k         int
		av, bv, current float64
		err             error
	)

	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MulInPlace replaces m with m × b. The product is computed into a fresh buffer
// which m adopts only after the computation completes, so m.MulInPlace(m) is safe
// and a failing call leaves m unchanged. m's shape becomes Rows(m)×Cols(b).
// Complexity: O(r*n*c).
func (m *Dense) MulInPlace(b Matrix) error {
	res, err := Mul(m, b)
	if err != nil {
		return err
	}
	m.adopt(res.r, res.c, res.data)

	return nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateNotEmpty(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use flat index mapping; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err := ValidateNotEmpty(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDenseWithPolicy(cols, rows, policyOf(m))

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Behavior highlights:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//   - Non-finite alpha is rejected when the operand's policy guards NaN/Inf.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty input), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err := ValidateNotEmpty(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	policy := policyOf(m)
	if err := validateScalar(alpha, policy); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDenseWithPolicy(rows, cols, policy)

	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// ScaleInPlace performs m *= alpha.
// On error m is left unchanged.
// Complexity: O(r*c).
func (m *Dense) ScaleInPlace(alpha float64) error {
	if err := ValidateNotEmpty(m); err != nil {
		return matrixErrorf(opScale, err)
	}
	if err := validateScalar(alpha, m.opts); err != nil {
		return matrixErrorf(opScale, err)
	}
	for idx := range m.data {
		m.data[idx] *= alpha
	}

	return nil
}
