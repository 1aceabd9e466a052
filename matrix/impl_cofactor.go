// SPDX-License-Identifier: MIT
// Package matrix: minors, Laplace determinant, cofactors, adjugate and inverse.
//
// Purpose:
//   - Direct textbook algorithms: determinant by recursive cofactor expansion
//     along row 0; inverse as adjugate / determinant.
//   - No pivoting and no elimination. Results match a hand expansion exactly
//     in evaluation order, which keeps integer-valued fixtures exact.
//
// Complexity:
//   - Determinant is O(n!) time, O(n²) space per recursion level; Cofactors and
//     Inverse are O(n²·(n-1)!). Intended for small n (≲ 10).
//
// AI-Hints:
//   - For large or ill-conditioned systems convert with ToGonum and use gonum's LU.

package matrix

import (
	"fmt"
	"math"
)

const (
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// toDense returns m itself when it is a *Dense, else a Dense copy (default policy).
// Assumes m is non-nil and non-empty.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d := newDenseWithPolicy(m.Rows(), m.Cols(), defaultOptions())
	if err := d.CopyFrom(m); err != nil {
		return nil, err
	}

	return d, nil
}

// minorInto writes src without row `row` and column `col` into dst.
// Relative order of the remaining elements is preserved.
// Callers guarantee bounds and dst shape (r-1)×(c-1).
func minorInto(src *Dense, row, col int, dst *Dense) {
	var i, j, x, y int
	for i = 0; i < src.r; i++ {
		if i == row {
			continue
		}
		y = 0
		for j = 0; j < src.c; j++ {
			if j == col {
				continue
			}
			dst.data[x*dst.c+y] = src.data[i*src.c+j]
			y++
		}
		x++
	}
}

// Minor writes into dst the (r-1)×(c-1) matrix obtained from m by deleting
// row `row` and column `col`.
//
// Errors:
//   - ErrNilMatrix (m or dst nil).
//   - ErrInvalidDimensions when m has a single row or column (no minor exists).
//   - ErrOutOfRange when row/col lie outside m.
//   - ErrDimensionMismatch when dst is not exactly (r-1)×(c-1).
//
// Complexity:
//   - Time O(r*c), Space O(1) beyond dst.
func Minor(m Matrix, row, col int, dst *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMinor, err)
	}
	if dst == nil {
		return matrixErrorf(opMinor, ErrNilMatrix)
	}
	if m.Rows() < 2 || m.Cols() < 2 {
		return matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return matrixErrorf(opMinor, fmt.Errorf("exclude (%d,%d): %w", row, col, ErrOutOfRange))
	}
	if dst.r != m.Rows()-1 || dst.c != m.Cols()-1 {
		return matrixErrorf(opMinor, fmt.Errorf("dst %dx%d, want %dx%d: %w",
			dst.r, dst.c, m.Rows()-1, m.Cols()-1, ErrDimensionMismatch))
	}
	src, err := toDense(m)
	if err != nil {
		return matrixErrorf(opMinor, err)
	}
	minorInto(src, row, col, dst)

	return nil
}

// MinorOf allocates and returns the minor of m excluding (row, col).
// Same errors as Minor except the dst shape check.
func MinorOf(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.Rows() < 2 || m.Cols() < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	dst := newDenseWithPolicy(m.Rows()-1, m.Cols()-1, policyOf(m))
	if err := Minor(m, row, col, dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// det is the unchecked Laplace expansion along row 0.
//
//	det(A) = Σ_i (−1)^i · A[0,i] · det(minor(A, 0, i))
//
// One scratch minor is reused across the loop at each recursion level.
func det(m *Dense) float64 {
	if m.r == 1 {
		return m.data[0]
	}
	n := m.r
	minor := newDenseWithPolicy(n-1, n-1, m.opts)
	sum, sign := ZeroSum, 1.0
	for i := 0; i < n; i++ {
		minorInto(m, 0, i, minor)
		sum += sign * m.data[i] * det(minor)
		sign = -sign
	}

	return sum
}

// Determinant computes det(m) by recursive cofactor (Laplace) expansion.
//
// Behavior highlights:
//   - 1×1: the single element. Larger: expansion along the first row.
//   - Deterministic evaluation order; no pivoting.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (empty input).
//
// Complexity:
//   - Time O(n!), Space O(n²).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det(d), nil
}

// Cofactors returns the matrix C with C[i,j] = (−1)^(i+j) · det(minor(m, i, j)).
//
// Behavior highlights:
//   - Every cell recomputes its own minor and determinant.
//   - A 1×1 input yields [[1]] (empty-product minor), so Inverse works on 1×1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (empty input).
//
// Complexity:
//   - Time O(n²·(n−1)!), Space O(n²).
func Cofactors(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	n := src.r
	res := newDenseWithPolicy(n, n, policyOf(m))
	if n == 1 {
		res.data[0] = 1

		return res, nil
	}

	minor := newDenseWithPolicy(n-1, n-1, src.opts)
	var i, j int
	var sign float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			minorInto(src, i, j, minor)
			sign = 1.0
			if (i+j)%2 == 1 {
				sign = -1.0
			}
			res.data[i*n+j] = sign * det(minor)
		}
	}

	return res, nil
}

// Adjugate returns adj(m) = Cofactors(m)ᵀ.
//
// Errors:
//   - Same as Cofactors.
func Adjugate(m Matrix) (*Dense, error) {
	c, err := Cofactors(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(c)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse returns m⁻¹ = adj(m) · (1/det(m)).
//
// Implementation:
//   - Stage 1: validate square; compute det by Laplace expansion.
//   - Stage 2: reject |det| ≤ singular tolerance (0 by default: exact zero only).
//   - Stage 3: transpose the cofactor matrix and scale by the reciprocal.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions, ErrSingular.
//   - ErrNaNInf when 1/det overflows and the policy guards NaN/Inf.
//
// Complexity:
//   - Time O(n²·(n−1)!), Space O(n²).
//
// Notes:
//   - The tolerance is read from m's policy (WithSingularTolerance) when m is a *Dense.
func Inverse(m Matrix) (*Dense, error) {
	d, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if math.Abs(d) <= policyOf(m).singularTol {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", d, ErrSingular))
	}

	adj, err := Adjugate(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = adj.ScaleInPlace(1 / d); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return adj, nil
}
