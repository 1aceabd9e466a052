// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Tolerant numeric comparison of two matrices.
//   - Equal/EqualTol answer "same value?" and never fail: shape mismatch or a
//     nil operand simply means "not equal".
//   - AllClose is the strict variant (atol + rtol·|b|) that reports misuse as errors.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on *Dense, i→j otherwise); early exit on
//     the first violating pair. O(r*c) time, O(1) space.

package matrix

import "math"

const opAllClose = "AllClose"

// Equal reports whether a and b have identical shapes and every pair of
// elements differs by at most DefaultEpsilon (1e-7) in absolute value.
// The same instance is always equal to itself.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool { return EqualTol(a, b, DefaultEpsilon) }

// Equal compares m to b using m's own epsilon (WithEpsilon).
func (m *Dense) Equal(b Matrix) bool {
	if m == nil {
		return false
	}

	return EqualTol(m, b, m.opts.eps)
}

// EqualTol reports whether a and b have identical shapes and
// |a[i,j] − b[i,j]| ≤ tol for every element. NaN is never within tolerance.
// A negative tol is treated as |tol|.
// Complexity: O(r*c).
func EqualTol(a, b Matrix, tol float64) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok && da == db {
			return true // identity short-circuit
		}
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	tol = math.Abs(tol)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !withinTol(da.data[idx], db.data[idx], tol) {
					return false
				}
			}

			return true
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if !withinTol(av, bv, tol) {
				return false
			}
		}
	}

	return true
}

// withinTol reports |x−y| ≤ tol; written so NaN yields false.
func withinTol(x, y, tol float64) bool { return math.Abs(x-y) <= tol }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything. Deterministic.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//
// Errors:
//   - ErrNaNInf (non-finite tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if !isFinite(rtol) || !isFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !(math.Abs(da.data[idx]-db.data[idx]) <= atol+rtol*math.Abs(db.data[idx])) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}
