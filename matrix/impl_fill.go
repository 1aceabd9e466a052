// SPDX-License-Identifier: MIT
// Package matrix - fixture fillers for Dense.
//
// Purpose:
//   - Fill (row-major slice), FillValue (constant) and FillRandom (uniform in a range).
//   - Intended for tests, examples and benchmarks; none of them is part of the
//     algebraic contract.

package matrix

import (
	"fmt"
	"math/rand"
)

const (
	ctxFill       = "Fill"
	ctxFillValue  = "FillValue"
	ctxFillRandom = "FillRandom"
)

// Fill copies row-major data into m. len(data) must equal Rows()*Cols().
// On error m is left untouched.
//
// Errors:
//   - ErrDimensionMismatch on length mismatch.
//   - ErrNaNInf when a value is non-finite and the policy rejects it.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Fill(data []float64) error {
	if len(data) != len(m.data) {
		return matrixErrorf(ctxFill, fmt.Errorf("len=%d, want %d: %w", len(data), len(m.data), ErrDimensionMismatch))
	}
	if m.opts.validateNaNInf {
		for idx, v := range data {
			if !isFinite(v) {
				return matrixErrorf(ctxFill, denseErrorf(ctxSet, idx/m.c, idx%m.c, ErrNaNInf))
			}
		}
	}
	copy(m.data, data)

	return nil
}

// FillValue sets every element to v.
//
// Errors:
//   - ErrNaNInf when v is non-finite and the policy rejects it.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) FillValue(v float64) error {
	if err := validateScalar(v, m.opts); err != nil {
		return matrixErrorf(ctxFillValue, err)
	}

	return m.Apply(func(_, _ int, _ float64) float64 { return v })
}

// FillRandom sets every element to a uniform value in [lo, hi).
// A nil rng draws from the package-level math/rand source, so results differ
// between runs; pass rand.New(rand.NewSource(seed)) for reproducible fixtures.
// lo > hi is normalized by swapping.
//
// Errors:
//   - ErrNaNInf when lo or hi is non-finite.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) FillRandom(rng *rand.Rand, lo, hi float64) error {
	if !isFinite(lo) || !isFinite(hi) {
		return matrixErrorf(ctxFillRandom, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	draw := rand.Float64
	if rng != nil {
		draw = rng.Float64
	}
	span := hi - lo

	return m.Apply(func(_, _ int, _ float64) float64 { return lo + span*draw() })
}
