// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matrixplus/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the comparison tolerance used across tests; it mirrors matrix.DefaultEpsilon.
const tol = 1e-7

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// FromRows BUILDS a *Dense from literal rows or fails the test.
func FromRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	require.NoError(t, m.Fill(vals))

	return m
}

// Filled BUILDS r×c *Dense with every element set to v.
func Filled(t testing.TB, r, c int, v float64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	require.NoError(t, m.FillValue(v))

	return m
}

// MustAt READS m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES m(i,j)=v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// RandomFill fills m with reproducible pseudorandoms in [-1, 1).
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	require.NoError(t, m.FillRandom(rand.New(rand.NewSource(seed)), -1, 1))
}

// RandomInvertible returns an n×n diagonally dominant (hence non-singular) matrix.
func RandomInvertible(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, n)
	RandomFill(t, m, seed)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, MustAt(t, m, i, i)+float64(n))
	}

	return m
}

// CompareExact asserts that m matches want element by element (==).
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols of row %d", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "At(%d,%d)", i, j)
		}
	}
}

// CompareTol asserts that m matches want within tol.
func CompareTol(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols of row %d", i)
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, m, i, j), tol, "At(%d,%d)", i, j)
		}
	}
}
