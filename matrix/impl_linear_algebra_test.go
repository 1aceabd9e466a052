// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.

package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/matrixplus/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 6},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					require.Equal(t, 0.0, MustAt(t, m, i, j))
				}
			}
		})
	}
}

// TestHelpers_InterfaceHiding_Fallback ensures that a wrapper hiding the
// concrete type forces the fallback path and yields the same results.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 4, 3)
	B := MustDense(t, 4, 3)
	C := MustDense(t, 3, 5)
	RandomFill(t, A, 1)
	RandomFill(t, B, 2)
	RandomFill(t, C, 3)

	type binOp func(a, b matrix.Matrix) (*matrix.Dense, error)
	for _, tc := range []struct {
		name string
		op   binOp
		a, b *matrix.Dense
	}{
		{"Add", matrix.Add, A, B},
		{"Sub", matrix.Sub, A, B},
		{"Mul", matrix.Mul, A, C},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fast, err := tc.op(tc.a, tc.b)
			require.NoError(t, err)
			slow, err := tc.op(hide{tc.a}, hide{tc.b})
			require.NoError(t, err)
			require.True(t, matrix.Equal(fast, slow))
		})
	}

	tFast, err := matrix.Transpose(A)
	require.NoError(t, err)
	tSlow, err := matrix.Transpose(hide{A})
	require.NoError(t, err)
	require.True(t, matrix.EqualTol(tFast, tSlow, 0))

	sFast, err := matrix.Scale(A, -2.5)
	require.NoError(t, err)
	sSlow, err := matrix.Scale(hide{A}, -2.5)
	require.NoError(t, err)
	require.True(t, matrix.EqualTol(sFast, sSlow, 0))
}

// ---------- Add / Sub ----------

func TestAdd(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	B := FromRows(t, [][]float64{{0.5, -2, 10}, {-4, 0, 1.25}})

	S, err := matrix.Add(A, B)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1.5, 0, 13}, {0, 5, 7.25}}, S)

	// Operands untouched.
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, A)

	S2, err := matrix.Sum(A, B)
	require.NoError(t, err)
	require.True(t, matrix.Equal(S, S2))
}

func TestSub(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	B := FromRows(t, [][]float64{{4, 3}, {2, 1}})

	D, err := matrix.Sub(A, B)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-3, -1}, {1, 3}}, D)

	D2, err := matrix.Diff(A, B)
	require.NoError(t, err)
	require.True(t, matrix.Equal(D, D2))
}

func TestAddSub_DimensionMismatch(t *testing.T) {
	A := MustDense(t, 2, 3)
	B := MustDense(t, 3, 2)

	_, err := matrix.Add(A, B)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(A, B)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, A.AddInPlace(B), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, A.SubInPlace(B), matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, B)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAddSubInPlace(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	B := FromRows(t, [][]float64{{10, 20}, {30, 40}})

	require.NoError(t, A.AddInPlace(B))
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, A)

	require.NoError(t, A.SubInPlace(hide{B}))
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, A)

	// Self add doubles.
	require.NoError(t, A.AddInPlace(A))
	CompareExact(t, [][]float64{{2, 4}, {6, 8}}, A)
	CompareExact(t, [][]float64{{10, 20}, {30, 40}}, B)
}

// ---------- Mul ----------

// TestMul_FilledConstants multiplies a 3×2 of 2s by a 2×3 of 5s.
func TestMul_FilledConstants(t *testing.T) {
	A := Filled(t, 3, 2, 2)
	B := Filled(t, 2, 3, 5)

	P, err := matrix.Mul(A, B)
	require.NoError(t, err)
	require.Equal(t, 3, P.Rows())
	require.Equal(t, 3, P.Cols())
	CompareExact(t, [][]float64{{20, 20, 20}, {20, 20, 20}, {20, 20, 20}}, P)

	require.NoError(t, A.MulInPlace(B))
	require.True(t, matrix.Equal(P, A))
}

func TestMul_Rectangular(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	B := FromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	P, err := matrix.Product(A, B)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, P)
}

func TestMul_DimensionMismatch(t *testing.T) {
	A := MustDense(t, 2, 3)
	B := MustDense(t, 2, 3)
	_, err := matrix.Mul(A, B)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	before := A.CloneDense()
	require.ErrorIs(t, A.MulInPlace(B), matrix.ErrDimensionMismatch)
	require.True(t, matrix.EqualTol(before, A, 0))
	require.Equal(t, 3, A.Cols())
}

// TestMulInPlace_Self ensures A *= A reads the original operand throughout.
func TestMulInPlace_Self(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, A.MulInPlace(A))
	CompareExact(t, [][]float64{{7, 10}, {15, 22}}, A)

	R := MustDense(t, 5, 5)
	RandomFill(t, R, 99)
	want, err := matrix.Mul(R, R)
	require.NoError(t, err)
	require.NoError(t, R.MulInPlace(R))
	require.True(t, matrix.EqualTol(want, R, 0))
}

// TestMulInPlace_ShapeChange checks the receiver adopts the product shape.
func TestMulInPlace_ShapeChange(t *testing.T) {
	A := Filled(t, 1, 3, 1)
	B := Filled(t, 3, 4, 2)
	require.NoError(t, A.MulInPlace(B))
	require.Equal(t, 1, A.Rows())
	require.Equal(t, 4, A.Cols())
	CompareExact(t, [][]float64{{6, 6, 6, 6}}, A)
}

// ---------- Scale ----------

func TestScale(t *testing.T) {
	A := FromRows(t, [][]float64{{1, -2}, {3.5, 0}})

	for _, tc := range []struct {
		name  string
		alpha float64
		want  [][]float64
	}{
		{"positive", 2, [][]float64{{2, -4}, {7, 0}}},
		{"negative", -1, [][]float64{{-1, 2}, {-3.5, 0}}},
		{"zero", 0, [][]float64{{0, 0}, {0, 0}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			S, err := matrix.Scale(A, tc.alpha)
			require.NoError(t, err)
			require.True(t, matrix.Equal(FromRows(t, tc.want), S))

			S2, err := matrix.ScaleBy(A, tc.alpha)
			require.NoError(t, err)
			require.True(t, matrix.Equal(S, S2))

			C := A.CloneDense()
			require.NoError(t, C.ScaleInPlace(tc.alpha))
			require.True(t, matrix.Equal(S, C))
		})
	}
}

func TestScale_NonFinite(t *testing.T) {
	A := Filled(t, 2, 2, 1)
	_, err := matrix.Scale(A, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.ErrorIs(t, A.ScaleInPlace(math.NaN()), matrix.ErrNaNInf)
	CompareExact(t, [][]float64{{1, 1}, {1, 1}}, A)
}

// ---------- Transpose ----------

func TestTranspose(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	At, err := matrix.Transpose(A)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, At)

	Att, err := matrix.T(At)
	require.NoError(t, err)
	require.True(t, matrix.Equal(A, Att))

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestResultsInheritPolicy checks that kernels propagate the left operand's policy.
func TestResultsInheritPolicy(t *testing.T) {
	A := MustDense(t, 2, 2, matrix.WithEpsilon(1e-3))
	B := MustDense(t, 2, 2)

	S, err := matrix.Add(A, B)
	require.NoError(t, err)
	require.Equal(t, 1e-3, S.Options().Epsilon())

	P, err := matrix.Mul(B, A)
	require.NoError(t, err)
	require.Equal(t, matrix.DefaultEpsilon, P.Options().Epsilon())
}
