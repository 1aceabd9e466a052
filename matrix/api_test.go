// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matrixplus/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewZerosAndIdentity(t *testing.T) {
	Z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, Z)

	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewZeros(1, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestLikeConstructors(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2}, {3, 4}}, matrix.WithEpsilon(0.25))

	Z, err := matrix.ZerosLike(A)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}, {0, 0}}, Z)
	require.Equal(t, 0.25, Z.Options().Epsilon())

	I, err := matrix.IdentityLike(A)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {0, 1}}, I)

	_, err = matrix.IdentityLike(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCloneMatrix(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2}})
	C := matrix.CloneMatrix(A)
	MustSet(t, C, 0, 0, 9)
	require.Equal(t, 1.0, MustAt(t, A, 0, 0))
	require.Equal(t, 9.0, MustAt(t, C, 0, 0))
}
