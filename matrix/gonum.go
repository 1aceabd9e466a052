// SPDX-License-Identifier: MIT
// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand a Dense to gonum when a numerically stable factorization is needed
//     (LU with pivoting, QR, SVD are out of scope here).
//   - Bring gonum results back as a Dense with a chosen numeric policy.
//
// Both directions copy; the two buffers never alias.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense (row-major, same shape).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty input; gonum rejects 0×0).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if err := ValidateNotEmpty(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(src.data))
	copy(buf, src.data)

	return mat.NewDense(src.r, src.c, buf), nil
}

// FromGonum copies any gonum matrix into a new Dense carrying opts.
//
// Errors:
//   - ErrNilMatrix (nil g), ErrInvalidDimensions (empty g),
//     ErrNaNInf (non-finite element under the default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = g.At(i, j)
			if out.opts.validateNaNInf && !isFinite(v) {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("At(%d,%d): %w", i, j, ErrNaNInf))
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
