// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as the reference result of A × Inverse(A).
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape (and policy) as m.
// Complexity: O(1) alloc + O(rc) zeroing.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}
	if err := ValidateNotEmpty(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDenseWithPolicy(m.Rows(), m.Cols(), policyOf(m)), nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	I, err := ZerosLike(m)
	if err != nil {
		return nil, err
	}
	n := I.r
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
// Complexity: O(rc).
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// Det is an alias for Determinant (Laplace expansion).
// Complexity: O(n!).
func Det(m Matrix) (float64, error) { return Determinant(m) }

// InverseOf is an alias for Inverse: returns adj(A)/det(A).
// Complexity: O(n²·(n−1)!).
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }

// CalcComplements is an alias for Cofactors, named after the algebraic-complement
// terminology some curricula use.
func CalcComplements(m Matrix) (*Dense, error) { return Cofactors(m) }
