// Package matrixplus is a small numeric primitive: a dense, arbitrary-size,
// real-valued matrix with the classic linear-algebra toolbox on top of it.
//
// What lives here:
//
//	matrix/   Dense storage, arithmetic (+, −, ×, α·), transpose, minors,
//	          Laplace determinant, cofactor matrix, adjugate and inverse,
//	          row/column resizing and fixture fillers.
//
// Design in one breath:
//
//   - Pure Go; the only runtime dependency is gonum/mat for interop.
//   - Errors, not panics: every user-triggered failure is a sentinel you can
//     match with errors.Is (ErrInvalidDimensions, ErrDimensionMismatch,
//     ErrNonSquare, ErrSingular, ErrOutOfRange).
//   - Each operation has a non-mutating form (returns a fresh *Dense) and a
//     mutating *InPlace method.
//   - Determinant and inverse use direct cofactor expansion. This is
//     factorial in n and meant for small matrices.
//
// Quick example:
//
//	A, _ := matrix.NewFromRows([][]float64{{2, 5, 7}, {6, 3, 4}, {5, -2, -3}})
//	inv, _ := matrix.Inverse(A)
//	fmt.Print(inv)
//
//	go get github.com/katalvlaran/matrixplus
package matrixplus
