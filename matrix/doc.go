// Package matrix provides a dense, row-major float64 matrix and the classic
// linear-algebra toolbox around it.
//
// The matrix package provides:
//
//   - Dense: contiguous storage with bounds-checked At/Set/Ptr, explicit
//     ownership (Clone/CopyFrom duplicate, Take/MoveFrom transfer, Release)
//     and in-place reshaping (SetRows/SetCols/Resize).
//   - Arithmetic in two flavors: package functions that return a fresh
//     *Dense (Add, Sub, Mul, Scale, Transpose) and mutating methods
//     (AddInPlace, SubInPlace, MulInPlace, ScaleInPlace).
//   - Minor, Determinant (Laplace expansion), Cofactors, Adjugate, Inverse.
//   - Equal with an absolute tolerance of 1e-7 (configurable per matrix).
//   - Interop with gonum.org/v1/gonum/mat via ToGonum/FromGonum.
//
// Errors are sentinels (ErrInvalidDimensions, ErrDimensionMismatch,
// ErrNonSquare, ErrSingular, ErrOutOfRange, ...) wrapped with the name of
// the failing operation; match them with errors.Is.
//
// A Dense is not safe for concurrent mutation. Determinant and Inverse are
// factorial in n; keep them to small matrices.
package matrix
