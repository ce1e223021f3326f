// Package matrix provides the dense numeric storage used by stochmat.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return sentinel errors instead of panicking.
//   - Induced, Row and Col for copy-based extraction (principal submatrices
//     of transition matrices are built this way).
//   - VecMat for row-vector products x·A, the natural orientation for
//     probability vectors.
//   - NormalizeRowsL1 to turn transition counts into row-stochastic rows.
//   - Central validators (ValidateNotNil, ValidateSquare, ValidateFinite,
//     ValidateFiniteOffDiagonal...).
//
// All loops run in fixed i→j order, so results are bit-for-bit reproducible.
package matrix
