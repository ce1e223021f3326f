// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finiteness checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols) and non-empty.
//
// Implementation: Assumes m is not nil (caller must ensure).
// Errors: ErrNonSquare if Rows != Cols, ErrInvalidDimensions if 0×0.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	if m.Rows() == 0 {
		return validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m and fails on the first NaN or ±Inf entry.
//
// Implementation: Assumes m is not nil. *Dense takes a flat-slice fast path.
// Errors: ErrNaNInf (wrapped with the offending coordinates).
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	r, c := m.Rows(), m.Cols()
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, idx/c, idx%c, ErrNaNInf))
			}
		}

		return nil
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateFiniteOffDiagonal is ValidateFinite restricted to entries (i, j)
// with i != j. Diagonal entries may hold any value, NaN and ±Inf included.
//
// Implementation: Assumes m is not nil.
// Errors: ErrNaNInf (wrapped with the offending coordinates).
// Complexity: O(r*c).
func ValidateFiniteOffDiagonal(m Matrix) error {
	r, c := m.Rows(), m.Cols()
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if idx/c == idx%c {
				continue
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFiniteOffDiagonal", denseErrorf(ctxAt, idx/c, idx%c, ErrNaNInf))
			}
		}

		return nil
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if i == j {
				continue
			}
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFiniteOffDiagonal", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFiniteOffDiagonal", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}
