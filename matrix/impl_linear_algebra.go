// SPDX-License-Identifier: MIT

// Package matrix - vector/matrix products.
//
// Purpose:
//   - VecMat computes the row-vector product y = x·A, the orientation used by
//     probability vectors (x·P = x for a stationary distribution).
//   - MatVec computes the column-vector product y = A·x.
//
// Determinism & Policy:
//   - Fixed loop orders; *Dense fast-paths operate on the flat buffer.

package matrix

import "fmt"

// ZeroSum is the initial value of every accumulator in this file.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opVecMat = "VecMat"
	opMatVec = "MatVec"
)

// matrixErrorf wraps an underlying error with the given operation tag.
// Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// VecMat computes y = x·m for a row vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Rows().
// Fast-path: *Dense accumulates row i scaled by x[i] (row-major friendly).
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(c) for y.
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var xv float64
		for i = 0; i < rows; i++ {
			xv = x[i]
			if xv == 0 { // skip zero rows of the combination
				continue
			}
			base = i * cols
			for j = 0; j < cols; j++ {
				y[j] += xv * d.data[base+j]
			}
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opVecMat, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[j] += x[i] * mv
		}
	}

	return y, nil
}

// MatVec computes y = m·x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
