// SPDX-License-Identifier: MIT

// Package markov - stationary distributions of (possibly reducible) chains.
//
// Each recurrent class carries exactly one stationary distribution. For an
// irreducible matrix the whole matrix is handed to GTHSolve once. Otherwise
// every recurrent class is isolated as an independent principal submatrix
// (rows and columns in ascending state order), solved on its own, and the
// result is scattered back into a full-width row. GTHSolve is never called
// on a matrix known to be reducible.
//
// Row order is ascending recurrent-class label, which does not depend on the
// traversal order of the SCC routine.

package markov

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stochmat/matrix"
)

const (
	opStationaryDists = "StationaryDists"
	opStationaryDist  = "StationaryDist"
	opResidual        = "Residual"
	opCheckStochastic = "CheckStochastic"
)

// StationaryDists returns one row per recurrent class of p, each a
// stationary distribution over all n states.
//
// Errors: same as NewStochMatrix.
func StationaryDists(p matrix.Matrix) (*matrix.Dense, error) {
	sm, err := NewStochMatrix(p)
	if err != nil {
		return nil, markovErrorf(opStationaryDists, err)
	}

	return sm.StationaryDists()
}

// StationaryDists returns a k×n matrix whose r-th row is the stationary
// distribution of the r-th recurrent class (ascending label). Each row sums
// to one and is zero outside its class.
func (sm *StochMatrix) StationaryDists() (*matrix.Dense, error) {
	if sm.IsIrreducible() {
		x, err := GTHSolve(sm.p)
		if err != nil {
			return nil, markovErrorf(opStationaryDists, err)
		}
		out, err := matrix.NewDense(1, sm.n)
		if err != nil {
			return nil, markovErrorf(opStationaryDists, err)
		}
		copy(out.RawData(), x)

		return out, nil
	}

	rec := sm.recLabels()
	out, err := matrix.NewDense(len(rec), sm.n)
	if err != nil {
		return nil, markovErrorf(opStationaryDists, err)
	}
	raw := out.RawData()
	for r, label := range rec {
		if err = sm.solveClass(label, raw[r*sm.n:(r+1)*sm.n]); err != nil {
			return nil, markovErrorf(opStationaryDists, err)
		}
	}

	return out, nil
}

// StationaryDist returns the stationary distribution of a single recurrent
// class as a length-n vector.
//
// Errors: ErrUnknownClass for a label out of range, ErrNotRecurrent for a
// transient class.
func (sm *StochMatrix) StationaryDist(label int) ([]float64, error) {
	ok, err := sm.IsRecurrent(label)
	if err != nil {
		return nil, markovErrorf(opStationaryDist, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: label %d: %w", opStationaryDist, label, ErrNotRecurrent)
	}
	dst := make([]float64, sm.n)
	if sm.IsIrreducible() {
		x, err := GTHSolve(sm.p)
		if err != nil {
			return nil, markovErrorf(opStationaryDist, err)
		}
		copy(dst, x)

		return dst, nil
	}
	if err = sm.solveClass(label, dst); err != nil {
		return nil, markovErrorf(opStationaryDist, err)
	}

	return dst, nil
}

// solveClass runs GTHSolve on the principal submatrix of the class and
// scatters the result into dst (len n, zero on entry).
func (sm *StochMatrix) solveClass(label int, dst []float64) error {
	members := sm.classes()[label]
	sub, err := sm.p.Induced(members, members)
	if err != nil {
		return err
	}
	// sub is a private copy, so the solver may reuse its storage.
	x, err := GTHSolve(sub, WithOverwrite())
	if err != nil {
		return err
	}
	for k, s := range members {
		dst[s] = x[k]
	}

	return nil
}

// Residual returns max_j |(x·P)_j − x_j|, the accuracy of x as a
// stationary vector of p.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Residual(x []float64, p matrix.Matrix) (float64, error) {
	y, err := matrix.VecMat(x, p)
	if err != nil {
		return 0, markovErrorf(opResidual, err)
	}
	if len(y) != len(x) {
		return 0, markovErrorf(opResidual, matrix.ErrNonSquare)
	}
	var worst float64
	for j := range y {
		worst = math.Max(worst, math.Abs(y[j]-x[j]))
	}

	return worst, nil
}

// CheckStochastic verifies that p is row-stochastic: every entry is
// nonnegative and every row sums to one within tol.
//
// Errors: ErrShape on bad shape, ErrNotStochastic (with the offending
// coordinates) otherwise.
func CheckStochastic(p matrix.Matrix, tol float64) error {
	if err := matrix.ValidateSquareNonNil(p); err != nil {
		return shapeErrorf(opCheckStochastic, err)
	}
	n := p.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := p.At(i, j)
			if err != nil {
				return markovErrorf(opCheckStochastic, err)
			}
			if v < 0 {
				return fmt.Errorf("%s: entry (%d,%d) = %g: %w", opCheckStochastic, i, j, v, ErrNotStochastic)
			}
		}
	}

	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	sums, err := matrix.MatVec(p, ones)
	if err != nil {
		return markovErrorf(opCheckStochastic, err)
	}
	for i, s := range sums {
		if math.Abs(s-1) > tol {
			return fmt.Errorf("%s: row %d sums to %g: %w", opCheckStochastic, i, s, ErrNotStochastic)
		}
	}

	return nil
}
