// SPDX-License-Identifier: MIT

// Package markov - GTH (Grassmann–Taksar–Heyman) stationary solver.
//
// The reduction eliminates states in strictly increasing pivot order. Each
// step spreads the eliminated row's outgoing mass over the remaining states
// using only additions, multiplications and one division by a sum of
// nonnegative terms, so no two nearly equal quantities are ever subtracted.
// This keeps full relative accuracy for chains with tiny transition
// probabilities, where ordinary Gaussian elimination cancels catastrophically.
//
// Complexity: Time O(m³), Space O(m²) for the working copy (O(m) with WithOverwrite).

package markov

import (
	"github.com/katalvlaran/stochmat/matrix"
)

const opGTHSolve = "GTHSolve"

// GTHSolve returns the nonnegative vector x with Σx = 1 and x·(A − D) = 0,
// where D is diagonal with D[i,i] = Σ_{j≠i} A[i,j]. For an irreducible
// stochastic matrix this is its stationary distribution.
//
// A may be any Metzler matrix: off-diagonal entries nonnegative, diagonal
// entries ignored. Rows need not sum to one.
//
// On a reducible input the reduction stops at the first pivot i whose
// remaining row mass Σ_{j>i} A1[i,j] is zero: the leading (i+1)×(i+1) block
// then holds exactly one closed class, and the result is that class's
// distribution (zeros elsewhere). This is the class reachable from the
// lowest-indexed states; reducibility is not reported.
//
// Errors:
//   - ErrShape (with matrix.ErrNilMatrix / matrix.ErrNonSquare) on bad shape.
//   - matrix.ErrNaNInf when an off-diagonal entry is not finite. The
//     diagonal is not checked and may hold NaN or ±Inf.
func GTHSolve(a matrix.Matrix, opts ...GTHOption) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, shapeErrorf(opGTHSolve, err)
	}
	if err := matrix.ValidateFiniteOffDiagonal(a); err != nil {
		return nil, markovErrorf(opGTHSolve, err)
	}
	cfg := defaultGTHOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := a.Rows()
	x := make([]float64, m)
	if m == 1 {
		x[0] = 1
		return x, nil
	}

	var a1 []float64
	if d, ok := a.(*matrix.Dense); ok && cfg.overwrite {
		a1 = d.RawData()
	} else {
		owned, err := toDense(a)
		if err != nil {
			return nil, markovErrorf(opGTHSolve, err)
		}
		a1 = owned.RawData()
	}

	n := gthReduce(a1, m)
	gthBackSubstitute(a1, m, n, x)

	return x, nil
}

// gthReduce performs the elimination in place on the m×m row-major buffer
// and returns the effective dimension n (m unless truncated early).
func gthReduce(a1 []float64, m int) int {
	var i, r, c int
	var scale, ari float64
	for i = 0; i < m-1; i++ {
		row := a1[i*m : (i+1)*m]
		scale = 0
		for c = i + 1; c < m; c++ {
			scale += row[c]
		}
		if scale <= 0 {
			// Leading (i+1)-block is closed: exactly one recurrent class.
			return i + 1
		}
		for r = i + 1; r < m; r++ {
			a1[r*m+i] /= scale
		}
		// Rank-1 update A1[i+1:, i+1:] += A1[i+1:, i] ⊗ A1[i, i+1:].
		for r = i + 1; r < m; r++ {
			ari = a1[r*m+i]
			if ari == 0 {
				continue
			}
			dst := a1[r*m : (r+1)*m]
			for c = i + 1; c < m; c++ {
				dst[c] += ari * row[c]
			}
		}
	}

	return m
}

// gthBackSubstitute fills x[0:n] from the reduced buffer and normalizes it.
// x[n:] stays zero.
func gthBackSubstitute(a1 []float64, m, n int, x []float64) {
	var i, j int
	var s float64
	x[n-1] = 1
	for i = n - 2; i >= 0; i-- {
		s = 0
		for j = i + 1; j < n; j++ {
			s += x[j] * a1[j*m+i]
		}
		x[i] = s
	}

	s = 0
	for i = 0; i < n; i++ {
		s += x[i]
	}
	for i = 0; i < n; i++ {
		x[i] /= s
	}
}
