// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row normalization used to turn transition counts into row-stochastic
//     matrices before structural analysis.
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense fast-path reads the flat buffer.

package matrix

const opNormalizeRowsL1 = "NormalizeRowsL1"

// NormalizeRowsL1 scales each row to have L1-norm == 1 when possible.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute per-row L1 norms Σ_j |x_ij| deterministically.
//   - Stage 3: Build row scale factors (1/norm); for norm==0 use scale=1 so
//     degenerate rows are left unchanged (an all-zero row stays all-zero).
//   - Stage 4: Apply ewScaleRows to produce a normalized copy.
//
// Returns:
//   - *Dense: normalized copy (r×c).
//   - []float64: original L1 norms (len=r).
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(r) norms and scales).
func NormalizeRowsL1(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	r, c := X.Rows(), X.Cols()
	norms := make([]float64, r)

	var i, j int
	var s, v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			s = 0.0
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				if v < 0 {
					v = -v // abs
				}
				s += v
			}
			norms[i] = s
		}
	} else {
		var err error
		for i = 0; i < r; i++ {
			s = 0.0
			for j = 0; j < c; j++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
				}
				if v < 0 {
					v = -v
				}
				s += v
			}
			norms[i] = s
		}
	}

	scale := make([]float64, r)
	for i = 0; i < r; i++ {
		if norms[i] > 0 {
			scale[i] = 1.0 / norms[i]
		} else {
			scale[i] = 1.0
		}
	}

	Y, err := ewScaleRows(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	return Y, norms, nil
}
