// SPDX-License-Identifier: MIT
// Package matrix - element-wise micro-kernels.
//
// Purpose:
//   - Keep tight element-wise loops in one place so higher-level transforms
//     (row normalization) share a single deterministic kernel.

package matrix

// ewScaleRows computes out[i,j] = X[i,j] * scale[i].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewScaleRows(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("scaleRows", err)
	}
	r, c := X.Rows(), X.Cols()
	if len(scale) != r {
		return nil, matrixErrorf("scaleRows", ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("scaleRows", err)
	}

	// Dense fast-path.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c  // row base offset
			sf := scale[i] // scale factor for row i
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * sf
			}
		}
		return out, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		sf := scale[i]
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("scaleRows", e)
			}
			out.data[i*c+j] = v * sf
		}
	}
	return out, nil
}
