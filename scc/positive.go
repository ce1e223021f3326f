package scc

import (
	"fmt"

	"github.com/katalvlaran/stochmat/matrix"
)

// FromPositive builds the digraph induced by the strictly positive entries of
// a square matrix: i→j is an edge iff m[i,j] > 0. Successor lists come out in
// ascending column order.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare (via ValidateSquareNonNil),
// plus any At error from non-Dense implementations.
func FromPositive(m matrix.Matrix) (*Digraph, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("scc: FromPositive: %w", err)
	}
	n := m.Rows()
	g, err := NewDigraph(n)
	if err != nil {
		return nil, err
	}

	// Dense fast path: the row-major visitor stops on the first failed insert.
	if d, ok := m.(*matrix.Dense); ok {
		d.Do(func(i, j int, v float64) bool {
			if v > 0 {
				err = g.AddEdge(i, j)
			}
			return err == nil
		})
		if err != nil {
			return nil, fmt.Errorf("scc: FromPositive: %w", err)
		}

		return g, nil
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("scc: FromPositive: %w", err)
			}
			if v > 0 {
				if err = g.AddEdge(i, j); err != nil {
					return nil, fmt.Errorf("scc: FromPositive: %w", err)
				}
			}
		}
	}

	return g, nil
}
