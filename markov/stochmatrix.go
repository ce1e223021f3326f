// SPDX-License-Identifier: MIT

// Package markov - StochMatrix, the structural view of a transition matrix.
//
// Purpose:
//   - Hold a private copy of a square matrix plus its lazily derived
//     decomposition (communication classes, quotient graph, recurrent classes).
//   - Expose only the capability set the analysis needs (At, Row, Col,
//     Positive) instead of the whole numeric array surface.
//
// Determinism & Concurrency:
//   - Every derived value is computed on first access through sync.OnceValue
//     and never recomputed or mutated afterwards. Concurrent first accesses
//     block on the single computation. Getters return copies.

package markov

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/stochmat/matrix"
	"github.com/katalvlaran/stochmat/scc"
)

// StochMatrix is a square nonnegative (or Metzler) matrix together with its
// memoized graph decomposition. It is safe for concurrent use.
type StochMatrix struct {
	p *matrix.Dense // private copy; never written after construction
	n int

	graph     func() *scc.Digraph  // i→j iff P[i,j] > 0
	partition func() Partition     // communication classes
	classes   func() [][]int       // members per class label, ascending
	quotient  func() QuotientGraph // class → successor classes
	recLabels func() []int         // sink labels, ascending
}

// NewStochMatrix copies m and returns its structural view.
//
// Errors:
//   - ErrShape (also matching matrix.ErrNilMatrix / matrix.ErrNonSquare) when m
//     is nil, empty or not square.
//   - matrix.ErrNaNInf when an entry is not finite.
//
// Complexity: O(n²) for the copy; decomposition is deferred.
func NewStochMatrix(m matrix.Matrix) (*StochMatrix, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, shapeErrorf("NewStochMatrix", err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, markovErrorf("NewStochMatrix", err)
	}
	p, err := toDense(m)
	if err != nil {
		return nil, markovErrorf("NewStochMatrix", err)
	}

	return newStochMatrix(p), nil
}

// FromRows builds a StochMatrix from literal rows.
// Ragged, empty or non-square input fails with ErrShape.
func FromRows(rows [][]float64) (*StochMatrix, error) {
	for i := range rows {
		if len(rows[i]) != len(rows) {
			return nil, shapeErrorf("FromRows",
				fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), len(rows), matrix.ErrNonSquare))
		}
	}
	p, err := matrix.NewDenseFromRows(rows)
	if errors.Is(err, matrix.ErrNaNInf) {
		return nil, markovErrorf("FromRows", err)
	}
	if err != nil {
		return nil, shapeErrorf("FromRows", err)
	}

	return newStochMatrix(p), nil
}

// newStochMatrix wires the lazy derivations around an owned *Dense.
func newStochMatrix(p *matrix.Dense) *StochMatrix {
	sm := &StochMatrix{p: p, n: p.Rows()}
	sm.graph = sync.OnceValue(sm.buildGraph)
	sm.partition = sync.OnceValue(sm.findCommClasses)
	sm.classes = sync.OnceValue(sm.groupClasses)
	sm.quotient = sync.OnceValue(sm.findQuotient)
	sm.recLabels = sync.OnceValue(sm.findRecClasses)

	return sm
}

// toDense returns an independent *Dense copy of m.
func toDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}
	r, c := m.Rows(), m.Cols()
	d, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, err
	}
	raw := d.RawData()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			raw[i*c+j] = v
		}
	}

	return d, nil
}

// N returns the number of states.
func (sm *StochMatrix) N() int { return sm.n }

// Matrix returns a copy of the underlying matrix.
func (sm *StochMatrix) Matrix() *matrix.Dense { return sm.p.Clone().(*matrix.Dense) }

// At returns entry (i, j). Errors: matrix.ErrOutOfRange.
func (sm *StochMatrix) At(i, j int) (float64, error) { return sm.p.At(i, j) }

// Row returns a copy of row i. Errors: matrix.ErrOutOfRange.
func (sm *StochMatrix) Row(i int) ([]float64, error) { return sm.p.Row(i) }

// Col returns a copy of column j. Errors: matrix.ErrOutOfRange.
func (sm *StochMatrix) Col(j int) ([]float64, error) { return sm.p.Col(j) }

// Positive reports whether the one-step transition i→j exists (entry > 0).
// Out-of-range indices report false.
func (sm *StochMatrix) Positive(i, j int) bool {
	v, err := sm.p.At(i, j)
	return err == nil && v > 0
}

// NumTransitions returns the number of positive entries, the edge count of
// the transition digraph.
func (sm *StochMatrix) NumTransitions() int { return sm.graph().Size() }

// String renders the matrix rows.
func (sm *StochMatrix) String() string { return sm.p.String() }

// ---------- GraphDecomposer ----------

// buildGraph builds the positive-entry digraph once; the quotient pass
// reuses its successor lists.
func (sm *StochMatrix) buildGraph() *scc.Digraph {
	// Shape was validated at construction, so this cannot fail.
	g, _ := scc.FromPositive(sm.p)

	return g
}

// findCommClasses labels states by strongly connected component of the
// positive-entry digraph.
func (sm *StochMatrix) findCommClasses() Partition {
	count, labels, _ := scc.Components(sm.graph())

	return Partition{Count: count, Labels: labels}
}

// groupClasses inverts the projection: members per label, ascending.
func (sm *StochMatrix) groupClasses() [][]int {
	part := sm.partition()
	out := make([][]int, part.Count)
	for s, label := range part.Labels {
		out[label] = append(out[label], s)
	}

	return out
}

// Partition returns a copy of the communication-class projection.
func (sm *StochMatrix) Partition() Partition {
	part := sm.partition()
	labels := make([]int, len(part.Labels))
	copy(labels, part.Labels)

	return Partition{Count: part.Count, Labels: labels}
}

// NumCommClasses returns the number of communication classes.
func (sm *StochMatrix) NumCommClasses() int { return sm.partition().Count }

// CommClassLabels returns the class label of every state.
func (sm *StochMatrix) CommClassLabels() []int { return sm.Partition().Labels }

// IsIrreducible reports whether the chain has exactly one communication class.
func (sm *StochMatrix) IsIrreducible() bool { return sm.partition().Count == 1 }

// CommClasses returns the communication classes ordered by label, each an
// ascending list of states. An irreducible matrix takes the fast path and
// returns the single class [0..n-1].
func (sm *StochMatrix) CommClasses() [][]int {
	if sm.IsIrreducible() {
		return [][]int{allStates(sm.n)}
	}

	return copyClasses(sm.classes(), nil)
}

// allStates returns [0, 1, ..., n-1].
func allStates(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// copyClasses deep-copies the classes whose labels are listed, or all of
// them when labels is nil.
func copyClasses(classes [][]int, labels []int) [][]int {
	if labels == nil {
		labels = allStates(len(classes))
	}
	out := make([][]int, len(labels))
	for k, label := range labels {
		out[k] = append([]int(nil), classes[label]...)
	}

	return out
}
