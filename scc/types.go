package scc

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *Digraph is passed to Components.
	ErrGraphNil = errors.New("scc: graph is nil")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("scc: vertex out of range")

	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("scc: vertex count must be >= 0")
)

// Digraph is a directed graph on vertices 0..n-1 stored as successor lists.
// Parallel edges are allowed and harmless to Components.
type Digraph struct {
	succ  [][]int // succ[u] lists v for every edge u→v, in insertion order
	edges int     // number of AddEdge calls that succeeded
}

// NewDigraph returns an edgeless digraph on n vertices.
func NewDigraph(n int) (*Digraph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}

	return &Digraph{succ: make([][]int, n)}, nil
}

// Order returns the number of vertices.
func (g *Digraph) Order() int { return len(g.succ) }

// Size returns the number of edges.
func (g *Digraph) Size() int { return g.edges }

// AddEdge inserts the directed edge u→v.
func (g *Digraph) AddEdge(u, v int) error {
	n := len(g.succ)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("scc: AddEdge(%d,%d) with n=%d: %w", u, v, n, ErrVertexOutOfRange)
	}
	g.succ[u] = append(g.succ[u], v)
	g.edges++

	return nil
}

// Successors returns the successors of u. The slice is shared; do not modify.
// Out-of-range vertices have no successors.
func (g *Digraph) Successors(u int) []int {
	if u < 0 || u >= len(g.succ) {
		return nil
	}

	return g.succ[u]
}
