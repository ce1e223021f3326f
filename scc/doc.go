// Package scc finds the strongly connected components of a directed graph
// over integer vertices 0..n-1.
//
// What:
//
//   - Digraph: compact adjacency-list digraph (successor slices per vertex).
//   - FromPositive: derive the digraph of a square matrix, with an edge
//     i→j exactly when m[i,j] > 0. Self-loops are kept as edges.
//   - Components: Tarjan's algorithm, returning (count, labels) where
//     labels[v] is the component of v.
//
// Why:
//
//   - Communication classes of a Markov chain are exactly the strongly
//     connected components of its positive-entry digraph.
//
// Labels are canonical: component ids are assigned in ascending order of
// each component's smallest vertex, so the result does not depend on the
// traversal order of the underlying algorithm.
//
// Complexity:
//
//   - FromPositive: Time O(n²) scan, Memory O(n + e)
//   - Components:   Time O(n + e), Memory O(n)
//
// Errors:
//
//   - ErrGraphNil            graph pointer is nil
//   - ErrVertexOutOfRange    edge endpoint outside [0, n)
//   - ErrNegativeOrder       NewDigraph called with n < 0
package scc
