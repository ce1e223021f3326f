// Package markov computes the communication structure and the stationary
// distributions of finite discrete-time Markov chains.
//
// What:
//
//   - StochMatrix: a private copy of a square transition (or Metzler) matrix
//     with its lazily memoized decomposition:
//   - CommClasses: strongly connected components of the digraph i→j iff P[i,j] > 0
//   - QuotientGraph: class-level digraph induced by cross-class transitions
//   - RecClasses: sink classes of the quotient graph (closed classes)
//   - GTHSolve: the Grassmann–Taksar–Heyman elimination, a subtraction-free
//     variant of Gaussian elimination for the stationary vector.
//   - StationaryDists: one stationary distribution per recurrent class,
//     scattered over the full state space.
//   - Cache: content-addressed (BLAKE3) sharing of StochMatrix values.
//
// Why:
//
//   - A reducible chain has one stationary distribution per recurrent class;
//     solving each class on its own principal submatrix is exact and avoids
//     the singular systems a naive whole-matrix solve runs into.
//   - GTH keeps relative accuracy for chains with very small transition
//     probabilities.
//
// Complexity:
//
//   - Decomposition: O(n²) scan + O(n + e) Tarjan, computed once per StochMatrix
//   - GTHSolve:      O(m³) time, O(m²) space
//
// Errors:
//
//   - ErrShape          input is nil, empty, ragged or not square
//   - ErrUnknownClass   class label out of range
//   - ErrNotRecurrent   stationary distribution requested for a transient class
//   - ErrNotStochastic  CheckStochastic found a negative entry or a bad row sum
//   - matrix.ErrNaNInf  non-finite entry
//
// Quick example:
//
//	P := [[1,   0,   0],
//	      [0,   1,   0],
//	      [0.5, 0.5, 0]]
//
//	CommClasses → [[0] [1] [2]], RecClasses → [[0] [1]],
//	StationaryDists → [[1 0 0] [0 1 0]].
package markov
