// Package stochmat computes stationary distributions of finite discrete-time
// Markov chains, including reducible ones.
//
// What it does:
//
//   - Splits the state space into communication classes (strongly connected
//     components of the "entry > 0" digraph).
//   - Finds the recurrent classes: the sinks of the class-level quotient graph.
//   - Solves each recurrent class with GTH elimination, a subtraction-free
//     variant of Gaussian elimination that stays accurate when transition
//     probabilities are tiny.
//
// Packages:
//
//	matrix/  — dense row-major storage, validators, submatrix extraction, x·P
//	scc/     — integer digraph and Tarjan's strongly connected components
//	markov/  — StochMatrix, GTHSolve, StationaryDists, content-addressed Cache
//	cmd/stochmat/ — CLI over YAML/JSON chain documents
//
// Quick example:
//
//	    ┌───┐        ┌───┐
//	    │ 0 │◄── 2 ──►│ 1 │
//	    └───┘        └───┘
//
//	sm, _ := markov.FromRows([][]float64{
//		{1, 0, 0},
//		{0, 1, 0},
//		{0.5, 0.5, 0},
//	})
//	sm.RecClasses()      // [[0] [1]]
//	sm.StationaryDists() // [1, 0, 0]
//	                     // [0, 1, 0]
//
// Library packages never log, never panic on user input and report failures
// through sentinel errors matched with errors.Is.
package stochmat
