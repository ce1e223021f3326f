package markov

// findQuotient records class(i)→class(j) for every positive entry (i, j)
// with class(i) != class(j). Duplicate edges collapse in the set.
// Complexity: O(n + e) over the memoized successor lists.
func (sm *StochMatrix) findQuotient() QuotientGraph {
	part := sm.partition()
	g := sm.graph()
	q := make(QuotientGraph, part.Count)
	for label := 0; label < part.Count; label++ {
		q[label] = make(map[int]struct{})
	}
	for i := 0; i < g.Order(); i++ {
		from := part.Labels[i]
		for _, j := range g.Successors(i) {
			if to := part.Labels[j]; to != from {
				q[from][to] = struct{}{}
			}
		}
	}

	return q
}

// findRecClasses keeps the labels with no outgoing quotient edge. A matrix
// without positive entries makes every class recurrent.
func (sm *StochMatrix) findRecClasses() []int {
	return sm.quotient().Sinks()
}

// QuotientGraph returns a copy of the class-level digraph.
func (sm *StochMatrix) QuotientGraph() QuotientGraph { return sm.quotient().clone() }

// RecClassLabels returns the labels of the recurrent classes, ascending.
func (sm *StochMatrix) RecClassLabels() []int {
	return append([]int(nil), sm.recLabels()...)
}

// NumRecClasses returns the number of recurrent classes (always ≥ 1).
func (sm *StochMatrix) NumRecClasses() int { return len(sm.recLabels()) }

// RecClasses returns the recurrent classes ordered by label, each an
// ascending list of states. An irreducible matrix returns [0..n-1].
func (sm *StochMatrix) RecClasses() [][]int {
	if sm.IsIrreducible() {
		return [][]int{allStates(sm.n)}
	}

	return copyClasses(sm.classes(), sm.recLabels())
}

// IsRecurrent reports whether label names a recurrent class.
// Errors: ErrUnknownClass.
func (sm *StochMatrix) IsRecurrent(label int) (bool, error) {
	if label < 0 || label >= sm.NumCommClasses() {
		return false, markovErrorf("IsRecurrent", ErrUnknownClass)
	}

	return sm.quotient().IsSink(label), nil
}
