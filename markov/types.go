package markov

import "sort"

// Partition is the state → communication-class projection of a matrix.
//
// Labels[s] is the class of state s, and labels are dense in [0, Count).
// Labels increase with each class's smallest state, so state 0 is always in
// class 0 and the order is independent of the traversal used to find them.
type Partition struct {
	Count  int   // number of communication classes
	Labels []int // class label per state, len == n
}

// QuotientGraph maps each class label to the set of labels it can move to
// in one step. Every label has an entry; sinks map to an empty set. Edges are
// recorded only from realized positive cross-class entries.
type QuotientGraph map[int]map[int]struct{}

// Successors returns the labels reachable in one step from label, ascending.
func (q QuotientGraph) Successors(label int) []int {
	out := make([]int, 0, len(q[label]))
	for to := range q[label] {
		out = append(out, to)
	}
	sort.Ints(out)

	return out
}

// IsSink reports whether label has no outgoing edge.
func (q QuotientGraph) IsSink(label int) bool {
	return len(q[label]) == 0
}

// Sinks returns every sink label in ascending order.
func (q QuotientGraph) Sinks() []int {
	out := make([]int, 0, len(q))
	for label, succ := range q {
		if len(succ) == 0 {
			out = append(out, label)
		}
	}
	sort.Ints(out)

	return out
}

// clone returns a deep copy so callers cannot mutate the memoized graph.
func (q QuotientGraph) clone() QuotientGraph {
	out := make(QuotientGraph, len(q))
	for label, succ := range q {
		set := make(map[int]struct{}, len(succ))
		for to := range succ {
			set[to] = struct{}{}
		}
		out[label] = set
	}

	return out
}

// GTHOption configures GTHSolve.
type GTHOption func(*gthOptions)

// gthOptions holds settings for GTHSolve.
type gthOptions struct {
	overwrite bool // use a *matrix.Dense input as the working buffer
}

// defaultGTHOptions returns the default options: work on a private copy.
func defaultGTHOptions() gthOptions {
	return gthOptions{overwrite: false}
}

// WithOverwrite allows GTHSolve to use a *matrix.Dense input's storage as its
// working buffer, saving one O(m²) copy. The input is left in an unspecified
// state. For other Matrix implementations the option has no effect.
func WithOverwrite() GTHOption {
	return func(o *gthOptions) {
		o.overwrite = true
	}
}
