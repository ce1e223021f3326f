// Package scc: Tarjan's strongly connected components.
//
// A single depth-first pass assigns every vertex a discovery index and a
// lowlink (smallest index reachable through the DFS subtree plus one back or
// cross edge into the current stack). A vertex whose lowlink equals its own
// index is the root of a component; popping the stack down to it yields the
// whole component.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion, explicit stack and per-vertex arrays)
package scc

const unvisited = -1

// tarjan encapsulates state for one Components run.
type tarjan struct {
	graph   *Digraph
	index   []int  // discovery index per vertex, unvisited until seen
	lowlink []int  // smallest index reachable from the vertex's subtree
	onStack []bool // membership flag for stack
	stack   []int  // vertices of components still being assembled
	next    int    // next discovery index to hand out
	comp    []int  // raw component id per vertex, in completion order
	count   int    // number of components completed so far
}

// Components labels every vertex of g with its strongly connected component.
// It returns the number of components k and labels with labels[v] in [0, k).
// Labels are canonical: component ids increase with each component's smallest
// vertex, so vertex 0 is always in component 0.
//
// Edge cases: a graph with no edges yields n singleton components; a
// self-loop alone never merges anything. An empty graph yields (0, []).
func Components(g *Digraph) (int, []int, error) {
	if g == nil {
		return 0, nil, ErrGraphNil
	}
	n := g.Order()
	t := &tarjan{
		graph:   g,
		index:   make([]int, n),
		lowlink: make([]int, n),
		onStack: make([]bool, n),
		stack:   make([]int, 0, n),
		comp:    make([]int, n),
	}
	for v := range t.index {
		t.index[v] = unvisited
	}
	// Drive the DFS from every vertex not reached yet, in ascending order.
	for v := 0; v < n; v++ {
		if t.index[v] == unvisited {
			t.visit(v)
		}
	}

	return t.count, canonicalize(t.comp, t.count), nil
}

// visit runs the recursive strong-connect step from v.
func (t *tarjan) visit(v int) {
	t.index[v] = t.next
	t.lowlink[v] = t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.graph.Successors(v) {
		switch {
		case t.index[w] == unvisited:
			t.visit(w)
			t.lowlink[v] = min(t.lowlink[v], t.lowlink[w])
		case t.onStack[w]:
			t.lowlink[v] = min(t.lowlink[v], t.index[w])
		}
	}

	if t.lowlink[v] != t.index[v] {
		return
	}
	// v is a root: pop its component.
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		t.comp[w] = t.count
		if w == v {
			break
		}
	}
	t.count++
}

// canonicalize renumbers raw ids so that ids appear in first-seen order when
// scanning vertices 0..n-1.
func canonicalize(raw []int, count int) []int {
	remap := make([]int, count)
	for i := range remap {
		remap[i] = unvisited
	}
	labels := make([]int, len(raw))
	next := 0
	for v, id := range raw {
		if remap[id] == unvisited {
			remap[id] = next
			next++
		}
		labels[v] = remap[id]
	}

	return labels
}
