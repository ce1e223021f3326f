package scc_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochmat/scc"
)

// build returns a digraph on n vertices with the given edges.
func build(t testing.TB, n int, edges [][2]int) *scc.Digraph {
	t.Helper()
	g, err := scc.NewDigraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestComponents_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestComponents_NilGraph(t *testing.T) {
	_, labels, err := scc.Components(nil)
	assert.Nil(t, labels)
	assert.ErrorIs(t, err, scc.ErrGraphNil)
}

// TestComponents_Empty covers a graph with no vertices.
func TestComponents_Empty(t *testing.T) {
	k, labels, err := scc.Components(build(t, 0, nil))
	require.NoError(t, err)
	assert.Equal(t, 0, k)
	assert.Empty(t, labels)
}

// TestComponents_NoEdges yields one singleton per vertex.
func TestComponents_NoEdges(t *testing.T) {
	k, labels, err := scc.Components(build(t, 3, nil))
	require.NoError(t, err)
	assert.Equal(t, 3, k)
	assert.Equal(t, []int{0, 1, 2}, labels)
}

// TestComponents_SelfLoopsStaySingletons checks that self-loops alone do not merge.
func TestComponents_SelfLoopsStaySingletons(t *testing.T) {
	k, labels, err := scc.Components(build(t, 2, [][2]int{{0, 0}, {1, 1}}))
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Equal(t, []int{0, 1}, labels)
}

// TestComponents_Cycle merges a 3-cycle into one component.
func TestComponents_Cycle(t *testing.T) {
	k, labels, err := scc.Components(build(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}))
	require.NoError(t, err)
	assert.Equal(t, 1, k)
	assert.Equal(t, []int{0, 0, 0}, labels)
}

// TestComponents_CanonicalLabels uses a graph where Tarjan completes the
// component of the higher vertices first; labels must still follow the
// smallest member.
//
//	0 ⇄ 3  →  1 ⇄ 2     4 (isolated)
func TestComponents_CanonicalLabels(t *testing.T) {
	g := build(t, 5, [][2]int{{0, 3}, {3, 0}, {3, 1}, {1, 2}, {2, 1}})
	k, labels, err := scc.Components(g)
	require.NoError(t, err)
	assert.Equal(t, 3, k)
	assert.Equal(t, []int{0, 1, 1, 0, 2}, labels)
}

// reach computes the reachability closure by repeated DFS (reference oracle).
func reach(g *scc.Digraph) [][]bool {
	n := g.Order()
	r := make([][]bool, n)
	for s := 0; s < n; s++ {
		r[s] = make([]bool, n)
		stack := []int{s}
		r[s][s] = true
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range g.Successors(u) {
				if !r[s][v] {
					r[s][v] = true
					stack = append(stack, v)
				}
			}
		}
	}

	return r
}

// TestComponents_MatchesReachability compares against mutual reachability
// on seeded random sparse digraphs.
func TestComponents_MatchesReachability(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(12)
		g := build(t, n, nil)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if rng.Float64() < 0.15 {
					require.NoError(t, g.AddEdge(u, v))
				}
			}
		}
		k, labels, err := scc.Components(g)
		require.NoError(t, err)
		require.Len(t, labels, n)

		r := reach(g)
		seen := make(map[int]bool)
		for u := 0; u < n; u++ {
			require.GreaterOrEqual(t, labels[u], 0)
			require.Less(t, labels[u], k)
			seen[labels[u]] = true
			for v := 0; v < n; v++ {
				mutual := r[u][v] && r[v][u]
				require.Equalf(t, mutual, labels[u] == labels[v],
					"trial %d: u=%d v=%d", trial, u, v)
			}
		}
		require.Len(t, seen, k) // labels are dense 0..k-1
	}
}

// TestAddEdge_OutOfRange rejects endpoints outside [0, n).
func TestAddEdge_OutOfRange(t *testing.T) {
	g := build(t, 2, nil)
	assert.ErrorIs(t, g.AddEdge(0, 2), scc.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 0), scc.ErrVertexOutOfRange)
	assert.Equal(t, 0, g.Size())
	assert.Nil(t, g.Successors(5))

	_, err := scc.NewDigraph(-1)
	assert.ErrorIs(t, err, scc.ErrNegativeOrder)
}
