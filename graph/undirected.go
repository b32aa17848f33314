// Package graph: the Undirected variant.

package graph

import "sort"

// Undirected is a graph whose edges are two-way: inserting an edge mirrors
// it into both endpoint adjacency lists. It shares all query methods with
// Directed through the embedded storage.
type Undirected[N comparable] struct {
	adjacency[N]
}

// NewUndirected creates an undirected graph and inserts the given edges in
// order via AddEdge. With no edges the graph starts empty.
func NewUndirected[N comparable](edges ...Edge[N]) *Undirected[N] {
	g := &Undirected[N]{adjacency: newAdjacency[N]()}
	for _, e := range edges {
		g.AddEdge(e.From, e.To)
	}

	return g
}

// AddEdge connects u with v symmetrically: v is appended to u's adjacency
// list and u to v's, registering either endpoint on demand. Parallel edges
// accumulate as repeated entries.
//
// A self-loop (u == v) appends a single entry to u's own list, not two;
// Degree still counts it twice.
// Complexity: O(1) amortized.
func (g *Undirected[N]) AddEdge(u, v N) {
	g.ensure(u)
	if u == v {
		g.list[u] = append(g.list[u], u)
		return
	}
	g.ensure(v)
	g.list[u] = append(g.list[u], v)
	g.list[v] = append(g.list[v], u)
}

// DegreeSequence returns the Degree of every node sorted in descending
// order — the classical degree sequence of an undirected graph.
// Complexity: O(V log V + E).
func (g *Undirected[N]) DegreeSequence() []int {
	seq := make([]int, 0, len(g.order))
	for _, n := range g.order {
		seq = append(seq, g.Degree(n))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(seq)))

	return seq
}
