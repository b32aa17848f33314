// Package graph: the Directed variant.

package graph

// Directed is a graph whose edges are one-way: inserting an edge extends
// only the source node's adjacency list. It shares all query methods with
// Undirected through the embedded storage.
type Directed[N comparable] struct {
	adjacency[N]
}

// NewDirected creates a directed graph and inserts the given edges in order
// via AddEdge. With no edges the graph starts empty.
func NewDirected[N comparable](edges ...Edge[N]) *Directed[N] {
	g := &Directed[N]{adjacency: newAdjacency[N]()}
	for _, e := range edges {
		g.AddEdge(e.From, e.To)
	}

	return g
}

// AddEdge connects from → to: to is appended to from's adjacency list, and
// to is registered as a node so it is queryable, but its own adjacency list
// is not modified. Parallel edges accumulate as repeated entries; a
// self-loop appends the node to its own list once.
// Complexity: O(1) amortized.
func (g *Directed[N]) AddEdge(from, to N) {
	g.ensure(to)
	g.ensure(from)
	g.list[from] = append(g.list[from], to)
}
