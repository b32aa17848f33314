// Package graph: shared types and sentinel errors.
//
// This file declares Edge, the adjacency storage shared by both graph
// variants, and the sentinel errors for empty-domain queries.

package graph

import "errors"

// Sentinel errors for graph queries over an empty node domain.
var (
	// ErrNoNodes indicates a degree aggregate (MinDegree, MaxDegree) was
	// requested on a graph with no nodes.
	ErrNoNodes = errors.New("graph: graph has no nodes")

	// ErrTooFewNodes indicates Diameter was requested on a graph with fewer
	// than two nodes, so no pair of distinct nodes exists.
	ErrTooFewNodes = errors.New("graph: need at least two nodes")
)

// Unreachable is the Distance result when no path connects two nodes.
const Unreachable = -1

// Edge is an ordered pair of node labels. For Directed graphs the order is
// semantic (From → To); for Undirected graphs it only records which endpoint
// was named first at insertion.
type Edge[N comparable] struct {
	// From is the source (or first-named) node.
	From N

	// To is the destination (or second-named) node.
	To N
}

// adjacency is the storage shared by Undirected and Directed: a mapping from
// node to its adjacency list, plus the node insertion order.
//
// Invariants:
//   - every node referenced as an edge endpoint is a key in list, created on
//     demand by ensure;
//   - order holds exactly the keys of list, in first-insertion order;
//   - adjacency lists are append-only and never deduplicated.
//
// Both variants embed adjacency, so every query method declared on it is
// promoted onto the public types.
type adjacency[N comparable] struct {
	order []N       // node keys in insertion order
	list  map[N][]N // node → adjacency list (duplicates permitted)
}

func newAdjacency[N comparable]() adjacency[N] {
	return adjacency[N]{list: make(map[N][]N)}
}

// ensure registers n as a node key with an empty adjacency list if absent.
// Idempotent. Complexity: O(1) amortized.
func (a *adjacency[N]) ensure(n N) {
	if _, exists := a.list[n]; exists {
		return
	}
	a.list[n] = nil
	a.order = append(a.order, n)
}
