// Package graph: structural query implementations.
//
// Every method in this file is declared on the shared adjacency storage and
// promoted onto both Undirected and Directed. None of them depends on edge
// semantics; the variants differ only in AddEdge (see undirected.go,
// directed.go) and the traversal methods live in traverse.go.

package graph

import (
	"fmt"
	"slices"
	"strings"
)

// NodeCount returns the number of distinct node keys, including isolated and
// zero-adjacency nodes.
// Complexity: O(1).
func (a *adjacency[N]) NodeCount() int {
	return len(a.list)
}

// Nodes returns a copy of all node keys in insertion order.
// Complexity: O(V).
func (a *adjacency[N]) Nodes() []N {
	return slices.Clone(a.order)
}

// Edges returns every (node, adjacent-node) pair in mapping-then-list order.
//
// Because undirected insertion mirrors each edge into both endpoint lists,
// each connected pair appears twice (once per direction) on an Undirected
// graph, while a self-loop appears once per insertion. This asymmetric
// duplication is a property of the representation and is preserved as-is.
// Complexity: O(V+E).
func (a *adjacency[N]) Edges() []Edge[N] {
	var edges []Edge[N]
	for _, n := range a.order {
		for _, m := range a.list[n] {
			edges = append(edges, Edge[N]{From: n, To: m})
		}
	}

	return edges
}

// AddNode registers n as a node with an empty adjacency list.
// Adding an existing node is a no-op (idempotent); nodes are also registered
// automatically when an edge touches them.
// Complexity: O(1) amortized.
func (a *adjacency[N]) AddNode(n N) {
	a.ensure(n)
}

// HasNode reports whether n is a node key in the graph.
// Complexity: O(1).
func (a *adjacency[N]) HasNode(n N) bool {
	_, exists := a.list[n]

	return exists
}

// Neighbors returns a copy of n's adjacency list in append order, including
// duplicates. It returns nil when n is absent and, unlike Degree, does not
// register n.
// Complexity: O(deg(n)).
func (a *adjacency[N]) Neighbors(n N) []N {
	return slices.Clone(a.list[n])
}

// IsolatedNodes returns, in insertion order, every node whose adjacency list
// is empty and that appears in no other node's adjacency list. A node with a
// self-loop is never isolated: it appears in its own list.
// Complexity: O(V·E) worst case.
func (a *adjacency[N]) IsolatedNodes() []N {
	var isolated []N
	for _, n := range a.order {
		if len(a.list[n]) == 0 && !a.referenced(n) {
			isolated = append(isolated, n)
		}
	}

	return isolated
}

// referenced reports whether n appears as a target in any adjacency list.
func (a *adjacency[N]) referenced(n N) bool {
	for _, neighbors := range a.list {
		if slices.Contains(neighbors, n) {
			return true
		}
	}

	return false
}

// Degree returns the number of adjacency entries for n, with each self-loop
// entry counted twice per the classical graph-theory convention.
//
// Side effect: querying an absent node registers it with an empty adjacency
// list (and therefore degree 0), mirroring the on-demand node creation used
// by the edge-insertion paths.
// Complexity: O(deg(n)).
func (a *adjacency[N]) Degree(n N) int {
	a.ensure(n)

	deg := len(a.list[n])
	for _, m := range a.list[n] {
		if m == n {
			deg++ // self-loop counts twice
		}
	}

	return deg
}

// MinDegree returns the smallest Degree over all nodes.
// Returns ErrNoNodes if the graph has no nodes: a minimum over an empty
// domain is undefined.
// Complexity: O(V+E).
func (a *adjacency[N]) MinDegree() (int, error) {
	if len(a.order) == 0 {
		return 0, ErrNoNodes
	}

	minDeg := a.Degree(a.order[0])
	for _, n := range a.order[1:] {
		if d := a.Degree(n); d < minDeg {
			minDeg = d
		}
	}

	return minDeg, nil
}

// MaxDegree returns the largest Degree over all nodes.
// Returns ErrNoNodes if the graph has no nodes.
// Complexity: O(V+E).
func (a *adjacency[N]) MaxDegree() (int, error) {
	if len(a.order) == 0 {
		return 0, ErrNoNodes
	}

	maxDeg := a.Degree(a.order[0])
	for _, n := range a.order[1:] {
		if d := a.Degree(n); d > maxDeg {
			maxDeg = d
		}
	}

	return maxDeg, nil
}

// IsConnected reports whether the graph has no isolated nodes.
//
// Known limitation: this is a weak connectivity check. It detects totally
// isolated nodes only, not disconnected components of size ≥ 2 — two disjoint
// edges still count as "connected". Preserved as the library's defined
// behavior.
// Complexity: O(V·E) worst case.
func (a *adjacency[N]) IsConnected() bool {
	return len(a.IsolatedNodes()) == 0
}

// String renders one "<node>: <adjacency-list>" line per node, in insertion
// order. The output is a debugging aid, not a parseable format.
func (a *adjacency[N]) String() string {
	var b strings.Builder
	for i, n := range a.order {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%v: %v", n, a.list[n])
	}

	return b.String()
}
