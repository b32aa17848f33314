// Package graph provides directed and undirected in-memory multigraphs over
// any comparable node label, with structural and path queries.
//
// The two concrete types, Undirected and Directed, share one storage model:
// a mapping from node to its adjacency list. Node iteration follows insertion
// order; adjacency lists follow edge-append order and are never deduplicated,
// so parallel edges and self-loops are represented as repeated entries.
//
// Key features:
//   - NewUndirected / NewDirected: construct from an optional edge list
//   - AddNode / AddEdge: incremental, monotonic growth (no removal)
//   - Structural queries: NodeCount, Nodes, Edges, HasNode, Neighbors,
//     Degree, MinDegree, MaxDegree, IsolatedNodes, IsConnected
//   - Path queries: DepthFirstSearch, Distance, Diameter
//   - DegreeSequence on Undirected: the classical descending degree sequence
//
// Traversal semantics:
//
// DepthFirstSearch returns the FIRST path found, recursing into the first
// unvisited neighbor at every step without backtracking. It is
// path-order-dependent, not guaranteed-shortest; Distance and Diameter
// inherit that approximation. This is the library's defined behavior, not a
// defect — see the method documentation.
//
// Degree follows the classical convention: a self-loop contributes 2.
// IsConnected is a weak check: it only detects totally isolated nodes, not
// disconnected components of size ≥ 2.
//
// Errors:
//
//	ErrNoNodes     - MinDegree/MaxDegree on a graph with no nodes.
//	ErrTooFewNodes - Diameter on a graph with fewer than two nodes.
//
// Absence of a path is data, not an error: DepthFirstSearch reports it via
// its boolean result and Distance via the Unreachable (-1) sentinel.
//
// Concurrency: none. The graph is a mutable value with no internal locking;
// callers that share one across goroutines must supply their own mutual
// exclusion. Traversal recurses once per path node, so an extremely long
// acyclic chain is bounded only by goroutine stack growth.
package graph
