// Package graph: path queries (DepthFirstSearch, Distance, Diameter).
//
// Traversal contract: DepthFirstSearch commits to the first unvisited
// neighbor at every step and never backtracks, so the path it finds depends
// on adjacency-list order and is not guaranteed shortest. Distance and
// Diameter are defined in terms of that search and inherit the
// approximation. Callers that need true shortest paths need a different
// library; this one preserves the first-path-found contract deliberately.

package graph

import "slices"

// DepthFirstSearch returns the first path found from start to end, inclusive
// of both endpoints, exploring each adjacency list in append order and
// recursing into the first unvisited neighbor.
//
// No backtracking is performed: if the chosen branch dead-ends, the search
// reports no path rather than trying alternative neighbors. The result is
// therefore path-order-dependent and not guaranteed shortest — this is the
// method's defined behavior.
//
// The second result is false when no path was found: either start is not in
// the graph, or the branch was exhausted without reaching end. start == end
// always succeeds with the single-node path, even for an unregistered node,
// since the endpoint check precedes the membership check.
// Complexity: O(V^2) worst case (visited check is a scan of the path).
func (a *adjacency[N]) DepthFirstSearch(start, end N) ([]N, bool) {
	return a.search(start, end, nil)
}

// search extends path by node and recurses into its first unvisited
// neighbor. Recursion depth equals the path length, bounded only by
// goroutine stack growth.
func (a *adjacency[N]) search(node, end N, path []N) ([]N, bool) {
	path = append(path, node)
	if node == end {
		return path, true
	}
	if _, exists := a.list[node]; !exists {
		return nil, false
	}
	for _, next := range a.list[node] {
		if !slices.Contains(path, next) {
			// Commit to the first unvisited neighbor; no backtracking.
			return a.search(next, end, path)
		}
	}

	return nil, false
}

// Distance returns the edge count of the path DepthFirstSearch finds from
// start to end, or Unreachable (-1) when no path is found. Callers must
// check for the sentinel explicitly.
//
// Because the underlying search is first-path-found, the result is only the
// true graph distance when that path happens to be shortest.
func (a *adjacency[N]) Distance(start, end N) int {
	path, found := a.DepthFirstSearch(start, end)
	if !found {
		return Unreachable
	}

	return len(path) - 1
}

// Diameter returns the maximum Distance over all pairs of distinct nodes,
// taking each unordered pair once in insertion order (forward direction
// only). Returns ErrTooFewNodes when the graph has fewer than two nodes.
//
// A fully disconnected node set yields Unreachable, since every pairwise
// Distance is the sentinel.
// Complexity: O(V^2) searches.
func (a *adjacency[N]) Diameter() (int, error) {
	if len(a.order) < 2 {
		return 0, ErrTooFewNodes
	}

	// Distance is never below Unreachable, so the sentinel is a safe floor.
	diameter := Unreachable
	for i := 0; i < len(a.order); i++ {
		for j := i + 1; j < len(a.order); j++ {
			if d := a.Distance(a.order[i], a.order[j]); d > diameter {
				diameter = d
			}
		}
	}

	return diameter, nil
}
