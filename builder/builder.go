// Package builder: topology constructor implementations.
//
// Contract shared by all constructors:
//   - Validate n against the topology's minimum (else ErrTooFewNodes,
//     wrapped with the constructor name and offending value).
//   - Add nodes via cfg.label in ascending index order, then emit edges in a
//     fixed per-topology order, so results are byte-for-byte reproducible.
//   - Never panic at runtime.

package builder

import (
	"fmt"

	"github.com/carlbordum/graphs/graph"
)

// Per-constructor parameter minima.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
)

// Path builds the simple path P_n: edges (i-1)─i for i = 1..n-1.
// Returns ErrTooFewNodes when n < 2.
// Complexity: O(n).
func Path(n int, opts ...Option) (*graph.Undirected[string], error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}
	cfg := resolve(opts)

	g := newLabeled(n, cfg)
	for i := 1; i < n; i++ {
		g.AddEdge(cfg.label(i-1), cfg.label(i))
	}

	return g, nil
}

// Cycle builds the cycle C_n: a path P_n closed with the edge (n-1)─0.
// Returns ErrTooFewNodes when n < 3.
// Complexity: O(n).
func Cycle(n int, opts ...Option) (*graph.Undirected[string], error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}
	cfg := resolve(opts)

	g := newLabeled(n, cfg)
	for i := 1; i < n; i++ {
		g.AddEdge(cfg.label(i-1), cfg.label(i))
	}
	g.AddEdge(cfg.label(n-1), cfg.label(0))

	return g, nil
}

// Complete builds the complete graph K_n: one edge for every pair i < j.
// K_1 is a single isolated node. Returns ErrTooFewNodes when n < 1.
// Complexity: O(n^2).
func Complete(n int, opts ...Option) (*graph.Undirected[string], error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}
	cfg := resolve(opts)

	g := newLabeled(n, cfg)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(cfg.label(i), cfg.label(j))
		}
	}

	return g, nil
}

// Star builds the star S_n: node 0 is the hub, nodes 1..n-1 are leaves.
// Returns ErrTooFewNodes when n < 2.
// Complexity: O(n).
func Star(n int, opts ...Option) (*graph.Undirected[string], error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
	}
	cfg := resolve(opts)

	g := newLabeled(n, cfg)
	hub := cfg.label(0)
	for i := 1; i < n; i++ {
		g.AddEdge(hub, cfg.label(i))
	}

	return g, nil
}

// resolve applies opts over the default configuration.
func resolve(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// newLabeled creates an empty undirected graph with nodes 0..n-1 registered
// in ascending index order, so node iteration order is independent of the
// edge emission order of the calling constructor.
func newLabeled(n int, cfg config) *graph.Undirected[string] {
	g := graph.NewUndirected[string]()
	for i := 0; i < n; i++ {
		g.AddNode(cfg.label(i))
	}

	return g
}
