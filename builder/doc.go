// Package builder provides deterministic constructors for standard graph
// topologies on top of graph.Undirected.
//
// Constructors:
//   - Path(n)     — the simple path P_n, n ≥ 2
//   - Cycle(n)    — the cycle C_n, n ≥ 3
//   - Complete(n) — the complete graph K_n, n ≥ 1
//   - Star(n)     — the star S_n (one hub, n-1 leaves), n ≥ 2
//
// Node labels are produced by an index → label function, configurable with
// WithLabel; the default yields "V0", "V1", …. Nodes are added in ascending
// index order and edges in a fixed order per topology, so every constructor
// is fully deterministic.
//
// Error policy: only package-level sentinels are exposed; callers branch
// with errors.Is. Implementations attach context (constructor name and
// offending parameter) by wrapping with %w.
package builder
