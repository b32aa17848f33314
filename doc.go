// Package graphs is a small in-memory playground for building and querying
// directed and undirected graphs over any comparable node label.
//
// What is graphs?
//
//	A tiny, zero-dependency library that brings together:
//		• Core primitives: build a graph from an edge list, grow it node by node
//		• Structural queries: degree, degree sequence, isolated nodes, connectivity
//		• Path queries: depth-first search, distance, diameter
//		• Generators: Path, Cycle, Complete and Star topologies
//
// Why choose graphs?
//
//   - Beginner-friendly — minimal API, clear, intuitive naming
//   - Deterministic — nodes iterate in insertion order, edges in append order
//   - Pure Go — no cgo, no hidden deps, generic over any comparable label
//   - Faithful — multigraphs, self-loops and the classical loop-counts-twice
//     degree convention are all first-class
//
// Everything is organized under two subpackages:
//
//	graph/   — Undirected and Directed graph types plus all queries
//	builder/ — deterministic constructors for standard topologies
//
// Quick ASCII example:
//
//	    a───b
//	    │
//	    c──┐
//	    └──┘ (self-loop)
//
//	g := graph.NewUndirected(
//		graph.Edge[string]{From: "a", To: "b"},
//		graph.Edge[string]{From: "a", To: "c"},
//		graph.Edge[string]{From: "c", To: "c"},
//	)
//	path, _ := g.DepthFirstSearch("b", "c") // [b a c]
//	d, _ := g.Diameter()                    // 2
package graphs
