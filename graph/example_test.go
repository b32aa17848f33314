package graph_test

import (
	"fmt"

	"github.com/carlbordum/graphs/graph"
)

// ExampleNewUndirected walks through the typical session: build from an edge
// list, inspect the adjacency, spot an isolated node, and run path queries.
// Graph structure (with a self-loop on c):
//
//	b───a───c──┐
//	        └──┘
func ExampleNewUndirected() {
	g := graph.NewUndirected(
		graph.Edge[string]{From: "a", To: "b"},
		graph.Edge[string]{From: "a", To: "c"},
		graph.Edge[string]{From: "c", To: "c"},
	)

	fmt.Println(g)
	fmt.Println(g.IsolatedNodes())

	g.AddNode("d")
	fmt.Println(g.IsolatedNodes())

	path, _ := g.DepthFirstSearch("b", "c")
	fmt.Println(path)
	fmt.Println(g.Distance("a", "b"))

	diameter, _ := g.Diameter()
	fmt.Println(diameter)

	// Output:
	// a: [b c]
	// b: [a]
	// c: [a c]
	// []
	// [d]
	// [b a c]
	// 1
	// 2
}

// ExampleNewDirected shows one-way edge semantics: the target of an edge is
// registered as a node, but gains no adjacency of its own.
func ExampleNewDirected() {
	g := graph.NewDirected(
		graph.Edge[string]{From: "a", To: "b"},
	)

	fmt.Println(g.NodeCount())
	fmt.Println(g.Neighbors("b"))
	fmt.Println(g.Distance("a", "b"), g.Distance("b", "a"))

	// Output:
	// 2
	// []
	// 1 -1
}

// ExampleUndirected_DegreeSequence computes the classical degree sequence.
func ExampleUndirected_DegreeSequence() {
	g := graph.NewUndirected(
		graph.Edge[string]{From: "a", To: "b"},
		graph.Edge[string]{From: "a", To: "c"},
	)

	fmt.Println(g.DegreeSequence())

	// Output:
	// [2 1 1]
}
