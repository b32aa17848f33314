package graph_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlbordum/graphs/graph"
)

// buildChain creates a directed chain 0→1→…→n-1 with string labels.
func buildChain(n int) *graph.Directed[string] {
	g := graph.NewDirected[string]()
	for i := 0; i < n-1; i++ {
		g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1))
	}

	return g
}

func TestDepthFirstSearch_FirstPathFound(t *testing.T) {
	g := buildTriangleLoop()

	path, found := g.DepthFirstSearch("b", "c")
	require.True(t, found)
	assert.Equal(t, []string{"b", "a", "c"}, path)
}

func TestDepthFirstSearch_NoBacktracking(t *testing.T) {
	g := buildTriangleLoop()

	// From a the search commits to b first, dead-ends there and does not
	// back up to try c. Defined behavior: no path is reported.
	path, found := g.DepthFirstSearch("a", "c")
	assert.False(t, found)
	assert.Nil(t, path)
}

func TestDepthFirstSearch_StartEqualsEnd(t *testing.T) {
	g := buildTriangleLoop()

	path, found := g.DepthFirstSearch("a", "a")
	require.True(t, found)
	assert.Equal(t, []string{"a"}, path)
}

func TestDepthFirstSearch_StartNotInGraph(t *testing.T) {
	g := buildTriangleLoop()

	path, found := g.DepthFirstSearch("nope", "a")
	assert.False(t, found)
	assert.Nil(t, path)
}

func TestDepthFirstSearch_FollowsChain(t *testing.T) {
	g := buildChain(5)

	path, found := g.DepthFirstSearch("N0", "N4")
	require.True(t, found)
	assert.Equal(t, []string{"N0", "N1", "N2", "N3", "N4"}, path)
}

func TestDistance_SelfIsZero(t *testing.T) {
	g := buildTriangleLoop()
	assert.Equal(t, 0, g.Distance("a", "a"))
	assert.Equal(t, 0, g.Distance("c", "c"))
}

func TestDistance_AdjacentAndTwoHop(t *testing.T) {
	g := buildTriangleLoop()
	assert.Equal(t, 1, g.Distance("a", "b"))
	assert.Equal(t, 2, g.Distance("b", "c"))
}

func TestDistance_Unreachable(t *testing.T) {
	g := graph.NewDirected(graph.Edge[string]{From: "a", To: "b"})
	// Edges are one-way: nothing leads from b back to a.
	assert.Equal(t, graph.Unreachable, g.Distance("b", "a"))
}

func TestDiameter_Triangle(t *testing.T) {
	g := buildTriangleLoop()

	d, err := g.Diameter()
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestDiameter_Chain(t *testing.T) {
	g := buildChain(4)

	d, err := g.Diameter()
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestDiameter_TooFewNodes(t *testing.T) {
	empty := graph.NewUndirected[string]()
	_, err := empty.Diameter()
	assert.ErrorIs(t, err, graph.ErrTooFewNodes)

	single := graph.NewUndirected[string]()
	single.AddNode("a")
	_, err = single.Diameter()
	assert.ErrorIs(t, err, graph.ErrTooFewNodes)
}

func TestDiameter_AllPairsUnreachable(t *testing.T) {
	g := graph.NewUndirected[string]()
	g.AddNode("a")
	g.AddNode("b")

	d, err := g.Diameter()
	require.NoError(t, err)
	assert.Equal(t, graph.Unreachable, d)
}
