package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warmpath/warmpath/graph"
)

func buildGraph(t *testing.T, ids []string, edges []graph.Edge) *graph.Store {
	t.Helper()

	g := graph.NewStore()
	for _, id := range ids {
		require.NoError(t, g.AddNode(&graph.ActorNode{ID: id, Name: "Node " + id}))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}
	return g
}

func TestShortestHopPath_Direct(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, []string{"a", "b"}, []graph.Edge{
		{From: "a", To: "b", Weight: 0.5},
	})

	path, ok := ShortestHopPath(g, "a", "b")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, path)
}

func TestShortestHopPath_MeetInMiddle(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, []string{"a", "b", "c", "d", "e"}, []graph.Edge{
		{From: "a", To: "b", Weight: 0.5},
		{From: "b", To: "c", Weight: 0.5},
		{From: "c", To: "d", Weight: 0.5},
		{From: "d", To: "e", Weight: 0.5},
	})

	path, ok := ShortestHopPath(g, "a", "e")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, path)
}

func TestShortestHopPath_PrefersFewerHops(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, []string{"a", "b", "c", "d"}, []graph.Edge{
		{From: "a", To: "b", Weight: 0.5},
		{From: "b", To: "c", Weight: 0.5},
		{From: "c", To: "d", Weight: 0.5},
		{From: "a", To: "d", Weight: 0.9},
	})

	path, ok := ShortestHopPath(g, "a", "d")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "d"}, path, "hop count, not weight, decides")
}

func TestShortestHopPath_RespectsDirection(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, []string{"a", "b"}, []graph.Edge{
		{From: "b", To: "a", Weight: 0.5},
	})

	_, ok := ShortestHopPath(g, "a", "b")
	assert.False(t, ok)
}

func TestShortestHopPath_NoPath(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, []string{"a", "b", "c"}, []graph.Edge{
		{From: "a", To: "b", Weight: 0.5},
	})

	_, ok := ShortestHopPath(g, "a", "c")
	assert.False(t, ok)

	_, ok = ShortestHopPath(g, "a", "ghost")
	assert.False(t, ok)
}

func TestShortestHopPath_SelfIsTrivial(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, []string{"a"}, nil)

	path, ok := ShortestHopPath(g, "a", "a")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, path)
}
