package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warmpath/warmpath/graph"
	"github.com/warmpath/warmpath/log"
	"github.com/warmpath/warmpath/store"
	"github.com/warmpath/warmpath/store/memory"
	"github.com/warmpath/warmpath/strategy"
)

func newTestEngine(t *testing.T) (*Engine, *memory.MemoryKV) {
	t.Helper()

	kv := memory.NewMemoryKV()
	return New(kv, Options{Logger: &log.NoOpLogger{}}), kv
}

func seedSnapshot(t *testing.T, kv store.KV, ids []string, edges map[[2]string]float64) {
	t.Helper()

	g := graph.NewStore()
	for _, id := range ids {
		require.NoError(t, g.AddNode(&graph.ActorNode{ID: id, Name: "Node " + id}))
	}
	for pair, w := range edges {
		require.NoError(t, g.AddEdge(graph.Edge{From: pair[0], To: pair[1], Weight: w}))
		require.NoError(t, g.AddEdge(graph.Edge{From: pair[1], To: pair[0], Weight: w}))
	}
	require.NoError(t, store.SaveSnapshot(context.Background(), kv, store.DefaultSnapshotKey, g.Export()))
}

func TestEngine_DirectPathFromSnapshot(t *testing.T) {
	t.Parallel()

	e, kv := newTestEngine(t)
	seedSnapshot(t, kv, []string{"a", "b"}, map[[2]string]float64{{"a", "b"}: 0.3})

	res, err := e.Plan(context.Background(), &graph.ActorNode{ID: "a"}, &graph.ActorNode{ID: "b"})
	require.NoError(t, err)
	require.NotNil(t, res.Strategy)
	assert.Equal(t, strategy.KindDirectPath, res.Strategy.Kind())
	assert.InDelta(t, 0.85, res.Strategy.EstimatedAcceptanceRate, 1e-9)
	assert.Equal(t, StateStrategyReady, res.State)
	assert.False(t, res.FromCache)
}

func TestEngine_BareGraphYieldsCandidate(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)

	source := &graph.ActorNode{ID: "a", Name: "Ana", Skills: []string{"Go"}}
	target := &graph.ActorNode{ID: "b", Name: "Bo", Skills: []string{"Go"}}
	res, err := e.Plan(context.Background(), source, target)
	require.NoError(t, err)
	require.NotNil(t, res.Strategy)
	assert.Equal(t, strategy.KindCandidate, res.Strategy.Kind())
}

func TestEngine_SecondRequestHitsCache(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	ctx := context.Background()
	source := &graph.ActorNode{ID: "a", Name: "Ana"}
	target := &graph.ActorNode{ID: "b", Name: "Bo"}

	first, err := e.Plan(ctx, source, target)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := e.Plan(ctx, source, target)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Strategy.Kind(), second.Strategy.Kind())
	assert.Greater(t, second.Token, first.Token)
}

func TestEngine_PersistsEnrichedSnapshot(t *testing.T) {
	t.Parallel()

	e, kv := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Plan(ctx, &graph.ActorNode{ID: "a"}, &graph.ActorNode{ID: "b"})
	require.NoError(t, err)

	// Both endpoints were upserted and written back; a fresh engine over
	// the same KV sees them.
	snap, found, err := store.LoadSnapshot(ctx, kv, store.DefaultSnapshotKey)
	require.NoError(t, err)
	require.True(t, found)

	g := graph.NewStore()
	require.NoError(t, g.Import(snap))
	assert.True(t, g.HasNode("a"))
	assert.True(t, g.HasNode("b"))
}

func TestEngine_MissingSource(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)

	res, err := e.Plan(context.Background(), nil, &graph.ActorNode{ID: "b"})
	require.Error(t, err)
	var detect *strategy.UserDetectionError
	assert.ErrorAs(t, err, &detect)
	assert.Equal(t, StateFailed, res.State)
	assert.Nil(t, res.Strategy)
}

func TestEngine_SelfTarget(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)

	res, err := e.Plan(context.Background(), &graph.ActorNode{ID: "a"}, &graph.ActorNode{ID: "a"})
	require.Error(t, err)
	var self *strategy.SelfTargetError
	assert.ErrorAs(t, err, &self)
	assert.Equal(t, StateFailed, res.State)
}

func TestEngine_TokensSupersede(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	ctx := context.Background()

	first, err := e.Plan(ctx, &graph.ActorNode{ID: "a"}, &graph.ActorNode{ID: "b"})
	require.NoError(t, err)
	assert.False(t, e.IsStale(first.Token))

	second, err := e.Plan(ctx, &graph.ActorNode{ID: "a"}, &graph.ActorNode{ID: "c"})
	require.NoError(t, err)

	assert.True(t, e.IsStale(first.Token), "an older token is stale once a newer request was issued")
	assert.False(t, e.IsStale(second.Token))
	assert.Equal(t, second.Token, e.LatestToken())
}
