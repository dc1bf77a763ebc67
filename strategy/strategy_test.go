package strategy

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warmpath/warmpath/graph"
	"github.com/warmpath/warmpath/pathfind"
)

func sampleRoute(hops int) *pathfind.Route {
	nodes := make([]*graph.ActorNode, 0, hops+1)
	edges := make([]graph.Edge, 0, hops)
	prev := "n0"
	nodes = append(nodes, &graph.ActorNode{ID: prev})
	for i := 1; i <= hops; i++ {
		id := "n" + string(rune('0'+i))
		nodes = append(nodes, &graph.ActorNode{ID: id})
		edges = append(edges, graph.Edge{From: prev, To: id, Weight: 0.5})
		prev = id
	}
	prob := map[int]int{1: 85, 2: 65, 3: 45}[hops]
	return &pathfind.Route{
		Nodes:              nodes,
		Edges:              edges,
		TotalWeight:        0.5 * float64(hops),
		SuccessProbability: prob,
		ComputedAt:         time.Now(),
	}
}

func TestNewPathStrategy_Classification(t *testing.T) {
	t.Parallel()

	direct, err := NewPathStrategy(sampleRoute(1), []string{"step"})
	require.NoError(t, err)
	assert.Equal(t, KindDirectPath, direct.Kind())
	assert.True(t, direct.IsPath())
	assert.InDelta(t, 0.85, direct.EstimatedAcceptanceRate, 1e-9)

	mutual, err := NewPathStrategy(sampleRoute(2), []string{"step"})
	require.NoError(t, err)
	assert.Equal(t, KindMutualPath, mutual.Kind())
	assert.InDelta(t, 0.65, mutual.EstimatedAcceptanceRate, 1e-9)

	_, err = NewPathStrategy(nil, nil)
	assert.Error(t, err)
}

func TestNewCandidate_AlwaysLowConfidence(t *testing.T) {
	t.Parallel()

	c, err := NewCandidate(&graph.ActorNode{ID: "x"}, "reason", 0.15, 0.3, nil)
	require.NoError(t, err)
	assert.Equal(t, KindCandidate, c.Kind())
	assert.True(t, c.LowConfidence)
	assert.False(t, c.IsPath())

	_, err = NewCandidate(nil, "reason", 0.15, 0.3, nil)
	assert.Error(t, err)
}

func TestNewIntermediary(t *testing.T) {
	t.Parallel()

	i, err := NewIntermediary(&graph.ActorNode{ID: "x"}, "reason", 0.35, 0.6, false, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, KindIntermediary, i.Kind())
	assert.False(t, i.LowConfidence)
	assert.Len(t, i.NextSteps, 2)

	_, err = NewIntermediary(nil, "reason", 0.35, 0.6, false, nil)
	assert.Error(t, err)
}

func TestStrategy_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	orig, err := NewPathStrategy(sampleRoute(2), []string{"ask", "send"})
	require.NoError(t, err)

	data, err := json.Marshal(orig)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"mutual-path"`)

	var decoded ConnectionStrategy
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, KindMutualPath, decoded.Kind())
	assert.Equal(t, orig.NextSteps, decoded.NextSteps)
	require.NotNil(t, decoded.Route)
	assert.Equal(t, 2, decoded.Route.Hops())
	assert.Equal(t, 65, decoded.Route.SuccessProbability)
}

func TestStrategy_UnmarshalRejectsForbiddenTypes(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{
		`{"type":"none"}`,
		`{"type":""}`,
		`{"type":"mystery"}`,
		`{}`,
	} {
		var s ConnectionStrategy
		err := json.Unmarshal([]byte(payload), &s)
		assert.Error(t, err, "payload %s must not decode", payload)
	}
}

func TestStrategy_MarshalRejectsZeroKind(t *testing.T) {
	t.Parallel()

	var s ConnectionStrategy
	_, err := json.Marshal(&s)
	assert.Error(t, err, "the zero-value strategy is unrepresentable on the wire")
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "direct-path", KindDirectPath.String())
	assert.Equal(t, "mutual-path", KindMutualPath.String())
	assert.Equal(t, "intermediary", KindIntermediary.String())
	assert.Equal(t, "candidate", KindCandidate.String())
	assert.Equal(t, "invalid(0)", Kind(0).String())
}
