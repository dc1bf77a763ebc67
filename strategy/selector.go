package strategy

import (
	"context"
	"fmt"
	"sort"

	"github.com/warmpath/warmpath/graph"
	"github.com/warmpath/warmpath/log"
	"github.com/warmpath/warmpath/match"
	"github.com/warmpath/warmpath/pathfind"
)

// Fallback acceptance rates, deliberately below every path tier.
const (
	intermediaryAcceptanceRate = 0.35
	candidateAcceptanceRate    = 0.15

	// lowConfidenceScoreFloor marks intermediaries whose match score is
	// too weak to trust.
	lowConfidenceScoreFloor = 50
)

// Options configures a Selector.
type Options struct {
	// MaxHops caps the weighted search. Zero means the pathfind default.
	MaxHops int

	// Logger receives anomaly and invariant reports. Nil means the
	// package default.
	Logger log.Logger
}

// Selector orchestrates the search layers into a single guarantee: for
// any distinct source and target over a non-trivial graph it produces a
// strategy, degrading from weighted routes to intermediary and candidate
// suggestions. It never produces an empty result.
type Selector struct {
	graph  *graph.Store
	model  *match.Model
	opts   Options
	logger log.Logger
}

// NewSelector creates a selector over the given graph store.
func NewSelector(g *graph.Store, opts Options) *Selector {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefaultLogger()
	}
	return &Selector{
		graph:  g,
		model:  match.NewModel(g),
		opts:   opts,
		logger: logger,
	}
}

// Recommend produces a connection strategy from source to target.
//
// Failure modes are limited to the two fail-fast errors (SelfTargetError,
// EmptyGraphError) and the internal invariant guard; everything else,
// including an exhausted hop cap, resolves to a strategy.
func (s *Selector) Recommend(ctx context.Context, source, target *graph.ActorNode) (*ConnectionStrategy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if source == nil || source.ID == "" {
		return nil, &UserDetectionError{Reason: "source profile is missing an id"}
	}
	if target == nil || target.ID == "" {
		return nil, &EmptyGraphError{Nodes: s.graph.Len()}
	}
	if source.ID == target.ID {
		return nil, &SelfTargetError{ID: source.ID}
	}

	// Defensive upserts: the search must be able to rely on both
	// endpoints being present.
	if err := s.graph.AddNode(source); err != nil {
		return nil, fmt.Errorf("upsert source: %w", err)
	}
	if err := s.graph.AddNode(target); err != nil {
		return nil, fmt.Errorf("upsert target: %w", err)
	}

	if s.graph.Len() < 2 {
		return nil, &EmptyGraphError{Nodes: s.graph.Len()}
	}

	if route, ok := pathfind.FindWeightedPath(s.graph, source.ID, target.ID, pathfind.Options{
		MaxHops: s.opts.MaxHops,
		Logger:  s.logger,
	}); ok {
		strat, err := NewPathStrategy(route, routeSteps(route))
		if err != nil {
			return nil, s.invariantViolation(fmt.Sprintf("route found but unusable: %v", err))
		}
		return strat, nil
	}

	// No route within the hop cap: normal control flow, fall through to
	// similarity-based suggestions.
	strat, err := s.fallback(source, target)
	if err != nil {
		return nil, err
	}
	if strat == nil {
		return nil, s.invariantViolation("fallback produced no strategy")
	}
	return strat, nil
}

// fallback ranks every known node by match score against the target and
// suggests the best one: as an intermediary when it can reach the target,
// as a candidate otherwise. With nothing else in the graph, the target
// itself becomes the candidate, scored against the source alone.
func (s *Selector) fallback(source, target *graph.ActorNode) (*ConnectionStrategy, error) {
	targetView := match.ViewNode(target)

	type ranked struct {
		node  *graph.ActorNode
		score int
	}
	var pool []ranked
	for _, n := range s.graph.AllNodes() {
		if n.ID == source.ID || n.ID == target.ID {
			continue
		}
		pool = append(pool, ranked{node: n, score: s.model.Score(match.ViewNode(n), targetView)})
	}
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].score != pool[j].score {
			return pool[i].score > pool[j].score
		}
		return pool[i].node.ID < pool[j].node.ID
	})

	if len(pool) == 0 {
		// Only the source and target are known. Suggest the target
		// directly, scored against the source alone.
		score := s.model.Score(match.ViewNode(source), targetView)
		reasoning := fmt.Sprintf("No connection path found. %s is the closest match to reach directly (match score %d).",
			displayName(target), score)
		steps := []string{
			fmt.Sprintf("Send %s a personalized connection request mentioning your shared background.", displayName(target)),
		}
		return NewCandidate(target, reasoning, candidateAcceptanceRate, float64(score)/100, steps)
	}

	best := pool[0]

	if _, connected := pathfind.ShortestHopPath(s.graph, best.node.ID, target.ID); connected {
		reasoning := fmt.Sprintf("%s can reach %s and is your strongest match (score %d).",
			displayName(best.node), displayName(target), best.score)
		steps := []string{
			fmt.Sprintf("Connect with %s first.", displayName(best.node)),
			fmt.Sprintf("Ask %s for an introduction to %s.", displayName(best.node), displayName(target)),
		}
		low := best.score < lowConfidenceScoreFloor
		return NewIntermediary(best.node, reasoning, intermediaryAcceptanceRate, float64(best.score)/100, low, steps)
	}

	reasoning := fmt.Sprintf("No route to %s exists yet; %s has the strongest profile similarity (score %d) and may share circles.",
		displayName(target), displayName(best.node), best.score)
	steps := []string{
		fmt.Sprintf("Connect with %s to grow toward %s's network.", displayName(best.node), displayName(target)),
		fmt.Sprintf("Send %s a personalized connection request.", displayName(target)),
	}
	return NewCandidate(best.node, reasoning, candidateAcceptanceRate, float64(best.score)/100, steps)
}

// invariantViolation logs the never-none breach distinctly and converts
// it into an internal error. It must read as an engine defect, not as a
// "no match" message.
func (s *Selector) invariantViolation(reason string) error {
	s.logger.Error("strategy invariant violated: %s", reason)
	return &InternalInvariantError{Reason: reason}
}

// routeSteps builds one action per intermediate hop plus a final outreach
// step.
func routeSteps(route *pathfind.Route) []string {
	var steps []string
	nodes := route.Nodes
	for i := 1; i < len(nodes)-1; i++ {
		steps = append(steps, fmt.Sprintf("Ask %s for an introduction to %s.",
			displayName(nodes[i]), displayName(nodes[i+1])))
	}
	target := nodes[len(nodes)-1]
	steps = append(steps, fmt.Sprintf("Send %s a connection request mentioning your shared background.",
		displayName(target)))
	return steps
}

func displayName(n *graph.ActorNode) string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}
