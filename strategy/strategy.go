package strategy

import (
	"encoding/json"
	"fmt"

	"github.com/warmpath/warmpath/graph"
	"github.com/warmpath/warmpath/pathfind"
)

// Kind identifies how the source can reach the target. The zero value is
// invalid: a strategy can only be built through the package constructors,
// so an empty "none" strategy is unrepresentable.
type Kind uint8

const (
	// KindDirectPath is a one-hop route to the target.
	KindDirectPath Kind = iota + 1
	// KindMutualPath is a route through one or two intermediaries.
	KindMutualPath
	// KindIntermediary suggests a single well-matched person who is
	// connected to the target.
	KindIntermediary
	// KindCandidate suggests the best similarity-scored person when no
	// graph route or intermediary exists.
	KindCandidate
)

var kindNames = map[Kind]string{
	KindDirectPath:   "direct-path",
	KindMutualPath:   "mutual-path",
	KindIntermediary: "intermediary",
	KindCandidate:    "candidate",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("invalid(%d)", uint8(k))
}

func parseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy type %q", name)
}

// ConnectionStrategy is the engine's output: always an actionable,
// confidence-scored recommendation, never empty.
type ConnectionStrategy struct {
	kind Kind

	// Route is set for path strategies.
	Route *pathfind.Route

	// Suggestion is the single suggested person for intermediary and
	// candidate strategies.
	Suggestion *graph.ActorNode

	// Reasoning explains the suggestion in human terms.
	Reasoning string

	// EstimatedAcceptanceRate is the expected request-acceptance
	// probability in [0, 1].
	EstimatedAcceptanceRate float64

	// Confidence grades how much the engine trusts this recommendation,
	// in [0, 1].
	Confidence float64

	// LowConfidence marks fallback suggestions the user should treat as
	// best-effort.
	LowConfidence bool

	// NextSteps is the ordered list of human-actionable steps.
	NextSteps []string
}

// Kind returns the strategy kind.
func (s *ConnectionStrategy) Kind() Kind {
	return s.kind
}

// IsPath reports whether the strategy carries a concrete route.
func (s *ConnectionStrategy) IsPath() bool {
	return s.kind == KindDirectPath || s.kind == KindMutualPath
}

// NewPathStrategy wraps a found route, classifying it as direct-path for
// one hop and mutual-path otherwise. Acceptance rate and confidence come
// from the route's calibrated success probability.
func NewPathStrategy(route *pathfind.Route, steps []string) (*ConnectionStrategy, error) {
	if route == nil || route.Hops() == 0 {
		return nil, fmt.Errorf("path strategy requires a non-empty route")
	}

	kind := KindMutualPath
	if route.Hops() == 1 {
		kind = KindDirectPath
	}

	rate := float64(route.SuccessProbability) / 100
	return &ConnectionStrategy{
		kind:                    kind,
		Route:                   route,
		EstimatedAcceptanceRate: rate,
		Confidence:              rate,
		NextSteps:               steps,
	}, nil
}

// NewIntermediary suggests a person connected to the target.
func NewIntermediary(person *graph.ActorNode, reasoning string, rate, confidence float64, lowConfidence bool, steps []string) (*ConnectionStrategy, error) {
	if person == nil {
		return nil, fmt.Errorf("intermediary strategy requires a suggested person")
	}
	return &ConnectionStrategy{
		kind:                    KindIntermediary,
		Suggestion:              person,
		Reasoning:               reasoning,
		EstimatedAcceptanceRate: rate,
		Confidence:              confidence,
		LowConfidence:           lowConfidence,
		NextSteps:               steps,
	}, nil
}

// NewCandidate suggests the best similarity-scored person. Candidate
// strategies are always low confidence.
func NewCandidate(person *graph.ActorNode, reasoning string, rate, confidence float64, steps []string) (*ConnectionStrategy, error) {
	if person == nil {
		return nil, fmt.Errorf("candidate strategy requires a suggested person")
	}
	return &ConnectionStrategy{
		kind:                    KindCandidate,
		Suggestion:              person,
		Reasoning:               reasoning,
		EstimatedAcceptanceRate: rate,
		Confidence:              confidence,
		LowConfidence:           true,
		NextSteps:               steps,
	}, nil
}

type strategyJSON struct {
	Type                    string           `json:"type"`
	Route                   *pathfind.Route  `json:"route,omitempty"`
	Suggestion              *graph.ActorNode `json:"suggestion,omitempty"`
	Reasoning               string           `json:"reasoning,omitempty"`
	EstimatedAcceptanceRate float64          `json:"estimated_acceptance_rate"`
	Confidence              float64          `json:"confidence"`
	LowConfidence           bool             `json:"low_confidence"`
	NextSteps               []string         `json:"next_steps"`
}

// MarshalJSON encodes the strategy with its kind as a "type" tag.
func (s *ConnectionStrategy) MarshalJSON() ([]byte, error) {
	if _, ok := kindNames[s.kind]; !ok {
		return nil, fmt.Errorf("cannot encode strategy with invalid kind %d", s.kind)
	}
	return json.Marshal(strategyJSON{
		Type:                    s.kind.String(),
		Route:                   s.Route,
		Suggestion:              s.Suggestion,
		Reasoning:               s.Reasoning,
		EstimatedAcceptanceRate: s.EstimatedAcceptanceRate,
		Confidence:              s.Confidence,
		LowConfidence:           s.LowConfidence,
		NextSteps:               s.NextSteps,
	})
}

// UnmarshalJSON decodes a strategy, rejecting unknown or empty type tags.
// A persisted "none" entry therefore fails to decode instead of leaking
// back into the engine.
func (s *ConnectionStrategy) UnmarshalJSON(data []byte) error {
	var raw strategyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	kind, err := parseKind(raw.Type)
	if err != nil {
		return err
	}

	s.kind = kind
	s.Route = raw.Route
	s.Suggestion = raw.Suggestion
	s.Reasoning = raw.Reasoning
	s.EstimatedAcceptanceRate = raw.EstimatedAcceptanceRate
	s.Confidence = raw.Confidence
	s.LowConfidence = raw.LowConfidence
	s.NextSteps = raw.NextSteps
	return nil
}
