package engine

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/warmpath/warmpath/cache"
	"github.com/warmpath/warmpath/graph"
	"github.com/warmpath/warmpath/log"
	"github.com/warmpath/warmpath/store"
	"github.com/warmpath/warmpath/strategy"
)

// State names the phase a request passed through. Terminal states are
// StateStrategyReady and StateFailed; retries are a caller concern.
type State string

const (
	StateIdle            State = "idle"
	StateResolvingActors State = "resolving-actors"
	StateGraphReady      State = "graph-ready"
	StateSearching       State = "searching"
	StateStrategyReady   State = "strategy-ready"
	StateFailed          State = "failed"
)

// Result is the outcome of one pathfinding request.
type Result struct {
	Strategy *strategy.ConnectionStrategy

	// Token is the monotonically increasing request token. Callers keep
	// the latest issued token and discard results carrying an older one,
	// so a late-arriving result never overwrites a newer one.
	Token uint64

	// RequestID correlates log lines for this request.
	RequestID string

	// FromCache reports a cache-hit short circuit.
	FromCache bool

	State State
}

// Options configures an Engine.
type Options struct {
	// Cache overrides the default strategy cache over the same KV.
	Cache *cache.StrategyCache

	// SnapshotKey overrides store.DefaultSnapshotKey.
	SnapshotKey string

	// MaxHops caps the weighted search. Zero means the pathfind default.
	MaxHops int

	// Logger receives request tracing and anomaly reports. Nil means the
	// package default.
	Logger log.Logger
}

// Engine runs the full per-request flow: load the persisted snapshot,
// rebuild a private graph view, consult the strategy cache, run the
// selector on a miss, and persist both the updated snapshot and the
// fresh strategy. All profile and graph data arrives synchronously from
// collaborators; the engine performs no network I/O of its own.
type Engine struct {
	kv          store.KV
	cache       *cache.StrategyCache
	snapshotKey string
	maxHops     int
	logger      log.Logger
	seq         atomic.Uint64
}

// New creates an engine over the given KV collaborator.
func New(kv store.KV, opts Options) *Engine {
	if opts.SnapshotKey == "" {
		opts.SnapshotKey = store.DefaultSnapshotKey
	}
	if opts.Logger == nil {
		opts.Logger = log.GetDefaultLogger()
	}
	if opts.Cache == nil {
		opts.Cache = cache.New(kv, cache.Options{Logger: opts.Logger})
	}
	return &Engine{
		kv:          kv,
		cache:       opts.Cache,
		snapshotKey: opts.SnapshotKey,
		maxHops:     opts.MaxHops,
		logger:      opts.Logger,
	}
}

// LatestToken returns the most recently issued request token.
func (e *Engine) LatestToken() uint64 {
	return e.seq.Load()
}

// IsStale reports whether a result token has been superseded by a newer
// request.
func (e *Engine) IsStale(token uint64) bool {
	return token != e.seq.Load()
}

// Plan produces a connection strategy from source to target.
//
// Each call operates on its own imported snapshot, so concurrent
// requests for different targets cannot corrupt each other's view of the
// graph.
func (e *Engine) Plan(ctx context.Context, source, target *graph.ActorNode) (*Result, error) {
	token := e.seq.Add(1)
	result := &Result{
		Token:     token,
		RequestID: uuid.NewString(),
		State:     StateIdle,
	}

	strat, err := e.plan(ctx, source, target, result)
	if err != nil {
		e.logger.Debug("request %s failed in state %s: %v", result.RequestID, result.State, err)
		result.State = StateFailed
		return result, err
	}

	result.Strategy = strat
	result.State = StateStrategyReady
	return result, nil
}

func (e *Engine) plan(ctx context.Context, source, target *graph.ActorNode, result *Result) (*strategy.ConnectionStrategy, error) {
	result.State = StateResolvingActors
	if source == nil || source.ID == "" {
		return nil, &strategy.UserDetectionError{Reason: "no source profile supplied"}
	}
	if target == nil || target.ID == "" {
		return nil, &strategy.EmptyGraphError{}
	}
	e.logger.Debug("request %s: %s -> %s", result.RequestID, source.ID, target.ID)

	// Rebuild a private graph view from persistent storage.
	g := graph.NewStore()
	snap, found, err := store.LoadSnapshot(ctx, e.kv, e.snapshotKey)
	if err != nil {
		return nil, err
	}
	if found {
		if err := g.Import(snap); err != nil {
			return nil, fmt.Errorf("failed to rebuild graph from snapshot: %w", err)
		}
	}
	result.State = StateGraphReady

	// Cache-hit short circuit, before the search runs.
	if cached, hit, err := e.cache.Get(ctx, target.ID); err != nil {
		return nil, err
	} else if hit {
		e.logger.Debug("request %s: cache hit for %s", result.RequestID, target.ID)
		result.FromCache = true
		return cached, nil
	}

	result.State = StateSearching
	selector := strategy.NewSelector(g, strategy.Options{
		MaxHops: e.maxHops,
		Logger:  e.logger,
	})
	strat, err := selector.Recommend(ctx, source, target)
	if err != nil {
		return nil, err
	}

	// The selector upserted both endpoints; persist the enriched graph
	// so the next request sees them.
	if err := store.SaveSnapshot(ctx, e.kv, e.snapshotKey, g.Export()); err != nil {
		return nil, err
	}

	if err := e.cache.Set(ctx, target.ID, strat); err != nil {
		return nil, err
	}
	return strat, nil
}
