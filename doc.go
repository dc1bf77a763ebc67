// Package warmpath finds warm introduction paths through a professional
// social graph and turns them into actionable connection strategies.
//
// The module is organized package-per-concern:
//
//   - graph: the in-memory social graph (actor nodes, weighted directed
//     edges, snapshots)
//   - pathfind: bidirectional BFS for hop counts and a hop-capped
//     weighted search for introduction routes
//   - match: profile similarity scoring and edge weight derivation
//   - strategy: the closed set of connection strategies and the
//     selector that always produces one
//   - cache: a 24-hour TTL cache of computed strategies
//   - store: the key-value persistence boundary with in-memory, Redis,
//     SQLite and Postgres backends
//   - engine: per-request orchestration tying the above together
//
// Basic example:
//
//	kv := memory.NewMemoryKV()
//	e := engine.New(kv, engine.Options{})
//
//	res, err := e.Plan(ctx, me, target)
//	if err != nil {
//		// every failure is a typed error, see package strategy
//	}
//	fmt.Println(res.Strategy.Reasoning)
package warmpath
