// Package graph provides the in-memory acquaintance graph underlying the
// warmpath engine.
//
// The graph is directed and sparse: nodes are actor profiles accumulated
// from local browsing, edges carry an inverse-strength traversal cost in
// [0.1, 1.0] where lower means a stronger connection.
//
// # Core Concepts
//
// ## Store
// Store holds nodes and edges with idempotent node upserts (last write
// wins, wholesale replace) and first-write-wins edge inserts. It answers
// neighbor and mutual-connection queries for the search layer.
//
// ## Snapshot
// Export and Import round-trip the full node and edge set through the
// Snapshot type for persistence. Import always clears prior state first,
// so each pathfinding request can rebuild a private view from storage.
//
// # Example Usage
//
//	g := graph.NewStore()
//	g.AddNode(&graph.ActorNode{ID: "a", Name: "Alice"})
//	g.AddNode(&graph.ActorNode{ID: "b", Name: "Bob"})
//	g.AddEdge(graph.Edge{From: "a", To: "b", Weight: 0.3})
//
//	snap := g.Export()
//	// persist snap, later:
//	restored := graph.NewStore()
//	restored.Import(snap)
package graph
