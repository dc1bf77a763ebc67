// Package engine wires the warmpath components into the per-request
// flow: snapshot load, private graph rebuild, cache check, strategy
// selection, and persistence.
//
// A request moves through idle, resolving-actors, graph-ready and
// searching before terminating in strategy-ready or failed; a cache hit
// short-circuits from graph-ready. The engine issues a monotonically
// increasing token per request so callers can discard results that were
// superseded while in flight, for example when the user switches target
// mid-search.
package engine
