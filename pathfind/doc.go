// Package pathfind implements the two searches used by the warmpath
// engine: a bidirectional breadth-first probe for cheap existence checks,
// and a hop-capped Dijkstra search that produces weighted routes with
// calibrated success probabilities.
//
// # Weighted Search
//
// FindWeightedPath minimizes total edge weight (lower weight means a
// stronger connection) under a hard hop cap, default three. The cap
// prunes the search space during relaxation rather than filtering
// results afterwards, so the search never explores routes it could not
// return.
//
// Success probabilities are not derived from the route weight. They come
// from a discrete, hop-count-indexed table calibrated against observed
// request-acceptance rates: one hop 85, two hops 65, three hops 45.
//
// # Unweighted Probe
//
// ShortestHopPath runs breadth-first search from both endpoints at once,
// following out-edges forward and in-edges backward, and returns the ID
// path at the first meeting node.
package pathfind
