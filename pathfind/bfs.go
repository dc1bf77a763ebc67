package pathfind

import (
	"github.com/warmpath/warmpath/graph"
)

// ShortestHopPath finds a minimum-hop directed path from one node to
// another using bidirectional breadth-first search: a forward frontier
// follows out-edges from the source while a backward frontier follows
// in-edges from the target, and the search stops at the first meeting
// node. It is a cheap existence probe; it computes no weights or
// probabilities.
//
// The ordered ID path (source..target inclusive) is returned, or ok=false
// when no path exists.
func ShortestHopPath(g *graph.Store, from, to string) ([]string, bool) {
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil, false
	}
	if from == to {
		return []string{from}, true
	}

	// Predecessor map for the forward frontier, successor map for the
	// backward one. Presence in a map marks the node as visited.
	prev := map[string]string{from: ""}
	next := map[string]string{to: ""}
	forward := []string{from}
	backward := []string{to}

	for len(forward) > 0 && len(backward) > 0 {
		// Expand the smaller frontier first to keep the explored sets
		// balanced.
		if len(forward) <= len(backward) {
			var layer []string
			for _, id := range forward {
				for _, nb := range g.Neighbors(id) {
					if _, seen := prev[nb.ID]; seen {
						continue
					}
					prev[nb.ID] = id
					if _, met := next[nb.ID]; met {
						return joinPaths(prev, next, nb.ID), true
					}
					layer = append(layer, nb.ID)
				}
			}
			forward = layer
		} else {
			var layer []string
			for _, id := range backward {
				for _, pid := range g.InboundIDs(id) {
					if _, seen := next[pid]; seen {
						continue
					}
					next[pid] = id
					if _, met := prev[pid]; met {
						return joinPaths(prev, next, pid), true
					}
					layer = append(layer, pid)
				}
			}
			backward = layer
		}
	}

	return nil, false
}

// joinPaths stitches the forward and backward halves together at the
// meeting node.
func joinPaths(prev, next map[string]string, meet string) []string {
	var path []string
	for id := meet; id != ""; id = prev[id] {
		path = append(path, id)
	}
	// Reverse the source..meet half into order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for id := next[meet]; id != ""; id = next[id] {
		path = append(path, id)
	}
	return path
}
