package graph

import (
	"sort"
	"sync"
)

// MinWeight and MaxWeight bound edge traversal costs.
const (
	MinWeight = 0.1
	MaxWeight = 1.0
)

// Neighbor pairs an adjacent node ID with the weight of the connecting edge.
type Neighbor struct {
	ID     string
	Weight float64
}

// Store is an in-memory directed acquaintance graph. Node upserts are
// idempotent (last write wins, wholesale replace); edge inserts are
// first-write-wins per ordered pair. A Store is safe for concurrent use,
// but each pathfinding request is expected to build its own Store from an
// imported snapshot rather than share a long-lived mutable instance.
type Store struct {
	mu    sync.RWMutex
	nodes map[string]*ActorNode
	out   map[string]map[string]float64
	in    map[string]map[string]float64
}

// NewStore creates an empty graph store.
func NewStore() *Store {
	return &Store{
		nodes: make(map[string]*ActorNode),
		out:   make(map[string]map[string]float64),
		in:    make(map[string]map[string]float64),
	}
}

// AddNode upserts a node by ID. Re-adding an existing ID replaces every
// profile attribute and never creates a duplicate.
func (s *Store) AddNode(n *ActorNode) error {
	if n == nil || n.ID == "" {
		return ErrEmptyNodeID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nodes[n.ID] = n.Clone()
	if s.out[n.ID] == nil {
		s.out[n.ID] = make(map[string]float64)
	}
	if s.in[n.ID] == nil {
		s.in[n.ID] = make(map[string]float64)
	}
	return nil
}

// AddEdge inserts a directed edge. If the ordered pair already exists the
// call is a no-op, even with a different weight; callers that need a
// refreshed weight must RemoveEdge first.
func (s *Store) AddEdge(e Edge) error {
	if e.From == e.To {
		return ErrSelfEdge
	}
	if e.Weight < MinWeight || e.Weight > MaxWeight {
		return ErrInvalidWeight
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[e.From]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := s.nodes[e.To]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := s.out[e.From][e.To]; ok {
		return nil
	}

	s.out[e.From][e.To] = e.Weight
	s.in[e.To][e.From] = e.Weight
	return nil
}

// RemoveEdge deletes the directed edge (from, to) and reports whether it
// existed.
func (s *Store) RemoveEdge(from, to string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.out[from][to]; !ok {
		return false
	}
	delete(s.out[from], to)
	delete(s.in[to], from)
	return true
}

// GetNode returns a copy of the node with the given ID.
func (s *Store) GetNode(id string) (*ActorNode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]
	if !ok {
		return nil, false
	}
	return n.Clone(), true
}

// HasNode reports whether the ID is known to the store.
func (s *Store) HasNode(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.nodes[id]
	return ok
}

// HasEdge reports whether the directed edge (from, to) exists.
func (s *Store) HasEdge(from, to string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.out[from][to]
	return ok
}

// Len returns the number of nodes in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.nodes)
}

// AllNodes returns copies of every node, ordered by ID.
func (s *Store) AllNodes() []*ActorNode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]*ActorNode, 0, len(s.nodes))
	for _, n := range s.nodes {
		nodes = append(nodes, n.Clone())
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}

// Connections returns copies of the out-neighbors of the given node,
// ordered by ID.
func (s *Store) Connections(id string) []*ActorNode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := sortedKeys(s.out[id])
	nodes := make([]*ActorNode, 0, len(ids))
	for _, nid := range ids {
		if n, ok := s.nodes[nid]; ok {
			nodes = append(nodes, n.Clone())
		}
	}
	return nodes
}

// Neighbors returns the out-neighbor IDs of the given node with their edge
// weights, ordered by ID. Deterministic ordering matters: the weighted
// search breaks distance ties by discovery order.
func (s *Store) Neighbors(id string) []Neighbor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := sortedKeys(s.out[id])
	neighbors := make([]Neighbor, 0, len(ids))
	for _, nid := range ids {
		neighbors = append(neighbors, Neighbor{ID: nid, Weight: s.out[id][nid]})
	}
	return neighbors
}

// InboundIDs returns the IDs of nodes with an edge into the given node,
// ordered by ID. Used by the backward frontier of the bidirectional search.
func (s *Store) InboundIDs(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedKeys(s.in[id])
}

// EdgeWeight returns the weight of the directed edge (from, to).
func (s *Store) EdgeWeight(from, to string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.out[from][to]
	return w, ok
}

// MutualConnections returns the IDs present in both nodes' out-neighbor
// sets, ordered by ID. The result is symmetric in its arguments.
func (s *Store) MutualConnections(a, b string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	outA, outB := s.out[a], s.out[b]
	if len(outA) > len(outB) {
		outA, outB = outB, outA
	}

	var mutual []string
	for id := range outA {
		if _, ok := outB[id]; ok {
			mutual = append(mutual, id)
		}
	}
	sort.Strings(mutual)
	return mutual
}

// Export serializes the full node and edge set. The snapshot is ordered so
// repeated exports of the same graph are byte-identical after encoding.
func (s *Store) Export() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Nodes: make([]*ActorNode, 0, len(s.nodes)),
		Edges: make([]Edge, 0),
	}
	for _, id := range sortedKeys(s.nodes) {
		snap.Nodes = append(snap.Nodes, s.nodes[id].Clone())
	}
	for _, from := range sortedKeys(s.out) {
		for _, to := range sortedKeys(s.out[from]) {
			snap.Edges = append(snap.Edges, Edge{From: from, To: to, Weight: s.out[from][to]})
		}
	}
	return snap
}

// Import replaces the entire store contents with the snapshot. Prior state
// is always cleared first: import is a full replace, never a merge.
func (s *Store) Import(snap Snapshot) error {
	fresh := NewStore()
	for _, n := range snap.Nodes {
		if err := fresh.AddNode(n); err != nil {
			return err
		}
	}
	for _, e := range snap.Edges {
		if err := fresh.AddEdge(e); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nodes = fresh.nodes
	s.out = fresh.out
	s.in = fresh.in
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
