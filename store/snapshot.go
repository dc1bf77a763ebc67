package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/warmpath/warmpath/graph"
)

// DefaultSnapshotKey is where the serialized graph lives unless the
// caller configures otherwise.
const DefaultSnapshotKey = "warmpath:graph"

// SaveSnapshot persists the full graph snapshot under key.
func SaveSnapshot(ctx context.Context, kv KV, key string, snap graph.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal graph snapshot: %w", err)
	}
	if err := kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist graph snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the graph snapshot stored under key. A missing key
// yields found=false and an empty snapshot, which is a normal first-run
// condition.
func LoadSnapshot(ctx context.Context, kv KV, key string) (graph.Snapshot, bool, error) {
	data, found, err := kv.Get(ctx, key)
	if err != nil {
		return graph.Snapshot{}, false, fmt.Errorf("failed to read graph snapshot: %w", err)
	}
	if !found {
		return graph.Snapshot{}, false, nil
	}

	var snap graph.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return graph.Snapshot{}, false, fmt.Errorf("failed to unmarshal graph snapshot: %w", err)
	}
	return snap, true, nil
}
