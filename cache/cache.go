package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/warmpath/warmpath/log"
	"github.com/warmpath/warmpath/store"
	"github.com/warmpath/warmpath/strategy"
)

const (
	// DefaultTTL is how long a cached strategy stays valid.
	DefaultTTL = 24 * time.Hour

	// DefaultStorageKey is the single KV key all entries share.
	DefaultStorageKey = "warmpath:strategies"
)

// Entry pairs a strategy with its computation time.
type Entry struct {
	Strategy  *strategy.ConnectionStrategy `json:"strategy"`
	Timestamp time.Time                    `json:"timestamp"`
}

// StrategyCache is a TTL cache of computed strategies, keyed by target
// ID. All entries live as one JSON map under a single storage key in the
// KV collaborator; the cache only defines eviction and validation,
// physical storage stays external.
//
// Writes are read-modify-write transactions: the current map is re-read,
// one key merged, and the whole map written back, so a write for one
// target never clobbers sibling entries written concurrently.
type StrategyCache struct {
	kv     store.KV
	key    string
	ttl    time.Duration
	logger log.Logger
	now    func() time.Time

	// mu serializes read-modify-write cycles within this process.
	mu sync.Mutex
}

// Options configures a StrategyCache.
type Options struct {
	// StorageKey overrides DefaultStorageKey.
	StorageKey string

	// TTL overrides DefaultTTL.
	TTL time.Duration

	// Logger receives anomaly reports. Nil means the package default.
	Logger log.Logger

	// Clock overrides time.Now, used in tests.
	Clock func() time.Time
}

// New creates a strategy cache over the given KV collaborator.
func New(kv store.KV, opts Options) *StrategyCache {
	if opts.StorageKey == "" {
		opts.StorageKey = DefaultStorageKey
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Logger == nil {
		opts.Logger = log.GetDefaultLogger()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &StrategyCache{
		kv:     kv,
		key:    opts.StorageKey,
		ttl:    opts.TTL,
		logger: opts.Logger,
		now:    opts.Clock,
	}
}

// Get returns the cached strategy for the target, if one exists and is
// still fresh. Expired and structurally invalid entries are purged on
// read and reported as a miss; invalid ones are additionally logged as
// anomalies.
func (c *StrategyCache) Get(ctx context.Context, targetID string) (*strategy.ConnectionStrategy, bool, error) {
	entries, err := c.readEntries(ctx)
	if err != nil {
		return nil, false, err
	}

	raw, ok := entries[targetID]
	if !ok {
		return nil, false, nil
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil || entry.Strategy == nil {
		invalid := &strategy.InvalidCacheEntryError{TargetID: targetID, Reason: describeDecodeFailure(err)}
		c.logger.Warn("purging corrupt cache entry: %v", invalid)
		if purgeErr := c.remove(ctx, targetID); purgeErr != nil {
			return nil, false, purgeErr
		}
		return nil, false, nil
	}

	if c.now().Sub(entry.Timestamp) >= c.ttl {
		if purgeErr := c.remove(ctx, targetID); purgeErr != nil {
			return nil, false, purgeErr
		}
		return nil, false, nil
	}

	return entry.Strategy, true, nil
}

// Set stores the strategy for the target, unconditionally overwriting
// any prior entry for that target while preserving sibling entries.
func (c *StrategyCache) Set(ctx context.Context, targetID string, s *strategy.ConnectionStrategy) error {
	entry, err := json.Marshal(Entry{Strategy: s, Timestamp: c.now()})
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.readEntries(ctx)
	if err != nil {
		return err
	}
	entries[targetID] = entry
	return c.writeEntries(ctx, entries)
}

// Delete removes the entry for the target, if any.
func (c *StrategyCache) Delete(ctx context.Context, targetID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.deleteLocked(ctx, targetID)
}

// remove is the purge path used by Get.
func (c *StrategyCache) remove(ctx context.Context, targetID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.deleteLocked(ctx, targetID)
}

func (c *StrategyCache) deleteLocked(ctx context.Context, targetID string) error {
	entries, err := c.readEntries(ctx)
	if err != nil {
		return err
	}
	if _, ok := entries[targetID]; !ok {
		return nil
	}
	delete(entries, targetID)
	return c.writeEntries(ctx, entries)
}

// readEntries loads the shared entry map. Entries stay raw so one
// corrupt entry cannot poison reads of its siblings.
func (c *StrategyCache) readEntries(ctx context.Context) (map[string]json.RawMessage, error) {
	data, found, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read strategy cache: %w", err)
	}
	if !found {
		return map[string]json.RawMessage{}, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		// The whole map is unreadable; start fresh rather than fail
		// every request from here on.
		c.logger.Warn("strategy cache storage is corrupt, resetting: %v", err)
		return map[string]json.RawMessage{}, nil
	}
	if entries == nil {
		entries = map[string]json.RawMessage{}
	}
	return entries, nil
}

func (c *StrategyCache) writeEntries(ctx context.Context, entries map[string]json.RawMessage) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal strategy cache: %w", err)
	}
	if err := c.kv.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("failed to persist strategy cache: %w", err)
	}
	return nil
}

func describeDecodeFailure(err error) string {
	if err != nil {
		return err.Error()
	}
	return "entry has no strategy"
}
