// Package cache keeps computed connection strategies warm for 24 hours.
//
// Entries are keyed by target ID but share one storage key in the
// key-value collaborator, so every write is a read-modify-write
// transaction over the whole map. Expiry is lazy: stale or structurally
// invalid entries are purged when read and reported as a miss. An entry
// whose strategy fails to decode (for example a persisted "none" type
// from an older client) counts as structurally invalid and is logged as
// an anomaly.
package cache
