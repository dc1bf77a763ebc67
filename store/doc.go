// Package store defines the key-value persistence collaborator the
// warmpath engine writes through, plus helpers for round-tripping graph
// snapshots.
//
// The engine itself performs no I/O beyond this interface: the graph
// snapshot and the strategy cache each occupy a single key, serialized
// as JSON, and any backend that can round-trip bytes losslessly can
// serve as storage.
//
// Four backends are provided:
//   - store/memory: in-process map, the default for tests and embedding
//   - store/sqlite: file-backed local storage
//   - store/redis: shared networked storage
//   - store/postgres: relational storage for server deployments
package store
