package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) *SqliteKV {
	t.Helper()

	kv, err := NewSqliteKV(SqliteOptions{
		Path: filepath.Join(t.TempDir(), "warmpath.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSqliteKV(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	// Set and get
	err := kv.Set(ctx, "graph", []byte(`{"nodes":[]}`))
	assert.NoError(t, err)

	value, found, err := kv.Get(ctx, "graph")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"nodes":[]}`, string(value))

	// Missing key is a miss, not an error
	_, found, err = kv.Get(ctx, "absent")
	assert.NoError(t, err)
	assert.False(t, found)

	// Upsert overwrites
	err = kv.Set(ctx, "graph", []byte(`{"nodes":[{"id":"a"}]}`))
	assert.NoError(t, err)
	value, _, _ = kv.Get(ctx, "graph")
	assert.JSONEq(t, `{"nodes":[{"id":"a"}]}`, string(value))

	// Delete
	err = kv.Delete(ctx, "graph")
	assert.NoError(t, err)
	_, found, err = kv.Get(ctx, "graph")
	assert.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is fine
	assert.NoError(t, kv.Delete(ctx, "graph"))
}

func TestSqliteKV_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "warmpath.db")
	ctx := context.Background()

	kv, err := NewSqliteKV(SqliteOptions{Path: path})
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "k", []byte("v")))
	require.NoError(t, kv.Close())

	reopened, err := NewSqliteKV(SqliteOptions{Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.Get(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", string(value))
}

func TestSqliteKV_CustomTable(t *testing.T) {
	kv, err := NewSqliteKV(SqliteOptions{
		Path:      filepath.Join(t.TempDir(), "warmpath.db"),
		TableName: "snapshots",
	})
	require.NoError(t, err)
	defer kv.Close()

	ctx := context.Background()
	assert.NoError(t, kv.Set(ctx, "k", []byte("v")))

	value, found, err := kv.Get(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", string(value))
}
