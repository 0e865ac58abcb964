package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_MigratesAndStoreWorks(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "feed.db")

	s, db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, s.Set(ctx, "users", []byte(`{}`)))
	v, err := s.Get(ctx, "users")
	require.NoError(t, err)
	require.Equal(t, []byte(`{}`), v)
}

func TestInitDatabase_Reopen_KeepsData(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "feed.db")

	s, db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "posts", []byte(`[{"id":"1"}]`)))
	require.NoError(t, db.Close())

	s2, db2, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	v, err := s2.Get(ctx, "posts")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"1"}]`), v)
}
