package tokenstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", "file:tokenstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  service TEXT NOT NULL,
  account TEXT NOT NULL,
  token   TEXT NOT NULL,
  PRIMARY KEY (service, account)
);
`)
	require.NoError(t, err)
	return NewSQLiteStore(db), db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM credentials`).Scan(&n))
	return n
}

func TestSaveGet_RoundTrip(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "session-token-1"))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "session-token-1", got)
}

func TestGet_AbsentReturnsEmpty(t *testing.T) {
	s, _ := setupStore(t)

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSave_IsIdempotentUpsert(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "t1"))
	require.NoError(t, s.Save(ctx, "t1"))
	require.NoError(t, s.Save(ctx, "t2"))

	require.Equal(t, 1, countRows(t, db), "repeated saves must not duplicate the entry")

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "t2", got)
}

func TestDelete_RemovesToken(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "t1"))
	require.NoError(t, s.Delete(ctx))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, got)

	// deleting again is fine
	require.NoError(t, s.Delete(ctx))
}

func TestIsValid(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.False(t, s.IsValid(ctx))

	require.NoError(t, s.Save(ctx, "t1"))
	require.True(t, s.IsValid(ctx))

	require.NoError(t, s.Save(ctx, ""))
	require.False(t, s.IsValid(ctx), "empty token means unauthenticated")

	require.NoError(t, s.Save(ctx, "t2"))
	require.NoError(t, s.Delete(ctx))
	require.False(t, s.IsValid(ctx))
}

func TestIsValid_StorageFailureMeansNoToken(t *testing.T) {
	db, err := sql.Open("sqlite", "file:tokenstore-broken?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// no credentials table at all
	s := NewSQLiteStore(db)
	require.False(t, s.IsValid(context.Background()))
}

func TestOpen_AppliesMigrations(t *testing.T) {
	db, err := Open(context.Background(), "file:tokenstore-migrated?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStore(db)
	require.NoError(t, s.Save(context.Background(), "tok"))
	require.True(t, s.IsValid(context.Background()))
}
