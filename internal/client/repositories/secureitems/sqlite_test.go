package secureitems

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE secure_items (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  nonce      BLOB,
  updated_at TIMESTAMP NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, r.Set(ctx, Item{Key: "auth", Value: []byte{1, 2}, Nonce: []byte{9}, UpdatedAt: now}))

	got, err := r.Get(ctx, "auth")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, []byte{1, 2}, got.Value)
	require.Equal(t, []byte{9}, got.Nonce)
	require.True(t, now.Equal(got.UpdatedAt))
}

func TestGet_Absent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSet_Upsert(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, Item{Key: "k", Value: []byte("old"), Nonce: []byte("n"), UpdatedAt: time.Now()}))
	require.NoError(t, r.Set(ctx, Item{Key: "k", Value: []byte("new"), UpdatedAt: time.Now()}))

	got, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), got.Value)
	require.Nil(t, got.Nonce)
}

func TestDeleteAndClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, Item{Key: "a", Value: []byte("1"), UpdatedAt: time.Now()}))
	require.NoError(t, r.Set(ctx, Item{Key: "b", Value: []byte("2"), UpdatedAt: time.Now()}))

	require.NoError(t, r.Delete(ctx, "a"))
	got, err := r.Get(ctx, "a")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, r.Clear(ctx))
	got, err = r.Get(ctx, "b")
	require.NoError(t, err)
	require.Nil(t, got)
}
