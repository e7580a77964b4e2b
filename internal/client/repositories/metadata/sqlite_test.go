package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every new connection to ":memory:" is a fresh database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

// repositories runs each contract test against both implementations.
func repositories(t *testing.T) map[string]Repository {
	return map[string]Repository{
		"sqlite": NewSQLiteRepository(setupDB(t)),
		"memory": NewMemoryRepository(),
	}
}

func TestRepository_SetGetUpsert(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, r.Set(ctx, "authToken", []byte("old")))
			require.NoError(t, r.Set(ctx, "authToken", []byte("new")))

			v, err := r.Get(ctx, "authToken")
			require.NoError(t, err)
			assert.Equal(t, []byte("new"), v)
		})
	}
}

func TestRepository_GetMissingReturnsNilNil(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			v, err := r.Get(context.Background(), "absent")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestRepository_ListDeleteClear(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, r.Set(ctx, "authToken", []byte("t")))
			require.NoError(t, r.Set(ctx, "userInfo", []byte(`{"userId":"u1"}`)))

			m, err := r.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, map[string][]byte{
				"authToken": []byte("t"),
				"userInfo":  []byte(`{"userId":"u1"}`),
			}, m)

			require.NoError(t, r.Delete(ctx, "authToken"))
			require.NoError(t, r.Delete(ctx, "authToken"), "delete must be idempotent")
			v, err := r.Get(ctx, "authToken")
			require.NoError(t, err)
			assert.Nil(t, v)

			require.NoError(t, r.Clear(ctx))
			m, err = r.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, m)
		})
	}
}

func TestMemoryRepository_CopiesValues(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	in := []byte("token")
	require.NoError(t, r.Set(ctx, "authToken", in))
	in[0] = 'X'

	out, err := r.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.Equal(t, []byte("token"), out)

	out[0] = 'Y'
	again, _ := r.Get(ctx, "authToken")
	assert.Equal(t, []byte("token"), again)
}

func TestSQLiteRepository_ErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get metadata[k]")

	require.ErrorContains(t, r.Set(ctx, "k", []byte("v")), "failed to set metadata[k]")
	require.ErrorContains(t, r.Delete(ctx, "k"), "failed to delete metadata[k]")
	require.ErrorContains(t, r.Clear(ctx), "failed to clear metadata")

	_, err = r.List(ctx)
	require.ErrorContains(t, err, "failed to list metadata")
}
