package wallet

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loto-platform/internal/db"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// The pool must not open a second connection: every sqlite
	// :memory: connection is its own empty database.
	conn.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(conn))
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestService_GetOrCreate(t *testing.T) {
	service := New(newTestDB(t))

	t.Run("creates with default balance", func(t *testing.T) {
		coin, err := service.GetOrCreate("alice", 1000)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), coin)
	})

	t.Run("second call returns existing row", func(t *testing.T) {
		coin, err := service.GetOrCreate("alice", 5000)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), coin)

		users, err := service.List()
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("does not clobber a mutated balance", func(t *testing.T) {
		require.NoError(t, service.SetBalance("alice", 250))

		coin, err := service.GetOrCreate("alice", 1000)
		require.NoError(t, err)
		assert.Equal(t, int64(250), coin)
	})
}

func TestService_SetBalance(t *testing.T) {
	service := New(newTestDB(t))

	t.Run("insert via upsert", func(t *testing.T) {
		require.NoError(t, service.SetBalance("bob", 400))

		coin, err := service.GetOrCreate("bob", 1000)
		require.NoError(t, err)
		assert.Equal(t, int64(400), coin)
	})

	t.Run("overwrite unconditionally", func(t *testing.T) {
		require.NoError(t, service.SetBalance("bob", 7))

		coin, err := service.GetOrCreate("bob", 1000)
		require.NoError(t, err)
		assert.Equal(t, int64(7), coin)
	})
}

func TestService_SetBalanceTx(t *testing.T) {
	conn := newTestDB(t)
	service := New(conn)

	require.NoError(t, service.SetBalance("carol", 100))

	t.Run("committed write is visible", func(t *testing.T) {
		tx, err := conn.Begin()
		require.NoError(t, err)
		require.NoError(t, service.SetBalanceTx(tx, "carol", 900))
		require.NoError(t, tx.Commit())

		coin, err := service.GetOrCreate("carol", 1000)
		require.NoError(t, err)
		assert.Equal(t, int64(900), coin)
	})

	t.Run("rolled back write is not", func(t *testing.T) {
		tx, err := conn.Begin()
		require.NoError(t, err)
		require.NoError(t, service.SetBalanceTx(tx, "carol", 1))
		require.NoError(t, tx.Rollback())

		coin, err := service.GetOrCreate("carol", 1000)
		require.NoError(t, err)
		assert.Equal(t, int64(900), coin)
	})
}

func TestService_List(t *testing.T) {
	service := New(newTestDB(t))

	t.Run("empty", func(t *testing.T) {
		users, err := service.List()
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("sorted by user_id", func(t *testing.T) {
		require.NoError(t, service.SetBalance("zoe", 10))
		require.NoError(t, service.SetBalance("adam", 20))
		require.NoError(t, service.SetBalance("mike", 30))

		users, err := service.List()
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, []User{
			{UserID: "adam", Coin: 20},
			{UserID: "mike", Coin: 30},
			{UserID: "zoe", Coin: 10},
		}, users)
	})
}

func TestService_ResetAll(t *testing.T) {
	service := New(newTestDB(t))

	require.NoError(t, service.SetBalance("a", 5))
	require.NoError(t, service.SetBalance("b", 12345))

	require.NoError(t, service.ResetAll(1000))

	users, err := service.List()
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, int64(1000), u.Coin)
	}
}

func TestService_Stats(t *testing.T) {
	service := New(newTestDB(t))

	users, coins, err := service.Stats()
	require.NoError(t, err)
	assert.Zero(t, users)
	assert.Zero(t, coins)

	require.NoError(t, service.SetBalance("a", 100))
	require.NoError(t, service.SetBalance("b", 250))

	users, coins, err = service.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), users)
	assert.Equal(t, int64(350), coins)
}
