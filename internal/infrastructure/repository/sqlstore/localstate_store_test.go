package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sportsboard/internal/domain/localstate"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open(context.Background(), Config{
		Driver:      DriverSQLite,
		DSN:         filepath.Join(t.TempDir(), "state.db"),
		AutoMigrate: true,
		Logger:      logging.NewNop(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLocalStateStore_PutGetOverwrite(t *testing.T) {
	t.Parallel()

	store := NewLocalStateStore(openTestDB(t))
	first := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return first }
	ctx := context.Background()

	_, ok, err := store.Get(ctx, localstate.KeySession)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, localstate.KeySession, []byte(`{"userId":"u-1"}`)))
	store.now = func() time.Time { return first.Add(time.Hour) }
	require.NoError(t, store.Put(ctx, localstate.KeySession, []byte(`{"userId":"u-2"}`)))

	entry, ok, err := store.Get(ctx, localstate.KeySession)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, localstate.KeySession, entry.Key)
	assert.JSONEq(t, `{"userId":"u-2"}`, string(entry.Value))
	assert.True(t, entry.UpdatedAt.Equal(first.Add(time.Hour)), "updated_at=%s", entry.UpdatedAt)
}

func TestLocalStateStore_Delete(t *testing.T) {
	t.Parallel()

	store := NewLocalStateStore(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, localstate.KeyLastPath, []byte(`"/events"`)))
	require.NoError(t, store.Delete(ctx, localstate.KeyLastPath))
	require.NoError(t, store.Delete(ctx, localstate.KeyLastPath))

	_, ok, err := store.Get(ctx, localstate.KeyLastPath)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStateStore_ListByPrefixEscapesWildcards(t *testing.T) {
	t.Parallel()

	store := NewLocalStateStore(openTestDB(t))
	ctx := context.Background()

	for _, key := range []localstate.Key{
		localstate.FilterKey("standings"),
		localstate.FilterKey("schedule"),
		"filterXschedule",
		localstate.KeySession,
	} {
		require.NoError(t, store.Put(ctx, key, []byte(`{}`)))
	}

	entries, err := store.ListByPrefix(ctx, localstate.FilterPrefix())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, localstate.FilterKey("schedule"), entries[0].Key)
	assert.Equal(t, localstate.FilterKey("standings"), entries[1].Key)

	require.NoError(t, store.Put(ctx, "a_b", []byte(`1`)))
	require.NoError(t, store.Put(ctx, "axb", []byte(`2`)))
	entries, err = store.ListByPrefix(ctx, "a_")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, localstate.Key("a_b"), entries[0].Key)
}

func TestLocalStateStore_RejectsEmptyKey(t *testing.T) {
	t.Parallel()

	store := NewLocalStateStore(openTestDB(t))
	ctx := context.Background()

	require.ErrorIs(t, store.Put(ctx, "", []byte("x")), localstate.ErrKeyRequired)
	_, _, err := store.Get(ctx, "")
	require.ErrorIs(t, err, localstate.ErrKeyRequired)
	require.ErrorIs(t, store.Delete(ctx, " "), localstate.ErrKeyRequired)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	m, err := NewMigrator(db)
	require.NoError(t, err)
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{Driver: "mysql", DSN: "x"})
	require.Error(t, err)
	_, err = Open(context.Background(), Config{Driver: DriverSQLite})
	require.Error(t, err)
}

func TestDBNameFromDSN(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sportsboard", dbNameFromDSN(DriverPostgres, "postgres://u:p@localhost:5432/sportsboard?sslmode=disable"))
	assert.Equal(t, "sportsboard", dbNameFromDSN(DriverPostgres, "host=localhost dbname='sportsboard' user=u"))
	assert.Equal(t, "state", dbNameFromDSN(DriverSQLite, "file:/var/lib/app/state.db?_busy_timeout=5000"))
	assert.Equal(t, "", dbNameFromDSN(DriverPostgres, "host=localhost"))
}

func TestFormatQueryForTrace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SELECT a FROM b WHERE c = ?", formatQueryForTrace("  SELECT a\n\tFROM b\n WHERE c = ?  "))

	long := make([]byte, maxTracedQueryLength+10)
	for i := range long {
		long[i] = 'x'
	}
	got := formatQueryForTrace(string(long))
	assert.Len(t, got, maxTracedQueryLength+3)
}
