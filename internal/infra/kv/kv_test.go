package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behavior every backend shares.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "quran-bookmarks")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "quran-bookmarks", []byte(`[{"ayahNumber":262}]`)))
	got, err := s.Get(ctx, "quran-bookmarks")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"ayahNumber":262}]`, string(got))

	require.NoError(t, s.Set(ctx, "quran-bookmarks", []byte(`[]`)))
	got, err = s.Get(ctx, "quran-bookmarks")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))

	require.NoError(t, s.Set(ctx, "other", []byte(`{"a":1}`)))
	got, err = s.Get(ctx, "quran-bookmarks")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "store.json")
	s, err := OpenFile(path)
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)

	// Reopening sees the persisted document
	reopened, err := OpenFile(path)
	require.NoError(t, err)
	got, err := reopened.Get(context.Background(), "other")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_RejectsInvalidJSON(t *testing.T) {
	s, err := OpenFile(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	assert.Error(t, s.Set(context.Background(), "k", []byte("{not json")))
}

func TestFileStore_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	s, err := OpenFile(path)
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "quran-bookmarks")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "store.sqlite"))
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestPostgresStore(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS reader_kv").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	s, err := NewPostgres(ctx, mock)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT value FROM reader_kv").
		WithArgs("quran-bookmarks").
		WillReturnError(pgx.ErrNoRows)
	_, err = s.Get(ctx, "quran-bookmarks")
	assert.ErrorIs(t, err, ErrNotFound)

	mock.ExpectExec("INSERT INTO reader_kv").
		WithArgs("quran-bookmarks", `[{"ayahNumber":262}]`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, s.Set(ctx, "quran-bookmarks", []byte(`[{"ayahNumber":262}]`)))

	mock.ExpectQuery("SELECT value FROM reader_kv").
		WithArgs("quran-bookmarks").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(`[{"ayahNumber":262}]`))
	got, err := s.Get(ctx, "quran-bookmarks")
	require.NoError(t, err)
	assert.Equal(t, `[{"ayahNumber":262}]`, string(got))

	require.NoError(t, s.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS reader_kv").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	s, err := NewPostgres(ctx, mock)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT value FROM reader_kv").
		WithArgs("k").
		WillReturnError(errors.New("connection refused"))
	_, err = s.Get(ctx, "k")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(ctx, Config{Backend: BackendFile, Path: filepath.Join(dir, "a.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	s, err = Open(ctx, Config{Backend: BackendSQLite, Path: filepath.Join(dir, "b.sqlite")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, Config{Backend: BackendPostgres})
	assert.Error(t, err)

	_, err = Open(ctx, Config{Backend: "redis"})
	assert.Error(t, err)
}
