package sqlite_test

import (
	"context"
	"github.com/myrjola/cluedo/internal/sqlite"
	"github.com/myrjola/cluedo/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"io"
	"path/filepath"
	"testing"
)

func TestNewDatabase(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		url  func(t *testing.T) string
	}{
		{
			name: "in memory",
			url:  func(_ *testing.T) string { return ":memory:" },
		},
		{
			name: "file",
			url:  func(t *testing.T) string { return filepath.Join(t.TempDir(), "journal.sqlite") },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			db, err := sqlite.NewDatabase(ctx, tt.url(t), testhelpers.NewLogger(io.Discard))
			require.NoError(t, err)

			_, err = db.ReadWrite.ExecContext(ctx,
				"INSERT INTO journal_entries (session_id, kind) VALUES ('abc', 'session_created')")
			require.NoError(t, err)

			var count int
			require.NoError(t, db.ReadOnly.GetContext(ctx, &count, "SELECT count(*) FROM journal_entries"))
			require.Equal(t, 1, count)

			_, err = db.ReadOnly.ExecContext(ctx,
				"INSERT INTO journal_entries (session_id, kind) VALUES ('abc', 'moved')")
			require.Error(t, err, "read-only connection must reject writes")

			require.NoError(t, db.Close(ctx))
		})
	}
}

func TestNewDatabase_inMemoryDatabasesAreIsolated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	logger := testhelpers.NewLogger(io.Discard)

	first, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.Close(ctx) })
	second, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close(ctx) })

	_, err = first.ReadWrite.ExecContext(ctx,
		"INSERT INTO journal_entries (session_id, kind) VALUES ('abc', 'session_created')")
	require.NoError(t, err)

	var count int
	require.NoError(t, second.ReadOnly.GetContext(ctx, &count, "SELECT count(*) FROM journal_entries"))
	require.Equal(t, 0, count)
}
