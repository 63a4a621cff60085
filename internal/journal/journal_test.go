package journal_test

import (
	"context"
	"github.com/myrjola/cluedo/internal/journal"
	"github.com/myrjola/cluedo/internal/sqlite"
	"github.com/myrjola/cluedo/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
	"time"
)

// newTestRepository creates a journal backed by a new in-memory database.
func newTestRepository(t *testing.T) *journal.Repository {
	t.Helper()
	ctx := context.Background()
	logger := testhelpers.NewLogger(io.Discard)
	dbs, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, dbs.Close(ctx))
	})
	return journal.NewRepository(dbs, logger)
}

func TestRepository_RecordAndList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepository(t)

	recorded := []journal.Entry{
		{SessionID: "first", Kind: journal.KindSessionCreated},
		{SessionID: "first", Kind: journal.KindParticipantJoined, Participant: "Player 1"},
		{SessionID: "second", Kind: journal.KindSessionCreated},
		{SessionID: "first", Kind: journal.KindMoved, Participant: "Player 1", Location: "Hall"},
		{
			SessionID:   "first",
			Kind:        journal.KindAccused,
			Participant: "Player 1",
			Location:    "Hall",
			Tool:        "Rope",
			Character:   "Mrs. White",
			Outcome:     journal.OutcomeNoMatch,
		},
	}
	before := time.Now().Add(-time.Minute)
	for _, entry := range recorded {
		require.NoError(t, repo.Record(ctx, entry))
	}

	entries, err := repo.List(ctx, "first")
	require.NoError(t, err)
	require.Len(t, entries, 4)

	wantKinds := []journal.Kind{
		journal.KindSessionCreated, journal.KindParticipantJoined, journal.KindMoved, journal.KindAccused,
	}
	for i, entry := range entries {
		require.Equal(t, wantKinds[i], entry.Kind)
		require.Equal(t, "first", entry.SessionID)
		require.True(t, entry.Created.After(before), "created timestamp must be set")
		if i > 0 {
			require.Greater(t, entry.ID, entries[i-1].ID, "entries must be listed in insertion order")
		}
	}
	last := entries[3]
	require.Equal(t, "Hall", last.Location)
	require.Equal(t, "Rope", last.Tool)
	require.Equal(t, "Mrs. White", last.Character)
	require.Equal(t, journal.OutcomeNoMatch, last.Outcome)

	entries, err = repo.List(ctx, "second")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestRepository_ListUnknownSession(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)

	entries, err := repo.List(context.Background(), "nonexistent")
	require.NoError(t, err)
	require.Empty(t, entries)
}
