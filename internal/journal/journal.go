package journal

import (
	"context"
	"github.com/myrjola/cluedo/internal/errors"
	"github.com/myrjola/cluedo/internal/sqlite"
	"log/slog"
	"time"
)

// Kind names what happened in a journal entry.
type Kind string

const (
	KindSessionCreated    Kind = "session_created"
	KindParticipantJoined Kind = "participant_joined"
	KindCluesDistributed  Kind = "clues_distributed"
	KindMoved             Kind = "moved"
	KindSuggested         Kind = "suggested"
	KindAccused           Kind = "accused"
	KindQuit              Kind = "quit"
)

const (
	OutcomeMatch   = "match"
	OutcomeNoMatch = "no match"
)

// Entry is a single recorded action of a session.
type Entry struct {
	ID          int64     `db:"id"`
	SessionID   string    `db:"session_id"`
	Kind        Kind      `db:"kind"`
	Participant string    `db:"participant"`
	Location    string    `db:"location"`
	Tool        string    `db:"tool"`
	Character   string    `db:"character"`
	Outcome     string    `db:"outcome"`
	Created     time.Time `db:"-"`
}

// Repository records the actions of the sessions played in this run.
type Repository struct {
	dbs    *sqlite.Database
	logger *slog.Logger
}

// NewRepository creates a journal repository on top of dbs.
func NewRepository(dbs *sqlite.Database, logger *slog.Logger) *Repository {
	return &Repository{
		dbs:    dbs,
		logger: logger.With("source", "JournalRepository"),
	}
}

// Record appends entry to the journal of entry.SessionID.
func (r *Repository) Record(ctx context.Context, entry Entry) error {
	stmt := `INSERT INTO journal_entries (session_id, kind, participant, location, tool, character, outcome)
VALUES (:session_id, :kind, :participant, :location, :tool, :character, :outcome)`
	if _, err := r.dbs.ReadWrite.NamedExecContext(ctx, stmt, entry); err != nil {
		return errors.Wrap(err, "insert journal entry",
			slog.String("sessionID", entry.SessionID),
			slog.String("kind", string(entry.Kind)),
		)
	}
	r.logger.LogAttrs(ctx, slog.LevelDebug, "recorded journal entry", slog.String("kind", string(entry.Kind)))
	return nil
}

type row struct {
	Entry
	Created string `db:"created"`
}

// List returns the entries of the session in the order they were recorded.
func (r *Repository) List(ctx context.Context, sessionID string) ([]Entry, error) {
	var rows []row
	stmt := `SELECT id, session_id, kind, participant, location, tool, character, outcome, created
FROM journal_entries
WHERE session_id = ?
ORDER BY id`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &rows, stmt, sessionID); err != nil {
		return nil, errors.Wrap(err, "select journal entries", slog.String("sessionID", sessionID))
	}

	entries := make([]Entry, 0, len(rows))
	for _, rw := range rows {
		created, err := time.Parse(time.RFC3339Nano, rw.Created)
		if err != nil {
			return nil, errors.Wrap(err, "parse created", slog.String("created", rw.Created))
		}
		entry := rw.Entry
		entry.Created = created
		entries = append(entries, entry)
	}
	return entries, nil
}
