// Package session persists conversation transcripts keyed by session ID.
//
// A transcript is a single append-only text blob of alternating
// "User:"/"Bot:" lines. The record is the entire conversational state:
// there are no per-turn rows, timestamps, or metadata, and records are
// never deleted or expired.
//
// Store is safe for concurrent use at the storage-engine level. Two
// near-simultaneous requests for one session can still both read the same
// prior transcript and both write, with the later write discarding the
// earlier turn. That lost-update window is accepted for the expected
// traffic shape of one human typing at a time.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/log"
)

// Store manages transcript persistence with a SQLite backend.
type Store struct {
	db     *sql.DB
	logger log.Logger
}

// New creates a Store over an opened and migrated database handle.
func New(db *sql.DB, logger log.Logger) *Store {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// History returns the stored transcript for sessionID, or the empty string
// when the session has never been seen. Absence is a normal, silent case,
// never an error.
func (s *Store) History(ctx context.Context, sessionID string) (string, error) {
	var history string
	err := s.db.QueryRowContext(ctx,
		`SELECT history FROM conversations WHERE session_id = ?`, sessionID,
	).Scan(&history)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading session %q: %w", sessionID, err)
	}
	return history, nil
}

// Save creates or overwrites the transcript for sessionID in one atomic
// upsert. There is no optimistic concurrency check and no versioning.
func (s *Store) Save(ctx context.Context, sessionID, history string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversations (session_id, history) VALUES (?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET history = excluded.history`,
		sessionID, history,
	)
	if err != nil {
		return fmt.Errorf("saving session %q: %w", sessionID, err)
	}
	s.logger.Debug("saved transcript", "session_id", sessionID, "bytes", len(history))
	return nil
}
