package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/database"
	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/log"
)

// newTestStore opens a migrated SQLite database in a temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "conversations.db")
	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return New(db, log.NewNop())
}

func TestHistoryUnknownSession(t *testing.T) {
	store := newTestStore(t)

	got, err := store.History(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if got != "" {
		t.Errorf("History() = %q, want empty string for unknown session", got)
	}
}

func TestSaveHistoryRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	transcript := "\nUser: Hello\nBot: Hi there!"
	if err := store.Save(ctx, "session-1", transcript); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.History(ctx, "session-1")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if got != transcript {
		t.Errorf("History() = %q, want %q", got, transcript)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "session-1", "first"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(ctx, "session-1", "second"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.History(ctx, "session-1")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if got != "second" {
		t.Errorf("History() = %q, want %q", got, "second")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "a", "transcript-a"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(ctx, "b", "transcript-b"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	gotA, err := store.History(ctx, "a")
	if err != nil {
		t.Fatalf("History(a) error = %v", err)
	}
	gotB, err := store.History(ctx, "b")
	if err != nil {
		t.Fatalf("History(b) error = %v", err)
	}

	if gotA != "transcript-a" || gotB != "transcript-b" {
		t.Errorf("sessions not independent: a=%q b=%q", gotA, gotB)
	}
}

func TestSavePersistsAcrossStoreInstances(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "conversations.db")
	ctx := context.Background()

	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	store := New(db, log.NewNop())
	if err := store.Save(ctx, "durable", "kept between restarts"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reopen the same file, simulating a process restart.
	db2, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen Open() error = %v", err)
	}
	defer func() { _ = db2.Close() }()
	if err := database.Migrate(db2); err != nil {
		t.Fatalf("reopen Migrate() error = %v", err)
	}

	got, err := New(db2, log.NewNop()).History(ctx, "durable")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if got != "kept between restarts" {
		t.Errorf("History() after reopen = %q, want %q", got, "kept between restarts")
	}
}
