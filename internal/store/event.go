package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/abhisek/edusmart/ent"
)

// eventRepo implements EventRepo over the ent client. Every append draws a
// number from the shared sequencer before it is written.
type eventRepo struct {
	client *ent.Client
	seq    *sequencer
}

// next reserves the sequence number for an event of the given kind.
func (r *eventRepo) next(ctx context.Context, kind string) (int64, error) {
	n, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s event: %w", kind, err)
	}
	return n, nil
}

// sequencer hands out one increasing number across every event table so
// that XP, lesson, quiz, achievement and activity events can be merged
// back into arrival order, and snapshots can record the last event they
// include.
//
// The counter lives in a plain SQLite table written with raw SQL: ent has no
// atomic counters. The upsert with RETURNING is atomic in the database and
// the mutex keeps callers in this process from interleaving.
type sequencer struct {
	mu sync.Mutex
	db *sql.DB
}

const sequenceName = "events"

func newSequencer(db *sql.DB) (*sequencer, error) {
	const ddl = `CREATE TABLE IF NOT EXISTS event_sequence (
		name  TEXT PRIMARY KEY,
		value INTEGER NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		return nil, fmt.Errorf("create event_sequence: %w", err)
	}
	return &sequencer{db: db}, nil
}

// Next increments the counter and returns the new value. The first call
// returns 1.
func (s *sequencer) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO event_sequence (name, value) VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = value + 1
		RETURNING value`, sequenceName).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("advance sequence: %w", err)
	}
	return n, nil
}

// Current returns the last value handed out, 0 before the first event.
func (s *sequencer) Current(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(value), 0) FROM event_sequence WHERE name = ?`, sequenceName,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("read sequence: %w", err)
	}
	return n, nil
}
