// Package store persists learner snapshots and the append-only event log in
// SQLite through ent.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/edusmart/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// AppDir is the directory name used under the XDG data home.
const AppDir = "edusmart"

// Store owns the database handle and hands out repositories over it.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequencer
}

type openConfig struct {
	busyTimeout time.Duration
	journalMode string
	migrate     bool
}

// Option tunes how Open prepares the database.
type Option func(*openConfig)

// WithBusyTimeout sets how long a writer waits on a locked database.
func WithBusyTimeout(d time.Duration) Option {
	return func(c *openConfig) { c.busyTimeout = d }
}

// WithJournalMode overrides the SQLite journal mode (WAL by default).
func WithJournalMode(mode string) Option {
	return func(c *openConfig) { c.journalMode = mode }
}

// WithoutMigration skips schema creation. The schema must already exist.
func WithoutMigration() Option {
	return func(c *openConfig) { c.migrate = false }
}

// Open connects to the SQLite database at dsn, creating the schema when
// needed.
func Open(dsn string, opts ...Option) (*Store, error) {
	cfg := openConfig{busyTimeout: 5 * time.Second, journalMode: "WAL", migrate: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := cfg.apply(db); err != nil {
		db.Close()
		return nil, err
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if cfg.migrate {
		if err := client.Schema.Create(context.Background()); err != nil {
			client.Close()
			return nil, fmt.Errorf("migrate schema: %w", err)
		}
	}

	seq, err := newSequencer(db)
	if err != nil {
		client.Close()
		return nil, err
	}
	return &Store{db: db, client: client, seq: seq}, nil
}

func (c openConfig) apply(db *sql.DB) error {
	pragmas := []string{
		"journal_mode = " + c.journalMode,
		fmt.Sprintf("busy_timeout = %d", c.busyTimeout.Milliseconds()),
		"foreign_keys = ON",
		"synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec("PRAGMA " + p); err != nil {
			return fmt.Errorf("pragma %s: %w", p, err)
		}
	}
	return nil
}

// Client exposes the ent client for queries the repositories do not cover.
func (s *Store) Client() *ent.Client { return s.client }

// DB exposes the raw connection pool.
func (s *Store) DB() *sql.DB { return s.db }

// Close releases the database.
func (s *Store) Close() error { return s.client.Close() }

// SnapshotRepo returns the snapshot repository.
func (s *Store) SnapshotRepo() SnapshotRepo {
	return &snapshotRepo{client: s.client}
}

// EventRepo returns the event log repository.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// Sequence returns the last event sequence number written.
func (s *Store) Sequence(ctx context.Context) (int64, error) {
	return s.seq.Current(ctx)
}

// Reset deletes every event and snapshot in one transaction. The sequence
// counter is left alone so later events still sort after anything exported
// earlier.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}

	tables := map[string]func(context.Context) (int, error){
		"xp_events":          tx.XPEvent.Delete().Exec,
		"lesson_events":      tx.LessonEvent.Delete().Exec,
		"quiz_events":        tx.QuizEvent.Delete().Exec,
		"achievement_events": tx.AchievementEvent.Delete().Exec,
		"activity_events":    tx.ActivityEvent.Delete().Exec,
		"snapshots":          tx.Snapshot.Delete().Exec,
	}
	for table, del := range tables {
		if _, err := del(ctx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// DataDir returns $XDG_DATA_HOME/edusmart, falling back to
// ~/.local/share/edusmart.
func DataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, AppDir), nil
}

// DefaultDBPath returns the database file under DataDir, creating the
// directory.
func DefaultDBPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "edusmart.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
