// Package sqlitestore keeps the engagement ledger in an embedded SQLite
// database. It backs the command line tool and the service tests; the API
// server uses the Postgres repositories.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/limbo/engagement/pkg/cleanup"
)

// MemoryDir opens a private in-memory database instead of a file.
const MemoryDir = ":memory:"

type DB struct {
	db *sql.DB
}

// Open creates or opens dir/engagement.db. The pool holds a single
// connection since SQLite allows one writer.
func Open(dir string) (*DB, error) {
	dsn := "file::memory:"
	if dir != MemoryDir {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		dsn = filepath.Join(dir, "engagement.db") + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return d, nil
}

// OpenWithCleanup is Open that also registers a cleanup job closing the database.
func OpenWithCleanup(dir string) (*DB, error) {
	d, err := Open(dir)
	if err != nil {
		return nil, err
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite",
		F:    d.Close,
	})
	return d, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DB) Events() *EventsRepository {
	return &EventsRepository{db: d.db}
}

func (d *DB) Freezes() *FreezesRepository {
	return &FreezesRepository{db: d.db}
}

func (d *DB) XP() *XPRepository {
	return &XPRepository{db: d.db}
}

func (d *DB) Progress() *ProgressRepository {
	return &ProgressRepository{db: d.db}
}

func (d *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS engagement_events (
			seq                   INTEGER PRIMARY KEY AUTOINCREMENT,
			id                    TEXT NOT NULL,
			user_id               TEXT NOT NULL,
			stream_key            TEXT NOT NULL,
			occurred_at           INTEGER NOT NULL,
			metadata              TEXT NOT NULL DEFAULT '{}',
			is_freeze_consumption BOOLEAN NOT NULL DEFAULT 0,
			freeze_id             TEXT,
			UNIQUE (user_id, stream_key, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_stream ON engagement_events(user_id, stream_key, seq)`,

		`CREATE TABLE IF NOT EXISTS streak_freezes (
			seq           INTEGER PRIMARY KEY AUTOINCREMENT,
			id            TEXT NOT NULL,
			user_id       TEXT NOT NULL,
			stream_key    TEXT NOT NULL,
			date_created  INTEGER NOT NULL,
			date_expires  INTEGER,
			date_consumed INTEGER,
			UNIQUE (user_id, stream_key, id)
		)`,

		`CREATE TABLE IF NOT EXISTS xp_events (
			seq            INTEGER PRIMARY KEY AUTOINCREMENT,
			id             TEXT NOT NULL,
			user_id        TEXT NOT NULL,
			experience_key TEXT NOT NULL,
			points         INTEGER NOT NULL,
			occurred_at    INTEGER NOT NULL,
			metadata       TEXT NOT NULL DEFAULT '{}',
			UNIQUE (user_id, experience_key, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_xp_key ON xp_events(user_id, experience_key, seq)`,

		`CREATE TABLE IF NOT EXISTS progress_items (
			id            TEXT NOT NULL,
			user_id       TEXT NOT NULL,
			progress_key  TEXT NOT NULL,
			value         REAL NOT NULL,
			metadata      TEXT NOT NULL DEFAULT '{}',
			date_created  INTEGER NOT NULL,
			date_modified INTEGER NOT NULL,
			PRIMARY KEY (user_id, progress_key, id)
		)`,
	}
	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}

func toUnix(t time.Time) int64 {
	return t.UnixNano()
}

func fromUnix(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func nullableUnix(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}

func fromNullable(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := fromUnix(n.Int64)
	return &t
}
