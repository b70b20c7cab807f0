package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// TimeLayout is the persisted timestamp format: local time, second precision.
// Date-only comparisons use its leading ten characters.
const TimeLayout = "2006-01-02T15:04:05"

const SchemaVersion = 1

const schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (
  version INTEGER PRIMARY KEY
);

INSERT OR IGNORE INTO schema_version (version) VALUES (1);

CREATE TABLE IF NOT EXISTS project (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS task_entry (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  project_id INTEGER NOT NULL,
  description TEXT NOT NULL,
  start_time TEXT,
  end_time TEXT,
  duration_min INTEGER NOT NULL CHECK(duration_min > 0),
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (project_id) REFERENCES project(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS clock_state (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  project_id INTEGER NOT NULL,
  description TEXT NOT NULL,
  start_time TEXT NOT NULL,
  FOREIGN KEY (project_id) REFERENCES project(id)
);

CREATE INDEX IF NOT EXISTS idx_task_entry_project_id ON task_entry(project_id);
CREATE INDEX IF NOT EXISTS idx_task_entry_start_time ON task_entry(start_time);
`

type Options struct {
	Path        string
	LockTimeout time.Duration
	Logger      *slog.Logger
}

// Open opens the journal database with exclusive locking and applies the
// schema. The migration write takes the lock right away, so a second process
// waits at most LockTimeout and then fails.
func Open(ctx context.Context, opts Options) (*sql.DB, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", DSN(opts.Path, opts.LockTimeout))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// locking_mode is per connection; a second pooled connection would
	// contend with the first.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Debug("store opened", "path", opts.Path, "schema_version", SchemaVersion)
	return db, nil
}

func DSN(path string, lockTimeout time.Duration) string {
	if lockTimeout <= 0 {
		lockTimeout = 5 * time.Second
	}
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", lockTimeout.Milliseconds()))
	q.Add("_pragma", "journal_mode(DELETE)")
	q.Add("_pragma", "synchronous(FULL)")
	q.Add("_pragma", "locking_mode(EXCLUSIVE)")
	q.Set("_txlock", "immediate")
	return "file:" + uriPath.Replace(path) + "?" + q.Encode()
}

// uriPath escapes the characters that end or alter the path part of an
// SQLite file: URI.
var uriPath = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

func migrate(ctx context.Context, db *sql.DB) error {
	// In exclusive locking mode the lock taken here is kept until Close.
	if _, err := db.ExecContext(ctx, "BEGIN EXCLUSIVE; COMMIT;"); err != nil {
		return fmt.Errorf("lock database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("initialize database schema: %w", err)
	}
	return nil
}

func FormatTime(t time.Time) string {
	return t.In(time.Local).Format(TimeLayout)
}

func ParseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime in database %q: %w", s, err)
	}
	return t, nil
}

func FormatNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: FormatTime(*t), Valid: true}
}

func ParseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := ParseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// IsUniqueViolation reports whether err came from a UNIQUE or PRIMARY KEY
// constraint.
func IsUniqueViolation(err error) bool {
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
