package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lmple/vibe-clock/internal/modules/task/domain"
	taskout "github.com/lmple/vibe-clock/internal/modules/task/port/out"
	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
	"github.com/lmple/vibe-clock/internal/platform/sqlitedb"
	"github.com/lmple/vibe-clock/internal/platform/tx"
)

const entryColumns = `id, project_id, description, start_time, end_time, duration_min, created_at, updated_at`

type SQLiteEntryStore struct {
	db *sql.DB
}

func NewSQLiteEntryStore(db *sql.DB) taskout.EntryStore {
	return &SQLiteEntryStore{db: db}
}

func (s *SQLiteEntryStore) Insert(ctx context.Context, entry domain.Entry) (domain.Entry, error) {
	created, updated := sqlitedb.FormatTime(entry.CreatedAt), sqlitedb.FormatTime(entry.UpdatedAt)
	res, err := tx.From(ctx, s.db).ExecContext(ctx, `
INSERT INTO task_entry (project_id, description, start_time, end_time, duration_min, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?);
`,
		entry.ProjectID,
		entry.Description,
		sqlitedb.FormatNullTime(entry.StartTime),
		sqlitedb.FormatNullTime(entry.EndTime),
		entry.DurationMin,
		created,
		updated,
	)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("insert task entry: %w", err)
	}
	if entry.ID, err = res.LastInsertId(); err != nil {
		return domain.Entry{}, fmt.Errorf("read task entry id: %w", err)
	}
	return s.FindByID(ctx, entry.ID)
}

func (s *SQLiteEntryStore) FindByID(ctx context.Context, id int64) (domain.Entry, error) {
	row := tx.From(ctx, s.db).QueryRowContext(ctx, `SELECT `+entryColumns+` FROM task_entry WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Entry{}, fmt.Errorf("%w: task with ID %d", apperrors.ErrNotFound, id)
	}
	return entry, err
}

func (s *SQLiteEntryStore) Update(ctx context.Context, entry domain.Entry) error {
	res, err := tx.From(ctx, s.db).ExecContext(ctx, `
UPDATE task_entry
SET project_id = ?, description = ?, start_time = ?, end_time = ?, duration_min = ?, updated_at = ?
WHERE id = ?;
`,
		entry.ProjectID,
		entry.Description,
		sqlitedb.FormatNullTime(entry.StartTime),
		sqlitedb.FormatNullTime(entry.EndTime),
		entry.DurationMin,
		sqlitedb.FormatTime(entry.UpdatedAt),
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("update task entry: %w", err)
	}
	return requireOneRow(res, entry.ID)
}

func (s *SQLiteEntryStore) Delete(ctx context.Context, id int64) error {
	res, err := tx.From(ctx, s.db).ExecContext(ctx, `DELETE FROM task_entry WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task entry: %w", err)
	}
	return requireOneRow(res, id)
}

type scanner interface {
	Scan(dest ...any) error
}

// scanEntry reads a row selected with the task_entry column order.
func scanEntry(row scanner) (domain.Entry, error) {
	var (
		entry            domain.Entry
		start, end       sql.NullString
		created, updated string
	)
	if err := row.Scan(&entry.ID, &entry.ProjectID, &entry.Description, &start, &end, &entry.DurationMin, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Entry{}, err
		}
		return domain.Entry{}, fmt.Errorf("scan task entry: %w", err)
	}
	var err error
	if entry.StartTime, err = sqlitedb.ParseNullTime(start); err != nil {
		return domain.Entry{}, err
	}
	if entry.EndTime, err = sqlitedb.ParseNullTime(end); err != nil {
		return domain.Entry{}, err
	}
	if entry.CreatedAt, err = sqlitedb.ParseTime(created); err != nil {
		return domain.Entry{}, err
	}
	if entry.UpdatedAt, err = sqlitedb.ParseTime(updated); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}

func requireOneRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: task with ID %d", apperrors.ErrNotFound, id)
	}
	return nil
}
