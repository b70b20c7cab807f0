package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lmple/vibe-clock/internal/modules/journal/domain"
	journalout "github.com/lmple/vibe-clock/internal/modules/journal/port/out"
	"github.com/lmple/vibe-clock/internal/platform/sqlitedb"
	"github.com/lmple/vibe-clock/internal/platform/timefmt"
	"github.com/lmple/vibe-clock/internal/platform/tx"
)

type SQLiteEntryReader struct {
	db *sql.DB
}

func NewSQLiteEntryReader(db *sql.DB) journalout.EntryReader {
	return &SQLiteEntryReader{db: db}
}

func (r *SQLiteEntryReader) Between(ctx context.Context, from, to time.Time) ([]domain.Line, error) {
	rows, err := tx.From(ctx, r.db).QueryContext(ctx, `
SELECT t.id, t.project_id, p.name, t.description, t.start_time, t.end_time, t.duration_min, t.created_at
FROM task_entry t
LEFT JOIN project p ON p.id = t.project_id
WHERE substr(COALESCE(t.start_time, t.created_at), 1, 10) BETWEEN ? AND ?
ORDER BY COALESCE(t.start_time, t.created_at), t.id;
`, from.Format(timefmt.DateLayout), to.Format(timefmt.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Line, 0)
	for rows.Next() {
		var (
			line        domain.Line
			projectName sql.NullString
			start, end  sql.NullString
			created     string
		)
		if err := rows.Scan(&line.EntryID, &line.ProjectID, &projectName, &line.Description, &start, &end, &line.DurationMin, &created); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		line.ProjectName = projectName.String
		if line.StartTime, err = sqlitedb.ParseNullTime(start); err != nil {
			return nil, err
		}
		if line.EndTime, err = sqlitedb.ParseNullTime(end); err != nil {
			return nil, err
		}
		if line.CreatedAt, err = sqlitedb.ParseTime(created); err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}
	return out, nil
}
