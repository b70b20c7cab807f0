package out

import (
	"context"
	"database/sql"
	"fmt"

	projectout "github.com/lmple/vibe-clock/internal/modules/project/port/out"
	"github.com/lmple/vibe-clock/internal/platform/tx"
)

// SQLiteClockGuard clears the singleton clock row when it belongs to a
// project about to be deleted. clock_state has no cascade, so this must run
// before the project row goes.
type SQLiteClockGuard struct {
	db *sql.DB
}

func NewSQLiteClockGuard(db *sql.DB) projectout.RunningClock {
	return &SQLiteClockGuard{db: db}
}

func (g *SQLiteClockGuard) DiscardForProject(ctx context.Context, projectID int64) (bool, error) {
	res, err := tx.From(ctx, g.db).ExecContext(ctx,
		`DELETE FROM clock_state WHERE id = 1 AND project_id = ?`, projectID)
	if err != nil {
		return false, fmt.Errorf("discard running clock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
