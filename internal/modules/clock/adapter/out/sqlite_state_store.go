package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lmple/vibe-clock/internal/modules/clock/domain"
	clockout "github.com/lmple/vibe-clock/internal/modules/clock/port/out"
	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
	"github.com/lmple/vibe-clock/internal/platform/sqlitedb"
	"github.com/lmple/vibe-clock/internal/platform/tx"
)

// stateRowID is the only id clock_state accepts.
const stateRowID = 1

type SQLiteStateStore struct {
	db *sql.DB
}

func NewSQLiteStateStore(db *sql.DB) clockout.StateStore {
	return &SQLiteStateStore{db: db}
}

func (s *SQLiteStateStore) Load(ctx context.Context) (domain.State, error) {
	var (
		state domain.State
		start string
	)
	err := tx.From(ctx, s.db).QueryRowContext(ctx,
		`SELECT project_id, description, start_time FROM clock_state WHERE id = ?`, stateRowID,
	).Scan(&state.ProjectID, &state.Description, &start)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.State{}, apperrors.ErrNoClockRunning
	}
	if err != nil {
		return domain.State{}, fmt.Errorf("load clock state: %w", err)
	}
	if state.StartTime, err = sqlitedb.ParseTime(start); err != nil {
		return domain.State{}, err
	}
	return state, nil
}

func (s *SQLiteStateStore) Save(ctx context.Context, state domain.State) error {
	_, err := tx.From(ctx, s.db).ExecContext(ctx,
		`INSERT INTO clock_state (id, project_id, description, start_time) VALUES (?, ?, ?, ?)`,
		stateRowID, state.ProjectID, state.Description, sqlitedb.FormatTime(state.StartTime))
	if err != nil {
		if sqlitedb.IsUniqueViolation(err) {
			return apperrors.ErrClockRunning
		}
		return fmt.Errorf("save clock state: %w", err)
	}
	return nil
}

func (s *SQLiteStateStore) Clear(ctx context.Context) error {
	res, err := tx.From(ctx, s.db).ExecContext(ctx, `DELETE FROM clock_state WHERE id = ?`, stateRowID)
	if err != nil {
		return fmt.Errorf("clear clock state: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return apperrors.ErrNoClockRunning
	}
	return nil
}
