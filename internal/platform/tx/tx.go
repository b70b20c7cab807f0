package tx

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Manager wraps transactional boundaries for multi-adapter operations.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// Executor is the subset of *sql.DB and *sql.Tx the adapters need.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// From returns the transaction carried by ctx, or db when there is none.
func From(ctx context.Context, db *sql.DB) Executor {
	if t, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return t
	}
	return db
}

// SQLManager runs fn inside a single database transaction. Adapters pick the
// transaction up through From.
type SQLManager struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewSQLManager(db *sql.DB, logger *slog.Logger) *SQLManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLManager{db: db, logger: logger}
}

func (m *SQLManager) Within(ctx context.Context, fn func(context.Context) error) (err error) {
	if _, nested := ctx.Value(txKey{}).(*sql.Tx); nested {
		return fn(ctx)
	}
	t, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = t.Rollback()
			panic(p)
		}
	}()
	if err := fn(context.WithValue(ctx, txKey{}, t)); err != nil {
		if rbErr := t.Rollback(); rbErr != nil {
			m.logger.Debug("transaction rollback failed", "error", rbErr)
		} else {
			m.logger.Debug("transaction rolled back", "cause", err)
		}
		return err
	}
	if err := t.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
