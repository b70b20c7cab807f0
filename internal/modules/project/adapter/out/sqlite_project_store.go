package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lmple/vibe-clock/internal/modules/project/domain"
	projectout "github.com/lmple/vibe-clock/internal/modules/project/port/out"
	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
	"github.com/lmple/vibe-clock/internal/platform/sqlitedb"
	"github.com/lmple/vibe-clock/internal/platform/tx"
)

type SQLiteProjectStore struct {
	db *sql.DB
}

func NewSQLiteProjectStore(db *sql.DB) projectout.ProjectStore {
	return &SQLiteProjectStore{db: db}
}

func (s *SQLiteProjectStore) Insert(ctx context.Context, name string, now time.Time) (domain.Project, error) {
	stamp := sqlitedb.FormatTime(now)
	res, err := tx.From(ctx, s.db).ExecContext(ctx,
		`INSERT INTO project (name, created_at, updated_at) VALUES (?, ?, ?)`, name, stamp, stamp)
	if err != nil {
		if sqlitedb.IsUniqueViolation(err) {
			return domain.Project{}, fmt.Errorf("%w: project '%s'", apperrors.ErrDuplicate, name)
		}
		return domain.Project{}, fmt.Errorf("insert project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Project{}, fmt.Errorf("read project id: %w", err)
	}
	stored, err := sqlitedb.ParseTime(stamp)
	if err != nil {
		return domain.Project{}, err
	}
	return domain.Project{ID: id, Name: name, CreatedAt: stored, UpdatedAt: stored}, nil
}

func (s *SQLiteProjectStore) FindByID(ctx context.Context, id int64) (domain.Project, error) {
	row := tx.From(ctx, s.db).QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM project WHERE id = ?`, id)
	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Project{}, fmt.Errorf("%w: project with ID %d", apperrors.ErrNotFound, id)
	}
	return project, err
}

func (s *SQLiteProjectStore) FindByName(ctx context.Context, name string) (domain.Project, error) {
	row := tx.From(ctx, s.db).QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM project WHERE name = ?`, name)
	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Project{}, fmt.Errorf("%w: project '%s'", apperrors.ErrNotFound, name)
	}
	return project, err
}

func (s *SQLiteProjectStore) List(ctx context.Context) ([]domain.Summary, error) {
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, `
SELECT p.id, p.name, p.created_at, p.updated_at, COUNT(t.id)
FROM project p
LEFT JOIN task_entry t ON t.project_id = p.id
GROUP BY p.id
ORDER BY p.name;
`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Summary, 0)
	for rows.Next() {
		var created, updated string
		item := domain.Summary{}
		if err := rows.Scan(&item.Project.ID, &item.Project.Name, &created, &updated, &item.EntryCount); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if item.Project.CreatedAt, err = sqlitedb.ParseTime(created); err != nil {
			return nil, err
		}
		if item.Project.UpdatedAt, err = sqlitedb.ParseTime(updated); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return out, nil
}

func (s *SQLiteProjectStore) Rename(ctx context.Context, id int64, name string, now time.Time) error {
	res, err := tx.From(ctx, s.db).ExecContext(ctx,
		`UPDATE project SET name = ?, updated_at = ? WHERE id = ?`, name, sqlitedb.FormatTime(now), id)
	if err != nil {
		if sqlitedb.IsUniqueViolation(err) {
			return fmt.Errorf("%w: project '%s'", apperrors.ErrDuplicate, name)
		}
		return fmt.Errorf("rename project: %w", err)
	}
	return requireOneRow(res, id)
}

func (s *SQLiteProjectStore) Delete(ctx context.Context, id int64) error {
	res, err := tx.From(ctx, s.db).ExecContext(ctx, `DELETE FROM project WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return requireOneRow(res, id)
}

func (s *SQLiteProjectStore) CountEntries(ctx context.Context, id int64) (int, error) {
	var count int
	err := tx.From(ctx, s.db).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM task_entry WHERE project_id = ?`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count project entries: %w", err)
	}
	return count, nil
}

func scanProject(row *sql.Row) (domain.Project, error) {
	var created, updated string
	project := domain.Project{}
	if err := row.Scan(&project.ID, &project.Name, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, err
		}
		return domain.Project{}, fmt.Errorf("scan project: %w", err)
	}
	var err error
	if project.CreatedAt, err = sqlitedb.ParseTime(created); err != nil {
		return domain.Project{}, err
	}
	if project.UpdatedAt, err = sqlitedb.ParseTime(updated); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func requireOneRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: project with ID %d", apperrors.ErrNotFound, id)
	}
	return nil
}
