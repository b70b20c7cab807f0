package usecase_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	projectout "github.com/lmple/vibe-clock/internal/modules/project/adapter/out"
	"github.com/lmple/vibe-clock/internal/modules/project/dto"
	projectin "github.com/lmple/vibe-clock/internal/modules/project/port/in"
	"github.com/lmple/vibe-clock/internal/modules/project/service"
	"github.com/lmple/vibe-clock/internal/modules/project/usecase"
	"github.com/lmple/vibe-clock/internal/platform/clock"
	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
	"github.com/lmple/vibe-clock/internal/platform/sqlitedb"
	"github.com/lmple/vibe-clock/internal/platform/tx"
)

type fixture struct {
	db  *sql.DB
	clk *clock.Fixed
	uc  projectin.Usecase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := sqlitedb.Open(context.Background(), sqlitedb.Options{Path: filepath.Join(t.TempDir(), "journal.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	clk := clock.NewFixed(time.Date(2026, 2, 25, 9, 0, 0, 0, time.Local))
	svc := service.NewProjectService(clk, projectout.NewSQLiteProjectStore(db), projectout.NewSQLiteClockGuard(db))
	return fixture{db: db, clk: clk, uc: usecase.NewInteractor(svc, tx.NewSQLManager(db, nil), nil)}
}

func (f fixture) addEntries(t *testing.T, projectID int64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := f.db.Exec(`INSERT INTO task_entry (project_id, description, duration_min, created_at, updated_at)
VALUES (?, 'work', 30, '2026-02-25T10:00:00', '2026-02-25T10:00:00')`, projectID)
		require.NoError(t, err)
	}
}

func (f fixture) startClock(t *testing.T, projectID int64) {
	t.Helper()
	_, err := f.db.Exec(`INSERT INTO clock_state (id, project_id, description, start_time) VALUES (1, ?, 'running', '2026-02-25T09:00:00')`, projectID)
	require.NoError(t, err)
}

func (f fixture) count(t *testing.T, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, f.db.QueryRow(query, args...).Scan(&n))
	return n
}

func TestCreateTrimsAndRejectsEmptyOrDuplicate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.uc.Create(ctx, dto.CreateInput{Name: "  Acme  "})
	require.NoError(t, err)
	require.Equal(t, "Acme", p.Name)
	require.NotZero(t, p.ID)
	require.WithinDuration(t, f.clk.Now(), p.CreatedAt, 0)

	_, err = f.uc.Create(ctx, dto.CreateInput{Name: "Acme"})
	require.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = f.uc.Create(ctx, dto.CreateInput{Name: " \t "})
	require.ErrorIs(t, err, apperrors.ErrEmptyName)

	// Uniqueness is case-sensitive.
	_, err = f.uc.Create(ctx, dto.CreateInput{Name: "acme"})
	require.NoError(t, err)
}

func TestListOrdersByNameWithEntryCounts(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	beta, err := f.uc.Create(ctx, dto.CreateInput{Name: "Beta"})
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, dto.CreateInput{Name: "Alpha"})
	require.NoError(t, err)
	f.addEntries(t, beta.ID, 3)

	list, err := f.uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Alpha", list[0].Name)
	require.Equal(t, 0, list[0].EntryCount)
	require.Equal(t, "Beta", list[1].Name)
	require.Equal(t, 3, list[1].EntryCount)
}

func TestRenameToNameOfOtherProjectLeavesBothUnchanged(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	acme, err := f.uc.Create(ctx, dto.CreateInput{Name: "Acme"})
	require.NoError(t, err)
	beta, err := f.uc.Create(ctx, dto.CreateInput{Name: "Beta"})
	require.NoError(t, err)

	_, err = f.uc.Rename(ctx, dto.RenameInput{ID: beta.ID, NewName: "Acme"})
	require.ErrorIs(t, err, apperrors.ErrDuplicate)

	got, err := f.uc.Get(ctx, acme.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme", got.Name)
	got, err = f.uc.Get(ctx, beta.ID)
	require.NoError(t, err)
	require.Equal(t, "Beta", got.Name)
}

func TestRenameUpdatesNameAndTimestamp(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	acme, err := f.uc.Create(ctx, dto.CreateInput{Name: "Acme"})
	require.NoError(t, err)

	f.clk.Advance(time.Hour)
	renamed, err := f.uc.Rename(ctx, dto.RenameInput{ID: acme.ID, NewName: " Acme Corp "})
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", renamed.Name)

	got, err := f.uc.Get(ctx, acme.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", got.Name)
	require.WithinDuration(t, f.clk.Now(), got.UpdatedAt, 0)

	// Renaming to its own name is allowed.
	_, err = f.uc.Rename(ctx, dto.RenameInput{ID: acme.ID, NewName: "Acme Corp"})
	require.NoError(t, err)

	_, err = f.uc.Rename(ctx, dto.RenameInput{ID: 999, NewName: "Ghost"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = f.uc.Rename(ctx, dto.RenameInput{ID: acme.ID, NewName: "  "})
	require.ErrorIs(t, err, apperrors.ErrEmptyName)
}

func TestDeleteWithoutForceNeverMutates(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	acme, err := f.uc.Create(ctx, dto.CreateInput{Name: "Acme"})
	require.NoError(t, err)
	f.addEntries(t, acme.ID, 2)
	f.startClock(t, acme.ID)

	out, err := f.uc.Delete(ctx, dto.DeleteInput{ID: acme.ID})
	require.NoError(t, err)
	require.True(t, out.NeedsConfirmation)
	require.False(t, out.Deleted)
	require.Equal(t, "Acme", out.Name)
	require.Equal(t, 2, out.EntryCount)

	require.Equal(t, 1, f.count(t, `SELECT COUNT(*) FROM project`))
	require.Equal(t, 2, f.count(t, `SELECT COUNT(*) FROM task_entry`))
	require.Equal(t, 1, f.count(t, `SELECT COUNT(*) FROM clock_state`))
}

func TestForcedDeleteCascadesEntriesAndDiscardsClock(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	acme, err := f.uc.Create(ctx, dto.CreateInput{Name: "Acme"})
	require.NoError(t, err)
	other, err := f.uc.Create(ctx, dto.CreateInput{Name: "Other"})
	require.NoError(t, err)
	f.addEntries(t, acme.ID, 2)
	f.addEntries(t, other.ID, 1)
	f.startClock(t, acme.ID)

	out, err := f.uc.Delete(ctx, dto.DeleteInput{ID: acme.ID, Force: true})
	require.NoError(t, err)
	require.True(t, out.Deleted)
	require.True(t, out.ClockDiscarded)

	require.Equal(t, 1, f.count(t, `SELECT COUNT(*) FROM project`))
	require.Equal(t, 1, f.count(t, `SELECT COUNT(*) FROM task_entry`))
	require.Equal(t, 0, f.count(t, `SELECT COUNT(*) FROM clock_state`))
}

func TestDeleteKeepsClockOfOtherProject(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	acme, err := f.uc.Create(ctx, dto.CreateInput{Name: "Acme"})
	require.NoError(t, err)
	other, err := f.uc.Create(ctx, dto.CreateInput{Name: "Other"})
	require.NoError(t, err)
	f.startClock(t, other.ID)

	out, err := f.uc.Delete(ctx, dto.DeleteInput{ID: acme.ID})
	require.NoError(t, err)
	require.True(t, out.Deleted)
	require.False(t, out.ClockDiscarded)
	require.Equal(t, 1, f.count(t, `SELECT COUNT(*) FROM clock_state WHERE project_id = ?`, other.ID))

	_, err = f.uc.Delete(ctx, dto.DeleteInput{ID: acme.ID})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestResolveNumericRefIsAuthoritative(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	acme, err := f.uc.Create(ctx, dto.CreateInput{Name: "Acme"})
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, dto.CreateInput{Name: "42"})
	require.NoError(t, err)

	got, err := f.uc.Resolve(ctx, "Acme")
	require.NoError(t, err)
	require.Equal(t, acme.ID, got.ID)

	got, err = f.uc.Resolve(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, acme.ID, got.ID)

	// "42" parses as an id; the project named "42" is not a fallback.
	_, err = f.uc.Resolve(ctx, "42")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = f.uc.Resolve(ctx, "acme")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
