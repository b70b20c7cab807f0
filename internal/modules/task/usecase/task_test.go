package usecase_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	projectout "github.com/lmple/vibe-clock/internal/modules/project/adapter/out"
	projectdto "github.com/lmple/vibe-clock/internal/modules/project/dto"
	projectservice "github.com/lmple/vibe-clock/internal/modules/project/service"
	projectusecase "github.com/lmple/vibe-clock/internal/modules/project/usecase"
	taskout "github.com/lmple/vibe-clock/internal/modules/task/adapter/out"
	"github.com/lmple/vibe-clock/internal/modules/task/dto"
	taskin "github.com/lmple/vibe-clock/internal/modules/task/port/in"
	"github.com/lmple/vibe-clock/internal/modules/task/service"
	"github.com/lmple/vibe-clock/internal/modules/task/usecase"
	"github.com/lmple/vibe-clock/internal/platform/clock"
	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
	"github.com/lmple/vibe-clock/internal/platform/sqlitedb"
	"github.com/lmple/vibe-clock/internal/platform/tx"
)

type fixture struct {
	db      *sql.DB
	clk     *clock.Fixed
	uc      taskin.Usecase
	acme    int64
	initech int64
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	db, err := sqlitedb.Open(ctx, sqlitedb.Options{Path: filepath.Join(t.TempDir(), "journal.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	clk := clock.NewFixed(time.Date(2026, 2, 25, 18, 0, 0, 0, time.Local))
	txm := tx.NewSQLManager(db, nil)
	projects := projectusecase.NewInteractor(
		projectservice.NewProjectService(clk, projectout.NewSQLiteProjectStore(db), projectout.NewSQLiteClockGuard(db)),
		txm, nil)
	acme, err := projects.Create(ctx, projectdto.CreateInput{Name: "Acme"})
	require.NoError(t, err)
	initech, err := projects.Create(ctx, projectdto.CreateInput{Name: "Initech"})
	require.NoError(t, err)

	svc := service.NewTaskService(clk, taskout.NewSQLiteEntryStore(db), taskout.NewProjectDirectoryAdapter(projects))
	return fixture{db: db, clk: clk, uc: usecase.NewInteractor(svc, txm, nil), acme: acme.ID, initech: initech.ID}
}

func at(h, m int) time.Time {
	return time.Date(2026, 2, 25, h, m, 0, 0, time.Local)
}

func ptr(s string) *string { return &s }

func TestAddWithStartAndEndDerivesDuration(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	out, err := f.uc.Add(context.Background(), dto.AddInput{
		ProjectRef:  "Acme",
		Description: "Standup",
		Start:       "09:00",
		End:         "2026-02-25T10:15",
		Duration:    "5m",
	})
	require.NoError(t, err)
	require.Equal(t, "Acme", out.ProjectName)
	require.Equal(t, 75, out.DurationMin)
	require.NotNil(t, out.StartTime)
	require.True(t, at(9, 0).Equal(*out.StartTime))
	require.True(t, at(10, 15).Equal(*out.EndTime))

	got, err := f.uc.Get(context.Background(), out.ID)
	require.NoError(t, err)
	require.Equal(t, 75, got.DurationMin)
	require.Equal(t, "Standup", got.Description)
}

func TestAddWithDurationOnly(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	out, err := f.uc.Add(context.Background(), dto.AddInput{ProjectRef: "Acme", Description: "Review", Duration: "1h 30m"})
	require.NoError(t, err)
	require.Equal(t, 90, out.DurationMin)
	require.Nil(t, out.StartTime)
	require.Nil(t, out.EndTime)
	require.True(t, f.clk.Now().Equal(out.CreatedAt))
}

func TestAddWithLoneBoundFallsBackToDuration(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	for name, input := range map[string]dto.AddInput{
		"lone start": {ProjectRef: "Acme", Description: "Pairing", Start: "09:00", Duration: "45m"},
		"lone end":   {ProjectRef: "Acme", Description: "Pairing", End: "2026-02-25T17:00", Duration: "45m"},
	} {
		out, err := f.uc.Add(ctx, input)
		require.NoError(t, err, name)
		require.Equal(t, 45, out.DurationMin, name)
		require.Nil(t, out.StartTime, name)
		require.Nil(t, out.EndTime, name)

		var start, end sql.NullString
		require.NoError(t, f.db.QueryRow(`SELECT start_time, end_time FROM task_entry WHERE id = ?`, out.ID).Scan(&start, &end))
		require.False(t, start.Valid, name)
		require.False(t, end.Valid, name)
	}
}

func TestAddRejectsMissingOrInvalidTiming(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input dto.AddInput
		want  error
	}{
		{name: "neither", input: dto.AddInput{ProjectRef: "Acme", Description: "x"}, want: apperrors.ErrMissingTiming},
		{name: "lone start", input: dto.AddInput{ProjectRef: "Acme", Description: "x", Start: "09:00"}, want: apperrors.ErrMissingTiming},
		{name: "lone end", input: dto.AddInput{ProjectRef: "Acme", Description: "x", End: "09:00"}, want: apperrors.ErrMissingTiming},
		{name: "end before start", input: dto.AddInput{ProjectRef: "Acme", Description: "x", Start: "10:00", End: "09:00"}, want: apperrors.ErrEndBeforeStart},
		{name: "end equals start", input: dto.AddInput{ProjectRef: "Acme", Description: "x", Start: "10:00", End: "10:00"}, want: apperrors.ErrEndBeforeStart},
		{name: "zero duration", input: dto.AddInput{ProjectRef: "Acme", Description: "x", Duration: "0"}, want: apperrors.ErrInvalidDuration},
		{name: "garbled duration", input: dto.AddInput{ProjectRef: "Acme", Description: "x", Duration: "soon"}, want: apperrors.ErrInvalidDuration},
		{name: "bad time", input: dto.AddInput{ProjectRef: "Acme", Description: "x", Start: "9am", End: "10:00"}, want: apperrors.ErrInvalidInput},
		{name: "unknown project", input: dto.AddInput{ProjectRef: "Nope", Description: "x", Duration: "5"}, want: apperrors.ErrNotFound},
		{name: "empty description", input: dto.AddInput{ProjectRef: "Acme", Description: " ", Duration: "5"}, want: apperrors.ErrInvalidInput},
	}
	for _, tt := range tests {
		_, err := f.uc.Add(ctx, tt.input)
		require.ErrorIs(t, err, tt.want, tt.name)
	}

	var n int
	require.NoError(t, f.db.QueryRow(`SELECT COUNT(*) FROM task_entry`).Scan(&n))
	require.Zero(t, n)
}

func TestEditEndRecomputesDuration(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	added, err := f.uc.Add(ctx, dto.AddInput{ProjectRef: "Acme", Description: "Build", Start: "09:00", End: "10:00"})
	require.NoError(t, err)
	require.Equal(t, 60, added.DurationMin)

	f.clk.Advance(time.Minute)
	edited, err := f.uc.Edit(ctx, dto.EditInput{ID: added.ID, End: ptr("11:30")})
	require.NoError(t, err)
	require.Equal(t, 150, edited.DurationMin)
	require.Equal(t, "Build", edited.Description)

	got, err := f.uc.Get(ctx, added.ID)
	require.NoError(t, err)
	require.Equal(t, 150, got.DurationMin)
	require.True(t, f.clk.Now().Equal(got.UpdatedAt))
	require.True(t, added.CreatedAt.Equal(got.CreatedAt))
}

func TestEditExplicitDurationWins(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	added, err := f.uc.Add(ctx, dto.AddInput{ProjectRef: "Acme", Description: "Build", Start: "09:00", End: "10:00"})
	require.NoError(t, err)

	edited, err := f.uc.Edit(ctx, dto.EditInput{ID: added.ID, Start: ptr("09:30"), Duration: ptr("2h")})
	require.NoError(t, err)
	require.Equal(t, 120, edited.DurationMin)
}

func TestEditBoundOnDurationOnlyEntryKeepsDuration(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	added, err := f.uc.Add(ctx, dto.AddInput{ProjectRef: "Acme", Description: "Calls", Duration: "45"})
	require.NoError(t, err)

	edited, err := f.uc.Edit(ctx, dto.EditInput{ID: added.ID, Start: ptr("08:00")})
	require.NoError(t, err)
	require.Equal(t, 45, edited.DurationMin)
	require.NotNil(t, edited.StartTime)
	require.Nil(t, edited.EndTime)
}

func TestEditRejectsInvertedBoundsWithoutWriting(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	added, err := f.uc.Add(ctx, dto.AddInput{ProjectRef: "Acme", Description: "Build", Start: "09:00", End: "10:00"})
	require.NoError(t, err)

	_, err = f.uc.Edit(ctx, dto.EditInput{ID: added.ID, Description: ptr("Renamed"), End: ptr("08:00")})
	require.ErrorIs(t, err, apperrors.ErrEndBeforeStart)

	got, err := f.uc.Get(ctx, added.ID)
	require.NoError(t, err)
	require.Equal(t, "Build", got.Description)
	require.Equal(t, 60, got.DurationMin)
}

func TestEditMovesEntryToAnotherProject(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	added, err := f.uc.Add(ctx, dto.AddInput{ProjectRef: "Acme", Description: "Build", Duration: "30"})
	require.NoError(t, err)

	edited, err := f.uc.Edit(ctx, dto.EditInput{ID: added.ID, ProjectRef: ptr("2")})
	require.NoError(t, err)
	require.Equal(t, f.initech, edited.ProjectID)
	require.Equal(t, "Initech", edited.ProjectName)

	_, err = f.uc.Edit(ctx, dto.EditInput{ID: 404, Description: ptr("x")})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteReturnsRemovedEntry(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	added, err := f.uc.Add(ctx, dto.AddInput{ProjectRef: "Acme", Description: "Build", Duration: "1h"})
	require.NoError(t, err)

	out, err := f.uc.Delete(ctx, added.ID)
	require.NoError(t, err)
	require.Equal(t, "Build", out.Description)
	require.Equal(t, 60, out.DurationMin)

	_, err = f.uc.Get(ctx, added.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = f.uc.Delete(ctx, added.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRecordStoresClockSpan(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.Record(ctx, dto.RecordInput{
		ProjectID:   f.acme,
		Description: "Working",
		Start:       at(9, 0),
		End:         at(9, 0).Add(20 * time.Second),
		DurationMin: 1,
	})
	require.NoError(t, err)
	require.Equal(t, 1, out.DurationMin)
	require.Equal(t, "Acme", out.ProjectName)

	_, err = f.uc.Record(ctx, dto.RecordInput{ProjectID: f.acme, Description: "Working", Start: at(9, 0), End: at(9, 5)})
	require.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}
