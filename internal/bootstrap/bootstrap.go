package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	clockinadapter "github.com/lmple/vibe-clock/internal/modules/clock/adapter/in"
	clockoutadapter "github.com/lmple/vibe-clock/internal/modules/clock/adapter/out"
	clockdto "github.com/lmple/vibe-clock/internal/modules/clock/dto"
	clockservice "github.com/lmple/vibe-clock/internal/modules/clock/service"
	clockusecase "github.com/lmple/vibe-clock/internal/modules/clock/usecase"
	journalinadapter "github.com/lmple/vibe-clock/internal/modules/journal/adapter/in"
	journaloutadapter "github.com/lmple/vibe-clock/internal/modules/journal/adapter/out"
	journalservice "github.com/lmple/vibe-clock/internal/modules/journal/service"
	journalusecase "github.com/lmple/vibe-clock/internal/modules/journal/usecase"
	projectinadapter "github.com/lmple/vibe-clock/internal/modules/project/adapter/in"
	projectoutadapter "github.com/lmple/vibe-clock/internal/modules/project/adapter/out"
	projectservice "github.com/lmple/vibe-clock/internal/modules/project/service"
	projectusecase "github.com/lmple/vibe-clock/internal/modules/project/usecase"
	taskinadapter "github.com/lmple/vibe-clock/internal/modules/task/adapter/in"
	taskoutadapter "github.com/lmple/vibe-clock/internal/modules/task/adapter/out"
	taskservice "github.com/lmple/vibe-clock/internal/modules/task/service"
	taskusecase "github.com/lmple/vibe-clock/internal/modules/task/usecase"
	"github.com/lmple/vibe-clock/internal/platform/clock"
	"github.com/lmple/vibe-clock/internal/platform/config"
	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
	"github.com/lmple/vibe-clock/internal/platform/id"
	"github.com/lmple/vibe-clock/internal/platform/logging"
	"github.com/lmple/vibe-clock/internal/platform/sqlitedb"
	"github.com/lmple/vibe-clock/internal/platform/tx"
	"github.com/lmple/vibe-clock/internal/ui/watch"
)

type App struct {
	Logger     *slog.Logger
	ProjectCLI projectinadapter.CLIHandler
	ClockCLI   clockinadapter.CLIHandler
	TaskCLI    taskinadapter.CLIHandler
	JournalCLI journalinadapter.CLIHandler

	db *sql.DB
}

// Deps overrides process-level collaborators, mostly for tests.
type Deps struct {
	Clock     clock.Clock
	IDs       id.Generator
	LogOutput io.Writer
}

func New(ctx context.Context, cfg config.Config, deps Deps) (*App, error) {
	if deps.Clock == nil {
		deps.Clock = clock.SystemClock{}
	}
	if deps.IDs == nil {
		deps.IDs = id.UUID{}
	}
	if deps.LogOutput == nil {
		deps.LogOutput = os.Stderr
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	logger := logging.New(deps.LogOutput, level, deps.IDs.New())

	db, err := sqlitedb.Open(ctx, sqlitedb.Options{Path: cfg.DBPath, LockTimeout: cfg.LockTimeout, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("open journal store %s: %w", cfg.DBPath, err)
	}
	clk := deps.Clock
	txm := tx.NewSQLManager(db, logger)

	projectUC := projectusecase.NewInteractor(
		projectservice.NewProjectService(clk,
			projectoutadapter.NewSQLiteProjectStore(db),
			projectoutadapter.NewSQLiteClockGuard(db),
		),
		txm, logger,
	)

	taskUC := taskusecase.NewInteractor(
		taskservice.NewTaskService(clk,
			taskoutadapter.NewSQLiteEntryStore(db),
			taskoutadapter.NewProjectDirectoryAdapter(projectUC),
		),
		txm, logger,
	)

	clockUC := clockusecase.NewInteractor(
		clockservice.NewClockService(clk,
			clockoutadapter.NewSQLiteStateStore(db),
			clockoutadapter.NewProjectDirectoryAdapter(projectUC),
			clockoutadapter.NewTaskRecorderAdapter(taskUC),
		),
		txm, logger,
	)

	journalUC := journalusecase.NewInteractor(
		journalservice.NewJournalService(clk, journaloutadapter.NewSQLiteEntryReader(db)),
		logger,
	)

	return &App{
		Logger:     logger,
		ProjectCLI: projectinadapter.NewCLIHandler(projectUC),
		ClockCLI:   clockinadapter.NewCLIHandler(clockUC),
		TaskCLI:    taskinadapter.NewCLIHandler(taskUC),
		JournalCLI: journalinadapter.NewCLIHandler(journalUC),
		db:         db,
	}, nil
}

// Close releases the store and its exclusive lock.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close journal store: %w", err)
	}
	return nil
}

// RunClockWatch shows the live clock view. The bool reports whether the
// view stopped the clock.
func RunClockWatch(ctx context.Context, app *App, in io.Reader, out io.Writer) (clockdto.StopOutput, bool, error) {
	return watch.Run(ctx, app.ClockCLI.Usecase(), in, out)
}
