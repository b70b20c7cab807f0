package usecase

import (
	"context"
	"log/slog"

	"github.com/lmple/vibe-clock/internal/modules/clock/domain"
	"github.com/lmple/vibe-clock/internal/modules/clock/dto"
	clockin "github.com/lmple/vibe-clock/internal/modules/clock/port/in"
	"github.com/lmple/vibe-clock/internal/modules/clock/service"
	"github.com/lmple/vibe-clock/internal/platform/tx"
)

type Interactor struct {
	svc    *service.ClockService
	tx     tx.Manager
	logger *slog.Logger
}

func NewInteractor(svc *service.ClockService, txm tx.Manager, logger *slog.Logger) clockin.Usecase {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Interactor{svc: svc, tx: txm, logger: logger}
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	var (
		state domain.State
		name  string
	)
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		var err error
		state, name, err = i.svc.Start(ctx, input.ProjectRef, input.Description)
		return err
	})
	if err != nil {
		return dto.StartOutput{}, err
	}
	i.logger.Debug("clock started", "project_id", state.ProjectID, "start", state.StartTime)
	return dto.StartOutput{
		ProjectID:   state.ProjectID,
		ProjectName: name,
		Description: state.Description,
		StartTime:   state.StartTime,
	}, nil
}

func (i *Interactor) Stop(ctx context.Context) (dto.StopOutput, error) {
	var stopped domain.Stopped
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		var err error
		stopped, err = i.svc.Stop(ctx)
		return err
	})
	if err != nil {
		return dto.StopOutput{}, err
	}
	i.logger.Debug("clock stopped", "entry_id", stopped.EntryID, "minutes", stopped.DurationMin)
	return dto.StopOutput{
		EntryID:     stopped.EntryID,
		ProjectName: stopped.ProjectName,
		Description: stopped.State.Description,
		StartTime:   stopped.State.StartTime,
		EndTime:     stopped.EndTime,
		DurationMin: stopped.DurationMin,
	}, nil
}

func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	snapshot, running, err := i.svc.Status(ctx)
	if err != nil || !running {
		return dto.StatusOutput{}, err
	}
	return toStatus(snapshot), nil
}

func (i *Interactor) Recover(ctx context.Context) (dto.StatusOutput, error) {
	status, err := i.Status(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	if status.Running {
		i.logger.Warn("clock left running by an earlier invocation",
			"project", status.ProjectName, "start", status.StartTime, "elapsed_min", status.ElapsedMin)
	}
	return status, nil
}

func toStatus(s domain.Snapshot) dto.StatusOutput {
	return dto.StatusOutput{
		Running:     true,
		ProjectID:   s.State.ProjectID,
		ProjectName: s.ProjectName,
		Description: s.State.Description,
		StartTime:   s.State.StartTime,
		ElapsedMin:  s.ElapsedMin,
	}
}
