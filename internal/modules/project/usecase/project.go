package usecase

import (
	"context"
	"log/slog"

	"github.com/lmple/vibe-clock/internal/modules/project/domain"
	"github.com/lmple/vibe-clock/internal/modules/project/dto"
	projectin "github.com/lmple/vibe-clock/internal/modules/project/port/in"
	"github.com/lmple/vibe-clock/internal/modules/project/service"
	"github.com/lmple/vibe-clock/internal/platform/tx"
)

type Interactor struct {
	svc    *service.ProjectService
	tx     tx.Manager
	logger *slog.Logger
}

func NewInteractor(svc *service.ProjectService, txm tx.Manager, logger *slog.Logger) projectin.Usecase {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Interactor{svc: svc, tx: txm, logger: logger}
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateInput) (dto.ProjectOutput, error) {
	project, err := i.svc.Create(ctx, input.Name)
	if err != nil {
		return dto.ProjectOutput{}, err
	}
	i.logger.Debug("project created", "id", project.ID, "name", project.Name)
	return toOutput(project, 0), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.ProjectOutput, error) {
	summaries, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectOutput, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toOutput(s.Project, s.EntryCount))
	}
	return out, nil
}

func (i *Interactor) Rename(ctx context.Context, input dto.RenameInput) (dto.ProjectOutput, error) {
	var project domain.Project
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		var err error
		project, err = i.svc.Rename(ctx, input.ID, input.NewName)
		return err
	})
	if err != nil {
		return dto.ProjectOutput{}, err
	}
	return toOutput(project, 0), nil
}

func (i *Interactor) Delete(ctx context.Context, input dto.DeleteInput) (dto.DeleteOutput, error) {
	var result domain.Deletion
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		var err error
		result, err = i.svc.Delete(ctx, input.ID, input.Force)
		return err
	})
	if err != nil {
		return dto.DeleteOutput{}, err
	}
	if result.Deleted {
		i.logger.Debug("project deleted", "id", input.ID, "entries", result.EntryCount, "clock_discarded", result.ClockDiscarded)
	}
	return dto.DeleteOutput{
		Name:              result.Project.Name,
		Deleted:           result.Deleted,
		NeedsConfirmation: !result.Deleted,
		EntryCount:        result.EntryCount,
		ClockDiscarded:    result.ClockDiscarded,
	}, nil
}

func (i *Interactor) Get(ctx context.Context, id int64) (dto.ProjectOutput, error) {
	project, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.ProjectOutput{}, err
	}
	return toOutput(project, 0), nil
}

func (i *Interactor) Resolve(ctx context.Context, ref string) (dto.ProjectOutput, error) {
	project, err := i.svc.Resolve(ctx, ref)
	if err != nil {
		return dto.ProjectOutput{}, err
	}
	return toOutput(project, 0), nil
}

func toOutput(p domain.Project, entries int) dto.ProjectOutput {
	return dto.ProjectOutput{
		ID:         p.ID,
		Name:       p.Name,
		EntryCount: entries,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
