package usecase

import (
	"context"
	"log/slog"

	"github.com/lmple/vibe-clock/internal/modules/task/domain"
	"github.com/lmple/vibe-clock/internal/modules/task/dto"
	taskin "github.com/lmple/vibe-clock/internal/modules/task/port/in"
	"github.com/lmple/vibe-clock/internal/modules/task/service"
	"github.com/lmple/vibe-clock/internal/platform/tx"
)

type Interactor struct {
	svc    *service.TaskService
	tx     tx.Manager
	logger *slog.Logger
}

func NewInteractor(svc *service.TaskService, txm tx.Manager, logger *slog.Logger) taskin.Usecase {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Interactor{svc: svc, tx: txm, logger: logger}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.EntryOutput, error) {
	entry, err := i.svc.Add(ctx, input)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	i.logger.Debug("task added", "id", entry.ID, "project_id", entry.ProjectID, "minutes", entry.DurationMin)
	return i.toOutput(ctx, entry)
}

func (i *Interactor) Edit(ctx context.Context, input dto.EditInput) (dto.EntryOutput, error) {
	var entry domain.Entry
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		var err error
		entry, err = i.svc.Edit(ctx, input)
		return err
	})
	if err != nil {
		return dto.EntryOutput{}, err
	}
	i.logger.Debug("task updated", "id", entry.ID, "minutes", entry.DurationMin)
	return i.toOutput(ctx, entry)
}

func (i *Interactor) Delete(ctx context.Context, id int64) (dto.DeleteOutput, error) {
	var entry domain.Entry
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		var err error
		entry, err = i.svc.Delete(ctx, id)
		return err
	})
	if err != nil {
		return dto.DeleteOutput{}, err
	}
	i.logger.Debug("task deleted", "id", id)
	return dto.DeleteOutput{ID: entry.ID, Description: entry.Description, DurationMin: entry.DurationMin}, nil
}

func (i *Interactor) Get(ctx context.Context, id int64) (dto.EntryOutput, error) {
	entry, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return i.toOutput(ctx, entry)
}

func (i *Interactor) Record(ctx context.Context, input dto.RecordInput) (dto.EntryOutput, error) {
	entry, err := i.svc.Record(ctx, input)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return i.toOutput(ctx, entry)
}

func (i *Interactor) toOutput(ctx context.Context, entry domain.Entry) (dto.EntryOutput, error) {
	name, err := i.svc.ProjectName(ctx, entry.ProjectID)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return dto.EntryOutput{
		ID:          entry.ID,
		ProjectID:   entry.ProjectID,
		ProjectName: name,
		Description: entry.Description,
		StartTime:   entry.StartTime,
		EndTime:     entry.EndTime,
		DurationMin: entry.DurationMin,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}, nil
}
