package in

import (
	"context"

	"github.com/lmple/vibe-clock/internal/modules/project/dto"
	projectin "github.com/lmple/vibe-clock/internal/modules/project/port/in"
)

type CLIHandler struct {
	usecase projectin.Usecase
}

func NewCLIHandler(usecase projectin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, name string) (dto.ProjectOutput, error) {
	return h.usecase.Create(ctx, dto.CreateInput{Name: name})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.ProjectOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Rename(ctx context.Context, id int64, name string) (dto.ProjectOutput, error) {
	return h.usecase.Rename(ctx, dto.RenameInput{ID: id, NewName: name})
}

func (h CLIHandler) Delete(ctx context.Context, id int64, force bool) (dto.DeleteOutput, error) {
	return h.usecase.Delete(ctx, dto.DeleteInput{ID: id, Force: force})
}
