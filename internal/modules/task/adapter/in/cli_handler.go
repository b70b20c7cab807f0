package in

import (
	"context"

	"github.com/lmple/vibe-clock/internal/modules/task/dto"
	taskin "github.com/lmple/vibe-clock/internal/modules/task/port/in"
)

type CLIHandler struct {
	usecase taskin.Usecase
}

func NewCLIHandler(usecase taskin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input dto.AddInput) (dto.EntryOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Edit(ctx context.Context, input dto.EditInput) (dto.EntryOutput, error) {
	return h.usecase.Edit(ctx, input)
}

func (h CLIHandler) Get(ctx context.Context, id int64) (dto.EntryOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Delete(ctx context.Context, id int64) (dto.DeleteOutput, error) {
	return h.usecase.Delete(ctx, id)
}
