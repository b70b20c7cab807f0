package in

import (
	"context"

	"github.com/lmple/vibe-clock/internal/modules/clock/dto"
	clockin "github.com/lmple/vibe-clock/internal/modules/clock/port/in"
)

type CLIHandler struct {
	usecase clockin.Usecase
}

func NewCLIHandler(usecase clockin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, projectRef, description string) (dto.StartOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{ProjectRef: projectRef, Description: description})
}

func (h CLIHandler) Stop(ctx context.Context) (dto.StopOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Recover(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Recover(ctx)
}

// Usecase exposes the clock to interactive views that drive it directly.
func (h CLIHandler) Usecase() clockin.Usecase {
	return h.usecase
}
