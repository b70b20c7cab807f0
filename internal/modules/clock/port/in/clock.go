package in

import (
	"context"

	"github.com/lmple/vibe-clock/internal/modules/clock/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Stop(ctx context.Context) (dto.StopOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	// Recover reports a timer left running by an earlier process. It never
	// modifies the clock.
	Recover(ctx context.Context) (dto.StatusOutput, error)
}
