package in

import (
	"context"

	"github.com/lmple/vibe-clock/internal/modules/journal/dto"
)

type Usecase interface {
	Daily(ctx context.Context, input dto.JournalInput) (dto.JournalOutput, error)
	Range(ctx context.Context, input dto.ReportInput) (dto.ReportOutput, error)
}
