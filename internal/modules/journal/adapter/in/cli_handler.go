package in

import (
	"context"

	"github.com/lmple/vibe-clock/internal/modules/journal/dto"
	journalin "github.com/lmple/vibe-clock/internal/modules/journal/port/in"
)

type CLIHandler struct {
	usecase journalin.Usecase
}

func NewCLIHandler(usecase journalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Journal(ctx context.Context, date string) (dto.JournalOutput, error) {
	return h.usecase.Daily(ctx, dto.JournalInput{Date: date})
}

func (h CLIHandler) Report(ctx context.Context, from, to string) (dto.ReportOutput, error) {
	return h.usecase.Range(ctx, dto.ReportInput{From: from, To: to})
}
