package usecase

import (
	"context"
	"log/slog"

	"github.com/lmple/vibe-clock/internal/modules/journal/domain"
	"github.com/lmple/vibe-clock/internal/modules/journal/dto"
	journalin "github.com/lmple/vibe-clock/internal/modules/journal/port/in"
	"github.com/lmple/vibe-clock/internal/modules/journal/service"
	"github.com/lmple/vibe-clock/internal/platform/timefmt"
)

type Interactor struct {
	svc    *service.JournalService
	logger *slog.Logger
}

func NewInteractor(svc *service.JournalService, logger *slog.Logger) journalin.Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interactor{svc: svc, logger: logger}
}

func (i *Interactor) Daily(ctx context.Context, input dto.JournalInput) (dto.JournalOutput, error) {
	journal, err := i.svc.Daily(ctx, input.Date)
	if err != nil {
		return dto.JournalOutput{}, err
	}
	i.logger.Debug("journal built", "date", journal.Date.Format(timefmt.DateLayout), "entries", len(journal.Lines))
	out := dto.JournalOutput{
		Date:     journal.Date.Format(timefmt.DateLayout),
		Entries:  toEntries(journal.Lines),
		Totals:   make([]dto.ProjectTotalOutput, 0, len(journal.Totals)),
		TotalMin: journal.TotalMin,
	}
	for _, total := range journal.Totals {
		out.Totals = append(out.Totals, dto.ProjectTotalOutput{Project: total.ProjectName, Minutes: total.Minutes})
	}
	return out, nil
}

func (i *Interactor) Range(ctx context.Context, input dto.ReportInput) (dto.ReportOutput, error) {
	report, err := i.svc.Range(ctx, input.From, input.To)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	i.logger.Debug("report built", "from", report.From.Format(timefmt.DateLayout), "to", report.To.Format(timefmt.DateLayout), "sections", len(report.Sections))
	out := dto.ReportOutput{
		From:     report.From.Format(timefmt.DateLayout),
		To:       report.To.Format(timefmt.DateLayout),
		Sections: make([]dto.SectionOutput, 0, len(report.Sections)),
		TotalMin: report.TotalMin,
	}
	for _, section := range report.Sections {
		out.Sections = append(out.Sections, dto.SectionOutput{
			Project:     section.ProjectName,
			Entries:     toEntries(section.Lines),
			SubtotalMin: section.SubtotalMin,
		})
	}
	return out, nil
}

func toEntries(lines []domain.Line) []dto.EntryOutput {
	out := make([]dto.EntryOutput, 0, len(lines))
	for _, line := range lines {
		out = append(out, dto.EntryOutput{
			ID:          line.EntryID,
			Project:     line.ProjectName,
			Description: line.Description,
			Date:        line.EffectiveTime().Format(timefmt.DateLayout),
			Start:       line.StartTime,
			End:         line.EndTime,
			DurationMin: line.DurationMin,
		})
	}
	return out
}
