package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lmple/vibe-clock/internal/modules/journal/domain"
	journalout "github.com/lmple/vibe-clock/internal/modules/journal/port/out"
	"github.com/lmple/vibe-clock/internal/platform/clock"
	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
	"github.com/lmple/vibe-clock/internal/platform/timefmt"
)

type JournalService struct {
	clock  clock.Clock
	reader journalout.EntryReader
}

func NewJournalService(clock clock.Clock, reader journalout.EntryReader) *JournalService {
	return &JournalService{clock: clock, reader: reader}
}

func (s *JournalService) Daily(ctx context.Context, date string) (domain.Journal, error) {
	day := timefmt.StartOfDay(s.clock.Now())
	if strings.TrimSpace(date) != "" {
		var err error
		if day, err = timefmt.ParseDate(date, s.clock.Now()); err != nil {
			return domain.Journal{}, err
		}
	}
	lines, err := s.reader.Between(ctx, day, day)
	if err != nil {
		return domain.Journal{}, err
	}
	return domain.BuildJournal(day, lines), nil
}

func (s *JournalService) Range(ctx context.Context, from, to string) (domain.Report, error) {
	now := s.clock.Now()
	fromDay, err := timefmt.ParseDate(from, now)
	if err != nil {
		return domain.Report{}, err
	}
	toDay, err := timefmt.ParseDate(to, now)
	if err != nil {
		return domain.Report{}, err
	}
	if fromDay.After(toDay) {
		return domain.Report{}, fmt.Errorf("%w: --from date must be before or equal to --to date", apperrors.ErrInvalidInput)
	}
	lines, err := s.reader.Between(ctx, fromDay, toDay)
	if err != nil {
		return domain.Report{}, err
	}
	return domain.BuildReport(fromDay, toDay, lines), nil
}
