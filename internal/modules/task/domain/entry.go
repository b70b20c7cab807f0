package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
	"github.com/lmple/vibe-clock/internal/platform/timefmt"
)

// Entry is one block of logged work. When both bounds are set, DurationMin
// equals the whole minutes between them.
type Entry struct {
	ID          int64
	ProjectID   int64
	Description string
	StartTime   *time.Time
	EndTime     *time.Time
	DurationMin int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectiveTime dates the entry by its start, or by creation for
// duration-only entries.
func (e Entry) EffectiveTime() time.Time {
	if e.StartTime != nil {
		return *e.StartTime
	}
	return e.CreatedAt
}

func NormalizeDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", fmt.Errorf("%w: description cannot be empty", apperrors.ErrInvalidInput)
	}
	return description, nil
}

// SpanMinutes validates a start/end pair and returns its length in whole
// minutes.
func SpanMinutes(start, end time.Time) (int, error) {
	if !end.After(start) {
		return 0, apperrors.ErrEndBeforeStart
	}
	minutes := timefmt.WholeMinutes(start, end)
	if minutes < 1 {
		return 0, fmt.Errorf("%w: %s to %s is shorter than one minute",
			apperrors.ErrInvalidInput, start.Format(timefmt.ClockLayout), end.Format(timefmt.ClockLayout))
	}
	return minutes, nil
}
