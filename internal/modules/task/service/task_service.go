package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lmple/vibe-clock/internal/modules/task/domain"
	"github.com/lmple/vibe-clock/internal/modules/task/dto"
	taskout "github.com/lmple/vibe-clock/internal/modules/task/port/out"
	"github.com/lmple/vibe-clock/internal/platform/clock"
	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
	"github.com/lmple/vibe-clock/internal/platform/timefmt"
)

// UnknownProject labels an entry whose project can no longer be found.
const UnknownProject = "?"

type TaskService struct {
	clock    clock.Clock
	store    taskout.EntryStore
	projects taskout.ProjectDirectory
}

func NewTaskService(clock clock.Clock, store taskout.EntryStore, projects taskout.ProjectDirectory) *TaskService {
	return &TaskService{clock: clock, store: store, projects: projects}
}

// Add logs a new entry. A complete start/end pair wins over a duration; a
// lone start or end counts as no bounds at all.
func (s *TaskService) Add(ctx context.Context, input dto.AddInput) (domain.Entry, error) {
	description, err := domain.NormalizeDescription(input.Description)
	if err != nil {
		return domain.Entry{}, err
	}
	project, err := s.projects.Resolve(ctx, input.ProjectRef)
	if err != nil {
		return domain.Entry{}, err
	}
	now := s.clock.Now()
	entry := domain.Entry{
		ProjectID:   project.ID,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	start, end := strings.TrimSpace(input.Start), strings.TrimSpace(input.End)
	switch {
	case start != "" && end != "":
		startTime, err := timefmt.ParseTime(start, now)
		if err != nil {
			return domain.Entry{}, err
		}
		endTime, err := timefmt.ParseTime(end, now)
		if err != nil {
			return domain.Entry{}, err
		}
		minutes, err := domain.SpanMinutes(startTime, endTime)
		if err != nil {
			return domain.Entry{}, err
		}
		entry.StartTime, entry.EndTime, entry.DurationMin = &startTime, &endTime, minutes
	case strings.TrimSpace(input.Duration) != "":
		minutes, err := timefmt.ParseDuration(input.Duration)
		if err != nil {
			return domain.Entry{}, err
		}
		entry.DurationMin = minutes
	default:
		return domain.Entry{}, apperrors.ErrMissingTiming
	}
	return s.store.Insert(ctx, entry)
}

// Edit applies the supplied overrides as a single update. An explicit
// duration wins; otherwise a changed bound recomputes the duration when
// both bounds end up present and leaves it alone when one is missing.
func (s *TaskService) Edit(ctx context.Context, input dto.EditInput) (domain.Entry, error) {
	entry, err := s.store.FindByID(ctx, input.ID)
	if err != nil {
		return domain.Entry{}, err
	}
	now := s.clock.Now()

	if input.Description != nil {
		if entry.Description, err = domain.NormalizeDescription(*input.Description); err != nil {
			return domain.Entry{}, err
		}
	}
	if input.ProjectRef != nil {
		project, err := s.projects.Resolve(ctx, *input.ProjectRef)
		if err != nil {
			return domain.Entry{}, err
		}
		entry.ProjectID = project.ID
	}
	boundsChanged := false
	if input.Start != nil {
		start, err := timefmt.ParseTime(*input.Start, now)
		if err != nil {
			return domain.Entry{}, err
		}
		entry.StartTime, boundsChanged = &start, true
	}
	if input.End != nil {
		end, err := timefmt.ParseTime(*input.End, now)
		if err != nil {
			return domain.Entry{}, err
		}
		entry.EndTime, boundsChanged = &end, true
	}

	switch {
	case input.Duration != nil:
		if entry.DurationMin, err = timefmt.ParseDuration(*input.Duration); err != nil {
			return domain.Entry{}, err
		}
	case boundsChanged && entry.StartTime != nil && entry.EndTime != nil:
		if entry.DurationMin, err = domain.SpanMinutes(*entry.StartTime, *entry.EndTime); err != nil {
			return domain.Entry{}, err
		}
	}

	entry.UpdatedAt = now
	if err := s.store.Update(ctx, entry); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) (domain.Entry, error) {
	entry, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.Entry{}, err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}

func (s *TaskService) Get(ctx context.Context, id int64) (domain.Entry, error) {
	return s.store.FindByID(ctx, id)
}

func (s *TaskService) Record(ctx context.Context, input dto.RecordInput) (domain.Entry, error) {
	if input.DurationMin < 1 {
		return domain.Entry{}, fmt.Errorf("%w: duration must be at least one minute", apperrors.ErrInvalidInput)
	}
	if input.End.Before(input.Start) {
		return domain.Entry{}, apperrors.ErrEndBeforeStart
	}
	description, err := domain.NormalizeDescription(input.Description)
	if err != nil {
		return domain.Entry{}, err
	}
	now := s.clock.Now()
	start, end := input.Start, input.End
	return s.store.Insert(ctx, domain.Entry{
		ProjectID:   input.ProjectID,
		Description: description,
		StartTime:   &start,
		EndTime:     &end,
		DurationMin: input.DurationMin,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// ProjectName returns UnknownProject when the project no longer exists.
func (s *TaskService) ProjectName(ctx context.Context, projectID int64) (string, error) {
	project, err := s.projects.Get(ctx, projectID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return UnknownProject, nil
	}
	if err != nil {
		return "", err
	}
	return project.Name, nil
}
