package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lmple/vibe-clock/internal/modules/clock/domain"
	clockout "github.com/lmple/vibe-clock/internal/modules/clock/port/out"
	"github.com/lmple/vibe-clock/internal/platform/clock"
	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
	"github.com/lmple/vibe-clock/internal/platform/timefmt"
)

// UnknownProject labels a timer whose project can no longer be found.
const UnknownProject = "?"

type ClockService struct {
	clock    clock.Clock
	states   clockout.StateStore
	projects clockout.ProjectDirectory
	entries  clockout.EntryRecorder
}

func NewClockService(clock clock.Clock, states clockout.StateStore, projects clockout.ProjectDirectory, entries clockout.EntryRecorder) *ClockService {
	return &ClockService{clock: clock, states: states, projects: projects, entries: entries}
}

func (s *ClockService) Start(ctx context.Context, projectRef, description string) (domain.State, string, error) {
	if running, err := s.states.Load(ctx); err == nil {
		return domain.State{}, "", fmt.Errorf("%w since %s, use 'vibe-clock clock stop' first, or 'vibe-clock clock status' to check",
			apperrors.ErrClockRunning, running.StartTime.Format(timefmt.ClockLayout))
	} else if !errors.Is(err, apperrors.ErrNoClockRunning) {
		return domain.State{}, "", err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return domain.State{}, "", fmt.Errorf("%w: description cannot be empty", apperrors.ErrInvalidInput)
	}
	project, err := s.projects.Resolve(ctx, projectRef)
	if err != nil {
		return domain.State{}, "", err
	}
	state := domain.State{ProjectID: project.ID, Description: description, StartTime: s.clock.Now()}
	if err := s.states.Save(ctx, state); err != nil {
		return domain.State{}, "", err
	}
	return state, project.Name, nil
}

// Stop clears the timer and records the entry. Callers must run it inside a
// single transaction so neither write lands without the other.
func (s *ClockService) Stop(ctx context.Context) (domain.Stopped, error) {
	state, err := s.states.Load(ctx)
	if err != nil {
		return domain.Stopped{}, err
	}
	now := s.clock.Now()
	minutes := state.LoggedMinutes(now)
	// A wall clock set back past the start still ends the timer; the entry
	// closes at its own start.
	end := now
	if end.Before(state.StartTime) {
		end = state.StartTime
	}
	name, err := s.projectName(ctx, state.ProjectID)
	if err != nil {
		return domain.Stopped{}, err
	}
	if err := s.states.Clear(ctx); err != nil {
		return domain.Stopped{}, err
	}
	entryID, err := s.entries.Record(ctx, state.ProjectID, state.Description, state.StartTime, end, minutes)
	if err != nil {
		return domain.Stopped{}, fmt.Errorf("record stopped clock: %w", err)
	}
	return domain.Stopped{
		State:       state,
		ProjectName: name,
		EndTime:     end,
		DurationMin: minutes,
		EntryID:     entryID,
	}, nil
}

// Status reports the running timer, or false when idle.
func (s *ClockService) Status(ctx context.Context) (domain.Snapshot, bool, error) {
	state, err := s.states.Load(ctx)
	if errors.Is(err, apperrors.ErrNoClockRunning) {
		return domain.Snapshot{}, false, nil
	}
	if err != nil {
		return domain.Snapshot{}, false, err
	}
	name, err := s.projectName(ctx, state.ProjectID)
	if err != nil {
		return domain.Snapshot{}, false, err
	}
	return domain.Snapshot{
		State:       state,
		ProjectName: name,
		ElapsedMin:  state.ElapsedMinutes(s.clock.Now()),
	}, true, nil
}

func (s *ClockService) projectName(ctx context.Context, projectID int64) (string, error) {
	project, err := s.projects.Get(ctx, projectID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return UnknownProject, nil
	}
	if err != nil {
		return "", err
	}
	return project.Name, nil
}
