package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lmple/vibe-clock/internal/modules/project/domain"
	projectout "github.com/lmple/vibe-clock/internal/modules/project/port/out"
	"github.com/lmple/vibe-clock/internal/platform/clock"
	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
)

type ProjectService struct {
	clock   clock.Clock
	store   projectout.ProjectStore
	running projectout.RunningClock
}

func NewProjectService(clock clock.Clock, store projectout.ProjectStore, running projectout.RunningClock) *ProjectService {
	return &ProjectService{clock: clock, store: store, running: running}
}

func (s *ProjectService) Create(ctx context.Context, name string) (domain.Project, error) {
	name, err := domain.NormalizeName(name)
	if err != nil {
		return domain.Project{}, err
	}
	if _, err := s.store.FindByName(ctx, name); err == nil {
		return domain.Project{}, fmt.Errorf("%w: project '%s'", apperrors.ErrDuplicate, name)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return domain.Project{}, err
	}
	return s.store.Insert(ctx, name, s.clock.Now())
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Summary, error) {
	return s.store.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id int64) (domain.Project, error) {
	return s.store.FindByID(ctx, id)
}

func (s *ProjectService) Rename(ctx context.Context, id int64, newName string) (domain.Project, error) {
	newName, err := domain.NormalizeName(newName)
	if err != nil {
		return domain.Project{}, err
	}
	project, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	existing, err := s.store.FindByName(ctx, newName)
	switch {
	case err == nil && existing.ID != id:
		return domain.Project{}, fmt.Errorf("%w: project '%s'", apperrors.ErrDuplicate, newName)
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		return domain.Project{}, err
	}
	now := s.clock.Now()
	if err := s.store.Rename(ctx, id, newName, now); err != nil {
		return domain.Project{}, err
	}
	project.Name = newName
	project.UpdatedAt = now
	return project, nil
}

// Delete removes the project unless it owns entries and force is false. A
// running clock on the project is discarded, not converted into an entry.
func (s *ProjectService) Delete(ctx context.Context, id int64, force bool) (domain.Deletion, error) {
	project, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.Deletion{}, err
	}
	count, err := s.store.CountEntries(ctx, id)
	if err != nil {
		return domain.Deletion{}, err
	}
	result := domain.Deletion{Project: project, EntryCount: count}
	if count > 0 && !force {
		return result, nil
	}
	if s.running != nil {
		discarded, err := s.running.DiscardForProject(ctx, id)
		if err != nil {
			return domain.Deletion{}, err
		}
		result.ClockDiscarded = discarded
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return domain.Deletion{}, err
	}
	result.Deleted = true
	return result, nil
}

// Resolve treats a numeric ref as an id, authoritatively; any other ref is
// matched against project names exactly.
func (s *ProjectService) Resolve(ctx context.Context, ref string) (domain.Project, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.Project{}, fmt.Errorf("%w: project reference is required", apperrors.ErrInvalidInput)
	}
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		project, err := s.store.FindByID(ctx, id)
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Project{}, fmt.Errorf("%w: project '%s'", apperrors.ErrNotFound, ref)
		}
		return project, err
	}
	project, err := s.store.FindByName(ctx, ref)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.Project{}, fmt.Errorf("%w: project '%s'", apperrors.ErrNotFound, ref)
	}
	return project, err
}
