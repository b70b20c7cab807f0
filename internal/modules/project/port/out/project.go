package out

import (
	"context"
	"time"

	"github.com/lmple/vibe-clock/internal/modules/project/domain"
)

// ProjectStore returns apperrors.ErrNotFound for unknown ids or names and
// apperrors.ErrDuplicate when a name is already taken.
type ProjectStore interface {
	Insert(ctx context.Context, name string, now time.Time) (domain.Project, error)
	FindByID(ctx context.Context, id int64) (domain.Project, error)
	FindByName(ctx context.Context, name string) (domain.Project, error)
	List(ctx context.Context) ([]domain.Summary, error)
	Rename(ctx context.Context, id int64, name string, now time.Time) error
	// Delete removes the project; owned task entries go with it.
	Delete(ctx context.Context, id int64) error
	CountEntries(ctx context.Context, id int64) (int, error)
}

// RunningClock lets project deletion drop a timer that points at the project.
type RunningClock interface {
	DiscardForProject(ctx context.Context, projectID int64) (bool, error)
}
