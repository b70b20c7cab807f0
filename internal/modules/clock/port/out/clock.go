package out

import (
	"context"
	"time"

	"github.com/lmple/vibe-clock/internal/modules/clock/domain"
)

// StateStore holds the singleton running timer. Load and Clear return
// apperrors.ErrNoClockRunning when idle; Save returns
// apperrors.ErrClockRunning when a timer already exists.
type StateStore interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
	Clear(ctx context.Context) error
}

type ProjectRef struct {
	ID   int64
	Name string
}

type ProjectDirectory interface {
	Resolve(ctx context.Context, ref string) (ProjectRef, error)
	Get(ctx context.Context, id int64) (ProjectRef, error)
}

// EntryRecorder turns a stopped timer into a logged entry and returns its id.
type EntryRecorder interface {
	Record(ctx context.Context, projectID int64, description string, start, end time.Time, durationMin int) (int64, error)
}
