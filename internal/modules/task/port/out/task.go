package out

import (
	"context"

	"github.com/lmple/vibe-clock/internal/modules/task/domain"
)

// EntryStore returns apperrors.ErrNotFound for unknown ids. Insert assigns
// ID and ignores it on input.
type EntryStore interface {
	Insert(ctx context.Context, entry domain.Entry) (domain.Entry, error)
	FindByID(ctx context.Context, id int64) (domain.Entry, error)
	Update(ctx context.Context, entry domain.Entry) error
	Delete(ctx context.Context, id int64) error
}

type ProjectRef struct {
	ID   int64
	Name string
}

// ProjectDirectory resolves command-line project references.
type ProjectDirectory interface {
	Resolve(ctx context.Context, ref string) (ProjectRef, error)
	Get(ctx context.Context, id int64) (ProjectRef, error)
}
