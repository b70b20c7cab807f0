package in

import (
	"context"

	"github.com/lmple/vibe-clock/internal/modules/task/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.EntryOutput, error)
	Edit(ctx context.Context, input dto.EditInput) (dto.EntryOutput, error)
	Delete(ctx context.Context, id int64) (dto.DeleteOutput, error)
	Get(ctx context.Context, id int64) (dto.EntryOutput, error)
	// Record stores an entry for an already-validated span, used when a
	// running clock stops.
	Record(ctx context.Context, input dto.RecordInput) (dto.EntryOutput, error)
}
