package in

import (
	"context"

	"github.com/lmple/vibe-clock/internal/modules/project/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateInput) (dto.ProjectOutput, error)
	List(ctx context.Context) ([]dto.ProjectOutput, error)
	Rename(ctx context.Context, input dto.RenameInput) (dto.ProjectOutput, error)
	Delete(ctx context.Context, input dto.DeleteInput) (dto.DeleteOutput, error)
	Get(ctx context.Context, id int64) (dto.ProjectOutput, error)
	// Resolve looks a project up by numeric id or, when ref is not a number,
	// by exact name.
	Resolve(ctx context.Context, ref string) (dto.ProjectOutput, error)
}
