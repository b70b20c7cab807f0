package out

import (
	"context"

	clockout "github.com/lmple/vibe-clock/internal/modules/clock/port/out"
	projectin "github.com/lmple/vibe-clock/internal/modules/project/port/in"
)

type ProjectDirectoryAdapter struct {
	projects projectin.Usecase
}

func NewProjectDirectoryAdapter(projects projectin.Usecase) clockout.ProjectDirectory {
	return &ProjectDirectoryAdapter{projects: projects}
}

func (a *ProjectDirectoryAdapter) Resolve(ctx context.Context, ref string) (clockout.ProjectRef, error) {
	project, err := a.projects.Resolve(ctx, ref)
	if err != nil {
		return clockout.ProjectRef{}, err
	}
	return clockout.ProjectRef{ID: project.ID, Name: project.Name}, nil
}

func (a *ProjectDirectoryAdapter) Get(ctx context.Context, id int64) (clockout.ProjectRef, error) {
	project, err := a.projects.Get(ctx, id)
	if err != nil {
		return clockout.ProjectRef{}, err
	}
	return clockout.ProjectRef{ID: project.ID, Name: project.Name}, nil
}
