package out

import (
	"context"

	projectin "github.com/lmple/vibe-clock/internal/modules/project/port/in"
	taskout "github.com/lmple/vibe-clock/internal/modules/task/port/out"
)

type ProjectDirectoryAdapter struct {
	projects projectin.Usecase
}

func NewProjectDirectoryAdapter(projects projectin.Usecase) taskout.ProjectDirectory {
	return &ProjectDirectoryAdapter{projects: projects}
}

func (a *ProjectDirectoryAdapter) Resolve(ctx context.Context, ref string) (taskout.ProjectRef, error) {
	project, err := a.projects.Resolve(ctx, ref)
	if err != nil {
		return taskout.ProjectRef{}, err
	}
	return taskout.ProjectRef{ID: project.ID, Name: project.Name}, nil
}

func (a *ProjectDirectoryAdapter) Get(ctx context.Context, id int64) (taskout.ProjectRef, error) {
	project, err := a.projects.Get(ctx, id)
	if err != nil {
		return taskout.ProjectRef{}, err
	}
	return taskout.ProjectRef{ID: project.ID, Name: project.Name}, nil
}
