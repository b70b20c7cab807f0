package out

import (
	"context"
	"time"

	clockout "github.com/lmple/vibe-clock/internal/modules/clock/port/out"
	"github.com/lmple/vibe-clock/internal/modules/task/dto"
	taskin "github.com/lmple/vibe-clock/internal/modules/task/port/in"
)

type TaskRecorderAdapter struct {
	tasks taskin.Usecase
}

func NewTaskRecorderAdapter(tasks taskin.Usecase) clockout.EntryRecorder {
	return &TaskRecorderAdapter{tasks: tasks}
}

func (a *TaskRecorderAdapter) Record(ctx context.Context, projectID int64, description string, start, end time.Time, durationMin int) (int64, error) {
	entry, err := a.tasks.Record(ctx, dto.RecordInput{
		ProjectID:   projectID,
		Description: description,
		Start:       start,
		End:         end,
		DurationMin: durationMin,
	})
	if err != nil {
		return 0, err
	}
	return entry.ID, nil
}
