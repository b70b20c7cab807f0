package domain

import (
	"time"

	"github.com/lmple/vibe-clock/internal/platform/timefmt"
)

// State is the single running timer. Its absence means the clock is idle.
type State struct {
	ProjectID   int64
	Description string
	StartTime   time.Time
}

// ElapsedMinutes is the whole minutes since start. It is not clamped and
// may be zero or negative if the wall clock moved backwards.
func (s State) ElapsedMinutes(now time.Time) int {
	return timefmt.WholeMinutes(s.StartTime, now)
}

// LoggedMinutes is what stopping at now records: whole minutes, at least one.
func (s State) LoggedMinutes(now time.Time) int {
	return max(1, s.ElapsedMinutes(now))
}

// Stopped is the result of converting a running timer into an entry.
type Stopped struct {
	State       State
	ProjectName string
	EndTime     time.Time
	DurationMin int
	EntryID     int64
}

// Snapshot is a read-only view of the running timer.
type Snapshot struct {
	State       State
	ProjectName string
	ElapsedMin  int
}
