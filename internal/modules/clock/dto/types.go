package dto

import "time"

type StartInput struct {
	ProjectRef  string
	Description string
}

type StartOutput struct {
	ProjectID   int64
	ProjectName string
	Description string
	StartTime   time.Time
}

type StopOutput struct {
	EntryID     int64
	ProjectName string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	DurationMin int
}

// StatusOutput describes the clock. When Running is false the other fields
// are zero.
type StatusOutput struct {
	Running     bool
	ProjectID   int64
	ProjectName string
	Description string
	StartTime   time.Time
	ElapsedMin  int
}
