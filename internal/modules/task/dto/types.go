package dto

import "time"

// AddInput carries raw command-line values. Start/End use the time formats
// accepted by timefmt.ParseTime; Duration uses timefmt.ParseDuration.
type AddInput struct {
	ProjectRef  string
	Description string
	Start       string
	End         string
	Duration    string
}

// EditInput overrides only the fields that are non-nil.
type EditInput struct {
	ID          int64
	Description *string
	ProjectRef  *string
	Start       *string
	End         *string
	Duration    *string
}

// RecordInput is a finished timer converted into an entry.
type RecordInput struct {
	ProjectID   int64
	Description string
	Start       time.Time
	End         time.Time
	DurationMin int
}

type EntryOutput struct {
	ID          int64
	ProjectID   int64
	ProjectName string
	Description string
	StartTime   *time.Time
	EndTime     *time.Time
	DurationMin int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DeleteOutput struct {
	ID          int64
	Description string
	DurationMin int
}
