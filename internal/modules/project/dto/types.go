package dto

import "time"

type CreateInput struct {
	Name string
}

type RenameInput struct {
	ID      int64
	NewName string
}

type DeleteInput struct {
	ID    int64
	Force bool
}

type ProjectOutput struct {
	ID         int64
	Name       string
	EntryCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DeleteOutput reports either a completed delete or, when the project still
// owns entries and Force was not set, the facts needed to ask for
// confirmation. Nothing is mutated in the latter case.
type DeleteOutput struct {
	Name              string
	Deleted           bool
	NeedsConfirmation bool
	EntryCount        int
	ClockDiscarded    bool
}
