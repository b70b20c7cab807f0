package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
)

type Project struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Summary struct {
	Project    Project
	EntryCount int
}

// NormalizeName trims surrounding whitespace and rejects blank names.
// Uniqueness is case-sensitive, so case is preserved.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("project %w", apperrors.ErrEmptyName)
	}
	return name, nil
}

// Deletion is the outcome of a delete request. When Deleted is false the
// project still owns EntryCount entries and the caller must confirm.
type Deletion struct {
	Project        Project
	EntryCount     int
	Deleted        bool
	ClockDiscarded bool
}
