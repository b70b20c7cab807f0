package out

import (
	"context"
	"time"

	"github.com/lmple/vibe-clock/internal/modules/journal/domain"
)

// EntryReader lists entries whose effective date falls in the closed range
// [from, to], ordered by effective time. Only the calendar dates of from and
// to are used. A dangling project yields an empty ProjectName.
type EntryReader interface {
	Between(ctx context.Context, from, to time.Time) ([]domain.Line, error)
}
