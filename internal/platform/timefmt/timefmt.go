package timefmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/lmple/vibe-clock/internal/platform/errors"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// MaxDurationMin caps a single entry at one year of minutes.
const MaxDurationMin = 366 * 24 * 60

var hourMinute = regexp.MustCompile(`^(?:(\d+)\s*h)?\s*(?:(\d+)\s*m)?$`)

// ParseDuration accepts whole minutes ("90") or an hours/minutes pattern
// ("1h 30m", "2h", "45m") and returns a positive number of minutes.
func ParseDuration(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("%w: empty", apperrors.ErrInvalidDuration)
	}
	if mins, err := strconv.Atoi(input); err == nil {
		if mins <= 0 {
			return 0, fmt.Errorf("%w: %q must be greater than 0", apperrors.ErrInvalidDuration, input)
		}
		if mins > MaxDurationMin {
			return 0, tooLong(input)
		}
		return mins, nil
	}
	m := hourMinute.FindStringSubmatch(strings.ToLower(input))
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, fmt.Errorf("%w: %q, use minutes (e.g. '90') or 'Xh Ym' (e.g. '1h 30m')", apperrors.ErrInvalidDuration, input)
	}
	total := 0
	if m[1] != "" {
		hours, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("%w: hours in %q", apperrors.ErrInvalidDuration, input)
		}
		if hours > MaxDurationMin/60 {
			return 0, tooLong(input)
		}
		total += hours * 60
	}
	if m[2] != "" {
		mins, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, fmt.Errorf("%w: minutes in %q", apperrors.ErrInvalidDuration, input)
		}
		if mins > MaxDurationMin-total {
			return 0, tooLong(input)
		}
		total += mins
	}
	if total <= 0 {
		return 0, fmt.Errorf("%w: %q must be greater than 0", apperrors.ErrInvalidDuration, input)
	}
	return total, nil
}

func tooLong(input string) error {
	return fmt.Errorf("%w: %q exceeds %d minutes", apperrors.ErrInvalidDuration, input, MaxDurationMin)
}

// FormatDuration renders minutes as "1h 30m", "2h" or "45m".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		return "-" + FormatDuration(-minutes)
	}
	hours, mins := minutes/60, minutes%60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// ParseTime accepts "YYYY-MM-DDTHH:MM[:SS]" or "HH:MM", the latter on the
// calendar day of now.
func ParseTime(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, input, now.Location()); err == nil {
			return t, nil
		}
	}
	if t, err := time.ParseInLocation(ClockLayout, input, now.Location()); err == nil {
		y, mo, d := now.Date()
		return time.Date(y, mo, d, t.Hour(), t.Minute(), 0, 0, now.Location()), nil
	}
	return time.Time{}, fmt.Errorf("%w: time %q, use YYYY-MM-DDTHH:MM or HH:MM", apperrors.ErrInvalidInput, input)
}

// ParseDate accepts "YYYY-MM-DD", "today" or "yesterday".
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	switch input {
	case "today":
		return StartOfDay(now), nil
	case "yesterday":
		return StartOfDay(now).AddDate(0, 0, -1), nil
	}
	t, err := time.ParseInLocation(DateLayout, input, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q, use YYYY-MM-DD, 'today', or 'yesterday'", apperrors.ErrInvalidInput, input)
	}
	return t, nil
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WholeMinutes floors the span between two instants to whole minutes.
func WholeMinutes(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}
