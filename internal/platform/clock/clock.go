package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall time at second precision, matching what the
// store persists.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().Truncate(time.Second)
}

// Fixed always reports the same instant until moved with Set or Advance.
type Fixed struct {
	at time.Time
}

func NewFixed(at time.Time) *Fixed {
	return &Fixed{at: at}
}

func (f *Fixed) Now() time.Time {
	return f.at
}

func (f *Fixed) Set(at time.Time) {
	f.at = at
}

func (f *Fixed) Advance(d time.Duration) {
	f.at = f.at.Add(d)
}
