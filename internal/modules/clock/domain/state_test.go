package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoggedMinutesFloorsAndClamps(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 2, 25, 9, 0, 0, 0, time.Local)
	state := State{ProjectID: 1, Description: "Working", StartTime: start}

	tests := []struct {
		after   time.Duration
		elapsed int
		logged  int
	}{
		{after: 0, elapsed: 0, logged: 1},
		{after: 30 * time.Second, elapsed: 0, logged: 1},
		{after: 5 * time.Minute, elapsed: 5, logged: 5},
		{after: 5*time.Minute + 59*time.Second, elapsed: 5, logged: 5},
		{after: 2*time.Hour + 3*time.Minute, elapsed: 123, logged: 123},
	}
	for _, tt := range tests {
		now := start.Add(tt.after)
		require.Equal(t, tt.elapsed, state.ElapsedMinutes(now), tt.after.String())
		require.Equal(t, tt.logged, state.LoggedMinutes(now), tt.after.String())
	}
}
