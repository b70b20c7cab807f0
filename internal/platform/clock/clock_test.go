package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lmple/vibe-clock/internal/platform/clock"
)

func TestFixedClockAdvances(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 2, 25, 9, 0, 0, 0, time.Local)
	clk := clock.NewFixed(start)
	require.Equal(t, start, clk.Now())
	require.Equal(t, start, clk.Now())

	clk.Advance(5 * time.Minute)
	require.Equal(t, start.Add(5*time.Minute), clk.Now())

	clk.Set(start)
	require.Equal(t, start, clk.Now())
}

func TestSystemClockHasSecondPrecision(t *testing.T) {
	t.Parallel()
	now := clock.SystemClock{}.Now()
	require.Zero(t, now.Nanosecond())
}
