package watch

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	clockdto "github.com/lmple/vibe-clock/internal/modules/clock/dto"
	"github.com/lmple/vibe-clock/internal/ui/theme"
)

type fakeClock struct {
	status  clockdto.StatusOutput
	stopErr error
	stops   int
}

func (f *fakeClock) Status(context.Context) (clockdto.StatusOutput, error) {
	return f.status, nil
}

func (f *fakeClock) Stop(context.Context) (clockdto.StopOutput, error) {
	f.stops++
	if f.stopErr != nil {
		return clockdto.StopOutput{}, f.stopErr
	}
	return clockdto.StopOutput{ProjectName: "Acme", Description: "Working", DurationMin: 25}, nil
}

var start = time.Date(2026, 2, 25, 9, 0, 0, 0, time.Local)

func newModel(clock ClockPort) Model {
	return New(context.Background(), clock, func() time.Time { return start }, theme.New(lipgloss.NewRenderer(io.Discard)))
}

func running() clockdto.StatusOutput {
	return clockdto.StatusOutput{Running: true, ProjectName: "Acme", Description: "Working", StartTime: start}
}

func press(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestStatusAndTickUpdateView(t *testing.T) {
	t.Parallel()
	m := newModel(&fakeClock{})
	require.Contains(t, m.View(), "Loading clock")

	next, _ := m.Update(statusMsg{status: running()})
	m = next.(Model)
	next, cmd := m.Update(tickMsg(start.Add(25*time.Minute + 7*time.Second)))
	m = next.(Model)
	require.NotNil(t, cmd)

	view := m.View()
	require.Contains(t, view, "0:25:07")
	require.Contains(t, view, "Working")
	require.Contains(t, view, "since 09:00")
}

func TestStopKeyStopsRunningClockAndQuits(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{status: running()}
	m := newModel(clock)
	next, _ := m.Update(statusMsg{status: running()})
	m = next.(Model)

	next, cmd := m.Update(press('s'))
	m = next.(Model)
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, 1, clock.stops)

	next, cmd = m.Update(msg)
	m = next.(Model)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	out, ok := m.Stopped()
	require.True(t, ok)
	require.Equal(t, 25, out.DurationMin)
	require.Contains(t, m.View(), "Clock stopped.")
}

func TestStopKeyIgnoredWhenIdle(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{}
	m := newModel(clock)
	next, _ := m.Update(statusMsg{status: clockdto.StatusOutput{}})
	m = next.(Model)
	require.Contains(t, m.View(), "No clock is running.")

	_, cmd := m.Update(press('s'))
	require.Nil(t, cmd)
	require.Zero(t, clock.stops)
}

func TestStopFailureKeepsViewOpen(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{stopErr: errors.New("database is locked")}
	m := newModel(clock)
	next, _ := m.Update(statusMsg{status: running()})
	m = next.(Model)

	_, cmd := m.Update(press('s'))
	next, cmd = m.Update(cmd())
	m = next.(Model)
	require.Nil(t, cmd)
	require.Contains(t, m.View(), "database is locked")
	_, ok := m.Stopped()
	require.False(t, ok)
}

func TestQuitKeyLeavesClockRunning(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{status: running()}
	_, cmd := newModel(clock).Update(press('q'))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Zero(t, clock.stops)
}

func TestElapsed(t *testing.T) {
	t.Parallel()
	require.Equal(t, "0:00:00", Elapsed(start, start.Add(-time.Minute)))
	require.Equal(t, "1:02:03", Elapsed(start, start.Add(time.Hour+2*time.Minute+3*time.Second)))
}
