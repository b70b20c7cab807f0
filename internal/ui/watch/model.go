// Package watch is a live terminal view of the running clock.
package watch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	clockdto "github.com/lmple/vibe-clock/internal/modules/clock/dto"
	"github.com/lmple/vibe-clock/internal/platform/timefmt"
	"github.com/lmple/vibe-clock/internal/ui/theme"
)

// ClockPort is the part of the clock usecase the view drives.
type ClockPort interface {
	Status(ctx context.Context) (clockdto.StatusOutput, error)
	Stop(ctx context.Context) (clockdto.StopOutput, error)
}

type tickMsg time.Time

type statusMsg struct {
	status clockdto.StatusOutput
	err    error
}

type stoppedMsg struct {
	out clockdto.StopOutput
	err error
}

type keyMap struct {
	Stop key.Binding
	Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Stop: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop clock")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Stop, k.Quit} }

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type Model struct {
	ctx     context.Context
	clock   ClockPort
	now     func() time.Time
	keys    keyMap
	help    help.Model
	styles  theme.Styles
	status  clockdto.StatusOutput
	loaded  bool
	stopped *clockdto.StopOutput
	err     error
	at      time.Time
}

func New(ctx context.Context, clock ClockPort, now func() time.Time, styles theme.Styles) Model {
	if now == nil {
		now = time.Now
	}
	return Model{
		ctx:    ctx,
		clock:  clock,
		now:    now,
		keys:   defaultKeys(),
		help:   help.New(),
		styles: styles,
		at:     now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Stop):
			if m.status.Running {
				return m, m.stopCmd()
			}
		}

	case tickMsg:
		m.at = time.Time(msg)
		return m, tea.Batch(m.refreshCmd(), tickCmd())

	case statusMsg:
		m.loaded = true
		m.status, m.err = msg.status, msg.err

	case stoppedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		out := msg.out
		m.stopped = &out
		m.status = clockdto.StatusOutput{}
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch {
	case m.stopped != nil:
		body = fmt.Sprintf("%s\n%s for '%s' on project '%s'",
			m.styles.Hot.Render("Clock stopped."),
			timefmt.FormatDuration(m.stopped.DurationMin), m.stopped.Description, m.stopped.ProjectName)
	case !m.loaded:
		body = m.styles.Muted.Render("Loading clock...")
	case !m.status.Running:
		body = m.styles.Muted.Render("No clock is running.")
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Running.Render("● "+Elapsed(m.status.StartTime, m.at)),
			"",
			m.styles.Title.Render(m.status.Description),
			m.styles.Muted.Render(fmt.Sprintf("project %s · since %s", m.status.ProjectName, m.status.StartTime.Format(timefmt.ClockLayout))),
		)
	}
	if m.err != nil {
		body += "\n" + m.styles.Error.Render(m.err.Error())
	}
	return m.styles.Pane.Render(body) + "\n" + m.help.View(m.keys) + "\n"
}

// Stopped returns the stop result when the view stopped the clock.
func (m Model) Stopped() (clockdto.StopOutput, bool) {
	if m.stopped == nil {
		return clockdto.StopOutput{}, false
	}
	return *m.stopped, true
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.clock.Status(m.ctx)
		return statusMsg{status: status, err: err}
	}
}

func (m Model) stopCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.clock.Stop(m.ctx)
		return stoppedMsg{out: out, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Elapsed renders the running time as H:MM:SS.
func Elapsed(start, now time.Time) string {
	d := now.Sub(start)
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// Run shows the view until the user quits or stops the clock.
func Run(ctx context.Context, clock ClockPort, in io.Reader, out io.Writer) (clockdto.StopOutput, bool, error) {
	model := New(ctx, clock, time.Now, theme.New(lipgloss.NewRenderer(out)))
	final, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	).Run()
	if err != nil {
		return clockdto.StopOutput{}, false, fmt.Errorf("run clock view: %w", err)
	}
	stopped, ok := final.(Model).Stopped()
	return stopped, ok, nil
}
