package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")
)

// Styles is the palette bound to one renderer, so colour output follows the
// writer it renders for rather than the process stdout.
type Styles struct {
	Pane    lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Hot     lipgloss.Style
	Running lipgloss.Style
	Error   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Total   lipgloss.Style
	Border  lipgloss.Style
}

func New(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Pane: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Foreground(Text).
			Padding(1, 2),
		Title:   r.NewStyle().Foreground(Sapphire).Bold(true),
		Muted:   r.NewStyle().Foreground(Subtext0),
		Hot:     r.NewStyle().Foreground(Peach).Bold(true),
		Running: r.NewStyle().Foreground(Green).Bold(true),
		Error:   r.NewStyle().Foreground(Red),
		Header:  r.NewStyle().Foreground(Sapphire).Bold(true).Padding(0, 1),
		Cell:    r.NewStyle().Padding(0, 1),
		Total:   r.NewStyle().Foreground(Peach).Bold(true).Padding(0, 1),
		Border:  r.NewStyle().Foreground(Surface1),
	}
}
