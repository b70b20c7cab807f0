// Package render turns module outputs into terminal text and YAML.
package render

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	journaldto "github.com/lmple/vibe-clock/internal/modules/journal/dto"
	projectdto "github.com/lmple/vibe-clock/internal/modules/project/dto"
	"github.com/lmple/vibe-clock/internal/platform/timefmt"
	"github.com/lmple/vibe-clock/internal/ui/theme"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"

	descriptionWidth = 30
	placeholder      = "-"
)

// ValidateFormat returns an error for anything but text or yaml.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatYAML:
		return nil
	}
	return fmt.Errorf("unsupported format %q (use %s or %s)", format, FormatText, FormatYAML)
}

type Printer struct {
	w      io.Writer
	styles theme.Styles
}

func NewPrinter(w io.Writer) Printer {
	return Printer{w: w, styles: theme.New(lipgloss.NewRenderer(w))}
}

func (p Printer) Projects(projects []projectdto.ProjectOutput) {
	if len(projects) == 0 {
		fmt.Fprintln(p.w, "No projects found. Create one with: vibe-clock project add <name>")
		return
	}
	rows := make([][]string, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, []string{
			strconv.FormatInt(project.ID, 10),
			project.Name,
			strconv.Itoa(project.EntryCount),
		})
	}
	fmt.Fprintln(p.w, p.table([]string{"ID", "Name", "Tasks"}, rows, -1))
}

func (p Printer) Journal(journal journaldto.JournalOutput) {
	if len(journal.Entries) == 0 {
		fmt.Fprintf(p.w, "No tasks logged for %s.\n", journal.Date)
		return
	}
	fmt.Fprintln(p.w, p.styles.Title.Render("Journal for "+journal.Date+":"))
	fmt.Fprintln(p.w)

	rows := make([][]string, 0, len(journal.Entries))
	for _, entry := range journal.Entries {
		rows = append(rows, []string{
			strconv.FormatInt(entry.ID, 10),
			entry.Project,
			Truncate(entry.Description, descriptionWidth),
			clockTime(entry.Start),
			clockTime(entry.End),
			timefmt.FormatDuration(entry.DurationMin),
		})
	}
	fmt.Fprintln(p.w, p.table([]string{"ID", "Project", "Description", "Start", "End", "Duration"}, rows, -1))
	fmt.Fprintln(p.w)

	totals := make([][]string, 0, len(journal.Totals)+1)
	for _, total := range journal.Totals {
		totals = append(totals, []string{total.Project, timefmt.FormatDuration(total.Minutes)})
	}
	totals = append(totals, []string{"TOTAL", timefmt.FormatDuration(journal.TotalMin)})
	fmt.Fprintln(p.w, p.styles.Title.Render("Totals:"))
	fmt.Fprintln(p.w, p.table([]string{"Project", "Time"}, totals, len(totals)-1))
}

func (p Printer) Report(report journaldto.ReportOutput) {
	if len(report.Sections) == 0 {
		fmt.Fprintf(p.w, "No tasks found between %s and %s.\n", report.From, report.To)
		return
	}
	fmt.Fprintln(p.w, p.styles.Title.Render(fmt.Sprintf("Report: %s to %s", report.From, report.To)))
	fmt.Fprintln(p.w)

	for _, section := range report.Sections {
		fmt.Fprintln(p.w, p.styles.Hot.Render(fmt.Sprintf("## %s (%s)", section.Project, timefmt.FormatDuration(section.SubtotalMin))))
		rows := make([][]string, 0, len(section.Entries))
		for _, entry := range section.Entries {
			rows = append(rows, []string{
				strconv.FormatInt(entry.ID, 10),
				Truncate(entry.Description, descriptionWidth),
				entry.Date,
				clockTime(entry.Start),
				clockTime(entry.End),
				timefmt.FormatDuration(entry.DurationMin),
			})
		}
		fmt.Fprintln(p.w, p.table([]string{"ID", "Description", "Date", "Start", "End", "Duration"}, rows, -1))
		fmt.Fprintln(p.w)
	}
	fmt.Fprintln(p.w, p.styles.Total.UnsetPadding().Render("Grand Total: "+timefmt.FormatDuration(report.TotalMin)))
}

// YAML writes v as a YAML document.
func (p Printer) YAML(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// table renders rows under headers. totalRow is a zero-based index into
// rows to highlight, or -1.
func (p Printer) table(headers []string, rows [][]string, totalRow int) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			// Data rows are numbered from 1; the header is row 0.
			switch {
			case row == table.HeaderRow:
				return p.styles.Header
			case row-1 == totalRow:
				return p.styles.Total
			default:
				return p.styles.Cell
			}
		}).
		String()
}

// Truncate shortens s to width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

func clockTime(t *time.Time) string {
	if t == nil {
		return placeholder
	}
	return t.Format(timefmt.ClockLayout)
}
