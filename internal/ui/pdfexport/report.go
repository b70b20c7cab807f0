// Package pdfexport writes range reports as PDF documents.
package pdfexport

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	journaldto "github.com/lmple/vibe-clock/internal/modules/journal/dto"
	"github.com/lmple/vibe-clock/internal/platform/timefmt"
)

var (
	headers   = []string{"ID", "Description", "Date", "Start", "End", "Duration"}
	gridSizes = []uint{1, 4, 2, 1, 1, 3}
)

// Build lays the report out on A4 pages without writing it anywhere.
func Build(report journaldto.ReportOutput) pdf.Maroto {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("Work Report", props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("%s - %s", report.From, report.To), props.Text{
					Top:   3,
					Style: consts.Normal,
					Align: consts.Center,
					Size:  12,
				})
			})
		})
	})

	if len(report.Sections) == 0 {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("No tasks found.", props.Text{Top: 5, Size: 11, Align: consts.Center})
			})
		})
	}

	for _, section := range report.Sections {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(section.Project, props.Text{
					Top:   5,
					Style: consts.Bold,
					Size:  12,
					Align: consts.Left,
				})
			})
		})

		m.TableList(headers, rows(section.Entries), props.TableList{
			HeaderProp: props.TableListContent{
				Size:      10,
				GridSizes: gridSizes,
			},
			ContentProp: props.TableListContent{
				Size:      9,
				GridSizes: gridSizes,
			},
			Align:                consts.Center,
			AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
			HeaderContentSpace:   1,
			Line:                 false,
		})

		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("Subtotal: "+timefmt.FormatDuration(section.SubtotalMin), props.Text{
					Style: consts.Bold,
					Align: consts.Right,
					Size:  10,
				})
			})
		})
		m.Row(5, func() {})
	}

	m.Row(20, func() {
		m.Col(12, func() {
			m.Text("Grand Total: "+timefmt.FormatDuration(report.TotalMin), props.Text{
				Top:   10,
				Style: consts.Bold,
				Align: consts.Right,
				Size:  12,
			})
		})
	})
	return m
}

// Write renders the report to path.
func Write(path string, report journaldto.ReportOutput) error {
	if err := Build(report).OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf report: %w", err)
	}
	return nil
}

func rows(entries []journaldto.EntryOutput) [][]string {
	out := make([][]string, 0, len(entries))
	for _, entry := range entries {
		start, end := "-", "-"
		if entry.Start != nil {
			start = entry.Start.Format(timefmt.ClockLayout)
		}
		if entry.End != nil {
			end = entry.End.Format(timefmt.ClockLayout)
		}
		out = append(out, []string{
			strconv.FormatInt(entry.ID, 10),
			entry.Description,
			entry.Date,
			start,
			end,
			timefmt.FormatDuration(entry.DurationMin),
		})
	}
	return out
}
