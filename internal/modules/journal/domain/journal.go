package domain

import "time"

// UnknownProject labels entries whose project reference is dangling.
const UnknownProject = "?"

// Line is one entry as it appears in a journal or report.
type Line struct {
	EntryID     int64
	ProjectID   int64
	ProjectName string
	Description string
	StartTime   *time.Time
	EndTime     *time.Time
	DurationMin int
	CreatedAt   time.Time
}

// EffectiveTime is the start time, or the creation time for duration-only
// entries.
func (l Line) EffectiveTime() time.Time {
	if l.StartTime != nil {
		return *l.StartTime
	}
	return l.CreatedAt
}

type ProjectTotal struct {
	ProjectName string
	Minutes     int
}

type Journal struct {
	Date     time.Time
	Lines    []Line
	Totals   []ProjectTotal
	TotalMin int
}

type Section struct {
	ProjectName string
	Lines       []Line
	SubtotalMin int
}

type Report struct {
	From     time.Time
	To       time.Time
	Sections []Section
	TotalMin int
}

// BuildJournal totals lines per project in the order projects first appear.
// Lines must already be sorted by effective time.
func BuildJournal(date time.Time, lines []Line) Journal {
	journal := Journal{Date: date, Lines: make([]Line, 0, len(lines)), Totals: []ProjectTotal{}}
	index := map[string]int{}
	for _, line := range lines {
		name := displayName(line)
		line.ProjectName = name
		journal.Lines = append(journal.Lines, line)
		journal.TotalMin += line.DurationMin
		if i, ok := index[name]; ok {
			journal.Totals[i].Minutes += line.DurationMin
			continue
		}
		index[name] = len(journal.Totals)
		journal.Totals = append(journal.Totals, ProjectTotal{ProjectName: name, Minutes: line.DurationMin})
	}
	return journal
}

// BuildReport splits lines into per-project sections in first-seen order.
// Lines keep their relative order within a section.
func BuildReport(from, to time.Time, lines []Line) Report {
	report := Report{From: from, To: to, Sections: []Section{}}
	index := map[string]int{}
	for _, line := range lines {
		name := displayName(line)
		line.ProjectName = name
		report.TotalMin += line.DurationMin
		i, ok := index[name]
		if !ok {
			i = len(report.Sections)
			index[name] = i
			report.Sections = append(report.Sections, Section{ProjectName: name})
		}
		report.Sections[i].Lines = append(report.Sections[i].Lines, line)
		report.Sections[i].SubtotalMin += line.DurationMin
	}
	return report
}

func displayName(line Line) string {
	if line.ProjectName == "" {
		return UnknownProject
	}
	return line.ProjectName
}
