package dto

import "time"

// JournalInput.Date and ReportInput bounds accept YYYY-MM-DD, "today" or
// "yesterday". An empty journal date means today.
type JournalInput struct {
	Date string
}

type ReportInput struct {
	From string
	To   string
}

type EntryOutput struct {
	ID          int64      `yaml:"id"`
	Project     string     `yaml:"project"`
	Description string     `yaml:"description"`
	Date        string     `yaml:"date"`
	Start       *time.Time `yaml:"start,omitempty"`
	End         *time.Time `yaml:"end,omitempty"`
	DurationMin int        `yaml:"duration_min"`
}

type ProjectTotalOutput struct {
	Project string `yaml:"project"`
	Minutes int    `yaml:"minutes"`
}

type JournalOutput struct {
	Date     string               `yaml:"date"`
	Entries  []EntryOutput        `yaml:"entries"`
	Totals   []ProjectTotalOutput `yaml:"totals"`
	TotalMin int                  `yaml:"total_min"`
}

type SectionOutput struct {
	Project     string        `yaml:"project"`
	Entries     []EntryOutput `yaml:"entries"`
	SubtotalMin int           `yaml:"subtotal_min"`
}

type ReportOutput struct {
	From     string          `yaml:"from"`
	To       string          `yaml:"to"`
	Sections []SectionOutput `yaml:"sections"`
	TotalMin int             `yaml:"total_min"`
}
