// Package calendar lays out a month of vaccine schedules as a fixed
// 6-week grid. All functions are pure.
package calendar

import (
	"sort"
	"time"

	"github.com/jinzhu/now"
)

const (
	// Columns is the number of days in a grid row, Sunday first.
	Columns = 7
	// Rows is the number of weeks in a grid.
	Rows = 6
	// Cells is the fixed grid size.
	Cells = Rows * Columns

	// FilterAll disables the vaccine filter.
	FilterAll = "all"

	dayLayout = "2006-01-02"
)

// CellType says which month a cell belongs to.
type CellType string

const (
	Prev    CellType = "prev"
	Current CellType = "current"
	Next    CellType = "next"
)

// MarkStyle is how a schedule indicator is drawn.
type MarkStyle string

const (
	Filled   MarkStyle = "filled"   // dose given
	Outlined MarkStyle = "outlined" // dose scheduled
)

// Schedule is the calendar's view of one vaccine dose.
type Schedule struct {
	ID          string `json:"id"`
	VaccineCode string `json:"vaccineCode"`
	DoseNumber  int    `json:"doseNumber"`
	// Day is the scheduled inoculation day as YYYY-MM-DD.
	Day         string `json:"day"`
	Completed   bool   `json:"isCompleted"`
	DiseaseName string `json:"diseaseName,omitempty"`
	VaccineName string `json:"vaccineName,omitempty"`
}

// Mark is an indicator drawn in a cell for a matching schedule.
type Mark struct {
	ScheduleID  string    `json:"scheduleId"`
	VaccineCode string    `json:"vaccineCode"`
	DoseNumber  int       `json:"doseNumber"`
	Completed   bool      `json:"isCompleted"`
	Style       MarkStyle `json:"style"`
	Color       string    `json:"color"`
	Label       string    `json:"label"`
}

// Cell is one day in the grid.
type Cell struct {
	Date  string   `json:"date"`
	Day   int      `json:"day"`
	Type  CellType `json:"type"`
	Marks []Mark   `json:"marks"`
}

// Month is a complete grid for one displayed month.
type Month struct {
	Year    int            `json:"year"`
	Month   int            `json:"month"`
	Filter  string         `json:"filter"`
	Cells   []Cell         `json:"cells"`
	Filters []FilterOption `json:"filters"`
}

// Weeks splits the cells into rows of seven.
func (m Month) Weeks() [][]Cell {
	weeks := make([][]Cell, 0, Rows)
	for i := 0; i+Columns <= len(m.Cells); i += Columns {
		weeks = append(weeks, m.Cells[i:i+Columns])
	}
	return weeks
}

// DayKey formats t as a calendar-day string in t's own location.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// firstOfMonth returns midnight of the 1st in UTC. time.Date normalizes
// out-of-range months, so month 0 or 13 roll into the adjacent year.
func firstOfMonth(year int, month time.Month) time.Time {
	return now.With(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)).BeginningOfMonth()
}

// LeadingDays is how many days of the previous month start the grid.
func LeadingDays(year int, month time.Month) int {
	return int(firstOfMonth(year, month).Weekday())
}

// GridRange returns the first and last day shown for the month.
func GridRange(year int, month time.Month) (first, last time.Time) {
	start := firstOfMonth(year, month)
	first = start.AddDate(0, 0, -LeadingDays(year, month))
	last = first.AddDate(0, 0, Cells-1)
	return first, last
}

// Build lays out the month and annotates each cell with the schedules that
// fall on it, after applying filter.
func Build(year int, month time.Month, schedules []Schedule, filter string) Month {
	start := firstOfMonth(year, month)
	daysInMonth := now.With(start).EndOfMonth().Day()
	first, _ := GridRange(year, month)

	byDay := map[string][]Schedule{}
	for _, s := range Filter(schedules, filter) {
		byDay[s.Day] = append(byDay[s.Day], s)
	}

	lead := LeadingDays(year, month)
	cells := make([]Cell, 0, Cells)
	for i := 0; i < Cells; i++ {
		d := first.AddDate(0, 0, i)
		typ := Current
		switch {
		case i < lead:
			typ = Prev
		case i >= lead+daysInMonth:
			typ = Next
		}
		key := DayKey(d)
		cells = append(cells, Cell{
			Date:  key,
			Day:   d.Day(),
			Type:  typ,
			Marks: marks(byDay[key]),
		})
	}

	if filter == "" {
		filter = FilterAll
	}
	return Month{
		Year:    start.Year(),
		Month:   int(start.Month()),
		Filter:  filter,
		Cells:   cells,
		Filters: AvailableFilters(schedules),
	}
}

func marks(schedules []Schedule) []Mark {
	out := make([]Mark, 0, len(schedules))
	for _, s := range schedules {
		style := Outlined
		if s.Completed {
			style = Filled
		}
		out = append(out, Mark{
			ScheduleID:  s.ID,
			VaccineCode: s.VaccineCode,
			DoseNumber:  s.DoseNumber,
			Completed:   s.Completed,
			Style:       style,
			Color:       Color(s.VaccineCode),
			Label:       markLabel(s),
		})
	}
	return out
}

// Filter keeps schedules of the given vaccine code. An empty filter or
// FilterAll keeps everything.
func Filter(schedules []Schedule, filter string) []Schedule {
	if filter == "" || filter == FilterAll {
		return schedules
	}
	out := make([]Schedule, 0, len(schedules))
	for _, s := range schedules {
		if s.VaccineCode == filter {
			out = append(out, s)
		}
	}
	return out
}

// FilterOption is a selectable vaccine filter.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// AvailableFilters lists the distinct vaccine codes in schedules, sorted.
func AvailableFilters(schedules []Schedule) []FilterOption {
	seen := map[string]bool{}
	codes := []string{}
	for _, s := range schedules {
		if !seen[s.VaccineCode] {
			seen[s.VaccineCode] = true
			codes = append(codes, s.VaccineCode)
		}
	}
	sort.Strings(codes)

	out := make([]FilterOption, 0, len(codes))
	for _, code := range codes {
		out = append(out, FilterOption{Value: code, Label: Label(code), Color: Color(code)})
	}
	return out
}
