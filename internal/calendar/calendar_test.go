package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MonthStartingOnWednesday(t *testing.T) {
	// 2025-01-01 is a Wednesday.
	m := Build(2025, time.January, nil, FilterAll)

	require.Len(t, m.Cells, Cells)
	assert.Equal(t, 3, LeadingDays(2025, time.January))
	for i := 0; i < 3; i++ {
		assert.Equal(t, Prev, m.Cells[i].Type, "cell %d", i)
	}
	assert.Equal(t, "2024-12-29", m.Cells[0].Date)
	assert.Equal(t, "2024-12-31", m.Cells[2].Date)
	assert.Equal(t, "2025-01-01", m.Cells[3].Date)
	assert.Equal(t, 1, m.Cells[3].Day)
	assert.Equal(t, Current, m.Cells[3].Type)

	// 3 leading + 31 days = 34, so 8 trailing cells from February.
	assert.Equal(t, "2025-01-31", m.Cells[33].Date)
	assert.Equal(t, Next, m.Cells[34].Type)
	assert.Equal(t, "2025-02-08", m.Cells[41].Date)
}

func TestBuild_MonthStartingOnSunday(t *testing.T) {
	// 2023-01-01 is a Sunday: no leading days.
	m := Build(2023, time.January, nil, "")
	require.Len(t, m.Cells, Cells)
	assert.Equal(t, "2023-01-01", m.Cells[0].Date)
	assert.Equal(t, Current, m.Cells[0].Type)
	assert.Equal(t, FilterAll, m.Filter)
}

func TestBuild_LeapFebruary(t *testing.T) {
	// 2024-02-01 is a Thursday and February 2024 has 29 days.
	m := Build(2024, time.February, nil, FilterAll)
	require.Len(t, m.Cells, Cells)
	assert.Equal(t, 4, LeadingDays(2024, time.February))
	assert.Equal(t, "2024-01-28", m.Cells[0].Date)
	assert.Equal(t, "2024-02-29", m.Cells[4+28].Date)
	assert.Equal(t, Current, m.Cells[4+28].Type)
	assert.Equal(t, "2024-03-01", m.Cells[4+29].Date)
	assert.Equal(t, Next, m.Cells[4+29].Type)

	nonLeap := Build(2023, time.February, nil, FilterAll)
	current := 0
	for _, c := range nonLeap.Cells {
		if c.Type == Current {
			current++
		}
	}
	assert.Equal(t, 28, current)
}

func TestBuild_NormalizesMonth(t *testing.T) {
	m := Build(2024, 13, nil, FilterAll)
	assert.Equal(t, 2025, m.Year)
	assert.Equal(t, 1, m.Month)
}

func TestBuild_Weeks(t *testing.T) {
	weeks := Build(2025, time.March, nil, FilterAll).Weeks()
	require.Len(t, weeks, Rows)
	for _, w := range weeks {
		assert.Len(t, w, Columns)
	}
}

func sampleSchedules() []Schedule {
	return []Schedule{
		{ID: "1", VaccineCode: "HepB", DoseNumber: 2, Day: "2025-01-15", Completed: true},
		{ID: "2", VaccineCode: "DTaP", DoseNumber: 1, Day: "2025-01-15"},
		{ID: "3", VaccineCode: "HepB", DoseNumber: 3, Day: "2025-02-03"},
		{ID: "4", VaccineCode: "BCG", DoseNumber: 1, Day: "2025-01-02", Completed: true},
	}
}

func TestBuild_Marks(t *testing.T) {
	m := Build(2025, time.January, sampleSchedules(), FilterAll)

	// day 15 is at index 3 + 14
	cell := m.Cells[17]
	require.Equal(t, "2025-01-15", cell.Date)
	require.Len(t, cell.Marks, 2)
	assert.Equal(t, Filled, cell.Marks[0].Style)
	assert.Equal(t, "#f0ad4e", cell.Marks[0].Color)
	assert.Equal(t, "B형간염 2차 - 접종완료", cell.Marks[0].Label)
	assert.Equal(t, Outlined, cell.Marks[1].Style)

	// trailing February cells also carry marks
	feb3 := m.Cells[3+31+2]
	require.Equal(t, "2025-02-03", feb3.Date)
	assert.Len(t, feb3.Marks, 1)

	assert.Empty(t, m.Cells[0].Marks)
}

func TestBuild_Filter(t *testing.T) {
	m := Build(2025, time.January, sampleSchedules(), "HepB")
	total := 0
	for _, c := range m.Cells {
		for _, mk := range c.Marks {
			assert.Equal(t, "HepB", mk.VaccineCode)
			total++
		}
	}
	assert.Equal(t, 2, total)
	assert.Equal(t, "HepB", m.Filter)
	// filter options always come from the unfiltered list
	assert.Len(t, m.Filters, 3)
}

func TestFilter(t *testing.T) {
	all := sampleSchedules()

	assert.Equal(t, all, Filter(all, FilterAll))
	assert.Equal(t, all, Filter(all, ""))

	hepB := Filter(all, "HepB")
	assert.Len(t, hepB, 2)
	assert.Less(t, len(hepB), len(all))
	for _, s := range hepB {
		assert.Equal(t, "HepB", s.VaccineCode)
	}

	assert.Empty(t, Filter(all, "MMR"))
}

func TestAvailableFilters(t *testing.T) {
	opts := AvailableFilters(append(sampleSchedules(), Schedule{VaccineCode: "XYZ"}))
	require.Len(t, opts, 4)
	assert.Equal(t, []string{"BCG", "DTaP", "HepB", "XYZ"}, []string{opts[0].Value, opts[1].Value, opts[2].Value, opts[3].Value})
	assert.Equal(t, "결핵", opts[0].Label)
	assert.Equal(t, "XYZ", opts[3].Label)
	assert.Equal(t, defaultColor, opts[3].Color)
}

func TestGridRange(t *testing.T) {
	first, last := GridRange(2025, time.January)
	assert.Equal(t, "2024-12-29", DayKey(first))
	assert.Equal(t, "2025-02-08", DayKey(last))
}

func TestSummarize_Empty(t *testing.T) {
	p := Summarize(nil)
	assert.Equal(t, 0, p.TotalCompletedDoses)
	assert.Equal(t, 0, p.TotalRequiredDoses)
	assert.Equal(t, 0, p.CompletionPercentage)
	assert.NotNil(t, p.Schedules)
	assert.Empty(t, p.VaccineStatusMap)
}

func TestSummarize_Mixed(t *testing.T) {
	schedules := []Schedule{
		{ID: "1", VaccineCode: "HepB", DoseNumber: 1, Day: "2025-01-01", Completed: true},
		{ID: "2", VaccineCode: "HepB", DoseNumber: 2, Day: "2025-02-01", Completed: true},
		{ID: "3", VaccineCode: "HepB", DoseNumber: 3, Day: "2025-07-01"},
		{ID: "4", VaccineCode: "BCG", DoseNumber: 1, Day: "2025-01-10", Completed: true},
		{ID: "5", VaccineCode: "MMR", DoseNumber: 1, Day: "2026-01-01"},
		{ID: "6", VaccineCode: "MMR", DoseNumber: 2, Day: "2029-01-01"},
	}

	p := Summarize(schedules)
	assert.Equal(t, 3, p.TotalCompletedDoses)
	assert.Equal(t, 3, p.TotalRequiredDoses)
	assert.Equal(t, 50, p.CompletionPercentage)
	assert.Len(t, p.Schedules, 6)

	require.Len(t, p.VaccineStatusMap, 3)
	assert.Equal(t, VaccineStatus{Label: "B형간염", Color: Color("HepB"), CompletedDoses: 2, TotalDoses: 3}, p.VaccineStatusMap["HepB"])
	assert.True(t, p.VaccineStatusMap["BCG"].Completed)
	assert.False(t, p.VaccineStatusMap["MMR"].Completed)
	assert.Equal(t, 0, p.VaccineStatusMap["MMR"].CompletedDoses)
}

func TestSummarize_RoundsPercentage(t *testing.T) {
	p := Summarize([]Schedule{
		{VaccineCode: "IPV", Completed: true},
		{VaccineCode: "IPV", Completed: true},
		{VaccineCode: "IPV"},
	})
	assert.Equal(t, 67, p.CompletionPercentage)
}
