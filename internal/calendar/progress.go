package calendar

import (
	"math"
)

// VaccineStatus counts the doses of one vaccine code.
type VaccineStatus struct {
	Label          string `json:"label"`
	Color          string `json:"color"`
	CompletedDoses int    `json:"completedDoses"`
	TotalDoses     int    `json:"totalDoses"`
	Completed      bool   `json:"isCompleted"`
}

// Progress summarizes how far a child is through its schedule.
// TotalRequiredDoses counts the doses still to be given.
type Progress struct {
	Schedules            []Schedule               `json:"schedules"`
	TotalCompletedDoses  int                      `json:"totalCompletedDoses"`
	TotalRequiredDoses   int                      `json:"totalRequiredDoses"`
	CompletionPercentage int                      `json:"completionPercentage"`
	VaccineStatusMap     map[string]VaccineStatus `json:"vaccineStatusMap"`
}

// Summarize counts completed and remaining doses overall and per vaccine
// code. The percentage is rounded to an integer and is 0 for an empty
// schedule.
func Summarize(schedules []Schedule) Progress {
	p := Progress{
		Schedules:        schedules,
		VaccineStatusMap: map[string]VaccineStatus{},
	}
	if p.Schedules == nil {
		p.Schedules = []Schedule{}
	}

	for _, s := range schedules {
		st, ok := p.VaccineStatusMap[s.VaccineCode]
		if !ok {
			st = VaccineStatus{Label: Label(s.VaccineCode), Color: Color(s.VaccineCode)}
		}
		st.TotalDoses++
		if s.Completed {
			st.CompletedDoses++
			p.TotalCompletedDoses++
		} else {
			p.TotalRequiredDoses++
		}
		st.Completed = st.CompletedDoses == st.TotalDoses
		p.VaccineStatusMap[s.VaccineCode] = st
	}

	if total := len(schedules); total > 0 {
		p.CompletionPercentage = int(math.Round(float64(p.TotalCompletedDoses) * 100 / float64(total)))
	}
	return p
}
