package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"childcare-app-server/internal/apperr"
	"childcare-app-server/internal/calendar"
	"childcare-app-server/internal/middleware"
	"childcare-app-server/internal/models"
	"childcare-app-server/internal/repository"
	"childcare-app-server/internal/utils"
)

// VaccineHandler serves a child's vaccination schedule.
type VaccineHandler struct {
	Vaccines repository.VaccineRepository
	Location *time.Location
	Now      func() time.Time
}

// NewVaccineHandler creates a new VaccineHandler.
func NewVaccineHandler(vaccines repository.VaccineRepository, loc *time.Location) *VaccineHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &VaccineHandler{Vaccines: vaccines, Location: loc, Now: time.Now}
}

// CalendarResponse is a month grid with its rows.
type CalendarResponse struct {
	calendar.Month
	Weeks [][]calendar.Cell `json:"weeks"`
}

// yearMonth reads ?year= and ?month=, defaulting to the current month.
func (h *VaccineHandler) yearMonth(c *gin.Context) (int, time.Month, error) {
	now := h.Now().In(h.Location)
	year, month := now.Year(), int(now.Month())

	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1900 || y > 9999 {
			return 0, 0, apperr.NewBadRequest(utils.MsgInvalidYearMonth)
		}
		year = y
	}
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, apperr.NewBadRequest(utils.MsgInvalidYearMonth)
		}
		month = m
	}
	return year, time.Month(month), nil
}

// localDay is midnight of d's calendar day in the handler's location.
func (h *VaccineHandler) localDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, h.Location)
}

func (h *VaccineHandler) schedules(records []models.VaccineRecord) []calendar.Schedule {
	out := make([]calendar.Schedule, 0, len(records))
	for _, r := range records {
		out = append(out, calendar.Schedule{
			ID:          r.ID,
			VaccineCode: r.VaccineCode,
			DoseNumber:  r.DoseNumber,
			Day:         calendar.DayKey(r.InoculationDate.In(h.Location)),
			Completed:   r.IsCompleted(),
			DiseaseName: r.DiseaseName,
			VaccineName: r.VaccineName,
		})
	}
	return out
}

// GetSchedule lists the guarded child's doses within one month.
func (h *VaccineHandler) GetSchedule(c *gin.Context) {
	child, ok := middleware.GetChild(c)
	if !ok {
		utils.Fail(c, apperr.NewNotFound(utils.MsgChildNotFound))
		return
	}
	year, month, err := h.yearMonth(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, h.Location)
	records, err := h.Vaccines.ListByChildBetween(c.Request.Context(), child.ID, from, from.AddDate(0, 1, 0))
	if err != nil {
		utils.Fail(c, apperr.NewInternal(err, utils.MsgInternal))
		return
	}
	utils.Success(c, utils.MsgScheduleFetched, calendar.Filter(h.schedules(records), c.Query("filter")))
}

// GetCalendar builds the month grid for the guarded child. Records are
// loaded for every visible day, including the neighbouring months' cells.
func (h *VaccineHandler) GetCalendar(c *gin.Context) {
	child, ok := middleware.GetChild(c)
	if !ok {
		utils.Fail(c, apperr.NewNotFound(utils.MsgChildNotFound))
		return
	}
	year, month, err := h.yearMonth(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	first, last := calendar.GridRange(year, month)
	from := h.localDay(first)
	to := h.localDay(last).AddDate(0, 0, 1)
	records, err := h.Vaccines.ListByChildBetween(c.Request.Context(), child.ID, from, to)
	if err != nil {
		utils.Fail(c, apperr.NewInternal(err, utils.MsgInternal))
		return
	}

	m := calendar.Build(year, month, h.schedules(records), c.Query("filter"))
	utils.Success(c, utils.MsgCalendarFetched, CalendarResponse{Month: m, Weeks: m.Weeks()})
}

// GetProgress summarizes every dose of the guarded child.
func (h *VaccineHandler) GetProgress(c *gin.Context) {
	child, ok := middleware.GetChild(c)
	if !ok {
		utils.Fail(c, apperr.NewNotFound(utils.MsgChildNotFound))
		return
	}

	records, err := h.Vaccines.ListByChild(c.Request.Context(), child.ID)
	if err != nil {
		utils.Fail(c, apperr.NewInternal(err, utils.MsgInternal))
		return
	}
	utils.Success(c, utils.MsgProgressFetched, calendar.Summarize(h.schedules(records)))
}
