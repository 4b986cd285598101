package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"childcare-app-server/internal/apperr"
	"childcare-app-server/internal/calendar"
	"childcare-app-server/internal/middleware"
	"childcare-app-server/internal/models"
	"childcare-app-server/internal/repository"
	"childcare-app-server/internal/utils"
)

// RecordHandler serves a child's symptom, emotion and meal records.
type RecordHandler struct {
	Records  repository.RecordRepository
	Location *time.Location
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(records repository.RecordRepository, loc *time.Location) *RecordHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &RecordHandler{Records: records, Location: loc}
}

// RecordRequest is the body for creating a record.
type RecordRequest struct {
	Type      string  `json:"type" binding:"required,oneof=SYMPTOM EMOTION MEAL"`
	StartTime string  `json:"startTime" binding:"required"`
	EndTime   *string `json:"endTime"`
	Symptom   *string `json:"symptom" binding:"omitempty,max=100"`
	Severity  *string `json:"severity" binding:"omitempty,max=20"`
	Emotion   *string `json:"emotion" binding:"omitempty,max=100"`
	Memo      *string `json:"memo"`
}

func (r *RecordRequest) record(childID string, loc *time.Location) (*models.Record, error) {
	start, err := ParseDate(r.StartTime, loc)
	if err != nil {
		return nil, apperr.Wrap(apperr.BadRequest, err, utils.MsgInvalidDate)
	}
	rec := &models.Record{
		ChildID:   childID,
		Type:      models.RecordType(r.Type),
		StartTime: start,
		Symptom:   r.Symptom,
		Severity:  r.Severity,
		Emotion:   r.Emotion,
		Memo:      r.Memo,
	}
	if r.EndTime != nil && *r.EndTime != "" {
		end, err := ParseDate(*r.EndTime, loc)
		if err != nil || end.Before(start) {
			return nil, apperr.NewBadRequest(utils.MsgInvalidDate)
		}
		rec.EndTime = &end
	}
	return rec, nil
}

// CreateRecord adds a record to the guarded child.
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	child, ok := middleware.GetChild(c)
	if !ok {
		utils.Fail(c, apperr.NewNotFound(utils.MsgChildNotFound))
		return
	}

	var req RecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	rec, err := req.record(child.ID, h.Location)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	if err := h.Records.Create(c.Request.Context(), rec); err != nil {
		utils.Fail(c, apperr.NewInternal(err, utils.MsgInternal))
		return
	}
	utils.Success(c, utils.MsgRecordCreated, rec)
}

// filter reads ?type=, ?startDate= and ?endDate=. Both dates are whole
// local days and inclusive.
func (h *RecordHandler) filter(c *gin.Context) (repository.RecordFilter, error) {
	var f repository.RecordFilter
	if raw := c.Query("type"); raw != "" {
		f.Type = models.RecordType(raw)
		if !f.Type.Valid() {
			return f, apperr.NewBadRequest(utils.MsgInvalidRecordType)
		}
	}
	if raw := c.Query("startDate"); raw != "" {
		d, err := ParseDate(raw, h.Location)
		if err != nil {
			return f, apperr.Wrap(apperr.BadRequest, err, utils.MsgInvalidDate)
		}
		from := h.day(d)
		f.From = &from
	}
	if raw := c.Query("endDate"); raw != "" {
		d, err := ParseDate(raw, h.Location)
		if err != nil {
			return f, apperr.Wrap(apperr.BadRequest, err, utils.MsgInvalidDate)
		}
		to := h.day(d).AddDate(0, 0, 1)
		f.To = &to
	}
	return f, nil
}

func (h *RecordHandler) day(t time.Time) time.Time {
	t = t.In(h.Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, h.Location)
}

// ListRecords returns the guarded child's records grouped by local day
// (YYYY-MM-DD), newest first within a day.
func (h *RecordHandler) ListRecords(c *gin.Context) {
	child, ok := middleware.GetChild(c)
	if !ok {
		utils.Fail(c, apperr.NewNotFound(utils.MsgChildNotFound))
		return
	}
	f, err := h.filter(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	records, err := h.Records.ListByChild(c.Request.Context(), child.ID, f)
	if err != nil {
		utils.Fail(c, apperr.NewInternal(err, utils.MsgInternal))
		return
	}

	grouped := map[string][]models.Record{}
	for _, r := range records {
		key := calendar.DayKey(r.StartTime.In(h.Location))
		grouped[key] = append(grouped[key], r)
	}
	utils.Success(c, utils.MsgRecordsFetched, grouped)
}

// DeleteRecord hard-deletes the guarded record.
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	rec, ok := middleware.GetRecord(c)
	if !ok {
		utils.Fail(c, apperr.NewNotFound(utils.MsgRecordNotFound))
		return
	}
	if err := h.Records.Delete(c.Request.Context(), rec.ID); err != nil {
		utils.Fail(c, repoError(err, utils.MsgRecordNotFound))
		return
	}
	utils.Success(c, utils.MsgRecordDeleted, nil)
}
