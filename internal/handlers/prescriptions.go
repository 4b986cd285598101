package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"childcare-app-server/internal/apperr"
	"childcare-app-server/internal/middleware"
	"childcare-app-server/internal/models"
	"childcare-app-server/internal/repository"
	"childcare-app-server/internal/utils"
)

// PrescriptionHandler handles prescription related requests. Ownership is
// checked by the router's guards before any method here runs.
type PrescriptionHandler struct {
	Prescriptions repository.PrescriptionRepository
	Location      *time.Location
	RecentDays    int
	Now           func() time.Time
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(prescriptions repository.PrescriptionRepository, loc *time.Location, recentDays int) *PrescriptionHandler {
	return &PrescriptionHandler{
		Prescriptions: prescriptions,
		Location:      loc,
		RecentDays:    recentDays,
		Now:           time.Now,
	}
}

// PrescriptionRequest is the body for creating and updating a prescription.
// Update is a full replace: omitted optional fields are cleared.
type PrescriptionRequest struct {
	Date                 string  `json:"date" binding:"required"`
	Hospital             string  `json:"hospital" binding:"required,max=255"`
	Doctor               string  `json:"doctor" binding:"max=100"`
	Diagnoses            string  `json:"diagnoses"`
	TreatmentMethod      string  `json:"treatmentMethod" binding:"max=255"`
	Medicines            string  `json:"medicines"`
	PrescriptionImageURL *string `json:"prescriptionImageUrl" binding:"omitempty,max=512"`
	Memo                 *string `json:"memo"`
}

// apply copies the request onto p.
func (r *PrescriptionRequest) apply(p *models.Prescription, loc *time.Location) error {
	date, err := ParseDate(r.Date, loc)
	if err != nil {
		return apperr.Wrap(apperr.BadRequest, err, utils.MsgInvalidDate)
	}
	p.Date = date
	p.Hospital = r.Hospital
	p.Doctor = r.Doctor
	p.Diagnoses = r.Diagnoses
	p.TreatmentMethod = r.TreatmentMethod
	p.Medicines = r.Medicines
	p.PrescriptionImageURL = r.PrescriptionImageURL
	p.Memo = r.Memo
	return nil
}

// ListPrescriptions returns every prescription of the guarded child,
// newest first, as a bare array.
func (h *PrescriptionHandler) ListPrescriptions(c *gin.Context) {
	h.list(c, nil)
}

// ListRecentPrescriptions returns the child's prescriptions dated within the
// last ?days= days (inclusive).
func (h *PrescriptionHandler) ListRecentPrescriptions(c *gin.Context) {
	days := h.RecentDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.BadRequest(c, utils.MsgInvalidDays)
			return
		}
		days = n
	}
	since := RecentSince(h.Now(), days)
	h.list(c, &since)
}

func (h *PrescriptionHandler) list(c *gin.Context, since *time.Time) {
	child, ok := middleware.GetChild(c)
	if !ok {
		utils.Fail(c, apperr.NewNotFound(utils.MsgChildNotFound))
		return
	}

	prescriptions, err := h.Prescriptions.ListByChild(c.Request.Context(), child.ID, since)
	if err != nil {
		utils.Fail(c, apperr.NewInternal(err, utils.MsgInternal))
		return
	}
	if prescriptions == nil {
		prescriptions = []models.Prescription{}
	}
	c.JSON(http.StatusOK, prescriptions)
}

// CreatePrescription adds a prescription to the guarded child.
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	child, ok := middleware.GetChild(c)
	if !ok {
		utils.Fail(c, apperr.NewNotFound(utils.MsgChildNotFound))
		return
	}

	var req PrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	p := models.Prescription{ChildID: child.ID}
	if err := req.apply(&p, h.Location); err != nil {
		utils.Fail(c, err)
		return
	}

	if err := h.Prescriptions.Create(c.Request.Context(), &p); err != nil {
		utils.Fail(c, apperr.NewInternal(err, utils.MsgInternal))
		return
	}
	utils.Success(c, utils.MsgPrescriptionCreated, p)
}

// GetPrescription returns the guarded prescription without child fields.
func (h *PrescriptionHandler) GetPrescription(c *gin.Context) {
	p, ok := middleware.GetPrescription(c)
	if !ok {
		utils.Fail(c, apperr.NewNotFound(utils.MsgPrescriptionGone))
		return
	}
	utils.Success(c, utils.MsgPrescriptionFetched, p.View())
}

// UpdatePrescription replaces the editable fields of the guarded prescription.
func (h *PrescriptionHandler) UpdatePrescription(c *gin.Context) {
	p, ok := middleware.GetPrescription(c)
	if !ok {
		utils.Fail(c, apperr.NewNotFound(utils.MsgPrescriptionGone))
		return
	}

	var req PrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if err := req.apply(p, h.Location); err != nil {
		utils.Fail(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.Prescriptions.Update(ctx, p); err != nil {
		utils.Fail(c, repoError(err, utils.MsgPrescriptionGone))
		return
	}

	updated, err := h.Prescriptions.FindByID(ctx, p.ID)
	if err != nil {
		utils.Fail(c, repoError(err, utils.MsgPrescriptionGone))
		return
	}
	utils.Success(c, utils.MsgPrescriptionUpdated, updated.View())
}

// DeletePrescription hard-deletes the guarded prescription.
func (h *PrescriptionHandler) DeletePrescription(c *gin.Context) {
	p, ok := middleware.GetPrescription(c)
	if !ok {
		utils.Fail(c, apperr.NewNotFound(utils.MsgPrescriptionGone))
		return
	}

	if err := h.Prescriptions.Delete(c.Request.Context(), p.ID); err != nil {
		utils.Fail(c, repoError(err, utils.MsgPrescriptionGone))
		return
	}
	utils.Success(c, utils.MsgPrescriptionDeleted, nil)
}

// repoError maps a repository failure onto NotFound or Internal.
func repoError(err error, notFound string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NewNotFound(notFound)
	}
	return apperr.NewInternal(err, utils.MsgInternal)
}
