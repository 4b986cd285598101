package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"childcare-app-server/internal/apperr"
	"childcare-app-server/internal/middleware"
	"childcare-app-server/internal/models"
	"childcare-app-server/internal/repository"
	"childcare-app-server/internal/utils"
)

// ReportHandler handles report related requests.
type ReportHandler struct {
	Reports repository.ReportRepository
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports repository.ReportRepository) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

// CreateReportRequest is the body of POST /api/report.
type CreateReportRequest struct {
	ImageURL string `json:"imageUrl" binding:"max=512"`
	Title    string `json:"title" binding:"max=255"`
}

// CreateReport stores a report image for the caller.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		utils.Fail(c, apperr.NewUnauthenticated(utils.MsgAuthRequired))
		return
	}

	var req CreateReportRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		utils.BadRequest(c, utils.MsgImageURLRequired)
		return
	}

	report := models.Report{
		UserID:   user.ID,
		Title:    strings.TrimSpace(req.Title),
		ImageURL: req.ImageURL,
	}
	if err := h.Reports.Create(c.Request.Context(), &report); err != nil {
		utils.Fail(c, apperr.NewInternal(err, utils.MsgInternal))
		return
	}
	utils.Success(c, utils.MsgReportCreated, report)
}

// GetReports returns one report when ?reportId= is given, otherwise all of
// the caller's reports newest first.
func (h *ReportHandler) GetReports(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		utils.Fail(c, apperr.NewUnauthenticated(utils.MsgAuthRequired))
		return
	}
	ctx := c.Request.Context()

	if id := c.Query("reportId"); id != "" {
		report, err := h.Reports.FindByID(ctx, id)
		if err != nil {
			utils.Fail(c, repoError(err, utils.MsgReportNotFound))
			return
		}
		if err := middleware.CheckOwnership(user, report); err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, utils.MsgReportFetched, report)
		return
	}

	reports, err := h.Reports.ListByUser(ctx, user.ID)
	if err != nil {
		utils.Fail(c, apperr.NewInternal(err, utils.MsgInternal))
		return
	}
	if reports == nil {
		reports = []models.Report{}
	}
	utils.Success(c, utils.MsgReportsFetched, reports)
}
