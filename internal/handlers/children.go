package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"childcare-app-server/internal/apperr"
	"childcare-app-server/internal/middleware"
	"childcare-app-server/internal/models"
	"childcare-app-server/internal/repository"
	"childcare-app-server/internal/utils"
)

// ChildHandler serves a parent's children.
type ChildHandler struct {
	Children repository.ChildRepository
	Location *time.Location
	Now      func() time.Time
}

// NewChildHandler creates a new ChildHandler.
func NewChildHandler(children repository.ChildRepository, loc *time.Location) *ChildHandler {
	return &ChildHandler{Children: children, Location: loc, Now: time.Now}
}

// ListChildren returns the caller's children.
func (h *ChildHandler) ListChildren(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		utils.Fail(c, apperr.NewUnauthenticated(utils.MsgAuthRequired))
		return
	}

	children, err := h.Children.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		utils.Fail(c, apperr.NewInternal(err, utils.MsgInternal))
		return
	}

	details := make([]models.ChildDetail, 0, len(children))
	for i := range children {
		details = append(details, h.detail(&children[i]))
	}
	utils.Success(c, utils.MsgChildrenFetched, details)
}

// GetChild returns the child loaded by the ownership guard with its age.
func (h *ChildHandler) GetChild(c *gin.Context) {
	child, ok := middleware.GetChild(c)
	if !ok {
		utils.Fail(c, apperr.NewNotFound(utils.MsgChildNotFound))
		return
	}
	utils.Success(c, utils.MsgChildFetched, h.detail(child))
}

func (h *ChildHandler) detail(child *models.Child) models.ChildDetail {
	now := h.Now()
	if h.Location != nil {
		now = now.In(h.Location)
	}
	return models.ChildDetail{Child: *child, Age: child.AgeAt(now)}
}
