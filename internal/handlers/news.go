package handlers

import (
	"github.com/gin-gonic/gin"

	"childcare-app-server/internal/apperr"
	"childcare-app-server/internal/models"
	"childcare-app-server/internal/repository"
	"childcare-app-server/internal/utils"
)

// NewsHandler serves the global news feed.
type NewsHandler struct {
	News repository.NewsRepository
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(news repository.NewsRepository) *NewsHandler {
	return &NewsHandler{News: news}
}

// ListNews returns all news, newest first.
func (h *NewsHandler) ListNews(c *gin.Context) {
	news, err := h.News.List(c.Request.Context())
	if err != nil {
		utils.Fail(c, apperr.NewInternal(err, utils.MsgInternal))
		return
	}
	if news == nil {
		news = []models.News{}
	}
	utils.Success(c, utils.MsgNewsFetched, news)
}

// GetNews returns one news item.
func (h *NewsHandler) GetNews(c *gin.Context) {
	n, err := h.News.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, repoError(err, utils.MsgNewsNotFound))
		return
	}
	utils.Success(c, utils.MsgNewsDetailFetched, n)
}
