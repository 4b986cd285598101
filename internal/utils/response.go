package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"childcare-app-server/internal/apperr"
)

// ResponseData represents the structure of a standard API response.
type ResponseData struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a standard success response.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, ResponseData{
		Message: message,
		Data:    data,
	})
}

// Error sends an error response carrying only a message.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ResponseData{Message: message})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// Fail maps err onto its status code and message. Internal errors are logged
// with their cause; the client only sees the generic message.
func Fail(c *gin.Context, err error) {
	e := apperr.From(err)
	if e.Kind == apperr.Internal {
		zerolog.Ctx(c.Request.Context()).Error().
			Err(e.Err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg(e.Message)
	}
	Error(c, e.Kind.Status(), e.Message)
}

// Abort is Fail for middleware: it also stops the handler chain.
func Abort(c *gin.Context, err error) {
	Fail(c, err)
	c.Abort()
}
