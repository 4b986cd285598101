package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"childcare-app-server/internal/apperr"
	"childcare-app-server/internal/models"
	"childcare-app-server/internal/repository"
	"childcare-app-server/internal/utils"
)

const (
	userIDKey = "userID"
	userKey   = "user"
)

// Authenticate extracts the bearer token from an Authorization header value,
// verifies it and returns the external user id it was issued for.
func Authenticate(header, secret string) (string, error) {
	if header == "" {
		return "", apperr.NewUnauthenticated(utils.MsgAuthRequired)
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", apperr.NewUnauthenticated(utils.MsgAuthRequired)
	}

	claims, err := utils.ValidateToken(parts[1], secret)
	if err != nil {
		return "", apperr.Wrap(apperr.Unauthenticated, err, utils.MsgInvalidToken)
	}
	return claims.UserID, nil
}

// AuthMiddleware creates a middleware for JWT authentication.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := Authenticate(c.GetHeader("Authorization"), secret)
		if err != nil {
			utils.Abort(c, err)
			return
		}

		// Set user information in context for downstream handlers
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUser resolves the authenticated subject to its User row.
// It should be used *after* AuthMiddleware.
func CurrentUser(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			utils.Abort(c, apperr.NewUnauthenticated(utils.MsgAuthRequired))
			return
		}

		user, err := users.FindByExternalID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Abort(c, apperr.NewNotFound(utils.MsgUserNotFound))
			} else {
				utils.Abort(c, apperr.NewInternal(err, utils.MsgInternal))
			}
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// GetUserIDFromContext returns the external user id set by AuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := userID.(string)
	return idStr, ok
}

// GetUserFromContext returns the User loaded by CurrentUser.
func GetUserFromContext(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
