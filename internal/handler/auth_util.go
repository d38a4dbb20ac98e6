package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"linkboard-api/internal/middleware"
	"linkboard-api/internal/response"
)

// AuthData holds the session claims the auth middleware stored in the
// request context.
type AuthData struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Token  string
}

// ExtractAuthData extracts the session claims from the Gin context.
// Sends the 401 itself so handlers can just return on failure.
func ExtractAuthData(c *gin.Context) (AuthData, bool) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return AuthData{}, false
	}
	userUUID, ok := userID.(uuid.UUID)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid user ID format")
		return AuthData{}, false
	}

	email, _ := c.Get(middleware.ContextEmail)
	emailStr, _ := email.(string)

	name, _ := c.Get(middleware.ContextName)
	nameStr, _ := name.(string)

	token, _ := c.Get(middleware.ContextToken)
	tokenStr, _ := token.(string)

	return AuthData{
		UserID: userUUID,
		Email:  emailStr,
		Name:   nameStr,
		Token:  tokenStr,
	}, true
}
