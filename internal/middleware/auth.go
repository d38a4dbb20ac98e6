package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Context keys set by the auth middleware
const (
	ContextUserID   = "user_id"
	ContextEmail    = "email"
	ContextName     = "name"
	ContextUserType = "user_type"
	ContextToken    = "jwtToken"
)

// Auth returns a middleware that validates the session token locally
// and stores its claims in the request context
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := parts[1]

		claims, ok := parseSessionToken(tokenString, jwtSecret)
		if !ok {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		userIDStr, _ := claims["user_id"].(string)
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			abortUnauthorized(c, "Invalid user ID in token")
			return
		}

		email, _ := claims["email"].(string)
		name, _ := claims["name"].(string)
		userType, _ := claims["user_type"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, email)
		c.Set(ContextName, name)
		c.Set(ContextUserType, userType)
		c.Set(ContextToken, tokenString)

		c.Next()
	}
}

// AuthTokenQuery returns a middleware that reads the session token from
// the "token" query parameter. Browsers cannot set headers on websocket
// upgrade requests, so the feed endpoint authenticates this way.
func AuthTokenQuery(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if tokenString == "" {
			abortUnauthorized(c, "Token query parameter is required")
			return
		}

		claims, ok := parseSessionToken(tokenString, jwtSecret)
		if !ok {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		userIDStr, _ := claims["user_id"].(string)
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			abortUnauthorized(c, "Invalid user ID in token")
			return
		}

		email, _ := claims["email"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, email)
		c.Set(ContextToken, tokenString)

		c.Next()
	}
}

func parseSessionToken(tokenString, jwtSecret string) (jwt.MapClaims, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
	c.Abort()
}
