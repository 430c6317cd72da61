package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName is the cookie the session token is stored in
	SessionCookieName = "filmroom_session"
	// ContextKeyUserID is the key for user ID in gin context
	ContextKeyUserID = "user_id"
	// ContextKeyEmail is the key for email in gin context
	ContextKeyEmail = "email"
	// ContextKeyIsCoach is the key for the coach role flag in gin context
	ContextKeyIsCoach = "is_coach"
)

// tokenFromRequest extracts the session token from the session cookie, or
// from a bearer Authorization header for non-browser API clients.
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// SessionRequired validates the session token and sets user info in context
func SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := ValidateToken(tokenString)
		if err != nil {
			if err == ErrExpiredToken {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session has expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			}
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyIsCoach, claims.IsCoach)

		c.Next()
	}
}

// OptionalSession sets user info in context when a valid session is present
// but never rejects the request. Used by public routes that behave
// differently for signed-in users.
func OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := tokenFromRequest(c); tokenString != "" {
			if claims, err := ValidateToken(tokenString); err == nil {
				c.Set(ContextKeyUserID, claims.UserID)
				c.Set(ContextKeyEmail, claims.Email)
				c.Set(ContextKeyIsCoach, claims.IsCoach)
			}
		}
		c.Next()
	}
}

// RequireCoach middleware checks that the authenticated user is a coach
func RequireCoach() gin.HandlerFunc {
	return func(c *gin.Context) {
		isCoach, exists := c.Get(ContextKeyIsCoach)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if isCoach != true {
			c.JSON(http.StatusForbidden, gin.H{"error": "Coach access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID returns the user ID from the gin context
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetEmail returns the email from the gin context
func GetEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ContextKeyEmail)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// IsCoach returns the coach role flag from the gin context
func IsCoach(c *gin.Context) bool {
	isCoach, exists := c.Get(ContextKeyIsCoach)
	if !exists {
		return false
	}
	return isCoach.(bool)
}
