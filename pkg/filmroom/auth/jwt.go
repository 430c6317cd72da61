package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims represents the session token claims
type Claims struct {
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	IsCoach bool   `json:"is_coach"`
	jwt.RegisteredClaims
}

// getSessionSecret returns the signing secret from environment or a default for development
func getSessionSecret() []byte {
	secret := os.Getenv("FILMROOM_SESSION_SECRET")
	if secret == "" {
		// Default for development only - should be set in production
		secret = "filmroom-dev-secret-change-in-production"
	}
	return []byte(secret)
}

// getSessionDuration returns the session validity duration
func getSessionDuration() time.Duration {
	// Default to 24 hours
	return 24 * time.Hour
}

// GenerateToken creates a new session token for a user
func GenerateToken(userID uint, email string, isCoach bool) (string, error) {
	claims := &Claims{
		UserID:  userID,
		Email:   email,
		IsCoach: isCoach,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(getSessionDuration())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "filmroom",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSessionSecret())
}

// ValidateToken validates a session token and returns the claims
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return getSessionSecret(), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
