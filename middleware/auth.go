package middleware

import (
	"errors"
	"net/http"
	"os"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// ValidateToken checks the service JWT and exposes its identity claims on
// the context (user_id, email, role).
func ValidateToken(c *gin.Context) {
	if !parseClaims(c) {
		return
	}
	c.Next()
}

// RequireGuest only passes tokens issued for guest sessions.
func RequireGuest(c *gin.Context) {
	if !parseClaims(c) {
		return
	}
	if role, _ := c.Get("role"); role != "guest" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Guest token required"})
		c.Abort()
		return
	}
	c.Next()
}

// parseClaims validates the Authorization header and sets the identity
// claims on the context. Aborts (and reports false) on any failure.
func parseClaims(c *gin.Context) bool {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return false
	}

	c.Set("user_id", claims["user_id"])
	if email, ok := claims["email"].(string); ok {
		c.Set("email", email)
	}
	if role, ok := claims["role"].(string); ok {
		c.Set("role", role)
	}
	return true
}
