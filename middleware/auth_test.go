package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malikdesigner/mobile-sale-store/auth"
)

func signToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"email":   "u1@example.com",
		"role":    role,
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func runMiddleware(mw gin.HandlerFunc, token string) (*httptest.ResponseRecorder, bool) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()

	reached := false
	r := gin.New()
	r.GET("/", mw, func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("role"),
		})
	})

	req := httptest.NewRequest("GET", "/", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	r.ServeHTTP(w, req)
	return w, reached
}

func TestValidateTokenAcceptsServiceJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// Tokens issued by the auth package parse with this middleware.
	w, reached := runMiddleware(ValidateToken, auth.IssueJWT("u1", "u1@example.com", "customer", "U One"))
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
}

func TestValidateTokenRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w, reached := runMiddleware(ValidateToken, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w, reached := runMiddleware(ValidateToken, signToken(t, "customer", time.Now().Add(-time.Hour)))
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "other-secret")

	w, reached := runMiddleware(ValidateToken, signToken(t, "customer", time.Now().Add(time.Hour)))
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireGuestChecksRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w, reached := runMiddleware(RequireGuest, signToken(t, "guest", time.Now().Add(time.Hour)))
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, w.Code)

	w, reached = runMiddleware(RequireGuest, signToken(t, "customer", time.Now().Add(time.Hour)))
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
