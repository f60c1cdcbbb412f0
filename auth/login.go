package auth

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/cart"
	"github.com/malikdesigner/mobile-sale-store/models"
	"github.com/malikdesigner/mobile-sale-store/store"
)

var errAudienceMismatch = errors.New("auth: token audience mismatch")

type loginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
	GuestID string `json:"guest_id"`
	// MergeGuestCart opts into folding the guest cart into the account
	// cart. Off by default: logging in does not move items by itself.
	MergeGuestCart bool `json:"merge_guest_cart"`
}

// LoginUser verifies the Firebase ID token, upserts the user record,
// optionally merges the caller's guest cart, and answers with a service
// JWT.
func LoginUser(db *gorm.DB) gin.HandlerFunc {
	users := store.NewUserStore(db)
	kv := store.NewKV(db)

	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		token, err := verifyIDToken(c.Request.Context(), req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Firebase ID token"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)

		user := models.User{
			ID:       token.UID,
			Email:    email,
			Name:     name,
			Picture:  picture,
			Provider: "google",
		}
		if err := users.Upsert(c.Request.Context(), &user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		mergeStatus := "no-guest-cart"
		if req.MergeGuestCart && req.GuestID != "" {
			merged, err := cart.MergeGuestCart(c.Request.Context(), kv.Scoped(req.GuestID), users, user.ID)
			switch {
			case err != nil:
				mergeStatus = "merge-failed"
			case merged:
				mergeStatus = "merged-success"
			default:
				mergeStatus = "guest-cart-empty"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"merge_status": mergeStatus,
			"user":         user,
			"token":        IssueJWT(user.ID, user.Email, user.Role, user.Name),
		})
	}
}

// IssueJWT signs the 24h service token carried on /user routes.
func IssueJWT(userID, email, role, name string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		log.Printf("❌ Failed to sign JWT: %v", err)
		return ""
	}
	return signed
}
