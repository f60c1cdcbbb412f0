package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/auth"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		// Google sign-in; optionally merges a guest cart when the
		// request asks for it.
		authGroup.POST("/google-user", auth.LoginUser(db))

		// Anonymous browsing session
		authGroup.POST("/guest", auth.CreateGuestUser(db))
	}
}
