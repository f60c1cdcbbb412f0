package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/malikdesigner/mobile-sale-store/controllers/cart"
	"github.com/malikdesigner/mobile-sale-store/middleware"
)

// SetupGuestRoutes registers all “/guest/*” endpoints. Requires a
// guest-role JWT; the cart lives in the key-value cache, not on a user
// record, and expires three hours after its last change.
func SetupGuestRoutes(r *gin.Engine, db *gorm.DB) {
	guestGroup := r.Group("/guest")
	guestGroup.Use(middleware.RequireGuest)
	{
		cartGroup := guestGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetGuestCart(db))
			cartGroup.POST("/", cartControllers.UpdateGuestCartItem(db))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteGuestCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearGuestCart(db))
		}
	}
}
