package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/cart"
	"github.com/malikdesigner/mobile-sale-store/store"
)

// POST /admin/guest-carts/purge
// Manual trigger for the sweep the hourly cron job runs: drops every
// cache entry untouched for longer than the guest cart TTL.
func PurgeGuestCarts(db *gorm.DB) gin.HandlerFunc {
	kv := store.NewKV(db)
	return func(c *gin.Context) {
		purged, err := kv.PurgeExpired(c.Request.Context(), cart.GuestCartTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purge guest carts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Purge completed", "purged_count": purged})
	}
}
