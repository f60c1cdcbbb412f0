package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/catalog"
	"github.com/malikdesigner/mobile-sale-store/store"
)

// SetupRoutes is the single entry‐point that wires up Auth, Public,
// User, Guest, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, engine *catalog.Engine, products *store.ProductStore, feed *store.ProductFeed) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Public catalog routes (no middleware)
	SetupProductRoutes(r, engine, products, feed)

	// 3️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, db, products)

	// 4️⃣ Guest routes (guest‐JWT‐protected)
	SetupGuestRoutes(r, db)

	// 5️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, db, products)

	// order routes
	SetupOrderRoutes(r, db)
}
