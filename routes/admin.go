package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/malikdesigner/mobile-sale-store/controllers/cart"
	orderControllers "github.com/malikdesigner/mobile-sale-store/controllers/order"
	productcontroller "github.com/malikdesigner/mobile-sale-store/controllers/product"

	"github.com/malikdesigner/mobile-sale-store/middleware"
	"github.com/malikdesigner/mobile-sale-store/store"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, products *store.ProductStore) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Catalog Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(products))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(products))
		}

		// ─────────── Order Management ───────────
		adminGroup.GET("/orders", orderControllers.GetAllOrders(db))

		// ─────────── Cart Inspection ───────────
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(db))
		}

		// ─────────── Guest Cart Maintenance ───────────
		adminGroup.POST("/guest-carts/purge", cartControllers.PurgeGuestCarts(db))
	}
}
