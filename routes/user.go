package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/malikdesigner/mobile-sale-store/controllers/cart"
	productcontroller "github.com/malikdesigner/mobile-sale-store/controllers/product"
	userControllers "github.com/malikdesigner/mobile-sale-store/controllers/user"
	wishlistControllers "github.com/malikdesigner/mobile-sale-store/controllers/wishlist"

	"github.com/malikdesigner/mobile-sale-store/middleware"
	"github.com/malikdesigner/mobile-sale-store/store"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, products *store.ProductStore) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))                  // GET /user/cart
			cartGroup.POST("/", cartControllers.UpdateCartItem(db))              // POST /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))             // DELETE /user/cart
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(db))
			wishlistGroup.POST("/", wishlistControllers.AddToWishlist(db))
			wishlistGroup.DELETE("/:product_id", wishlistControllers.RemoveFromWishlist(db))
		}

		// ──────────────── Sell Devices ────────────────
		// Any signed-in user may list a device; edits and removals are
		// guarded per-listing (owner or admin).
		listingGroup := userGroup.Group("/products")
		{
			listingGroup.POST("", productcontroller.CreateProduct(products))
			listingGroup.PUT("/:id", productcontroller.UpdateProduct(products))
			listingGroup.DELETE("/:id", productcontroller.DeleteProduct(products))
		}
	}
}
