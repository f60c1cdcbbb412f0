package wishlistControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/models"
	"github.com/malikdesigner/mobile-sale-store/store"
)

// GET /user/wishlist — saved ids joined against the product set; ids
// whose product no longer resolves are dropped from the response.
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	users := store.NewUserStore(db)
	products := store.NewProductStore(db, nil)
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		ids, err := users.Wishlist(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		resolved, err := products.ByIDs(c.Request.Context(), ids)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist products"})
			return
		}

		items := make([]models.Product, 0, len(ids))
		for _, id := range ids {
			if p, ok := resolved[id]; ok {
				items = append(items, p)
			}
		}
		c.JSON(http.StatusOK, items)
	}
}

type wishlistInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// POST /user/wishlist — array-union add.
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	users := store.NewUserStore(db)
	products := store.NewProductStore(db, nil)
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input wishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if _, err := products.Get(c.Request.Context(), input.ProductID); err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		if err := users.AddWishlist(c.Request.Context(), userID, input.ProductID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist"})
	}
}

// DELETE /user/wishlist/:product_id — array-remove.
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	users := store.NewUserStore(db)
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		if err := users.RemoveWishlist(c.Request.Context(), userID, c.Param("product_id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}
