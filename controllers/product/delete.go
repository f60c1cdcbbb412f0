package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/store"
)

// DeleteProduct removes a listing. Owner or admin only.
func DeleteProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		role := c.GetString("role")

		product, err := products.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		if !product.EditableBy(userID, role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own devices"})
			return
		}

		if err := products.Delete(c.Request.Context(), product.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Device removed successfully"})
	}
}
