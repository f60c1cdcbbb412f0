package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/store"
)

// UpdateProduct edits a listing. Only the owning seller or an admin may
// touch it.
func UpdateProduct(products *store.ProductStore) gin.HandlerFunc {
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
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own devices"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updated, err := productFromInput(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Identity and ownership survive the edit.
		updated.ID = product.ID
		updated.SellerID = product.SellerID
		updated.SellerEmail = product.SellerEmail
		updated.SellerRole = product.SellerRole
		updated.Rating = product.Rating
		updated.CreatedAt = product.CreatedAt

		if err := products.Update(c.Request.Context(), updated); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}
