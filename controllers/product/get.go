package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/store"
)

// GET /products/:id
func GetProductByID(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product":          product,
			"discount_percent": product.DiscountPercent(),
		})
	}
}
