package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/cart"
	"github.com/malikdesigner/mobile-sale-store/store"
)

// guestEngine builds a cart engine over the caller's slice of the local
// persistent cache. Guest identity comes from the guest JWT.
func guestEngine(db *gorm.DB, guestID string) (*cart.Engine, *store.ProductStore) {
	products := store.NewProductStore(db, nil)
	cache := store.NewKV(db).Scoped(guestID)
	return cart.NewEngine(products, nil, cache), products
}

func guestID(c *gin.Context) (string, bool) {
	idVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, _ := idVal.(string)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

// GET /guest/cart
func GetGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := guestID(c)
		if !ok {
			return
		}

		engine, _ := guestEngine(db, id)
		lines, err := engine.Load(c.Request.Context(), nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": lines, "total": engine.Total()})
	}
}

// POST /guest/cart
func UpdateGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := guestID(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		engine, products := guestEngine(db, id)
		if _, err := engine.Load(c.Request.Context(), nil); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		existing := false
		for _, line := range engine.Lines() {
			if line.ProductID == input.ProductID {
				existing = true
				break
			}
		}

		var err error
		if existing {
			err = engine.SetQuantity(c.Request.Context(), input.ProductID, input.Quantity)
		} else {
			// Guest lines carry a denormalized product copy, taken now.
			product, getErr := products.Get(c.Request.Context(), input.ProductID)
			if getErr != nil {
				status := http.StatusInternalServerError
				errMsg := "Failed to validate product"
				if getErr == gorm.ErrRecordNotFound {
					status = http.StatusBadRequest
					errMsg = "Product does not exist"
				}
				c.JSON(status, gin.H{"error": errMsg})
				return
			}
			err = engine.Add(c.Request.Context(), *product, input.Quantity)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": engine.Lines(), "total": engine.Total()})
	}
}

// DELETE /guest/cart/:product_id
func DeleteGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := guestID(c)
		if !ok {
			return
		}
		productID := c.Param("product_id")

		engine, _ := guestEngine(db, id)
		if _, err := engine.Load(c.Request.Context(), nil); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		before := engine.Count()
		if err := engine.Remove(c.Request.Context(), productID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if engine.Count() == before {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Guest cart item deleted"})
	}
}

// DELETE /guest/cart
func ClearGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := guestID(c)
		if !ok {
			return
		}

		engine, _ := guestEngine(db, id)
		if _, err := engine.Load(c.Request.Context(), nil); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		if err := engine.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Guest cart cleared"})
	}
}
