package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/cart"
	"github.com/malikdesigner/mobile-sale-store/session"
	"github.com/malikdesigner/mobile-sale-store/store"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

func userEngine(db *gorm.DB) (*cart.Engine, *store.ProductStore) {
	products := store.NewProductStore(db, nil)
	users := store.NewUserStore(db)
	return cart.NewEngine(products, users, nil), products
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		engine, _ := userEngine(db)
		lines, err := engine.Load(c.Request.Context(), &session.Identity{ID: userID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": lines, "total": engine.Total()})
	}
}

// POST /user/cart
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		engine, products := userEngine(db)
		if _, err := engine.Load(c.Request.Context(), &session.Identity{ID: userID}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		// Existing line: overwrite the quantity. New line: validate the
		// product and add it.
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": engine.Lines(), "total": engine.Total()})
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		productID := c.Param("product_id")

		engine, _ := userEngine(db)
		if _, err := engine.Load(c.Request.Context(), &session.Identity{ID: userID}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
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

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		engine, _ := userEngine(db)
		if _, err := engine.Load(c.Request.Context(), &session.Identity{ID: userID}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if err := engine.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		engine, _ := userEngine(db)
		lines, err := engine.Load(c.Request.Context(), &session.Identity{ID: userID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": lines, "total": engine.Total()})
	}
}
