package orderControllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/cart"
	"github.com/malikdesigner/mobile-sale-store/models"
	"github.com/malikdesigner/mobile-sale-store/session"
	"github.com/malikdesigner/mobile-sale-store/store"
)

const (
	freeShippingThreshold = 100
	shippingFlat          = 9.99
	taxRate               = 0.08
)

type checkoutInput struct {
	Shipping      models.ShippingInfo `json:"shippingInfo"`
	PaymentMethod string              `json:"paymentMethod"`
}

// calculateTotals is the checkout breakdown: free shipping over $100,
// flat $9.99 otherwise, 8% tax on the subtotal.
func calculateTotals(subtotal float64) models.OrderTotals {
	shipping := shippingFlat
	if subtotal > freeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * taxRate
	return models.OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

func validShipping(s models.ShippingInfo) bool {
	return s.Name != "" && s.Email != "" && s.Phone != "" &&
		s.Address != "" && s.City != "" && s.ZipCode != ""
}

// Checkout turns the user's cart into an order record. Payment is a
// stub: the order is written with a pending status and the cart is
// cleared; nothing is charged.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input checkoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !validShipping(input.Shipping) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all shipping details"})
			return
		}

		products := store.NewProductStore(db, nil)
		users := store.NewUserStore(db)
		engine := cart.NewEngine(products, users, nil)

		lines, err := engine.Load(c.Request.Context(), &session.Identity{ID: userID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}

		order := models.Order{
			OrderNumber:   fmt.Sprintf("MB%d", time.Now().UnixMilli()),
			UserID:        userID,
			UserEmail:     input.Shipping.Email,
			Items:         lines,
			Shipping:      input.Shipping,
			PaymentMethod: input.PaymentMethod,
			Totals:        calculateTotals(engine.Total()),
			Status:        models.OrderStatusPending,
		}

		if err := db.WithContext(c.Request.Context()).Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process order"})
			return
		}

		// Cart is cleared after the order lands; a failure here leaves
		// the order in place and the error with the caller.
		if err := engine.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order placed but cart was not cleared"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":      "Order placed",
			"order_number": order.OrderNumber,
			"totals":       order.Totals,
		})
	}
}

// GetUserOrders lists the caller's orders, newest first.
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var orders []models.Order
		if err := db.WithContext(c.Request.Context()).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetAllOrders is the admin listing.
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.WithContext(c.Request.Context()).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
