package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/malikdesigner/mobile-sale-store/controllers/order"
	"github.com/malikdesigner/mobile-sale-store/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/user/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Create a new order from the caller's cart
		orders.POST("/", orderControllers.Checkout(db))

		// Fetch the caller's orders
		orders.GET("/", orderControllers.GetUserOrders(db))
	}
}
