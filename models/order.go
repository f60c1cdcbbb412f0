package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by seller
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

// ShippingInfo is the checkout form. All fields except Country are
// required before an order is written.
type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// OrderTotals is the checkout breakdown: free shipping over $100,
// otherwise $9.99, plus 8% tax on the subtotal.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Order is the checkout record. Payment is a stub: the record carries the
// chosen method and a pending status, nothing is charged here.
type Order struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	OrderNumber   string       `gorm:"uniqueIndex" json:"orderNumber"`
	UserID        string       `gorm:"index" json:"userId"`
	UserEmail     string       `json:"userEmail"`
	Items         []CartLine   `gorm:"serializer:json" json:"items"`
	Shipping      ShippingInfo `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingInfo"`
	PaymentMethod string       `json:"paymentMethod"`
	Totals        OrderTotals  `gorm:"embedded" json:"totals"`
	Status        OrderStatus  `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
}
