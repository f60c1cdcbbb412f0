package models

import "time"

// User roles
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is the account document. Cart and Wishlist live on the user record
// as JSON arrays, the same shape the storefront keeps in its user
// document: cart lines hold productId+quantity only, wishlist holds
// product ids.
type User struct {
	ID       string     `gorm:"primaryKey" json:"id"`
	Email    string     `gorm:"unique;not null" json:"email"`
	Name     string     `json:"name"`
	Phone    string     `json:"phone"`
	Address  string     `json:"address"`
	Picture  string     `json:"picture"`
	Provider string     `json:"provider"`
	Role     string     `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	Cart     []CartLine `gorm:"serializer:json" json:"cart"`
	Wishlist []string   `gorm:"serializer:json" json:"wishlist"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GuestUser tracks an issued guest session so its cart blob can be purged
// after the session lapses.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
