package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Product conditions
const (
	ConditionNew     = "new"
	ConditionLikeNew = "like-new"
	ConditionGood    = "good"
	ConditionFair    = "fair"
)

// Product categories
const (
	CategorySmartphone  = "smartphone"
	CategoryTablet      = "tablet"
	CategorySmartwatch  = "smartwatch"
	CategoryEarbuds     = "earbuds"
	CategoryAccessories = "accessories"
)

// Product is a listed device. IDs are store-assigned (uuid). The device
// attribute fields (storage, ram, ...) are free text so facet values come
// from the catalog itself, not a fixed enum.
type Product struct {
	ID              string  `gorm:"primaryKey" json:"id"`
	Brand           string  `gorm:"not null" json:"brand"`
	Name            string  `gorm:"not null" json:"name"`
	Model           string  `json:"model"`
	Description     string  `json:"description"`
	Price           float64 `gorm:"not null" json:"price"`
	OriginalPrice   float64 `json:"originalPrice"`
	Condition       string  `gorm:"type:VARCHAR(20)" json:"condition"`
	Category        string  `gorm:"type:VARCHAR(20);index" json:"category"`
	Color           string  `json:"color"`
	Storage         string  `json:"storage"`
	RAM             string  `json:"ram"`
	OperatingSystem string  `json:"operatingSystem"`
	ScreenSize      string  `json:"screenSize"`
	BatteryCapacity string  `json:"batteryCapacity"`
	CameraMegapixel string  `json:"cameraMegapixel"`
	Image           string  `json:"image"`
	Rating          float64 `gorm:"default:0" json:"rating"`
	Featured        bool    `gorm:"default:false" json:"featured"`
	InStock         bool    `gorm:"default:true" json:"inStock"`
	IsActive        bool    `gorm:"default:true" json:"isActive"`

	// Ownership
	SellerID    string `gorm:"index" json:"sellerId"`
	SellerEmail string `json:"sellerEmail"`
	SellerRole  string `json:"sellerRole"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// DiscountPercent returns the rounded discount against the original
// price, or 0 when no discount applies (originalPrice <= price).
func (p Product) DiscountPercent() int {
	if p.OriginalPrice > p.Price {
		return int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
	}
	return 0
}

// EditableBy reports whether the given user may mutate this listing:
// the owning seller, or an admin.
func (p Product) EditableBy(userID, role string) bool {
	if userID == "" {
		return false
	}
	if role == RoleAdmin {
		return true
	}
	return userID == p.SellerID
}
