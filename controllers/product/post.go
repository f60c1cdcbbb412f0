package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/malikdesigner/mobile-sale-store/models"
	"github.com/malikdesigner/mobile-sale-store/store"
)

// ProductInput mirrors the listing form. Prices arrive as strings so a
// non-numeric value is a validation error before anything is written.
type ProductInput struct {
	Brand           string `json:"brand"`
	Name            string `json:"name"`
	Model           string `json:"model"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	OriginalPrice   string `json:"originalPrice"`
	Condition       string `json:"condition"`
	Category        string `json:"category"`
	Color           string `json:"color"`
	Storage         string `json:"storage"`
	RAM             string `json:"ram"`
	OperatingSystem string `json:"operatingSystem"`
	ScreenSize      string `json:"screenSize"`
	BatteryCapacity string `json:"batteryCapacity"`
	CameraMegapixel string `json:"cameraMegapixel"`
	Image           string `json:"image"`
	Featured        bool   `json:"featured"`
	InStock         *bool  `json:"inStock"`
}

var (
	errRequired             = errors.New("brand, name and price are required")
	errInvalidPrice         = errors.New("Invalid price")
	errInvalidOriginalPrice = errors.New("Invalid originalPrice")
	errInvalidCondition     = errors.New("Invalid condition")
	errInvalidCategory      = errors.New("Invalid category")
)

var validConditions = map[string]bool{
	models.ConditionNew: true, models.ConditionLikeNew: true,
	models.ConditionGood: true, models.ConditionFair: true,
}

var validCategories = map[string]bool{
	models.CategorySmartphone: true, models.CategoryTablet: true,
	models.CategorySmartwatch: true, models.CategoryEarbuds: true,
	models.CategoryAccessories: true,
}

// CreateProduct lists a new device for the signed-in seller.
func CreateProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		email := c.GetString("email")
		role := c.GetString("role")

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := productFromInput(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		product.SellerID = userID
		product.SellerEmail = email
		product.SellerRole = role

		if err := products.Create(c.Request.Context(), product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// productFromInput validates the form and builds the record. Nothing is
// written when validation fails.
func productFromInput(input ProductInput) (*models.Product, error) {
	if input.Brand == "" || input.Name == "" || input.Price == "" {
		return nil, errRequired
	}

	price, err := strconv.ParseFloat(input.Price, 64)
	if err != nil || price <= 0 {
		return nil, errInvalidPrice
	}

	originalPrice := price
	if input.OriginalPrice != "" {
		op, err := strconv.ParseFloat(input.OriginalPrice, 64)
		if err != nil || op < 0 {
			return nil, errInvalidOriginalPrice
		}
		// A discount only exists when originalPrice exceeds price.
		if op > price {
			originalPrice = op
		}
	}

	if input.Condition != "" && !validConditions[input.Condition] {
		return nil, errInvalidCondition
	}
	if input.Category != "" && !validCategories[input.Category] {
		return nil, errInvalidCategory
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	return &models.Product{
		Brand:           input.Brand,
		Name:            input.Name,
		Model:           input.Model,
		Description:     input.Description,
		Price:           price,
		OriginalPrice:   originalPrice,
		Condition:       input.Condition,
		Category:        input.Category,
		Color:           input.Color,
		Storage:         input.Storage,
		RAM:             input.RAM,
		OperatingSystem: input.OperatingSystem,
		ScreenSize:      input.ScreenSize,
		BatteryCapacity: input.BatteryCapacity,
		CameraMegapixel: input.CameraMegapixel,
		Image:           input.Image,
		Featured:        input.Featured,
		InStock:         inStock,
		IsActive:        true,
	}, nil
}
