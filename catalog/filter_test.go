package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/malikdesigner/mobile-sale-store/models"
)

func sampleProduct() models.Product {
	return models.Product{
		ID:              "p1",
		Brand:           "Apple",
		Name:            "iPhone 13 Pro",
		Model:           "iPhone 13 Pro Max",
		Description:     "Great condition flagship",
		Price:           899,
		Condition:       "Used",
		Category:        "Smartphone",
		Color:           "Sierra Blue",
		Storage:         "256GB",
		RAM:             "6GB",
		OperatingSystem: "iOS",
		Rating:          4.5,
		Featured:        true,
		InStock:         true,
	}
}

func TestDefaultFiltersMatchEverything(t *testing.T) {
	f := DefaultFilters()
	assert.Equal(t, 0, f.ActiveCount())
	assert.True(t, f.Matches(sampleProduct(), ""))
	assert.True(t, f.Matches(models.Product{}, ""))
}

func TestActiveCountPerDimension(t *testing.T) {
	f := DefaultFilters()
	f.Brands = []string{"Apple", "Samsung"}
	f.Rating = 4
	f.Featured = true
	f.InStock = true
	f.PriceRange.Max = 1500
	assert.Equal(t, 6, f.ActiveCount())
}

func TestActiveCountIgnoresCeilingMax(t *testing.T) {
	f := DefaultFilters()
	f.PriceRange.Max = PriceCeiling
	assert.Equal(t, 0, f.ActiveCount())

	f.PriceRange.Min = 100
	assert.Equal(t, 1, f.ActiveCount())
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	f := DefaultFilters()
	p := sampleProduct()

	assert.True(t, f.Matches(p, "iphone"))
	assert.True(t, f.Matches(p, "APPLE"))
	assert.True(t, f.Matches(p, "flagship"))
	assert.True(t, f.Matches(p, "ios"))
	assert.False(t, f.Matches(p, "pixel"))
}

func TestBrandMatchIsExact(t *testing.T) {
	f := DefaultFilters()
	f.Brands = []string{"App"}
	assert.False(t, f.Matches(sampleProduct(), ""))

	f.Brands = []string{"Apple"}
	assert.True(t, f.Matches(sampleProduct(), ""))
}

func TestModelAndColorMatchBySubstring(t *testing.T) {
	f := DefaultFilters()
	f.Models = []string{"13 pro"}
	assert.True(t, f.Matches(sampleProduct(), ""))

	f = DefaultFilters()
	f.Colors = []string{"blue"}
	assert.True(t, f.Matches(sampleProduct(), ""))

	// A product missing the field can never satisfy a substring filter.
	p := sampleProduct()
	p.Color = ""
	assert.False(t, f.Matches(p, ""))
}

func TestPriceRangeBounds(t *testing.T) {
	f := DefaultFilters()
	f.PriceRange = PriceRange{Min: 500, Max: 1000}
	assert.True(t, f.Matches(sampleProduct(), ""))

	f.PriceRange = PriceRange{Min: 900, Max: 1000}
	assert.False(t, f.Matches(sampleProduct(), ""))

	// Max at the ceiling is open-ended.
	p := sampleProduct()
	p.Price = 5000
	f = DefaultFilters()
	assert.True(t, f.Matches(p, ""))
}

func TestRatingIsAFloor(t *testing.T) {
	f := DefaultFilters()
	f.Rating = 4

	p := sampleProduct()
	assert.True(t, f.Matches(p, ""))

	p.Rating = 3.9
	assert.False(t, f.Matches(p, ""))
}

func TestFeaturedAndInStockToggles(t *testing.T) {
	f := DefaultFilters()
	f.Featured = true
	f.InStock = true

	p := sampleProduct()
	assert.True(t, f.Matches(p, ""))

	p.InStock = false
	assert.False(t, f.Matches(p, ""))

	p.InStock = true
	p.Featured = false
	assert.False(t, f.Matches(p, ""))
}

func TestClausesAreANDed(t *testing.T) {
	f := DefaultFilters()
	f.Brands = []string{"Apple"}
	f.Storages = []string{"512GB"}

	// Brand matches but storage does not.
	assert.False(t, f.Matches(sampleProduct(), ""))
}
