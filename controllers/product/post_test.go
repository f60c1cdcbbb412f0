package productcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malikdesigner/mobile-sale-store/models"
)

func TestProductFromInputValid(t *testing.T) {
	product, err := productFromInput(ProductInput{
		Brand:     "Apple",
		Name:      "iPhone 13",
		Price:     "899.99",
		Condition: models.ConditionGood,
		Category:  models.CategorySmartphone,
	})
	require.NoError(t, err)
	assert.Equal(t, 899.99, product.Price)
	assert.True(t, product.InStock)
	assert.True(t, product.IsActive)
}

func TestProductFromInputRequiredFields(t *testing.T) {
	_, err := productFromInput(ProductInput{Brand: "Apple", Price: "899"})
	assert.ErrorIs(t, err, errRequired)

	_, err = productFromInput(ProductInput{Brand: "Apple", Name: "iPhone"})
	assert.ErrorIs(t, err, errRequired)
}

func TestProductFromInputPriceValidation(t *testing.T) {
	_, err := productFromInput(ProductInput{Brand: "Apple", Name: "iPhone", Price: "abc"})
	assert.ErrorIs(t, err, errInvalidPrice)

	_, err = productFromInput(ProductInput{Brand: "Apple", Name: "iPhone", Price: "0"})
	assert.ErrorIs(t, err, errInvalidPrice)

	_, err = productFromInput(ProductInput{Brand: "Apple", Name: "iPhone", Price: "899", OriginalPrice: "abc"})
	assert.ErrorIs(t, err, errInvalidOriginalPrice)
}

func TestProductFromInputDiscountRule(t *testing.T) {
	// A higher original price is kept and yields a discount.
	product, err := productFromInput(ProductInput{Brand: "Apple", Name: "iPhone", Price: "500", OriginalPrice: "1000"})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, product.OriginalPrice)
	assert.Equal(t, 50, product.DiscountPercent())

	// A lower one is ignored rather than rejected.
	product, err = productFromInput(ProductInput{Brand: "Apple", Name: "iPhone", Price: "500", OriginalPrice: "400"})
	require.NoError(t, err)
	assert.Equal(t, 500.0, product.OriginalPrice)
	assert.Equal(t, 0, product.DiscountPercent())
}

func TestProductFromInputEnumChecks(t *testing.T) {
	_, err := productFromInput(ProductInput{Brand: "Apple", Name: "iPhone", Price: "899", Condition: "mint"})
	assert.ErrorIs(t, err, errInvalidCondition)

	_, err = productFromInput(ProductInput{Brand: "Apple", Name: "iPhone", Price: "899", Category: "drone"})
	assert.ErrorIs(t, err, errInvalidCategory)
}

func TestProductFromInputStockFlag(t *testing.T) {
	out := false
	product, err := productFromInput(ProductInput{Brand: "Apple", Name: "iPhone", Price: "899", InStock: &out})
	require.NoError(t, err)
	assert.False(t, product.InStock)
}
