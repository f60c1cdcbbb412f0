package orderControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/malikdesigner/mobile-sale-store/models"
)

func TestCalculateTotals(t *testing.T) {
	// Under the free-shipping threshold: flat rate applies.
	totals := calculateTotals(50)
	assert.Equal(t, 50.0, totals.Subtotal)
	assert.Equal(t, 9.99, totals.Shipping)
	assert.InDelta(t, 4.0, totals.Tax, 0.001)
	assert.InDelta(t, 63.99, totals.Total, 0.001)

	// Over the threshold: shipping is free.
	totals = calculateTotals(150)
	assert.Equal(t, 0.0, totals.Shipping)
	assert.InDelta(t, 12.0, totals.Tax, 0.001)
	assert.InDelta(t, 162.0, totals.Total, 0.001)

	// Exactly at the threshold still pays shipping.
	totals = calculateTotals(100)
	assert.Equal(t, 9.99, totals.Shipping)
}

func TestValidShipping(t *testing.T) {
	full := models.ShippingInfo{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "555-0100",
		Address: "1 Main St",
		City:    "Springfield",
		ZipCode: "12345",
	}
	assert.True(t, validShipping(full))

	missing := full
	missing.ZipCode = ""
	assert.False(t, validShipping(missing))
}
