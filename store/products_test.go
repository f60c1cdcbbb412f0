package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/models"
)

func TestCreateAssignsID(t *testing.T) {
	ctx := context.Background()
	products := NewProductStore(testDB(t), nil)

	p := &models.Product{Brand: "Apple", Name: "iPhone 13", Price: 899, IsActive: true}
	require.NoError(t, products.Create(ctx, p))
	assert.NotEmpty(t, p.ID)

	stored, err := products.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 13", stored.Name)
}

func TestAllReturnsOnlyActive(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	products := NewProductStore(db, nil)

	require.NoError(t, products.Create(ctx, &models.Product{Brand: "Apple", Name: "Visible", Price: 1, IsActive: true}))

	hidden := &models.Product{Brand: "Apple", Name: "Hidden", Price: 1, IsActive: true}
	require.NoError(t, products.Create(ctx, hidden))
	hidden.IsActive = false
	require.NoError(t, products.Update(ctx, hidden))

	all, err := products.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Visible", all[0].Name)
}

func TestByIDsSkipsMissing(t *testing.T) {
	ctx := context.Background()
	products := NewProductStore(testDB(t), nil)

	p := &models.Product{Brand: "Apple", Name: "iPhone 13", Price: 899, IsActive: true}
	require.NoError(t, products.Create(ctx, p))

	byID, err := products.ByIDs(ctx, []string{p.ID, "missing"})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	_, ok := byID["missing"]
	assert.False(t, ok)

	empty, err := products.ByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDeleteIsSoftAndChecked(t *testing.T) {
	ctx := context.Background()
	products := NewProductStore(testDB(t), nil)

	p := &models.Product{Brand: "Apple", Name: "iPhone 13", Price: 899, IsActive: true}
	require.NoError(t, products.Create(ctx, p))

	require.NoError(t, products.Delete(ctx, p.ID))
	_, err := products.Get(ctx, p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting an unknown id reports not-found instead of succeeding.
	assert.ErrorIs(t, products.Delete(ctx, "missing"), gorm.ErrRecordNotFound)
}

func TestMutationsPublishSnapshot(t *testing.T) {
	ctx := context.Background()
	feed := NewProductFeed()
	products := NewProductStore(testDB(t), feed)

	var got []models.Product
	unsubscribe := feed.Subscribe(func(snapshot []models.Product) { got = snapshot })
	defer unsubscribe()

	p := &models.Product{Brand: "Apple", Name: "iPhone 13", Price: 899, IsActive: true}
	require.NoError(t, products.Create(ctx, p))
	require.Len(t, got, 1)

	p.Price = 799
	require.NoError(t, products.Update(ctx, p))
	assert.Equal(t, 799.0, got[0].Price)

	require.NoError(t, products.Delete(ctx, p.ID))
	assert.Empty(t, got)
}
