package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malikdesigner/mobile-sale-store/models"
)

func seedUser(t *testing.T, users *UserStore, id string) {
	t.Helper()
	require.NoError(t, users.Upsert(context.Background(), &models.User{
		ID:    id,
		Email: id + "@example.com",
		Name:  "User " + id,
	}))
}

func TestUpsertCreatesThenRefreshes(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(testDB(t))

	first := &models.User{ID: "u1", Email: "u1@example.com", Name: "Original"}
	require.NoError(t, users.Upsert(ctx, first))
	assert.Equal(t, models.RoleCustomer, first.Role)

	// A later login refreshes the profile but keeps the role.
	again := &models.User{ID: "u1", Email: "u1@example.com", Name: "Renamed", Picture: "pic.png"}
	require.NoError(t, users.Upsert(ctx, again))

	stored, err := users.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, "pic.png", stored.Picture)
	assert.Equal(t, models.RoleCustomer, stored.Role)
}

func TestCartRoundTrip(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(testDB(t))
	seedUser(t, users, "u1")

	lines, err := users.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)

	require.NoError(t, users.SetCart(ctx, "u1", []models.CartLine{
		{ProductID: "a", Quantity: 2},
	}))

	lines, err = users.GetCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "a", lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddCartLineUnionSemantics(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(testDB(t))
	seedUser(t, users, "u1")

	require.NoError(t, users.AddCartLine(ctx, "u1", "a", 1))
	require.NoError(t, users.AddCartLine(ctx, "u1", "a", 2))
	require.NoError(t, users.AddCartLine(ctx, "u1", "b", 1))

	lines, err := users.GetCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestWishlistUnionAndRemove(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(testDB(t))
	seedUser(t, users, "u1")

	require.NoError(t, users.AddWishlist(ctx, "u1", "a"))
	require.NoError(t, users.AddWishlist(ctx, "u1", "b"))

	// Re-adding an existing id is a no-op, not a duplicate.
	require.NoError(t, users.AddWishlist(ctx, "u1", "a"))

	ids, err := users.Wishlist(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	require.NoError(t, users.RemoveWishlist(ctx, "u1", "a"))
	ids, err = users.Wishlist(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(testDB(t))
	seedUser(t, users, "u1")

	require.NoError(t, users.UpdateProfile(ctx, "u1", "New Name", "555-0100", "1 Main St"))

	stored, err := users.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "New Name", stored.Name)
	assert.Equal(t, "555-0100", stored.Phone)
	assert.Equal(t, "1 Main St", stored.Address)
}
