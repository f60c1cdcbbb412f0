package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/models"
)

// UserStore is the users collection. Cart and wishlist live as arrays on
// the user record; AddCartLine and AddWishlist give them array-union
// semantics with the uniqueness check the backend primitive itself does
// not enforce.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert creates the user on first login and refreshes profile fields on
// later ones.
func (s *UserStore) Upsert(ctx context.Context, user *models.User) error {
	var existing models.User
	err := s.db.WithContext(ctx).First(&existing, "id = ?", user.ID).Error
	if err == gorm.ErrRecordNotFound {
		if user.Role == "" {
			user.Role = models.RoleCustomer
		}
		return s.db.WithContext(ctx).Create(user).Error
	}
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Model(&existing).Updates(models.User{
		Name:    user.Name,
		Picture: user.Picture,
	}).Error; err != nil {
		return err
	}
	*user = existing
	return nil
}

// UpdateProfile applies the editable profile fields.
func (s *UserStore) UpdateProfile(ctx context.Context, id string, name, phone, address string) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "phone": phone, "address": address}).Error
}

// GetCart reads the cart array off the user record.
func (s *UserStore) GetCart(ctx context.Context, userID string) ([]models.CartLine, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}

// SetCart overwrites the cart array. Last write wins across devices.
func (s *UserStore) SetCart(ctx context.Context, userID string, lines []models.CartLine) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("cart", lines).Error
}

// AddCartLine is the array-union add: an existing line for the product
// gets its quantity bumped instead of a duplicate entry.
func (s *UserStore) AddCartLine(ctx context.Context, userID string, productID string, quantity int) error {
	lines, err := s.GetCart(ctx, userID)
	if err != nil {
		return err
	}
	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += quantity
			lines[i].AddedAt = time.Now()
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, models.CartLine{
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		})
	}
	return s.SetCart(ctx, userID, lines)
}

// Wishlist returns the saved product ids.
func (s *UserStore) Wishlist(ctx context.Context, userID string) ([]string, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Wishlist, nil
}

// AddWishlist is array-union: adding an id already present is a no-op.
func (s *UserStore) AddWishlist(ctx context.Context, userID, productID string) error {
	ids, err := s.Wishlist(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == productID {
			return nil
		}
	}
	ids = append(ids, productID)
	return s.setWishlist(ctx, userID, ids)
}

// RemoveWishlist is array-remove.
func (s *UserStore) RemoveWishlist(ctx context.Context, userID, productID string) error {
	ids, err := s.Wishlist(ctx, userID)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != productID {
			kept = append(kept, id)
		}
	}
	return s.setWishlist(ctx, userID, kept)
}

func (s *UserStore) setWishlist(ctx context.Context, userID string, ids []string) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("wishlist", ids).Error
}
