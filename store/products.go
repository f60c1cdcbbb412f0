package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/models"
)

// ProductStore is the products collection. Every mutation re-publishes
// the full active snapshot on the feed, the document-store
// live-subscription the storefront watches.
type ProductStore struct {
	db   *gorm.DB
	feed *ProductFeed
}

func NewProductStore(db *gorm.DB, feed *ProductFeed) *ProductStore {
	return &ProductStore{db: db, feed: feed}
}

// All returns the active catalog, newest first (the default sort the
// snapshot is delivered in).
func (s *ProductStore) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// Get fetches one product by id.
func (s *ProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ByIDs is the batch "in" query used to join cart and wishlist lines.
// Missing ids are simply absent from the map.
func (s *ProductStore) ByIDs(ctx context.Context, ids []string) (map[string]models.Product, error) {
	if len(ids) == 0 {
		return map[string]models.Product{}, nil
	}
	var products []models.Product
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

// Create assigns the id and inserts the listing.
func (s *ProductStore) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return err
	}
	s.publish(ctx)
	return nil
}

// Update overwrites the mutable fields of an existing listing.
func (s *ProductStore) Update(ctx context.Context, product *models.Product) error {
	if err := s.db.WithContext(ctx).Save(product).Error; err != nil {
		return err
	}
	s.publish(ctx)
	return nil
}

// Delete removes a listing (soft delete via gorm.DeletedAt).
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	s.publish(ctx)
	return nil
}

func (s *ProductStore) publish(ctx context.Context) {
	if s.feed == nil {
		return
	}
	products, err := s.All(ctx)
	if err != nil {
		return // subscribers keep the previous snapshot
	}
	s.feed.Publish(products)
}
