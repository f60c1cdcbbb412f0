package store

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// KVEntry is one row of the local persistent cache. Guest cart blobs are
// the only tenant today; UpdatedAt drives the purge job.
type KVEntry struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// KV is the local persistent cache capability: getItem/setItem/removeItem
// over string keys and values. Namespace scopes keys, so each guest gets
// an isolated view while sharing one table.
type KV struct {
	db        *gorm.DB
	namespace string
}

func NewKV(db *gorm.DB) *KV {
	return &KV{db: db}
}

// Scoped returns a view of the cache whose keys are prefixed with the
// given namespace (a guest id).
func (s *KV) Scoped(namespace string) *KV {
	return &KV{db: s.db, namespace: namespace}
}

func (s *KV) rowKey(key string) string {
	if s.namespace == "" {
		return key
	}
	return s.namespace + "/" + key
}

func (s *KV) GetItem(ctx context.Context, key string) (string, bool, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", s.rowKey(key)).Error
	if err == gorm.ErrRecordNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *KV) SetItem(ctx context.Context, key, value string) error {
	entry := KVEntry{Key: s.rowKey(key), Value: value}
	return s.db.WithContext(ctx).Save(&entry).Error
}

func (s *KV) RemoveItem(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&KVEntry{}, "key = ?", s.rowKey(key)).Error
}

// PurgeExpired deletes entries untouched for longer than maxAge. The cart
// engine already drops expired blobs lazily on load; this keeps the table
// from accumulating carts nobody ever loads again.
func (s *KV) PurgeExpired(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	result := s.db.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Delete(&KVEntry{})
	return result.RowsAffected, result.Error
}
