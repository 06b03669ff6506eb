package repository

import (
	"context"
	"errors"

	"github.com/timmy/quotebg/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchCacheRepository handles match cache entries keyed by content hash.
//
// The cache is additive and idempotent by hash: two concurrent requests for
// the same uncached text may both compute and write the same entry, which is
// harmless because the value is a deterministic function of the text.
type MatchCacheRepository struct {
	db *gorm.DB
}

// NewMatchCacheRepository creates a new MatchCacheRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *MatchCacheRepository: repository instance bound to db.
func NewMatchCacheRepository(db *gorm.DB) *MatchCacheRepository {
	return &MatchCacheRepository{db: db}
}

// Get retrieves the cached image ID list for a content hash.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - contentHash: cache key produced by the content hasher.
// Returns:
//   - []string: cached image IDs, or nil when no entry exists.
//   - error: non-nil only for real lookup failures; a missing entry is not
//     an error.
func (r *MatchCacheRepository) Get(ctx context.Context, contentHash string) ([]string, error) {
	var entry domain.MatchCacheEntry
	err := r.db.WithContext(ctx).First(&entry, "content_hash = ?", contentHash).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entry.MatchedImageIDs, nil
}

// Put inserts a cache entry. Entries are write-once: a second put for the
// same hash is a no-op, never an error.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - contentHash: cache key.
//   - category: content category the entry was computed for.
//   - imageIDs: matched image IDs to cache.
// Returns:
//   - error: non-nil if the insert fails.
func (r *MatchCacheRepository) Put(ctx context.Context, contentHash, category string, imageIDs []string) error {
	entry := domain.MatchCacheEntry{
		ContentHash:     contentHash,
		Category:        category,
		MatchedImageIDs: domain.StringArray(imageIDs),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "content_hash"}},
		DoNothing: true,
	}).Create(&entry).Error
}

// Count returns the number of cache entries.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - int64: number of entries.
//   - error: non-nil if the query fails.
func (r *MatchCacheRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.MatchCacheEntry{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Clear removes every cache entry. The cache has no TTL, so this is the only
// invalidation path.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - int64: number of entries removed.
//   - error: non-nil if the delete fails.
func (r *MatchCacheRepository) Clear(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.MatchCacheEntry{})
	return result.RowsAffected, result.Error
}
