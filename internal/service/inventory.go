package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/timmy/quotebg/internal/domain"
	"github.com/timmy/quotebg/internal/logger"
	"github.com/timmy/quotebg/internal/repository"
)

// InventoryService exposes read access and administration for the
// background image inventory. The matching path only handles lookups;
// everything operational (seeding, stats, cache maintenance) lives here.
type InventoryService struct {
	images *repository.BackgroundImageRepository
	cache  *repository.MatchCacheRepository
	logger *logger.Logger
}

// NewInventoryService creates an inventory service.
func NewInventoryService(images *repository.BackgroundImageRepository, cache *repository.MatchCacheRepository, log *logger.Logger) *InventoryService {
	return &InventoryService{
		images: images,
		cache:  cache,
		logger: log,
	}
}

// ListImages returns images within a category (or all categories when
// category is empty), with limit/offset paging.
func (s *InventoryService) ListImages(ctx context.Context, category string, limit, offset int) ([]domain.BackgroundImage, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.images.List(ctx, category, limit, offset)
}

// GetImage fetches a single image by ID. Returns (nil, nil) when no image
// matches.
func (s *InventoryService) GetImage(ctx context.Context, id string) (*domain.BackgroundImage, error) {
	return s.images.GetByID(ctx, id)
}

// Categories returns the distinct categories present in the inventory.
func (s *InventoryService) Categories(ctx context.Context) ([]string, error) {
	return s.images.GetCategories(ctx)
}

// InventoryStats summarizes the stored inventory and the match cache.
type InventoryStats struct {
	TotalImages  int64            `json:"total_images"`
	ByCategory   map[string]int64 `json:"by_category"`
	ByMood       map[string]int64 `json:"by_mood"`
	BySource     map[string]int64 `json:"by_source"`
	CacheEntries int64            `json:"cache_entries"`
}

// Stats aggregates inventory counts grouped by category, mood and source,
// plus the current match cache size.
func (s *InventoryService) Stats(ctx context.Context) (*InventoryStats, error) {
	total, err := s.images.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &InventoryStats{TotalImages: total}

	if stats.ByCategory, err = s.images.CountGrouped(ctx, "category"); err != nil {
		return nil, err
	}
	if stats.ByMood, err = s.images.CountGrouped(ctx, "mood"); err != nil {
		return nil, err
	}
	if stats.BySource, err = s.images.CountGrouped(ctx, "source"); err != nil {
		return nil, err
	}
	if stats.CacheEntries, err = s.cache.Count(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

// PopulateResult reports the outcome of a seeding run.
type PopulateResult struct {
	Seeded     int   `json:"seeded"`
	Failed     int   `json:"failed"`
	DurationMs int64 `json:"duration_ms"`
}

// Populate loads the curated seed collections into the inventory. Entries
// are upserted on (source, source_id), so repeated runs refresh existing
// rows instead of duplicating them. When clear is true the inventory is
// emptied first.
func (s *InventoryService) Populate(ctx context.Context, clear bool) (*PopulateResult, error) {
	ctx = logger.WithField(ctx, logger.FieldComponent, "populate")
	start := time.Now()

	if clear {
		if err := s.images.DeleteAll(ctx); err != nil {
			return nil, err
		}
		logger.CtxInfo(ctx, "cleared existing inventory before seeding")
	}

	result := &PopulateResult{}
	for category, moods := range seedCollections {
		for mood, images := range moods {
			for _, seed := range images {
				img := &domain.BackgroundImage{
					ID:           uuid.New().String(),
					URL:          seed.URL,
					Category:     category,
					Mood:         mood,
					Keywords:     domain.StringArray(seed.Keywords),
					Source:       seedSource,
					SourceID:     seed.SourceID,
					Photographer: seed.Photographer,
				}
				if err := s.images.Upsert(ctx, img); err != nil {
					result.Failed++
					logger.CtxError(ctx, "failed to upsert seed image: %v (source_id=%s)", err, seed.SourceID)
					continue
				}
				result.Seeded++
			}
		}
	}

	result.DurationMs = time.Since(start).Milliseconds()
	logger.With(logger.Fields{
		logger.FieldCount:      result.Seeded,
		logger.FieldDurationMs: result.DurationMs,
	}).Info(ctx, "inventory seeding finished: seeded=%d failed=%d", result.Seeded, result.Failed)

	return result, nil
}

// ClearCache removes every match cache entry and returns the number of
// rows deleted. Cached matches are rebuilt lazily on the next request.
func (s *InventoryService) ClearCache(ctx context.Context) (int64, error) {
	removed, err := s.cache.Clear(ctx)
	if err != nil {
		return 0, err
	}
	logger.CtxInfo(ctx, "match cache cleared: %d entries removed", removed)
	return removed, nil
}
