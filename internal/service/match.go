package service

import (
	"context"
	"math/rand"

	"github.com/timmy/quotebg/internal/domain"
	"github.com/timmy/quotebg/internal/keyword"
	"github.com/timmy/quotebg/internal/logger"
)

// DefaultMatchLimit is the candidate list size returned per match request.
const DefaultMatchLimit = 10

// fallbackImageURLs is the built-in safety net used when the inventory has
// nothing at all for a category. Callers must always end up with a usable
// image URL.
var fallbackImageURLs = []string{
	"https://images.pexels.com/photos/1761279/pexels-photo-1761279.jpeg?auto=compress&cs=tinysrgb&w=1600",
	"https://images.pexels.com/photos/1619317/pexels-photo-1619317.jpeg?auto=compress&cs=tinysrgb&w=1600",
}

// ImageInventory is the read surface of the image store the match pipeline
// depends on.
type ImageInventory interface {
	FindMatches(ctx context.Context, category string, moods, keywords []string, limit int) ([]domain.BackgroundImage, error)
	List(ctx context.Context, category string, limit, offset int) ([]domain.BackgroundImage, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.BackgroundImage, error)
}

// MatchCache stores candidate image ID lists keyed by content hash.
type MatchCache interface {
	Get(ctx context.Context, contentHash string) ([]string, error)
	Put(ctx context.Context, contentHash, category string, imageIDs []string) error
}

// MatchConfig holds configuration for the match service.
type MatchConfig struct {
	Limit int // candidate list size; 0 uses DefaultMatchLimit
}

// MatchService runs the keyword-driven image matching protocol: hash the
// text, consult the cache, on a miss derive keywords and moods and query the
// inventory with a category-wide fallback, then cache the result best-effort.
type MatchService struct {
	inventory ImageInventory
	cache     MatchCache
	logger    *logger.Logger
	limit     int
}

// NewMatchService creates a new match service.
// Parameters:
//   - inventory: image inventory store.
//   - cache: match cache store.
//   - log: logger instance.
//   - cfg: match configuration settings.
// Returns:
//   - *MatchService: initialized match service.
func NewMatchService(inventory ImageInventory, cache MatchCache, log *logger.Logger, cfg *MatchConfig) *MatchService {
	limit := DefaultMatchLimit
	if cfg != nil && cfg.Limit > 0 {
		limit = cfg.Limit
	}
	return &MatchService{
		inventory: inventory,
		cache:     cache,
		logger:    log,
		limit:     limit,
	}
}

// MatchRequest represents an image matching request.
type MatchRequest struct {
	ContentText string `json:"contentText" binding:"required"`
	Category    string `json:"category" binding:"required"`
	ContentHash string `json:"contentHash,omitempty"`
}

// MatchResponse represents the image matching response.
type MatchResponse struct {
	Success bool                     `json:"success"`
	Count   int                      `json:"count"`
	Images  []domain.BackgroundImage `json:"images"`
	Cached  bool                     `json:"cached"`
}

// Match resolves up to limit candidate background images for a piece of
// content text.
//
// Store and cache failures never propagate: a failed cache read is a miss, a
// failed inventory query is an empty result that triggers the unfiltered
// category fallback, and a failed cache write is logged and swallowed.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - req: match request parameters.
// Returns:
//   - *MatchResponse: candidate images plus cache status.
//   - error: always nil today; kept for interface stability.
func (s *MatchService) Match(ctx context.Context, req *MatchRequest) (*MatchResponse, error) {
	contentHash := req.ContentHash
	if contentHash == "" {
		contentHash = keyword.HashContent(req.ContentText)
	}

	ctx = logger.WithFields(ctx, logger.Fields{
		logger.FieldComponent: "match",
		logger.FieldMatchID:   contentHash,
		logger.FieldCategory:  req.Category,
	})

	cachedIDs, err := s.cache.Get(ctx, contentHash)
	if err != nil {
		logger.CtxWarn(ctx, "Cache lookup failed, treating as miss: error=%v", err)
		cachedIDs = nil
	}

	if len(cachedIDs) > 0 {
		images, err := s.inventory.GetByIDs(ctx, cachedIDs)
		if err != nil {
			logger.CtxWarn(ctx, "Failed to load cached images: error=%v", err)
			images = nil
		}
		logger.With(logger.Fields{logger.FieldCount: len(images)}).
			Info(ctx, "Match served from cache")
		return &MatchResponse{
			Success: true,
			Count:   len(images),
			Images:  images,
			Cached:  true,
		}, nil
	}

	keywords := keyword.Extract(req.ContentText)
	moods := domain.MoodsForCategory(req.Category)

	logger.CtxInfo(ctx, "Computing fresh match: keywords=%v, moods=%v", keywords, moods)

	images, err := s.inventory.FindMatches(ctx, req.Category, moods, keywords, s.limit)
	if err != nil {
		logger.CtxWarn(ctx, "Inventory query failed, falling back to category sample: error=%v", err)
		images = nil
	}
	if len(images) == 0 {
		images, err = s.inventory.List(ctx, req.Category, s.limit, 0)
		if err != nil {
			logger.CtxWarn(ctx, "Fallback query failed: error=%v", err)
			images = nil
		}
	}

	imageIDs := make([]string, len(images))
	for i, img := range images {
		imageIDs[i] = img.ID
	}

	// Best-effort cache write; never fails the request.
	if len(imageIDs) > 0 {
		if err := s.cache.Put(ctx, contentHash, req.Category, imageIDs); err != nil {
			logger.CtxWarn(ctx, "Cache write failed (non-critical): error=%v", err)
		}
	}

	logger.With(logger.Fields{logger.FieldCount: len(images)}).
		Info(ctx, "Match computed")

	return &MatchResponse{
		Success: true,
		Count:   len(images),
		Images:  images,
		Cached:  false,
	}, nil
}

// SelectImageURL picks one image URL from a candidate list at display time:
// uniformly at random among the first DefaultMatchLimit candidates, or from
// the built-in fallback set when the list is empty. Never returns "".
func SelectImageURL(images []domain.BackgroundImage) string {
	if len(images) == 0 {
		return fallbackImageURLs[rand.Intn(len(fallbackImageURLs))]
	}
	n := len(images)
	if n > DefaultMatchLimit {
		n = DefaultMatchLimit
	}
	return images[rand.Intn(n)].URL
}
