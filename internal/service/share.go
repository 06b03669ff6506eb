package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"time"

	_ "image/gif"  // background decode support
	_ "image/jpeg" // background decode support

	"github.com/go-resty/resty/v2"
	"github.com/timmy/quotebg/internal/domain"
	"github.com/timmy/quotebg/internal/keyword"
	"github.com/timmy/quotebg/internal/logger"
	"github.com/timmy/quotebg/internal/storage"
)

// ShareCardConfig holds configuration for the share card service.
type ShareCardConfig struct {
	SiteName string // watermark; empty disables it
}

// ShareCardService turns a quote into a shareable PNG card: it runs the
// match protocol, picks one background, composites the card, and uploads it
// to object storage.
type ShareCardService struct {
	matcher  *MatchService
	http     *resty.Client
	store    storage.ObjectStorage
	logger   *logger.Logger
	siteName string
}

// NewShareCardService creates a new share card service.
// Parameters:
//   - matcher: match service used to resolve a background.
//   - store: object storage for generated cards; may be nil, which disables
//     card generation.
//   - log: logger instance.
//   - cfg: share card configuration settings.
// Returns:
//   - *ShareCardService: initialized share card service.
func NewShareCardService(matcher *MatchService, store storage.ObjectStorage, log *logger.Logger, cfg *ShareCardConfig) *ShareCardService {
	client := resty.New()
	client.SetTimeout(15 * time.Second)

	siteName := ""
	if cfg != nil {
		siteName = cfg.SiteName
	}

	return &ShareCardService{
		matcher:  matcher,
		http:     client,
		store:    store,
		logger:   log,
		siteName: siteName,
	}
}

// ShareRequest represents a share card generation request.
type ShareRequest struct {
	QuoteText   string `json:"quoteText" binding:"required"`
	QuoteAuthor string `json:"quoteAuthor,omitempty"`
	Category    string `json:"category,omitempty"`
}

// ShareResponse represents the share card generation response.
type ShareResponse struct {
	URL        string `json:"url"`
	Background string `json:"background"`
	Cached     bool   `json:"cached"`
}

// GenerateShareCard produces a share card for a quote and returns its URL.
//
// Background problems never fail the card: a failed match, download, or
// decode degrades to the brand gradient. Only storage problems surface as
// errors, since without an upload there is nothing to return.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - req: share card request parameters.
// Returns:
//   - *ShareResponse: card URL plus the background that was used.
//   - error: non-nil if encoding or upload fails.
func (s *ShareCardService) GenerateShareCard(ctx context.Context, req *ShareRequest) (*ShareResponse, error) {
	if s.store == nil {
		return nil, errors.New("object storage is not configured")
	}

	category := req.Category
	if category == "" {
		category = string(domain.CategoryQuotes)
	}

	ctx = logger.WithFields(ctx, logger.Fields{
		logger.FieldComponent: "share",
		logger.FieldCategory:  category,
	})

	// One card per quote+author: re-sharing the same quote reuses the key.
	key := fmt.Sprintf("cards/%s_%s.png", category, keyword.HashContent(req.QuoteText+"|"+req.QuoteAuthor))
	if exists, err := s.store.Exists(ctx, key); err == nil && exists {
		logger.CtxInfo(ctx, "Share card already generated: key=%s", key)
		return &ShareResponse{
			URL:    s.store.GetURL(key),
			Cached: true,
		}, nil
	}

	var images []domain.BackgroundImage
	var cached bool
	match, err := s.matcher.Match(ctx, &MatchRequest{
		ContentText: req.QuoteText,
		Category:    category,
	})
	if err != nil {
		logger.CtxWarn(ctx, "Image match failed, using fallback background: error=%v", err)
	} else {
		images = match.Images
		cached = match.Cached
	}

	backgroundURL := SelectImageURL(images)
	background := s.fetchBackground(ctx, backgroundURL)

	card := composeCard(background, req.QuoteText, req.QuoteAuthor, s.siteName)

	var buf bytes.Buffer
	if err := png.Encode(&buf, card); err != nil {
		return nil, fmt.Errorf("failed to encode share card: %w", err)
	}

	if err := s.store.Upload(ctx, key, bytes.NewReader(buf.Bytes()), int64(buf.Len()), "image/png"); err != nil {
		return nil, fmt.Errorf("failed to upload share card: %w", err)
	}

	logger.With(logger.Fields{logger.FieldSize: buf.Len()}).
		Info(ctx, "Share card generated: key=%s", key)

	return &ShareResponse{
		URL:        s.store.GetURL(key),
		Background: backgroundURL,
		Cached:     cached,
	}, nil
}

// fetchBackground downloads and decodes a background image. Any failure is
// logged and reported as nil so the caller can fall back to the gradient.
func (s *ShareCardService) fetchBackground(ctx context.Context, url string) image.Image {
	resp, err := s.http.R().SetContext(ctx).Get(url)
	if err != nil {
		logger.CtxWarn(ctx, "Background download failed: url=%s, error=%v", url, err)
		return nil
	}
	if resp.IsError() {
		logger.CtxWarn(ctx, "Background download failed: url=%s, status=%d", url, resp.StatusCode())
		return nil
	}

	img, _, err := image.Decode(bytes.NewReader(resp.Body()))
	if err != nil {
		logger.CtxWarn(ctx, "Background decode failed: url=%s, error=%v", url, err)
		return nil
	}
	return img
}
