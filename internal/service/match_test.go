package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/timmy/quotebg/internal/domain"
	"github.com/timmy/quotebg/internal/logger"
)

// fakeInventory implements ImageInventory over an in-memory image list.
type fakeInventory struct {
	images []domain.BackgroundImage

	findErr error
	listErr error
	getErr  error

	findCalls int
	listCalls int
}

func (f *fakeInventory) FindMatches(ctx context.Context, category string, moods, keywords []string, limit int) ([]domain.BackgroundImage, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []domain.BackgroundImage
	for _, img := range f.images {
		if img.Category != category {
			continue
		}
		for _, kw := range keywords {
			if containsKeyword(img.Keywords, kw) {
				out = append(out, img)
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeInventory) List(ctx context.Context, category string, limit, offset int) ([]domain.BackgroundImage, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.BackgroundImage
	for _, img := range f.images {
		if category != "" && img.Category != category {
			continue
		}
		out = append(out, img)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeInventory) GetByIDs(ctx context.Context, ids []string) ([]domain.BackgroundImage, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	var out []domain.BackgroundImage
	for _, img := range f.images {
		for _, id := range ids {
			if img.ID == id {
				out = append(out, img)
				break
			}
		}
	}
	return out, nil
}

func containsKeyword(keywords domain.StringArray, kw string) bool {
	for _, k := range keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// fakeCache implements MatchCache with write-once semantics.
type fakeCache struct {
	entries map[string][]string

	getErr error
	putErr error

	putCalls int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]string)}
}

func (f *fakeCache) Get(ctx context.Context, contentHash string) ([]string, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.entries[contentHash], nil
}

func (f *fakeCache) Put(ctx context.Context, contentHash, category string, imageIDs []string) error {
	f.putCalls++
	if f.putErr != nil {
		return f.putErr
	}
	if _, exists := f.entries[contentHash]; exists {
		return nil
	}
	f.entries[contentHash] = imageIDs
	return nil
}

func testImages() []domain.BackgroundImage {
	return []domain.BackgroundImage{
		{ID: "img-1", URL: "https://example.com/1.jpg", Category: "quotes", Mood: "serene", Keywords: domain.StringArray{"ocean", "calm"}},
		{ID: "img-2", URL: "https://example.com/2.jpg", Category: "quotes", Mood: "peaceful", Keywords: domain.StringArray{"mountain"}},
		{ID: "img-3", URL: "https://example.com/3.jpg", Category: "jokes", Mood: "vibrant", Keywords: domain.StringArray{"cat"}},
	}
}

func newTestMatchService(inv *fakeInventory, cache *fakeCache) *MatchService {
	return NewMatchService(inv, cache, logger.NewDefault(), nil)
}

func TestMatchComputesAndCaches(t *testing.T) {
	inv := &fakeInventory{images: testImages()}
	cache := newFakeCache()
	svc := newTestMatchService(inv, cache)

	resp, err := svc.Match(context.Background(), &MatchRequest{
		ContentText: "The ocean teaches patience",
		Category:    "quotes",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Error("expected success")
	}
	if resp.Cached {
		t.Error("first match should not be cached")
	}
	if resp.Count != 1 || resp.Images[0].ID != "img-1" {
		t.Errorf("expected img-1, got %+v", resp.Images)
	}
	if cache.putCalls != 1 {
		t.Errorf("expected one cache write, got %d", cache.putCalls)
	}
}

func TestMatchServesRepeatFromCache(t *testing.T) {
	inv := &fakeInventory{images: testImages()}
	cache := newFakeCache()
	svc := newTestMatchService(inv, cache)

	req := &MatchRequest{ContentText: "The ocean teaches patience", Category: "quotes"}

	first, err := svc.Match(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Match(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !second.Cached {
		t.Error("second identical request should be served from cache")
	}
	if !reflect.DeepEqual(first.Images, second.Images) {
		t.Errorf("cached result differs: %+v vs %+v", first.Images, second.Images)
	}
	if inv.findCalls != 1 {
		t.Errorf("inventory queried %d times, want 1", inv.findCalls)
	}
}

func TestMatchRespectsProvidedContentHash(t *testing.T) {
	inv := &fakeInventory{images: testImages()}
	cache := newFakeCache()
	cache.entries["hash_custom"] = []string{"img-2"}
	svc := newTestMatchService(inv, cache)

	resp, err := svc.Match(context.Background(), &MatchRequest{
		ContentText: "Completely unrelated text",
		Category:    "quotes",
		ContentHash: "hash_custom",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Cached || resp.Count != 1 || resp.Images[0].ID != "img-2" {
		t.Errorf("expected cached img-2, got %+v", resp)
	}
}

func TestMatchFallsBackToCategorySample(t *testing.T) {
	// No keyword overlap with the inventory, so the filtered query is empty.
	inv := &fakeInventory{images: testImages()}
	cache := newFakeCache()
	svc := newTestMatchService(inv, cache)

	resp, err := svc.Match(context.Background(), &MatchRequest{
		ContentText: "Nothing matches this deliberately obscure sentence",
		Category:    "quotes",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.listCalls != 1 {
		t.Errorf("expected fallback list query, got %d calls", inv.listCalls)
	}
	if resp.Count != 2 {
		t.Errorf("expected the 2 quotes images from fallback, got %d", resp.Count)
	}
}

func TestMatchDegradesOnStoreErrors(t *testing.T) {
	t.Run("cache read failure is a miss", func(t *testing.T) {
		inv := &fakeInventory{images: testImages()}
		cache := newFakeCache()
		cache.getErr = errors.New("cache down")
		svc := newTestMatchService(inv, cache)

		resp, err := svc.Match(context.Background(), &MatchRequest{
			ContentText: "The ocean teaches patience",
			Category:    "quotes",
		})
		if err != nil {
			t.Fatalf("store failure must not propagate: %v", err)
		}
		if resp.Cached {
			t.Error("failed cache read must be treated as a miss")
		}
		if resp.Count == 0 {
			t.Error("expected a fresh match despite cache failure")
		}
	})

	t.Run("inventory failure falls back then degrades to empty", func(t *testing.T) {
		inv := &fakeInventory{findErr: errors.New("db down"), listErr: errors.New("db down")}
		cache := newFakeCache()
		svc := newTestMatchService(inv, cache)

		resp, err := svc.Match(context.Background(), &MatchRequest{
			ContentText: "The ocean teaches patience",
			Category:    "quotes",
		})
		if err != nil {
			t.Fatalf("store failure must not propagate: %v", err)
		}
		if !resp.Success || resp.Count != 0 {
			t.Errorf("expected successful empty response, got %+v", resp)
		}
		if cache.putCalls != 0 {
			t.Error("empty result must not be cached")
		}
	})

	t.Run("cache write failure is swallowed", func(t *testing.T) {
		inv := &fakeInventory{images: testImages()}
		cache := newFakeCache()
		cache.putErr = errors.New("cache down")
		svc := newTestMatchService(inv, cache)

		resp, err := svc.Match(context.Background(), &MatchRequest{
			ContentText: "The ocean teaches patience",
			Category:    "quotes",
		})
		if err != nil {
			t.Fatalf("cache write failure must not propagate: %v", err)
		}
		if resp.Count == 0 {
			t.Error("expected match result despite cache write failure")
		}
	})
}

func TestSelectImageURL(t *testing.T) {
	t.Run("picks from candidates", func(t *testing.T) {
		images := testImages()
		urls := make(map[string]bool)
		for _, img := range images {
			urls[img.URL] = true
		}
		for i := 0; i < 50; i++ {
			if got := SelectImageURL(images); !urls[got] {
				t.Fatalf("unexpected URL %q", got)
			}
		}
	})

	t.Run("empty list uses built-in fallbacks", func(t *testing.T) {
		fallbacks := make(map[string]bool)
		for _, u := range fallbackImageURLs {
			fallbacks[u] = true
		}
		for i := 0; i < 50; i++ {
			got := SelectImageURL(nil)
			if got == "" {
				t.Fatal("must never return empty URL")
			}
			if !fallbacks[got] {
				t.Fatalf("unexpected fallback URL %q", got)
			}
		}
	})

	t.Run("only first ten candidates are eligible", func(t *testing.T) {
		images := make([]domain.BackgroundImage, 15)
		for i := range images {
			images[i].URL = "https://example.com/candidate"
			if i >= DefaultMatchLimit {
				images[i].URL = "https://example.com/excluded"
			}
		}
		for i := 0; i < 100; i++ {
			if got := SelectImageURL(images); got == "https://example.com/excluded" {
				t.Fatal("selected a candidate beyond the display window")
			}
		}
	})
}
