package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/timmy/quotebg/internal/domain"
	"github.com/timmy/quotebg/internal/logger"
	"github.com/timmy/quotebg/internal/repository"
	"github.com/timmy/quotebg/internal/service"
)

func newImageTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&domain.BackgroundImage{}, &domain.MatchCacheEntry{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	inventory := service.NewInventoryService(
		repository.NewBackgroundImageRepository(db),
		repository.NewMatchCacheRepository(db),
		logger.NewDefault(),
	)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewImageHandler(inventory)
	r.GET("/api/v1/images/:id", h.GetImage)
	return r, db
}

func TestGetImageUnknownIDReturns404(t *testing.T) {
	router, _ := newImageTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/images/no-such-id", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusNotFound, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "Image not found" {
		t.Errorf("error = %q, want %q", body["error"], "Image not found")
	}
}

func TestGetImageKnownIDReturnsRecord(t *testing.T) {
	router, db := newImageTestRouter(t)

	img := domain.BackgroundImage{
		ID:       "img-42",
		URL:      "https://example.com/42.jpg",
		Category: "quotes",
		Mood:     "serene",
		Keywords: domain.StringArray{"ocean"},
		Source:   "pexels",
		SourceID: "42",
	}
	if err := db.Create(&img).Error; err != nil {
		t.Fatalf("failed to seed image: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/images/img-42", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var got domain.BackgroundImage
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if got.ID != img.ID || got.URL != img.URL {
		t.Errorf("got %+v, want id=%s url=%s", got, img.ID, img.URL)
	}
}
