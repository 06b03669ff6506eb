package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/timmy/quotebg/internal/service"
)

// ImageHandler handles read access to the background image inventory.
type ImageHandler struct {
	inventoryService *service.InventoryService
}

// NewImageHandler creates a new image handler.
// Parameters:
//   - inventoryService: inventory service instance.
// Returns:
//   - *ImageHandler: initialized handler.
func NewImageHandler(inventoryService *service.InventoryService) *ImageHandler {
	return &ImageHandler{
		inventoryService: inventoryService,
	}
}

// ListImages handles GET /api/v1/images.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ImageHandler) ListImages(c *gin.Context) {
	category := c.Query("category")

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	offset := 0
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}

	images, err := h.inventoryService.ListImages(c.Request.Context(), category, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list images: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"images": images,
		"count":  len(images),
	})
}

// GetImage handles GET /api/v1/images/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ImageHandler) GetImage(c *gin.Context) {
	id := c.Param("id")

	image, err := h.inventoryService.GetImage(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get image: " + err.Error(),
		})
		return
	}
	if image == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Image not found",
		})
		return
	}

	c.JSON(http.StatusOK, image)
}

// GetCategories handles GET /api/v1/categories.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ImageHandler) GetCategories(c *gin.Context) {
	categories, err := h.inventoryService.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get categories: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"total":      len(categories),
	})
}

// GetStats handles GET /api/v1/stats.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ImageHandler) GetStats(c *gin.Context) {
	stats, err := h.inventoryService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get stats: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
