package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/timmy/quotebg/internal/logger"
	"github.com/timmy/quotebg/internal/service"
)

// AdminHandler handles inventory administration.
type AdminHandler struct {
	inventoryService *service.InventoryService
	logger           *logger.Logger
}

// NewAdminHandler creates a new admin handler.
// Parameters:
//   - inventoryService: inventory service instance.
//   - log: logger instance.
// Returns:
//   - *AdminHandler: initialized handler.
func NewAdminHandler(inventoryService *service.InventoryService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		inventoryService: inventoryService,
		logger:           log,
	}
}

// PopulateRequest represents the populate API request.
type PopulateRequest struct {
	Clear bool `json:"clear"`
}

// Populate handles POST /api/v1/admin/images/populate. Seeds the curated
// image collections; safe to run repeatedly.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *AdminHandler) Populate(c *gin.Context) {
	var req PopulateRequest
	// Body is optional; an empty body means a plain non-clearing run.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request: " + err.Error(),
			})
			return
		}
	}

	result, err := h.inventoryService.Populate(c.Request.Context(), req.Clear)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to populate inventory: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Inventory handles GET /api/v1/admin/images/inventory.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *AdminHandler) Inventory(c *gin.Context) {
	stats, err := h.inventoryService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get inventory stats: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ClearCache handles POST /api/v1/admin/cache/clear.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *AdminHandler) ClearCache(c *gin.Context) {
	removed, err := h.inventoryService.ClearCache(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cache: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"removed": removed,
	})
}
