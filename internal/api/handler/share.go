package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/timmy/quotebg/internal/service"
)

// ShareHandler handles share card generation.
type ShareHandler struct {
	shareService *service.ShareCardService
}

// NewShareHandler creates a new share handler.
// Parameters:
//   - shareService: share card service instance.
// Returns:
//   - *ShareHandler: initialized handler.
func NewShareHandler(shareService *service.ShareCardService) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
	}
}

// Generate handles POST /api/v1/share.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ShareHandler) Generate(c *gin.Context) {
	var req service.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	result, err := h.shareService.GenerateShareCard(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate share card",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
