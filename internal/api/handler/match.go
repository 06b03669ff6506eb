package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/timmy/quotebg/internal/service"
)

// MatchHandler handles the content-to-image matching endpoint.
type MatchHandler struct {
	matchService *service.MatchService
}

// NewMatchHandler creates a new match handler.
// Parameters:
//   - matchService: match service instance.
// Returns:
//   - *MatchHandler: initialized handler.
func NewMatchHandler(matchService *service.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// Match handles POST /api/v1/match.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *MatchHandler) Match(c *gin.Context) {
	var req service.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	result, err := h.matchService.Match(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process image matching request",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
