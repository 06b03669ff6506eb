package api

import (
	"github.com/gin-gonic/gin"

	"github.com/timmy/quotebg/internal/api/handler"
	"github.com/timmy/quotebg/internal/api/middleware"
	"github.com/timmy/quotebg/internal/config"
	"github.com/timmy/quotebg/internal/logger"
	"github.com/timmy/quotebg/internal/service"
)

// Services bundles the service layer dependencies the router needs.
type Services struct {
	Match     *service.MatchService
	Share     *service.ShareCardService
	Inventory *service.InventoryService
}

// SetupRouter configures the Gin router with all routes.
// Parameters:
//   - cfg: server configuration (mode, CORS policy).
//   - services: service layer instances.
//   - log: base logger for request middleware.
// Returns:
//   - *gin.Engine: configured router.
func SetupRouter(cfg *config.ServerConfig, services *Services, log *logger.Logger) *gin.Engine {
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.CORS.AllowAllOrigins,
	}))

	healthHandler := handler.NewHealthHandler()
	matchHandler := handler.NewMatchHandler(services.Match)
	shareHandler := handler.NewShareHandler(services.Share)
	imageHandler := handler.NewImageHandler(services.Inventory)
	adminHandler := handler.NewAdminHandler(services.Inventory, log)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Matching
		v1.POST("/match", matchHandler.Match)

		// Share cards
		v1.POST("/share", shareHandler.Generate)

		// Inventory reads
		v1.GET("/images", imageHandler.ListImages)
		v1.GET("/images/:id", imageHandler.GetImage)
		v1.GET("/categories", imageHandler.GetCategories)
		v1.GET("/stats", imageHandler.GetStats)

		// Administration
		admin := v1.Group("/admin")
		{
			admin.POST("/images/populate", adminHandler.Populate)
			admin.GET("/images/inventory", adminHandler.Inventory)
			admin.POST("/cache/clear", adminHandler.ClearCache)
		}
	}

	return r
}
