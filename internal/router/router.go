package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/papergen/papergen-backend/internal/config"
	"github.com/papergen/papergen-backend/internal/handler"
	"github.com/papergen/papergen-backend/internal/middleware"
	"github.com/papergen/papergen-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Upload   *handler.UploadHandler
	Question *handler.QuestionHandler
	Export   *handler.ExportHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Serve rendered documents statically with aggressive caching; the
	// artifact names are content-unique so stale caches are harmless.
	outputsGroup := router.Group("/outputs")
	outputsGroup.Use(middleware.CacheControl(31536000))
	{
		outputsGroup.Static("/", cfg.OutputDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for model-backed routes (10 requests per minute per IP);
	// every route in this group either calls the LLM or does heavy rendering.
	paperLimiter := middleware.NewRateLimiter(10, time.Minute)

	// ─── Papers Group (Rate Limited) ───────────────────────────────────
	papers := router.Group("/api/v1/papers")
	papers.Use(paperLimiter.Middleware())
	{
		papers.POST("/upload", handlers.Upload.Upload)
		papers.POST("/questions", handlers.Question.GenerateQuestions)
		papers.POST("/export", handlers.Export.Export)
	}

	return router
}
