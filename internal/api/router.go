package api

import (
	"context"
	"net/http"
	"time"

	"pet-nutrition-api/internal/api/handlers/health"
	recommendHandler "pet-nutrition-api/internal/api/handlers/recommend"
	"pet-nutrition-api/internal/api/middleware"
	"pet-nutrition-api/internal/core/cache"
	recommendService "pet-nutrition-api/internal/core/recommend"
	"pet-nutrition-api/internal/infrastructure/catalog"
	"pet-nutrition-api/internal/infrastructure/config"
	"pet-nutrition-api/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	timeoutDuration = 30 * time.Second
	// Request body size limit (1MB). Profiles and recipe id lists are
	// small; anything larger is malformed.
	maxBodySize = 1 << 20
)

// SetupRouter wires middleware, services and routes.
func SetupRouter(cfg *config.Config, cat *catalog.Catalog, store cache.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Int("catalog_size", cat.Len()),
		zap.String("catalog_source", cat.Source()),
		zap.Duration("timeout", timeoutDuration),
	)

	recommendSvc := recommendService.NewService(cat, store, &cfg.Recommend)

	// Request timeout plus context injection for handlers.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("recommend_service", recommendSvc)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	api := router.Group("/api/v1")
	{
		handler := recommendHandler.NewHandler(recommendSvc)

		recommendGroup := api.Group("/recommend")
		{
			// Full pipeline: filter, score, modify, portion, shopping list.
			recommendGroup.POST("", handler.HandleRecommend)

			// Single-recipe operations.
			recommendGroup.POST("/score", handler.HandleScore)
			recommendGroup.POST("/modify", handler.HandleModify)
			recommendGroup.POST("/portion", handler.HandlePortion)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Int("catalog_size", cat.Len()),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
