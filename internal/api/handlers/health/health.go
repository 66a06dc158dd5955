package health

import (
	"net/http"
	"runtime"
	"time"

	"pet-nutrition-api/internal/core/recommend"
	"pet-nutrition-api/internal/infrastructure/config"
	"pet-nutrition-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse is the health check response body.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Engine    map[string]interface{} `json:"engine,omitempty"`
}

// HealthCheck reports service health plus catalog and cache stats.
func HealthCheck(c *gin.Context) {
	cfg, exists := c.Get("config")
	if !exists {
		common.LogError("Configuration not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Configuration not found",
		})
		return
	}
	config, ok := cfg.(*config.Config)
	if !ok {
		common.LogError("Invalid configuration type in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Invalid configuration type",
		})
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   config.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	if svc, exists := c.Get("recommend_service"); exists {
		if recommendSvc, ok := svc.(*recommend.Service); ok {
			response.Engine = recommendSvc.Stats()
		}
	}

	common.LogInfo("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck reports whether the service can accept traffic.
func ReadinessCheck(c *gin.Context) {
	if svc, exists := c.Get("recommend_service"); exists {
		if _, ok := svc.(*recommend.Service); ok {
			c.JSON(http.StatusOK, gin.H{
				"status": "ready",
			})
			return
		}
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status": "not ready",
	})
}

// LivenessCheck reports process liveness.
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
