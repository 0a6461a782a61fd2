package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gustavoesucri/back-end-ifd/internal/infrastructure/database"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/middleware"
	"github.com/gustavoesucri/back-end-ifd/pkg/cache"
	"github.com/gustavoesucri/back-end-ifd/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		c.Metrics.Handler(),
	)

	router.GET("/health", healthCheckHandler(c.Config.App.Version, c.DB, c.Cache))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{})))
	router.Static("/static", c.Config.App.StaticDir)

	// Writes need a bearer token only when AUTH_REQUIRED is set.
	var guard []gin.HandlerFunc
	if c.Config.Auth.Required {
		guard = append(guard, middleware.WriteGuard(middleware.AuthMiddleware(c.JWTManager)))
	}

	c.CampaignHandler.RegisterRoutes(router.Group("/campanhas", guard...))
	c.NewsHandler.RegisterRoutes(router.Group("/noticias", guard...))
	c.PartnerHandler.RegisterRoutes(router.Group("/parceiros", guard...))
	c.ProjectHandler.RegisterRoutes(router.Group("/projetos", guard...))
	c.HomeHandler.RegisterRoutes(router.Group("/home", guard...))

	router.POST("/contato", c.ContactHandler.Create)

	authGroup := router.Group("/auth")
	{
		register := append(append([]gin.HandlerFunc{}, guard...), c.AuthHandler.Register)
		authGroup.POST("/register", register...)
		authGroup.POST("/login", c.AuthHandler.Login)
	}

	return router
}

type databaseHealth interface {
	HealthCheck(ctx context.Context) error
	Stats() *database.PoolStats
}

// healthCheckHandler reports "degraded" with 503 when the database is down.
// A missing cache only degrades the report.
func healthCheckHandler(version string, db databaseHealth, ch cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		code := http.StatusOK

		dbStatus := gin.H{"status": "ok"}
		if err := db.HealthCheck(ctx); err != nil {
			dbStatus["status"] = "error"
			dbStatus["error"] = err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		} else if stats := db.Stats(); stats != nil {
			dbStatus["pool"] = stats
		}

		redisStatus := gin.H{"status": "ok"}
		if ch == nil {
			redisStatus["status"] = "disabled"
			status = "degraded"
		} else if err := ch.Ping(ctx); err != nil {
			redisStatus["status"] = "error"
			redisStatus["error"] = err.Error()
			status = "degraded"
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   version,
			"services": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	}
}
