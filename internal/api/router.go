package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/twliao/finwatch/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Configures CORS for the dashboard frontend (allow-all by default).
//   - Adds request timeout handling (15 seconds: the upstream provider
//     may use most of its own 10-second budget).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the market-data routes under /api.
//
// Note:
//   - The health endpoint (/health) is registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//   - allowOrigins ([]string): CORS origins; a single "*" allows all.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, allowOrigins []string) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// ─── CORS ─────────────────────────────────────
	router.Use(cors.New(corsConfig(allowOrigins)))

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Routes ───────────────────────────────────
	router.GET("/", handler.GetRoot)

	api := router.Group("/api")
	{
		api.GET("/bond-spread", handler.GetBondSpread)
		api.GET("/fx", handler.GetFX)
		api.GET("/commodities", handler.GetCommodities)
		api.GET("/all", handler.GetAll)
	}

	return router
}

// corsConfig builds the CORS policy. The dashboard is served from
// arbitrary origins in development, so the default is allow-everything;
// credentials are only allowed when origins are pinned.
func corsConfig(allowOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"*"}

	allowAll := len(allowOrigins) == 0
	for _, origin := range allowOrigins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
		cfg.AllowCredentials = true
	}
	return cfg
}
