package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/twliao/finwatch/config"
	"github.com/twliao/finwatch/internal/api"
	"github.com/twliao/finwatch/internal/provider"
	"github.com/twliao/finwatch/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream provider client from configuration.
//   - Initializes the market service with the configured ticker mapping
//     and JP 10Y placeholder policy.
//   - Creates the HTTP handler layer and configures the router.
//   - Registers the health endpoint.
//   - Provides a cleanup function to release pooled connections.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	switch cfg.Spread.Mode {
	case service.SpreadModeConstant, service.SpreadModeScaled:
	default:
		return nil, nil, fmt.Errorf("unsupported JP10Y mode %q", cfg.Spread.Mode)
	}

	// Upstream market-data provider client
	fetcher := fetcherBuilder(cfg)

	// Market service with injected symbols and spread policy
	svc := service.NewMarketService(
		fetcher,
		service.Tickers{
			US10Y: cfg.Tickers.US10Y,
			JPYFX: cfg.Tickers.JPYFX,
			Gold:  cfg.Tickers.Gold,
			Oil:   cfg.Tickers.Oil,
		},
		service.SpreadPolicy{
			Mode:     cfg.Spread.Mode,
			Constant: cfg.Spread.Constant,
			Scale:    cfg.Spread.Scale,
		},
	)

	// HTTP handler layer and router
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, cfg.CORS.AllowOrigins)

	// Liveness endpoint
	api.NewHealthHandler(time.Now).Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		if closer, ok := fetcher.(interface{ CloseIdleConnections() }); ok {
			closer.CloseIdleConnections()
		}
	}

	return router, cleanup, nil
}

// fetcherBuilder constructs the provider client.
// Indirection for unit testing.
var fetcherBuilder = func(cfg config.Config) provider.Fetcher {
	return provider.NewYahooClient(
		cfg.Provider.BaseURL,
		time.Duration(cfg.Provider.TimeoutSeconds)*time.Second,
	)
}
