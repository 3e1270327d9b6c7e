package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/twliao/finwatch/config"
	"github.com/twliao/finwatch/internal/domain/models"
	"github.com/twliao/finwatch/internal/provider"
)

// stubFetcher serves one fixed bar for every ticker.
type stubFetcher struct{}

func (stubFetcher) FetchHistory(_ context.Context, ticker string, _ models.Period) (models.Series, error) {
	return models.Series{Ticker: ticker, Bars: []models.Bar{{
		Time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Open: 1, High: 2, Low: 0.5, Close: 1.5,
	}}}, nil
}

func testConfig() config.Config {
	return config.Config{
		Server:   config.ServerConfig{Port: "0"},
		Provider: config.ProviderConfig{BaseURL: "http://localhost:1", TimeoutSeconds: 1},
		Tickers:  config.TickerConfig{US10Y: "^TNX", JPYFX: "JPY=X", Gold: "GC=F", Oil: "CL=F"},
		Spread:   config.SpreadConfig{Mode: "constant", Constant: 1.0, Scale: 0.02},
		CORS:     config.CORSConfig{AllowOrigins: []string{"*"}},
	}
}

func TestInitializeApp_HappyPath(t *testing.T) {
	old := config.AppConfig
	oldBuilder := fetcherBuilder
	t.Cleanup(func() {
		config.AppConfig = old
		fetcherBuilder = oldBuilder
	})
	config.AppConfig = testConfig()
	fetcherBuilder = func(cfg config.Config) provider.Fetcher { return stubFetcher{} }

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}
	t.Cleanup(cleanup)

	// Liveness endpoint
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}

	// A full pipeline through the stub fetcher
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/all?period=1d", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("all status=%d body=%s", w2.Code, w2.Body.String())
	}
}

func TestInitializeApp_UnsupportedSpreadMode(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	cfg := testConfig()
	cfg.Spread.Mode = "interpolated"
	config.AppConfig = cfg

	router, cleanup, err := InitializeApp()
	if err == nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected error for unsupported mode, got router=%v", router)
	}
	if got := fmt.Sprintf("%v", err); got == "" {
		t.Fatalf("expected descriptive error")
	}
}

func TestInitializeApp_DefaultBuilderIsYahoo(t *testing.T) {
	cfg := testConfig()
	fetcher := fetcherBuilder(cfg)
	if _, ok := fetcher.(*provider.YahooClient); !ok {
		t.Fatalf("expected *provider.YahooClient, got %T", fetcher)
	}
}
