package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of the
// system: the HTTP server, the upstream market-data provider, the ticker
// symbol mapping, and the bond-spread placeholder policy.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8000
//	PROVIDER_BASE_URL=https://query1.finance.yahoo.com
//	PROVIDER_TIMEOUT_SECONDS=10
//	TICKER_US10Y=^TNX
//	JP10Y_MODE=constant
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Provider ProviderConfig // Upstream market-data provider settings
	Tickers  TickerConfig   // Provider-specific instrument symbols
	Spread   SpreadConfig   // JP 10Y placeholder policy for the bond spread
	CORS     CORSConfig     // Cross-origin settings for the dashboard frontend
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8000")
}

// ProviderConfig defines how the upstream chart API is reached.
//
// Fields:
//   - BaseURL: scheme and host of the provider (no trailing slash).
//   - TimeoutSeconds: per-request timeout for outbound fetches.
type ProviderConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// TickerConfig maps each dashboard series to its provider symbol.
// The symbols are part of the provider's boundary contract, not ours.
type TickerConfig struct {
	US10Y string // US 10-year treasury yield proxy (e.g., "^TNX")
	JPYFX string // USD/JPY exchange rate (e.g., "JPY=X")
	Gold  string // Gold futures (e.g., "GC=F")
	Oil   string // Crude oil futures (e.g., "CL=F")
}

// SpreadConfig controls how the Japanese 10-year yield is approximated.
//
// The provider has no reliable JP 10Y source, so the series is synthesized.
// This is a documented approximation, not fetched ground truth.
//
// Modes:
//   - "constant": every date uses the fixed Constant value.
//   - "scaled":   each date uses the US close multiplied by Scale.
type SpreadConfig struct {
	Mode     string
	Constant float64
	Scale    float64
}

// CORSConfig holds the allowed origins for browser clients.
// A single "*" entry allows all origins.
type CORSConfig struct {
	AllowOrigins []string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or inconsistent, validateConfig()
//     terminates the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8000")

	viper.SetDefault("PROVIDER_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("PROVIDER_TIMEOUT_SECONDS", 10)

	viper.SetDefault("TICKER_US10Y", "^TNX")
	viper.SetDefault("TICKER_JPY_FX", "JPY=X")
	viper.SetDefault("TICKER_GOLD", "GC=F")
	viper.SetDefault("TICKER_OIL", "CL=F")

	viper.SetDefault("JP10Y_MODE", "constant")
	viper.SetDefault("JP10Y_CONSTANT", 1.0)
	viper.SetDefault("JP10Y_SCALE", 0.02)

	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Provider: ProviderConfig{
			BaseURL:        strings.TrimRight(viper.GetString("PROVIDER_BASE_URL"), "/"),
			TimeoutSeconds: viper.GetInt("PROVIDER_TIMEOUT_SECONDS"),
		},
		Tickers: TickerConfig{
			US10Y: viper.GetString("TICKER_US10Y"),
			JPYFX: viper.GetString("TICKER_JPY_FX"),
			Gold:  viper.GetString("TICKER_GOLD"),
			Oil:   viper.GetString("TICKER_OIL"),
		},
		Spread: SpreadConfig{
			Mode:     strings.ToLower(viper.GetString("JP10Y_MODE")),
			Constant: viper.GetFloat64("JP10Y_CONSTANT"),
			Scale:    viper.GetFloat64("JP10Y_SCALE"),
		},
		CORS: CORSConfig{
			AllowOrigins: splitOrigins(viper.GetString("CORS_ALLOW_ORIGINS")),
		},
	}

	// Validate critical fields
	validateConfig()
}

// splitOrigins turns a comma-separated origin list into a slice,
// trimming whitespace and dropping empty entries.
func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing or inconsistent.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Provider.BaseURL == "" {
		missing = append(missing, "PROVIDER_BASE_URL")
	}
	if AppConfig.Provider.TimeoutSeconds <= 0 {
		missing = append(missing, "PROVIDER_TIMEOUT_SECONDS")
	}
	if AppConfig.Tickers.US10Y == "" {
		missing = append(missing, "TICKER_US10Y")
	}
	if AppConfig.Tickers.JPYFX == "" {
		missing = append(missing, "TICKER_JPY_FX")
	}
	if AppConfig.Tickers.Gold == "" {
		missing = append(missing, "TICKER_GOLD")
	}
	if AppConfig.Tickers.Oil == "" {
		missing = append(missing, "TICKER_OIL")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}

	switch AppConfig.Spread.Mode {
	case "constant", "scaled":
	default:
		log.Fatalf("invalid JP10Y_MODE %q: must be \"constant\" or \"scaled\"\n", AppConfig.Spread.Mode)
	}
}
