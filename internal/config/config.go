package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the Japan finance agent.
type Config struct {
	// Credentials. A missing credential does not fail loading; it marks the
	// source as unavailable so aggregation degrades gracefully.
	EdinetAPIKey string `mapstructure:"edinet_api_key"`
	EstatAppID   string `mapstructure:"estat_app_id"`

	// Base URLs for provider endpoints (configurable for testing)
	EdinetBaseURL string `mapstructure:"edinet_base_url"`
	TdnetBaseURL  string `mapstructure:"tdnet_base_url"`
	EstatBaseURL  string `mapstructure:"estat_base_url"`
	BojBaseURL    string `mapstructure:"boj_base_url"`
	StockBaseURL  string `mapstructure:"stock_base_url"`

	// Keyless sources can be switched off entirely
	TdnetEnabled bool `mapstructure:"tdnet_enabled"`
	BojEnabled   bool `mapstructure:"boj_enabled"`
	StockEnabled bool `mapstructure:"stock_enabled"`

	// Per-call deadline for guarded provider fetches
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values.
//
// Expected environment variables:
//   - EDINET_API_KEY (optional, EDINET unavailable without it)
//   - ESTAT_APP_ID (optional, e-Stat unavailable without it)
//   - EDINET_BASE_URL, TDNET_BASE_URL, ESTAT_BASE_URL, BOJ_BASE_URL,
//     STOCK_BASE_URL (optional, default to production)
//   - TDNET_ENABLED, BOJ_ENABLED, STOCK_ENABLED (optional, default true)
//   - FETCH_TIMEOUT (optional, default 15s)
func Load() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	// Set defaults for base URLs and behavior
	v.SetDefault("edinet_base_url", "https://api.edinet-fsa.go.jp/api/v2")
	v.SetDefault("tdnet_base_url", "https://webapi.yanoshin.jp/webapi/tdnet")
	v.SetDefault("estat_base_url", "https://api.e-stat.go.jp/rest/3.0/app/json")
	v.SetDefault("boj_base_url", "https://www.stat-search.boj.or.jp/api")
	v.SetDefault("stock_base_url", "https://query1.finance.yahoo.com/v7/finance")
	v.SetDefault("tdnet_enabled", true)
	v.SetDefault("boj_enabled", true)
	v.SetDefault("stock_enabled", true)
	v.SetDefault("fetch_timeout", "15s")

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.japanfinagent")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	// Bind environment variables
	v.BindEnv("edinet_api_key", "EDINET_API_KEY")
	v.BindEnv("estat_app_id", "ESTAT_APP_ID")
	v.BindEnv("edinet_base_url", "EDINET_BASE_URL")
	v.BindEnv("tdnet_base_url", "TDNET_BASE_URL")
	v.BindEnv("estat_base_url", "ESTAT_BASE_URL")
	v.BindEnv("boj_base_url", "BOJ_BASE_URL")
	v.BindEnv("stock_base_url", "STOCK_BASE_URL")
	v.BindEnv("tdnet_enabled", "TDNET_ENABLED")
	v.BindEnv("boj_enabled", "BOJ_ENABLED")
	v.BindEnv("stock_enabled", "STOCK_ENABLED")
	v.BindEnv("fetch_timeout", "FETCH_TIMEOUT")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.FetchTimeout <= 0 {
		config.FetchTimeout = 15 * time.Second
	}

	return config, nil
}
