package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Fetch       FetchConfig       `yaml:"fetch"`
	BatchPrices BatchPricesConfig `yaml:"batch_prices"`
	NativePrice NativePriceConfig `yaml:"native_price"`

	// OverrideCoingeckoURL replaces the public API base URL, used by tests
	// and private gateways
	OverrideCoingeckoURL string `yaml:"override_coingecko_url"`

	// APIKey is resolved from the environment, never from the config file
	APIKey string `yaml:"-"`
}

// FetchConfig holds settings shared by all upstream calls
type FetchConfig struct {
	// RequestTimeout bounds one HTTP attempt including reading the response
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MinRequestGap is the minimum gap between upstream request starts
	// across the whole process
	MinRequestGap time.Duration `yaml:"min_request_gap"`
}

// BatchPricesConfig represents configuration for the batch prices service
type BatchPricesConfig struct {
	TTL              time.Duration `yaml:"ttl"`               // Cache TTL for per-address price entries
	Workers          int           `yaml:"workers"`           // Worker pool size per batch
	PrimaryAttempts  int           `yaml:"primary_attempts"`  // Attempts for the simple token price lookup
	PrimaryBackoff   time.Duration `yaml:"primary_backoff"`   // Backoff base for the primary lookup
	FallbackAttempts int           `yaml:"fallback_attempts"` // Attempts for the contract detail fallback
	FallbackBackoff  time.Duration `yaml:"fallback_backoff"`  // Backoff base for the fallback lookup
}

// NativePriceConfig represents configuration for the native price service
type NativePriceConfig struct {
	CoinID          string        `yaml:"coin_id"`          // CoinGecko coin id of the native asset
	Currency        string        `yaml:"currency"`         // Quote currency
	TTL             time.Duration `yaml:"ttl"`              // Freshness window for the cached value
	RefreshInterval time.Duration `yaml:"refresh_interval"` // Background warm refresh; 0 disables
}

// DefaultConfig returns the configuration used when no config file is present
func DefaultConfig() *Config {
	return &Config{
		Fetch: FetchConfig{
			RequestTimeout: 7 * time.Second,
			MinRequestGap:  150 * time.Millisecond,
		},
		BatchPrices: BatchPricesConfig{
			TTL:              60 * time.Second,
			Workers:          3,
			PrimaryAttempts:  3,
			PrimaryBackoff:   500 * time.Millisecond,
			FallbackAttempts: 2,
			FallbackBackoff:  700 * time.Millisecond,
		},
		NativePrice: NativePriceConfig{
			CoinID:   "ethereum",
			Currency: "usd",
			TTL:      60 * time.Second,
		},
	}
}

// LoadConfig reads configuration from a YAML file, applying defaults for
// absent fields. A missing file is not an error: the defaults are used and
// only the environment is consulted.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config: %s not found, using defaults", path)
			config.APIKey = ResolveAPIKey()
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	config.applyDefaults()
	config.APIKey = ResolveAPIKey()

	return config, nil
}

// applyDefaults fills zero values left by a partial config file
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.Fetch.RequestTimeout <= 0 {
		c.Fetch.RequestTimeout = def.Fetch.RequestTimeout
	}
	if c.Fetch.MinRequestGap <= 0 {
		c.Fetch.MinRequestGap = def.Fetch.MinRequestGap
	}
	if c.BatchPrices.TTL <= 0 {
		c.BatchPrices.TTL = def.BatchPrices.TTL
	}
	if c.BatchPrices.Workers <= 0 {
		c.BatchPrices.Workers = def.BatchPrices.Workers
	}
	if c.BatchPrices.PrimaryAttempts <= 0 {
		c.BatchPrices.PrimaryAttempts = def.BatchPrices.PrimaryAttempts
	}
	if c.BatchPrices.PrimaryBackoff <= 0 {
		c.BatchPrices.PrimaryBackoff = def.BatchPrices.PrimaryBackoff
	}
	if c.BatchPrices.FallbackAttempts <= 0 {
		c.BatchPrices.FallbackAttempts = def.BatchPrices.FallbackAttempts
	}
	if c.BatchPrices.FallbackBackoff <= 0 {
		c.BatchPrices.FallbackBackoff = def.BatchPrices.FallbackBackoff
	}
	if c.NativePrice.CoinID == "" {
		c.NativePrice.CoinID = def.NativePrice.CoinID
	}
	if c.NativePrice.Currency == "" {
		c.NativePrice.Currency = def.NativePrice.Currency
	}
	if c.NativePrice.TTL <= 0 {
		c.NativePrice.TTL = def.NativePrice.TTL
	}
}
