package coingecko_common

import "github.com/alkautsarf/price-proxy/config"

// GetApiBaseUrl returns the upstream API base URL, honoring the override
// from config (used by tests and private gateways)
func GetApiBaseUrl(cfg *config.Config) string {
	if cfg.OverrideCoingeckoURL != "" {
		return cfg.OverrideCoingeckoURL
	}
	return COINGECKO_PUBLIC_URL
}
