package core

import (
	"context"
	"os"

	"github.com/alkautsarf/price-proxy/api"
	"github.com/alkautsarf/price-proxy/cache"
	"github.com/alkautsarf/price-proxy/coingecko_common"
	"github.com/alkautsarf/price-proxy/coingecko_native"
	"github.com/alkautsarf/price-proxy/coingecko_prices"
	"github.com/alkautsarf/price-proxy/coingecko_tokens"
	"github.com/alkautsarf/price-proxy/config"
)

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config) (*Registry, error) {
	registry := NewRegistry()

	// Create Cache service
	cacheService := cache.NewService(cache.DefaultCacheConfig())
	registry.Register(cacheService)

	// One throttle for the whole process so the minimum gap bounds
	// aggregate traffic to the provider
	throttle := coingecko_common.NewThrottle(cfg.Fetch.MinRequestGap)

	// Create Batch Prices service with cache and throttle dependencies
	pricesService := coingecko_prices.NewService(cacheService, cfg, throttle)
	registry.Register(pricesService)

	// Create Native Price service
	nativeService := coingecko_native.NewService(cfg, throttle)
	registry.Register(nativeService)

	// Create Tokens service with cache dependency
	tokensService := coingecko_tokens.NewService(cacheService, cfg, throttle)
	registry.Register(tokensService)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Create HTTP server and register it as a service
	server := api.New(port, pricesService, nativeService, tokensService)
	registry.Register(server)

	return registry, nil
}
