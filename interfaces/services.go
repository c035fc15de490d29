package interfaces

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -destination=mocks/services.go . BatchPricesService,NativePriceService,TokensService

// BatchPricesService defines the interface for the batch price orchestrator
type BatchPricesService interface {
	// FetchBatch resolves prices for a set of contract addresses on one
	// platform. Addresses are normalized (trimmed, lowercased, deduped)
	// before processing. Addresses with no resolvable price are omitted
	// from the result.
	FetchBatch(ctx context.Context, platform string, addresses []string) (map[string]PriceEntry, error)

	// Progress returns the current batch progress for a platform.
	// Returns a zero-valued, not-running record when no batch was recorded.
	Progress(platform string) BatchProgress

	// SimpleTokenPrices performs a single upstream batch simple price call
	// and returns the provider response with lowercased keys.
	SimpleTokenPrices(ctx context.Context, platform string, addresses []string) (map[string]json.RawMessage, error)

	// Healthy checks if the service is operational
	Healthy() bool
}

// NativePriceService defines the interface for the native asset price service
type NativePriceService interface {
	// NativePrice returns the native asset price, serving a cached value
	// within the TTL and deduplicating concurrent upstream fetches. On
	// upstream failure the last cached value is served even if stale.
	NativePrice(ctx context.Context) (PriceEntry, error)

	// Healthy checks if the service is operational
	Healthy() bool
}

// TokensService defines the interface for per-contract token lookups
type TokensService interface {
	// TokenDetail performs a one-shot contract detail lookup
	TokenDetail(ctx context.Context, platform, address string) (TokenDetail, error)

	// TokenLogos resolves logo URLs for contracts, best-effort.
	// Failing addresses are skipped and a partial map is returned.
	TokenLogos(ctx context.Context, platform string, contracts []string) (map[string]string, error)

	// Healthy checks if the service is operational
	Healthy() bool
}
