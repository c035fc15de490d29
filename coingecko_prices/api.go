package coingecko_prices

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	cg "github.com/alkautsarf/price-proxy/coingecko_common"
	"github.com/alkautsarf/price-proxy/config"
	"github.com/alkautsarf/price-proxy/interfaces"
	"github.com/alkautsarf/price-proxy/metrics"
)

// APIClient defines interface for upstream price operations
type APIClient interface {
	// FetchTokenPrice performs the primary simple token price lookup for
	// one address. A nil entry with nil error means the provider answered
	// but carried no entry for the address.
	FetchTokenPrice(ctx context.Context, platform, address string) (*interfaces.PriceEntry, error)

	// FetchContractDetail performs the fallback contract detail lookup.
	// A nil entry with nil error is a confirmed miss.
	FetchContractDetail(ctx context.Context, platform, address string) (*interfaces.PriceEntry, error)

	// FetchTokenPrices performs one batch simple token price call and
	// returns the raw provider response with lowercased keys
	FetchTokenPrices(ctx context.Context, platform string, addresses []string) (map[string]json.RawMessage, error)
}

// CoinGeckoClient implements APIClient for CoinGecko
type CoinGeckoClient struct {
	config            *config.Config
	primaryClient     *cg.HTTPClientWithRetries
	fallbackClient    *cg.HTTPClientWithRetries
	passthroughClient *cg.HTTPClientWithRetries
}

// NewCoinGeckoClient creates a new CoinGecko API client. The primary and
// fallback lookups carry separate retry budgets; the passthrough client
// performs a single attempt and surfaces upstream errors verbatim.
func NewCoinGeckoClient(cfg *config.Config, metricsWriter *metrics.MetricsWriter, throttle *cg.Throttle) *CoinGeckoClient {
	primaryOpts := cg.RetryOptions{
		MaxAttempts:    cfg.BatchPrices.PrimaryAttempts,
		BaseBackoff:    cfg.BatchPrices.PrimaryBackoff,
		LogPrefix:      "BatchPrices",
		RequestTimeout: cfg.Fetch.RequestTimeout,
	}
	fallbackOpts := cg.RetryOptions{
		MaxAttempts:    cfg.BatchPrices.FallbackAttempts,
		BaseBackoff:    cfg.BatchPrices.FallbackBackoff,
		LogPrefix:      "BatchPricesFallback",
		RequestTimeout: cfg.Fetch.RequestTimeout,
	}
	passthroughOpts := cg.RetryOptions{
		MaxAttempts:    1,
		LogPrefix:      "TokenPrices",
		RequestTimeout: cfg.Fetch.RequestTimeout,
	}

	return &CoinGeckoClient{
		config:            cfg,
		primaryClient:     cg.NewHTTPClientWithRetries(primaryOpts, metricsWriter, throttle),
		fallbackClient:    cg.NewHTTPClientWithRetries(fallbackOpts, metricsWriter, throttle),
		passthroughClient: cg.NewHTTPClientWithRetries(passthroughOpts, metricsWriter, throttle),
	}
}

// FetchTokenPrice fetches the price for one contract address via the simple
// token price endpoint
func (c *CoinGeckoClient) FetchTokenPrice(ctx context.Context, platform, address string) (*interfaces.PriceEntry, error) {
	request, err := NewTokenPriceRequestBuilder(cg.GetApiBaseUrl(c.config), platform).
		WithContractAddresses([]string{address}).
		WithUSDMetadata().
		WithAPIKey(c.config.APIKey).
		Build()
	if err != nil {
		return nil, err
	}

	body, err := c.primaryClient.ExecuteRequest(request.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return parsePriceResponse(body, address)
}

// FetchContractDetail fetches the price for one contract address via the
// coin contract detail endpoint
func (c *CoinGeckoClient) FetchContractDetail(ctx context.Context, platform, address string) (*interfaces.PriceEntry, error) {
	request, err := cg.NewContractDetailRequestBuilder(cg.GetApiBaseUrl(c.config), platform, address).
		WithMarketDataOnly().
		WithAPIKey(c.config.APIKey).
		Build()
	if err != nil {
		return nil, err
	}

	body, err := c.fallbackClient.ExecuteRequest(request.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return parseDetailResponse(body)
}

// FetchTokenPrices fetches prices for all addresses in one upstream call
func (c *CoinGeckoClient) FetchTokenPrices(ctx context.Context, platform string, addresses []string) (map[string]json.RawMessage, error) {
	request, err := NewTokenPriceRequestBuilder(cg.GetApiBaseUrl(c.config), platform).
		WithContractAddresses(addresses).
		WithUSDMetadata().
		WithAPIKey(c.config.APIKey).
		Build()
	if err != nil {
		return nil, err
	}

	body, err := c.passthroughClient.ExecuteRequest(request.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		log.Printf("TokenPrices: Error parsing JSON response: %v", err)
		return nil, err
	}

	// Normalize keys so clients can index by the addresses they sent
	normalized := make(map[string]json.RawMessage, len(raw))
	for key, value := range raw {
		normalized[strings.ToLower(key)] = value
	}

	return normalized, nil
}
