package coingecko_native

import (
	"context"
	"encoding/json"
	"fmt"

	cg "github.com/alkautsarf/price-proxy/coingecko_common"
	"github.com/alkautsarf/price-proxy/config"
	"github.com/alkautsarf/price-proxy/interfaces"
	"github.com/alkautsarf/price-proxy/metrics"
)

// APIClient defines interface for the native coin price lookup
type APIClient interface {
	// FetchNativePrice fetches the configured coin's quote in one attempt
	FetchNativePrice(ctx context.Context) (*interfaces.PriceEntry, error)
}

// CoinGeckoClient implements APIClient for CoinGecko
type CoinGeckoClient struct {
	config     *config.Config
	httpClient *cg.HTTPClientWithRetries
}

// NewCoinGeckoClient creates a new CoinGecko API client. The lookup is a
// single attempt; the service layer falls back to its cached quote on
// failure instead of retrying.
func NewCoinGeckoClient(cfg *config.Config, metricsWriter *metrics.MetricsWriter, throttle *cg.Throttle) *CoinGeckoClient {
	opts := cg.RetryOptions{
		MaxAttempts:    1,
		LogPrefix:      "NativePrice",
		RequestTimeout: cfg.Fetch.RequestTimeout,
	}

	return &CoinGeckoClient{
		config:     cfg,
		httpClient: cg.NewHTTPClientWithRetries(opts, metricsWriter, throttle),
	}
}

// FetchNativePrice fetches the quote for the configured coin id
func (c *CoinGeckoClient) FetchNativePrice(ctx context.Context) (*interfaces.PriceEntry, error) {
	coinID := c.config.NativePrice.CoinID

	request, err := NewSimplePriceRequestBuilder(cg.GetApiBaseUrl(c.config)).
		WithIDs([]string{coinID}).
		WithCurrencyMetadata(c.config.NativePrice.Currency).
		WithAPIKey(c.config.APIKey).
		Build()
	if err != nil {
		return nil, err
	}

	body, err := c.httpClient.ExecuteRequest(request.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	var response map[string]interfaces.PriceEntry
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse simple price response: %w", err)
	}

	entry, ok := response[coinID]
	if !ok {
		return nil, fmt.Errorf("no quote for coin %s in response", coinID)
	}

	return &entry, nil
}
