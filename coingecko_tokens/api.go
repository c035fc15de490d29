package coingecko_tokens

import (
	"context"

	cg "github.com/alkautsarf/price-proxy/coingecko_common"
	"github.com/alkautsarf/price-proxy/config"
	"github.com/alkautsarf/price-proxy/metrics"
)

// APIClient defines interface for contract detail operations
type APIClient interface {
	// FetchContractDetail fetches the raw contract detail document for one
	// address in a single attempt
	FetchContractDetail(ctx context.Context, platform, address string) (*cg.ContractDetailResponse, error)
}

// CoinGeckoClient implements APIClient for CoinGecko
type CoinGeckoClient struct {
	config     *config.Config
	httpClient *cg.HTTPClientWithRetries
}

// NewCoinGeckoClient creates a new CoinGecko API client. Detail lookups are
// one-shot; callers see upstream failures directly.
func NewCoinGeckoClient(cfg *config.Config, metricsWriter *metrics.MetricsWriter, throttle *cg.Throttle) *CoinGeckoClient {
	opts := cg.RetryOptions{
		MaxAttempts:    1,
		LogPrefix:      "Tokens",
		RequestTimeout: cfg.Fetch.RequestTimeout,
	}

	return &CoinGeckoClient{
		config:     cfg,
		httpClient: cg.NewHTTPClientWithRetries(opts, metricsWriter, throttle),
	}
}

// FetchContractDetail fetches the contract detail document for one address
func (c *CoinGeckoClient) FetchContractDetail(ctx context.Context, platform, address string) (*cg.ContractDetailResponse, error) {
	request, err := cg.NewContractDetailRequestBuilder(cg.GetApiBaseUrl(c.config), platform, address).
		WithMarketDataOnly().
		WithAPIKey(c.config.APIKey).
		Build()
	if err != nil {
		return nil, err
	}

	body, err := c.httpClient.ExecuteRequest(request.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return cg.ParseContractDetail(body)
}
