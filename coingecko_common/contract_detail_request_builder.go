package coingecko_common

import "fmt"

// ContractDetailRequestBuilder builds requests for the per-contract coin
// detail endpoint, used both as the batch fallback lookup and by the
// token-detail and token-logos services.
type ContractDetailRequestBuilder struct {
	*RequestBuilder
}

// NewContractDetailRequestBuilder creates a request builder for the
// /coins/{platform}/contract/{address} endpoint
func NewContractDetailRequestBuilder(baseURL, platform, address string) *ContractDetailRequestBuilder {
	apiPath := fmt.Sprintf("/api/v3/coins/%s/contract/%s", platform, address)
	return &ContractDetailRequestBuilder{
		RequestBuilder: NewRequestBuilder(baseURL, apiPath),
	}
}

// WithMarketDataOnly trims the response to market data: localization,
// tickers, community, developer and sparkline payloads are excluded.
func (rb *ContractDetailRequestBuilder) WithMarketDataOnly() *ContractDetailRequestBuilder {
	rb.With("localization", "false").
		With("tickers", "false").
		With("market_data", "true").
		With("community_data", "false").
		With("developer_data", "false").
		With("sparkline", "false")
	return rb
}
