package coingecko_native

import (
	"strings"

	cg "github.com/alkautsarf/price-proxy/coingecko_common"
)

// SimplePriceRequestBuilder implements the Builder pattern for the simple
// price endpoint, which quotes coins by id rather than contract address
type SimplePriceRequestBuilder struct {
	*cg.RequestBuilder
}

// NewSimplePriceRequestBuilder creates a request builder for the
// /simple/price endpoint
func NewSimplePriceRequestBuilder(baseURL string) *SimplePriceRequestBuilder {
	return &SimplePriceRequestBuilder{
		RequestBuilder: cg.NewRequestBuilder(baseURL, "/api/v3/simple/price"),
	}
}

// WithIDs adds the ids parameter
func (rb *SimplePriceRequestBuilder) WithIDs(ids []string) *SimplePriceRequestBuilder {
	rb.With("ids", strings.Join(ids, ","))
	return rb
}

// WithCurrencyMetadata requests prices in the given currency with 24h
// change, market cap, volume and last-updated timestamps
func (rb *SimplePriceRequestBuilder) WithCurrencyMetadata(currency string) *SimplePriceRequestBuilder {
	rb.With("vs_currencies", currency).
		With("include_24hr_change", "true").
		With("include_market_cap", "true").
		With("include_24hr_vol", "true").
		With("include_last_updated_at", "true")
	return rb
}
