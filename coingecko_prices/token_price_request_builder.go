package coingecko_prices

import (
	"fmt"
	"strings"

	cg "github.com/alkautsarf/price-proxy/coingecko_common"
)

// TokenPriceRequestBuilder implements the Builder pattern for the
// per-platform simple token price endpoint
type TokenPriceRequestBuilder struct {
	*cg.RequestBuilder
}

// NewTokenPriceRequestBuilder creates a request builder for the
// /simple/token_price/{platform} endpoint
func NewTokenPriceRequestBuilder(baseURL, platform string) *TokenPriceRequestBuilder {
	apiPath := fmt.Sprintf("/api/v3/simple/token_price/%s", platform)
	return &TokenPriceRequestBuilder{
		RequestBuilder: cg.NewRequestBuilder(baseURL, apiPath),
	}
}

// WithContractAddresses adds the contract_addresses parameter
func (rb *TokenPriceRequestBuilder) WithContractAddresses(addresses []string) *TokenPriceRequestBuilder {
	rb.With("contract_addresses", strings.Join(addresses, ","))
	return rb
}

// WithUSDMetadata requests USD prices with 24h change, market cap, volume
// and last-updated timestamps
func (rb *TokenPriceRequestBuilder) WithUSDMetadata() *TokenPriceRequestBuilder {
	rb.With("vs_currencies", "usd").
		With("include_24hr_change", "true").
		With("include_market_cap", "true").
		With("include_24hr_vol", "true").
		With("include_last_updated_at", "true")
	return rb
}
