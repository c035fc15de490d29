package coingecko_common

import "encoding/json"

// ContractDetailResponse mirrors the subset of the CoinGecko contract detail
// payload this proxy consumes. Keeping the shape here confines knowledge of
// the third-party JSON structure to this package.
type ContractDetailResponse struct {
	MarketData *struct {
		CurrentPrice                       map[string]float64 `json:"current_price"`
		PriceChangePercentage24hInCurrency map[string]float64 `json:"price_change_percentage_24h_in_currency"`
		PriceChangePercentage24h           *float64           `json:"price_change_percentage_24h"`
	} `json:"market_data"`
	Image struct {
		Small string `json:"small"`
		Thumb string `json:"thumb"`
	} `json:"image"`
}

// ParseContractDetail decodes a contract detail response body
func ParseContractDetail(body []byte) (*ContractDetailResponse, error) {
	var detail ContractDetailResponse
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// PriceUSD returns the current USD price when present
func (d *ContractDetailResponse) PriceUSD() (float64, bool) {
	if d.MarketData == nil {
		return 0, false
	}
	price, ok := d.MarketData.CurrentPrice["usd"]
	return price, ok
}

// Change24hUSD returns the 24h change percentage, preferring the
// per-currency USD figure over the generic one.
func (d *ContractDetailResponse) Change24hUSD() (float64, bool) {
	if d.MarketData == nil {
		return 0, false
	}
	if change, ok := d.MarketData.PriceChangePercentage24hInCurrency["usd"]; ok {
		return change, true
	}
	if d.MarketData.PriceChangePercentage24h != nil {
		return *d.MarketData.PriceChangePercentage24h, true
	}
	return 0, false
}

// LogoURL returns the small image URL, falling back to the thumbnail
func (d *ContractDetailResponse) LogoURL() string {
	if d.Image.Small != "" {
		return d.Image.Small
	}
	return d.Image.Thumb
}
