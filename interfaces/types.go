package interfaces

// PriceEntry represents one token's price snapshot as returned by the
// CoinGecko simple price endpoints. Optional fields are pointers so that
// the JSON shape matches the upstream response exactly: fields absent
// upstream stay absent in our output.
type PriceEntry struct {
	USD           float64  `json:"usd"`
	USD24hChange  *float64 `json:"usd_24h_change,omitempty"`
	USDMarketCap  *float64 `json:"usd_market_cap,omitempty"`
	USD24hVol     *float64 `json:"usd_24h_vol,omitempty"`
	LastUpdatedAt *int64   `json:"last_updated_at,omitempty"`
}

// BatchProgress tracks the state of one batch price fetch for a platform.
// A new batch for the same platform overwrites the previous record while
// the old batch keeps running to completion (latest-wins).
type BatchProgress struct {
	Platform  string `json:"platform,omitempty"`
	Total     int    `json:"total"`
	Processed int    `json:"processed"`
	Success   int    `json:"success"`
	StartAt   int64  `json:"startAt"`
	Running   bool   `json:"running"`
}

// TokenDetail is the extracted subset of the CoinGecko contract detail
// response served by the token-detail endpoint.
type TokenDetail struct {
	Price  *float64 `json:"price,omitempty"`
	Change *float64 `json:"change,omitempty"`
	Logo   string   `json:"logo,omitempty"`
}
