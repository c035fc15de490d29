package coingecko_prices

import (
	"encoding/json"
	"strings"

	cg "github.com/alkautsarf/price-proxy/coingecko_common"
	"github.com/alkautsarf/price-proxy/interfaces"
)

// parsePriceResponse extracts the entry for one address from a simple token
// price response. Returns nil when the response carries no entry for the
// address, which callers treat as "fall through to the detail lookup".
func parsePriceResponse(body []byte, address string) (*interfaces.PriceEntry, error) {
	var prices map[string]interfaces.PriceEntry
	if err := json.Unmarshal(body, &prices); err != nil {
		return nil, err
	}

	if entry, found := prices[address]; found {
		return &entry, nil
	}
	// The provider sometimes echoes checksummed addresses
	for key, entry := range prices {
		if strings.EqualFold(key, address) {
			return &entry, nil
		}
	}
	return nil, nil
}

// parseDetailResponse extracts a price entry from a contract detail
// response. Returns nil when the detail payload carries no USD price,
// which is a confirmed miss.
func parseDetailResponse(body []byte) (*interfaces.PriceEntry, error) {
	detail, err := cg.ParseContractDetail(body)
	if err != nil {
		return nil, err
	}

	price, ok := detail.PriceUSD()
	if !ok {
		return nil, nil
	}

	entry := &interfaces.PriceEntry{USD: price}
	if change, ok := detail.Change24hUSD(); ok {
		entry.USD24hChange = &change
	}
	return entry, nil
}
