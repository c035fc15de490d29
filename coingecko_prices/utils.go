package coingecko_prices

import (
	"fmt"
	"strings"
)

// normalizeAddresses trims, lowercases and de-duplicates contract
// addresses, preserving first-occurrence order. Case and surrounding
// whitespace are not significant in address identity.
func normalizeAddresses(addresses []string) []string {
	seen := make(map[string]bool, len(addresses))
	result := make([]string, 0, len(addresses))

	for _, address := range addresses {
		normalized := strings.ToLower(strings.TrimSpace(address))
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		result = append(result, normalized)
	}

	return result
}

// priceCacheKey builds the cache key for one platform/address pair
func priceCacheKey(platform, address string) string {
	return fmt.Sprintf("price:%s:%s", platform, address)
}
