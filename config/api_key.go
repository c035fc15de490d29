package config

import "os"

// apiKeyEnvVars lists the environment variables checked for the CoinGecko
// API key, in priority order. The first non-empty value wins.
var apiKeyEnvVars = []string{
	"COINGECKO_API",
	"COINGECKO_API_KEY",
	"CG_API_KEY",
	"CG_KEY",
}

// ResolveAPIKey returns the upstream API key from the environment.
// An empty result means unauthenticated access to the public API.
func ResolveAPIKey() string {
	for _, name := range apiKeyEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
