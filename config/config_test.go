package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	return tmpfile.Name()
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("does-not-exist.yaml")
	require.NoError(t, err)

	assert.Equal(t, 7*time.Second, cfg.Fetch.RequestTimeout)
	assert.Equal(t, 150*time.Millisecond, cfg.Fetch.MinRequestGap)
	assert.Equal(t, 60*time.Second, cfg.BatchPrices.TTL)
	assert.Equal(t, 3, cfg.BatchPrices.Workers)
	assert.Equal(t, "ethereum", cfg.NativePrice.CoinID)
	assert.Zero(t, cfg.NativePrice.RefreshInterval)
}

func TestLoadConfig_PartialFileMergesDefaults(t *testing.T) {
	path := writeTempConfig(t, `
fetch:
  min_request_gap: 250ms
batch_prices:
  workers: 5
native_price:
  coin_id: matic-network
  refresh_interval: 55s
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Fetch.MinRequestGap)
	// Untouched fields keep defaults
	assert.Equal(t, 7*time.Second, cfg.Fetch.RequestTimeout)
	assert.Equal(t, 5, cfg.BatchPrices.Workers)
	assert.Equal(t, 3, cfg.BatchPrices.PrimaryAttempts)
	assert.Equal(t, 700*time.Millisecond, cfg.BatchPrices.FallbackBackoff)
	assert.Equal(t, "matic-network", cfg.NativePrice.CoinID)
	assert.Equal(t, 55*time.Second, cfg.NativePrice.RefreshInterval)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeTempConfig(t, "fetch: [not a mapping")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_OverrideURL(t *testing.T) {
	path := writeTempConfig(t, `override_coingecko_url: "http://localhost:9999"`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.OverrideCoingeckoURL)
}

func TestResolveAPIKey_FirstNonEmptyWins(t *testing.T) {
	for _, name := range apiKeyEnvVars {
		t.Setenv(name, "")
	}

	assert.Equal(t, "", ResolveAPIKey())

	t.Setenv("CG_KEY", "key-last")
	assert.Equal(t, "key-last", ResolveAPIKey())

	t.Setenv("COINGECKO_API_KEY", "key-second")
	assert.Equal(t, "key-second", ResolveAPIKey())

	// COINGECKO_API outranks COINGECKO_API_KEY
	t.Setenv("COINGECKO_API", "key-first")
	assert.Equal(t, "key-first", ResolveAPIKey())
}
