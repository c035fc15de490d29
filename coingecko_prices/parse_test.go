package coingecko_prices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceResponse_Found(t *testing.T) {
	body := []byte(`{"0xabc":{"usd":2.5,"usd_24h_change":-1.2,"usd_market_cap":1000000,"last_updated_at":1700000000}}`)

	entry, err := parsePriceResponse(body, "0xabc")
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, 2.5, entry.USD)
	require.NotNil(t, entry.USD24hChange)
	assert.Equal(t, -1.2, *entry.USD24hChange)
	require.NotNil(t, entry.USDMarketCap)
	assert.Equal(t, float64(1000000), *entry.USDMarketCap)
	require.NotNil(t, entry.LastUpdatedAt)
	assert.Equal(t, int64(1700000000), *entry.LastUpdatedAt)
	assert.Nil(t, entry.USD24hVol)
}

func TestParsePriceResponse_ChecksummedKey(t *testing.T) {
	// The provider may echo a checksummed form of the requested address
	body := []byte(`{"0xabc":{"usd":1}}`)

	entry, err := parsePriceResponse(body, "0xABC")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, float64(1), entry.USD)
}

func TestParsePriceResponse_Missing(t *testing.T) {
	entry, err := parsePriceResponse([]byte(`{}`), "0xabc")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestParsePriceResponse_Malformed(t *testing.T) {
	_, err := parsePriceResponse([]byte(`not json`), "0xabc")
	assert.Error(t, err)
}

func TestParseDetailResponse_Full(t *testing.T) {
	body := []byte(`{
		"market_data": {
			"current_price": {"usd": 3.14},
			"price_change_percentage_24h_in_currency": {"usd": 5.5},
			"price_change_percentage_24h": 4.4
		},
		"image": {"small": "https://example.com/s.png", "thumb": "https://example.com/t.png"}
	}`)

	entry, err := parseDetailResponse(body)
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, 3.14, entry.USD)
	require.NotNil(t, entry.USD24hChange)
	// Per-currency change preferred over the generic figure
	assert.Equal(t, 5.5, *entry.USD24hChange)
}

func TestParseDetailResponse_GenericChangeFallback(t *testing.T) {
	body := []byte(`{"market_data":{"current_price":{"usd":1},"price_change_percentage_24h":4.4}}`)

	entry, err := parseDetailResponse(body)
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.NotNil(t, entry.USD24hChange)
	assert.Equal(t, 4.4, *entry.USD24hChange)
}

func TestParseDetailResponse_NoPriceIsMiss(t *testing.T) {
	entry, err := parseDetailResponse([]byte(`{"market_data":{"current_price":{}}}`))
	require.NoError(t, err)
	assert.Nil(t, entry)

	entry, err = parseDetailResponse([]byte(`{}`))
	require.NoError(t, err)
	assert.Nil(t, entry)
}
