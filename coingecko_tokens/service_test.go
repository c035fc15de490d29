package coingecko_tokens

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alkautsarf/price-proxy/cache"
	cg "github.com/alkautsarf/price-proxy/coingecko_common"
	"github.com/alkautsarf/price-proxy/config"
)

type detailStub struct {
	server  *httptest.Server
	calls   atomic.Int64
	handler func(w http.ResponseWriter, address string)
}

func newDetailStub(t *testing.T) *detailStub {
	stub := &detailStub{}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/v3/coins/") {
			t.Errorf("unexpected upstream path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		stub.calls.Add(1)
		parts := strings.Split(r.URL.Path, "/")
		address := strings.ToLower(parts[len(parts)-1])
		if stub.handler != nil {
			stub.handler(w, address)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

func testTokensService(t *testing.T, stub *detailStub) *Service {
	cfg := config.DefaultConfig()
	cfg.OverrideCoingeckoURL = stub.server.URL

	logoCache := cache.NewService(cache.DefaultCacheConfig())
	require.NoError(t, logoCache.Start(context.Background()))
	t.Cleanup(logoCache.Stop)

	service := NewService(logoCache, cfg, cg.NewThrottle(0))
	require.NoError(t, service.Start(context.Background()))
	t.Cleanup(service.Stop)
	return service
}

func detailBody(usd, change float64, logo string) string {
	return fmt.Sprintf(`{
		"market_data": {
			"current_price": {"usd": %g},
			"price_change_percentage_24h_in_currency": {"usd": %g}
		},
		"image": {"small": "%s"}
	}`, usd, change, logo)
}

func TestTokenDetail_Full(t *testing.T) {
	stub := newDetailStub(t)
	stub.handler = func(w http.ResponseWriter, address string) {
		fmt.Fprint(w, detailBody(1.23, -4.5, "https://example.com/logo.png"))
	}

	service := testTokensService(t, stub)

	detail, err := service.TokenDetail(context.Background(), "ethereum", "0xAAA")
	require.NoError(t, err)

	require.NotNil(t, detail.Price)
	assert.Equal(t, 1.23, *detail.Price)
	require.NotNil(t, detail.Change)
	assert.Equal(t, -4.5, *detail.Change)
	assert.Equal(t, "https://example.com/logo.png", detail.Logo)
}

func TestTokenDetail_PartialFields(t *testing.T) {
	stub := newDetailStub(t)
	stub.handler = func(w http.ResponseWriter, address string) {
		fmt.Fprint(w, `{"image":{"thumb":"https://example.com/t.png"}}`)
	}

	service := testTokensService(t, stub)

	detail, err := service.TokenDetail(context.Background(), "ethereum", "0xaaa")
	require.NoError(t, err)

	assert.Nil(t, detail.Price)
	assert.Nil(t, detail.Change)
	assert.Equal(t, "https://example.com/t.png", detail.Logo)
}

func TestTokenDetail_UpstreamErrorSurfaced(t *testing.T) {
	stub := newDetailStub(t)
	stub.handler = func(w http.ResponseWriter, address string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"coin not found"}`)
	}

	service := testTokensService(t, stub)

	_, err := service.TokenDetail(context.Background(), "ethereum", "0xaaa")
	require.Error(t, err)

	upstreamErr, ok := cg.AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, upstreamErr.StatusCode)
	assert.Contains(t, string(upstreamErr.Body), "coin not found")

	// One-shot lookup, no retries
	assert.Equal(t, int64(1), stub.calls.Load())
}

func TestTokenDetail_BadRequest(t *testing.T) {
	stub := newDetailStub(t)
	service := testTokensService(t, stub)

	_, err := service.TokenDetail(context.Background(), "", "0xaaa")
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = service.TokenDetail(context.Background(), "ethereum", "")
	assert.ErrorIs(t, err, ErrBadRequest)

	assert.Equal(t, int64(0), stub.calls.Load())
}

func TestTokenLogos_BestEffortPartial(t *testing.T) {
	stub := newDetailStub(t)
	stub.handler = func(w http.ResponseWriter, address string) {
		switch address {
		case "0xaaa":
			fmt.Fprint(w, detailBody(1, 0, "https://example.com/a.png"))
		case "0xbbb":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			// Answers cleanly but carries no artwork
			fmt.Fprint(w, `{}`)
		}
	}

	service := testTokensService(t, stub)

	logos, err := service.TokenLogos(context.Background(), "ethereum", []string{"0xaaa", "0xbbb", "0xccc"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"0xaaa": "https://example.com/a.png"}, logos)
	assert.Equal(t, int64(3), stub.calls.Load())
}

func TestTokenLogos_CachedWithoutExpiration(t *testing.T) {
	stub := newDetailStub(t)
	stub.handler = func(w http.ResponseWriter, address string) {
		fmt.Fprint(w, detailBody(1, 0, "https://example.com/a.png"))
	}

	service := testTokensService(t, stub)

	first, err := service.TokenLogos(context.Background(), "ethereum", []string{"0xAAA"})
	require.NoError(t, err)
	require.Equal(t, "https://example.com/a.png", first["0xaaa"])
	require.Equal(t, int64(1), stub.calls.Load())

	second, err := service.TokenLogos(context.Background(), "ethereum", []string{"0xaaa"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.png", second["0xaaa"])

	// Served from the cache, no further upstream traffic
	assert.Equal(t, int64(1), stub.calls.Load())
}

func TestTokenLogos_DeduplicatesAddresses(t *testing.T) {
	stub := newDetailStub(t)
	stub.handler = func(w http.ResponseWriter, address string) {
		fmt.Fprint(w, detailBody(1, 0, "https://example.com/a.png"))
	}

	service := testTokensService(t, stub)

	logos, err := service.TokenLogos(context.Background(), "ethereum", []string{"0xaaa", " 0xAAA ", ""})
	require.NoError(t, err)
	assert.Len(t, logos, 1)
	assert.Equal(t, int64(1), stub.calls.Load())
}

func TestTokenLogos_BadRequest(t *testing.T) {
	stub := newDetailStub(t)
	service := testTokensService(t, stub)

	_, err := service.TokenLogos(context.Background(), "", []string{"0xaaa"})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = service.TokenLogos(context.Background(), "ethereum", nil)
	assert.ErrorIs(t, err, ErrBadRequest)
}
