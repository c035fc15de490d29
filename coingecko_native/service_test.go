package coingecko_native

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cg "github.com/alkautsarf/price-proxy/coingecko_common"
	"github.com/alkautsarf/price-proxy/config"
	"github.com/alkautsarf/price-proxy/interfaces"
)

// stubAPIClient returns scripted results and counts fetches. An optional
// gate blocks the fetch until released so tests can pile up callers.
type stubAPIClient struct {
	mu    sync.Mutex
	entry *interfaces.PriceEntry
	err   error
	calls atomic.Int64
	gate  chan struct{}
}

func (s *stubAPIClient) FetchNativePrice(ctx context.Context) (*interfaces.PriceEntry, error) {
	s.calls.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entry, s.err
}

func (s *stubAPIClient) set(entry *interfaces.PriceEntry, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry = entry
	s.err = err
}

func quote(usd float64) *interfaces.PriceEntry {
	return &interfaces.PriceEntry{USD: usd}
}

func testNativeService(stub *stubAPIClient) *Service {
	cfg := config.DefaultConfig()
	service := NewService(cfg, cg.NewThrottle(0))
	service.apiClient = stub
	return service
}

func TestNativePrice_CachedWithinTTL(t *testing.T) {
	stub := &stubAPIClient{entry: quote(2500)}
	service := testNativeService(stub)

	first, err := service.NativePrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(2500), first.USD)

	stub.set(quote(2600), nil)
	second, err := service.NativePrice(context.Background())
	require.NoError(t, err)

	// Still the cached quote, no second fetch
	assert.Equal(t, float64(2500), second.USD)
	assert.Equal(t, int64(1), stub.calls.Load())
}

func TestNativePrice_ConcurrentCallersShareOneFetch(t *testing.T) {
	stub := &stubAPIClient{entry: quote(2500), gate: make(chan struct{})}
	service := testNativeService(stub)

	const callers = 10
	results := make(chan float64, callers)
	errs := make(chan error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entry, err := service.NativePrice(context.Background())
			results <- entry.USD
			errs <- err
		}()
	}

	// Let the callers queue up behind the single in-flight fetch
	require.Eventually(t, func() bool {
		return stub.calls.Load() == 1
	}, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(stub.gate)
	wg.Wait()

	close(results)
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	for usd := range results {
		assert.Equal(t, float64(2500), usd)
	}
	assert.Equal(t, int64(1), stub.calls.Load())
}

func TestNativePrice_StaleServedOnFailure(t *testing.T) {
	stub := &stubAPIClient{entry: quote(2500)}
	service := testNativeService(stub)
	service.config.NativePrice.TTL = 10 * time.Millisecond

	first, err := service.NativePrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(2500), first.USD)

	stub.set(nil, errors.New("upstream down"))
	time.Sleep(20 * time.Millisecond)

	// The refresh fails but the stale quote is still served
	second, err := service.NativePrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(2500), second.USD)
	assert.Equal(t, int64(2), stub.calls.Load())
}

func TestNativePrice_ErrorWhenNeverCached(t *testing.T) {
	stub := &stubAPIClient{err: errors.New("upstream down")}
	service := testNativeService(stub)

	_, err := service.NativePrice(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestNativePrice_RecoversAfterFailure(t *testing.T) {
	stub := &stubAPIClient{err: errors.New("upstream down")}
	service := testNativeService(stub)

	_, err := service.NativePrice(context.Background())
	require.Error(t, err)

	stub.set(quote(2500), nil)
	entry, err := service.NativePrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(2500), entry.USD)
}

func TestNativePrice_BackgroundRefreshWarmsCache(t *testing.T) {
	stub := &stubAPIClient{entry: quote(2500)}
	service := testNativeService(stub)
	service.config.NativePrice.RefreshInterval = 10 * time.Millisecond

	require.NoError(t, service.Start(context.Background()))
	defer service.Stop()

	require.Eventually(t, func() bool {
		return stub.calls.Load() >= 1
	}, time.Second, time.Millisecond)

	entry, err := service.NativePrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(2500), entry.USD)
}
