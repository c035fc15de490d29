package coingecko_native

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	cg "github.com/alkautsarf/price-proxy/coingecko_common"
	"github.com/alkautsarf/price-proxy/config"
	"github.com/alkautsarf/price-proxy/interfaces"
	"github.com/alkautsarf/price-proxy/metrics"
	"github.com/alkautsarf/price-proxy/scheduler"
)

// Service serves the native coin quote from a single-slot cache. Concurrent
// callers behind a cold or expired cache share one upstream fetch, and a
// failing refresh falls back to the last known quote regardless of age.
type Service struct {
	config        *config.Config
	apiClient     APIClient
	metricsWriter *metrics.MetricsWriter
	refresher     *scheduler.Scheduler

	mu       sync.Mutex
	cached   *interfaces.PriceEntry
	cachedAt time.Time
	inflight chan struct{}
	lastErr  error
}

// NewService creates a new native price service sharing the process-wide
// upstream throttle
func NewService(cfg *config.Config, throttle *cg.Throttle) *Service {
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceNativePrice)

	return &Service{
		config:        cfg,
		apiClient:     NewCoinGeckoClient(cfg, metricsWriter, throttle),
		metricsWriter: metricsWriter,
	}
}

// Start implements core.Interface. When a refresh interval is configured
// the cache is warmed in the background so callers rarely hit a cold slot.
func (s *Service) Start(ctx context.Context) error {
	if s.config.NativePrice.RefreshInterval > 0 {
		s.refresher = scheduler.New(s.config.NativePrice.RefreshInterval, func(taskCtx context.Context) {
			refreshCtx, cancel := context.WithTimeout(taskCtx, s.config.Fetch.RequestTimeout)
			defer cancel()
			if _, err := s.NativePrice(refreshCtx); err != nil {
				log.Printf("NativePrice: Background refresh failed: %v", err)
			}
		})
		s.refresher.Start(ctx, true)
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	if s.refresher != nil {
		s.refresher.Stop()
	}
}

// NativePrice returns the native coin quote. A quote younger than the TTL
// is served directly; otherwise one caller refreshes while the rest wait
// for its result.
func (s *Service) NativePrice(ctx context.Context) (interfaces.PriceEntry, error) {
	s.mu.Lock()

	if s.cached != nil && time.Since(s.cachedAt) < s.config.NativePrice.TTL {
		entry := *s.cached
		s.mu.Unlock()
		return entry, nil
	}

	if s.inflight != nil {
		done := s.inflight
		s.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return interfaces.PriceEntry{}, ctx.Err()
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.cached != nil {
			return *s.cached, nil
		}
		return interfaces.PriceEntry{}, s.lastErr
	}

	done := make(chan struct{})
	s.inflight = done
	s.mu.Unlock()

	entry, err := s.apiClient.FetchNativePrice(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil && entry == nil {
		err = fmt.Errorf("empty quote for coin %s", s.config.NativePrice.CoinID)
	}

	if err == nil {
		s.cached = entry
		s.cachedAt = time.Now()
		s.lastErr = nil
	} else {
		s.lastErr = err
		if s.cached != nil {
			log.Printf("NativePrice: Refresh failed, serving quote from %s: %v",
				s.cachedAt.Format(time.RFC3339), err)
		}
	}

	s.inflight = nil
	close(done)

	if s.cached != nil {
		return *s.cached, nil
	}
	return interfaces.PriceEntry{}, err
}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	return true
}
