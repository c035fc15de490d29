package coingecko_prices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alkautsarf/price-proxy/cache"
	cg "github.com/alkautsarf/price-proxy/coingecko_common"
	"github.com/alkautsarf/price-proxy/config"
	"github.com/alkautsarf/price-proxy/interfaces"
	"github.com/alkautsarf/price-proxy/metrics"
)

// ErrBadRequest indicates missing batch input; handlers map it to a 400
var ErrBadRequest = errors.New("missing platform or contract_addresses")

// cachedNull marks a confirmed "no price found" so failing lookups are not
// repeated within the TTL window
var cachedNull = []byte("null")

// Service resolves prices for sets of contract addresses with bounded
// upstream concurrency, caching and per-address fallback
type Service struct {
	cache         cache.Cache
	config        *config.Config
	apiClient     APIClient
	progress      *ProgressTracker
	metricsWriter *metrics.MetricsWriter
}

// NewService creates a new batch prices service with the given cache and
// shared upstream throttle
func NewService(priceCache cache.Cache, cfg *config.Config, throttle *cg.Throttle) *Service {
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceBatchPrices)

	return &Service{
		cache:         priceCache,
		config:        cfg,
		apiClient:     NewCoinGeckoClient(cfg, metricsWriter, throttle),
		progress:      NewProgressTracker(),
		metricsWriter: metricsWriter,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.cache == nil {
		return fmt.Errorf("cache dependency not provided")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// FetchBatch resolves prices for a set of contract addresses on one
// platform. Addresses that end with no resolvable price are recorded in the
// cache as confirmed misses and omitted from the result; a single failing
// address never fails the batch.
func (s *Service) FetchBatch(ctx context.Context, platform string, addresses []string) (map[string]interfaces.PriceEntry, error) {
	if platform == "" || len(addresses) == 0 {
		return nil, ErrBadRequest
	}

	list := normalizeAddresses(addresses)
	startTime := time.Now()
	s.progress.StartBatch(platform, len(list))

	log.Printf("BatchPrices: Fetching prices for %d addresses on %s", len(list), platform)

	out := make(map[string]interfaces.PriceEntry)
	var outMu sync.Mutex

	workers := s.config.BatchPrices.Workers
	if workers > len(list) {
		workers = len(list)
	}

	// Workers race for the next index; each address is driven to a
	// terminal state by exactly one worker
	var cursor atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				next := int(cursor.Add(1)) - 1
				if next >= len(list) {
					return
				}
				address := list[next]
				if entry := s.fetchOne(ctx, platform, address); entry != nil {
					outMu.Lock()
					out[address] = *entry
					outMu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	s.progress.FinishBatch(platform)
	s.metricsWriter.RecordBatchFetch(platform, len(list), time.Since(startTime))
	log.Printf("BatchPrices: Resolved %d/%d addresses on %s in %.2fs",
		len(out), len(list), platform, time.Since(startTime).Seconds())

	return out, nil
}

// fetchOne drives a single address to a terminal outcome: cache hit,
// primary lookup, fallback lookup, or confirmed miss
func (s *Service) fetchOne(ctx context.Context, platform, address string) *interfaces.PriceEntry {
	cacheKey := priceCacheKey(platform, address)

	if data, found := s.cache.Get(cacheKey); found {
		entry := decodeCachedEntry(data)
		s.progress.RecordOutcome(platform, entry != nil)
		return entry
	}

	entry, err := s.apiClient.FetchTokenPrice(ctx, platform, address)
	if err != nil || entry == nil {
		if err != nil {
			log.Printf("BatchPrices: Primary lookup failed for %s on %s: %v", address, platform, err)
		}
		entry, err = s.apiClient.FetchContractDetail(ctx, platform, address)
		if err != nil {
			log.Printf("BatchPrices: Fallback lookup failed for %s on %s: %v", address, platform, err)
			entry = nil
		}
	}

	if entry != nil {
		if data, err := json.Marshal(entry); err == nil {
			s.cache.Set(cacheKey, data, s.config.BatchPrices.TTL)
		}
		s.progress.RecordOutcome(platform, true)
		return entry
	}

	s.cache.Set(cacheKey, cachedNull, s.config.BatchPrices.TTL)
	s.progress.RecordOutcome(platform, false)
	return nil
}

// Progress returns the current batch progress for a platform
func (s *Service) Progress(platform string) interfaces.BatchProgress {
	return s.progress.Get(platform)
}

// SimpleTokenPrices performs a single upstream batch simple price call and
// returns the provider response with lowercased keys. Upstream failures are
// surfaced to the caller for verbatim passthrough.
func (s *Service) SimpleTokenPrices(ctx context.Context, platform string, addresses []string) (map[string]json.RawMessage, error) {
	if platform == "" || len(addresses) == 0 {
		return nil, ErrBadRequest
	}

	list := normalizeAddresses(addresses)
	return s.apiClient.FetchTokenPrices(ctx, platform, list)
}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	return true
}

// decodeCachedEntry decodes a cached payload; a stored JSON null (confirmed
// miss) decodes to nil
func decodeCachedEntry(data []byte) *interfaces.PriceEntry {
	var entry *interfaces.PriceEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}
	return entry
}
