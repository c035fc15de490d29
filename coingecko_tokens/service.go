package coingecko_tokens

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/alkautsarf/price-proxy/cache"
	cg "github.com/alkautsarf/price-proxy/coingecko_common"
	"github.com/alkautsarf/price-proxy/config"
	"github.com/alkautsarf/price-proxy/interfaces"
	"github.com/alkautsarf/price-proxy/metrics"
)

// ErrBadRequest indicates missing detail or logo input; handlers map it to
// a 400
var ErrBadRequest = errors.New("missing platform or contract address")

// Service resolves per-token detail and logo URLs from the contract detail
// endpoint. Details are one-shot lookups; logos are cached without
// expiration since artwork URLs are effectively immutable.
type Service struct {
	cache         cache.Cache
	config        *config.Config
	apiClient     APIClient
	metricsWriter *metrics.MetricsWriter
}

// NewService creates a new tokens service with the given cache and shared
// upstream throttle
func NewService(logoCache cache.Cache, cfg *config.Config, throttle *cg.Throttle) *Service {
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceTokens)

	return &Service{
		cache:         logoCache,
		config:        cfg,
		apiClient:     NewCoinGeckoClient(cfg, metricsWriter, throttle),
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

// TokenDetail fetches price, 24h change and logo for one contract address.
// Upstream failures are surfaced to the caller for verbatim passthrough.
func (s *Service) TokenDetail(ctx context.Context, platform, address string) (interfaces.TokenDetail, error) {
	if platform == "" || address == "" {
		return interfaces.TokenDetail{}, ErrBadRequest
	}

	address = strings.ToLower(strings.TrimSpace(address))
	response, err := s.apiClient.FetchContractDetail(ctx, platform, address)
	if err != nil {
		return interfaces.TokenDetail{}, err
	}

	var detail interfaces.TokenDetail
	if price, ok := response.PriceUSD(); ok {
		detail.Price = &price
	}
	if change, ok := response.Change24hUSD(); ok {
		detail.Change = &change
	}
	detail.Logo = response.LogoURL()

	return detail, nil
}

// TokenLogos resolves logo URLs for a set of contract addresses. Lookups
// run sequentially, failures are skipped and the returned map carries only
// the addresses that resolved.
func (s *Service) TokenLogos(ctx context.Context, platform string, contracts []string) (map[string]string, error) {
	if platform == "" || len(contracts) == 0 {
		return nil, ErrBadRequest
	}

	out := make(map[string]string)
	for _, contract := range contracts {
		address := strings.ToLower(strings.TrimSpace(contract))
		if address == "" {
			continue
		}
		if _, seen := out[address]; seen {
			continue
		}

		cacheKey := logoCacheKey(platform, address)
		if data, found := s.cache.Get(cacheKey); found {
			out[address] = string(data)
			continue
		}

		response, err := s.apiClient.FetchContractDetail(ctx, platform, address)
		if err != nil {
			log.Printf("Tokens: Logo lookup failed for %s on %s: %v", address, platform, err)
			continue
		}

		logo := response.LogoURL()
		if logo == "" {
			continue
		}

		s.cache.Set(cacheKey, []byte(logo), cache.NoExpiration)
		out[address] = logo
	}

	return out, nil
}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	return true
}

func logoCacheKey(platform, address string) string {
	return fmt.Sprintf("logo:%s:%s", platform, address)
}
