package cache

import (
	"context"
	"fmt"
	"time"
)

// Service implements Cache on top of go-cache
type Service struct {
	goCache *GoCache
	config  Config
}

// NewService creates a new cache service with the given configuration
func NewService(config Config) *Service {
	if config.DefaultExpiration <= 0 {
		config = DefaultCacheConfig()
	}

	return &Service{
		goCache: NewGoCache(config.DefaultExpiration, config.CleanupInterval),
		config:  config,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.goCache == nil {
		return fmt.Errorf("cache service not properly initialized")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	if s.goCache != nil {
		s.goCache.Clear()
	}
}

// Get retrieves the value for a key
func (s *Service) Get(key string) ([]byte, bool) {
	return s.goCache.Get(key)
}

// Set stores a value with the given TTL
func (s *Service) Set(key string, value []byte, ttl time.Duration) {
	s.goCache.Set(key, value, ttl)
}

// Delete removes a key
func (s *Service) Delete(key string) {
	s.goCache.Delete(key)
}

// ItemCount returns the number of items currently cached
func (s *Service) ItemCount() int {
	return s.goCache.ItemCount()
}
