package cache

import "time"

// Cache is the byte-oriented TTL cache used by the price services.
//
// Values are opaque JSON payloads. A stored value may represent a confirmed
// negative result (the services use the literal JSON null for that), so a
// found=true result does not imply usable data.
//
//go:generate mockgen -destination=mocks/cache.go . Cache
type Cache interface {
	// Get retrieves the value for a key. Expired entries are treated as
	// absent (lazy expiry).
	Get(key string) ([]byte, bool)

	// Set stores a value with the given TTL, overwriting unconditionally.
	// A zero ttl uses the cache default; NoExpiration stores forever.
	Set(key string, value []byte, ttl time.Duration)

	// Delete removes a key
	Delete(key string)
}

// NoExpiration marks an entry that never expires
const NoExpiration time.Duration = -1
