package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// ResultCache keeps evaluated listing results keyed by the request that produced them.
type ResultCache struct {
	cache *cache.Cache
}

func NewResultCache(ttl, cleanupInterval time.Duration) *ResultCache {
	return &ResultCache{
		cache: cache.New(ttl, cleanupInterval),
	}
}

func (r *ResultCache) Save(key string, value interface{}) {
	r.cache.Set(key, value, cache.DefaultExpiration)
}

func (r *ResultCache) Get(key string) (interface{}, bool) {
	return r.cache.Get(key)
}

func (r *ResultCache) Delete(key string) {
	r.cache.Delete(key)
}

// Flush drops every cached result, e.g. after the catalog changes.
func (r *ResultCache) Flush() {
	r.cache.Flush()
}

func (r *ResultCache) ItemCount() int {
	return r.cache.ItemCount()
}
