package storefront

import (
	"context"

	"ashwi.GO/core/cache"
	"ashwi.GO/model/dto"
)

const (
	headerCategoriesKey = "storefront:header:categories"
	headerCategoriesTag = "header"

	// DefaultHeaderTTL is the fallback freshness window for the shared
	// header category list, in seconds.
	DefaultHeaderTTL = 300
)

// Header is the shared read-through cache behind the navigation
// header. Every page shows the category list; instead of one fetch per
// mount, all pages share this cache, refreshed on TTL expiry or
// explicit invalidation.
type Header struct {
	client *Client
	cache  *cache.Cache
	ttl    int64
}

func NewHeader(client *Client, ttlSeconds int64) *Header {
	if ttlSeconds <= 0 {
		ttlSeconds = DefaultHeaderTTL
	}
	return &Header{
		client: client,
		cache:  cache.NewCache(),
		ttl:    ttlSeconds,
	}
}

// Categories returns the cached category list, fetching through on miss.
func (h *Header) Categories(ctx context.Context) ([]dto.Category, error) {
	if v, ok := h.cache.Get(headerCategoriesKey); ok {
		return v.([]dto.Category), nil
	}
	cats, err := h.client.Categories(ctx)
	if err != nil {
		return nil, err
	}
	h.cache.Set(headerCategoriesKey, cats, h.ttl, []string{headerCategoriesTag})
	return cats, nil
}

// Invalidate drops the cached list (category-mutation event).
func (h *Header) Invalidate() {
	h.cache.DeleteByTag(headerCategoriesTag)
}
