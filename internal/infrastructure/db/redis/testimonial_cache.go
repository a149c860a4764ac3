package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

const (
	testimonialCacheKey = "testimonials:active"
	testimonialCacheTTL = 5 * time.Minute
)

// TestimonialCache caches the public active-testimonial listing in Redis.
// Entries expire after a short TTL and are invalidated eagerly on any
// moderation or testimonial mutation.
type TestimonialCache struct {
	client *redis.Client
}

func NewTestimonialCache(client *redis.Client) *TestimonialCache {
	return &TestimonialCache{client: client}
}

// Get returns the cached listing; a miss is (nil, false, nil).
func (c *TestimonialCache) Get(ctx context.Context) ([]*domain.Testimonial, bool, error) {
	raw, err := c.client.Get(ctx, testimonialCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("testimonial cache get: %w", err)
	}

	var items []*domain.Testimonial
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("testimonial cache decode: %w", err)
	}
	return items, true, nil
}

func (c *TestimonialCache) Set(ctx context.Context, items []*domain.Testimonial) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("testimonial cache encode: %w", err)
	}
	return c.client.Set(ctx, testimonialCacheKey, raw, testimonialCacheTTL).Err()
}

func (c *TestimonialCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, testimonialCacheKey).Err()
}
