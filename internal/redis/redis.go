package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/JonasLeetTheWay/fyyur/internal/config"
	"github.com/JonasLeetTheWay/fyyur/internal/directory"
	"github.com/go-redis/redis/v8"
)

const listingsKey = "fyyur:venues:listings"

// Client caches the data behind the venues-by-area view. A nil *Client is a disabled cache:
// reads always miss and writes do nothing.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewClient returns nil when no Redis host is configured or caching is off.
func NewClient(cfg *config.Config) *Client {
	if cfg.RedisHost == "" || !cfg.CacheEnabled {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0,
	})

	return &Client{rdb: rdb, ttl: cfg.CacheTTL}
}

func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

// GetVenueListings returns the cached venue listings. ok is false on a miss;
// err is set only when Redis itself failed or the payload could not be decoded.
func (c *Client) GetVenueListings(ctx context.Context) (listings []directory.VenueListing, ok bool, err error) {
	if c == nil {
		return nil, false, nil
	}

	payload, err := c.rdb.Get(ctx, listingsKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached venue listings: %w", err)
	}

	if err := json.Unmarshal(payload, &listings); err != nil {
		return nil, false, fmt.Errorf("invalid cached venue listings: %w", err)
	}
	return listings, true, nil
}

// SetVenueListings stores the listings until the configured TTL expires.
// Listings carry show start times, not counts, so a cached entry never goes
// stale by the clock alone.
func (c *Client) SetVenueListings(ctx context.Context, listings []directory.VenueListing) error {
	if c == nil {
		return nil
	}

	payload, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("failed to encode venue listings: %w", err)
	}
	return c.rdb.Set(ctx, listingsKey, payload, c.ttl).Err()
}

// Invalidate drops the cached listings after any listing change.
func (c *Client) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Del(ctx, listingsKey).Err()
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
