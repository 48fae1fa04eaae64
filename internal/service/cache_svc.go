package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Channel searches burn YouTube quota, so they live longest;
// competition snapshots and trending lists age out faster.
const (
	SearchCacheTTL      = 15 * time.Minute
	CompetitionCacheTTL = 10 * time.Minute
	TrendingCacheTTL    = 30 * time.Minute
)

// CacheService is a Redis cache-aside layer for channel searches,
// competition snapshots and trending topics.
type CacheService struct {
	rdb *redis.Client

	hits   prometheus.Counter
	misses prometheus.Counter
}

// NewCacheService creates a CacheService. If redisURL is empty or the
// connection fails, the client stays nil and every operation is a no-op.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// InstrumentWith wires the Prometheus hit/miss counters. Call after the
// collectors are registered.
func (c *CacheService) InstrumentWith(hits, misses prometheus.Counter) {
	c.hits = hits
	c.misses = misses
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetSearch retrieves a cached extraction result. Nil when absent or disabled.
func (c *CacheService) GetSearch(ctx context.Context, key string) ([]byte, error) {
	return c.get(ctx, searchKey(key))
}

// SetSearch stores an extraction result.
func (c *CacheService) SetSearch(ctx context.Context, key string, data any) error {
	return c.set(ctx, searchKey(key), data, SearchCacheTTL)
}

// GetCompetition retrieves a cached competition snapshot.
func (c *CacheService) GetCompetition(ctx context.Context, key string) ([]byte, error) {
	return c.get(ctx, competitionKey(key))
}

// SetCompetition stores a competition snapshot.
func (c *CacheService) SetCompetition(ctx context.Context, key string, data any) error {
	return c.set(ctx, competitionKey(key), data, CompetitionCacheTTL)
}

// GetTrending retrieves a cached regional trending snapshot.
func (c *CacheService) GetTrending(ctx context.Context, region string) ([]byte, error) {
	return c.get(ctx, trendingKey(region))
}

// SetTrending stores a regional trending snapshot.
func (c *CacheService) SetTrending(ctx context.Context, region string, data any) error {
	return c.set(ctx, trendingKey(region), data, TrendingCacheTTL)
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func (c *CacheService) get(ctx context.Context, key string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		c.track(false)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.track(true)
	return data, nil
}

// track feeds the hit/miss counters when instrumentation is wired.
func (c *CacheService) track(hit bool) {
	if hit {
		if c.hits != nil {
			c.hits.Inc()
		}
		return
	}
	if c.misses != nil {
		c.misses.Inc()
	}
}

func (c *CacheService) set(ctx context.Context, key string, data any, ttl time.Duration) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

func searchKey(key string) string {
	return fmt.Sprintf("search:%s", key)
}

func competitionKey(key string) string {
	return fmt.Sprintf("competition:%s", key)
}

func trendingKey(region string) string {
	return fmt.Sprintf("trending:%s", region)
}
