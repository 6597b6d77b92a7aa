package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/infrastructure/metrics"
)

// CatalogCache defines the interface for caching catalog reads.
// Implementations handle serialization transparently.
type CatalogCache interface {
	// GetHomeRows retrieves the cached home page rows.
	// Returns nil, nil on cache miss.
	GetHomeRows(ctx context.Context) ([]*model.HomeRow, error)

	// SetHomeRows stores the home page rows with the specified TTL.
	SetHomeRows(ctx context.Context, rows []*model.HomeRow, ttl time.Duration) error

	// GetMovie retrieves a cached movie by id.
	// Returns nil, nil on cache miss.
	GetMovie(ctx context.Context, id int64) (*model.Movie, error)

	// SetMovie stores a movie with the specified TTL.
	SetMovie(ctx context.Context, movie *model.Movie, ttl time.Duration) error
}

const (
	homeRowsKey    = "catalog:home"
	movieKeyPrefix = "catalog:movie:"
)

// RedisCatalogCache implements CatalogCache using Redis as the backing store.
type RedisCatalogCache struct {
	client *redis.Client
}

// NewRedisCatalogCache creates a new Redis-backed catalog cache.
func NewRedisCatalogCache(client *redis.Client) *RedisCatalogCache {
	return &RedisCatalogCache{client: client}
}

// GetHomeRows retrieves the cached home page rows.
func (c *RedisCatalogCache) GetHomeRows(ctx context.Context) ([]*model.HomeRow, error) {
	data, err := c.client.Get(ctx, homeRowsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusMiss).Inc()
			return nil, nil
		}
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError).Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var rows []*model.HomeRow
	if err := json.Unmarshal(data, &rows); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError).Inc()
		return nil, fmt.Errorf("deserialize home rows: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusHit).Inc()
	return rows, nil
}

// SetHomeRows stores the home page rows with the specified TTL.
func (c *RedisCatalogCache) SetHomeRows(ctx context.Context, rows []*model.HomeRow, ttl time.Duration) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("serialize home rows: %w", err)
	}

	if err := c.client.Set(ctx, homeRowsKey, data, ttl).Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusError).Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusSuccess).Inc()
	return nil
}

// GetMovie retrieves a cached movie by id.
func (c *RedisCatalogCache) GetMovie(ctx context.Context, id int64) (*model.Movie, error) {
	data, err := c.client.Get(ctx, movieKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusMiss).Inc()
			return nil, nil
		}
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError).Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var movie model.Movie
	if err := json.Unmarshal(data, &movie); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError).Inc()
		return nil, fmt.Errorf("deserialize movie: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusHit).Inc()
	return &movie, nil
}

// SetMovie stores a movie with the specified TTL.
func (c *RedisCatalogCache) SetMovie(ctx context.Context, movie *model.Movie, ttl time.Duration) error {
	data, err := json.Marshal(movie)
	if err != nil {
		return fmt.Errorf("serialize movie: %w", err)
	}

	if err := c.client.Set(ctx, movieKey(movie.ID), data, ttl).Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusError).Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusSuccess).Inc()
	return nil
}

func movieKey(id int64) string {
	return movieKeyPrefix + strconv.FormatInt(id, 10)
}

// Compile-time verification that RedisCatalogCache implements CatalogCache.
var _ CatalogCache = (*RedisCatalogCache)(nil)
