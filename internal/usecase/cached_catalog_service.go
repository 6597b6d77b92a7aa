package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/infrastructure/cache"
	"github.com/mzw111/Streamix/internal/infrastructure/metrics"
)

// CachedCatalogServiceConfig holds configuration for CachedCatalogService.
type CachedCatalogServiceConfig struct {
	// CacheTTL is the TTL for cached catalog reads.
	CacheTTL time.Duration
}

// DefaultCachedCatalogServiceConfig returns the default configuration.
func DefaultCachedCatalogServiceConfig() CachedCatalogServiceConfig {
	return CachedCatalogServiceConfig{
		CacheTTL: 5 * time.Minute,
	}
}

// cachedCatalogService wraps CatalogService with caching for the hot read
// paths: the home page and movie details. Other catalog reads pass through.
// Cache failures degrade to the database; they never fail a request.
type cachedCatalogService struct {
	CatalogService

	cache    cache.CatalogCache
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewCachedCatalogService creates a caching decorator over the provided
// CatalogService.
func NewCachedCatalogService(
	delegate CatalogService,
	catalogCache cache.CatalogCache,
	cfg CachedCatalogServiceConfig,
) CatalogService {
	return &cachedCatalogService{
		CatalogService: delegate,
		cache:          catalogCache,
		cacheTTL:       cfg.CacheTTL,
	}
}

// HomeContent serves the home page rows cache-aside. Singleflight coalesces
// concurrent fills so an expired key causes one database round-trip, not a
// stampede.
func (s *cachedCatalogService) HomeContent(ctx context.Context) ([]*model.HomeRow, error) {
	result, err, shared := s.sfGroup.Do("home", func() (any, error) {
		return s.homeContentWithCache(ctx)
	})

	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}

	if err != nil {
		return nil, err
	}

	return result.([]*model.HomeRow), nil
}

func (s *cachedCatalogService) homeContentWithCache(ctx context.Context) ([]*model.HomeRow, error) {
	rows, err := s.cache.GetHomeRows(ctx)
	if err != nil {
		slog.Warn("cache get failed, falling back to database", "key", "home", "error", err)
	}
	if rows != nil {
		return rows, nil
	}

	rows, err = s.CatalogService.HomeContent(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetHomeRows(ctx, rows, s.cacheTTL); err != nil {
		slog.Warn("failed to cache home page rows", "error", err)
	}

	return rows, nil
}

// GetMovie serves movie details cache-aside with singleflight per movie id.
func (s *cachedCatalogService) GetMovie(ctx context.Context, id int64) (*model.Movie, error) {
	key := "movie:" + strconv.FormatInt(id, 10)
	result, err, shared := s.sfGroup.Do(key, func() (any, error) {
		return s.getMovieWithCache(ctx, id)
	})

	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}

	if err != nil {
		return nil, err
	}

	return result.(*model.Movie), nil
}

func (s *cachedCatalogService) getMovieWithCache(ctx context.Context, id int64) (*model.Movie, error) {
	movie, err := s.cache.GetMovie(ctx, id)
	if err != nil {
		slog.Warn("cache get failed, falling back to database", "movie_id", id, "error", err)
	}
	if movie != nil {
		return movie, nil
	}

	movie, err = s.CatalogService.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetMovie(ctx, movie, s.cacheTTL); err != nil {
		slog.Warn("failed to cache movie", "movie_id", id, "error", err)
	}

	return movie, nil
}
