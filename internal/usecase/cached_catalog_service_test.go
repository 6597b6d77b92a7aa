package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mzw111/Streamix/internal/domain/model"
)

// Mock CatalogService and CatalogCache for decorator tests.

type mockCatalogService struct {
	CatalogService

	homeContentFn func(ctx context.Context) ([]*model.HomeRow, error)
	getMovieFn    func(ctx context.Context, id int64) (*model.Movie, error)

	homeCalls  atomic.Int64
	movieCalls atomic.Int64
}

func (m *mockCatalogService) HomeContent(ctx context.Context) ([]*model.HomeRow, error) {
	m.homeCalls.Add(1)
	if m.homeContentFn != nil {
		return m.homeContentFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalogService) GetMovie(ctx context.Context, id int64) (*model.Movie, error) {
	m.movieCalls.Add(1)
	if m.getMovieFn != nil {
		return m.getMovieFn(ctx, id)
	}
	return nil, nil
}

type mockCatalogCache struct {
	homeRows []*model.HomeRow
	movies   map[int64]*model.Movie

	getErr error
	setErr error

	setHomeCalls int
	setMovieCall int
}

func (m *mockCatalogCache) GetHomeRows(ctx context.Context) ([]*model.HomeRow, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.homeRows, nil
}

func (m *mockCatalogCache) SetHomeRows(ctx context.Context, rows []*model.HomeRow, ttl time.Duration) error {
	m.setHomeCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.homeRows = rows
	return nil
}

func (m *mockCatalogCache) GetMovie(ctx context.Context, id int64) (*model.Movie, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.movies[id], nil
}

func (m *mockCatalogCache) SetMovie(ctx context.Context, movie *model.Movie, ttl time.Duration) error {
	m.setMovieCall++
	if m.setErr != nil {
		return m.setErr
	}
	if m.movies == nil {
		m.movies = map[int64]*model.Movie{}
	}
	m.movies[movie.ID] = movie
	return nil
}

func TestCachedCatalogService_HomeContent_CacheMiss(t *testing.T) {
	delegate := &mockCatalogService{
		homeContentFn: func(ctx context.Context) ([]*model.HomeRow, error) {
			return []*model.HomeRow{{ContentID: 1, ContentType: model.ContentTypeMovie, Title: "Inception"}}, nil
		},
	}
	cache := &mockCatalogCache{}
	svc := NewCachedCatalogService(delegate, cache, DefaultCachedCatalogServiceConfig())

	rows, err := svc.HomeContent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "Inception" {
		t.Errorf("unexpected rows: %+v", rows)
	}
	if delegate.homeCalls.Load() != 1 {
		t.Errorf("expected 1 delegate call, got %d", delegate.homeCalls.Load())
	}
	if cache.setHomeCalls != 1 {
		t.Errorf("expected cache fill, got %d set calls", cache.setHomeCalls)
	}
}

func TestCachedCatalogService_HomeContent_CacheHit(t *testing.T) {
	delegate := &mockCatalogService{}
	cache := &mockCatalogCache{
		homeRows: []*model.HomeRow{{ContentID: 1, Title: "Cached"}},
	}
	svc := NewCachedCatalogService(delegate, cache, DefaultCachedCatalogServiceConfig())

	rows, err := svc.HomeContent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "Cached" {
		t.Errorf("unexpected rows: %+v", rows)
	}
	if delegate.homeCalls.Load() != 0 {
		t.Errorf("delegate must not be called on cache hit, got %d calls", delegate.homeCalls.Load())
	}
}

func TestCachedCatalogService_HomeContent_CacheFailureDegrades(t *testing.T) {
	delegate := &mockCatalogService{
		homeContentFn: func(ctx context.Context) ([]*model.HomeRow, error) {
			return []*model.HomeRow{{ContentID: 1, Title: "FromDB"}}, nil
		},
	}
	cache := &mockCatalogCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	svc := NewCachedCatalogService(delegate, cache, DefaultCachedCatalogServiceConfig())

	rows, err := svc.HomeContent(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "FromDB" {
		t.Errorf("unexpected rows: %+v", rows)
	}
}

func TestCachedCatalogService_GetMovie(t *testing.T) {
	delegate := &mockCatalogService{
		getMovieFn: func(ctx context.Context, id int64) (*model.Movie, error) {
			return &model.Movie{ID: id, Title: "Inception"}, nil
		},
	}
	cache := &mockCatalogCache{}
	svc := NewCachedCatalogService(delegate, cache, DefaultCachedCatalogServiceConfig())

	// First read fills the cache, second is served from it.
	if _, err := svc.GetMovie(context.Background(), 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	movie, err := svc.GetMovie(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movie.Title != "Inception" {
		t.Errorf("unexpected movie: %+v", movie)
	}
	if delegate.movieCalls.Load() != 1 {
		t.Errorf("expected 1 delegate call, got %d", delegate.movieCalls.Load())
	}
}

func TestCachedCatalogService_GetMovie_DelegateError(t *testing.T) {
	wantErr := errors.New("db down")
	delegate := &mockCatalogService{
		getMovieFn: func(ctx context.Context, id int64) (*model.Movie, error) {
			return nil, wantErr
		},
	}
	svc := NewCachedCatalogService(delegate, &mockCatalogCache{}, DefaultCachedCatalogServiceConfig())

	if _, err := svc.GetMovie(context.Background(), 42); !errors.Is(err, wantErr) {
		t.Errorf("expected delegate error, got %v", err)
	}
}
