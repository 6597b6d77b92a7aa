package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/mzw111/Streamix/internal/domain/model"
)

func newTestCache(t *testing.T) (*RedisCatalogCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCatalogCache(client), mr
}

func TestRedisCatalogCache_HomeRows(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	// Miss before any set.
	rows, err := cache.GetHomeRows(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != nil {
		t.Errorf("expected nil on miss, got %+v", rows)
	}

	want := []*model.HomeRow{
		{ContentID: 1, ContentType: model.ContentTypeMovie, Title: "Inception", AverageRating: 8.8},
		{ContentID: 2, ContentType: model.ContentTypeTVShow, Title: "Dark", AverageRating: 8.7},
	}
	if err := cache.SetHomeRows(ctx, want, time.Minute); err != nil {
		t.Fatalf("failed to set home rows: %v", err)
	}

	got, err := cache.GetHomeRows(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Title != "Inception" || got[1].ContentType != model.ContentTypeTVShow {
		t.Errorf("unexpected rows: %+v", got)
	}

	// TTL expiry surfaces as a miss.
	mr.FastForward(2 * time.Minute)
	rows, err = cache.GetHomeRows(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != nil {
		t.Errorf("expected nil after expiry, got %+v", rows)
	}
}

func TestRedisCatalogCache_Movie(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	movie, err := cache.GetMovie(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movie != nil {
		t.Errorf("expected nil on miss, got %+v", movie)
	}

	want := &model.Movie{
		ID:          42,
		Title:       "Inception",
		ReleaseYear: 2010,
		Duration:    148,
		Genres:      []model.Genre{{ID: 1, Name: "Sci-Fi"}},
	}
	if err := cache.SetMovie(ctx, want, time.Minute); err != nil {
		t.Fatalf("failed to set movie: %v", err)
	}

	got, err := cache.GetMovie(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Title != "Inception" || len(got.Genres) != 1 {
		t.Errorf("unexpected movie: %+v", got)
	}

	// A different id still misses.
	other, err := cache.GetMovie(ctx, 43)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other != nil {
		t.Errorf("expected nil for uncached id, got %+v", other)
	}
}

func TestRedisCatalogCache_GetAfterServerGone(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	mr.Close()

	if _, err := cache.GetHomeRows(ctx); err == nil {
		t.Error("expected error when redis is unreachable")
	}
}
