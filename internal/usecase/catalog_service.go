package usecase

import (
	"context"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/domain/repository"
)

// CatalogService defines public read access to the content catalog.
type CatalogService interface {
	ListMovies(ctx context.Context) ([]*model.Movie, error)
	GetMovie(ctx context.Context, id int64) (*model.Movie, error)
	ListMoviesByGenre(ctx context.Context, genreName string) ([]*model.Movie, error)
	ListTVShows(ctx context.Context) ([]*model.TVShow, error)
	GetTVShow(ctx context.Context, id int64) (*model.TVShow, error)
	ListTVShowsByGenre(ctx context.Context, genreName string) ([]*model.TVShow, error)
	ListGenres(ctx context.Context) ([]*model.Genre, error)
	GetGenre(ctx context.Context, id int64) (*model.Genre, error)
	HomeContent(ctx context.Context) ([]*model.HomeRow, error)
}

type catalogService struct {
	catalog repository.CatalogRepository
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(catalog repository.CatalogRepository) CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) ListMovies(ctx context.Context) ([]*model.Movie, error) {
	return s.catalog.ListMovies(ctx)
}

func (s *catalogService) GetMovie(ctx context.Context, id int64) (*model.Movie, error) {
	return s.catalog.GetMovie(ctx, id)
}

func (s *catalogService) ListMoviesByGenre(ctx context.Context, genreName string) ([]*model.Movie, error) {
	return s.catalog.ListMoviesByGenre(ctx, genreName)
}

func (s *catalogService) ListTVShows(ctx context.Context) ([]*model.TVShow, error) {
	return s.catalog.ListTVShows(ctx)
}

func (s *catalogService) GetTVShow(ctx context.Context, id int64) (*model.TVShow, error) {
	return s.catalog.GetTVShow(ctx, id)
}

func (s *catalogService) ListTVShowsByGenre(ctx context.Context, genreName string) ([]*model.TVShow, error) {
	return s.catalog.ListTVShowsByGenre(ctx, genreName)
}

func (s *catalogService) ListGenres(ctx context.Context) ([]*model.Genre, error) {
	return s.catalog.ListGenres(ctx)
}

func (s *catalogService) GetGenre(ctx context.Context, id int64) (*model.Genre, error) {
	return s.catalog.GetGenre(ctx, id)
}

func (s *catalogService) HomeContent(ctx context.Context) ([]*model.HomeRow, error) {
	return s.catalog.ListHomeRows(ctx)
}
