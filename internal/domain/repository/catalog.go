package repository

import (
	"context"

	"github.com/mzw111/Streamix/internal/domain/model"
)

// CatalogRepository defines read operations over the content catalog.
// The catalog is maintained out of band; this service never writes it.
type CatalogRepository interface {
	// ListMovies retrieves all movies with genres attached.
	ListMovies(ctx context.Context) ([]*model.Movie, error)

	// GetMovie retrieves a movie by id with genres attached.
	// Returns ErrContentNotFound if no such movie exists.
	GetMovie(ctx context.Context, id int64) (*model.Movie, error)

	// ListMoviesByGenre retrieves movies tagged with the named genre.
	ListMoviesByGenre(ctx context.Context, genreName string) ([]*model.Movie, error)

	// ListTVShows retrieves all TV shows with genres attached.
	ListTVShows(ctx context.Context) ([]*model.TVShow, error)

	// GetTVShow retrieves a TV show by id.
	// Returns ErrContentNotFound if no such show exists.
	GetTVShow(ctx context.Context, id int64) (*model.TVShow, error)

	// ListTVShowsByGenre retrieves TV shows tagged with the named genre.
	ListTVShowsByGenre(ctx context.Context, genreName string) ([]*model.TVShow, error)

	// ListGenres retrieves all genres ordered by name.
	ListGenres(ctx context.Context) ([]*model.Genre, error)

	// GetGenre retrieves a genre by id.
	// Returns ErrContentNotFound if no such genre exists.
	GetGenre(ctx context.Context, id int64) (*model.Genre, error)

	// ListHomeRows retrieves the curated home page rows joined with their
	// catalog titles, newest release first.
	ListHomeRows(ctx context.Context) ([]*model.HomeRow, error)
}
