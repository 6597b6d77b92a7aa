package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/domain/repository"
)

// CatalogRepository implements repository.CatalogRepository using PostgreSQL.
// The catalog tables are read-only for this service.
type CatalogRepository struct {
	db DBTX
}

// NewCatalogRepository creates a new CatalogRepository instance.
func NewCatalogRepository(db DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const movieColumns = `movie_id, title, description, release_year, duration, age_rating,
	       COALESCE(average_rating, 0), COALESCE(poster_url, ''), COALESCE(video_url, '')`

// ListMovies retrieves all movies with genres attached.
func (r *CatalogRepository) ListMovies(ctx context.Context) ([]*model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movie ORDER BY title`

	movies, err := r.queryMovies(ctx, query)
	if err != nil {
		return nil, err
	}

	for _, m := range movies {
		if m.Genres, err = r.movieGenres(ctx, m.ID); err != nil {
			return nil, err
		}
	}

	return movies, nil
}

// GetMovie retrieves a movie by id with genres attached.
func (r *CatalogRepository) GetMovie(ctx context.Context, id int64) (*model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movie WHERE movie_id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	if movie.Genres, err = r.movieGenres(ctx, movie.ID); err != nil {
		return nil, err
	}

	return movie, nil
}

// ListMoviesByGenre retrieves movies tagged with the named genre.
func (r *CatalogRepository) ListMoviesByGenre(ctx context.Context, genreName string) ([]*model.Movie, error) {
	query := `
		SELECT m.movie_id, m.title, m.description, m.release_year, m.duration, m.age_rating,
		       COALESCE(m.average_rating, 0), COALESCE(m.poster_url, ''), COALESCE(m.video_url, '')
		FROM movie m
		JOIN movie_genre mg ON m.movie_id = mg.movie_id
		JOIN genre g ON mg.genre_id = g.genre_id
		WHERE g.name = $1
		ORDER BY m.title
	`

	return r.queryMovies(ctx, query, genreName)
}

const tvShowColumns = `show_id, title, description, release_year, status, age_rating,
	       COALESCE(average_rating, 0), total_seasons, total_episodes, COALESCE(poster_url, '')`

// ListTVShows retrieves all TV shows with genres attached.
func (r *CatalogRepository) ListTVShows(ctx context.Context) ([]*model.TVShow, error) {
	query := `SELECT ` + tvShowColumns + ` FROM tv_show ORDER BY title`

	shows, err := r.queryTVShows(ctx, query)
	if err != nil {
		return nil, err
	}

	for _, s := range shows {
		if s.Genres, err = r.tvShowGenres(ctx, s.ID); err != nil {
			return nil, err
		}
	}

	return shows, nil
}

// GetTVShow retrieves a TV show by id.
func (r *CatalogRepository) GetTVShow(ctx context.Context, id int64) (*model.TVShow, error) {
	query := `SELECT ` + tvShowColumns + ` FROM tv_show WHERE show_id = $1`

	show, err := scanTVShow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get TV show: %w", err)
	}

	return show, nil
}

// ListTVShowsByGenre retrieves TV shows tagged with the named genre.
func (r *CatalogRepository) ListTVShowsByGenre(ctx context.Context, genreName string) ([]*model.TVShow, error) {
	query := `
		SELECT t.show_id, t.title, t.description, t.release_year, t.status, t.age_rating,
		       COALESCE(t.average_rating, 0), t.total_seasons, t.total_episodes, COALESCE(t.poster_url, '')
		FROM tv_show t
		JOIN tvshow_genre tg ON t.show_id = tg.show_id
		JOIN genre g ON tg.genre_id = g.genre_id
		WHERE g.name = $1
		ORDER BY t.title
	`

	return r.queryTVShows(ctx, query, genreName)
}

// ListGenres retrieves all genres ordered by name.
func (r *CatalogRepository) ListGenres(ctx context.Context) ([]*model.Genre, error) {
	const query = `
		SELECT genre_id, name, COALESCE(description, '')
		FROM genre
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	var genres []*model.Genre
	for rows.Next() {
		var genre model.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.Description); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres: %w", err)
	}

	return genres, nil
}

// GetGenre retrieves a genre by id.
func (r *CatalogRepository) GetGenre(ctx context.Context, id int64) (*model.Genre, error) {
	const query = `
		SELECT genre_id, name, COALESCE(description, '')
		FROM genre
		WHERE genre_id = $1
	`

	var genre model.Genre
	err := r.db.QueryRow(ctx, query, id).Scan(&genre.ID, &genre.Name, &genre.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}

	return &genre, nil
}

// ListHomeRows retrieves the curated home page rows joined with their
// catalog titles, newest release first.
func (r *CatalogRepository) ListHomeRows(ctx context.Context) ([]*model.HomeRow, error) {
	const query = `
		SELECT hp.content_id, hp.content_type, hp.release_date, hp.language, hp.age_rating,
		       CASE
		           WHEN hp.content_type = 'Movie' THEN m.title
		           WHEN hp.content_type = 'TV_Show' THEN t.title
		       END AS title,
		       CASE
		           WHEN hp.content_type = 'Movie' THEN m.description
		           WHEN hp.content_type = 'TV_Show' THEN t.description
		       END AS description,
		       CASE
		           WHEN hp.content_type = 'Movie' THEN COALESCE(m.average_rating, 0)
		           WHEN hp.content_type = 'TV_Show' THEN COALESCE(t.average_rating, 0)
		       END AS average_rating,
		       CASE
		           WHEN hp.content_type = 'Movie' THEN COALESCE(m.poster_url, '')
		           WHEN hp.content_type = 'TV_Show' THEN COALESCE(t.poster_url, '')
		       END AS poster_url
		FROM home_page hp
		LEFT JOIN movie m ON hp.content_type = 'Movie' AND hp.content_id = m.movie_id
		LEFT JOIN tv_show t ON hp.content_type = 'TV_Show' AND hp.content_id = t.show_id
		ORDER BY hp.release_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query home page rows: %w", err)
	}
	defer rows.Close()

	var homeRows []*model.HomeRow
	for rows.Next() {
		var (
			row         model.HomeRow
			ctype       string
			title       *string
			description *string
		)
		if err := rows.Scan(&row.ContentID, &ctype, &row.ReleaseDate, &row.Language,
			&row.AgeRating, &title, &description, &row.AverageRating, &row.PosterURL); err != nil {
			return nil, fmt.Errorf("failed to scan home page row: %w", err)
		}
		row.ContentType = model.ContentType(ctype)
		if title != nil {
			row.Title = *title
		}
		if description != nil {
			row.Description = *description
		}
		homeRows = append(homeRows, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating home page rows: %w", err)
	}

	return homeRows, nil
}

func (r *CatalogRepository) queryMovies(ctx context.Context, query string, args ...any) ([]*model.Movie, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	var movies []*model.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movies: %w", err)
	}

	return movies, nil
}

func (r *CatalogRepository) queryTVShows(ctx context.Context, query string, args ...any) ([]*model.TVShow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query TV shows: %w", err)
	}
	defer rows.Close()

	var shows []*model.TVShow
	for rows.Next() {
		show, err := scanTVShow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan TV show: %w", err)
		}
		shows = append(shows, show)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating TV shows: %w", err)
	}

	return shows, nil
}

func (r *CatalogRepository) movieGenres(ctx context.Context, movieID int64) ([]model.Genre, error) {
	const query = `
		SELECT g.genre_id, g.name, COALESCE(g.description, '')
		FROM genre g
		JOIN movie_genre mg ON g.genre_id = mg.genre_id
		WHERE mg.movie_id = $1
		ORDER BY g.name
	`
	return r.queryGenres(ctx, query, movieID)
}

func (r *CatalogRepository) tvShowGenres(ctx context.Context, showID int64) ([]model.Genre, error) {
	const query = `
		SELECT g.genre_id, g.name, COALESCE(g.description, '')
		FROM genre g
		JOIN tvshow_genre tg ON g.genre_id = tg.genre_id
		WHERE tg.show_id = $1
		ORDER BY g.name
	`
	return r.queryGenres(ctx, query, showID)
}

func (r *CatalogRepository) queryGenres(ctx context.Context, query string, args ...any) ([]model.Genre, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	var genres []model.Genre
	for rows.Next() {
		var genre model.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.Description); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres: %w", err)
	}

	return genres, nil
}

func scanMovie(row pgx.Row) (*model.Movie, error) {
	var movie model.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.ReleaseYear,
		&movie.Duration,
		&movie.AgeRating,
		&movie.AverageRating,
		&movie.PosterURL,
		&movie.VideoURL,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func scanTVShow(row pgx.Row) (*model.TVShow, error) {
	var show model.TVShow
	err := row.Scan(
		&show.ID,
		&show.Title,
		&show.Description,
		&show.ReleaseYear,
		&show.Status,
		&show.AgeRating,
		&show.AverageRating,
		&show.TotalSeasons,
		&show.TotalEpisodes,
		&show.PosterURL,
	)
	if err != nil {
		return nil, err
	}
	return &show, nil
}

// Compile-time verification that CatalogRepository implements repository.CatalogRepository.
var _ repository.CatalogRepository = (*CatalogRepository)(nil)
