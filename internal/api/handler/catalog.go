package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/usecase"
)

// Response types

type GenreDetail struct {
	ID          int64  `json:"genre_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type MovieDetail struct {
	ID            int64         `json:"movie_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	ReleaseYear   int           `json:"release_year"`
	Duration      int           `json:"duration"`
	AgeRating     string        `json:"age_rating,omitempty"`
	AverageRating float64       `json:"average_rating"`
	PosterURL     string        `json:"poster_url,omitempty"`
	VideoURL      string        `json:"video_url,omitempty"`
	Genres        []GenreDetail `json:"genres"`
}

type TVShowDetail struct {
	ID            int64         `json:"show_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	ReleaseYear   int           `json:"release_year"`
	Status        string        `json:"status,omitempty"`
	AgeRating     string        `json:"age_rating,omitempty"`
	AverageRating float64       `json:"average_rating"`
	TotalSeasons  int           `json:"total_seasons"`
	TotalEpisodes int           `json:"total_episodes"`
	PosterURL     string        `json:"poster_url,omitempty"`
	Genres        []GenreDetail `json:"genres"`
}

type HomeRowItem struct {
	ContentID     int64   `json:"content_id"`
	ContentType   string  `json:"content_type"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	ReleaseDate   string  `json:"release_date,omitempty"`
	Language      string  `json:"language,omitempty"`
	AgeRating     string  `json:"age_rating,omitempty"`
	AverageRating float64 `json:"average_rating"`
	PosterURL     string  `json:"poster_url,omitempty"`
}

type MovieResponse struct {
	Response
	Movie MovieDetail `json:"movie"`
}

type MovieListResponse struct {
	Response
	Movies []MovieDetail `json:"movies"`
}

type TVShowResponse struct {
	Response
	TVShow TVShowDetail `json:"tv_show"`
}

type TVShowListResponse struct {
	Response
	TVShows []TVShowDetail `json:"tv_shows"`
}

type GenreResponse struct {
	Response
	Genre GenreDetail `json:"genre"`
}

type GenreListResponse struct {
	Response
	Genres []GenreDetail `json:"genres"`
}

type HomeResponse struct {
	Response
	Content []HomeRowItem `json:"content"`
}

// CatalogHandler handles public catalog reads.
type CatalogHandler struct {
	svc usecase.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc usecase.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListMovies handles GET /api/movies
func (h *CatalogHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.ListMovies(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, MovieListResponse{
		Response: Response{Success: true},
		Movies:   toMovieDetails(movies),
	})
}

// GetMovie handles GET /api/movies/{id}
func (h *CatalogHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		Fail(w, http.StatusBadRequest, "Movie ID must be a positive integer")
		return
	}

	movie, err := h.svc.GetMovie(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, MovieResponse{
		Response: Response{Success: true},
		Movie:    toMovieDetail(movie),
	})
}

// ListMoviesByGenre handles GET /api/movies/genre/{genreName}
func (h *CatalogHandler) ListMoviesByGenre(w http.ResponseWriter, r *http.Request) {
	genreName := chi.URLParam(r, "genreName")

	movies, err := h.svc.ListMoviesByGenre(r.Context(), genreName)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, MovieListResponse{
		Response: Response{Success: true},
		Movies:   toMovieDetails(movies),
	})
}

// ListTVShows handles GET /api/tv-shows
func (h *CatalogHandler) ListTVShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.svc.ListTVShows(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, TVShowListResponse{
		Response: Response{Success: true},
		TVShows:  toTVShowDetails(shows),
	})
}

// GetTVShow handles GET /api/tv-shows/{id}
func (h *CatalogHandler) GetTVShow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		Fail(w, http.StatusBadRequest, "Show ID must be a positive integer")
		return
	}

	show, err := h.svc.GetTVShow(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, TVShowResponse{
		Response: Response{Success: true},
		TVShow:   toTVShowDetail(show),
	})
}

// ListTVShowsByGenre handles GET /api/tv-shows/genre/{genreName}
func (h *CatalogHandler) ListTVShowsByGenre(w http.ResponseWriter, r *http.Request) {
	genreName := chi.URLParam(r, "genreName")

	shows, err := h.svc.ListTVShowsByGenre(r.Context(), genreName)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, TVShowListResponse{
		Response: Response{Success: true},
		TVShows:  toTVShowDetails(shows),
	})
}

// ListGenres handles GET /api/genres
func (h *CatalogHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.ListGenres(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	details := make([]GenreDetail, 0, len(genres))
	for _, g := range genres {
		details = append(details, toGenreDetail(*g))
	}

	JSON(w, http.StatusOK, GenreListResponse{
		Response: Response{Success: true},
		Genres:   details,
	})
}

// GetGenre handles GET /api/genres/{id}
func (h *CatalogHandler) GetGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		Fail(w, http.StatusBadRequest, "Genre ID must be a positive integer")
		return
	}

	genre, err := h.svc.GetGenre(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, GenreResponse{
		Response: Response{Success: true},
		Genre:    toGenreDetail(*genre),
	})
}

// Home handles GET /api/home
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.HomeContent(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	items := make([]HomeRowItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, HomeRowItem{
			ContentID:     row.ContentID,
			ContentType:   row.ContentType.String(),
			Title:         row.Title,
			Description:   row.Description,
			ReleaseDate:   row.ReleaseDate,
			Language:      row.Language,
			AgeRating:     row.AgeRating,
			AverageRating: row.AverageRating,
			PosterURL:     row.PosterURL,
		})
	}

	JSON(w, http.StatusOK, HomeResponse{
		Response: Response{Success: true},
		Content:  items,
	})
}

func toGenreDetail(g model.Genre) GenreDetail {
	return GenreDetail{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
	}
}

func toMovieDetail(m *model.Movie) MovieDetail {
	genres := make([]GenreDetail, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, toGenreDetail(g))
	}
	return MovieDetail{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		ReleaseYear:   m.ReleaseYear,
		Duration:      m.Duration,
		AgeRating:     m.AgeRating,
		AverageRating: m.AverageRating,
		PosterURL:     m.PosterURL,
		VideoURL:      m.VideoURL,
		Genres:        genres,
	}
}

func toMovieDetails(movies []*model.Movie) []MovieDetail {
	details := make([]MovieDetail, 0, len(movies))
	for _, m := range movies {
		details = append(details, toMovieDetail(m))
	}
	return details
}

func toTVShowDetail(s *model.TVShow) TVShowDetail {
	genres := make([]GenreDetail, 0, len(s.Genres))
	for _, g := range s.Genres {
		genres = append(genres, toGenreDetail(g))
	}
	return TVShowDetail{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		ReleaseYear:   s.ReleaseYear,
		Status:        s.Status,
		AgeRating:     s.AgeRating,
		AverageRating: s.AverageRating,
		TotalSeasons:  s.TotalSeasons,
		TotalEpisodes: s.TotalEpisodes,
		PosterURL:     s.PosterURL,
		Genres:        genres,
	}
}

func toTVShowDetails(shows []*model.TVShow) []TVShowDetail {
	details := make([]TVShowDetail, 0, len(shows))
	for _, s := range shows {
		details = append(details, toTVShowDetail(s))
	}
	return details
}
