package model

import "errors"

// ContentType discriminates catalog entries referenced by watchlists,
// ratings, and viewing history.
type ContentType string

const (
	ContentTypeMovie  ContentType = "Movie"
	ContentTypeTVShow ContentType = "TV_Show"
)

func (t ContentType) IsValid() bool {
	return t == ContentTypeMovie || t == ContentTypeTVShow
}

func (t ContentType) String() string {
	return string(t)
}

var ErrInvalidContentType = errors.New("content type must be Movie or TV_Show")

// Genre classifies catalog content.
type Genre struct {
	ID          int64
	Name        string
	Description string
}

// Movie is a catalog entry. Catalog rows are read-only for this service.
type Movie struct {
	ID            int64
	Title         string
	Description   string
	ReleaseYear   int
	Duration      int
	AgeRating     string
	AverageRating float64
	PosterURL     string
	VideoURL      string
	Genres        []Genre
}

// TVShow is a catalog entry.
type TVShow struct {
	ID            int64
	Title         string
	Description   string
	ReleaseYear   int
	Status        string
	AgeRating     string
	AverageRating float64
	TotalSeasons  int
	TotalEpisodes int
	PosterURL     string
	Genres        []Genre
}

// HomeRow is a curated home page entry joined with its catalog title.
type HomeRow struct {
	ContentID     int64
	ContentType   ContentType
	Title         string
	Description   string
	ReleaseDate   string
	Language      string
	AgeRating     string
	AverageRating float64
	PosterURL     string
}
