package model

import (
	"errors"
	"time"
)

// WatchlistEntry marks content saved by a profile for later viewing.
type WatchlistEntry struct {
	ID          int64
	ProfileID   int64
	ContentType ContentType
	ContentID   int64
	Title       string
	DateAdded   time.Time
}

// Rating is a profile's score for a piece of content, optionally with a
// written review.
type Rating struct {
	ID          int64
	ProfileID   int64
	ProfileName string
	ContentType ContentType
	ContentID   int64
	Score       int
	ReviewText  string
	ReviewDate  time.Time
}

// HistoryEntry records that a profile watched content for some duration.
type HistoryEntry struct {
	ID            int64
	ProfileID     int64
	ContentType   ContentType
	ContentID     int64
	Title         string
	WatchDuration int
	WatchDate     time.Time
}

var (
	ErrInvalidContentID = errors.New("content ID must be positive")
	ErrInvalidRating    = errors.New("rating must be between 1 and 10")
)

const (
	minRatingScore = 1
	maxRatingScore = 10
)

// NewWatchlistEntry validates the content reference for a watchlist add.
func NewWatchlistEntry(profileID int64, contentType ContentType, contentID int64) (*WatchlistEntry, error) {
	if !contentType.IsValid() {
		return nil, ErrInvalidContentType
	}
	if contentID <= 0 {
		return nil, ErrInvalidContentID
	}
	return &WatchlistEntry{
		ProfileID:   profileID,
		ContentType: contentType,
		ContentID:   contentID,
		DateAdded:   time.Now(),
	}, nil
}

// NewRating validates a rating submission.
func NewRating(profileID int64, contentType ContentType, contentID int64, score int, reviewText string) (*Rating, error) {
	if !contentType.IsValid() {
		return nil, ErrInvalidContentType
	}
	if contentID <= 0 {
		return nil, ErrInvalidContentID
	}
	if score < minRatingScore || score > maxRatingScore {
		return nil, ErrInvalidRating
	}
	return &Rating{
		ProfileID:   profileID,
		ContentType: contentType,
		ContentID:   contentID,
		Score:       score,
		ReviewText:  reviewText,
		ReviewDate:  time.Now(),
	}, nil
}

// NewHistoryEntry validates a viewing log request.
func NewHistoryEntry(profileID int64, contentType ContentType, contentID int64, watchDuration int) (*HistoryEntry, error) {
	if !contentType.IsValid() {
		return nil, ErrInvalidContentType
	}
	if contentID <= 0 {
		return nil, ErrInvalidContentID
	}
	return &HistoryEntry{
		ProfileID:     profileID,
		ContentType:   contentType,
		ContentID:     contentID,
		WatchDuration: watchDuration,
		WatchDate:     time.Now(),
	}, nil
}
