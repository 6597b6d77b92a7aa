package repository

import (
	"context"

	"github.com/mzw111/Streamix/internal/domain/model"
)

// WatchlistRepository defines persistence operations for watchlist entries.
type WatchlistRepository interface {
	// Add persists a watchlist entry for a profile.
	Add(ctx context.Context, entry *model.WatchlistEntry) error

	// Remove deletes the entry matching (profile, content type, content id).
	// Returns ErrEntryNotFound when no row matches.
	Remove(ctx context.Context, profileID int64, contentType model.ContentType, contentID int64) error

	// ListByProfile retrieves a profile's watchlist, newest first, with
	// catalog titles resolved.
	ListByProfile(ctx context.Context, profileID int64) ([]*model.WatchlistEntry, error)
}

// RatingRepository defines persistence operations for ratings and reviews.
type RatingRepository interface {
	// Add persists a rating. A database trigger maintains the content's
	// average rating.
	Add(ctx context.Context, rating *model.Rating) error

	// ListByContent retrieves all ratings for a catalog entry, newest
	// first, with reviewer profile names resolved. Public.
	ListByContent(ctx context.Context, contentType model.ContentType, contentID int64) ([]*model.Rating, error)

	// ListByProfile retrieves a profile's ratings, newest first.
	ListByProfile(ctx context.Context, profileID int64) ([]*model.Rating, error)
}

// HistoryRepository defines persistence operations for viewing history.
type HistoryRepository interface {
	// Add persists a viewing history entry.
	Add(ctx context.Context, entry *model.HistoryEntry) error

	// ListByProfile retrieves a profile's history, newest first, with
	// catalog titles resolved.
	ListByProfile(ctx context.Context, profileID int64) ([]*model.HistoryEntry, error)

	// OwnedByAccount reports whether the history entry belongs, via its
	// profile, to the account.
	OwnedByAccount(ctx context.Context, historyID, accountID int64) (bool, error)

	// Delete removes a history entry.
	// Returns ErrEntryNotFound when no row matches.
	Delete(ctx context.Context, historyID int64) error
}
