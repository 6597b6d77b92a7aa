package usecase

import (
	"context"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/domain/repository"
)

// ActivityService defines profile-scoped viewing activity: watchlists,
// ratings, and viewing history. Every operation that touches a profile's
// data verifies the ownership chain first.
type ActivityService interface {
	// AddToWatchlist saves content to a profile's watchlist.
	AddToWatchlist(ctx context.Context, accountID, profileID int64, contentType model.ContentType, contentID int64) error

	// RemoveFromWatchlist removes content from a profile's watchlist.
	RemoveFromWatchlist(ctx context.Context, accountID, profileID int64, contentType model.ContentType, contentID int64) error

	// GetWatchlist retrieves a profile's watchlist, newest first.
	GetWatchlist(ctx context.Context, accountID, profileID int64) ([]*model.WatchlistEntry, error)

	// AddRating submits a rating for a piece of content.
	AddRating(ctx context.Context, accountID, profileID int64, contentType model.ContentType, contentID int64, score int, reviewText string) error

	// RatingsForContent retrieves all ratings for a catalog entry. Public;
	// no ownership applies.
	RatingsForContent(ctx context.Context, contentType model.ContentType, contentID int64) ([]*model.Rating, error)

	// RatingsForProfile retrieves an owned profile's ratings.
	RatingsForProfile(ctx context.Context, accountID, profileID int64) ([]*model.Rating, error)

	// LogViewing records that a profile watched content.
	LogViewing(ctx context.Context, accountID, profileID int64, contentType model.ContentType, contentID int64, watchDuration int) error

	// GetHistory retrieves an owned profile's viewing history, newest first.
	GetHistory(ctx context.Context, accountID, profileID int64) ([]*model.HistoryEntry, error)

	// DeleteHistoryEntry removes a history entry owned, via its profile,
	// by the account.
	DeleteHistoryEntry(ctx context.Context, accountID, historyID int64) error
}

type activityService struct {
	ownership OwnershipVerifier
	watchlist repository.WatchlistRepository
	ratings   repository.RatingRepository
	history   repository.HistoryRepository
}

// NewActivityService creates a new ActivityService instance.
func NewActivityService(
	ownership OwnershipVerifier,
	watchlist repository.WatchlistRepository,
	ratings repository.RatingRepository,
	history repository.HistoryRepository,
) ActivityService {
	return &activityService{
		ownership: ownership,
		watchlist: watchlist,
		ratings:   ratings,
		history:   history,
	}
}

// AddToWatchlist verifies ownership of the parent profile before inserting.
func (s *activityService) AddToWatchlist(ctx context.Context, accountID, profileID int64, contentType model.ContentType, contentID int64) error {
	entry, err := model.NewWatchlistEntry(profileID, contentType, contentID)
	if err != nil {
		return err
	}

	if err := s.ownership.VerifyProfile(ctx, accountID, profileID); err != nil {
		return err
	}

	return s.watchlist.Add(ctx, entry)
}

// RemoveFromWatchlist verifies ownership of the parent profile before deleting.
func (s *activityService) RemoveFromWatchlist(ctx context.Context, accountID, profileID int64, contentType model.ContentType, contentID int64) error {
	if !contentType.IsValid() {
		return model.ErrInvalidContentType
	}

	if err := s.ownership.VerifyProfile(ctx, accountID, profileID); err != nil {
		return err
	}

	return s.watchlist.Remove(ctx, profileID, contentType, contentID)
}

// GetWatchlist verifies profile ownership before disclosure.
func (s *activityService) GetWatchlist(ctx context.Context, accountID, profileID int64) ([]*model.WatchlistEntry, error) {
	if err := s.ownership.VerifyProfile(ctx, accountID, profileID); err != nil {
		return nil, err
	}

	return s.watchlist.ListByProfile(ctx, profileID)
}

// AddRating verifies ownership of the parent profile before inserting.
func (s *activityService) AddRating(ctx context.Context, accountID, profileID int64, contentType model.ContentType, contentID int64, score int, reviewText string) error {
	rating, err := model.NewRating(profileID, contentType, contentID, score, reviewText)
	if err != nil {
		return err
	}

	if err := s.ownership.VerifyProfile(ctx, accountID, profileID); err != nil {
		return err
	}

	return s.ratings.Add(ctx, rating)
}

// RatingsForContent lists ratings for a catalog entry. Ratings are public
// once submitted; only the reviewer's profile name is disclosed.
func (s *activityService) RatingsForContent(ctx context.Context, contentType model.ContentType, contentID int64) ([]*model.Rating, error) {
	if !contentType.IsValid() {
		return nil, model.ErrInvalidContentType
	}

	return s.ratings.ListByContent(ctx, contentType, contentID)
}

// RatingsForProfile verifies profile ownership before disclosure.
func (s *activityService) RatingsForProfile(ctx context.Context, accountID, profileID int64) ([]*model.Rating, error) {
	if err := s.ownership.VerifyProfile(ctx, accountID, profileID); err != nil {
		return nil, err
	}

	return s.ratings.ListByProfile(ctx, profileID)
}

// LogViewing verifies ownership of the parent profile before inserting.
func (s *activityService) LogViewing(ctx context.Context, accountID, profileID int64, contentType model.ContentType, contentID int64, watchDuration int) error {
	entry, err := model.NewHistoryEntry(profileID, contentType, contentID, watchDuration)
	if err != nil {
		return err
	}

	if err := s.ownership.VerifyProfile(ctx, accountID, profileID); err != nil {
		return err
	}

	return s.history.Add(ctx, entry)
}

// GetHistory verifies profile ownership before disclosure.
func (s *activityService) GetHistory(ctx context.Context, accountID, profileID int64) ([]*model.HistoryEntry, error) {
	if err := s.ownership.VerifyProfile(ctx, accountID, profileID); err != nil {
		return nil, err
	}

	return s.history.ListByProfile(ctx, profileID)
}

// DeleteHistoryEntry resolves the chain entry -> profile -> account before
// deleting. Deleting an unowned or missing entry yields the same ErrNotOwned.
func (s *activityService) DeleteHistoryEntry(ctx context.Context, accountID, historyID int64) error {
	if err := s.ownership.VerifyHistoryEntry(ctx, accountID, historyID); err != nil {
		return err
	}

	return s.history.Delete(ctx, historyID)
}
