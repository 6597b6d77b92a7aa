package postgres

import (
	"context"
	"fmt"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/domain/repository"
)

// WatchlistRepository implements repository.WatchlistRepository using PostgreSQL.
type WatchlistRepository struct {
	db DBTX
}

// NewWatchlistRepository creates a new WatchlistRepository instance.
func NewWatchlistRepository(db DBTX) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// Add persists a watchlist entry for a profile.
func (r *WatchlistRepository) Add(ctx context.Context, entry *model.WatchlistEntry) error {
	const query = `
		INSERT INTO watchlist (profile_id, content_type, content_id, date_added)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		entry.ProfileID,
		entry.ContentType.String(),
		entry.ContentID,
		entry.DateAdded,
	)
	if err != nil {
		return fmt.Errorf("failed to add watchlist entry: %w", err)
	}

	return nil
}

// Remove deletes the entry matching (profile, content type, content id).
func (r *WatchlistRepository) Remove(ctx context.Context, profileID int64, contentType model.ContentType, contentID int64) error {
	const query = `
		DELETE FROM watchlist
		WHERE profile_id = $1 AND content_type = $2 AND content_id = $3
	`

	tag, err := r.db.Exec(ctx, query, profileID, contentType.String(), contentID)
	if err != nil {
		return fmt.Errorf("failed to remove watchlist entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// ListByProfile retrieves a profile's watchlist, newest first, with catalog
// titles resolved across both content tables.
func (r *WatchlistRepository) ListByProfile(ctx context.Context, profileID int64) ([]*model.WatchlistEntry, error) {
	const query = `
		SELECT w.watchlist_id, w.profile_id, w.content_type, w.content_id, w.date_added,
		       CASE
		           WHEN w.content_type = 'Movie' THEN m.title
		           WHEN w.content_type = 'TV_Show' THEN t.title
		       END AS title
		FROM watchlist w
		LEFT JOIN movie m ON w.content_type = 'Movie' AND w.content_id = m.movie_id
		LEFT JOIN tv_show t ON w.content_type = 'TV_Show' AND w.content_id = t.show_id
		WHERE w.profile_id = $1
		ORDER BY w.date_added DESC
	`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist: %w", err)
	}
	defer rows.Close()

	var entries []*model.WatchlistEntry
	for rows.Next() {
		var (
			entry       model.WatchlistEntry
			contentType string
			title       *string
		)
		if err := rows.Scan(&entry.ID, &entry.ProfileID, &contentType, &entry.ContentID, &entry.DateAdded, &title); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist entry: %w", err)
		}
		entry.ContentType = model.ContentType(contentType)
		if title != nil {
			entry.Title = *title
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watchlist: %w", err)
	}

	return entries, nil
}

// RatingRepository implements repository.RatingRepository using PostgreSQL.
type RatingRepository struct {
	db DBTX
}

// NewRatingRepository creates a new RatingRepository instance.
func NewRatingRepository(db DBTX) *RatingRepository {
	return &RatingRepository{db: db}
}

// Add persists a rating. The rating_review table carries a trigger that
// refreshes the content's average rating.
func (r *RatingRepository) Add(ctx context.Context, rating *model.Rating) error {
	const query = `
		INSERT INTO rating_review (profile_id, content_type, content_id, rating, review_text, review_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		rating.ProfileID,
		rating.ContentType.String(),
		rating.ContentID,
		rating.Score,
		nullString(rating.ReviewText),
		rating.ReviewDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add rating: %w", err)
	}

	return nil
}

// ListByContent retrieves all ratings for a catalog entry, newest first,
// with reviewer profile names resolved.
func (r *RatingRepository) ListByContent(ctx context.Context, contentType model.ContentType, contentID int64) ([]*model.Rating, error) {
	const query = `
		SELECT rr.rating_id, rr.profile_id, p.name, rr.content_type, rr.content_id,
		       rr.rating, rr.review_text, rr.review_date
		FROM rating_review rr
		JOIN profile p ON rr.profile_id = p.profile_id
		WHERE rr.content_type = $1 AND rr.content_id = $2
		ORDER BY rr.review_date DESC
	`

	rows, err := r.db.Query(ctx, query, contentType.String(), contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings by content: %w", err)
	}
	defer rows.Close()

	var ratings []*model.Rating
	for rows.Next() {
		var (
			rating     model.Rating
			ctype      string
			reviewText *string
		)
		if err := rows.Scan(&rating.ID, &rating.ProfileID, &rating.ProfileName, &ctype,
			&rating.ContentID, &rating.Score, &reviewText, &rating.ReviewDate); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		rating.ContentType = model.ContentType(ctype)
		if reviewText != nil {
			rating.ReviewText = *reviewText
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ratings: %w", err)
	}

	return ratings, nil
}

// ListByProfile retrieves a profile's ratings, newest first.
func (r *RatingRepository) ListByProfile(ctx context.Context, profileID int64) ([]*model.Rating, error) {
	const query = `
		SELECT rating_id, profile_id, content_type, content_id, rating, review_text, review_date
		FROM rating_review
		WHERE profile_id = $1
		ORDER BY review_date DESC
	`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings by profile: %w", err)
	}
	defer rows.Close()

	var ratings []*model.Rating
	for rows.Next() {
		var (
			rating     model.Rating
			ctype      string
			reviewText *string
		)
		if err := rows.Scan(&rating.ID, &rating.ProfileID, &ctype, &rating.ContentID,
			&rating.Score, &reviewText, &rating.ReviewDate); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		rating.ContentType = model.ContentType(ctype)
		if reviewText != nil {
			rating.ReviewText = *reviewText
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ratings: %w", err)
	}

	return ratings, nil
}

// HistoryRepository implements repository.HistoryRepository using PostgreSQL.
type HistoryRepository struct {
	db DBTX
}

// NewHistoryRepository creates a new HistoryRepository instance.
func NewHistoryRepository(db DBTX) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Add persists a viewing history entry.
func (r *HistoryRepository) Add(ctx context.Context, entry *model.HistoryEntry) error {
	const query = `
		INSERT INTO viewing_history (profile_id, content_type, content_id, watch_duration, watch_date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		entry.ProfileID,
		entry.ContentType.String(),
		entry.ContentID,
		entry.WatchDuration,
		entry.WatchDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add history entry: %w", err)
	}

	return nil
}

// ListByProfile retrieves a profile's viewing history, newest first, with
// catalog titles resolved.
func (r *HistoryRepository) ListByProfile(ctx context.Context, profileID int64) ([]*model.HistoryEntry, error) {
	const query = `
		SELECT vh.history_id, vh.profile_id, vh.content_type, vh.content_id,
		       vh.watch_duration, vh.watch_date,
		       CASE
		           WHEN vh.content_type = 'Movie' THEN m.title
		           WHEN vh.content_type = 'TV_Show' THEN t.title
		       END AS title
		FROM viewing_history vh
		LEFT JOIN movie m ON vh.content_type = 'Movie' AND vh.content_id = m.movie_id
		LEFT JOIN tv_show t ON vh.content_type = 'TV_Show' AND vh.content_id = t.show_id
		WHERE vh.profile_id = $1
		ORDER BY vh.watch_date DESC
	`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query viewing history: %w", err)
	}
	defer rows.Close()

	var entries []*model.HistoryEntry
	for rows.Next() {
		var (
			entry model.HistoryEntry
			ctype string
			title *string
		)
		if err := rows.Scan(&entry.ID, &entry.ProfileID, &ctype, &entry.ContentID,
			&entry.WatchDuration, &entry.WatchDate, &title); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.ContentType = model.ContentType(ctype)
		if title != nil {
			entry.Title = *title
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating viewing history: %w", err)
	}

	return entries, nil
}

// OwnedByAccount resolves the ownership chain history -> profile -> account.
func (r *HistoryRepository) OwnedByAccount(ctx context.Context, historyID, accountID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM viewing_history vh
			JOIN profile p ON vh.profile_id = p.profile_id
			WHERE vh.history_id = $1 AND p.account_id = $2
		)
	`

	var owned bool
	if err := r.db.QueryRow(ctx, query, historyID, accountID).Scan(&owned); err != nil {
		return false, fmt.Errorf("failed to check history ownership: %w", err)
	}

	return owned, nil
}

// Delete removes a history entry.
func (r *HistoryRepository) Delete(ctx context.Context, historyID int64) error {
	const query = `DELETE FROM viewing_history WHERE history_id = $1`

	tag, err := r.db.Exec(ctx, query, historyID)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// Compile-time verification of the repository interfaces.
var (
	_ repository.WatchlistRepository = (*WatchlistRepository)(nil)
	_ repository.RatingRepository    = (*RatingRepository)(nil)
	_ repository.HistoryRepository   = (*HistoryRepository)(nil)
)
