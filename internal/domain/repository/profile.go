package repository

import (
	"context"

	"github.com/mzw111/Streamix/internal/domain/model"
)

// ProfileRepository defines persistence operations for viewer profiles.
type ProfileRepository interface {
	// Create persists a new profile. The database enforces the per-account
	// cap with an insert trigger; a rejected insert returns
	// ErrProfileLimitReached.
	Create(ctx context.Context, profile *model.Profile) error

	// GetByOwnerAndName retrieves the most recently created profile with
	// the given name under the account. Used to re-read a row after insert
	// without relying on last-insert-id.
	GetByOwnerAndName(ctx context.Context, accountID int64, name string) (*model.Profile, error)

	// ListByAccount retrieves all profiles belonging to an account.
	ListByAccount(ctx context.Context, accountID int64) ([]*model.Profile, error)

	// CountByAccount returns the number of profiles under an account.
	CountByAccount(ctx context.Context, accountID int64) (int, error)

	// OwnedByAccount reports whether the profile exists and belongs to the
	// account. Nonexistence and foreign ownership are indistinguishable.
	OwnedByAccount(ctx context.Context, profileID, accountID int64) (bool, error)

	// Delete removes a profile iff it belongs to the account.
	// Returns ErrProfileNotFound when no row matches.
	Delete(ctx context.Context, profileID, accountID int64) error
}
