package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/domain/repository"
)

// ProfileRepository implements repository.ProfileRepository using PostgreSQL.
//
// The profile table carries a BEFORE INSERT trigger that rejects the fourth
// profile for an account. That trigger is the linearizability boundary for
// the per-account cap; the application pre-check only provides fast rejection.
type ProfileRepository struct {
	db DBTX
}

// NewProfileRepository creates a new ProfileRepository instance.
func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create persists a new profile. A trigger rejection for the per-account cap
// is mapped to repository.ErrProfileLimitReached so a race that slipped past
// the application pre-check surfaces as the same condition.
func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	const query = `
		INSERT INTO profile (account_id, name, picture, language, age_restriction, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		profile.AccountID,
		profile.Name,
		profile.Picture,
		profile.Language,
		profile.AgeRestriction,
		profile.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == codeRaiseException || pgErr.Code == codeCheckViolation) {
			return repository.ErrProfileLimitReached
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// GetByOwnerAndName retrieves the most recently created profile with the
// given name under the account. Reading back by natural key stays correct
// when concurrent inserts for the same owner interleave.
func (r *ProfileRepository) GetByOwnerAndName(ctx context.Context, accountID int64, name string) (*model.Profile, error) {
	const query = `
		SELECT profile_id, account_id, name, picture, language, age_restriction, created_at
		FROM profile
		WHERE account_id = $1 AND name = $2
		ORDER BY created_at DESC, profile_id DESC
		LIMIT 1
	`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, accountID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by owner and name: %w", err)
	}

	return profile, nil
}

// ListByAccount retrieves all profiles belonging to an account.
func (r *ProfileRepository) ListByAccount(ctx context.Context, accountID int64) ([]*model.Profile, error) {
	const query = `
		SELECT profile_id, account_id, name, picture, language, age_restriction, created_at
		FROM profile
		WHERE account_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*model.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	return profiles, nil
}

// CountByAccount returns the number of profiles under an account.
func (r *ProfileRepository) CountByAccount(ctx context.Context, accountID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM profile WHERE account_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	return count, nil
}

// OwnedByAccount reports whether the profile exists and belongs to the account.
func (r *ProfileRepository) OwnedByAccount(ctx context.Context, profileID, accountID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM profile WHERE profile_id = $1 AND account_id = $2
		)
	`

	var owned bool
	if err := r.db.QueryRow(ctx, query, profileID, accountID).Scan(&owned); err != nil {
		return false, fmt.Errorf("failed to check profile ownership: %w", err)
	}

	return owned, nil
}

// Delete removes a profile iff it belongs to the account. Scoping the DELETE
// by owner makes a foreign profile indistinguishable from a missing one.
func (r *ProfileRepository) Delete(ctx context.Context, profileID, accountID int64) error {
	const query = `DELETE FROM profile WHERE profile_id = $1 AND account_id = $2`

	tag, err := r.db.Exec(ctx, query, profileID, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func scanProfile(row pgx.Row) (*model.Profile, error) {
	var profile model.Profile

	err := row.Scan(
		&profile.ID,
		&profile.AccountID,
		&profile.Name,
		&profile.Picture,
		&profile.Language,
		&profile.AgeRestriction,
		&profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// Compile-time verification that ProfileRepository implements repository.ProfileRepository.
var _ repository.ProfileRepository = (*ProfileRepository)(nil)
