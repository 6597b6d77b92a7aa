package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/domain/repository"
	"github.com/mzw111/Streamix/internal/infrastructure/metrics"
)

// CreateProfileInput contains the input parameters for profile creation.
// Optional fields default at the model layer.
type CreateProfileInput struct {
	AccountID      int64
	Name           string
	Picture        string
	Language       string
	AgeRestriction string
}

// ProfileService defines viewer profile management.
type ProfileService interface {
	// CreateProfile creates a profile subject to the per-account cap and
	// returns the persisted row.
	CreateProfile(ctx context.Context, input CreateProfileInput) (*model.Profile, error)

	// ListProfiles retrieves the account's profiles.
	ListProfiles(ctx context.Context, accountID int64) ([]*model.Profile, error)

	// DeleteProfile removes a profile owned by the account.
	// Returns ErrNotOwned for a foreign or nonexistent profile.
	DeleteProfile(ctx context.Context, accountID, profileID int64) error
}

type profileService struct {
	profiles repository.ProfileRepository
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(profiles repository.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

// CreateProfile enforces the per-account cap on two layers. The count here
// gives fast rejection; the database trigger is authoritative under
// concurrency, and its rejection surfaces as the same error. The created row
// is read back by natural key (owner + name, most recent) rather than
// last-insert-id, which stays correct when concurrent inserts for the same
// owner interleave.
func (s *profileService) CreateProfile(ctx context.Context, input CreateProfileInput) (*model.Profile, error) {
	profile, err := model.NewProfile(input.AccountID, input.Name, input.Picture, input.Language, input.AgeRestriction)
	if err != nil {
		return nil, err
	}

	count, err := s.profiles.CountByAccount(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("count profiles: %w", err)
	}
	if count >= model.MaxProfilesPerAccount {
		metrics.ProfileLimitRejectionsTotal.WithLabelValues(metrics.LimitLayerPrecheck).Inc()
		return nil, repository.ErrProfileLimitReached
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileLimitReached) {
			metrics.ProfileLimitRejectionsTotal.WithLabelValues(metrics.LimitLayerConstraint).Inc()
		}
		return nil, err
	}

	created, err := s.profiles.GetByOwnerAndName(ctx, input.AccountID, profile.Name)
	if err != nil {
		return nil, fmt.Errorf("read back created profile: %w", err)
	}

	return created, nil
}

// ListProfiles retrieves the account's profiles.
func (s *profileService) ListProfiles(ctx context.Context, accountID int64) ([]*model.Profile, error) {
	return s.profiles.ListByAccount(ctx, accountID)
}

// DeleteProfile removes a profile owned by the account. The owner-scoped
// delete makes a foreign profile indistinguishable from a missing one, and
// deleting an already-deleted profile yields the same outcome.
func (s *profileService) DeleteProfile(ctx context.Context, accountID, profileID int64) error {
	if err := s.profiles.Delete(ctx, profileID, accountID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return ErrNotOwned
		}
		return err
	}
	return nil
}
