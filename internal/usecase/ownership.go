package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mzw111/Streamix/internal/domain/repository"
)

// ErrNotOwned is returned when a resource does not exist or does not belong
// to the requesting account. The two cases are deliberately conflated so a
// caller cannot probe for the existence of other users' resources. Every
// resource handler consumes this one sentinel.
var ErrNotOwned = errors.New("resource not found or not owned by account")

// OwnershipVerifier confirms that a resource belongs to an account before a
// handler may disclose or mutate it. Subscriptions are owned directly;
// watchlist entries, ratings, and history entries resolve transitively
// through their profile.
type OwnershipVerifier interface {
	// VerifyProfile confirms the profile belongs to the account.
	VerifyProfile(ctx context.Context, accountID, profileID int64) error

	// VerifySubscription confirms the subscription belongs to the account.
	VerifySubscription(ctx context.Context, accountID, subscriptionID int64) error

	// VerifyHistoryEntry confirms the history entry belongs, via its
	// profile, to the account.
	VerifyHistoryEntry(ctx context.Context, accountID, historyID int64) error
}

type ownershipVerifier struct {
	profiles      repository.ProfileRepository
	subscriptions repository.SubscriptionRepository
	history       repository.HistoryRepository
}

// NewOwnershipVerifier creates an OwnershipVerifier over the given repositories.
func NewOwnershipVerifier(
	profiles repository.ProfileRepository,
	subscriptions repository.SubscriptionRepository,
	history repository.HistoryRepository,
) OwnershipVerifier {
	return &ownershipVerifier{
		profiles:      profiles,
		subscriptions: subscriptions,
		history:       history,
	}
}

func (v *ownershipVerifier) VerifyProfile(ctx context.Context, accountID, profileID int64) error {
	owned, err := v.profiles.OwnedByAccount(ctx, profileID, accountID)
	if err != nil {
		return fmt.Errorf("check profile ownership: %w", err)
	}
	if !owned {
		return ErrNotOwned
	}
	return nil
}

func (v *ownershipVerifier) VerifySubscription(ctx context.Context, accountID, subscriptionID int64) error {
	owned, err := v.subscriptions.OwnedByAccount(ctx, subscriptionID, accountID)
	if err != nil {
		return fmt.Errorf("check subscription ownership: %w", err)
	}
	if !owned {
		return ErrNotOwned
	}
	return nil
}

func (v *ownershipVerifier) VerifyHistoryEntry(ctx context.Context, accountID, historyID int64) error {
	owned, err := v.history.OwnedByAccount(ctx, historyID, accountID)
	if err != nil {
		return fmt.Errorf("check history ownership: %w", err)
	}
	if !owned {
		return ErrNotOwned
	}
	return nil
}
