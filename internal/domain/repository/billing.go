package repository

import (
	"context"

	"github.com/mzw111/Streamix/internal/domain/model"
)

// SubscriptionRepository defines persistence operations for subscriptions.
type SubscriptionRepository interface {
	// Create persists a new subscription.
	Create(ctx context.Context, sub *model.Subscription) error

	// ListByAccount retrieves an account's subscriptions, latest start first.
	ListByAccount(ctx context.Context, accountID int64) ([]*model.Subscription, error)

	// Latest retrieves the account's most recent subscription.
	// Returns ErrSubscriptionNotFound when the account has none.
	Latest(ctx context.Context, accountID int64) (*model.Subscription, error)

	// OwnedByAccount reports whether the subscription exists and belongs
	// to the account.
	OwnedByAccount(ctx context.Context, subscriptionID, accountID int64) (bool, error)
}

// PaymentRepository defines persistence operations for payment records.
type PaymentRepository interface {
	// Create persists a payment record.
	Create(ctx context.Context, payment *model.Payment) error

	// ListBySubscription retrieves payments for a subscription, newest first.
	ListBySubscription(ctx context.Context, subscriptionID int64) ([]*model.Payment, error)

	// ListByAccount retrieves all payments across an account's
	// subscriptions, newest first, with subscription dates attached.
	ListByAccount(ctx context.Context, accountID int64) ([]*model.Payment, error)
}
