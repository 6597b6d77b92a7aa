package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/domain/repository"
)

// CreateSubscriptionInput contains the input parameters for subscription creation.
type CreateSubscriptionInput struct {
	AccountID     int64
	StartDate     string
	EndDate       string
	AutoRenewal   bool
	PaymentStatus string
}

// RecordPaymentInput contains the input parameters for recording a payment.
type RecordPaymentInput struct {
	AccountID      int64
	SubscriptionID int64
	Amount         float64
	Method         string
	Status         string
}

// BillingService defines subscription and payment management. Payments are
// recorded, not processed; no gateway is involved.
type BillingService interface {
	// CreateSubscription starts a subscription for the account.
	CreateSubscription(ctx context.Context, input CreateSubscriptionInput) (*model.Subscription, error)

	// ListSubscriptions retrieves the account's subscriptions.
	ListSubscriptions(ctx context.Context, accountID int64) ([]*model.Subscription, error)

	// SubscriptionStatus derives Active/Expired/None from the account's
	// latest subscription.
	SubscriptionStatus(ctx context.Context, accountID int64) (model.SubscriptionStatus, error)

	// RecordPayment verifies subscription ownership, assigns a transaction
	// id, and records the payment.
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*model.Payment, error)

	// PaymentsForSubscription retrieves payments for an owned subscription.
	PaymentsForSubscription(ctx context.Context, accountID, subscriptionID int64) ([]*model.Payment, error)

	// PaymentHistory retrieves all payments across the account's subscriptions.
	PaymentHistory(ctx context.Context, accountID int64) ([]*model.Payment, error)
}

type billingService struct {
	ownership     OwnershipVerifier
	subscriptions repository.SubscriptionRepository
	payments      repository.PaymentRepository
}

// NewBillingService creates a new BillingService instance.
func NewBillingService(
	ownership OwnershipVerifier,
	subscriptions repository.SubscriptionRepository,
	payments repository.PaymentRepository,
) BillingService {
	return &billingService{
		ownership:     ownership,
		subscriptions: subscriptions,
		payments:      payments,
	}
}

// CreateSubscription starts a subscription for the account.
func (s *billingService) CreateSubscription(ctx context.Context, input CreateSubscriptionInput) (*model.Subscription, error) {
	sub, err := model.NewSubscription(input.AccountID, input.StartDate, input.EndDate, input.AutoRenewal, input.PaymentStatus)
	if err != nil {
		return nil, err
	}

	if err := s.subscriptions.Create(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// ListSubscriptions retrieves the account's subscriptions.
func (s *billingService) ListSubscriptions(ctx context.Context, accountID int64) ([]*model.Subscription, error) {
	return s.subscriptions.ListByAccount(ctx, accountID)
}

// SubscriptionStatus derives the account's status from its latest
// subscription: Active while within the period (an open end date never
// expires), Expired after, None without any subscription.
func (s *billingService) SubscriptionStatus(ctx context.Context, accountID int64) (model.SubscriptionStatus, error) {
	sub, err := s.subscriptions.Latest(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return model.SubscriptionNone, nil
		}
		return "", fmt.Errorf("get latest subscription: %w", err)
	}

	if sub.EndDate == "" {
		return model.SubscriptionActive, nil
	}

	endDate, err := time.Parse("2006-01-02", sub.EndDate)
	if err != nil {
		return "", fmt.Errorf("parse subscription end date: %w", err)
	}

	// The subscription covers the whole of its end date.
	if time.Now().Before(endDate.AddDate(0, 0, 1)) {
		return model.SubscriptionActive, nil
	}

	return model.SubscriptionExpired, nil
}

// RecordPayment verifies subscription ownership before inserting.
func (s *billingService) RecordPayment(ctx context.Context, input RecordPaymentInput) (*model.Payment, error) {
	payment, err := model.NewPayment(input.SubscriptionID, input.Amount, input.Method, input.Status)
	if err != nil {
		return nil, err
	}

	if err := s.ownership.VerifySubscription(ctx, input.AccountID, input.SubscriptionID); err != nil {
		return nil, err
	}

	payment.TransactionID = newTransactionID()

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// PaymentsForSubscription verifies subscription ownership before disclosure.
func (s *billingService) PaymentsForSubscription(ctx context.Context, accountID, subscriptionID int64) ([]*model.Payment, error) {
	if err := s.ownership.VerifySubscription(ctx, accountID, subscriptionID); err != nil {
		return nil, err
	}

	return s.payments.ListBySubscription(ctx, subscriptionID)
}

// PaymentHistory retrieves all payments across the account's subscriptions.
// Scoped to the account by the join; no per-row check needed.
func (s *billingService) PaymentHistory(ctx context.Context, accountID int64) ([]*model.Payment, error) {
	return s.payments.ListByAccount(ctx, accountID)
}

// newTransactionID generates a reference like TXN-1A2B3C4D5E6F.
func newTransactionID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "TXN-" + strings.ToUpper(hex[:12])
}
