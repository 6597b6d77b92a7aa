package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/domain/repository"
)

// SubscriptionRepository implements repository.SubscriptionRepository using PostgreSQL.
type SubscriptionRepository struct {
	db DBTX
}

// NewSubscriptionRepository creates a new SubscriptionRepository instance.
func NewSubscriptionRepository(db DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create persists a new subscription and assigns its generated id.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	const query = `
		INSERT INTO subscription (account_id, start_date, end_date, auto_renewal, payment_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING subscription_id
	`

	err := r.db.QueryRow(ctx, query,
		sub.AccountID,
		sub.StartDate,
		nullString(sub.EndDate),
		sub.AutoRenewal,
		sub.PaymentStatus,
	).Scan(&sub.ID)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// ListByAccount retrieves an account's subscriptions, latest start first.
func (r *SubscriptionRepository) ListByAccount(ctx context.Context, accountID int64) ([]*model.Subscription, error) {
	const query = `
		SELECT subscription_id, account_id, start_date, end_date, auto_renewal, payment_status
		FROM subscription
		WHERE account_id = $1
		ORDER BY start_date DESC
	`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []*model.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscriptions: %w", err)
	}

	return subs, nil
}

// Latest retrieves the account's most recent subscription.
func (r *SubscriptionRepository) Latest(ctx context.Context, accountID int64) (*model.Subscription, error) {
	const query = `
		SELECT subscription_id, account_id, start_date, end_date, auto_renewal, payment_status
		FROM subscription
		WHERE account_id = $1
		ORDER BY start_date DESC
		LIMIT 1
	`

	sub, err := scanSubscription(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get latest subscription: %w", err)
	}

	return sub, nil
}

// OwnedByAccount reports whether the subscription exists and belongs to the
// account. Direct ownership: a single (id, account) pair lookup.
func (r *SubscriptionRepository) OwnedByAccount(ctx context.Context, subscriptionID, accountID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM subscription WHERE subscription_id = $1 AND account_id = $2
		)
	`

	var owned bool
	if err := r.db.QueryRow(ctx, query, subscriptionID, accountID).Scan(&owned); err != nil {
		return false, fmt.Errorf("failed to check subscription ownership: %w", err)
	}

	return owned, nil
}

func scanSubscription(row pgx.Row) (*model.Subscription, error) {
	var (
		sub     model.Subscription
		endDate *string
	)

	err := row.Scan(
		&sub.ID,
		&sub.AccountID,
		&sub.StartDate,
		&endDate,
		&sub.AutoRenewal,
		&sub.PaymentStatus,
	)
	if err != nil {
		return nil, err
	}

	if endDate != nil {
		sub.EndDate = *endDate
	}

	return &sub, nil
}

// PaymentRepository implements repository.PaymentRepository using PostgreSQL.
type PaymentRepository struct {
	db DBTX
}

// NewPaymentRepository creates a new PaymentRepository instance.
func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create persists a payment record.
func (r *PaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	const query = `
		INSERT INTO payment (subscription_id, amount, payment_method, payment_status, transaction_id, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		payment.SubscriptionID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.TransactionID,
		payment.PaymentDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

// ListBySubscription retrieves payments for a subscription, newest first.
func (r *PaymentRepository) ListBySubscription(ctx context.Context, subscriptionID int64) ([]*model.Payment, error) {
	const query = `
		SELECT payment_id, subscription_id, amount, payment_method, payment_status, transaction_id, payment_date
		FROM payment
		WHERE subscription_id = $1
		ORDER BY payment_date DESC
	`

	rows, err := r.db.Query(ctx, query, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []*model.Payment
	for rows.Next() {
		var payment model.Payment
		if err := rows.Scan(&payment.ID, &payment.SubscriptionID, &payment.Amount,
			&payment.Method, &payment.Status, &payment.TransactionID, &payment.PaymentDate); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}

	return payments, nil
}

// ListByAccount retrieves all payments across an account's subscriptions,
// newest first, with the subscription period attached.
func (r *PaymentRepository) ListByAccount(ctx context.Context, accountID int64) ([]*model.Payment, error) {
	const query = `
		SELECT p.payment_id, p.subscription_id, p.amount, p.payment_method, p.payment_status,
		       p.transaction_id, p.payment_date, s.start_date, s.end_date
		FROM payment p
		JOIN subscription s ON p.subscription_id = s.subscription_id
		WHERE s.account_id = $1
		ORDER BY p.payment_date DESC
	`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query account payments: %w", err)
	}
	defer rows.Close()

	var payments []*model.Payment
	for rows.Next() {
		var (
			payment model.Payment
			endDate *string
		)
		if err := rows.Scan(&payment.ID, &payment.SubscriptionID, &payment.Amount,
			&payment.Method, &payment.Status, &payment.TransactionID, &payment.PaymentDate,
			&payment.SubscriptionStart, &endDate); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		if endDate != nil {
			payment.SubscriptionEnd = *endDate
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account payments: %w", err)
	}

	return payments, nil
}

// Compile-time verification of the repository interfaces.
var (
	_ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)
	_ repository.PaymentRepository      = (*PaymentRepository)(nil)
)
