package model

import (
	"errors"
	"time"
)

// SubscriptionStatus is the derived state of an account's latest subscription.
type SubscriptionStatus string

const (
	SubscriptionActive  SubscriptionStatus = "Active"
	SubscriptionExpired SubscriptionStatus = "Expired"
	SubscriptionNone    SubscriptionStatus = "None"
)

// Subscription is directly owned by an Account.
type Subscription struct {
	ID            int64
	AccountID     int64
	StartDate     string
	EndDate       string
	AutoRenewal   bool
	PaymentStatus string
}

// Payment records money received against a subscription. Payments are
// recorded, not processed; no gateway interaction happens here.
type Payment struct {
	ID             int64
	SubscriptionID int64
	Amount         float64
	Method         string
	Status         string
	TransactionID  string
	PaymentDate    time.Time
	// Set only on account-wide history reads.
	SubscriptionStart string
	SubscriptionEnd   string
}

var (
	ErrEmptyStartDate        = errors.New("start date is required")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrInvalidSubscriptionID = errors.New("subscription ID must be positive")
)

const (
	DefaultPaymentMethod = "Credit Card"
	DefaultPaymentStatus = "Pending"
)

// NewSubscription validates a subscription creation request.
func NewSubscription(accountID int64, startDate, endDate string, autoRenewal bool, paymentStatus string) (*Subscription, error) {
	if accountID <= 0 {
		return nil, ErrInvalidAccountID
	}
	if startDate == "" {
		return nil, ErrEmptyStartDate
	}
	if paymentStatus == "" {
		paymentStatus = DefaultPaymentStatus
	}
	return &Subscription{
		AccountID:     accountID,
		StartDate:     startDate,
		EndDate:       endDate,
		AutoRenewal:   autoRenewal,
		PaymentStatus: paymentStatus,
	}, nil
}

// NewPayment validates a payment record. The transaction id is assigned by
// the billing service before insert.
func NewPayment(subscriptionID int64, amount float64, method, status string) (*Payment, error) {
	if subscriptionID <= 0 {
		return nil, ErrInvalidSubscriptionID
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if method == "" {
		method = DefaultPaymentMethod
	}
	if status == "" {
		status = DefaultPaymentStatus
	}
	return &Payment{
		SubscriptionID: subscriptionID,
		Amount:         amount,
		Method:         method,
		Status:         status,
		PaymentDate:    time.Now(),
	}, nil
}
