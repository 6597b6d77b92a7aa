package repository

import "errors"

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateEmail is returned when an account with the same email
	// already exists.
	ErrDuplicateEmail = errors.New("account with this email already exists")

	// ErrProfileNotFound is returned when a profile cannot be found.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileLimitReached is returned when an insert would exceed the
	// per-account profile cap. Raised by the database trigger; the
	// application pre-check maps to the same error.
	ErrProfileLimitReached = errors.New("profile limit reached for account")

	// ErrContentNotFound is returned when a catalog entry (movie, TV show,
	// or genre) cannot be found.
	ErrContentNotFound = errors.New("content not found")

	// ErrEntryNotFound is returned when a watchlist, rating, or history
	// entry cannot be found.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrSubscriptionNotFound is returned when a subscription cannot be found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
