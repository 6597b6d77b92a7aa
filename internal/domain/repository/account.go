package repository

import (
	"context"

	"github.com/mzw111/Streamix/internal/domain/model"
)

// AccountRepository defines persistence operations for accounts.
// Implementations are provided by the infrastructure layer (PostgreSQL).
type AccountRepository interface {
	// Create persists a new account.
	// Returns ErrDuplicateEmail if the email is already registered.
	Create(ctx context.Context, account *model.Account) error

	// GetByID retrieves an account by its identifier.
	// Returns ErrAccountNotFound if no such account exists.
	GetByID(ctx context.Context, id int64) (*model.Account, error)

	// GetByEmail retrieves an account by email.
	// Returns ErrAccountNotFound if no such account exists.
	GetByEmail(ctx context.Context, email string) (*model.Account, error)

	// Update applies non-empty identity fields (name, dob, country).
	// Returns ErrAccountNotFound if the account does not exist.
	Update(ctx context.Context, account *model.Account) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
