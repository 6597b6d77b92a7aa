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

// AccountRepository implements repository.AccountRepository using PostgreSQL.
type AccountRepository struct {
	db DBTX
}

// NewAccountRepository creates a new AccountRepository instance.
func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create persists a new account and assigns its generated id.
func (r *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	const query = `
		INSERT INTO user_account (name, email, password_hash, date_of_birth, country, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING account_id
	`

	err := r.db.QueryRow(ctx, query,
		account.Name,
		account.Email,
		account.PasswordHash,
		nullString(account.DateOfBirth),
		nullString(account.Country),
		account.CreatedAt,
	).Scan(&account.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
			return repository.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetByID retrieves an account by its identifier.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	const query = `
		SELECT account_id, name, email, password_hash, date_of_birth, country, created_at
		FROM user_account
		WHERE account_id = $1
	`

	return r.scanAccount(r.db.QueryRow(ctx, query, id))
}

// GetByEmail retrieves an account by email.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	const query = `
		SELECT account_id, name, email, password_hash, date_of_birth, country, created_at
		FROM user_account
		WHERE email = $1
	`

	return r.scanAccount(r.db.QueryRow(ctx, query, email))
}

// Update applies non-empty identity fields, leaving the rest untouched.
func (r *AccountRepository) Update(ctx context.Context, account *model.Account) error {
	const query = `
		UPDATE user_account
		SET name          = COALESCE(NULLIF($2, ''), name),
		    date_of_birth = COALESCE(NULLIF($3, ''), date_of_birth),
		    country       = COALESCE(NULLIF($4, ''), country)
		WHERE account_id = $1
	`

	tag, err := r.db.Exec(ctx, query, account.ID, account.Name, account.DateOfBirth, account.Country)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *AccountRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `
		UPDATE user_account
		SET password_hash = $2
		WHERE account_id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (r *AccountRepository) scanAccount(row pgx.Row) (*model.Account, error) {
	var (
		account model.Account
		dob     *string
		country *string
	)

	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&dob,
		&country,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if dob != nil {
		account.DateOfBirth = *dob
	}
	if country != nil {
		account.Country = *country
	}

	return &account, nil
}

// nullString returns nil for empty strings, otherwise a pointer to the string.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Compile-time verification that AccountRepository implements repository.AccountRepository.
var _ repository.AccountRepository = (*AccountRepository)(nil)
