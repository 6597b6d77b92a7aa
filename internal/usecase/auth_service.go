package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mzw111/Streamix/internal/auth"
	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/domain/repository"
)

var (
	// ErrInvalidCredentials is returned when the email or password does
	// not match. The two cases are not distinguished.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWrongOldPassword is returned when the current password supplied
	// to a password change does not match.
	ErrWrongOldPassword = errors.New("old password is incorrect")
)

// SignupInput contains the input parameters for account registration.
type SignupInput struct {
	Name        string
	Email       string
	Password    string
	DateOfBirth string
	Country     string
}

// LoginOutput contains the session token and account summary returned on login.
type LoginOutput struct {
	Token   string
	Expiry  time.Time
	Account *model.Account
}

// AuthService defines account registration, login, and credential management.
type AuthService interface {
	// Signup registers a new account with a hashed password.
	Signup(ctx context.Context, input SignupInput) (*model.Account, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, email, password string) (*LoginOutput, error)

	// GetAccount retrieves an account by id.
	GetAccount(ctx context.Context, accountID int64) (*model.Account, error)

	// UpdateAccount applies non-empty identity fields.
	UpdateAccount(ctx context.Context, accountID int64, name, dob, country string) error

	// ChangePassword verifies the old password and stores a new hash.
	ChangePassword(ctx context.Context, accountID int64, oldPassword, newPassword string) error
}

type authService struct {
	accounts repository.AccountRepository
	tokens   *auth.TokenService
	hasher   *auth.PasswordHasher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	accounts repository.AccountRepository,
	tokens *auth.TokenService,
	hasher *auth.PasswordHasher,
) AuthService {
	return &authService{
		accounts: accounts,
		tokens:   tokens,
		hasher:   hasher,
	}
}

// Signup registers a new account.
func (s *authService) Signup(ctx context.Context, input SignupInput) (*model.Account, error) {
	if input.Password == "" {
		return nil, model.ErrEmptyPassword
	}

	account, err := model.NewAccount(input.Name, input.Email, input.DateOfBirth, input.Country)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	account.PasswordHash = hash

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Login verifies credentials and issues a session token.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginOutput, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	if !s.hasher.Verify(account.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, expiry, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginOutput{
		Token:   token,
		Expiry:  expiry,
		Account: account,
	}, nil
}

// GetAccount retrieves an account by id.
func (s *authService) GetAccount(ctx context.Context, accountID int64) (*model.Account, error) {
	return s.accounts.GetByID(ctx, accountID)
}

// UpdateAccount applies non-empty identity fields.
func (s *authService) UpdateAccount(ctx context.Context, accountID int64, name, dob, country string) error {
	return s.accounts.Update(ctx, &model.Account{
		ID:          accountID,
		Name:        name,
		DateOfBirth: dob,
		Country:     country,
	})
}

// ChangePassword verifies the old password and stores a new hash.
func (s *authService) ChangePassword(ctx context.Context, accountID int64, oldPassword, newPassword string) error {
	if newPassword == "" {
		return model.ErrEmptyPassword
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(account.PasswordHash, oldPassword) {
		return ErrWrongOldPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.accounts.UpdatePassword(ctx, accountID, hash)
}
