package model

import (
	"errors"
	"strings"
	"time"
)

// Account represents a registered user with login credentials.
type Account struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	DateOfBirth  string
	Country      string
	CreatedAt    time.Time
}

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrInvalidEmail  = errors.New("email is malformed")
)

// NewAccount creates an Account pending persistence. The password hash is
// assigned separately by the auth layer.
func NewAccount(name, email, dob, country string) (*Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	return &Account{
		Name:        strings.TrimSpace(name),
		Email:       email,
		DateOfBirth: dob,
		Country:     country,
		CreatedAt:   time.Now(),
	}, nil
}
