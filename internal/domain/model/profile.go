package model

import (
	"errors"
	"strings"
	"time"
)

// MaxProfilesPerAccount caps viewer profiles per account. The database
// carries the same limit in its insert trigger; the two must agree.
const MaxProfilesPerAccount = 3

const (
	DefaultProfilePicture = "default_avatar.png"
	DefaultLanguage       = "English"
	DefaultAgeRestriction = "All"
)

// Profile is a viewer persona under an Account.
type Profile struct {
	ID             int64
	AccountID      int64
	Name           string
	Picture        string
	Language       string
	AgeRestriction string
	CreatedAt      time.Time
}

var (
	ErrEmptyProfileName   = errors.New("profile name cannot be empty")
	ErrProfileNameTooLong = errors.New("profile name exceeds maximum length of 50 characters")
	ErrInvalidAccountID   = errors.New("account ID must be positive")
)

const maxProfileNameLength = 50

// NewProfile creates a Profile with defaults applied for optional fields.
func NewProfile(accountID int64, name, picture, language, ageRestriction string) (*Profile, error) {
	if accountID <= 0 {
		return nil, ErrInvalidAccountID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProfileName
	}
	if len(name) > maxProfileNameLength {
		return nil, ErrProfileNameTooLong
	}
	if picture == "" {
		picture = DefaultProfilePicture
	}
	if language == "" {
		language = DefaultLanguage
	}
	if ageRestriction == "" {
		ageRestriction = DefaultAgeRestriction
	}

	return &Profile{
		AccountID:      accountID,
		Name:           name,
		Picture:        picture,
		Language:       language,
		AgeRestriction: ageRestriction,
		CreatedAt:      time.Now(),
	}, nil
}
