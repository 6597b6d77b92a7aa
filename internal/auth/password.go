package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher wraps the one-way hash and verify primitives used for
// account credentials.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher. A cost outside bcrypt's valid
// range falls back to the library default.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash derives a one-way hash of the password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the password matches the stored hash.
func (h *PasswordHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
