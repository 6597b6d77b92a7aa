// Package auth provides the session token service and password hashing
// primitives. Tokens are stateless: validity is determined purely by
// signature and expiry, with no server-side session store or revocation
// list. Rotating the signing secret invalidates all outstanding tokens.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned when the signature does not verify or
	// the payload is malformed.
	ErrTokenInvalid = errors.New("token invalid")
)

// DefaultTokenTTL is the session lifetime from issuance.
const DefaultTokenTTL = 6 * time.Hour

// Claims carries the account identity alongside the registered expiry claim.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens. The secret is
// process-wide configuration, immutable after startup.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService. A non-positive ttl falls back to
// DefaultTokenTTL.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue produces a signed bearer token for the account and returns it with
// its expiry time.
func (s *TokenService) Issue(accountID int64) (string, time.Time, error) {
	expiry := time.Now().Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiry, nil
}

// Verify checks the token's signature and expiry and returns the account
// identity it carries. Whether the account still exists is not checked here;
// downstream queries by an unknown id simply find no rows.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	if !token.Valid || claims.UserID <= 0 {
		return 0, ErrTokenInvalid
	}

	return claims.UserID, nil
}
