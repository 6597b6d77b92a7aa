package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mzw111/Streamix/internal/auth"
	"github.com/mzw111/Streamix/internal/infrastructure/metrics"
)

const accountIDKey ctxKey = iota + 1

// TokenVerifier is the slice of the token service the gate needs.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// unauthorized mirrors the handler package's envelope. Written inline here
// to keep the middleware free of a handler dependency.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"success":false,"message":"` + message + `"}`))
}

// Auth is the authentication gate. It extracts the bearer token, verifies
// it, and injects the resolved account id into the request context. Every
// protected route must be registered behind it; it reads the token and
// nothing else.
//
// Whether the account still exists is not checked here. A token for a
// deleted account passes the gate and downstream queries find no rows.
func Auth(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				metrics.AuthFailuresTotal.WithLabelValues(metrics.AuthReasonMissing).Inc()
				unauthorized(w, "Missing token")
				return
			}

			accountID, err := tokens.Verify(token)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					metrics.AuthFailuresTotal.WithLabelValues(metrics.AuthReasonExpired).Inc()
					unauthorized(w, "Token expired")
					return
				}
				metrics.AuthFailuresTotal.WithLabelValues(metrics.AuthReasonInvalid).Inc()
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), accountIDKey, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountID retrieves the authenticated account id from context. The second
// return is false outside the authentication gate.
func AccountID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(accountIDKey).(int64)
	return id, ok
}

// WithAccountID returns a context carrying the account id, as the gate would
// set it. Intended for handler tests.
func WithAccountID(ctx context.Context, accountID int64) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
