package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mzw111/Streamix/internal/auth"
)

type stubVerifier struct {
	accountID int64
	err       error
}

func (s *stubVerifier) Verify(token string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.accountID, nil
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name           string
		authorization  string
		verifier       *stubVerifier
		wantStatusCode int
		wantMessage    string
		wantNextCalled bool
		wantAccountID  int64
	}{
		{
			name:           "valid token passes with account id in context",
			authorization:  "Bearer good-token",
			verifier:       &stubVerifier{accountID: 7},
			wantStatusCode: http.StatusOK,
			wantNextCalled: true,
			wantAccountID:  7,
		},
		{
			name:           "missing header",
			authorization:  "",
			verifier:       &stubVerifier{accountID: 7},
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "Missing token",
		},
		{
			name:           "wrong scheme",
			authorization:  "Basic dXNlcjpwYXNz",
			verifier:       &stubVerifier{accountID: 7},
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "Missing token",
		},
		{
			name:           "bearer with empty token",
			authorization:  "Bearer ",
			verifier:       &stubVerifier{accountID: 7},
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "Missing token",
		},
		{
			name:           "expired token",
			authorization:  "Bearer stale-token",
			verifier:       &stubVerifier{err: auth.ErrTokenExpired},
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "Token expired",
		},
		{
			name:           "garbage token",
			authorization:  "Bearer not-a-jwt",
			verifier:       &stubVerifier{err: auth.ErrTokenInvalid},
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "Invalid or expired token",
		},
		{
			name:           "lowercase bearer scheme accepted",
			authorization:  "bearer good-token",
			verifier:       &stubVerifier{accountID: 7},
			wantStatusCode: http.StatusOK,
			wantNextCalled: true,
			wantAccountID:  7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nextCalled bool
			var gotAccountID int64

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotAccountID, _ = AccountID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/profiles/list", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			Auth(tt.verifier)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("expected status %d, got %d", tt.wantStatusCode, rec.Code)
			}
			if nextCalled != tt.wantNextCalled {
				t.Errorf("expected nextCalled=%v, got %v", tt.wantNextCalled, nextCalled)
			}

			if tt.wantNextCalled {
				if gotAccountID != tt.wantAccountID {
					t.Errorf("expected account id %d in context, got %d", tt.wantAccountID, gotAccountID)
				}
				return
			}

			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if body.Success {
				t.Error("expected success=false")
			}
			if body.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, body.Message)
			}
		})
	}
}
