package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/domain/repository"
	"github.com/mzw111/Streamix/internal/usecase"
)

// Mock AuthService

type mockAuthService struct {
	signupFn         func(ctx context.Context, input usecase.SignupInput) (*model.Account, error)
	loginFn          func(ctx context.Context, email, password string) (*usecase.LoginOutput, error)
	getAccountFn     func(ctx context.Context, accountID int64) (*model.Account, error)
	updateAccountFn  func(ctx context.Context, accountID int64, name, dob, country string) error
	changePasswordFn func(ctx context.Context, accountID int64, oldPassword, newPassword string) error
}

func (m *mockAuthService) Signup(ctx context.Context, input usecase.SignupInput) (*model.Account, error) {
	if m.signupFn != nil {
		return m.signupFn(ctx, input)
	}
	return nil, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return nil, nil
}

func (m *mockAuthService) GetAccount(ctx context.Context, accountID int64) (*model.Account, error) {
	if m.getAccountFn != nil {
		return m.getAccountFn(ctx, accountID)
	}
	return nil, repository.ErrAccountNotFound
}

func (m *mockAuthService) UpdateAccount(ctx context.Context, accountID int64, name, dob, country string) error {
	if m.updateAccountFn != nil {
		return m.updateAccountFn(ctx, accountID, name, dob, country)
	}
	return nil
}

func (m *mockAuthService) ChangePassword(ctx context.Context, accountID int64, oldPassword, newPassword string) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(ctx, accountID, oldPassword, newPassword)
	}
	return nil
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		setupMock      func(m *mockAuthService)
		wantStatusCode int
		wantMessage    string
	}{
		{
			name: "successful signup",
			requestBody: SignupRequest{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: "s3cret",
			},
			setupMock: func(m *mockAuthService) {
				m.signupFn = func(ctx context.Context, input usecase.SignupInput) (*model.Account, error) {
					return &model.Account{ID: 7, Name: input.Name, Email: input.Email, CreatedAt: time.Now()}, nil
				}
			},
			wantStatusCode: http.StatusCreated,
			wantMessage:    "User registered successfully",
		},
		{
			name: "duplicate email",
			requestBody: SignupRequest{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: "s3cret",
			},
			setupMock: func(m *mockAuthService) {
				m.signupFn = func(ctx context.Context, input usecase.SignupInput) (*model.Account, error) {
					return nil, repository.ErrDuplicateEmail
				}
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "User already exists!",
		},
		{
			name: "empty password",
			requestBody: SignupRequest{
				Name:  "Alice",
				Email: "alice@example.com",
			},
			setupMock: func(m *mockAuthService) {
				m.signupFn = func(ctx context.Context, input usecase.SignupInput) (*model.Account, error) {
					return nil, model.ErrEmptyPassword
				}
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "password cannot be empty",
		},
		{
			name:           "invalid JSON body",
			requestBody:    "not json",
			setupMock:      func(m *mockAuthService) {},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Invalid JSON body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAuthService{}
			tt.setupMock(mock)
			h := NewAuthHandler(mock)

			var body []byte
			switch v := tt.requestBody.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/user/signup", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.Signup(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("expected status %d, got %d", tt.wantStatusCode, rec.Code)
			}

			var resp struct {
				Success bool            `json:"success"`
				Message string          `json:"message"`
				User    *AccountSummary `json:"user"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if resp.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, resp.Message)
			}
			if tt.wantStatusCode == http.StatusCreated && (resp.User == nil || resp.User.ID != 7) {
				t.Errorf("expected user summary for account 7, got %+v", resp.User)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(m *mockAuthService)
		wantStatusCode int
		wantMessage    string
		wantToken      string
	}{
		{
			name: "successful login",
			setupMock: func(m *mockAuthService) {
				m.loginFn = func(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
					return &usecase.LoginOutput{
						Token:   "signed-token",
						Expiry:  time.Now().Add(6 * time.Hour),
						Account: &model.Account{ID: 7, Name: "Alice", Email: email},
					}, nil
				}
			},
			wantStatusCode: http.StatusOK,
			wantMessage:    "Login successful",
			wantToken:      "signed-token",
		},
		{
			name: "wrong credentials",
			setupMock: func(m *mockAuthService) {
				m.loginFn = func(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
					return nil, usecase.ErrInvalidCredentials
				}
			},
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "Invalid email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAuthService{}
			tt.setupMock(mock)
			h := NewAuthHandler(mock)

			body, _ := json.Marshal(LoginRequest{Email: "alice@example.com", Password: "s3cret"})
			req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.Login(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("expected status %d, got %d", tt.wantStatusCode, rec.Code)
			}

			var resp LoginResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if resp.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, resp.Message)
			}
			if resp.Token != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, resp.Token)
			}
		})
	}
}

func TestAccountHandler_ChangePassword(t *testing.T) {
	mock := &mockAuthService{
		changePasswordFn: func(ctx context.Context, accountID int64, oldPassword, newPassword string) error {
			if oldPassword != "old-secret" {
				return usecase.ErrWrongOldPassword
			}
			return nil
		},
	}
	h := NewAccountHandler(mock)

	body, _ := json.Marshal(ChangePasswordRequest{OldPassword: "wrong", NewPassword: "new-secret"})
	req := authedRequest(http.MethodPut, "/api/users/change-password", body, 7)
	rec := httptest.NewRecorder()

	h.ChangePassword(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Message != "Old password is incorrect" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}
