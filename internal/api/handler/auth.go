package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mzw111/Streamix/internal/usecase"
)

// Request/Response types

type SignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth string `json:"date_of_birth"`
	Country     string `json:"country"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AccountSummary struct {
	ID    int64  `json:"user_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SignupResponse struct {
	Response
	User AccountSummary `json:"user"`
}

type LoginResponse struct {
	Response
	Token     string         `json:"token"`
	ExpiresAt string         `json:"expires_at"`
	User      AccountSummary `json:"user"`
}

// AuthHandler handles registration and session endpoints.
type AuthHandler struct {
	svc usecase.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc usecase.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Signup handles POST /api/user/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	account, err := h.svc.Signup(r.Context(), usecase.SignupInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		DateOfBirth: req.DateOfBirth,
		Country:     req.Country,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, SignupResponse{
		Response: Response{Success: true, Message: "User registered successfully"},
		User: AccountSummary{
			ID:    account.ID,
			Name:  account.Name,
			Email: account.Email,
		},
	})
}

// Login handles POST /api/user/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	output, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, LoginResponse{
		Response:  Response{Success: true, Message: "Login successful"},
		Token:     output.Token,
		ExpiresAt: output.Expiry.UTC().Format(time.RFC3339),
		User: AccountSummary{
			ID:    output.Account.ID,
			Name:  output.Account.Name,
			Email: output.Account.Email,
		},
	})
}

// Logout handles POST /api/user/logout. Tokens are stateless, so logout is an
// acknowledgment; clients discard the token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	OK(w, http.StatusOK, "Logged out successfully")
}
