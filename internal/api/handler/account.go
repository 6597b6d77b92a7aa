package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mzw111/Streamix/internal/api/middleware"
	"github.com/mzw111/Streamix/internal/usecase"
)

// Request/Response types

type UpdateAccountRequest struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
	Country     string `json:"country"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type AccountResponse struct {
	Response
	User AccountDetail `json:"user"`
}

type AccountDetail struct {
	ID          int64  `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Country     string `json:"country,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// AccountHandler handles endpoints for the authenticated account itself.
type AccountHandler struct {
	svc usecase.AuthService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc usecase.AuthService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// Get handles GET /api/users/profile
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	account, err := h.svc.GetAccount(r.Context(), accountID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, AccountResponse{
		Response: Response{Success: true},
		User: AccountDetail{
			ID:          account.ID,
			Name:        account.Name,
			Email:       account.Email,
			DateOfBirth: account.DateOfBirth,
			Country:     account.Country,
			CreatedAt:   account.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		},
	})
}

// Update handles PUT /api/users/update. Empty fields are left unchanged.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	var req UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.svc.UpdateAccount(r.Context(), accountID, req.Name, req.DateOfBirth, req.Country); err != nil {
		handleServiceError(w, err)
		return
	}

	OK(w, http.StatusOK, "User updated successfully")
}

// ChangePassword handles PUT /api/users/change-password
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.svc.ChangePassword(r.Context(), accountID, req.OldPassword, req.NewPassword); err != nil {
		handleServiceError(w, err)
		return
	}

	OK(w, http.StatusOK, "Password changed successfully")
}
