package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/domain/repository"
	"github.com/mzw111/Streamix/internal/usecase"
)

// Response is the envelope every endpoint speaks. Handlers with payloads
// embed it in their own response types.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, "failed to encode response", http.StatusInternalServerError)
		}
	}
}

func OK(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Response{Success: true, Message: message})
}

func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Response{Success: false, Message: message})
}

// handleServiceError maps service and repository errors to HTTP responses.
// Ownership failures and missing resources share one body, so a caller
// cannot probe which foreign resources exist.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotOwned),
		errors.Is(err, repository.ErrProfileNotFound),
		errors.Is(err, repository.ErrEntryNotFound),
		errors.Is(err, repository.ErrSubscriptionNotFound):
		Fail(w, http.StatusNotFound, "Not found or not owned by user")
	case errors.Is(err, repository.ErrProfileLimitReached):
		Fail(w, http.StatusBadRequest, "Maximum profile limit (3) reached for this user")
	case errors.Is(err, repository.ErrDuplicateEmail):
		Fail(w, http.StatusBadRequest, "User already exists!")
	case errors.Is(err, repository.ErrAccountNotFound):
		Fail(w, http.StatusNotFound, "User not found")
	case errors.Is(err, repository.ErrContentNotFound):
		Fail(w, http.StatusNotFound, "Content not found")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		Fail(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, usecase.ErrWrongOldPassword):
		Fail(w, http.StatusUnauthorized, "Old password is incorrect")
	case isValidationError(err):
		Fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		Fail(w, http.StatusServiceUnavailable, "Server busy, please try again")
	default:
		slog.Error("unhandled service error", "error", err)
		Fail(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		model.ErrEmptyName,
		model.ErrEmptyEmail,
		model.ErrEmptyPassword,
		model.ErrInvalidEmail,
		model.ErrEmptyProfileName,
		model.ErrProfileNameTooLong,
		model.ErrInvalidAccountID,
		model.ErrInvalidContentType,
		model.ErrInvalidContentID,
		model.ErrInvalidRating,
		model.ErrEmptyStartDate,
		model.ErrInvalidAmount,
		model.ErrInvalidSubscriptionID,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
