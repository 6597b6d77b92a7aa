package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mzw111/Streamix/internal/api/middleware"
	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/usecase"
)

// Request/Response types

type WatchlistMutationRequest struct {
	ProfileID   int64  `json:"profile_id"`
	ContentType string `json:"content_type"`
	ContentID   int64  `json:"content_id"`
}

type WatchlistItem struct {
	ID          int64  `json:"watchlist_id"`
	ContentType string `json:"content_type"`
	ContentID   int64  `json:"content_id"`
	Title       string `json:"title"`
	DateAdded   string `json:"date_added"`
}

type WatchlistResponse struct {
	Response
	Watchlist []WatchlistItem `json:"watchlist"`
}

// WatchlistHandler handles profile watchlist endpoints.
type WatchlistHandler struct {
	svc usecase.ActivityService
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(svc usecase.ActivityService) *WatchlistHandler {
	return &WatchlistHandler{svc: svc}
}

// Add handles POST /api/watchlist/add
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	var req WatchlistMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	err := h.svc.AddToWatchlist(r.Context(), accountID, req.ProfileID, model.ContentType(req.ContentType), req.ContentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	OK(w, http.StatusCreated, "Added to watchlist")
}

// Remove handles DELETE /api/watchlist/remove
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	var req WatchlistMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	err := h.svc.RemoveFromWatchlist(r.Context(), accountID, req.ProfileID, model.ContentType(req.ContentType), req.ContentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	OK(w, http.StatusOK, "Removed from watchlist")
}

// List handles GET /api/watchlist/{profileID}
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	profileID, ok := pathID(r, "profileID")
	if !ok {
		Fail(w, http.StatusBadRequest, "Profile ID must be a positive integer")
		return
	}

	entries, err := h.svc.GetWatchlist(r.Context(), accountID, profileID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	items := make([]WatchlistItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, WatchlistItem{
			ID:          e.ID,
			ContentType: e.ContentType.String(),
			ContentID:   e.ContentID,
			Title:       e.Title,
			DateAdded:   e.DateAdded.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	JSON(w, http.StatusOK, WatchlistResponse{
		Response:  Response{Success: true},
		Watchlist: items,
	})
}
