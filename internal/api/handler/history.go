package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mzw111/Streamix/internal/api/middleware"
	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/usecase"
)

// Request/Response types

type LogViewingRequest struct {
	ProfileID     int64  `json:"profile_id"`
	ContentType   string `json:"content_type"`
	ContentID     int64  `json:"content_id"`
	WatchDuration int    `json:"watch_duration"`
}

type HistoryItem struct {
	ID            int64  `json:"history_id"`
	ContentType   string `json:"content_type"`
	ContentID     int64  `json:"content_id"`
	Title         string `json:"title"`
	WatchDuration int    `json:"watch_duration"`
	WatchDate     string `json:"watch_date"`
}

type HistoryResponse struct {
	Response
	History []HistoryItem `json:"history"`
}

// HistoryHandler handles viewing history endpoints.
type HistoryHandler struct {
	svc usecase.ActivityService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(svc usecase.ActivityService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// Log handles POST /api/history/log
func (h *HistoryHandler) Log(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	var req LogViewingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	err := h.svc.LogViewing(r.Context(), accountID, req.ProfileID, model.ContentType(req.ContentType), req.ContentID, req.WatchDuration)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	OK(w, http.StatusCreated, "Viewing logged successfully")
}

// List handles GET /api/history/{profileID}
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	profileID, ok := pathID(r, "profileID")
	if !ok {
		Fail(w, http.StatusBadRequest, "Profile ID must be a positive integer")
		return
	}

	entries, err := h.svc.GetHistory(r.Context(), accountID, profileID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	items := make([]HistoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, HistoryItem{
			ID:            e.ID,
			ContentType:   e.ContentType.String(),
			ContentID:     e.ContentID,
			Title:         e.Title,
			WatchDuration: e.WatchDuration,
			WatchDate:     e.WatchDate.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	JSON(w, http.StatusOK, HistoryResponse{
		Response: Response{Success: true},
		History:  items,
	})
}

// Delete handles DELETE /api/history/delete/{historyID}
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	historyID, ok := pathID(r, "historyID")
	if !ok {
		Fail(w, http.StatusBadRequest, "History ID must be a positive integer")
		return
	}

	if err := h.svc.DeleteHistoryEntry(r.Context(), accountID, historyID); err != nil {
		handleServiceError(w, err)
		return
	}

	OK(w, http.StatusOK, "History entry deleted successfully")
}
