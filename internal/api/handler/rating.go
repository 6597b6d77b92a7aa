package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mzw111/Streamix/internal/api/middleware"
	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/usecase"
)

// Request/Response types

type AddRatingRequest struct {
	ProfileID   int64  `json:"profile_id"`
	ContentType string `json:"content_type"`
	ContentID   int64  `json:"content_id"`
	Rating      int    `json:"rating"`
	ReviewText  string `json:"review_text"`
}

type RatingItem struct {
	ID          int64  `json:"rating_id"`
	ProfileName string `json:"profile_name,omitempty"`
	ContentType string `json:"content_type"`
	ContentID   int64  `json:"content_id"`
	Rating      int    `json:"rating"`
	ReviewText  string `json:"review_text,omitempty"`
	ReviewDate  string `json:"review_date"`
}

type RatingListResponse struct {
	Response
	Ratings []RatingItem `json:"ratings"`
}

// RatingHandler handles rating endpoints. Submissions are profile-scoped;
// reading a catalog entry's ratings is public.
type RatingHandler struct {
	svc usecase.ActivityService
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(svc usecase.ActivityService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

// Add handles POST /api/ratings/add
func (h *RatingHandler) Add(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	var req AddRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	err := h.svc.AddRating(r.Context(), accountID, req.ProfileID, model.ContentType(req.ContentType), req.ContentID, req.Rating, req.ReviewText)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	OK(w, http.StatusCreated, "Rating added successfully")
}

// ListByContent handles GET /api/ratings/{contentType}/{contentID}
func (h *RatingHandler) ListByContent(w http.ResponseWriter, r *http.Request) {
	contentID, ok := pathID(r, "contentID")
	if !ok {
		Fail(w, http.StatusBadRequest, "Content ID must be a positive integer")
		return
	}

	contentType := model.ContentType(chi.URLParam(r, "contentType"))

	ratings, err := h.svc.RatingsForContent(r.Context(), contentType, contentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, RatingListResponse{
		Response: Response{Success: true},
		Ratings:  toRatingItems(ratings),
	})
}

// ListByProfile handles GET /api/ratings/profile/{profileID}
func (h *RatingHandler) ListByProfile(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	profileID, ok := pathID(r, "profileID")
	if !ok {
		Fail(w, http.StatusBadRequest, "Profile ID must be a positive integer")
		return
	}

	ratings, err := h.svc.RatingsForProfile(r.Context(), accountID, profileID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, RatingListResponse{
		Response: Response{Success: true},
		Ratings:  toRatingItems(ratings),
	})
}

func toRatingItems(ratings []*model.Rating) []RatingItem {
	items := make([]RatingItem, 0, len(ratings))
	for _, rt := range ratings {
		items = append(items, RatingItem{
			ID:          rt.ID,
			ProfileName: rt.ProfileName,
			ContentType: rt.ContentType.String(),
			ContentID:   rt.ContentID,
			Rating:      rt.Score,
			ReviewText:  rt.ReviewText,
			ReviewDate:  rt.ReviewDate.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return items
}
