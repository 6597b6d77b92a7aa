package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mzw111/Streamix/internal/api/middleware"
	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/usecase"
)

// Request/Response types

type CreateProfileRequest struct {
	Name           string `json:"name"`
	Picture        string `json:"picture"`
	Language       string `json:"language"`
	AgeRestriction string `json:"age_restriction"`
}

type ProfileDetail struct {
	ID             int64  `json:"profile_id"`
	Name           string `json:"name"`
	Picture        string `json:"picture"`
	Language       string `json:"language"`
	AgeRestriction string `json:"age_restriction"`
	CreatedAt      string `json:"created_at"`
}

type ProfileResponse struct {
	Response
	Profile ProfileDetail `json:"profile"`
}

type ProfileListResponse struct {
	Response
	Profiles []ProfileDetail `json:"profiles"`
}

// ProfileHandler handles viewer profile endpoints.
type ProfileHandler struct {
	svc usecase.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc usecase.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Create handles POST /api/profiles/create
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	profile, err := h.svc.CreateProfile(r.Context(), usecase.CreateProfileInput{
		AccountID:      accountID,
		Name:           req.Name,
		Picture:        req.Picture,
		Language:       req.Language,
		AgeRestriction: req.AgeRestriction,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, ProfileResponse{
		Response: Response{Success: true, Message: "Profile created successfully"},
		Profile:  toProfileDetail(profile),
	})
}

// List handles GET /api/profiles/list
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	profiles, err := h.svc.ListProfiles(r.Context(), accountID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	details := make([]ProfileDetail, 0, len(profiles))
	for _, p := range profiles {
		details = append(details, toProfileDetail(p))
	}

	JSON(w, http.StatusOK, ProfileListResponse{
		Response: Response{Success: true},
		Profiles: details,
	})
}

// Delete handles DELETE /api/profiles/delete/{id}
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	profileID, ok := pathID(r, "id")
	if !ok {
		Fail(w, http.StatusBadRequest, "Profile ID must be a positive integer")
		return
	}

	if err := h.svc.DeleteProfile(r.Context(), accountID, profileID); err != nil {
		handleServiceError(w, err)
		return
	}

	OK(w, http.StatusOK, "Profile deleted successfully")
}

func toProfileDetail(p *model.Profile) ProfileDetail {
	return ProfileDetail{
		ID:             p.ID,
		Name:           p.Name,
		Picture:        p.Picture,
		Language:       p.Language,
		AgeRestriction: p.AgeRestriction,
		CreatedAt:      p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
