package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mzw111/Streamix/internal/api/middleware"
	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/usecase"
)

// Request/Response types

type CreateSubscriptionRequest struct {
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	AutoRenewal   bool   `json:"auto_renewal"`
	PaymentStatus string `json:"payment_status"`
}

type SubscriptionDetail struct {
	ID            int64  `json:"subscription_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date,omitempty"`
	AutoRenewal   bool   `json:"auto_renewal"`
	PaymentStatus string `json:"payment_status"`
}

type SubscriptionResponse struct {
	Response
	Subscription SubscriptionDetail `json:"subscription"`
}

type SubscriptionListResponse struct {
	Response
	Subscriptions []SubscriptionDetail `json:"subscriptions"`
}

type SubscriptionStatusResponse struct {
	Response
	Status string `json:"status"`
}

// SubscriptionHandler handles subscription endpoints.
type SubscriptionHandler struct {
	svc usecase.BillingService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(svc usecase.BillingService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// Create handles POST /api/subscriptions/create
func (h *SubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	var req CreateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	sub, err := h.svc.CreateSubscription(r.Context(), usecase.CreateSubscriptionInput{
		AccountID:     accountID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		AutoRenewal:   req.AutoRenewal,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, SubscriptionResponse{
		Response:     Response{Success: true, Message: "Subscription created successfully"},
		Subscription: toSubscriptionDetail(sub),
	})
}

// List handles GET /api/subscriptions/list
func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	subs, err := h.svc.ListSubscriptions(r.Context(), accountID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	details := make([]SubscriptionDetail, 0, len(subs))
	for _, s := range subs {
		details = append(details, toSubscriptionDetail(s))
	}

	JSON(w, http.StatusOK, SubscriptionListResponse{
		Response:      Response{Success: true},
		Subscriptions: details,
	})
}

// Status handles GET /api/subscriptions/status
func (h *SubscriptionHandler) Status(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	status, err := h.svc.SubscriptionStatus(r.Context(), accountID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, SubscriptionStatusResponse{
		Response: Response{Success: true},
		Status:   string(status),
	})
}

func toSubscriptionDetail(s *model.Subscription) SubscriptionDetail {
	return SubscriptionDetail{
		ID:            s.ID,
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		AutoRenewal:   s.AutoRenewal,
		PaymentStatus: s.PaymentStatus,
	}
}
