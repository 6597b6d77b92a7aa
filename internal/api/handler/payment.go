package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mzw111/Streamix/internal/api/middleware"
	"github.com/mzw111/Streamix/internal/domain/model"
	"github.com/mzw111/Streamix/internal/usecase"
)

// Request/Response types

type RecordPaymentRequest struct {
	SubscriptionID int64   `json:"subscription_id"`
	Amount         float64 `json:"amount"`
	Method         string  `json:"payment_method"`
	Status         string  `json:"payment_status"`
}

type PaymentDetail struct {
	ID             int64   `json:"payment_id"`
	SubscriptionID int64   `json:"subscription_id"`
	Amount         float64 `json:"amount"`
	Method         string  `json:"payment_method"`
	Status         string  `json:"payment_status"`
	TransactionID  string  `json:"transaction_id"`
	PaymentDate    string  `json:"payment_date"`
	// Subscription period, set on account-wide history reads only.
	SubscriptionStart string `json:"subscription_start,omitempty"`
	SubscriptionEnd   string `json:"subscription_end,omitempty"`
}

type PaymentResponse struct {
	Response
	Payment PaymentDetail `json:"payment"`
}

type PaymentListResponse struct {
	Response
	Payments []PaymentDetail `json:"payments"`
}

// PaymentHandler handles payment record endpoints.
type PaymentHandler struct {
	svc usecase.BillingService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(svc usecase.BillingService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// Create handles POST /api/payments/create
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	var req RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	payment, err := h.svc.RecordPayment(r.Context(), usecase.RecordPaymentInput{
		AccountID:      accountID,
		SubscriptionID: req.SubscriptionID,
		Amount:         req.Amount,
		Method:         req.Method,
		Status:         req.Status,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, PaymentResponse{
		Response: Response{Success: true, Message: "Payment recorded successfully"},
		Payment:  toPaymentDetail(payment),
	})
}

// ListBySubscription handles GET /api/payments/subscription/{subscriptionID}
func (h *PaymentHandler) ListBySubscription(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	subscriptionID, ok := pathID(r, "subscriptionID")
	if !ok {
		Fail(w, http.StatusBadRequest, "Subscription ID must be a positive integer")
		return
	}

	payments, err := h.svc.PaymentsForSubscription(r.Context(), accountID, subscriptionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, PaymentListResponse{
		Response: Response{Success: true},
		Payments: toPaymentDetails(payments),
	})
}

// History handles GET /api/payments/history
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	accountID, _ := middleware.AccountID(r.Context())

	payments, err := h.svc.PaymentHistory(r.Context(), accountID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, PaymentListResponse{
		Response: Response{Success: true},
		Payments: toPaymentDetails(payments),
	})
}

func toPaymentDetail(p *model.Payment) PaymentDetail {
	return PaymentDetail{
		ID:                p.ID,
		SubscriptionID:    p.SubscriptionID,
		Amount:            p.Amount,
		Method:            p.Method,
		Status:            p.Status,
		TransactionID:     p.TransactionID,
		PaymentDate:       p.PaymentDate.Format("2006-01-02T15:04:05Z07:00"),
		SubscriptionStart: p.SubscriptionStart,
		SubscriptionEnd:   p.SubscriptionEnd,
	}
}

func toPaymentDetails(payments []*model.Payment) []PaymentDetail {
	details := make([]PaymentDetail, 0, len(payments))
	for _, p := range payments {
		details = append(details, toPaymentDetail(p))
	}
	return details
}
