package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/englishlessons/backend/internal/auth"
	"github.com/englishlessons/backend/internal/models"
)

// PaymentService is the interface that wraps methods for the payment flow
type PaymentService interface {
	// Initiate creates a gateway payment for a pending paid enrollment
	//
	// "ctx" is the context for the request.
	// "actor" is the authenticated caller.
	// "enrollmentID" is the ID of the enrollment to pay for.
	//
	// Returns the payment handoff with the approval URL and an error if any.
	Initiate(ctx context.Context, actor auth.Actor, enrollmentID int) (*models.PaymentHandoff, error)
	// Confirm executes an approved payment and marks the enrollment paid
	//
	// "ctx" is the context for the request.
	// "paymentID" is the gateway payment ID from the redirect.
	// "payerID" is the gateway payer ID from the redirect.
	//
	// Returns the confirmation and an error if any.
	Confirm(ctx context.Context, paymentID, payerID string) (*models.PaymentConfirmation, error)
	// Cancel acknowledges an abandoned gateway flow
	//
	// Returns the informational cancel result.
	Cancel() *models.PaymentCancelResult
}

// PaymentHandler handles HTTP requests for the payment flow
type PaymentHandler struct {
	BaseHandler
	service PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(svc PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all payment handler routes. The confirm and
// cancel endpoints are gateway redirect targets and carry no session,
// so they stay outside the auth middleware.
func (h *PaymentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/enrollments/{id}/payment", h.Initiate)
	})
	r.Get("/payments/confirm", h.Confirm)
	r.Get("/payments/cancel", h.Cancel)
}

// Initiate handles GET /enrollments/{id}/payment
// @Summary Start payment for an enrollment
// @Description Create a gateway payment for a pending paid enrollment and return the approval URL
// @Tags payments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} models.PaymentHandoff "Payment handoff"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 402 {object} map[string]string "Payment failed"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Enrollment not found"
// @Failure 409 {object} map[string]string "Payment not required or already paid"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /enrollments/{id}/payment [get]
func (h *PaymentHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.GetActor(r.Context())
	if !ok {
		h.Logger.Error("actor not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	enrollmentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid enrollment ID")
		return
	}

	handoff, err := h.service.Initiate(r.Context(), actor, enrollmentID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, handoff)
}

// Confirm handles GET /payments/confirm
// @Summary Confirm a payment
// @Description Execute an approved gateway payment and mark the enrollment paid; called by the gateway redirect
// @Tags payments
// @Accept json
// @Produce json
// @Param paymentId query string true "Gateway payment ID"
// @Param PayerID query string true "Gateway payer ID"
// @Success 200 {object} models.PaymentConfirmation "Payment confirmed"
// @Failure 402 {object} map[string]string "Payment failed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /payments/confirm [get]
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	paymentID := r.URL.Query().Get("paymentId")
	payerID := r.URL.Query().Get("PayerID")

	confirmation, err := h.service.Confirm(r.Context(), paymentID, payerID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, confirmation)
}

// Cancel handles GET /payments/cancel
// @Summary Cancel a payment
// @Description Acknowledge an abandoned gateway flow; the enrollment stays pending
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} models.PaymentCancelResult "Payment cancelled"
// @Router /payments/cancel [get]
func (h *PaymentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.service.Cancel())
}
