package payment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unkotrip/api/internal/participant"
	"github.com/unkotrip/api/pkg/middleware"
	"github.com/unkotrip/api/pkg/response"
)

// Handler handles HTTP requests for payment operations
type Handler struct {
	service *Service
}

// NewHandler creates a new payment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for payment endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/trip/{tripId}", h.ListByTrip)
	r.Delete("/{id}", h.Delete)

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrPaymentNotFound), errors.Is(err, ErrTripNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, participant.ErrNotMember), errors.Is(err, ErrNotInvolved):
		response.Forbidden(w, err.Error())
	case errors.Is(err, ErrSelfPayment),
		errors.Is(err, ErrPartyNotInTrip),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidCurrency):
		response.BadRequest(w, err.Error())
	default:
		response.InternalError(w, fallback)
	}
}

// Create handles POST /payments
// @Summary      Record a payment
// @Description  Record money handed between two participants; the payer, recipient or an admin only
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body CreatePaymentRequest true "Payment creation request"
// @Success      201 {object} response.APIResponse{data=PaymentResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /payments [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.TripID == "" || req.FromParticipantID == "" || req.ToParticipantID == "" {
		response.BadRequest(w, "Trip ID, payer and recipient are required")
		return
	}

	payment, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to create payment")
		return
	}

	response.JSON(w, http.StatusCreated, payment.ToResponse())
}

// ListByTrip handles GET /payments/trip/{tripId}
// @Summary      List trip payments
// @Description  Get all payments of a trip, newest first; members only
// @Tags         payments
// @Produce      json
// @Param        tripId path string true "Trip ID"
// @Success      200 {object} response.APIResponse{data=[]PaymentResponse}
// @Failure      403 {object} response.APIResponse
// @Router       /payments/trip/{tripId} [get]
func (h *Handler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	payments, err := h.service.ListByTrip(r.Context(), userID, chi.URLParam(r, "tripId"))
	if err != nil {
		h.writeError(w, err, "Failed to list payments")
		return
	}

	paymentResponses := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		paymentResponses[i] = p.ToResponse()
	}

	response.JSON(w, http.StatusOK, paymentResponses)
}

// Delete handles DELETE /payments/{id}
// @Summary      Undo a payment
// @Description  Remove a recorded payment; the payer, recipient or an admin only
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /payments/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err, "Failed to delete payment")
		return
	}

	response.Message(w, http.StatusOK, "Payment deleted successfully")
}
