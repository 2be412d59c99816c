package settlement

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unkotrip/api/internal/participant"
	"github.com/unkotrip/api/pkg/middleware"
	"github.com/unkotrip/api/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/trip/{tripId}", h.ForTrip)

	return r
}

// ForTrip handles GET /settlements/trip/{tripId}
// @Summary      Get trip settlement
// @Description  Get per-currency balances and a suggested transfer plan that settles the trip; members only
// @Tags         settlements
// @Produce      json
// @Param        tripId path string true "Trip ID"
// @Success      200 {object} response.APIResponse{data=Result}
// @Failure      403 {object} response.APIResponse
// @Router       /settlements/trip/{tripId} [get]
func (h *Handler) ForTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	result, err := h.service.ForTrip(r.Context(), userID, chi.URLParam(r, "tripId"))
	if err != nil {
		if errors.Is(err, participant.ErrNotMember) {
			response.Forbidden(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute settlement")
		return
	}

	response.JSON(w, http.StatusOK, result)
}
