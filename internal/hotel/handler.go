package hotel

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unkotrip/api/internal/participant"
	"github.com/unkotrip/api/pkg/middleware"
	"github.com/unkotrip/api/pkg/response"
)

// Handler handles HTTP requests for hotel operations
type Handler struct {
	service *Service
}

// NewHandler creates a new hotel handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for hotel endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/trip/{tripId}", h.ListByTrip)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrHotelNotFound), errors.Is(err, ErrTripNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, participant.ErrNotMember), errors.Is(err, ErrNotAuthorized):
		response.Forbidden(w, err.Error())
	case errors.Is(err, ErrInvalidDates), errors.Is(err, ErrInvalidCurrency):
		response.BadRequest(w, err.Error())
	default:
		response.InternalError(w, fallback)
	}
}

// Create handles POST /hotels
// @Summary      Create a hotel booking
// @Description  Add a hotel booking to a trip; admins and editors only
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Param        request body CreateHotelRequest true "Hotel creation request"
// @Success      201 {object} response.APIResponse{data=HotelResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /hotels [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	var req CreateHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.TripID == "" || req.Name == "" {
		response.BadRequest(w, "Trip ID and name are required")
		return
	}

	hotel, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to create hotel")
		return
	}

	response.JSON(w, http.StatusCreated, hotel.ToResponse())
}

// ListByTrip handles GET /hotels/trip/{tripId}
// @Summary      List trip hotels
// @Description  Get all hotel bookings of a trip ordered by check-in; members only
// @Tags         hotels
// @Produce      json
// @Param        tripId path string true "Trip ID"
// @Success      200 {object} response.APIResponse{data=[]HotelResponse}
// @Failure      403 {object} response.APIResponse
// @Router       /hotels/trip/{tripId} [get]
func (h *Handler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	hotels, err := h.service.ListByTrip(r.Context(), userID, chi.URLParam(r, "tripId"))
	if err != nil {
		h.writeError(w, err, "Failed to list hotels")
		return
	}

	hotelResponses := make([]*HotelResponse, len(hotels))
	for i, hotelItem := range hotels {
		hotelResponses[i] = hotelItem.ToResponse()
	}

	response.JSON(w, http.StatusOK, hotelResponses)
}

// Update handles PUT /hotels/{id}
// @Summary      Update a hotel booking
// @Description  Edit a hotel booking; admins and editors only
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Param        id path string true "Hotel ID"
// @Param        request body UpdateHotelRequest true "Hotel update request"
// @Success      200 {object} response.APIResponse{data=HotelResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /hotels/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	var req UpdateHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "Name is required")
		return
	}

	hotel, err := h.service.Update(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.writeError(w, err, "Failed to update hotel")
		return
	}

	response.JSON(w, http.StatusOK, hotel.ToResponse())
}

// Delete handles DELETE /hotels/{id}
// @Summary      Delete a hotel booking
// @Description  Remove a hotel booking; admins and editors only
// @Tags         hotels
// @Produce      json
// @Param        id path string true "Hotel ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /hotels/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err, "Failed to delete hotel")
		return
	}

	response.Message(w, http.StatusOK, "Hotel deleted successfully")
}
