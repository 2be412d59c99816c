package activity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unkotrip/api/internal/participant"
	"github.com/unkotrip/api/pkg/middleware"
	"github.com/unkotrip/api/pkg/response"
)

// Handler handles HTTP requests for activity operations
type Handler struct {
	service *Service
}

// NewHandler creates a new activity handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for activity endpoints
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
	case errors.Is(err, ErrActivityNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, participant.ErrNotMember):
		response.Forbidden(w, err.Error())
	case errors.Is(err, ErrNotAuthorized):
		response.Forbidden(w, err.Error())
	default:
		response.InternalError(w, fallback)
	}
}

// Create handles POST /activities
// @Summary      Create an activity
// @Description  Add an activity to a trip itinerary; admins and editors only
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        request body CreateActivityRequest true "Activity creation request"
// @Success      201 {object} response.APIResponse{data=ActivityResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /activities [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	var req CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.TripID == "" || req.Title == "" {
		response.BadRequest(w, "Trip ID and title are required")
		return
	}

	activity, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to create activity")
		return
	}

	response.JSON(w, http.StatusCreated, activity.ToResponse())
}

// ListByTrip handles GET /activities/trip/{tripId}
// @Summary      List trip activities
// @Description  Get all activities of a trip ordered by date; members only
// @Tags         activities
// @Produce      json
// @Param        tripId path string true "Trip ID"
// @Success      200 {object} response.APIResponse{data=[]ActivityResponse}
// @Failure      403 {object} response.APIResponse
// @Router       /activities/trip/{tripId} [get]
func (h *Handler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	activities, err := h.service.ListByTrip(r.Context(), userID, chi.URLParam(r, "tripId"))
	if err != nil {
		h.writeError(w, err, "Failed to list activities")
		return
	}

	activityResponses := make([]*ActivityResponse, len(activities))
	for i, a := range activities {
		activityResponses[i] = a.ToResponse()
	}

	response.JSON(w, http.StatusOK, activityResponses)
}

// Update handles PUT /activities/{id}
// @Summary      Update an activity
// @Description  Edit an activity; admins and editors only
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        id path string true "Activity ID"
// @Param        request body UpdateActivityRequest true "Activity update request"
// @Success      200 {object} response.APIResponse{data=ActivityResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /activities/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	var req UpdateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Title == "" {
		response.BadRequest(w, "Title is required")
		return
	}

	activity, err := h.service.Update(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.writeError(w, err, "Failed to update activity")
		return
	}

	response.JSON(w, http.StatusOK, activity.ToResponse())
}

// Delete handles DELETE /activities/{id}
// @Summary      Delete an activity
// @Description  Remove an activity from the itinerary; admins and editors only
// @Tags         activities
// @Produce      json
// @Param        id path string true "Activity ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /activities/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err, "Failed to delete activity")
		return
	}

	response.Message(w, http.StatusOK, "Activity deleted successfully")
}
