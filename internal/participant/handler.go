package participant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unkotrip/api/pkg/middleware"
	"github.com/unkotrip/api/pkg/response"
)

// Handler handles HTTP requests for participant operations
type Handler struct {
	service *Service
}

// NewHandler creates a new participant handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for participant endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Invite)
	r.Get("/trip/{tripId}", h.ListByTrip)
	r.Put("/{id}/role", h.UpdateRole)
	r.Delete("/{id}", h.Remove)

	return r
}

// Invite handles POST /participants
// @Summary      Invite a participant
// @Description  Add a registered user (by email) or ghost participant (by name) to a trip
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request body InviteRequest true "Invitation request"
// @Success      201 {object} response.APIResponse{data=ParticipantResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /participants [post]
func (h *Handler) Invite(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	var req InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.TripID == "" || req.EmailOrName == "" {
		response.BadRequest(w, "trip_id and email_or_name are required")
		return
	}

	p, err := h.service.Invite(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotMember), errors.Is(err, ErrNotAuthorized):
			response.Forbidden(w, err.Error())
		case errors.Is(err, ErrAlreadyMember):
			response.Conflict(w, err.Error())
		case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrInvalidRole):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to invite participant")
		}
		return
	}

	response.JSON(w, http.StatusCreated, p.ToResponse())
}

// ListByTrip handles GET /participants/trip/{tripId}
// @Summary      List trip participants
// @Description  Get all participants of a trip
// @Tags         participants
// @Produce      json
// @Param        tripId path string true "Trip ID"
// @Success      200 {object} response.APIResponse{data=[]ParticipantResponse}
// @Failure      403 {object} response.APIResponse
// @Router       /participants/trip/{tripId} [get]
func (h *Handler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	tripID := chi.URLParam(r, "tripId")
	participants, err := h.service.ListByTrip(r.Context(), userID, tripID)
	if err != nil {
		if errors.Is(err, ErrNotMember) {
			response.Forbidden(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list participants")
		return
	}

	responses := make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		responses[i] = p.ToResponse()
	}

	response.JSON(w, http.StatusOK, responses)
}

// UpdateRole handles PUT /participants/{id}/role
// @Summary      Change a participant's role
// @Description  Admins can change roles; the last admin cannot be demoted
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        id path string true "Participant ID"
// @Param        request body UpdateRoleRequest true "Role update request"
// @Success      200 {object} response.APIResponse{data=ParticipantResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /participants/{id}/role [put]
func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.UpdateRole(r.Context(), userID, chi.URLParam(r, "id"), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, ErrParticipantNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNotMember), errors.Is(err, ErrNotAuthorized):
			response.Forbidden(w, err.Error())
		case errors.Is(err, ErrLastAdmin):
			response.Conflict(w, err.Error())
		case errors.Is(err, ErrInvalidRole):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update role")
		}
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}

// Remove handles DELETE /participants/{id}
// @Summary      Remove a participant
// @Description  Admins can remove anyone; members can remove themselves
// @Tags         participants
// @Produce      json
// @Param        id path string true "Participant ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /participants/{id} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	if err := h.service.Remove(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		switch {
		case errors.Is(err, ErrParticipantNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNotMember), errors.Is(err, ErrNotAuthorized):
			response.Forbidden(w, err.Error())
		case errors.Is(err, ErrLastAdmin):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to remove participant")
		}
		return
	}

	response.Message(w, http.StatusOK, "Participant removed from trip")
}
