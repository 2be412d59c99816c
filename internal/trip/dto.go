package trip

import (
	"time"

	"github.com/unkotrip/api/internal/participant"
)

// CreateTripRequest represents the request to create a trip
type CreateTripRequest struct {
	Name            string    `json:"name" validate:"required,min=3,max=100"`
	Description     *string   `json:"description,omitempty" validate:"omitempty,max=500"`
	Destination     *string   `json:"destination,omitempty"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
	DefaultCurrency string    `json:"default_currency,omitempty"`
}

// UpdateTripRequest represents the request to update a trip
type UpdateTripRequest struct {
	Name            string    `json:"name" validate:"required,min=3,max=100"`
	Description     *string   `json:"description,omitempty" validate:"omitempty,max=500"`
	Destination     *string   `json:"destination,omitempty"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
	DefaultCurrency string    `json:"default_currency,omitempty"`
}

// TripResponse represents the response for a trip
type TripResponse struct {
	ID              string                             `json:"id"`
	Name            string                             `json:"name"`
	Description     *string                            `json:"description,omitempty"`
	Destination     *string                            `json:"destination,omitempty"`
	StartDate       string                             `json:"start_date"`
	EndDate         string                             `json:"end_date"`
	DefaultCurrency string                             `json:"default_currency"`
	CreatedByID     string                             `json:"created_by_id"`
	CreatedByName   string                             `json:"created_by_name,omitempty"`
	CreatedAt       string                             `json:"created_at"`
	Participants    []*participant.ParticipantResponse `json:"participants,omitempty"`
}

// ToResponse converts a Trip model to a TripResponse DTO
func (t *Trip) ToResponse() *TripResponse {
	return &TripResponse{
		ID:              t.ID,
		Name:            t.Name,
		Description:     t.Description,
		Destination:     t.Destination,
		StartDate:       t.StartDate.Format("2006-01-02"),
		EndDate:         t.EndDate.Format("2006-01-02"),
		DefaultCurrency: t.DefaultCurrency,
		CreatedByID:     t.CreatedByID,
		CreatedByName:   t.CreatedByName,
		CreatedAt:       t.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
