package activity

import "time"

// CreateActivityRequest represents the request to create an activity
type CreateActivityRequest struct {
	TripID      string     `json:"trip_id" validate:"required"`
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=1000"`
	Location    *string    `json:"location,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Time        *time.Time `json:"time,omitempty"`
}

// UpdateActivityRequest represents the request to update an activity
type UpdateActivityRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=1000"`
	Location    *string    `json:"location,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Time        *time.Time `json:"time,omitempty"`
}

// ActivityResponse represents the response for an activity
type ActivityResponse struct {
	ID          string  `json:"id"`
	TripID      string  `json:"trip_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// ToResponse converts an Activity model to an ActivityResponse DTO
func (a *Activity) ToResponse() *ActivityResponse {
	resp := &ActivityResponse{
		ID:          a.ID,
		TripID:      a.TripID,
		Title:       a.Title,
		Description: a.Description,
		Location:    a.Location,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if a.Date != nil {
		d := a.Date.Format("2006-01-02")
		resp.Date = &d
	}
	if a.Time != nil {
		t := a.Time.Format("15:04")
		resp.Time = &t
	}
	return resp
}
