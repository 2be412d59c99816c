package activity

import "time"

// Activity represents a planned activity on a trip itinerary
type Activity struct {
	ID          string     `json:"id"`
	TripID      string     `json:"trip_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Time        *time.Time `json:"time,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
