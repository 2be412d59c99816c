package trip

import "time"

// Trip represents a group trip: the aggregate everything else hangs off
type Trip struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Destination     *string   `json:"destination,omitempty"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	DefaultCurrency string    `json:"default_currency"`
	CreatedByID     string    `json:"created_by_id"`
	CreatedAt       time.Time `json:"created_at"`

	// Populated via JOIN
	CreatedByName string `json:"created_by_name,omitempty"`
}
