package hotel

import "time"

// Hotel represents a lodging booking on a trip. NumberOfNights is derived
// from the check-in and check-out dates, never supplied by the client.
type Hotel struct {
	ID             string    `json:"id"`
	TripID         string    `json:"trip_id"`
	Name           string    `json:"name"`
	Link           *string   `json:"link,omitempty"`
	CheckInDate    time.Time `json:"check_in_date"`
	CheckOutDate   time.Time `json:"check_out_date"`
	PricePerNight  *float64  `json:"price_per_night,omitempty"`
	TotalPrice     *float64  `json:"total_price,omitempty"`
	NumberOfNights int       `json:"number_of_nights"`
	Currency       string    `json:"currency"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
