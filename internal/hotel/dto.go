package hotel

import "time"

// CreateHotelRequest represents the request to create a hotel booking
type CreateHotelRequest struct {
	TripID        string    `json:"trip_id" validate:"required"`
	Name          string    `json:"name" validate:"required,min=1,max=200"`
	Link          *string   `json:"link,omitempty"`
	CheckInDate   time.Time `json:"check_in_date" validate:"required"`
	CheckOutDate  time.Time `json:"check_out_date" validate:"required"`
	PricePerNight *float64  `json:"price_per_night,omitempty" validate:"omitempty,gt=0"`
	TotalPrice    *float64  `json:"total_price,omitempty" validate:"omitempty,gt=0"`
	Currency      string    `json:"currency,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}

// UpdateHotelRequest represents the request to update a hotel booking
type UpdateHotelRequest struct {
	Name          string    `json:"name" validate:"required,min=1,max=200"`
	Link          *string   `json:"link,omitempty"`
	CheckInDate   time.Time `json:"check_in_date" validate:"required"`
	CheckOutDate  time.Time `json:"check_out_date" validate:"required"`
	PricePerNight *float64  `json:"price_per_night,omitempty" validate:"omitempty,gt=0"`
	TotalPrice    *float64  `json:"total_price,omitempty" validate:"omitempty,gt=0"`
	Currency      string    `json:"currency,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}

// HotelResponse represents the response for a hotel booking
type HotelResponse struct {
	ID             string   `json:"id"`
	TripID         string   `json:"trip_id"`
	Name           string   `json:"name"`
	Link           *string  `json:"link,omitempty"`
	CheckInDate    string   `json:"check_in_date"`
	CheckOutDate   string   `json:"check_out_date"`
	PricePerNight  *float64 `json:"price_per_night,omitempty"`
	TotalPrice     *float64 `json:"total_price,omitempty"`
	NumberOfNights int      `json:"number_of_nights"`
	Currency       string   `json:"currency"`
	Notes          *string  `json:"notes,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

// ToResponse converts a Hotel model to a HotelResponse DTO
func (h *Hotel) ToResponse() *HotelResponse {
	return &HotelResponse{
		ID:             h.ID,
		TripID:         h.TripID,
		Name:           h.Name,
		Link:           h.Link,
		CheckInDate:    h.CheckInDate.Format("2006-01-02"),
		CheckOutDate:   h.CheckOutDate.Format("2006-01-02"),
		PricePerNight:  h.PricePerNight,
		TotalPrice:     h.TotalPrice,
		NumberOfNights: h.NumberOfNights,
		Currency:       h.Currency,
		Notes:          h.Notes,
		CreatedAt:      h.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
