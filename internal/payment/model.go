package payment

import "time"

// Payment represents money handed from one participant to another outside
// any expense, usually to settle a debt
type Payment struct {
	ID                string    `json:"id"`
	TripID            string    `json:"trip_id"`
	FromParticipantID string    `json:"from_participant_id"`
	ToParticipantID   string    `json:"to_participant_id"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	CreatedAt         time.Time `json:"created_at"`

	// Populated via JOIN
	FromName string `json:"from_name,omitempty"`
	ToName   string `json:"to_name,omitempty"`
}
