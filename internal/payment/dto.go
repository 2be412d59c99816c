package payment

// CreatePaymentRequest represents the request to record a payment
type CreatePaymentRequest struct {
	TripID            string  `json:"trip_id" validate:"required"`
	FromParticipantID string  `json:"from_participant_id" validate:"required"`
	ToParticipantID   string  `json:"to_participant_id" validate:"required"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	Currency          string  `json:"currency,omitempty"`
}

// PaymentResponse represents the response for a payment
type PaymentResponse struct {
	ID                string  `json:"id"`
	TripID            string  `json:"trip_id"`
	FromParticipantID string  `json:"from_participant_id"`
	FromName          string  `json:"from_name,omitempty"`
	ToParticipantID   string  `json:"to_participant_id"`
	ToName            string  `json:"to_name,omitempty"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	CreatedAt         string  `json:"created_at"`
}

// ToResponse converts a Payment model to a PaymentResponse DTO
func (p *Payment) ToResponse() *PaymentResponse {
	return &PaymentResponse{
		ID:                p.ID,
		TripID:            p.TripID,
		FromParticipantID: p.FromParticipantID,
		FromName:          p.FromName,
		ToParticipantID:   p.ToParticipantID,
		ToName:            p.ToName,
		Amount:            p.Amount,
		Currency:          p.Currency,
		CreatedAt:         p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
