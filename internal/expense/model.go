package expense

import (
	"time"

	"github.com/unkotrip/api/internal/expense/split"
)

// Expense represents a shared cost on a trip. Its shares always sum to the
// amount; the payer carries a share like everyone else.
type Expense struct {
	ID                  string     `json:"id"`
	TripID              string     `json:"trip_id"`
	CreatedByID         string     `json:"created_by_id"`
	PaidByParticipantID string     `json:"paid_by_participant_id"`
	Description         string     `json:"description"`
	Amount              float64    `json:"amount"`
	Currency            string     `json:"currency"`
	ExpenseDate         time.Time  `json:"expense_date"`
	SplitType           split.Type `json:"split_type"`
	CreatedAt           time.Time  `json:"created_at"`

	Shares []*Share `json:"shares,omitempty"`

	// Populated via JOIN
	PaidByName string `json:"paid_by_name,omitempty"`
}

// Share is one participant's portion of an expense
type Share struct {
	ID            string  `json:"id"`
	ExpenseID     string  `json:"expense_id"`
	ParticipantID string  `json:"participant_id"`
	Amount        float64 `json:"amount"`

	// Populated via JOIN
	ParticipantName string `json:"participant_name,omitempty"`
}
