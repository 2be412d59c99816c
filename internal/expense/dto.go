package expense

import (
	"time"

	"github.com/unkotrip/api/internal/expense/split"
)

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	TripID              string        `json:"trip_id" validate:"required"`
	Description         string        `json:"description" validate:"required,min=1,max=200"`
	Amount              float64       `json:"amount" validate:"required,gt=0"`
	Currency            string        `json:"currency,omitempty"`
	ExpenseDate         *time.Time    `json:"expense_date,omitempty"`
	PaidByParticipantID string        `json:"paid_by_participant_id" validate:"required"`
	SplitType           string        `json:"split_type" validate:"required,oneof=EQUAL CUSTOM"`
	Splits              []split.Input `json:"splits" validate:"required,min=1"`
}

// ShareResponse represents one participant's share in an expense response
type ShareResponse struct {
	ParticipantID   string  `json:"participant_id"`
	ParticipantName string  `json:"participant_name,omitempty"`
	Amount          float64 `json:"amount"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID                  string           `json:"id"`
	TripID              string           `json:"trip_id"`
	CreatedByID         string           `json:"created_by_id"`
	PaidByParticipantID string           `json:"paid_by_participant_id"`
	PaidByName          string           `json:"paid_by_name,omitempty"`
	Description         string           `json:"description"`
	Amount              float64          `json:"amount"`
	Currency            string           `json:"currency"`
	ExpenseDate         string           `json:"expense_date"`
	SplitType           string           `json:"split_type"`
	Shares              []*ShareResponse `json:"shares"`
	CreatedAt           string           `json:"created_at"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	shares := make([]*ShareResponse, len(e.Shares))
	for i, s := range e.Shares {
		shares[i] = &ShareResponse{
			ParticipantID:   s.ParticipantID,
			ParticipantName: s.ParticipantName,
			Amount:          s.Amount,
		}
	}

	return &ExpenseResponse{
		ID:                  e.ID,
		TripID:              e.TripID,
		CreatedByID:         e.CreatedByID,
		PaidByParticipantID: e.PaidByParticipantID,
		PaidByName:          e.PaidByName,
		Description:         e.Description,
		Amount:              e.Amount,
		Currency:            e.Currency,
		ExpenseDate:         e.ExpenseDate.Format("2006-01-02"),
		SplitType:           string(e.SplitType),
		Shares:              shares,
		CreatedAt:           e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
