package split

import (
	"errors"
	"fmt"
	"math"
)

// Type identifies how an expense is divided among participants
type Type string

const (
	TypeEqual  Type = "EQUAL"
	TypeCustom Type = "CUSTOM"
)

// Input represents one participant in a split. Amount is only used by the
// CUSTOM strategy.
type Input struct {
	ParticipantID string   `json:"participant_id"`
	Amount        *float64 `json:"amount,omitempty"`
}

// Output is the computed share of a single participant. Every participant
// listed in the split gets a share, the payer included; shares sum to the
// expense total.
type Output struct {
	ParticipantID string  `json:"participant_id"`
	Amount        float64 `json:"amount"`
}

// Strategy is the interface all split strategies implement
type Strategy interface {
	// Calculate computes the share of each participant
	Calculate(totalAmount float64, participants []Input) ([]Output, error)

	// Type returns the type identifier for this strategy
	Type() Type

	// Validate checks if the inputs are valid for this strategy
	Validate(totalAmount float64, participants []Input) error
}

// Factory creates split strategies based on the requested type
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy implementation for the given type
func (f *Factory) Create(splitType Type) (Strategy, error) {
	switch splitType {
	case TypeEqual:
		return &EqualStrategy{}, nil
	case TypeCustom:
		return &CustomStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown split type: %s", splitType)
	}
}

// CreateFromString creates a strategy from a string type
func (f *Factory) CreateFromString(splitType string) (Strategy, error) {
	return f.Create(Type(splitType))
}

var (
	ErrNoParticipants      = errors.New("at least one participant is required")
	ErrNonPositiveAmount   = errors.New("amount must be greater than zero")
	ErrNegativeShare       = errors.New("shares cannot be negative")
	ErrMissingCustomAmount = errors.New("custom amount required for all participants")
	ErrInvalidCustomSum    = errors.New("custom amounts must sum to the expense total")
)

// roundToTwoDecimals rounds a float to 2 decimal places
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
