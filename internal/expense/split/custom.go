package split

import "math"

// CustomStrategy lets each participant carry an explicit share. Shares must
// sum to the expense total within a one-cent tolerance.
type CustomStrategy struct{}

// Type returns the split type identifier
func (s *CustomStrategy) Type() Type {
	return TypeCustom
}

// Validate checks if the inputs are valid for a custom split
func (s *CustomStrategy) Validate(totalAmount float64, participants []Input) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if totalAmount <= 0 {
		return ErrNonPositiveAmount
	}

	var sum float64
	for _, p := range participants {
		if p.Amount == nil {
			return ErrMissingCustomAmount
		}
		if *p.Amount < 0 {
			return ErrNegativeShare
		}
		sum += *p.Amount
	}

	// Allow for small floating point errors
	if math.Abs(sum-totalAmount) > 0.01 {
		return ErrInvalidCustomSum
	}

	return nil
}

// Calculate returns the specified amounts rounded to cents
func (s *CustomStrategy) Calculate(totalAmount float64, participants []Input) ([]Output, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	outputs := make([]Output, len(participants))
	for i, p := range participants {
		outputs[i] = Output{
			ParticipantID: p.ParticipantID,
			Amount:        roundToTwoDecimals(*p.Amount),
		}
	}

	return outputs, nil
}
