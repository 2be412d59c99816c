package split

// EqualStrategy divides the expense evenly among all listed participants.
// The payer gets a share like everyone else; their net position comes out
// of the balance computation, not the split.
type EqualStrategy struct{}

// Type returns the split type identifier
func (s *EqualStrategy) Type() Type {
	return TypeEqual
}

// Validate checks if the inputs are valid for an equal split
func (s *EqualStrategy) Validate(totalAmount float64, participants []Input) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if totalAmount <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}

// Calculate divides the total amount evenly among all participants. Each
// share is rounded to cents; the rounding remainder lands on the last
// participant so the shares still sum to the total.
func (s *EqualStrategy) Calculate(totalAmount float64, participants []Input) ([]Output, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	sharePerPerson := roundToTwoDecimals(totalAmount / float64(len(participants)))

	outputs := make([]Output, len(participants))
	var distributed float64
	for i, p := range participants {
		outputs[i] = Output{
			ParticipantID: p.ParticipantID,
			Amount:        sharePerPerson,
		}
		distributed += sharePerPerson
	}

	difference := roundToTwoDecimals(totalAmount - distributed)
	if difference != 0 {
		last := len(outputs) - 1
		outputs[last].Amount = roundToTwoDecimals(outputs[last].Amount + difference)
	}

	return outputs, nil
}
