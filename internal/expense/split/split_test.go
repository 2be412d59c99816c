package split

import (
	"errors"
	"math"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestFactoryCreate(t *testing.T) {
	factory := NewFactory()

	tests := []struct {
		name      string
		splitType string
		wantErr   bool
	}{
		{"equal", "EQUAL", false},
		{"custom", "CUSTOM", false},
		{"unknown", "PERCENTAGE", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := factory.CreateFromString(tt.splitType)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for type %q, got strategy %v", tt.splitType, strategy)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(strategy.Type()) != tt.splitType {
				t.Errorf("Type() = %q, want %q", strategy.Type(), tt.splitType)
			}
		})
	}
}

func TestEqualSplitIncludesAllParticipants(t *testing.T) {
	strategy := &EqualStrategy{}

	outputs, err := strategy.Calculate(90.00, []Input{
		{ParticipantID: "pa"},
		{ParticipantID: "pb"},
		{ParticipantID: "pc"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(outputs) != 3 {
		t.Fatalf("got %d shares, want 3", len(outputs))
	}
	for _, o := range outputs {
		if o.Amount != 30.00 {
			t.Errorf("share for %s = %.2f, want 30.00", o.ParticipantID, o.Amount)
		}
	}
}

func TestEqualSplitRoundingRemainder(t *testing.T) {
	strategy := &EqualStrategy{}

	outputs, err := strategy.Calculate(100.00, []Input{
		{ParticipantID: "pa"},
		{ParticipantID: "pb"},
		{ParticipantID: "pc"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sum float64
	for _, o := range outputs {
		sum += o.Amount
	}
	if math.Abs(sum-100.00) > 0.001 {
		t.Errorf("shares sum to %.4f, want 100.00", sum)
	}

	// 100/3 rounds to 33.33, remainder lands on the last share
	if outputs[0].Amount != 33.33 || outputs[1].Amount != 33.33 {
		t.Errorf("first shares = %.2f, %.2f, want 33.33 each", outputs[0].Amount, outputs[1].Amount)
	}
	if outputs[2].Amount != 33.34 {
		t.Errorf("last share = %.2f, want 33.34", outputs[2].Amount)
	}
}

func TestEqualSplitValidation(t *testing.T) {
	strategy := &EqualStrategy{}

	if _, err := strategy.Calculate(50.00, nil); !errors.Is(err, ErrNoParticipants) {
		t.Errorf("empty participants: got %v, want ErrNoParticipants", err)
	}
	if _, err := strategy.Calculate(0, []Input{{ParticipantID: "pa"}}); !errors.Is(err, ErrNonPositiveAmount) {
		t.Errorf("zero amount: got %v, want ErrNonPositiveAmount", err)
	}
	if _, err := strategy.Calculate(-10, []Input{{ParticipantID: "pa"}}); !errors.Is(err, ErrNonPositiveAmount) {
		t.Errorf("negative amount: got %v, want ErrNonPositiveAmount", err)
	}
}

func TestCustomSplitExactAmounts(t *testing.T) {
	strategy := &CustomStrategy{}

	outputs, err := strategy.Calculate(100.00, []Input{
		{ParticipantID: "pa", Amount: floatPtr(70.00)},
		{ParticipantID: "pb", Amount: floatPtr(30.00)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outputs[0].Amount != 70.00 || outputs[1].Amount != 30.00 {
		t.Errorf("shares = %.2f, %.2f, want 70.00, 30.00", outputs[0].Amount, outputs[1].Amount)
	}
}

func TestCustomSplitSumTolerance(t *testing.T) {
	strategy := &CustomStrategy{}

	// One cent off is accepted
	if _, err := strategy.Calculate(100.00, []Input{
		{ParticipantID: "pa", Amount: floatPtr(33.33)},
		{ParticipantID: "pb", Amount: floatPtr(33.33)},
		{ParticipantID: "pc", Amount: floatPtr(33.33)},
	}); err != nil {
		t.Errorf("sum 99.99 should pass the tolerance check, got %v", err)
	}

	// Two cents off is rejected
	if _, err := strategy.Calculate(100.00, []Input{
		{ParticipantID: "pa", Amount: floatPtr(50.00)},
		{ParticipantID: "pb", Amount: floatPtr(49.98)},
	}); !errors.Is(err, ErrInvalidCustomSum) {
		t.Errorf("sum 99.98: got %v, want ErrInvalidCustomSum", err)
	}
}

func TestCustomSplitValidation(t *testing.T) {
	strategy := &CustomStrategy{}

	if _, err := strategy.Calculate(50.00, []Input{
		{ParticipantID: "pa", Amount: floatPtr(50.00)},
		{ParticipantID: "pb"},
	}); !errors.Is(err, ErrMissingCustomAmount) {
		t.Errorf("missing amount: got %v, want ErrMissingCustomAmount", err)
	}

	if _, err := strategy.Calculate(50.00, []Input{
		{ParticipantID: "pa", Amount: floatPtr(60.00)},
		{ParticipantID: "pb", Amount: floatPtr(-10.00)},
	}); !errors.Is(err, ErrNegativeShare) {
		t.Errorf("negative share: got %v, want ErrNegativeShare", err)
	}
}
