package currency

import "testing"

func TestValid(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"CLP", true},
		{"USD", true},
		{"JPY", true},
		{"THB", true},
		{"usd", false},
		{"BTC", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.code); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestSymbolFallsBackToCode(t *testing.T) {
	if got := Symbol("JPY"); got != "¥" {
		t.Errorf("Symbol(JPY) = %q, want ¥", got)
	}
	if got := Symbol("XXX"); got != "XXX" {
		t.Errorf("Symbol(XXX) = %q, want XXX", got)
	}
}
