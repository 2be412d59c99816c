package currency

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListSupported(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	NewHandler().ListSupported(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Success bool               `json:"success"`
		Data    []CurrencyResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success {
		t.Error("expected success envelope")
	}
	if len(body.Data) != len(supported) {
		t.Fatalf("got %d currencies, want %d", len(body.Data), len(supported))
	}

	first := body.Data[0]
	if first.Code != Default || !first.Default {
		t.Errorf("first entry = %+v, want the default currency first", first)
	}

	for _, c := range body.Data {
		if c.Symbol == "" || c.Name == "" {
			t.Errorf("currency %s missing symbol or name", c.Code)
		}
		if c.Name == c.Code {
			t.Errorf("currency %s has no display name", c.Code)
		}
	}
}
