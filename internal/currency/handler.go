package currency

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unkotrip/api/pkg/response"
)

// CurrencyResponse describes one supported currency for pickers
type CurrencyResponse struct {
	Code    string `json:"code"`
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

// codes fixes the display order of the supported set
var codes = []string{"CLP", "JPY", "USD", "EUR", "GBP", "KRW", "CNY", "THB"}

// Handler handles HTTP requests for currency metadata
type Handler struct{}

// NewHandler creates a new currency handler
func NewHandler() *Handler {
	return &Handler{}
}

// Routes returns the router for currency endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListSupported)

	return r
}

// ListSupported handles GET /currencies
// @Summary      List supported currencies
// @Description  Get the currencies trips and expenses may use, with display symbols and names
// @Tags         currencies
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]CurrencyResponse}
// @Router       /currencies [get]
func (h *Handler) ListSupported(w http.ResponseWriter, r *http.Request) {
	out := make([]CurrencyResponse, 0, len(codes))
	for _, code := range codes {
		out = append(out, CurrencyResponse{
			Code:    code,
			Symbol:  Symbol(code),
			Name:    Name(code),
			Default: code == Default,
		})
	}

	response.JSON(w, http.StatusOK, out)
}
