// Package currency defines the set of currencies the application supports.
// Balances and settlements are always scoped to a single currency; there is
// no cross-currency conversion anywhere in the system.
package currency

// Default is the currency assigned to new trips unless overridden
const Default = "CLP"

type info struct {
	Symbol string
	Name   string
}

var supported = map[string]info{
	"CLP": {Symbol: "$", Name: "Chilean Peso"},
	"JPY": {Symbol: "¥", Name: "Japanese Yen"},
	"USD": {Symbol: "$", Name: "US Dollar"},
	"EUR": {Symbol: "€", Name: "Euro"},
	"GBP": {Symbol: "£", Name: "British Pound"},
	"KRW": {Symbol: "₩", Name: "South Korean Won"},
	"CNY": {Symbol: "¥", Name: "Chinese Yuan"},
	"THB": {Symbol: "฿", Name: "Thai Baht"},
}

// Valid reports whether code is a supported currency code
func Valid(code string) bool {
	_, ok := supported[code]
	return ok
}

// Symbol returns the display symbol for a currency code, or the code itself
// when unknown
func Symbol(code string) string {
	if c, ok := supported[code]; ok {
		return c.Symbol
	}
	return code
}

// Name returns the display name for a currency code, or the code itself
// when unknown
func Name(code string) string {
	if c, ok := supported[code]; ok {
		return c.Name
	}
	return code
}
