package invoice

import (
	"strings"

	"github.com/Rimao416/facture/pkg/models"
)

// DefaultCurrencyCode is used when the form leaves the currency blank.
const DefaultCurrencyCode = "TND"

// Currencies is the fixed catalog offered by the form. Any other code can
// be supplied as free text; ResolveCurrency then derives symbol and name
// from the code itself.
var Currencies = []models.Currency{
	{Code: "TND", Symbol: "DT", Name: "Dinar tunisien"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "USD", Symbol: "$", Name: "Dollar américain"},
	{Code: "GBP", Symbol: "£", Name: "Livre sterling"},
	{Code: "CHF", Symbol: "CHF", Name: "Franc suisse"},
	{Code: "CAD", Symbol: "$C", Name: "Dollar canadien"},
	{Code: "MAD", Symbol: "DH", Name: "Dirham marocain"},
}

// Units are the enumerated line-item units offered by the form. Free text
// is accepted as well; the unit is never interpreted, only printed.
var Units = []string{"pcs", "m", "m²", "kg", "h", "jour"}

// ResolveCurrency maps a currency code to its catalog entry. An empty
// code resolves to the default currency; an unknown code becomes a
// Currency whose symbol and name are the code itself.
func ResolveCurrency(code string) models.Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrencyCode
	}
	for _, c := range Currencies {
		if c.Code == code {
			return c
		}
	}
	return models.Currency{Code: code, Symbol: code, Name: code}
}
