// Package money formats prices for display. Formatting is a presentation
// concern only; the wire format stays a plain JSON number.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is the currency prefix the catalog displays prices in.
const DefaultCurrency = "KSh"

var printer = message.NewPrinter(language.English)

// Format renders an amount with a currency prefix, a thousands separator and
// two fractional digits, e.g. Format("KSh", 1500) == "KSh 1,500.00".
func Format(currency string, amount float64) string {
	return printer.Sprintf("%s %.2f", currency, amount)
}

// FormatDefault renders an amount in the catalog's default currency.
func FormatDefault(amount float64) string {
	return Format(DefaultCurrency, amount)
}
