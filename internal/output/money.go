package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var hundred = decimal.NewFromInt(100)

// DefaultLanguage drives digit grouping in console output.
var DefaultLanguage = language.MustParse("de-CH")

// Money formats amounts as CHF for one language.
type Money struct {
	p *message.Printer
}

// NewMoney creates a formatter for tag.
func NewMoney(tag language.Tag) Money {
	return Money{p: message.NewPrinter(tag)}
}

// Amount renders a float without decimals, e.g. "CHF 1’234".
func (m Money) Amount(v float64) string {
	return m.p.Sprintf("CHF %.0f", v)
}

// Decimal renders a decimal amount with two decimals.
func (m Money) Decimal(d decimal.Decimal) string {
	return m.p.Sprintf("CHF %.2f", d.InexactFloat64())
}

// Number renders a grouped number with one decimal.
func (m Money) Number(v float64) string {
	return m.p.Sprintf("%.1f", v)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
