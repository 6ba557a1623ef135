// Package money holds cent arithmetic for cart and order totals. Amounts are
// integer centavos throughout; percentages are whole numbers 0-100.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var hundred = decimal.NewFromInt(100)

// clampPercent floors negative percentages at 0 and caps at 100 so a total
// can never go negative.
func clampPercent(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// ApplyDiscountPercent returns round(subtotal × (1 − percent/100)) on the
// final cents value, rounding half-up.
func ApplyDiscountPercent(subtotal int64, percent int) int64 {
	if subtotal <= 0 {
		return 0
	}
	p := clampPercent(percent)
	return decimal.NewFromInt(subtotal).
		Mul(decimal.NewFromInt(int64(100 - p))).
		Div(hundred).
		Round(0).
		IntPart()
}

// DiscountAmount returns round(subtotal × percent/100), rounding half-up.
func DiscountAmount(subtotal int64, percent int) int64 {
	if subtotal <= 0 {
		return 0
	}
	p := clampPercent(percent)
	return decimal.NewFromInt(subtotal).
		Mul(decimal.NewFromInt(int64(p))).
		Div(hundred).
		Round(0).
		IntPart()
}

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders centavos as a pt-BR currency string, e.g. "R$ 49,90".
func FormatBRL(cents int64) string {
	units := decimal.NewFromInt(cents).Div(hundred).InexactFloat64()
	return ptBR.Sprint(currency.Symbol(currency.BRL.Amount(units)))
}
