package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyPrecision returns the number of minor-unit digits of an ISO 4217 currency.
// Unknown codes fall back to 2.
func CurrencyPrecision(currencyCode string) int32 {
	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		return 2
	}
	return int32(cur.Fraction)
}

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
// Example: amount 12.3456 with JPY (precision 0) returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currencyCode string) string {
	return amount.StringFixed(CurrencyPrecision(currencyCode))
}

// DisplayMoney renders an amount with its currency symbol, e.g. "$1,234.50" or "€9,99".
// Unknown codes render as the plain fixed amount followed by the code.
func DisplayMoney(amount decimal.Decimal, currencyCode string) string {
	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		return amount.StringFixed(2) + " " + currencyCode
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), currencyCode).Display()
}
