package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultReferenceCurrency is the currency all comparisons are normalized into unless configured otherwise.
const DefaultReferenceCurrency = "USD"

// Pricing is the explicit pricing policy passed to the valuation services.
type Pricing struct {
	ReferenceCurrency     string          // 3-letter code every total is expressed in
	DefaultVendorDiscount decimal.Decimal // applied to vendors created without a discount (0-100)
}

// DefaultPricing returns the USD, no-discount policy.
func DefaultPricing() Pricing {
	return Pricing{ReferenceCurrency: DefaultReferenceCurrency, DefaultVendorDiscount: decimal.Zero}
}

// NormalizeCurrencyCode trims and uppercases a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsCurrencyCode reports whether code is ISO-4217 shaped: exactly three uppercase ASCII letters.
func IsCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
