package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus tracks where a quote is in the purchasing flow.
type QuoteStatus string

const (
	QuoteConsidering QuoteStatus = "considering"
	QuoteOrdered     QuoteStatus = "ordered"
	QuoteReceived    QuoteStatus = "received"
)

// QuoteStatuses lists every valid status.
var QuoteStatuses = []QuoteStatus{QuoteConsidering, QuoteOrdered, QuoteReceived}

// ParseQuoteStatus validates a status string case-insensitively.
func ParseQuoteStatus(s string) (QuoteStatus, error) {
	status := QuoteStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range QuoteStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid status '%s', must be one of: considering, ordered, received", s)
}

var hundred = decimal.NewFromInt(100)

// Quote is a vendor's offer price for a product at a point in time.
// Amounts are in CurrencyCode; PricedAt is when the price-affecting fields last changed
// and is the date used to pick the exchange rate.
type Quote struct {
	QuoteID      string          `json:"quoteID"`
	VendorID     string          `json:"vendorID"`
	ProductID    string          `json:"productID"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	CurrencyCode string          `json:"currencyCode"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	TaxRate      decimal.Decimal `json:"taxRate"`  // percent
	Discount     decimal.Decimal `json:"discount"` // percent, inherited from the vendor
	Status       QuoteStatus     `json:"status"`
	ReceiptPath  *string         `json:"receiptPath,omitempty"`
	PricedAt     time.Time       `json:"pricedAt"`
	AuditFields
}

// Validate checks the field rules a quote must satisfy before it is valued or stored.
func (q Quote) Validate() error {
	if !q.BasePrice.IsPositive() {
		return fmt.Errorf("base price must be positive")
	}
	if q.Discount.IsNegative() || q.Discount.GreaterThan(hundred) {
		return fmt.Errorf("discount must be between 0 and 100")
	}
	if q.TaxRate.IsNegative() {
		return fmt.Errorf("tax rate cannot be negative")
	}
	if q.ShippingCost.IsNegative() {
		return fmt.Errorf("shipping cost cannot be negative")
	}
	if !IsCurrencyCode(q.CurrencyCode) {
		return fmt.Errorf("currency code '%s' must be 3 uppercase letters", q.CurrencyCode)
	}
	if q.Status != "" {
		if _, err := ParseQuoteStatus(string(q.Status)); err != nil {
			return err
		}
	}
	return nil
}

// OriginTotal is the fully loaded cost in the quote's own currency:
// (base * (1 - discount/100) + shipping) * (1 + tax/100).
func (q Quote) OriginTotal() decimal.Decimal {
	net := q.BasePrice.Mul(decimal.NewFromInt(1).Sub(q.Discount.Div(hundred)))
	return net.Add(q.ShippingCost).Mul(decimal.NewFromInt(1).Add(q.TaxRate.Div(hundred)))
}

// SamePriceFields reports whether base price, shipping and tax rate are unchanged.
func (q Quote) SamePriceFields(other Quote) bool {
	return q.BasePrice.Equal(other.BasePrice) &&
		q.ShippingCost.Equal(other.ShippingCost) &&
		q.TaxRate.Equal(other.TaxRate)
}

// ValuedQuote pairs a quote with its total cost in the reference currency.
type ValuedQuote struct {
	Quote     Quote           `json:"quote"`
	TotalCost decimal.Decimal `json:"totalCost"`
}
