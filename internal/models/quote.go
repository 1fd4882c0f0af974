package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a row of the quotes table.
type Quote struct {
	QuoteID      string
	VendorID     string
	ProductID    string
	BasePrice    decimal.Decimal
	CurrencyCode string
	ShippingCost decimal.Decimal
	TaxRate      decimal.Decimal
	Discount     decimal.Decimal
	Status       string
	ReceiptPath  *string
	PricedAt     time.Time
	AuditFields
}

// QuoteHistoryEntry is a row of the quote_history table. Sequence is a BIGSERIAL.
type QuoteHistoryEntry struct {
	EntryID       string
	QuoteID       string
	EventKind     string
	PreviousTotal *decimal.Decimal
	NewTotal      decimal.Decimal
	RecordedAt    time.Time
	Sequence      int64
}

// PriceAlert is a row of the price_alerts table.
type PriceAlert struct {
	AlertID     string
	ProductID   string
	Threshold   decimal.Decimal
	IsActive    bool
	IsTriggered bool
	TriggeredAt *time.Time
	AuditFields
}
