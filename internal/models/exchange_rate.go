package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of the exchange_rates table. RateDate is a DATE column.
type ExchangeRate struct {
	ExchangeRateID        string
	CurrencyCode          string
	RateDate              time.Time
	ReferenceUnitsPerUnit decimal.Decimal
	CreatedAt             time.Time
}
