package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the value of one unit of CurrencyCode in the reference currency on RateDate.
// Rows are immutable; a new day's rate is a new row.
type ExchangeRate struct {
	ExchangeRateID        string          `json:"exchangeRateID"`
	CurrencyCode          string          `json:"currencyCode"`
	RateDate              time.Time       `json:"rateDate"`
	ReferenceUnitsPerUnit decimal.Decimal `json:"referenceUnitsPerUnit"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// UnitsPerReference is the inverse view of the stored rate, computed on demand.
// A zero rate yields zero.
func (r ExchangeRate) UnitsPerReference() decimal.Decimal {
	if r.ReferenceUnitsPerUnit.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromInt(1).Div(r.ReferenceUnitsPerUnit)
}
