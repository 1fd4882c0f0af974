package dto

import (
	"time"

	"github.com/SscSPs/buylog/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for recording a daily rate.
// Rate is the value of one unit of CurrencyCode in the reference currency.
type CreateExchangeRateRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3,alpha"`
	Rate         decimal.Decimal `json:"rate" binding:"required"`
	RateDate     string          `json:"rateDate" binding:"omitempty,datetime=2006-01-02"` // defaults to today
}

// ConvertQuery defines the query parameters of a conversion request.
type ConvertQuery struct {
	Amount       string `form:"amount" binding:"required,numeric"`
	CurrencyCode string `form:"currency" binding:"required,len=3,alpha"`
	AsOf         string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// ConvertResponse is the result of converting an amount into the reference currency.
type ConvertResponse struct {
	Amount            decimal.Decimal `json:"amount"`
	CurrencyCode      string          `json:"currencyCode"`
	AsOf              string          `json:"asOf"`
	Converted         decimal.Decimal `json:"converted"`
	ReferenceCurrency string          `json:"referenceCurrency"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID        string          `json:"exchangeRateID"`
	CurrencyCode          string          `json:"currencyCode"`
	RateDate              string          `json:"rateDate"`
	ReferenceUnitsPerUnit decimal.Decimal `json:"referenceUnitsPerUnit"`
	UnitsPerReference     decimal.Decimal `json:"unitsPerReference"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:        rate.ExchangeRateID,
		CurrencyCode:          rate.CurrencyCode,
		RateDate:              rate.RateDate.Format(time.DateOnly),
		ReferenceUnitsPerUnit: rate.ReferenceUnitsPerUnit,
		UnitsPerReference:     rate.UnitsPerReference().Round(8),
		CreatedAt:             rate.CreatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ParseDate parses an optional YYYY-MM-DD value, returning fallback's date when empty.
func ParseDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return domain.DateOf(fallback), nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOf(t), nil
}
