package services

import (
	"context"
	"time"

	"github.com/SscSPs/buylog/internal/core/domain"
	"github.com/SscSPs/buylog/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyConverterSvc converts amounts into the reference currency.
type CurrencyConverterSvc interface {
	// ReferenceCurrency is the code every converted amount is expressed in.
	ReferenceCurrency() string

	// Convert returns amount, held in currencyCode, expressed in the reference currency
	// using the latest rate dated on or before asOf. The reference currency converts to itself
	// without a lookup. A missing rate is apperrors.ErrRateNotFound.
	Convert(ctx context.Context, amount decimal.Decimal, currencyCode string, asOf time.Time) (decimal.Decimal, error)
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetRateAsOf retrieves the rate that applies to currencyCode on asOf.
	GetRateAsOf(ctx context.Context, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves stored rates, optionally for one currency.
	ListExchangeRates(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate records a new daily rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	CurrencyConverterSvc
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
