package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/buylog/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindLatestRate retrieves the rate for currencyCode with the latest rate date on or before asOf.
	// Returns apperrors.ErrRateNotFound when no such row exists.
	FindLatestRate(ctx context.Context, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves rates newest first, optionally restricted to one currency.
	ListExchangeRates(ctx context.Context, currencyCode *string) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new exchange rate. A second rate for the same
	// currency and date returns apperrors.ErrDuplicate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
