package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/buylog/internal/apperrors"
	"github.com/SscSPs/buylog/internal/core/domain"
	portsrepo "github.com/SscSPs/buylog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// exchangeRateService converts amounts into the reference currency using daily rates.
type exchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
	pricing  domain.Pricing
}

// NewExchangeRateService creates a new exchange rate service for the given pricing policy.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, pricing domain.Pricing, options ...ServiceOption) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		BaseService: newBaseService(options),
		rateRepo:    rateRepo,
		pricing:     pricing,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func (s *exchangeRateService) ReferenceCurrency() string {
	return s.pricing.ReferenceCurrency
}

func (s *exchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, currencyCode string, asOf time.Time) (decimal.Decimal, error) {
	code := domain.NormalizeCurrencyCode(currencyCode)
	if code == s.pricing.ReferenceCurrency {
		return amount, nil
	}

	rate, err := s.GetRateAsOf(ctx, code, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate.ReferenceUnitsPerUnit), nil
}

func (s *exchangeRateService) GetRateAsOf(ctx context.Context, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	code := domain.NormalizeCurrencyCode(currencyCode)
	if !domain.IsCurrencyCode(code) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("currency code '%s' must be 3 letters", currencyCode))
	}

	day := domain.DateOf(asOf)
	rate, err := s.rateRepo.FindLatestRate(ctx, code, day)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateNotFound) {
			s.LogDebug(ctx, "No exchange rate applies",
				slog.String("currency_code", code),
				slog.String("as_of", day.Format(time.DateOnly)))
			return nil, apperrors.NewRateNotFoundError(code, day)
		}
		s.LogError(ctx, err, "Failed to look up exchange rate", slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to look up %s rate: %w", code, err)
	}
	return rate, nil
}

func (s *exchangeRateService) ListExchangeRates(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error) {
	var filter *string
	if currencyCode != "" {
		code := domain.NormalizeCurrencyCode(currencyCode)
		filter = &code
	}
	rates, err := s.rateRepo.ListExchangeRates(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	code := domain.NormalizeCurrencyCode(req.CurrencyCode)
	if !domain.IsCurrencyCode(code) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("currency code '%s' must be 3 letters", req.CurrencyCode))
	}
	if code == s.pricing.ReferenceCurrency {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s is the reference currency and needs no rate", code))
	}
	if !req.Rate.IsPositive() {
		return nil, apperrors.NewValidationError("exchange rate must be positive")
	}

	now := s.Now()
	rateDate, err := dto.ParseDate(req.RateDate, now)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("rate date '%s' must be YYYY-MM-DD", req.RateDate))
	}

	rate := domain.ExchangeRate{
		ExchangeRateID:        uuid.NewString(),
		CurrencyCode:          code,
		RateDate:              rateDate,
		ReferenceUnitsPerUnit: req.Rate,
		CreatedAt:             now,
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save exchange rate",
				slog.String("currency_code", code),
				slog.String("rate_date", rateDate.Format(time.DateOnly)))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Exchange rate created",
		slog.String("rate_id", rate.ExchangeRateID),
		slog.String("currency_code", code),
		slog.String("rate_date", rateDate.Format(time.DateOnly)))
	return &rate, nil
}
