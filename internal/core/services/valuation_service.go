package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/buylog/internal/core/domain"
	portsrepo "github.com/SscSPs/buylog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

// valuationService turns quotes into reference-currency totals.
type valuationService struct {
	BaseService
	converter portssvc.CurrencyConverterSvc
	quoteRepo portsrepo.QuoteReader
}

// NewValuationService creates a new valuation service.
func NewValuationService(converter portssvc.CurrencyConverterSvc, quoteRepo portsrepo.QuoteReader, options ...ServiceOption) portssvc.ValuationSvc {
	return &valuationService{
		BaseService: newBaseService(options),
		converter:   converter,
		quoteRepo:   quoteRepo,
	}
}

var _ portssvc.ValuationSvc = (*valuationService)(nil)

func (s *valuationService) TotalCost(ctx context.Context, quote domain.Quote) (decimal.Decimal, error) {
	total, err := s.converter.Convert(ctx, quote.OriginTotal(), quote.CurrencyCode, quote.PricedAt)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (s *valuationService) ValueQuotes(ctx context.Context, quotes []domain.Quote) ([]domain.ValuedQuote, error) {
	valued := make([]domain.ValuedQuote, 0, len(quotes))
	for _, q := range quotes {
		total, err := s.TotalCost(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("failed to value quote %s: %w", q.QuoteID, err)
		}
		valued = append(valued, domain.ValuedQuote{Quote: q, TotalCost: total})
	}
	return valued, nil
}

func (s *valuationService) BestPrice(ctx context.Context, productID string) (*domain.BestPrice, error) {
	quotes, err := s.quoteRepo.ListQuotesByProduct(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list quotes for best price", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to list quotes of product %s: %w", productID, err)
	}

	valued, err := s.ValueQuotes(ctx, quotes)
	if err != nil {
		return nil, err
	}

	best := bestOf(valued)
	return &best, nil
}

// bestOf wraps pricing.SelectBest into the domain result.
func bestOf(valued []domain.ValuedQuote) domain.BestPrice {
	vq, ok := pricing.SelectBest(valued)
	if !ok {
		return domain.BestPrice{}
	}
	return domain.BestPrice{Found: true, Quote: vq.Quote, Amount: vq.TotalCost}
}
