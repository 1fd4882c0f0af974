package services

import (
	"context"

	"github.com/SscSPs/buylog/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValuationSvc values quotes in the reference currency and picks the cheapest one.
type ValuationSvc interface {
	// TotalCost is the fully loaded cost of a quote in the reference currency,
	// converted at the quote's PricedAt date.
	TotalCost(ctx context.Context, quote domain.Quote) (decimal.Decimal, error)

	// ValueQuotes values every quote. Any conversion failure fails the whole call.
	ValueQuotes(ctx context.Context, quotes []domain.Quote) ([]domain.ValuedQuote, error)

	// BestPrice selects the cheapest quote of a product.
	BestPrice(ctx context.Context, productID string) (*domain.BestPrice, error)
}
