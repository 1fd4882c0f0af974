package services

import (
	"context"

	"github.com/SscSPs/buylog/internal/core/domain"
	"github.com/SscSPs/buylog/internal/dto"
)

// QuoteReaderSvc defines read operations for quotes and their history
type QuoteReaderSvc interface {
	// GetQuote retrieves a quote valued in the reference currency.
	GetQuote(ctx context.Context, quoteID string) (*domain.ValuedQuote, error)

	// ListQuotesByStatus retrieves valued quotes in one purchasing status.
	ListQuotesByStatus(ctx context.Context, status domain.QuoteStatus) ([]domain.ValuedQuote, error)

	// GetQuoteHistory retrieves a quote's price history, oldest first.
	GetQuoteHistory(ctx context.Context, quoteID string) ([]domain.QuoteHistoryEntry, error)

	// GetProductHistory retrieves the price history of every quote of a product, oldest first.
	GetProductHistory(ctx context.Context, productID string) ([]domain.QuoteHistoryEntry, error)

	// GetQuoteTrend classifies the latest price change of a quote.
	GetQuoteTrend(ctx context.Context, quoteID string) (domain.Trend, error)
}

// QuoteWriterSvc defines write operations for quotes
type QuoteWriterSvc interface {
	// CreateQuote records a vendor's offer, its creation history entry, and any alert it triggers.
	CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*domain.ValuedQuote, error)

	// UpdateQuotePrice changes price-affecting fields. Unchanged prices write no history.
	UpdateQuotePrice(ctx context.Context, quoteID string, req dto.UpdateQuotePriceRequest) (*domain.ValuedQuote, error)

	SetQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus) (*domain.Quote, error)
	AttachReceipt(ctx context.Context, quoteID, path string) (*domain.Quote, error)
	DetachReceipt(ctx context.Context, quoteID string) (*domain.Quote, error)

	// DeleteQuote removes a quote and its history.
	DeleteQuote(ctx context.Context, quoteID string) error
}

// QuoteSvcFacade combines all quote-related service interfaces
type QuoteSvcFacade interface {
	QuoteReaderSvc
	QuoteWriterSvc
}
