package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/buylog/internal/core/domain"
)

// QuoteChange is everything one quote create or price update writes.
// It is applied in a single database transaction.
type QuoteChange struct {
	Quote           domain.Quote
	IsNew           bool                      // insert instead of update
	Entry           *domain.QuoteHistoryEntry // nil when no price-affecting field changed
	TriggeredAlerts []domain.PriceAlert       // alerts that fired on the resulting best price
}

// QuoteReader defines read operations for quote data
type QuoteReader interface {
	// FindQuoteByID retrieves a quote, or apperrors.ErrNotFound.
	FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)

	// ListQuotesByProduct retrieves every quote of a product.
	ListQuotesByProduct(ctx context.Context, productID string) ([]domain.Quote, error)

	// ListQuotesByStatus retrieves every quote in the given status, newest first.
	ListQuotesByStatus(ctx context.Context, status domain.QuoteStatus) ([]domain.Quote, error)
}

// QuoteWriter defines write operations for quote data
type QuoteWriter interface {
	// SaveQuoteChange applies a QuoteChange atomically: quote row, history entry and alert triggers.
	SaveQuoteChange(ctx context.Context, change QuoteChange) error

	// UpdateQuoteStatus changes the purchasing status of a quote.
	UpdateQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus, updatedAt time.Time) error

	// UpdateQuoteReceipt sets or clears (nil) the receipt path of a quote.
	UpdateQuoteReceipt(ctx context.Context, quoteID string, receiptPath *string, updatedAt time.Time) error

	// DeleteQuote removes a quote together with its history entries.
	DeleteQuote(ctx context.Context, quoteID string) error
}

// QuoteHistoryReader defines read operations for the append-only quote history
type QuoteHistoryReader interface {
	// ListHistoryByQuote retrieves a quote's entries oldest first.
	ListHistoryByQuote(ctx context.Context, quoteID string) ([]domain.QuoteHistoryEntry, error)

	// ListHistoryByProduct retrieves the entries of every quote of a product oldest first.
	ListHistoryByProduct(ctx context.Context, productID string) ([]domain.QuoteHistoryEntry, error)
}

// QuoteRepositoryFacade combines all quote-related repository interfaces
type QuoteRepositoryFacade interface {
	QuoteReader
	QuoteWriter
	QuoteHistoryReader
}
