package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/buylog/internal/apperrors"
	"github.com/SscSPs/buylog/internal/core/domain"
	portsrepo "github.com/SscSPs/buylog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/dto"
	"github.com/SscSPs/buylog/internal/utils/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// quoteService runs the quote pipeline: valuation, history, best price and alerts.
type quoteService struct {
	BaseService
	quoteRepo   portsrepo.QuoteRepositoryFacade
	vendorRepo  portsrepo.VendorReader
	productRepo portsrepo.ProductReader
	valuation   portssvc.ValuationSvc
	alerts      portssvc.AlertEvaluatorSvc
}

// NewQuoteService creates a new quote service.
func NewQuoteService(
	quoteRepo portsrepo.QuoteRepositoryFacade,
	catalogRepo portsrepo.CatalogRepositoryFacade,
	valuation portssvc.ValuationSvc,
	alerts portssvc.AlertEvaluatorSvc,
	options ...ServiceOption,
) portssvc.QuoteSvcFacade {
	return &quoteService{
		BaseService: newBaseService(options),
		quoteRepo:   quoteRepo,
		vendorRepo:  catalogRepo,
		productRepo: catalogRepo,
		valuation:   valuation,
		alerts:      alerts,
	}
}

var _ portssvc.QuoteSvcFacade = (*quoteService)(nil)

func (s *quoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*domain.ValuedQuote, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindProductByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	status := domain.QuoteConsidering
	if req.Status != "" {
		if status, err = domain.ParseQuoteStatus(req.Status); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	now := s.Now()
	quote := domain.Quote{
		QuoteID:      uuid.NewString(),
		VendorID:     vendor.VendorID,
		ProductID:    req.ProductID,
		BasePrice:    req.BasePrice,
		CurrencyCode: vendor.CurrencyCode,
		ShippingCost: req.ShippingCost,
		TaxRate:      req.TaxRate,
		Discount:     vendor.Discount,
		Status:       status,
		PricedAt:     now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := quote.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	total, err := s.valuation.TotalCost(ctx, quote)
	if err != nil {
		return nil, err
	}
	valued := domain.ValuedQuote{Quote: quote, TotalCost: total}

	triggered, err := s.alertsAfter(ctx, valued)
	if err != nil {
		return nil, err
	}

	change := portsrepo.QuoteChange{
		Quote: quote,
		IsNew: true,
		Entry: &domain.QuoteHistoryEntry{
			EntryID:    uuid.NewString(),
			QuoteID:    quote.QuoteID,
			EventKind:  domain.HistoryCreate,
			NewTotal:   total,
			RecordedAt: now,
		},
		TriggeredAlerts: triggered,
	}
	if err := s.quoteRepo.SaveQuoteChange(ctx, change); err != nil {
		s.LogError(ctx, err, "Failed to save quote",
			slog.String("quote_id", quote.QuoteID),
			slog.String("product_id", quote.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Quote created",
		slog.String("quote_id", quote.QuoteID),
		slog.String("product_id", quote.ProductID),
		slog.String("total_cost", total.StringFixed(2)),
		slog.Int("alerts_triggered", len(triggered)))
	return &valued, nil
}

func (s *quoteService) UpdateQuotePrice(ctx context.Context, quoteID string, req dto.UpdateQuotePriceRequest) (*domain.ValuedQuote, error) {
	current, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.BasePrice != nil {
		updated.BasePrice = *req.BasePrice
	}
	if req.ShippingCost != nil {
		updated.ShippingCost = *req.ShippingCost
	}
	if req.TaxRate != nil {
		updated.TaxRate = *req.TaxRate
	}
	if err := updated.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if updated.SamePriceFields(*current) {
		total, err := s.valuation.TotalCost(ctx, *current)
		if err != nil {
			return nil, err
		}
		s.LogDebug(ctx, "Quote price unchanged, nothing recorded", slog.String("quote_id", quoteID))
		return &domain.ValuedQuote{Quote: *current, TotalCost: total}, nil
	}

	now := s.Now()
	updated.PricedAt = now
	updated.LastUpdatedAt = now

	previous, err := s.lastRecordedTotal(ctx, *current)
	if err != nil {
		return nil, err
	}
	total, err := s.valuation.TotalCost(ctx, updated)
	if err != nil {
		return nil, err
	}
	valued := domain.ValuedQuote{Quote: updated, TotalCost: total}

	triggered, err := s.alertsAfter(ctx, valued)
	if err != nil {
		return nil, err
	}

	change := portsrepo.QuoteChange{
		Quote: updated,
		Entry: &domain.QuoteHistoryEntry{
			EntryID:       uuid.NewString(),
			QuoteID:       quoteID,
			EventKind:     domain.HistoryUpdate,
			PreviousTotal: &previous,
			NewTotal:      total,
			RecordedAt:    now,
		},
		TriggeredAlerts: triggered,
	}
	if err := s.quoteRepo.SaveQuoteChange(ctx, change); err != nil {
		s.LogError(ctx, err, "Failed to update quote price", slog.String("quote_id", quoteID))
		return nil, err
	}

	s.LogInfo(ctx, "Quote price updated",
		slog.String("quote_id", quoteID),
		slog.String("previous_total", previous.StringFixed(2)),
		slog.String("new_total", total.StringFixed(2)),
		slog.Int("alerts_triggered", len(triggered)))
	return &valued, nil
}

// lastRecordedTotal is the newest total in the quote's history, or its current valuation if it has none.
func (s *quoteService) lastRecordedTotal(ctx context.Context, quote domain.Quote) (decimal.Decimal, error) {
	entries, err := s.quoteRepo.ListHistoryByQuote(ctx, quote.QuoteID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load history of quote %s: %w", quote.QuoteID, err)
	}
	if len(entries) > 0 {
		pricing.OrderHistory(entries)
		return entries[len(entries)-1].NewTotal, nil
	}
	return s.valuation.TotalCost(ctx, quote)
}

// alertsAfter computes the product's best price as it will be once changed is stored,
// and returns the alerts that fire on it.
func (s *quoteService) alertsAfter(ctx context.Context, changed domain.ValuedQuote) ([]domain.PriceAlert, error) {
	stored, err := s.quoteRepo.ListQuotesByProduct(ctx, changed.Quote.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes of product %s: %w", changed.Quote.ProductID, err)
	}

	others := make([]domain.Quote, 0, len(stored))
	for _, q := range stored {
		if q.QuoteID != changed.Quote.QuoteID {
			others = append(others, q)
		}
	}
	valued, err := s.valuation.ValueQuotes(ctx, others)
	if err != nil {
		return nil, err
	}
	valued = append(valued, changed)

	return s.alerts.EvaluateAlerts(ctx, changed.Quote.ProductID, bestOf(valued))
}

func (s *quoteService) SetQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus) (*domain.Quote, error) {
	parsed, err := domain.ParseQuoteStatus(string(status))
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	if err := s.quoteRepo.UpdateQuoteStatus(ctx, quoteID, parsed, now); err != nil {
		s.LogError(ctx, err, "Failed to update quote status", slog.String("quote_id", quoteID))
		return nil, err
	}
	quote.Status = parsed
	quote.LastUpdatedAt = now
	s.LogInfo(ctx, "Quote status changed", slog.String("quote_id", quoteID), slog.String("status", string(parsed)))
	return quote, nil
}

func (s *quoteService) AttachReceipt(ctx context.Context, quoteID, path string) (*domain.Quote, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, apperrors.NewValidationError("receipt path cannot be empty")
	}
	return s.setReceipt(ctx, quoteID, &path)
}

func (s *quoteService) DetachReceipt(ctx context.Context, quoteID string) (*domain.Quote, error) {
	return s.setReceipt(ctx, quoteID, nil)
}

func (s *quoteService) setReceipt(ctx context.Context, quoteID string, path *string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	if err := s.quoteRepo.UpdateQuoteReceipt(ctx, quoteID, path, now); err != nil {
		s.LogError(ctx, err, "Failed to update quote receipt", slog.String("quote_id", quoteID))
		return nil, err
	}
	quote.ReceiptPath = path
	quote.LastUpdatedAt = now
	return quote, nil
}

func (s *quoteService) DeleteQuote(ctx context.Context, quoteID string) error {
	if _, err := s.quoteRepo.FindQuoteByID(ctx, quoteID); err != nil {
		return err
	}
	if err := s.quoteRepo.DeleteQuote(ctx, quoteID); err != nil {
		s.LogError(ctx, err, "Failed to delete quote", slog.String("quote_id", quoteID))
		return err
	}
	s.LogInfo(ctx, "Quote deleted", slog.String("quote_id", quoteID))
	return nil
}

func (s *quoteService) GetQuote(ctx context.Context, quoteID string) (*domain.ValuedQuote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	total, err := s.valuation.TotalCost(ctx, *quote)
	if err != nil {
		return nil, err
	}
	return &domain.ValuedQuote{Quote: *quote, TotalCost: total}, nil
}

func (s *quoteService) ListQuotesByStatus(ctx context.Context, status domain.QuoteStatus) ([]domain.ValuedQuote, error) {
	parsed, err := domain.ParseQuoteStatus(string(status))
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	quotes, err := s.quoteRepo.ListQuotesByStatus(ctx, parsed)
	if err != nil {
		s.LogError(ctx, err, "Failed to list quotes by status", slog.String("status", string(parsed)))
		return nil, err
	}
	return s.valuation.ValueQuotes(ctx, quotes)
}

func (s *quoteService) GetQuoteHistory(ctx context.Context, quoteID string) ([]domain.QuoteHistoryEntry, error) {
	if _, err := s.quoteRepo.FindQuoteByID(ctx, quoteID); err != nil {
		return nil, err
	}
	entries, err := s.quoteRepo.ListHistoryByQuote(ctx, quoteID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list quote history", slog.String("quote_id", quoteID))
		return nil, err
	}
	if entries == nil {
		return []domain.QuoteHistoryEntry{}, nil
	}
	pricing.OrderHistory(entries)
	return entries, nil
}

func (s *quoteService) GetProductHistory(ctx context.Context, productID string) ([]domain.QuoteHistoryEntry, error) {
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return nil, err
	}
	entries, err := s.quoteRepo.ListHistoryByProduct(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list product history", slog.String("product_id", productID))
		return nil, err
	}
	if entries == nil {
		return []domain.QuoteHistoryEntry{}, nil
	}
	pricing.OrderHistory(entries)
	return entries, nil
}

func (s *quoteService) GetQuoteTrend(ctx context.Context, quoteID string) (domain.Trend, error) {
	entries, err := s.GetQuoteHistory(ctx, quoteID)
	if err != nil {
		return "", err
	}
	return pricing.ClassifyTrend(entries), nil
}
