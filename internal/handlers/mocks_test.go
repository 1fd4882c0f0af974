package handlers_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/buylog/internal/core/domain"
	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) ReferenceCurrency() string {
	return m.Called().String(0)
}

func (m *MockExchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, currencyCode string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, currencyCode, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExchangeRateService) GetRateAsOf(ctx context.Context, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock ValuationService ---
type MockValuationService struct {
	mock.Mock
}

func (m *MockValuationService) TotalCost(ctx context.Context, quote domain.Quote) (decimal.Decimal, error) {
	args := m.Called(ctx, quote)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockValuationService) ValueQuotes(ctx context.Context, quotes []domain.Quote) ([]domain.ValuedQuote, error) {
	args := m.Called(ctx, quotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValuedQuote), args.Error(1)
}

func (m *MockValuationService) BestPrice(ctx context.Context, productID string) (*domain.BestPrice, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BestPrice), args.Error(1)
}

var _ portssvc.ValuationSvc = (*MockValuationService)(nil)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Brand), args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogService) ListProducts(ctx context.Context, nameFilter string) ([]domain.Product, error) {
	args := m.Called(ctx, nameFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogService) GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockCatalogService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockCatalogService) CreateBrand(ctx context.Context, req dto.CreateBrandRequest) (*domain.Brand, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogService) SetProductCategory(ctx context.Context, productID string, category *string) (*domain.Product, error) {
	args := m.Called(ctx, productID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

// --- Mock QuoteService ---
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) GetQuote(ctx context.Context, quoteID string) (*domain.ValuedQuote, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValuedQuote), args.Error(1)
}

func (m *MockQuoteService) ListQuotesByStatus(ctx context.Context, status domain.QuoteStatus) ([]domain.ValuedQuote, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValuedQuote), args.Error(1)
}

func (m *MockQuoteService) GetQuoteHistory(ctx context.Context, quoteID string) ([]domain.QuoteHistoryEntry, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuoteHistoryEntry), args.Error(1)
}

func (m *MockQuoteService) GetProductHistory(ctx context.Context, productID string) ([]domain.QuoteHistoryEntry, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuoteHistoryEntry), args.Error(1)
}

func (m *MockQuoteService) GetQuoteTrend(ctx context.Context, quoteID string) (domain.Trend, error) {
	args := m.Called(ctx, quoteID)
	return args.Get(0).(domain.Trend), args.Error(1)
}

func (m *MockQuoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*domain.ValuedQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValuedQuote), args.Error(1)
}

func (m *MockQuoteService) UpdateQuotePrice(ctx context.Context, quoteID string, req dto.UpdateQuotePriceRequest) (*domain.ValuedQuote, error) {
	args := m.Called(ctx, quoteID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValuedQuote), args.Error(1)
}

func (m *MockQuoteService) SetQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteService) AttachReceipt(ctx context.Context, quoteID, path string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteService) DetachReceipt(ctx context.Context, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteService) DeleteQuote(ctx context.Context, quoteID string) error {
	return m.Called(ctx, quoteID).Error(0)
}

var _ portssvc.QuoteSvcFacade = (*MockQuoteService)(nil)

// --- Mock AlertService ---
type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) EvaluateAlerts(ctx context.Context, productID string, best domain.BestPrice) ([]domain.PriceAlert, error) {
	args := m.Called(ctx, productID, best)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceAlert), args.Error(1)
}

func (m *MockAlertService) CreateAlert(ctx context.Context, req dto.CreateAlertRequest) (*domain.PriceAlert, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceAlert), args.Error(1)
}

func (m *MockAlertService) ListAlerts(ctx context.Context, filter domain.AlertFilter) ([]domain.PriceAlert, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceAlert), args.Error(1)
}

func (m *MockAlertService) DeactivateAlert(ctx context.Context, alertID string) (*domain.PriceAlert, error) {
	args := m.Called(ctx, alertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceAlert), args.Error(1)
}

func (m *MockAlertService) ResetAlert(ctx context.Context, alertID string) (*domain.PriceAlert, error) {
	args := m.Called(ctx, alertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceAlert), args.Error(1)
}

func (m *MockAlertService) CheckAlerts(ctx context.Context, productID string) ([]domain.PriceAlert, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceAlert), args.Error(1)
}

var _ portssvc.AlertSvcFacade = (*MockAlertService)(nil)

// --- Mock ComparisonService ---
type MockComparisonService struct {
	mock.Mock
}

func (m *MockComparisonService) CompareProduct(ctx context.Context, productID string) (*domain.ProductComparison, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductComparison), args.Error(1)
}

func (m *MockComparisonService) ExportComparisonXLSX(ctx context.Context, productID string, w io.Writer) error {
	args := m.Called(ctx, productID, w)
	if payload, ok := args.Get(0).([]byte); ok {
		_, _ = w.Write(payload)
		return nil
	}
	return args.Error(0)
}

var _ portssvc.ComparisonSvc = (*MockComparisonService)(nil)

// --- Mock DedupService ---
type MockDedupService struct {
	mock.Mock
}

func (m *MockDedupService) FindSimilarProducts(ctx context.Context, threshold float64) ([]domain.SimilarGroup, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SimilarGroup), args.Error(1)
}

func (m *MockDedupService) FindSimilarVendors(ctx context.Context, threshold float64) ([]domain.SimilarGroup, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SimilarGroup), args.Error(1)
}

var _ portssvc.DedupSvc = (*MockDedupService)(nil)
