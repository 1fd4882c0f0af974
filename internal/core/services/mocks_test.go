package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/buylog/internal/core/domain"
	portsrepo "github.com/SscSPs/buylog/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fixedNow is the clock every suite runs on.
var fixedNow = time.Date(2025, 10, 17, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindLatestRate(ctx context.Context, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context, currencyCode *string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock CatalogRepository ---
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindBrandByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	args := m.Called(ctx, brandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *MockCatalogRepository) FindBrandByName(ctx context.Context, name string) (*domain.Brand, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *MockCatalogRepository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Brand), args.Error(1)
}

func (m *MockCatalogRepository) SaveBrand(ctx context.Context, brand domain.Brand) error {
	return m.Called(ctx, brand).Error(0)
}

func (m *MockCatalogRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context, nameFilter string) ([]domain.Product, error) {
	args := m.Called(ctx, nameFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockCatalogRepository) UpdateProductCategory(ctx context.Context, productID string, category *string, updatedAt time.Time) error {
	return m.Called(ctx, productID, category, updatedAt).Error(0)
}

func (m *MockCatalogRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockCatalogRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockCatalogRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	return m.Called(ctx, vendor).Error(0)
}

// --- Mock QuoteRepository ---
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) ListQuotesByProduct(ctx context.Context, productID string) ([]domain.Quote, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) ListQuotesByStatus(ctx context.Context, status domain.QuoteStatus) ([]domain.Quote, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) SaveQuoteChange(ctx context.Context, change portsrepo.QuoteChange) error {
	return m.Called(ctx, change).Error(0)
}

func (m *MockQuoteRepository) UpdateQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus, updatedAt time.Time) error {
	return m.Called(ctx, quoteID, status, updatedAt).Error(0)
}

func (m *MockQuoteRepository) UpdateQuoteReceipt(ctx context.Context, quoteID string, receiptPath *string, updatedAt time.Time) error {
	return m.Called(ctx, quoteID, receiptPath, updatedAt).Error(0)
}

func (m *MockQuoteRepository) DeleteQuote(ctx context.Context, quoteID string) error {
	return m.Called(ctx, quoteID).Error(0)
}

func (m *MockQuoteRepository) ListHistoryByQuote(ctx context.Context, quoteID string) ([]domain.QuoteHistoryEntry, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuoteHistoryEntry), args.Error(1)
}

func (m *MockQuoteRepository) ListHistoryByProduct(ctx context.Context, productID string) ([]domain.QuoteHistoryEntry, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuoteHistoryEntry), args.Error(1)
}

// --- Mock AlertRepository ---
type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) FindAlertByID(ctx context.Context, alertID string) (*domain.PriceAlert, error) {
	args := m.Called(ctx, alertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceAlert), args.Error(1)
}

func (m *MockAlertRepository) ListAlertsByProduct(ctx context.Context, productID string) ([]domain.PriceAlert, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceAlert), args.Error(1)
}

func (m *MockAlertRepository) ListAlerts(ctx context.Context, filter domain.AlertFilter) ([]domain.PriceAlert, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceAlert), args.Error(1)
}

func (m *MockAlertRepository) SaveAlert(ctx context.Context, alert domain.PriceAlert) error {
	return m.Called(ctx, alert).Error(0)
}

func (m *MockAlertRepository) UpdateAlert(ctx context.Context, alert domain.PriceAlert) error {
	return m.Called(ctx, alert).Error(0)
}

func (m *MockAlertRepository) MarkAlertsTriggered(ctx context.Context, alerts []domain.PriceAlert) error {
	return m.Called(ctx, alerts).Error(0)
}
