package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/buylog/internal/apperrors"
	"github.com/SscSPs/buylog/internal/core/domain"
	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/dto"
	"github.com/SscSPs/buylog/internal/handlers"
	"github.com/SscSPs/buylog/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockRates      *MockExchangeRateService
	mockValuation  *MockValuationService
	mockCatalog    *MockCatalogService
	mockQuotes     *MockQuoteService
	mockAlerts     *MockAlertService
	mockComparison *MockComparisonService
	mockDedup      *MockDedupService
}

var pricedAt = time.Date(2025, 10, 17, 10, 30, 0, 0, time.UTC)

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockRates = new(MockExchangeRateService)
	suite.mockValuation = new(MockValuationService)
	suite.mockCatalog = new(MockCatalogService)
	suite.mockQuotes = new(MockQuoteService)
	suite.mockAlerts = new(MockAlertService)
	suite.mockComparison = new(MockComparisonService)
	suite.mockDedup = new(MockDedupService)

	cfg := &config.Config{IsProduction: true, RateLimit: "1000-M"}
	err := handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		ExchangeRate: suite.mockRates,
		Valuation:    suite.mockValuation,
		Catalog:      suite.mockCatalog,
		Quote:        suite.mockQuotes,
		Alert:        suite.mockAlerts,
		Comparison:   suite.mockComparison,
		Dedup:        suite.mockDedup,
	})
	suite.Require().NoError(err)
}

func (suite *HandlersTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) errorOf(w *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func sampleQuote() domain.Quote {
	return domain.Quote{
		QuoteID:      "q-1",
		VendorID:     "v-1",
		ProductID:    "p-1",
		BasePrice:    dec("100"),
		CurrencyCode: "EUR",
		ShippingCost: dec("10"),
		TaxRate:      dec("20"),
		Discount:     dec("10"),
		Status:       domain.QuoteConsidering,
		PricedAt:     pricedAt,
	}
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestCreateExchangeRate_Created() {
	suite.mockRates.On("CreateExchangeRate", mock.Anything, mock.MatchedBy(func(req dto.CreateExchangeRateRequest) bool {
		return req.CurrencyCode == "EUR" && req.Rate.Equal(dec("1.1")) && req.RateDate == "2025-10-01"
	})).Return(&domain.ExchangeRate{
		ExchangeRateID:        "r-1",
		CurrencyCode:          "EUR",
		RateDate:              time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		ReferenceUnitsPerUnit: dec("1.1"),
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/exchange-rates", map[string]string{
		"currencyCode": "EUR", "rate": "1.1", "rateDate": "2025-10-01",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-10-01", resp.RateDate)
	suite.True(resp.ReferenceUnitsPerUnit.Equal(dec("1.1")))
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateExchangeRate_DuplicateIsConflict() {
	suite.mockRates.On("CreateExchangeRate", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewDuplicateError("a EUR rate for 2025-10-01 already exists")).Once()

	w := suite.do(http.MethodPost, "/api/v1/exchange-rates", map[string]string{
		"currencyCode": "EUR", "rate": "1.1", "rateDate": "2025-10-01",
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.errorOf(w), "already exists")
}

func (suite *HandlersTestSuite) TestCreateExchangeRate_RejectsBadDate() {
	w := suite.do(http.MethodPost, "/api/v1/exchange-rates", map[string]string{
		"currencyCode": "EUR", "rate": "1.1", "rateDate": "01/10/2025",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRates.AssertNotCalled(suite.T(), "CreateExchangeRate", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestConvert_UsesAsOfDate() {
	asOf := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRates.On("Convert", mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(dec("100"))
	}), "EUR", asOf).Return(dec("110"), nil).Once()
	suite.mockRates.On("ReferenceCurrency").Return("USD")

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/convert?amount=100&currency=EUR&asOf=2025-10-01", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Converted.Equal(dec("110")))
	suite.Equal("USD", resp.ReferenceCurrency)
	suite.Equal("2025-10-01", resp.AsOf)
}

func (suite *HandlersTestSuite) TestConvert_MissingRateIsUnprocessable() {
	asOf := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRates.On("Convert", mock.Anything, mock.Anything, "JPY", asOf).
		Return(dec("0"), apperrors.NewRateNotFoundError("JPY", asOf)).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/convert?amount=5&currency=JPY&asOf=2025-10-01", nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal("no JPY rate on or before 2025-10-01: exchange rate not found", suite.errorOf(w))
}

func (suite *HandlersTestSuite) TestConvert_RequiresAmount() {
	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/convert?currency=EUR", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestListBrands_InternalErrorHidesDetails() {
	suite.mockCatalog.On("ListBrands", mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list brands", fmt.Errorf("connection refused"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/brands", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to list brands", suite.errorOf(w))
}

func (suite *HandlersTestSuite) TestListProducts_EmptyIsArray() {
	suite.mockCatalog.On("ListProducts", mock.Anything, "phone").Return(nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/products?name=phone", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlersTestSuite) TestSimilarProducts_PassesThreshold() {
	suite.mockDedup.On("FindSimilarProducts", mock.Anything, 0.5).Return([]domain.SimilarGroup{
		{IDs: []string{"p-1", "p-2"}, Names: []string{"Pixel 9 Pro", "Pixel 9 Pro 256GB"}},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/products/similar?threshold=0.5", nil)

	suite.Equal(http.StatusOK, w.Code)
	var groups []domain.SimilarGroup
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &groups))
	suite.Len(groups, 1)
	suite.mockCatalog.AssertNotCalled(suite.T(), "GetProduct", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestSimilarVendors_RejectsThresholdAboveOne() {
	w := suite.do(http.MethodGet, "/api/v1/vendors/similar?threshold=1.5", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestCreateQuote_Created() {
	suite.mockQuotes.On("CreateQuote", mock.Anything, mock.MatchedBy(func(req dto.CreateQuoteRequest) bool {
		return req.VendorID == "v-1" && req.ProductID == "p-1" && req.BasePrice.Equal(dec("100"))
	})).Return(&domain.ValuedQuote{Quote: sampleQuote(), TotalCost: dec("130.68")}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/quotes", map[string]any{
		"vendorID": "v-1", "productID": "p-1", "basePrice": "100", "shippingCost": "10", "taxRate": "20",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.QuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("q-1", resp.QuoteID)
	suite.True(resp.TotalCost.Equal(dec("130.68")))
	suite.mockQuotes.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateQuote_MissingVendorIsBadRequest() {
	w := suite.do(http.MethodPost, "/api/v1/quotes", map[string]any{"productID": "p-1", "basePrice": "100"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockQuotes.AssertNotCalled(suite.T(), "CreateQuote", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateQuote_ValidationErrorIsBadRequest() {
	suite.mockQuotes.On("CreateQuote", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("base price must be positive")).Once()

	w := suite.do(http.MethodPost, "/api/v1/quotes", map[string]any{
		"vendorID": "v-1", "productID": "p-1", "basePrice": "-5",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorOf(w), "base price must be positive")
}

func (suite *HandlersTestSuite) TestListQuotes_DefaultsToConsidering() {
	suite.mockQuotes.On("ListQuotesByStatus", mock.Anything, domain.QuoteConsidering).
		Return([]domain.ValuedQuote{{Quote: sampleQuote(), TotalCost: dec("130.68")}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/quotes", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockQuotes.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListQuotes_InvalidStatus() {
	w := suite.do(http.MethodGet, "/api/v1/quotes?status=shipped", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestUpdateQuotePrice_NotFound() {
	suite.mockQuotes.On("UpdateQuotePrice", mock.Anything, "missing", mock.Anything).
		Return(nil, apperrors.NewNotFoundError("quote missing not found")).Once()

	w := suite.do(http.MethodPatch, "/api/v1/quotes/missing/price", map[string]string{"basePrice": "90"})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestSetQuoteStatus() {
	ordered := sampleQuote()
	ordered.Status = domain.QuoteOrdered
	suite.mockQuotes.On("SetQuoteStatus", mock.Anything, "q-1", domain.QuoteOrdered).Return(&ordered, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/quotes/q-1/status", map[string]string{"status": "ordered"})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockQuotes.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestReceiptRoutes() {
	path := "/receipts/q-1.pdf"
	withReceipt := sampleQuote()
	withReceipt.ReceiptPath = &path
	suite.mockQuotes.On("AttachReceipt", mock.Anything, "q-1", path).Return(&withReceipt, nil).Once()
	suite.mockQuotes.On("DetachReceipt", mock.Anything, "q-1").Return(&domain.Quote{QuoteID: "q-1"}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/quotes/q-1/receipt", map[string]string{"path": path})
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), path)

	w = suite.do(http.MethodDelete, "/api/v1/quotes/q-1/receipt", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.NotContains(w.Body.String(), "receiptPath")
}

func (suite *HandlersTestSuite) TestDeleteQuote() {
	suite.mockQuotes.On("DeleteQuote", mock.Anything, "q-1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/quotes/q-1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestGetQuoteTrend() {
	suite.mockQuotes.On("GetQuoteTrend", mock.Anything, "q-1").Return(domain.TrendDown, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/quotes/q-1/trend", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"quoteID":"q-1","trend":"DOWN"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestGetBestPrice_NoQuotes() {
	suite.mockValuation.On("BestPrice", mock.Anything, "p-1").Return(&domain.BestPrice{}, nil).Once()
	suite.mockRates.On("ReferenceCurrency").Return("USD")

	w := suite.do(http.MethodGet, "/api/v1/products/p-1/best-price", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"productID":"p-1","referenceCurrency":"USD"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestGetBestPrice_Found() {
	suite.mockValuation.On("BestPrice", mock.Anything, "p-1").
		Return(&domain.BestPrice{Found: true, Quote: sampleQuote(), Amount: dec("130.6800")}, nil).Once()
	suite.mockRates.On("ReferenceCurrency").Return("USD")

	w := suite.do(http.MethodGet, "/api/v1/products/p-1/best-price", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BestPriceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Quote)
	suite.Equal("q-1", resp.Quote.QuoteID)
	suite.True(resp.Amount.Equal(dec("130.68")))
}

func (suite *HandlersTestSuite) TestExportComparison_ServesSpreadsheet() {
	suite.mockComparison.On("ExportComparisonXLSX", mock.Anything, "p-1", mock.Anything).
		Return([]byte("PK-xlsx")).Once()

	w := suite.do(http.MethodGet, "/api/v1/products/p-1/comparison/xlsx", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "comparison-p-1.xlsx")
	suite.Equal("PK-xlsx", w.Body.String())
}

func (suite *HandlersTestSuite) TestExportComparison_UnknownProduct() {
	suite.mockComparison.On("ExportComparisonXLSX", mock.Anything, "nope", mock.Anything).
		Return(apperrors.NewNotFoundError("product nope not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/products/nope/comparison/xlsx", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestCheckAlerts_ReturnsFired() {
	triggeredAt := pricedAt
	suite.mockAlerts.On("CheckAlerts", mock.Anything, "p-1").Return([]domain.PriceAlert{
		{AlertID: "a-1", ProductID: "p-1", Threshold: dec("150"), IsActive: true, IsTriggered: true, TriggeredAt: &triggeredAt},
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/products/p-1/alerts/check", nil)

	suite.Equal(http.StatusOK, w.Code)
	var fired []dto.AlertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &fired))
	suite.Require().Len(fired, 1)
	suite.True(fired[0].IsTriggered)
}

func (suite *HandlersTestSuite) TestListAlerts_Filter() {
	suite.mockAlerts.On("ListAlerts", mock.Anything, domain.AlertsActive).Return([]domain.PriceAlert{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/alerts?filter=active", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())

	w = suite.do(http.MethodGet, "/api/v1/alerts?filter=fired", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAlerts.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestResetAlert_NotFound() {
	suite.mockAlerts.On("ResetAlert", mock.Anything, "a-9").Return(nil, apperrors.NewNotFoundError("alert a-9 not found")).Once()

	w := suite.do(http.MethodPost, "/api/v1/alerts/a-9/reset", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func TestRegisterRoutes_RateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	rates := new(MockExchangeRateService)
	rates.On("ListExchangeRates", mock.Anything, "").Return([]domain.ExchangeRate{}, nil)

	err := handlers.RegisterRoutes(router, &config.Config{IsProduction: true, RateLimit: "1-M"},
		&portssvc.ServiceContainer{ExchangeRate: rates})
	if err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}

	codes := make([]int, 2)
	for i := range codes {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/exchange-rates", nil)
		router.ServeHTTP(w, req)
		codes[i] = w.Code
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("expected [200 429], got %v", codes)
	}
}

func TestRegisterRoutes_InvalidRateLimit(t *testing.T) {
	err := handlers.RegisterRoutes(gin.New(), &config.Config{RateLimit: "lots"}, &portssvc.ServiceContainer{})
	if err == nil {
		t.Fatal("expected an error for an unparsable rate limit")
	}
}
