package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/buylog/internal/apperrors"
	"github.com/SscSPs/buylog/internal/core/domain"
	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/core/services"
	"github.com/SscSPs/buylog/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockExchangeRateRepository
	service      portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo, domain.DefaultPricing(), services.WithClock(fixedClock))
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_ReferenceCurrencyIsIdentity() {
	ctx := context.Background()
	amount := dec("123.456789")

	got, err := suite.service.Convert(ctx, amount, "USD", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.True(amount.Equal(got))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindLatestRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_UsesLatestRateOnOrBeforeDate() {
	ctx := context.Background()
	asOf := time.Date(2025, 10, 17, 18, 45, 0, 0, time.UTC)
	day := time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)
	rate := &domain.ExchangeRate{CurrencyCode: "EUR", RateDate: day, ReferenceUnitsPerUnit: dec("1.085")}

	suite.mockRateRepo.On("FindLatestRate", ctx, "EUR", day).Return(rate, nil).Once()

	got, err := suite.service.Convert(ctx, dec("100"), "eur", asOf)

	suite.Require().NoError(err)
	suite.True(dec("108.5").Equal(got), "got %s", got)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_MissingRateIsNotDefaulted() {
	ctx := context.Background()
	day := time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)

	suite.mockRateRepo.On("FindLatestRate", ctx, "GBP", day).Return(nil, apperrors.ErrRateNotFound).Once()

	got, err := suite.service.Convert(ctx, dec("50"), "GBP", day)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateNotFound)
	suite.Contains(err.Error(), "GBP")
	suite.Contains(err.Error(), "2025-10-17")
	suite.True(got.IsZero())
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_RepositoryFailure() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindLatestRate", ctx, "GBP", mock.Anything).Return(nil, assert.AnError).Once()

	_, err := suite.service.Convert(ctx, dec("50"), "GBP", fixedNow)

	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrRateNotFound)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_Success() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{CurrencyCode: "eur", Rate: dec("1.085"), RateDate: "2025-10-01"}

	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.CurrencyCode == "EUR" &&
			r.RateDate.Equal(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)) &&
			r.ReferenceUnitsPerUnit.Equal(dec("1.085"))
	})).Return(nil).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(rate.ExchangeRateID)
	suite.Equal(fixedNow, rate.CreatedAt)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_DefaultsToToday() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{CurrencyCode: "JPY", Rate: dec("0.0067")}

	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.AnythingOfType("domain.ExchangeRate")).Return(nil).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC), rate.RateDate)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_ValidationErrors() {
	ctx := context.Background()
	cases := map[string]dto.CreateExchangeRateRequest{
		"reference currency": {CurrencyCode: "USD", Rate: dec("1")},
		"zero rate":          {CurrencyCode: "EUR", Rate: dec("0")},
		"negative rate":      {CurrencyCode: "EUR", Rate: dec("-1.2")},
		"bad code":           {CurrencyCode: "EURO", Rate: dec("1.2")},
		"bad date":           {CurrencyCode: "EUR", Rate: dec("1.2"), RateDate: "17/10/2025"},
	}
	for name, req := range cases {
		suite.Run(name, func() {
			rate, err := suite.service.CreateExchangeRate(ctx, req)
			suite.Nil(rate)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_Duplicate() {
	ctx := context.Background()
	dup := apperrors.NewDuplicateError("EUR rate for 2025-10-17 already exists")
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.AnythingOfType("domain.ExchangeRate")).Return(dup).Once()

	_, err := suite.service.CreateExchangeRate(ctx, dto.CreateExchangeRateRequest{CurrencyCode: "EUR", Rate: dec("1.08")})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates_FiltersByNormalizedCode() {
	ctx := context.Background()
	suite.mockRateRepo.On("ListExchangeRates", ctx, mock.MatchedBy(func(code *string) bool {
		return code != nil && *code == "EUR"
	})).Return(nil, nil).Once()

	rates, err := suite.service.ListExchangeRates(ctx, " eur ")

	suite.Require().NoError(err)
	suite.NotNil(rates)
	suite.Empty(rates)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
