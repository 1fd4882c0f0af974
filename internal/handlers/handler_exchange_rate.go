package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/dto"
	"github.com/SscSPs/buylog/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{exchangeRateService: ers}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/convert", h.convert)
	}
}

// createExchangeRate godoc
// @Summary Record a daily exchange rate
// @Description Stores how many reference-currency units one unit of a currency buys on a date
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "A rate for that currency and date already exists"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	logger.Info("Received request to create exchange rate",
		slog.String("currency", req.CurrencyCode),
		slog.String("rate", req.Rate.String()),
		slog.String("rate_date", req.RateDate),
	)

	rate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create exchange rate")
		return
	}

	logger.Info("Exchange rate created successfully", slog.String("rate_id", rate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Lists stored rates newest first, optionally for a single currency
// @Tags exchange rates
// @Produce  json
// @Param   currency query string false "Currency code (3 letters)"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Query("currency")

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context(), code)
	if err != nil {
		respondError(c, logger, err, "Failed to list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// convert godoc
// @Summary Convert an amount into the reference currency
// @Description Uses the latest rate dated on or before asOf (default today)
// @Tags exchange rates
// @Produce  json
// @Param   amount   query string true  "Amount to convert"
// @Param   currency query string true  "Currency the amount is held in"
// @Param   asOf     query string false "Valuation date (YYYY-MM-DD)"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 422 {object} map[string]string "No rate on or before the date"
// @Router /exchange-rates/convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ConvertQuery
	if !bindQuery(c, logger, &query) {
		return
	}

	amount, err := decimal.NewFromString(query.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount: " + err.Error()})
		return
	}
	asOf, err := dto.ParseDate(query.AsOf, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date: " + err.Error()})
		return
	}

	converted, err := h.exchangeRateService.Convert(c.Request.Context(), amount, query.CurrencyCode, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:            amount,
		CurrencyCode:      query.CurrencyCode,
		AsOf:              asOf.Format(time.DateOnly),
		Converted:         converted,
		ReferenceCurrency: h.exchangeRateService.ReferenceCurrency(),
	})
}
