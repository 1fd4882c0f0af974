package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/dto"
	"github.com/SscSPs/buylog/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// productPricingHandler serves the valuation views of a product.
type productPricingHandler struct {
	exchangeRateService portssvc.CurrencyConverterSvc
	valuationService    portssvc.ValuationSvc
	quoteService        portssvc.QuoteReaderSvc
	comparisonService   portssvc.ComparisonSvc
	alertService        portssvc.AlertSvcFacade
}

// registerProductPricingRoutes adds best price, history, comparison and alert check routes to the products group.
func registerProductPricingRoutes(products *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &productPricingHandler{
		exchangeRateService: services.ExchangeRate,
		valuationService:    services.Valuation,
		quoteService:        services.Quote,
		comparisonService:   services.Comparison,
		alertService:        services.Alert,
	}

	products.GET("/:productID/best-price", h.getBestPrice)
	products.GET("/:productID/history", h.getProductHistory)
	products.GET("/:productID/comparison", h.getComparison)
	products.GET("/:productID/comparison/xlsx", h.exportComparison)
	products.POST("/:productID/alerts/check", h.checkAlerts)
}

// getBestPrice godoc
// @Summary Get the cheapest quote of a product
// @Description Quote is omitted when the product has no quotes
// @Tags products
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 200 {object} dto.BestPriceResponse
// @Failure 422 {object} map[string]string "A quote's currency has no rate"
// @Router /products/{productID}/best-price [get]
func (h *productPricingHandler) getBestPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	best, err := h.valuationService.BestPrice(c.Request.Context(), productID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute best price")
		return
	}
	c.JSON(http.StatusOK, dto.ToBestPriceResponse(productID, h.exchangeRateService.ReferenceCurrency(), *best))
}

// getProductHistory godoc
// @Summary Get the price history of every quote of a product
// @Tags products
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 200 {array} domain.QuoteHistoryEntry
// @Router /products/{productID}/history [get]
func (h *productPricingHandler) getProductHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entries, err := h.quoteService.GetProductHistory(c.Request.Context(), c.Param("productID"))
	if err != nil {
		respondError(c, logger, err, "Failed to get product history")
		return
	}
	c.JSON(http.StatusOK, nonNil(entries))
}

// getComparison godoc
// @Summary Rank every quote of a product by total cost
// @Tags products
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 200 {object} domain.ProductComparison
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{productID}/comparison [get]
func (h *productPricingHandler) getComparison(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	comparison, err := h.comparisonService.CompareProduct(c.Request.Context(), c.Param("productID"))
	if err != nil {
		respondError(c, logger, err, "Failed to compare quotes")
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// exportComparison godoc
// @Summary Download the quote comparison of a product as a spreadsheet
// @Tags products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   productID path string true "Product ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{productID}/comparison/xlsx [get]
func (h *productPricingHandler) exportComparison(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	// Buffered so a failure can still be reported as JSON.
	var buf bytes.Buffer
	if err := h.comparisonService.ExportComparisonXLSX(c.Request.Context(), productID, &buf); err != nil {
		respondError(c, logger, err, "Failed to export comparison")
		return
	}

	logger.Info("Comparison exported", slog.String("product_id", productID), slog.Int("bytes", buf.Len()))
	c.Header("Content-Disposition", `attachment; filename="comparison-`+productID+`.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// checkAlerts godoc
// @Summary Evaluate a product's alerts against its current best price
// @Description Returns the alerts that fired on this check
// @Tags products
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 200 {array} dto.AlertResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{productID}/alerts/check [post]
func (h *productPricingHandler) checkAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	fired, err := h.alertService.CheckAlerts(c.Request.Context(), productID)
	if err != nil {
		respondError(c, logger, err, "Failed to check alerts")
		return
	}
	logger.Info("Alerts checked", slog.String("product_id", productID), slog.Int("fired", len(fired)))
	c.JSON(http.StatusOK, dto.ToListAlertResponse(fired))
}
