package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/buylog/internal/core/domain"
	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/dto"
	"github.com/SscSPs/buylog/internal/middleware"
	"github.com/gin-gonic/gin"
)

// quoteHandler handles HTTP requests related to vendor quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{quoteService: qs}
}

// registerQuoteRoutes registers routes related to quotes.
func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.createQuote)
		quotes.GET("", h.listQuotes)
		quotes.GET("/:quoteID", h.getQuote)
		quotes.DELETE("/:quoteID", h.deleteQuote)
		quotes.PATCH("/:quoteID/price", h.updateQuotePrice)
		quotes.PATCH("/:quoteID/status", h.setQuoteStatus)
		quotes.PUT("/:quoteID/receipt", h.attachReceipt)
		quotes.DELETE("/:quoteID/receipt", h.detachReceipt)
		quotes.GET("/:quoteID/history", h.getQuoteHistory)
		quotes.GET("/:quoteID/trend", h.getQuoteTrend)
	}
}

// createQuote godoc
// @Summary Record a vendor quote
// @Description Currency and discount are taken from the vendor. Writes a creation history entry and fires any alert the new best price reaches.
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quote body dto.CreateQuoteRequest true "Quote details"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Vendor or product not found"
// @Failure 422 {object} map[string]string "No exchange rate for the vendor currency"
// @Router /quotes [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuoteRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	logger.Info("Received request to create quote",
		slog.String("vendor_id", req.VendorID),
		slog.String("product_id", req.ProductID),
		slog.String("base_price", req.BasePrice.String()),
	)

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create quote")
		return
	}

	logger.Info("Quote created successfully", slog.String("quote_id", quote.Quote.QuoteID))
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(*quote))
}

// listQuotes godoc
// @Summary List quotes by purchasing status
// @Tags quotes
// @Produce  json
// @Param   status query string false "considering, ordered or received (default considering)"
// @Success 200 {array} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Router /quotes [get]
func (h *quoteHandler) listQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := domain.QuoteConsidering
	if raw := c.Query("status"); raw != "" {
		parsed, err := domain.ParseQuoteStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status = parsed
	}

	quotes, err := h.quoteService.ListQuotesByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, logger, err, "Failed to list quotes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListQuoteResponse(quotes))
}

// getQuote godoc
// @Summary Get a quote with its reference-currency cost
// @Tags quotes
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} map[string]string "Quote not found"
// @Router /quotes/{quoteID} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quote, err := h.quoteService.GetQuote(c.Request.Context(), c.Param("quoteID"))
	if err != nil {
		respondError(c, logger, err, "Failed to get quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(*quote))
}

// updateQuotePrice godoc
// @Summary Change the price of a quote
// @Description Only changed price fields produce a history entry and an alert evaluation
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Param   price body dto.UpdateQuotePriceRequest true "Fields to change"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Quote not found"
// @Router /quotes/{quoteID}/price [patch]
func (h *quoteHandler) updateQuotePrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")
	var req dto.UpdateQuotePriceRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	quote, err := h.quoteService.UpdateQuotePrice(c.Request.Context(), quoteID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update quote price")
		return
	}
	logger.Info("Quote price updated", slog.String("quote_id", quoteID))
	c.JSON(http.StatusOK, dto.ToQuoteResponse(*quote))
}

// setQuoteStatus godoc
// @Summary Move a quote through the purchasing flow
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Param   status body dto.SetQuoteStatusRequest true "New status"
// @Success 200 {object} domain.Quote
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Quote not found"
// @Router /quotes/{quoteID}/status [patch]
func (h *quoteHandler) setQuoteStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetQuoteStatusRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	status, err := domain.ParseQuoteStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.quoteService.SetQuoteStatus(c.Request.Context(), c.Param("quoteID"), status)
	if err != nil {
		respondError(c, logger, err, "Failed to set quote status")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// attachReceipt godoc
// @Summary Attach a receipt to a quote
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Param   receipt body dto.AttachReceiptRequest true "Receipt location"
// @Success 200 {object} domain.Quote
// @Failure 404 {object} map[string]string "Quote not found"
// @Router /quotes/{quoteID}/receipt [put]
func (h *quoteHandler) attachReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AttachReceiptRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	quote, err := h.quoteService.AttachReceipt(c.Request.Context(), c.Param("quoteID"), req.Path)
	if err != nil {
		respondError(c, logger, err, "Failed to attach receipt")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// detachReceipt godoc
// @Summary Remove the receipt of a quote
// @Tags quotes
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Success 200 {object} domain.Quote
// @Failure 404 {object} map[string]string "Quote not found"
// @Router /quotes/{quoteID}/receipt [delete]
func (h *quoteHandler) detachReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quote, err := h.quoteService.DetachReceipt(c.Request.Context(), c.Param("quoteID"))
	if err != nil {
		respondError(c, logger, err, "Failed to detach receipt")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// deleteQuote godoc
// @Summary Delete a quote and its history
// @Tags quotes
// @Param   quoteID path string true "Quote ID"
// @Success 204
// @Failure 404 {object} map[string]string "Quote not found"
// @Router /quotes/{quoteID} [delete]
func (h *quoteHandler) deleteQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")
	if err := h.quoteService.DeleteQuote(c.Request.Context(), quoteID); err != nil {
		respondError(c, logger, err, "Failed to delete quote")
		return
	}
	logger.Info("Quote deleted", slog.String("quote_id", quoteID))
	c.Status(http.StatusNoContent)
}

// getQuoteHistory godoc
// @Summary Get the price history of a quote
// @Tags quotes
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Success 200 {array} domain.QuoteHistoryEntry
// @Failure 404 {object} map[string]string "Quote not found"
// @Router /quotes/{quoteID}/history [get]
func (h *quoteHandler) getQuoteHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entries, err := h.quoteService.GetQuoteHistory(c.Request.Context(), c.Param("quoteID"))
	if err != nil {
		respondError(c, logger, err, "Failed to get quote history")
		return
	}
	c.JSON(http.StatusOK, nonNil(entries))
}

// getQuoteTrend godoc
// @Summary Classify the latest price change of a quote
// @Tags quotes
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Success 200 {object} dto.TrendResponse
// @Failure 404 {object} map[string]string "Quote not found"
// @Router /quotes/{quoteID}/trend [get]
func (h *quoteHandler) getQuoteTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")
	trend, err := h.quoteService.GetQuoteTrend(c.Request.Context(), quoteID)
	if err != nil {
		respondError(c, logger, err, "Failed to get quote trend")
		return
	}
	c.JSON(http.StatusOK, dto.TrendResponse{QuoteID: quoteID, Trend: trend})
}
