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

// alertHandler handles HTTP requests related to price alerts.
type alertHandler struct {
	alertService portssvc.AlertSvcFacade
}

func newAlertHandler(as portssvc.AlertSvcFacade) *alertHandler {
	return &alertHandler{alertService: as}
}

// registerAlertRoutes registers routes related to price alerts.
func registerAlertRoutes(rg *gin.RouterGroup, alertService portssvc.AlertSvcFacade) {
	h := newAlertHandler(alertService)

	alerts := rg.Group("/alerts")
	{
		alerts.POST("", h.createAlert)
		alerts.GET("", h.listAlerts)
		alerts.POST("/:alertID/deactivate", h.deactivateAlert)
		alerts.POST("/:alertID/reset", h.resetAlert)
	}
}

// createAlert godoc
// @Summary Watch a product's best price
// @Description The alert fires once when the best price is at or below the threshold (reference currency)
// @Tags alerts
// @Accept  json
// @Produce  json
// @Param   alert body dto.CreateAlertRequest true "Alert details"
// @Success 201 {object} dto.AlertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /alerts [post]
func (h *alertHandler) createAlert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAlertRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	alert, err := h.alertService.CreateAlert(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create alert")
		return
	}
	logger.Info("Alert created", slog.String("alert_id", alert.AlertID))
	c.JSON(http.StatusCreated, dto.ToAlertResponse(*alert))
}

// listAlerts godoc
// @Summary List price alerts
// @Tags alerts
// @Produce  json
// @Param   filter query string false "all, active or triggered (default all)"
// @Success 200 {array} dto.AlertResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /alerts [get]
func (h *alertHandler) listAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ListAlertsQuery
	if !bindQuery(c, logger, &query) {
		return
	}
	filter := domain.AlertsAll
	if query.Filter != "" {
		filter = domain.AlertFilter(query.Filter)
	}

	alerts, err := h.alertService.ListAlerts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to list alerts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAlertResponse(alerts))
}

// deactivateAlert godoc
// @Summary Stop evaluating an alert
// @Description A fired alert keeps its trigger
// @Tags alerts
// @Produce  json
// @Param   alertID path string true "Alert ID"
// @Success 200 {object} dto.AlertResponse
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{alertID}/deactivate [post]
func (h *alertHandler) deactivateAlert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	alert, err := h.alertService.DeactivateAlert(c.Request.Context(), c.Param("alertID"))
	if err != nil {
		respondError(c, logger, err, "Failed to deactivate alert")
		return
	}
	c.JSON(http.StatusOK, dto.ToAlertResponse(*alert))
}

// resetAlert godoc
// @Summary Clear an alert's trigger and re-activate it
// @Tags alerts
// @Produce  json
// @Param   alertID path string true "Alert ID"
// @Success 200 {object} dto.AlertResponse
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{alertID}/reset [post]
func (h *alertHandler) resetAlert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	alert, err := h.alertService.ResetAlert(c.Request.Context(), c.Param("alertID"))
	if err != nil {
		respondError(c, logger, err, "Failed to reset alert")
		return
	}
	c.JSON(http.StatusOK, dto.ToAlertResponse(*alert))
}
