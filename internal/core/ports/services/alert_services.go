package services

import (
	"context"

	"github.com/SscSPs/buylog/internal/core/domain"
	"github.com/SscSPs/buylog/internal/dto"
)

// AlertEvaluatorSvc decides which alerts fire for a product's current best price.
type AlertEvaluatorSvc interface {
	// EvaluateAlerts returns the product's alerts that newly fire at bestPrice,
	// marked triggered but not persisted. A product without quotes fires nothing.
	EvaluateAlerts(ctx context.Context, productID string, best domain.BestPrice) ([]domain.PriceAlert, error)
}

// AlertSvcFacade combines all alert-related service interfaces
type AlertSvcFacade interface {
	AlertEvaluatorSvc

	CreateAlert(ctx context.Context, req dto.CreateAlertRequest) (*domain.PriceAlert, error)
	ListAlerts(ctx context.Context, filter domain.AlertFilter) ([]domain.PriceAlert, error)

	// DeactivateAlert stops evaluating an alert. A fired alert stays fired.
	DeactivateAlert(ctx context.Context, alertID string) (*domain.PriceAlert, error)

	// ResetAlert clears the trigger and re-activates the alert.
	ResetAlert(ctx context.Context, alertID string) (*domain.PriceAlert, error)

	// CheckAlerts evaluates a product's alerts against its current best price and persists the ones that fire.
	CheckAlerts(ctx context.Context, productID string) ([]domain.PriceAlert, error)
}
