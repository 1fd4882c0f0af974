package repositories

import (
	"context"

	"github.com/SscSPs/buylog/internal/core/domain"
)

// AlertReader defines read operations for price alert data
type AlertReader interface {
	FindAlertByID(ctx context.Context, alertID string) (*domain.PriceAlert, error)
	ListAlertsByProduct(ctx context.Context, productID string) ([]domain.PriceAlert, error)
	ListAlerts(ctx context.Context, filter domain.AlertFilter) ([]domain.PriceAlert, error)
}

// AlertWriter defines write operations for price alert data
type AlertWriter interface {
	SaveAlert(ctx context.Context, alert domain.PriceAlert) error
	// UpdateAlert overwrites the active and trigger state of an alert.
	UpdateAlert(ctx context.Context, alert domain.PriceAlert) error
	// MarkAlertsTriggered persists the trigger state of several alerts in one transaction.
	MarkAlertsTriggered(ctx context.Context, alerts []domain.PriceAlert) error
}

// AlertRepositoryFacade combines all alert-related repository interfaces
type AlertRepositoryFacade interface {
	AlertReader
	AlertWriter
}
