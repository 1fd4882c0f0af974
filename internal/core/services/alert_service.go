package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/buylog/internal/apperrors"
	"github.com/SscSPs/buylog/internal/core/domain"
	portsrepo "github.com/SscSPs/buylog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/dto"
	"github.com/SscSPs/buylog/internal/utils/pricing"
	"github.com/google/uuid"
)

// alertService manages price alerts and decides when they fire.
type alertService struct {
	BaseService
	alertRepo   portsrepo.AlertRepositoryFacade
	productRepo portsrepo.ProductReader
	valuation   portssvc.ValuationSvc
}

// NewAlertService creates a new alert service.
func NewAlertService(alertRepo portsrepo.AlertRepositoryFacade, productRepo portsrepo.ProductReader, valuation portssvc.ValuationSvc, options ...ServiceOption) portssvc.AlertSvcFacade {
	return &alertService{
		BaseService: newBaseService(options),
		alertRepo:   alertRepo,
		productRepo: productRepo,
		valuation:   valuation,
	}
}

var _ portssvc.AlertSvcFacade = (*alertService)(nil)

func (s *alertService) EvaluateAlerts(ctx context.Context, productID string, best domain.BestPrice) ([]domain.PriceAlert, error) {
	if !best.Found {
		return nil, nil
	}
	alerts, err := s.alertRepo.ListAlertsByProduct(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list alerts", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to list alerts of product %s: %w", productID, err)
	}
	amount := best.Amount
	return pricing.EvaluateAlerts(&amount, alerts, s.Now()), nil
}

func (s *alertService) CreateAlert(ctx context.Context, req dto.CreateAlertRequest) (*domain.PriceAlert, error) {
	if !req.Threshold.IsPositive() {
		return nil, apperrors.NewValidationError("alert threshold must be positive")
	}
	if _, err := s.productRepo.FindProductByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	now := s.Now()
	alert := domain.PriceAlert{
		AlertID:   uuid.NewString(),
		ProductID: req.ProductID,
		Threshold: req.Threshold,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.alertRepo.SaveAlert(ctx, alert); err != nil {
		s.LogError(ctx, err, "Failed to save alert", slog.String("product_id", req.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Price alert created",
		slog.String("alert_id", alert.AlertID),
		slog.String("product_id", alert.ProductID),
		slog.String("threshold", alert.Threshold.String()))
	return &alert, nil
}

func (s *alertService) ListAlerts(ctx context.Context, filter domain.AlertFilter) ([]domain.PriceAlert, error) {
	switch filter {
	case "":
		filter = domain.AlertsAll
	case domain.AlertsAll, domain.AlertsActive, domain.AlertsTriggered:
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown alert filter '%s'", filter))
	}
	alerts, err := s.alertRepo.ListAlerts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list alerts", slog.String("filter", string(filter)))
		return nil, err
	}
	if alerts == nil {
		return []domain.PriceAlert{}, nil
	}
	return alerts, nil
}

func (s *alertService) DeactivateAlert(ctx context.Context, alertID string) (*domain.PriceAlert, error) {
	return s.changeAlert(ctx, alertID, func(a *domain.PriceAlert) {
		a.IsActive = false
	})
}

func (s *alertService) ResetAlert(ctx context.Context, alertID string) (*domain.PriceAlert, error) {
	return s.changeAlert(ctx, alertID, func(a *domain.PriceAlert) {
		a.IsActive = true
		a.IsTriggered = false
		a.TriggeredAt = nil
	})
}

func (s *alertService) changeAlert(ctx context.Context, alertID string, apply func(*domain.PriceAlert)) (*domain.PriceAlert, error) {
	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		return nil, err
	}
	apply(alert)
	alert.LastUpdatedAt = s.Now()
	if err := s.alertRepo.UpdateAlert(ctx, *alert); err != nil {
		s.LogError(ctx, err, "Failed to update alert", slog.String("alert_id", alertID))
		return nil, err
	}
	return alert, nil
}

func (s *alertService) CheckAlerts(ctx context.Context, productID string) ([]domain.PriceAlert, error) {
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return nil, err
	}
	best, err := s.valuation.BestPrice(ctx, productID)
	if err != nil {
		return nil, err
	}
	triggered, err := s.EvaluateAlerts(ctx, productID, *best)
	if err != nil {
		return nil, err
	}
	if len(triggered) == 0 {
		return []domain.PriceAlert{}, nil
	}
	if err := s.alertRepo.MarkAlertsTriggered(ctx, triggered); err != nil {
		s.LogError(ctx, err, "Failed to persist triggered alerts", slog.String("product_id", productID))
		return nil, err
	}
	for _, a := range triggered {
		s.LogInfo(ctx, "Price alert triggered",
			slog.String("alert_id", a.AlertID),
			slog.String("product_id", productID),
			slog.String("best_price", best.Amount.StringFixed(2)))
	}
	return triggered, nil
}
