package dto

import (
	"time"

	"github.com/SscSPs/buylog/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAlertRequest defines the data needed to watch a product's best price.
type CreateAlertRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Threshold decimal.Decimal `json:"threshold" binding:"required"` // reference currency
}

// ListAlertsQuery selects which alerts to list.
type ListAlertsQuery struct {
	Filter string `form:"filter" binding:"omitempty,oneof=all active triggered"`
}

// AlertResponse defines the data returned for a price alert.
type AlertResponse struct {
	AlertID     string          `json:"alertID"`
	ProductID   string          `json:"productID"`
	Threshold   decimal.Decimal `json:"threshold"`
	IsActive    bool            `json:"isActive"`
	IsTriggered bool            `json:"isTriggered"`
	TriggeredAt *time.Time      `json:"triggeredAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToAlertResponse converts a domain.PriceAlert to AlertResponse DTO
func ToAlertResponse(a domain.PriceAlert) AlertResponse {
	return AlertResponse{
		AlertID:     a.AlertID,
		ProductID:   a.ProductID,
		Threshold:   a.Threshold,
		IsActive:    a.IsActive,
		IsTriggered: a.IsTriggered,
		TriggeredAt: a.TriggeredAt,
		CreatedAt:   a.CreatedAt,
	}
}

// ToListAlertResponse converts alerts to AlertResponse DTOs.
func ToListAlertResponse(alerts []domain.PriceAlert) []AlertResponse {
	responses := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = ToAlertResponse(a)
	}
	return responses
}
