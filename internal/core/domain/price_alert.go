package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceAlert fires once when a product's best price reaches Threshold (reference currency).
// A fired alert stays fired until reset; deactivating it keeps the trigger.
type PriceAlert struct {
	AlertID     string          `json:"alertID"`
	ProductID   string          `json:"productID"`
	Threshold   decimal.Decimal `json:"threshold"`
	IsActive    bool            `json:"isActive"`
	IsTriggered bool            `json:"isTriggered"`
	TriggeredAt *time.Time      `json:"triggeredAt,omitempty"`
	AuditFields
}

// Armed reports whether the alert is eligible for evaluation.
func (a PriceAlert) Armed() bool {
	return a.IsActive && !a.IsTriggered
}

// AlertFilter selects which alerts a listing returns.
type AlertFilter string

const (
	AlertsAll       AlertFilter = "all"
	AlertsActive    AlertFilter = "active"
	AlertsTriggered AlertFilter = "triggered"
)
