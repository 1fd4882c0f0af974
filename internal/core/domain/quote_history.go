package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryEventKind says why a history entry was written.
type HistoryEventKind string

const (
	HistoryCreate HistoryEventKind = "create"
	HistoryUpdate HistoryEventKind = "update"
)

// QuoteHistoryEntry is one immutable price event of a quote, totals in the reference currency.
type QuoteHistoryEntry struct {
	EntryID       string           `json:"entryID"`
	QuoteID       string           `json:"quoteID"`
	EventKind     HistoryEventKind `json:"eventKind"`
	PreviousTotal *decimal.Decimal `json:"previousTotal,omitempty"` // nil for create
	NewTotal      decimal.Decimal  `json:"newTotal"`
	RecordedAt    time.Time        `json:"recordedAt"`
	Sequence      int64            `json:"sequence"` // assigned by storage, breaks timestamp ties
}

// Trend is the direction of a quote's most recent price change.
type Trend string

const (
	TrendUp     Trend = "UP"
	TrendDown   Trend = "DOWN"
	TrendStable Trend = "STABLE"
	TrendNew    Trend = "NEW"
)
