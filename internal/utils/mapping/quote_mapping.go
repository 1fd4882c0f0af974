package mapping

import (
	"github.com/SscSPs/buylog/internal/core/domain"
	"github.com/SscSPs/buylog/internal/models"
)

// ToModelQuote converts a domain Quote to a model Quote
func ToModelQuote(d domain.Quote) models.Quote {
	return models.Quote{
		QuoteID:      d.QuoteID,
		VendorID:     d.VendorID,
		ProductID:    d.ProductID,
		BasePrice:    d.BasePrice,
		CurrencyCode: d.CurrencyCode,
		ShippingCost: d.ShippingCost,
		TaxRate:      d.TaxRate,
		Discount:     d.Discount,
		Status:       string(d.Status),
		ReceiptPath:  d.ReceiptPath,
		PricedAt:     d.PricedAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainQuote converts a model Quote to a domain Quote
func ToDomainQuote(m models.Quote) domain.Quote {
	return domain.Quote{
		QuoteID:      m.QuoteID,
		VendorID:     m.VendorID,
		ProductID:    m.ProductID,
		BasePrice:    m.BasePrice,
		CurrencyCode: m.CurrencyCode,
		ShippingCost: m.ShippingCost,
		TaxRate:      m.TaxRate,
		Discount:     m.Discount,
		Status:       domain.QuoteStatus(m.Status),
		ReceiptPath:  m.ReceiptPath,
		PricedAt:     m.PricedAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelQuoteHistoryEntry converts a domain QuoteHistoryEntry to a model QuoteHistoryEntry
func ToModelQuoteHistoryEntry(d domain.QuoteHistoryEntry) models.QuoteHistoryEntry {
	return models.QuoteHistoryEntry{
		EntryID:       d.EntryID,
		QuoteID:       d.QuoteID,
		EventKind:     string(d.EventKind),
		PreviousTotal: d.PreviousTotal,
		NewTotal:      d.NewTotal,
		RecordedAt:    d.RecordedAt,
		Sequence:      d.Sequence,
	}
}

// ToDomainQuoteHistoryEntry converts a model QuoteHistoryEntry to a domain QuoteHistoryEntry
func ToDomainQuoteHistoryEntry(m models.QuoteHistoryEntry) domain.QuoteHistoryEntry {
	return domain.QuoteHistoryEntry{
		EntryID:       m.EntryID,
		QuoteID:       m.QuoteID,
		EventKind:     domain.HistoryEventKind(m.EventKind),
		PreviousTotal: m.PreviousTotal,
		NewTotal:      m.NewTotal,
		RecordedAt:    m.RecordedAt,
		Sequence:      m.Sequence,
	}
}

// ToModelPriceAlert converts a domain PriceAlert to a model PriceAlert
func ToModelPriceAlert(d domain.PriceAlert) models.PriceAlert {
	return models.PriceAlert{
		AlertID:     d.AlertID,
		ProductID:   d.ProductID,
		Threshold:   d.Threshold,
		IsActive:    d.IsActive,
		IsTriggered: d.IsTriggered,
		TriggeredAt: d.TriggeredAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPriceAlert converts a model PriceAlert to a domain PriceAlert
func ToDomainPriceAlert(m models.PriceAlert) domain.PriceAlert {
	return domain.PriceAlert{
		AlertID:     m.AlertID,
		ProductID:   m.ProductID,
		Threshold:   m.Threshold,
		IsActive:    m.IsActive,
		IsTriggered: m.IsTriggered,
		TriggeredAt: m.TriggeredAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
