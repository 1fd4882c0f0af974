package mapping

import (
	"github.com/SscSPs/buylog/internal/core/domain"
	"github.com/SscSPs/buylog/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:        d.ExchangeRateID,
		CurrencyCode:          d.CurrencyCode,
		RateDate:              domain.DateOf(d.RateDate),
		ReferenceUnitsPerUnit: d.ReferenceUnitsPerUnit,
		CreatedAt:             d.CreatedAt,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:        m.ExchangeRateID,
		CurrencyCode:          m.CurrencyCode,
		RateDate:              domain.DateOf(m.RateDate),
		ReferenceUnitsPerUnit: m.ReferenceUnitsPerUnit,
		CreatedAt:             m.CreatedAt,
	}
}
