package services

import (
	"github.com/SscSPs/buylog/internal/core/domain"
	portsrepo "github.com/SscSPs/buylog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(pricing domain.Pricing, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Conversion and valuation first since every price-aware service depends on them
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, pricing, options...)
	container.Valuation = NewValuationService(container.ExchangeRate, repos.QuoteRepo, options...)

	container.Catalog = NewCatalogService(repos.CatalogRepo, pricing, options...)
	container.Alert = NewAlertService(repos.AlertRepo, repos.CatalogRepo, container.Valuation, options...)
	container.Quote = NewQuoteService(repos.QuoteRepo, repos.CatalogRepo, container.Valuation, container.Alert, options...)
	container.Comparison = NewComparisonService(repos.CatalogRepo, repos.QuoteRepo, container.Valuation, pricing, options...)
	container.Dedup = NewDedupService(repos.CatalogRepo, options...)

	return container
}
