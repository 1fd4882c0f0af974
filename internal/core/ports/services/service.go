package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers and the CLI.
type ServiceContainer struct {
	ExchangeRate ExchangeRateSvcFacade
	Valuation    ValuationSvc
	Catalog      CatalogSvcFacade
	Quote        QuoteSvcFacade
	Alert        AlertSvcFacade
	Comparison   ComparisonSvc
	Dedup        DedupSvc
}
