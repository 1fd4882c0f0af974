package pgsql

import (
	portsrepo "github.com/SscSPs/buylog/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		CatalogRepo:      newPgxCatalogRepository(dbPool),
		QuoteRepo:        newPgxQuoteRepository(dbPool),
		AlertRepo:        newPgxAlertRepository(dbPool),
	}
}
