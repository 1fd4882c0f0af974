package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/buylog/internal/apperrors"
	"github.com/SscSPs/buylog/internal/core/domain"
	portsrepo "github.com/SscSPs/buylog/internal/core/ports/repositories"
	"github.com/SscSPs/buylog/internal/models"
	"github.com/SscSPs/buylog/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements portsrepo.ExchangeRateRepositoryFacade using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const exchangeRateColumns = `exchange_rate_id, currency_code, rate_date, reference_units_per_unit, created_at`

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(&m.ExchangeRateID, &m.CurrencyCode, &m.RateDate, &m.ReferenceUnitsPerUnit, &m.CreatedAt)
	return m, err
}

// SaveExchangeRate inserts a new rate. Rows are never updated.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO exchange_rates (`+exchangeRateColumns+`)
		VALUES ($1, $2, $3, $4, $5)`,
		m.ExchangeRateID, m.CurrencyCode, m.RateDate, m.ReferenceUnitsPerUnit, m.CreatedAt,
	)
	if err != nil {
		return insertError(err,
			fmt.Sprintf("a %s rate for %s already exists", m.CurrencyCode, m.RateDate.Format(time.DateOnly)),
			"failed to save exchange rate")
	}
	return nil
}

// FindLatestRate retrieves the rate with the greatest rate_date on or before asOf.
func (r *PgxExchangeRateRepository) FindLatestRate(ctx context.Context, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE currency_code = $1 AND rate_date <= $2
		ORDER BY rate_date DESC
		LIMIT 1;
	`
	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, currencyCode, domain.DateOf(asOf)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewRateNotFoundError(currencyCode, asOf)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find exchange rate", err)
	}
	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

// ListExchangeRates retrieves rates newest first, optionally for a single currency.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, currencyCode *string) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates`
	args := []any{}
	if currencyCode != nil {
		query += ` WHERE currency_code = $1`
		args = append(args, *currencyCode)
	}
	query += ` ORDER BY rate_date DESC, currency_code`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list exchange rates", err)
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		m, err := scanExchangeRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan exchange rate", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating exchange rates", err)
	}
	return rates, nil
}
