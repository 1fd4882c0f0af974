package pgsql

import (
	"context"
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

// PgxQuoteRepository implements portsrepo.QuoteRepositoryFacade using pgxpool.
type PgxQuoteRepository struct {
	BaseRepository
}

func newPgxQuoteRepository(pool *pgxpool.Pool) portsrepo.QuoteRepositoryFacade {
	return &PgxQuoteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.QuoteRepositoryFacade = (*PgxQuoteRepository)(nil)

const (
	quoteColumns = `quote_id, vendor_id, product_id, base_price, currency_code, shipping_cost, tax_rate,
		discount, status, receipt_path, priced_at, created_at, last_updated_at`
	historyColumns = `entry_id, quote_id, event_kind, previous_total, new_total, recorded_at, sequence`
)

func scanQuote(row pgx.Row) (models.Quote, error) {
	var m models.Quote
	err := row.Scan(
		&m.QuoteID, &m.VendorID, &m.ProductID, &m.BasePrice, &m.CurrencyCode, &m.ShippingCost, &m.TaxRate,
		&m.Discount, &m.Status, &m.ReceiptPath, &m.PricedAt, &m.CreatedAt, &m.LastUpdatedAt,
	)
	return m, err
}

func scanHistoryEntry(row pgx.Row) (models.QuoteHistoryEntry, error) {
	var m models.QuoteHistoryEntry
	err := row.Scan(&m.EntryID, &m.QuoteID, &m.EventKind, &m.PreviousTotal, &m.NewTotal, &m.RecordedAt, &m.Sequence)
	return m, err
}

// SaveQuoteChange writes the quote row, its history entry and any fired alerts in one transaction.
func (r *PgxQuoteRepository) SaveQuoteChange(ctx context.Context, change portsrepo.QuoteChange) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	q := mapping.ToModelQuote(change.Quote)
	if change.IsNew {
		_, err = tx.Exec(ctx, `
			INSERT INTO quotes (`+quoteColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			q.QuoteID, q.VendorID, q.ProductID, q.BasePrice, q.CurrencyCode, q.ShippingCost, q.TaxRate,
			q.Discount, q.Status, q.ReceiptPath, q.PricedAt, q.CreatedAt, q.LastUpdatedAt,
		)
		if err != nil {
			return insertError(err, "quote "+q.QuoteID+" already exists", "failed to insert quote")
		}
	} else {
		tag, err := tx.Exec(ctx, `
			UPDATE quotes
			SET base_price = $1, currency_code = $2, shipping_cost = $3, tax_rate = $4, discount = $5,
				priced_at = $6, last_updated_at = $7
			WHERE quote_id = $8`,
			q.BasePrice, q.CurrencyCode, q.ShippingCost, q.TaxRate, q.Discount, q.PricedAt, q.LastUpdatedAt, q.QuoteID,
		)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to update quote", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("quote " + q.QuoteID + " not found")
		}
	}

	if change.Entry != nil {
		e := mapping.ToModelQuoteHistoryEntry(*change.Entry)
		_, err = tx.Exec(ctx, `
			INSERT INTO quote_history (entry_id, quote_id, event_kind, previous_total, new_total, recorded_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			e.EntryID, e.QuoteID, e.EventKind, e.PreviousTotal, e.NewTotal, e.RecordedAt,
		)
		if err != nil {
			return insertError(err, "history entry "+e.EntryID+" already exists", "failed to insert quote history entry")
		}
	}

	if err := markTriggered(ctx, tx, change.TriggeredAlerts); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	return findOne(ctx, r.Pool, scanQuote, mapping.ToDomainQuote, "quote "+quoteID+" not found",
		`SELECT `+quoteColumns+` FROM quotes WHERE quote_id = $1`, quoteID)
}

func (r *PgxQuoteRepository) ListQuotesByProduct(ctx context.Context, productID string) ([]domain.Quote, error) {
	return findMany(ctx, r.Pool, scanQuote, mapping.ToDomainQuote, "quotes",
		`SELECT `+quoteColumns+` FROM quotes WHERE product_id = $1 ORDER BY created_at, quote_id`, productID)
}

func (r *PgxQuoteRepository) ListQuotesByStatus(ctx context.Context, status domain.QuoteStatus) ([]domain.Quote, error) {
	return findMany(ctx, r.Pool, scanQuote, mapping.ToDomainQuote, "quotes",
		`SELECT `+quoteColumns+` FROM quotes WHERE status = $1 ORDER BY created_at DESC, quote_id`, string(status))
}

func (r *PgxQuoteRepository) UpdateQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus, updatedAt time.Time) error {
	return r.updateQuote(ctx, quoteID, `UPDATE quotes SET status = $1, last_updated_at = $2 WHERE quote_id = $3`,
		string(status), updatedAt, quoteID)
}

func (r *PgxQuoteRepository) UpdateQuoteReceipt(ctx context.Context, quoteID string, receiptPath *string, updatedAt time.Time) error {
	return r.updateQuote(ctx, quoteID, `UPDATE quotes SET receipt_path = $1, last_updated_at = $2 WHERE quote_id = $3`,
		receiptPath, updatedAt, quoteID)
}

func (r *PgxQuoteRepository) updateQuote(ctx context.Context, quoteID, stmt string, args ...any) error {
	tag, err := r.Pool.Exec(ctx, stmt, args...)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update quote", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("quote " + quoteID + " not found")
	}
	return nil
}

// DeleteQuote removes the quote and its history together.
func (r *PgxQuoteRepository) DeleteQuote(ctx context.Context, quoteID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM quote_history WHERE quote_id = $1`, quoteID); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete quote history", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM quotes WHERE quote_id = $1`, quoteID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete quote", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("quote " + quoteID + " not found")
	}
	return r.Commit(ctx, tx)
}

func (r *PgxQuoteRepository) ListHistoryByQuote(ctx context.Context, quoteID string) ([]domain.QuoteHistoryEntry, error) {
	return findMany(ctx, r.Pool, scanHistoryEntry, mapping.ToDomainQuoteHistoryEntry, "quote history",
		`SELECT `+historyColumns+` FROM quote_history WHERE quote_id = $1 ORDER BY recorded_at, sequence`, quoteID)
}

func (r *PgxQuoteRepository) ListHistoryByProduct(ctx context.Context, productID string) ([]domain.QuoteHistoryEntry, error) {
	return findMany(ctx, r.Pool, scanHistoryEntry, mapping.ToDomainQuoteHistoryEntry, "product history", `
		SELECT h.entry_id, h.quote_id, h.event_kind, h.previous_total, h.new_total, h.recorded_at, h.sequence
		FROM quote_history h
		JOIN quotes q ON q.quote_id = h.quote_id
		WHERE q.product_id = $1
		ORDER BY h.recorded_at, h.sequence`, productID)
}
