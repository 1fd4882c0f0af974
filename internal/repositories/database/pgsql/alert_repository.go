package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/buylog/internal/apperrors"
	"github.com/SscSPs/buylog/internal/core/domain"
	portsrepo "github.com/SscSPs/buylog/internal/core/ports/repositories"
	"github.com/SscSPs/buylog/internal/models"
	"github.com/SscSPs/buylog/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAlertRepository implements portsrepo.AlertRepositoryFacade using pgxpool.
type PgxAlertRepository struct {
	BaseRepository
}

func newPgxAlertRepository(pool *pgxpool.Pool) portsrepo.AlertRepositoryFacade {
	return &PgxAlertRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AlertRepositoryFacade = (*PgxAlertRepository)(nil)

const alertColumns = `alert_id, product_id, threshold, is_active, is_triggered, triggered_at, created_at, last_updated_at`

func scanAlert(row pgx.Row) (models.PriceAlert, error) {
	var m models.PriceAlert
	err := row.Scan(&m.AlertID, &m.ProductID, &m.Threshold, &m.IsActive, &m.IsTriggered, &m.TriggeredAt, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

// markTriggered writes the trigger state of fired alerts inside tx.
func markTriggered(ctx context.Context, tx pgx.Tx, alerts []domain.PriceAlert) error {
	for _, alert := range alerts {
		m := mapping.ToModelPriceAlert(alert)
		_, err := tx.Exec(ctx, `
			UPDATE price_alerts SET is_triggered = $1, triggered_at = $2, last_updated_at = $3
			WHERE alert_id = $4`,
			m.IsTriggered, m.TriggeredAt, m.LastUpdatedAt, m.AlertID,
		)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to mark alert "+m.AlertID+" triggered", err)
		}
	}
	return nil
}

func (r *PgxAlertRepository) SaveAlert(ctx context.Context, alert domain.PriceAlert) error {
	m := mapping.ToModelPriceAlert(alert)
	_, err := r.Pool.Exec(ctx, `INSERT INTO price_alerts (`+alertColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.AlertID, m.ProductID, m.Threshold, m.IsActive, m.IsTriggered, m.TriggeredAt, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return insertError(err, "alert "+m.AlertID+" already exists", "failed to save price alert")
	}
	return nil
}

func (r *PgxAlertRepository) FindAlertByID(ctx context.Context, alertID string) (*domain.PriceAlert, error) {
	return findOne(ctx, r.Pool, scanAlert, mapping.ToDomainPriceAlert, "alert "+alertID+" not found",
		`SELECT `+alertColumns+` FROM price_alerts WHERE alert_id = $1`, alertID)
}

func (r *PgxAlertRepository) ListAlertsByProduct(ctx context.Context, productID string) ([]domain.PriceAlert, error) {
	return findMany(ctx, r.Pool, scanAlert, mapping.ToDomainPriceAlert, "price alerts",
		`SELECT `+alertColumns+` FROM price_alerts WHERE product_id = $1 ORDER BY created_at, alert_id`, productID)
}

func (r *PgxAlertRepository) ListAlerts(ctx context.Context, filter domain.AlertFilter) ([]domain.PriceAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM price_alerts`
	switch filter {
	case domain.AlertsActive:
		query += ` WHERE is_active AND NOT is_triggered`
	case domain.AlertsTriggered:
		query += ` WHERE is_triggered`
	}
	query += ` ORDER BY created_at, alert_id`
	return findMany(ctx, r.Pool, scanAlert, mapping.ToDomainPriceAlert, "price alerts", query)
}

func (r *PgxAlertRepository) UpdateAlert(ctx context.Context, alert domain.PriceAlert) error {
	m := mapping.ToModelPriceAlert(alert)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE price_alerts SET is_active = $1, is_triggered = $2, triggered_at = $3, last_updated_at = $4
		WHERE alert_id = $5`,
		m.IsActive, m.IsTriggered, m.TriggeredAt, m.LastUpdatedAt, m.AlertID,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update price alert", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("alert " + m.AlertID + " not found")
	}
	return nil
}

// MarkAlertsTriggered persists several fired alerts atomically.
func (r *PgxAlertRepository) MarkAlertsTriggered(ctx context.Context, alerts []domain.PriceAlert) error {
	if len(alerts) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := markTriggered(ctx, tx, alerts); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
