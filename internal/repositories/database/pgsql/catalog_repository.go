package pgsql

import (
	"context"
	"errors"
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

// PgxCatalogRepository stores brands, products and vendors.
type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

const (
	brandColumns   = `brand_id, name, created_at, last_updated_at`
	productColumns = `product_id, brand_id, name, category, created_at, last_updated_at`
	vendorColumns  = `vendor_id, name, currency_code, discount_code, discount, url, created_at, last_updated_at`
)

func scanBrand(row pgx.Row) (models.Brand, error) {
	var m models.Brand
	err := row.Scan(&m.BrandID, &m.Name, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(&m.ProductID, &m.BrandID, &m.Name, &m.Category, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

func scanVendor(row pgx.Row) (models.Vendor, error) {
	var m models.Vendor
	err := row.Scan(&m.VendorID, &m.Name, &m.CurrencyCode, &m.DiscountCode, &m.Discount, &m.URL, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

// findOne runs a single-row query, mapping no rows to a not-found error.
func findOne[M any, D any](ctx context.Context, pool *pgxpool.Pool, scan func(pgx.Row) (M, error), toDomain func(M) D, notFound string, query string, args ...any) (*D, error) {
	m, err := scan(pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(notFound)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "query failed: "+notFound, err)
	}
	d := toDomain(m)
	return &d, nil
}

// findMany runs a multi-row query and maps every row.
func findMany[M any, D any](ctx context.Context, pool *pgxpool.Pool, scan func(pgx.Row) (M, error), toDomain func(M) D, what string, query string, args ...any) ([]D, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list "+what, err)
	}
	defer rows.Close()

	var out []D
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan "+what, err)
		}
		out = append(out, toDomain(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating "+what, err)
	}
	return out, nil
}

func (r *PgxCatalogRepository) SaveBrand(ctx context.Context, brand domain.Brand) error {
	m := mapping.ToModelBrand(brand)
	_, err := r.Pool.Exec(ctx, `INSERT INTO brands (`+brandColumns+`) VALUES ($1, $2, $3, $4)`,
		m.BrandID, m.Name, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return insertError(err, "brand '"+m.Name+"' already exists", "failed to save brand")
	}
	return nil
}

func (r *PgxCatalogRepository) FindBrandByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	return findOne(ctx, r.Pool, scanBrand, mapping.ToDomainBrand, "brand "+brandID+" not found",
		`SELECT `+brandColumns+` FROM brands WHERE brand_id = $1`, brandID)
}

func (r *PgxCatalogRepository) FindBrandByName(ctx context.Context, name string) (*domain.Brand, error) {
	return findOne(ctx, r.Pool, scanBrand, mapping.ToDomainBrand, "brand '"+name+"' not found",
		`SELECT `+brandColumns+` FROM brands WHERE lower(name) = lower($1)`, name)
}

func (r *PgxCatalogRepository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return findMany(ctx, r.Pool, scanBrand, mapping.ToDomainBrand, "brands",
		`SELECT `+brandColumns+` FROM brands ORDER BY name`)
}

func (r *PgxCatalogRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	_, err := r.Pool.Exec(ctx, `INSERT INTO products (`+productColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ProductID, m.BrandID, m.Name, m.Category, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return insertError(err, "product '"+m.Name+"' already exists", "failed to save product")
	}
	return nil
}

func (r *PgxCatalogRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return findOne(ctx, r.Pool, scanProduct, mapping.ToDomainProduct, "product "+productID+" not found",
		`SELECT `+productColumns+` FROM products WHERE product_id = $1`, productID)
}

func (r *PgxCatalogRepository) ListProducts(ctx context.Context, nameFilter string) ([]domain.Product, error) {
	if nameFilter == "" {
		return findMany(ctx, r.Pool, scanProduct, mapping.ToDomainProduct, "products",
			`SELECT `+productColumns+` FROM products ORDER BY name`)
	}
	return findMany(ctx, r.Pool, scanProduct, mapping.ToDomainProduct, "products",
		`SELECT `+productColumns+` FROM products WHERE name ILIKE '%' || $1 || '%' ORDER BY name`, nameFilter)
}

func (r *PgxCatalogRepository) UpdateProductCategory(ctx context.Context, productID string, category *string, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE products SET category = $1, last_updated_at = $2 WHERE product_id = $3`,
		category, updatedAt, productID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update product category", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product " + productID + " not found")
	}
	return nil
}

func (r *PgxCatalogRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)
	_, err := r.Pool.Exec(ctx, `INSERT INTO vendors (`+vendorColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.VendorID, m.Name, m.CurrencyCode, m.DiscountCode, m.Discount, m.URL, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return insertError(err, "vendor '"+m.Name+"' already exists", "failed to save vendor")
	}
	return nil
}

func (r *PgxCatalogRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	return findOne(ctx, r.Pool, scanVendor, mapping.ToDomainVendor, "vendor "+vendorID+" not found",
		`SELECT `+vendorColumns+` FROM vendors WHERE vendor_id = $1`, vendorID)
}

func (r *PgxCatalogRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return findMany(ctx, r.Pool, scanVendor, mapping.ToDomainVendor, "vendors",
		`SELECT `+vendorColumns+` FROM vendors ORDER BY name`)
}
