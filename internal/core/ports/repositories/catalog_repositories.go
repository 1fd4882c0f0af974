package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/buylog/internal/core/domain"
)

// BrandReader defines read operations for brand data
type BrandReader interface {
	FindBrandByID(ctx context.Context, brandID string) (*domain.Brand, error)
	FindBrandByName(ctx context.Context, name string) (*domain.Brand, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
}

// BrandWriter defines write operations for brand data
type BrandWriter interface {
	SaveBrand(ctx context.Context, brand domain.Brand) error
}

// ProductReader defines read operations for product data
type ProductReader interface {
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	// ListProducts returns products ordered by name. A non-empty nameFilter matches case-insensitively on a substring.
	ListProducts(ctx context.Context, nameFilter string) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	UpdateProductCategory(ctx context.Context, productID string, category *string, updatedAt time.Time) error
}

// VendorReader defines read operations for vendor data
type VendorReader interface {
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
}

// VendorWriter defines write operations for vendor data
type VendorWriter interface {
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
}

// CatalogRepositoryFacade combines brand, product and vendor repository interfaces.
// Saving a name that already exists returns apperrors.ErrDuplicate.
type CatalogRepositoryFacade interface {
	BrandReader
	BrandWriter
	ProductReader
	ProductWriter
	VendorReader
	VendorWriter
}
