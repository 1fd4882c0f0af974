package services

import (
	"context"

	"github.com/SscSPs/buylog/internal/core/domain"
	"github.com/SscSPs/buylog/internal/dto"
)

// CatalogReaderSvc defines read operations for brands, products and vendors
type CatalogReaderSvc interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, nameFilter string) ([]domain.Product, error)
	GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
}

// CatalogWriterSvc defines write operations for brands, products and vendors
type CatalogWriterSvc interface {
	CreateBrand(ctx context.Context, req dto.CreateBrandRequest) (*domain.Brand, error)
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	SetProductCategory(ctx context.Context, productID string, category *string) (*domain.Product, error)
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error)
}

// CatalogSvcFacade combines all catalog-related service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
