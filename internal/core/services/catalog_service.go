package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/buylog/internal/apperrors"
	"github.com/SscSPs/buylog/internal/core/domain"
	portsrepo "github.com/SscSPs/buylog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// catalogService manages brands, products and vendors.
type catalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
	pricing     domain.Pricing
}

// NewCatalogService creates a new catalog service. New vendors without a discount get
// the pricing policy's default.
func NewCatalogService(catalogRepo portsrepo.CatalogRepositoryFacade, pricing domain.Pricing, options ...ServiceOption) portssvc.CatalogSvcFacade {
	return &catalogService{
		BaseService: newBaseService(options),
		catalogRepo: catalogRepo,
		pricing:     pricing,
	}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func validName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidationError(kind + " name cannot be empty")
	}
	if len(name) > domain.MaxNameLength {
		return "", apperrors.NewValidationError(fmt.Sprintf("%s name cannot exceed %d characters", kind, domain.MaxNameLength))
	}
	return name, nil
}

func (s *catalogService) CreateBrand(ctx context.Context, req dto.CreateBrandRequest) (*domain.Brand, error) {
	name, err := validName("brand", req.Name)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	brand := domain.Brand{
		BrandID:     uuid.NewString(),
		Name:        name,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.catalogRepo.SaveBrand(ctx, brand); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Brand created", slog.String("brand_id", brand.BrandID), slog.String("name", name))
	return &brand, nil
}

func (s *catalogService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := s.catalogRepo.ListBrands(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list brands")
		return nil, err
	}
	if brands == nil {
		return []domain.Brand{}, nil
	}
	return brands, nil
}

// brandByName finds a brand by name, creating it when missing.
func (s *catalogService) brandByName(ctx context.Context, name string) (*domain.Brand, error) {
	brand, err := s.catalogRepo.FindBrandByName(ctx, name)
	if err == nil {
		return brand, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	return s.CreateBrand(ctx, dto.CreateBrandRequest{Name: name})
}

func (s *catalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	name, err := validName("product", req.Name)
	if err != nil {
		return nil, err
	}
	brandName, err := validName("brand", req.BrandName)
	if err != nil {
		return nil, err
	}
	brand, err := s.brandByName(ctx, brandName)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		BrandID:     brand.BrandID,
		Name:        name,
		Category:    trimmedOrNil(req.Category),
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.catalogRepo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Product created",
		slog.String("product_id", product.ProductID),
		slog.String("brand_id", brand.BrandID),
		slog.String("name", name))
	return &product, nil
}

func (s *catalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.catalogRepo.FindProductByID(ctx, productID)
}

func (s *catalogService) ListProducts(ctx context.Context, nameFilter string) ([]domain.Product, error) {
	products, err := s.catalogRepo.ListProducts(ctx, strings.TrimSpace(nameFilter))
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, err
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *catalogService) SetProductCategory(ctx context.Context, productID string, category *string) (*domain.Product, error) {
	product, err := s.catalogRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	product.Category = trimmedOrNil(category)
	product.LastUpdatedAt = now
	if err := s.catalogRepo.UpdateProductCategory(ctx, productID, product.Category, now); err != nil {
		s.LogError(ctx, err, "Failed to update product category", slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}

func (s *catalogService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	name, err := validName("vendor", req.Name)
	if err != nil {
		return nil, err
	}
	code := domain.NormalizeCurrencyCode(req.CurrencyCode)
	if !domain.IsCurrencyCode(code) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("currency code '%s' must be 3 letters", req.CurrencyCode))
	}
	discount := s.pricing.DefaultVendorDiscount
	if req.Discount != nil {
		discount = *req.Discount
	}
	if discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
		return nil, apperrors.NewValidationError("discount must be between 0 and 100")
	}

	now := s.Now()
	vendor := domain.Vendor{
		VendorID:     uuid.NewString(),
		Name:         name,
		CurrencyCode: code,
		DiscountCode: trimmedOrNil(req.DiscountCode),
		Discount:     discount,
		URL:          trimmedOrNil(req.URL),
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.catalogRepo.SaveVendor(ctx, vendor); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Vendor created",
		slog.String("vendor_id", vendor.VendorID),
		slog.String("name", name),
		slog.String("currency_code", code))
	return &vendor, nil
}

func (s *catalogService) GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	return s.catalogRepo.FindVendorByID(ctx, vendorID)
}

func (s *catalogService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	vendors, err := s.catalogRepo.ListVendors(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vendors")
		return nil, err
	}
	if vendors == nil {
		return []domain.Vendor{}, nil
	}
	return vendors, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
