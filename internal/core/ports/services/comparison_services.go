package services

import (
	"context"
	"io"

	"github.com/SscSPs/buylog/internal/core/domain"
)

// ComparisonSvc ranks the quotes of a product.
type ComparisonSvc interface {
	CompareProduct(ctx context.Context, productID string) (*domain.ProductComparison, error)

	// ExportComparisonXLSX writes the comparison of a product as a spreadsheet.
	ExportComparisonXLSX(ctx context.Context, productID string, w io.Writer) error
}

// DedupSvc finds catalog entries whose names look like duplicates.
type DedupSvc interface {
	FindSimilarProducts(ctx context.Context, threshold float64) ([]domain.SimilarGroup, error)
	FindSimilarVendors(ctx context.Context, threshold float64) ([]domain.SimilarGroup, error)
}
