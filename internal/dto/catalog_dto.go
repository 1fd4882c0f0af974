package dto

import (
	"github.com/shopspring/decimal"
)

// CreateBrandRequest defines the data needed to create a brand.
type CreateBrandRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// CreateProductRequest defines the data needed to create a product.
// The brand is looked up by name and created when missing.
type CreateProductRequest struct {
	Name      string  `json:"name" binding:"required,max=255"`
	BrandName string  `json:"brandName" binding:"required,max=255"`
	Category  *string `json:"category" binding:"omitempty,max=255"`
}

// UpdateProductCategoryRequest sets or clears (null) a product's category.
type UpdateProductCategoryRequest struct {
	Category *string `json:"category" binding:"omitempty,max=255"`
}

// CreateVendorRequest defines the data needed to create a vendor.
type CreateVendorRequest struct {
	Name         string           `json:"name" binding:"required,max=255"`
	CurrencyCode string           `json:"currencyCode" binding:"required,len=3,alpha"`
	DiscountCode *string          `json:"discountCode" binding:"omitempty,max=255"`
	Discount     *decimal.Decimal `json:"discount"` // percent, defaults to the configured vendor discount
	URL          *string          `json:"url" binding:"omitempty,url"`
}

// SimilarityQuery defines the query parameters of a duplicate search.
type SimilarityQuery struct {
	Threshold float64 `form:"threshold" binding:"omitempty,gt=0,lte=1"`
}
