package domain

import "github.com/shopspring/decimal"

// MaxNameLength bounds brand, product and vendor names.
const MaxNameLength = 255

// Brand is a manufacturing entity.
type Brand struct {
	BrandID string `json:"brandID"`
	Name    string `json:"name"`
	AuditFields
}

// Product is an item sold by a brand, quoted by vendors.
type Product struct {
	ProductID string  `json:"productID"`
	BrandID   string  `json:"brandID"`
	Name      string  `json:"name"`
	Category  *string `json:"category,omitempty"`
	AuditFields
}

// Vendor is a selling entity. Its currency and discount are copied onto every quote it issues.
type Vendor struct {
	VendorID     string          `json:"vendorID"`
	Name         string          `json:"name"`
	CurrencyCode string          `json:"currencyCode"`
	DiscountCode *string         `json:"discountCode,omitempty"`
	Discount     decimal.Decimal `json:"discount"` // percent, 0-100
	URL          *string         `json:"url,omitempty"`
	AuditFields
}
