package models

import "github.com/shopspring/decimal"

// Brand is a row of the brands table.
type Brand struct {
	BrandID string
	Name    string
	AuditFields
}

// Product is a row of the products table.
type Product struct {
	ProductID string
	BrandID   string
	Name      string
	Category  *string
	AuditFields
}

// Vendor is a row of the vendors table.
type Vendor struct {
	VendorID     string
	Name         string
	CurrencyCode string
	DiscountCode *string
	Discount     decimal.Decimal
	URL          *string
	AuditFields
}
