package mapping

import (
	"github.com/SscSPs/buylog/internal/core/domain"
	"github.com/SscSPs/buylog/internal/models"
)

func ToModelBrand(d domain.Brand) models.Brand {
	return models.Brand{BrandID: d.BrandID, Name: d.Name, AuditFields: ToModelAuditFields(d.AuditFields)}
}

func ToDomainBrand(m models.Brand) domain.Brand {
	return domain.Brand{BrandID: m.BrandID, Name: m.Name, AuditFields: ToDomainAuditFields(m.AuditFields)}
}

func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:   d.ProductID,
		BrandID:     d.BrandID,
		Name:        d.Name,
		Category:    d.Category,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		BrandID:     m.BrandID,
		Name:        m.Name,
		Category:    m.Category,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelVendor(d domain.Vendor) models.Vendor {
	return models.Vendor{
		VendorID:     d.VendorID,
		Name:         d.Name,
		CurrencyCode: d.CurrencyCode,
		DiscountCode: d.DiscountCode,
		Discount:     d.Discount,
		URL:          d.URL,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:     m.VendorID,
		Name:         m.Name,
		CurrencyCode: m.CurrencyCode,
		DiscountCode: m.DiscountCode,
		Discount:     m.Discount,
		URL:          m.URL,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
