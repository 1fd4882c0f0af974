package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/buylog/internal/core/domain"
	portsrepo "github.com/SscSPs/buylog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/utils"
	"github.com/SscSPs/buylog/internal/utils/pricing"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const comparisonSheet = "Comparison"

// comparisonService ranks the quotes of a product.
type comparisonService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
	quoteRepo   portsrepo.QuoteReader
	valuation   portssvc.ValuationSvc
	pricing     domain.Pricing
}

// NewComparisonService creates a new comparison service.
func NewComparisonService(
	catalogRepo portsrepo.CatalogRepositoryFacade,
	quoteRepo portsrepo.QuoteReader,
	valuation portssvc.ValuationSvc,
	pricing domain.Pricing,
	options ...ServiceOption,
) portssvc.ComparisonSvc {
	return &comparisonService{
		BaseService: newBaseService(options),
		catalogRepo: catalogRepo,
		quoteRepo:   quoteRepo,
		valuation:   valuation,
		pricing:     pricing,
	}
}

var _ portssvc.ComparisonSvc = (*comparisonService)(nil)

func (s *comparisonService) CompareProduct(ctx context.Context, productID string) (*domain.ProductComparison, error) {
	product, err := s.catalogRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	quotes, err := s.quoteRepo.ListQuotesByProduct(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list quotes for comparison", slog.String("product_id", productID))
		return nil, err
	}
	valued, err := s.valuation.ValueQuotes(ctx, quotes)
	if err != nil {
		return nil, err
	}
	pricing.RankQuotes(valued)

	cmp := &domain.ProductComparison{Product: *product, Quotes: valued}
	if summary, ok := pricing.Summarize(valued); ok {
		cmp.Best = &summary.Best
		cmp.Worst = &summary.Worst
		cmp.Average = &summary.Average
		cmp.Spread = &summary.Spread
	}
	return cmp, nil
}

func (s *comparisonService) ExportComparisonXLSX(ctx context.Context, productID string, w io.Writer) error {
	cmp, err := s.CompareProduct(ctx, productID)
	if err != nil {
		return err
	}

	vendorNames := map[string]string{}
	vendors, err := s.catalogRepo.ListVendors(ctx)
	if err != nil {
		return err
	}
	for _, v := range vendors {
		vendorNames[v.VendorID] = v.Name
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(comparisonSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	ref := s.pricing.ReferenceCurrency
	headers := []any{"Rank", "Vendor", "Currency", "Base Price", "Discount %", "Shipping", "Tax %", "Status", "Priced At", "Total (" + ref + ")"}
	if err := f.SetSheetRow(comparisonSheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	refPrecision := utils.CurrencyPrecision(ref)
	for i, vq := range cmp.Quotes {
		q := vq.Quote
		vendor := vendorNames[q.VendorID]
		if vendor == "" {
			vendor = q.VendorID
		}
		row := []any{
			i + 1,
			vendor,
			q.CurrencyCode,
			q.BasePrice.InexactFloat64(),
			q.Discount.InexactFloat64(),
			q.ShippingCost.InexactFloat64(),
			q.TaxRate.InexactFloat64(),
			string(q.Status),
			q.PricedAt.Format(time.DateOnly),
			vq.TotalCost.Round(refPrecision).InexactFloat64(),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(comparisonSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if cmp.Best != nil {
		summaryRow := len(cmp.Quotes) + 3
		summary := []struct {
			label string
			value *decimal.Decimal
		}{
			{"Best", cmp.Best},
			{"Worst", cmp.Worst},
			{"Average", cmp.Average},
			{"Spread", cmp.Spread},
		}
		for i, item := range summary {
			labelCell, _ := excelize.CoordinatesToCellName(9, summaryRow+i)
			valueCell, _ := excelize.CoordinatesToCellName(10, summaryRow+i)
			_ = f.SetCellValue(comparisonSheet, labelCell, item.label)
			_ = f.SetCellValue(comparisonSheet, valueCell, item.value.Round(refPrecision).InexactFloat64())
		}
	}

	_ = f.SetColWidth(comparisonSheet, "B", "B", 24)
	_ = f.SetColWidth(comparisonSheet, "I", "J", 14)

	if err := f.Write(w); err != nil {
		s.LogError(ctx, err, "Failed to write comparison workbook", slog.String("product_id", productID))
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
