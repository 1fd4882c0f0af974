package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/buylog/internal/core/domain"
	"github.com/SscSPs/buylog/internal/utils"
	"github.com/shopspring/decimal"
)

func percent(d decimal.Decimal) string {
	return d.String() + "%"
}

// quoteMarkdown describes a single valued quote.
func quoteMarkdown(vq domain.ValuedQuote, referenceCurrency string) string {
	q := vq.Quote
	var b strings.Builder
	fmt.Fprintf(&b, "# Quote %s\n\n", q.QuoteID)
	b.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Product | %s |\n", q.ProductID)
	fmt.Fprintf(&b, "| Vendor | %s |\n", q.VendorID)
	fmt.Fprintf(&b, "| Base price | %s |\n", utils.DisplayMoney(q.BasePrice, q.CurrencyCode))
	fmt.Fprintf(&b, "| Discount | %s |\n", percent(q.Discount))
	fmt.Fprintf(&b, "| Shipping | %s |\n", utils.DisplayMoney(q.ShippingCost, q.CurrencyCode))
	fmt.Fprintf(&b, "| Tax | %s |\n", percent(q.TaxRate))
	fmt.Fprintf(&b, "| Status | %s |\n", q.Status)
	fmt.Fprintf(&b, "| Total | **%s** |\n", utils.DisplayMoney(vq.TotalCost, referenceCurrency))
	return b.String()
}

// bestPriceMarkdown reports the winning quote of a product.
func bestPriceMarkdown(productID string, best domain.BestPrice, referenceCurrency string) string {
	if !best.Found {
		return fmt.Sprintf("# Best price for %s\n\nNo quotes recorded.\n", productID)
	}
	q := best.Quote
	return fmt.Sprintf("# Best price for %s\n\n**%s** from vendor %s (quote %s, list price %s)\n",
		productID,
		utils.DisplayMoney(best.Amount, referenceCurrency),
		q.VendorID, q.QuoteID,
		utils.DisplayMoney(q.BasePrice, q.CurrencyCode))
}

// historyMarkdown lists price events oldest first, with the trend when a single quote is shown.
func historyMarkdown(title string, entries []domain.QuoteHistoryEntry, trend *domain.Trend, referenceCurrency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if trend != nil {
		fmt.Fprintf(&b, "Trend: **%s**\n\n", *trend)
	}
	if len(entries) == 0 {
		b.WriteString("No price history.\n")
		return b.String()
	}
	b.WriteString("| Recorded | Quote | Event | Previous | New |\n|---|---|---|---:|---:|\n")
	for _, e := range entries {
		previous := "-"
		if e.PreviousTotal != nil {
			previous = utils.DisplayMoney(*e.PreviousTotal, referenceCurrency)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			e.RecordedAt.UTC().Format(time.DateTime), e.QuoteID, e.EventKind,
			previous, utils.DisplayMoney(e.NewTotal, referenceCurrency))
	}
	return b.String()
}

// comparisonMarkdown ranks the quotes of a product cheapest first.
func comparisonMarkdown(cmp domain.ProductComparison, referenceCurrency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", cmp.Product.Name)
	if len(cmp.Quotes) == 0 {
		b.WriteString("No quotes recorded.\n")
		return b.String()
	}
	b.WriteString("| # | Vendor | Base | Discount | Shipping | Tax | Status | Total |\n|---:|---|---:|---:|---:|---:|---|---:|\n")
	for i, vq := range cmp.Quotes {
		q := vq.Quote
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s |\n",
			i+1, q.VendorID,
			utils.DisplayMoney(q.BasePrice, q.CurrencyCode), percent(q.Discount),
			utils.DisplayMoney(q.ShippingCost, q.CurrencyCode), percent(q.TaxRate),
			q.Status, utils.DisplayMoney(vq.TotalCost, referenceCurrency))
	}
	if cmp.Best != nil && cmp.Worst != nil && cmp.Average != nil && cmp.Spread != nil {
		fmt.Fprintf(&b, "\nBest %s, worst %s, average %s, spread %s.\n",
			utils.DisplayMoney(*cmp.Best, referenceCurrency),
			utils.DisplayMoney(*cmp.Worst, referenceCurrency),
			utils.DisplayMoney(*cmp.Average, referenceCurrency),
			utils.DisplayMoney(*cmp.Spread, referenceCurrency))
	}
	return b.String()
}

// alertsMarkdown lists alerts that fired on a check.
func alertsMarkdown(productID string, fired []domain.PriceAlert, referenceCurrency string) string {
	if len(fired) == 0 {
		return fmt.Sprintf("# Alerts for %s\n\nNo alert fired.\n", productID)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Alerts for %s\n\n| Alert | Threshold | Fired at |\n|---|---:|---|\n", productID)
	for _, a := range fired {
		firedAt := "-"
		if a.TriggeredAt != nil {
			firedAt = a.TriggeredAt.UTC().Format(time.DateTime)
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", a.AlertID, utils.DisplayMoney(a.Threshold, referenceCurrency), firedAt)
	}
	return b.String()
}
