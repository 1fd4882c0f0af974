package cli

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/dto"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addFxCmd struct {
	app      *App
	currency string
	rate     string
	date     string
}

func (*addFxCmd) Name() string     { return "add-fx" }
func (*addFxCmd) Synopsis() string { return "record a daily exchange rate" }
func (*addFxCmd) Usage() string {
	return `buylog add-fx -currency <code> -rate <value> [-date YYYY-MM-DD]

  Records how many reference-currency units one unit of <code> buys on a date.
`
}

func (c *addFxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "ISO currency code")
	f.StringVar(&c.rate, "rate", "", "reference units per unit of the currency")
	f.StringVar(&c.date, "date", "", "rate date (defaults to today)")
}

func (c *addFxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := optionalDecimal("rate", c.rate)
	if err != nil || rate == nil {
		return usageError(c.app.Out, "-rate is required and must be a number")
	}
	req := dto.CreateExchangeRateRequest{CurrencyCode: c.currency, Rate: *rate, RateDate: c.date}
	if err := dto.Validate(req); err != nil {
		return usageError(c.app.Out, "%v", err)
	}

	return c.app.run(ctx, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		created, err := svc.ExchangeRate.CreateExchangeRate(ctx, req)
		if err != nil {
			return err
		}
		c.app.Logger.Info("Exchange rate recorded", slog.String("rate_id", created.ExchangeRateID))
		fmt.Fprintf(c.app.Out, "1 %s = %s %s on %s\n",
			created.CurrencyCode, created.ReferenceUnitsPerUnit, svc.ExchangeRate.ReferenceCurrency(),
			created.RateDate.Format("2006-01-02"))
		return nil
	})
}

type addVendorCmd struct {
	app          *App
	name         string
	currency     string
	discount     string
	discountCode string
	url          string
}

func (*addVendorCmd) Name() string     { return "add-vendor" }
func (*addVendorCmd) Synopsis() string { return "add a vendor" }
func (*addVendorCmd) Usage() string {
	return `buylog add-vendor -name <name> -currency <code> [-discount <percent>] [-code <discount code>] [-url <url>]
`
}

func (c *addVendorCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "vendor name")
	f.StringVar(&c.currency, "currency", "", "currency the vendor quotes in")
	f.StringVar(&c.discount, "discount", "", "standing discount in percent (defaults to the configured value)")
	f.StringVar(&c.discountCode, "code", "", "discount code")
	f.StringVar(&c.url, "url", "", "vendor website")
}

func (c *addVendorCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	discount, err := optionalDecimal("discount", c.discount)
	if err != nil {
		return usageError(c.app.Out, "%v", err)
	}
	req := dto.CreateVendorRequest{
		Name:         c.name,
		CurrencyCode: c.currency,
		Discount:     discount,
		DiscountCode: optionalString(c.discountCode),
		URL:          optionalString(c.url),
	}
	if err := dto.Validate(req); err != nil {
		return usageError(c.app.Out, "%v", err)
	}

	return c.app.run(ctx, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		vendor, err := svc.Catalog.CreateVendor(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.app.Out, "vendor %s (%s)\n", vendor.VendorID, vendor.Name)
		return nil
	})
}

type addProductCmd struct {
	app      *App
	name     string
	brand    string
	category string
}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "add a product, creating its brand if needed" }
func (*addProductCmd) Usage() string {
	return `buylog add-product -name <name> -brand <brand> [-category <category>]
`
}

func (c *addProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "product name")
	f.StringVar(&c.brand, "brand", "", "brand name")
	f.StringVar(&c.category, "category", "", "category")
}

func (c *addProductCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	req := dto.CreateProductRequest{Name: c.name, BrandName: c.brand, Category: optionalString(c.category)}
	if err := dto.Validate(req); err != nil {
		return usageError(c.app.Out, "%v", err)
	}

	return c.app.run(ctx, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		product, err := svc.Catalog.CreateProduct(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.app.Out, "product %s (%s)\n", product.ProductID, product.Name)
		return nil
	})
}

type addQuoteCmd struct {
	app      *App
	vendor   string
	product  string
	price    string
	shipping string
	tax      string
	status   string
}

func (*addQuoteCmd) Name() string     { return "add-quote" }
func (*addQuoteCmd) Synopsis() string { return "record a vendor's quote for a product" }
func (*addQuoteCmd) Usage() string {
	return `buylog add-quote -vendor <id> -product <id> -price <amount> [-shipping <amount>] [-tax <percent>] [-status considering|ordered|received]

  The quote takes the vendor's currency and discount.
`
}

func (c *addQuoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.vendor, "vendor", "", "vendor id")
	f.StringVar(&c.product, "product", "", "product id")
	f.StringVar(&c.price, "price", "", "base price in the vendor's currency")
	f.StringVar(&c.shipping, "shipping", "0", "shipping cost in the vendor's currency")
	f.StringVar(&c.tax, "tax", "0", "tax rate in percent")
	f.StringVar(&c.status, "status", "", "purchasing status (default considering)")
}

func (c *addQuoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := optionalDecimal("price", c.price)
	if err != nil || price == nil {
		return usageError(c.app.Out, "-price is required and must be a number")
	}
	shipping, err := optionalDecimal("shipping", c.shipping)
	if err != nil {
		return usageError(c.app.Out, "%v", err)
	}
	tax, err := optionalDecimal("tax", c.tax)
	if err != nil {
		return usageError(c.app.Out, "%v", err)
	}
	req := dto.CreateQuoteRequest{
		VendorID:     c.vendor,
		ProductID:    c.product,
		BasePrice:    *price,
		ShippingCost: valueOrZero(shipping),
		TaxRate:      valueOrZero(tax),
		Status:       c.status,
	}
	if err := dto.Validate(req); err != nil {
		return usageError(c.app.Out, "%v", err)
	}

	return c.app.run(ctx, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		quote, err := svc.Quote.CreateQuote(ctx, req)
		if err != nil {
			return err
		}
		c.app.printMarkdown(quoteMarkdown(*quote, svc.ExchangeRate.ReferenceCurrency()))
		return nil
	})
}

type setPriceCmd struct {
	app      *App
	quote    string
	price    string
	shipping string
	tax      string
}

func (*setPriceCmd) Name() string     { return "set-price" }
func (*setPriceCmd) Synopsis() string { return "change the price of a quote" }
func (*setPriceCmd) Usage() string {
	return `buylog set-price -quote <id> [-price <amount>] [-shipping <amount>] [-tax <percent>]

  Only the given fields change. An unchanged price records no history.
`
}

func (c *setPriceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.quote, "quote", "", "quote id")
	f.StringVar(&c.price, "price", "", "new base price")
	f.StringVar(&c.shipping, "shipping", "", "new shipping cost")
	f.StringVar(&c.tax, "tax", "", "new tax rate in percent")
}

func (c *setPriceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.quote == "" {
		return usageError(c.app.Out, "-quote is required")
	}
	var req dto.UpdateQuotePriceRequest
	var err error
	if req.BasePrice, err = optionalDecimal("price", c.price); err != nil {
		return usageError(c.app.Out, "%v", err)
	}
	if req.ShippingCost, err = optionalDecimal("shipping", c.shipping); err != nil {
		return usageError(c.app.Out, "%v", err)
	}
	if req.TaxRate, err = optionalDecimal("tax", c.tax); err != nil {
		return usageError(c.app.Out, "%v", err)
	}
	if req.BasePrice == nil && req.ShippingCost == nil && req.TaxRate == nil {
		return usageError(c.app.Out, "nothing to change: give -price, -shipping or -tax")
	}

	return c.app.run(ctx, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		quote, err := svc.Quote.UpdateQuotePrice(ctx, c.quote, req)
		if err != nil {
			return err
		}
		c.app.printMarkdown(quoteMarkdown(*quote, svc.ExchangeRate.ReferenceCurrency()))
		return nil
	})
}

type historyCmd struct {
	app     *App
	quote   string
	product string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the price history of a quote or a product" }
func (*historyCmd) Usage() string {
	return `buylog history (-quote <id> | -product <id>)
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.quote, "quote", "", "quote id")
	f.StringVar(&c.product, "product", "", "product id")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.quote == "") == (c.product == "") {
		return usageError(c.app.Out, "give exactly one of -quote or -product")
	}

	return c.app.run(ctx, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		ref := svc.ExchangeRate.ReferenceCurrency()
		if c.product != "" {
			entries, err := svc.Quote.GetProductHistory(ctx, c.product)
			if err != nil {
				return err
			}
			c.app.printMarkdown(historyMarkdown("History of product "+c.product, entries, nil, ref))
			return nil
		}

		entries, err := svc.Quote.GetQuoteHistory(ctx, c.quote)
		if err != nil {
			return err
		}
		trend, err := svc.Quote.GetQuoteTrend(ctx, c.quote)
		if err != nil {
			return err
		}
		c.app.printMarkdown(historyMarkdown("History of quote "+c.quote, entries, &trend, ref))
		return nil
	})
}

type bestCmd struct {
	app     *App
	product string
}

func (*bestCmd) Name() string     { return "best" }
func (*bestCmd) Synopsis() string { return "show the cheapest quote of a product" }
func (*bestCmd) Usage() string {
	return `buylog best -product <id>
`
}

func (c *bestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "product", "", "product id")
}

func (c *bestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == "" {
		return usageError(c.app.Out, "-product is required")
	}

	return c.app.run(ctx, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		best, err := svc.Valuation.BestPrice(ctx, c.product)
		if err != nil {
			return err
		}
		c.app.printMarkdown(bestPriceMarkdown(c.product, *best, svc.ExchangeRate.ReferenceCurrency()))
		return nil
	})
}

type compareCmd struct {
	app     *App
	product string
	xlsx    string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "rank every quote of a product" }
func (*compareCmd) Usage() string {
	return `buylog compare -product <id> [-xlsx <file>]

  With -xlsx the comparison is also written as a spreadsheet.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "product", "", "product id")
	f.StringVar(&c.xlsx, "xlsx", "", "spreadsheet output path")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == "" {
		return usageError(c.app.Out, "-product is required")
	}

	return c.app.run(ctx, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		cmp, err := svc.Comparison.CompareProduct(ctx, c.product)
		if err != nil {
			return err
		}
		c.app.printMarkdown(comparisonMarkdown(*cmp, svc.ExchangeRate.ReferenceCurrency()))

		if c.xlsx == "" {
			return nil
		}
		file, err := os.Create(c.xlsx)
		if err != nil {
			return err
		}
		if err := svc.Comparison.ExportComparisonXLSX(ctx, c.product, file); err != nil {
			file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}
		fmt.Fprintf(c.app.Out, "written %s\n", c.xlsx)
		return nil
	})
}

type checkAlertsCmd struct {
	app     *App
	product string
}

func (*checkAlertsCmd) Name() string     { return "check-alerts" }
func (*checkAlertsCmd) Synopsis() string { return "evaluate a product's price alerts" }
func (*checkAlertsCmd) Usage() string {
	return `buylog check-alerts -product <id>

  Fires every armed alert whose threshold the current best price reaches.
`
}

func (c *checkAlertsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "product", "", "product id")
}

func (c *checkAlertsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == "" {
		return usageError(c.app.Out, "-product is required")
	}

	return c.app.run(ctx, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		fired, err := svc.Alert.CheckAlerts(ctx, c.product)
		if err != nil {
			return err
		}
		c.app.printMarkdown(alertsMarkdown(c.product, fired, svc.ExchangeRate.ReferenceCurrency()))
		return nil
	})
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

