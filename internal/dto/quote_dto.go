package dto

import (
	"time"

	"github.com/SscSPs/buylog/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateQuoteRequest defines the data needed to record a vendor's offer.
// Currency and discount come from the vendor.
type CreateQuoteRequest struct {
	VendorID     string          `json:"vendorID" binding:"required"`
	ProductID    string          `json:"productID" binding:"required"`
	BasePrice    decimal.Decimal `json:"basePrice" binding:"required"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	TaxRate      decimal.Decimal `json:"taxRate"` // percent
	Status       string          `json:"status" binding:"omitempty,oneof=considering ordered received"`
}

// UpdateQuotePriceRequest changes the price-affecting fields of a quote.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateQuotePriceRequest struct {
	BasePrice    *decimal.Decimal `json:"basePrice"`
	ShippingCost *decimal.Decimal `json:"shippingCost"`
	TaxRate      *decimal.Decimal `json:"taxRate"`
}

// SetQuoteStatusRequest moves a quote through the purchasing flow.
type SetQuoteStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=considering ordered received"`
}

// AttachReceiptRequest links a receipt file to a quote.
type AttachReceiptRequest struct {
	Path string `json:"path" binding:"required,max=1024"`
}

// QuoteResponse defines the data returned for a quote, with its cost in the reference currency.
type QuoteResponse struct {
	QuoteID      string             `json:"quoteID"`
	VendorID     string             `json:"vendorID"`
	ProductID    string             `json:"productID"`
	BasePrice    decimal.Decimal    `json:"basePrice"`
	CurrencyCode string             `json:"currencyCode"`
	ShippingCost decimal.Decimal    `json:"shippingCost"`
	TaxRate      decimal.Decimal    `json:"taxRate"`
	Discount     decimal.Decimal    `json:"discount"`
	Status       domain.QuoteStatus `json:"status"`
	ReceiptPath  *string            `json:"receiptPath,omitempty"`
	TotalCost    decimal.Decimal    `json:"totalCost"`
	PricedAt     time.Time          `json:"pricedAt"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// ToQuoteResponse converts a valued quote to QuoteResponse DTO
func ToQuoteResponse(vq domain.ValuedQuote) QuoteResponse {
	q := vq.Quote
	return QuoteResponse{
		QuoteID:      q.QuoteID,
		VendorID:     q.VendorID,
		ProductID:    q.ProductID,
		BasePrice:    q.BasePrice,
		CurrencyCode: q.CurrencyCode,
		ShippingCost: q.ShippingCost,
		TaxRate:      q.TaxRate,
		Discount:     q.Discount,
		Status:       q.Status,
		ReceiptPath:  q.ReceiptPath,
		TotalCost:    vq.TotalCost.Round(2),
		PricedAt:     q.PricedAt,
		CreatedAt:    q.CreatedAt,
	}
}

// ToListQuoteResponse converts valued quotes to QuoteResponse DTOs.
func ToListQuoteResponse(quotes []domain.ValuedQuote) []QuoteResponse {
	responses := make([]QuoteResponse, len(quotes))
	for i, vq := range quotes {
		responses[i] = ToQuoteResponse(vq)
	}
	return responses
}

// TrendResponse is the label of a quote's latest price change.
type TrendResponse struct {
	QuoteID string       `json:"quoteID"`
	Trend   domain.Trend `json:"trend"`
}

// BestPriceResponse is the winning quote of a product, absent when it has no quotes.
type BestPriceResponse struct {
	ProductID         string           `json:"productID"`
	ReferenceCurrency string           `json:"referenceCurrency"`
	Quote             *QuoteResponse   `json:"quote,omitempty"`
	Amount            *decimal.Decimal `json:"amount,omitempty"`
}

// ToBestPriceResponse converts a domain.BestPrice to BestPriceResponse DTO
func ToBestPriceResponse(productID, referenceCurrency string, best domain.BestPrice) BestPriceResponse {
	resp := BestPriceResponse{ProductID: productID, ReferenceCurrency: referenceCurrency}
	if !best.Found {
		return resp
	}
	q := ToQuoteResponse(domain.ValuedQuote{Quote: best.Quote, TotalCost: best.Amount})
	amount := best.Amount.Round(2)
	resp.Quote = &q
	resp.Amount = &amount
	return resp
}
