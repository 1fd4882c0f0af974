package domain

import "github.com/shopspring/decimal"

// BestPrice is the winning quote of a product. Found is false when the product has no quotes.
type BestPrice struct {
	Found  bool            `json:"found"`
	Quote  Quote           `json:"quote"`
	Amount decimal.Decimal `json:"amount"`
}

// ProductComparison is every quote of a product ranked by total cost, cheapest first.
type ProductComparison struct {
	Product Product          `json:"product"`
	Quotes  []ValuedQuote    `json:"quotes"`
	Best    *decimal.Decimal `json:"best,omitempty"`
	Worst   *decimal.Decimal `json:"worst,omitempty"`
	Average *decimal.Decimal `json:"average,omitempty"`
	Spread  *decimal.Decimal `json:"spread,omitempty"`
}

// SimilarGroup is a set of names that look like duplicates of each other.
type SimilarGroup struct {
	IDs   []string `json:"ids"`
	Names []string `json:"names"`
}
