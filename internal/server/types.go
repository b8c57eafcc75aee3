package server

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/price-engine/internal/config"
	"github.com/rezonia/price-engine/internal/price"
)

// PriceRequest describes a price to build.
//
// With By empty both amounts are taken as given and the tax rate is derived
// unless TaxRate is set. With By "nett" or "gross" only that amount is used
// and the other is computed from TaxRate.
type PriceRequest struct {
	Nett     decimal.Decimal `json:"nett"`
	Gross    decimal.Decimal `json:"gross"`
	Currency string          `json:"currency" binding:"omitempty,currency"`
	TaxRate  *int            `json:"tax_rate"`
	By       string          `json:"by" binding:"omitempty,oneof=nett gross"`
}

// BinaryRequest is the body of add and subtract
type BinaryRequest struct {
	Left  PriceRequest `json:"left"`
	Right PriceRequest `json:"right"`
}

// ScaleRequest is the body of multiply and divide
type ScaleRequest struct {
	Price  PriceRequest     `json:"price"`
	Factor *decimal.Decimal `json:"factor" binding:"required"`
}

// AdjustRequest is the body of adjust: a scalar amount added to or taken off
// one side of a price
type AdjustRequest struct {
	Price    PriceRequest     `json:"price"`
	Op       string           `json:"op" binding:"required,oneof=add_gross subtract_gross subtract_nett"`
	Value    *decimal.Decimal `json:"value" binding:"required"`
	Currency string           `json:"currency" binding:"omitempty,currency"`
}

// PriceResponse is a price as returned by the API
type PriceResponse struct {
	Nett       decimal.Decimal `json:"nett"`
	Gross      decimal.Decimal `json:"gross"`
	TaxRate    int             `json:"tax_rate"`
	HasTaxRate bool            `json:"has_tax_rate"`
	Currency   string          `json:"currency,omitempty"`
	Formatted  string          `json:"formatted"`
}

// NewPriceResponse converts p using its display amounts
func NewPriceResponse(p price.Price) PriceResponse {
	return PriceResponse{
		Nett:       p.Nett(),
		Gross:      p.Gross(),
		TaxRate:    p.TaxRate(),
		HasTaxRate: p.HasTaxRate(),
		Currency:   p.CurrencySymbol(),
		Formatted:  p.String(),
	}
}

// CalculatorsResponse is the response for the calculators endpoint
type CalculatorsResponse struct {
	Calculators []config.CalculatorInfo `json:"calculators"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
