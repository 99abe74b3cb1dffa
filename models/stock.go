package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem represents a tracked inventory item. Invoice lines may
// reference one by ID, which deducts the invoiced quantity on save.
type StockItem struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	HSNCode   *string         `json:"hsn_code"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StockItemInput is used for creating/updating stock items.
type StockItemInput struct {
	Name      string          `json:"name"`
	HSNCode   *string         `json:"hsn_code"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Quantity  decimal.Decimal `json:"quantity"`
}

func (s *StockItemInput) Validate() string {
	if s.Name == "" {
		return "name is required"
	}
	if s.UnitPrice.IsNegative() {
		return "unit_price must be non-negative"
	}
	if s.TaxRate.IsNegative() {
		return "tax_rate must be non-negative"
	}
	if s.Quantity.IsNegative() {
		return "quantity must be non-negative"
	}
	return ""
}
