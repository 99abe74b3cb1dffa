package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Document types. The type key selects the ID prefix and the sequence
// counter a new document draws its number from.
const (
	TypeInvoice       = "invoice"
	TypeQuotation     = "quotation"
	TypePurchaseOrder = "purchase_order"
	TypeWaybill       = "waybill"
)

// DocumentTypes lists every valid document type key.
var DocumentTypes = []string{TypeInvoice, TypeQuotation, TypePurchaseOrder, TypeWaybill}

// Party identifies one side of a document (buyer, consignee).
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
	Phone   string `json:"phone"`
	State   string `json:"state"`
}

// LineItem is a quantified goods/services line. TaxableValue is always
// derived as Quantity x UnitPrice, never stored.
type LineItem struct {
	Description string          `json:"description"`
	HSNCode     string          `json:"hsn_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	StockItemID *int            `json:"stock_item_id,omitempty"`
}

// Charge is a flat-priced line without a quantity breakdown (freight,
// packing, service fee). Taxed the same way as a LineItem with the
// charge price as its taxable value.
type Charge struct {
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// DocumentTotals holds the computed money summary of a document. CGST and
// SGST are nil when no line carries a positive tax rate; the totals block
// then renders without tax rows at all rather than showing zeros.
type DocumentTotals struct {
	TaxableValue decimal.Decimal  `json:"taxable_value"`
	CGST         *decimal.Decimal `json:"cgst,omitempty"`
	SGST         *decimal.Decimal `json:"sgst,omitempty"`
	RoundOff     decimal.Decimal  `json:"round_off"`
	GrandTotal   decimal.Decimal  `json:"grand_total"`
}

// Document is a stored business document. The ID is assigned from the
// per-type sequence at creation time and never changes afterwards.
type Document struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	SeqNo         int64          `json:"seq_no"`
	IssueDate     *string        `json:"issue_date"`
	Buyer         Party          `json:"buyer"`
	Consignee     *Party         `json:"consignee,omitempty"`
	Items         []LineItem     `json:"items"`
	Charges       []Charge       `json:"charges"`
	Totals        DocumentTotals `json:"totals"`
	TransportMode *string        `json:"transport_mode"`
	VehicleNo     *string        `json:"vehicle_no"`
	Reference     *string        `json:"reference"`
	Notes         *string        `json:"notes"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// DocumentInput is used for creating/updating documents. Totals are not
// accepted from the client; they are recomputed on every write.
type DocumentInput struct {
	Type          string     `json:"type"`
	IssueDate     *string    `json:"issue_date"`
	Buyer         Party      `json:"buyer"`
	Consignee     *Party     `json:"consignee"`
	Items         []LineItem `json:"items"`
	Charges       []Charge   `json:"charges"`
	TransportMode *string    `json:"transport_mode"`
	VehicleNo     *string    `json:"vehicle_no"`
	Reference     *string    `json:"reference"`
	Notes         *string    `json:"notes"`
}

func (d *DocumentInput) Validate() string {
	valid := false
	for _, t := range DocumentTypes {
		if d.Type == t {
			valid = true
			break
		}
	}
	if !valid {
		return "type must be one of: invoice, quotation, purchase_order, waybill"
	}
	for i, item := range d.Items {
		if item.Description == "" {
			return itemField(i, "description is required")
		}
		if item.Quantity.IsNegative() {
			return itemField(i, "quantity must be non-negative")
		}
		if item.UnitPrice.IsNegative() {
			return itemField(i, "unit_price must be non-negative")
		}
		if item.TaxRate.IsNegative() {
			return itemField(i, "tax_rate must be non-negative")
		}
	}
	for i, c := range d.Charges {
		if c.Description == "" {
			return chargeField(i, "description is required")
		}
		if c.Price.IsNegative() {
			return chargeField(i, "price must be non-negative")
		}
		if c.TaxRate.IsNegative() {
			return chargeField(i, "tax_rate must be non-negative")
		}
	}
	return ""
}

func itemField(i int, msg string) string {
	return "items[" + strconv.Itoa(i) + "]: " + msg
}

func chargeField(i int, msg string) string {
	return "charges[" + strconv.Itoa(i) + "]: " + msg
}
