package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings holds company identity, tax defaults and display preferences.
// There is exactly one row.
type Settings struct {
	CompanyName    string            `json:"company_name"`
	CompanyAddress string            `json:"company_address"`
	CompanyPhone   string            `json:"company_phone"`
	CompanyGSTIN   string            `json:"company_gstin"`
	BankName       string            `json:"bank_name"`
	BankAccount    string            `json:"bank_account"`
	BankIFSC       string            `json:"bank_ifsc"`
	DefaultTaxRate decimal.Decimal   `json:"default_tax_rate"`
	Prefixes       map[string]string `json:"prefixes"`
	DecimalPlaces  int               `json:"decimal_places"`
	DateFormat     string            `json:"date_format"`
	CurrencySymbol string            `json:"currency_symbol"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// PrefixFor returns the configured ID prefix for a document type key,
// falling back to the built-in default when unset.
func (s Settings) PrefixFor(docType string) string {
	if p, ok := s.Prefixes[docType]; ok && p != "" {
		return p
	}
	switch docType {
	case TypeQuotation:
		return "QUO"
	case TypePurchaseOrder:
		return "PO"
	case TypeWaybill:
		return "WB"
	default:
		return "INV"
	}
}

// SettingsInput is used for updating settings.
type SettingsInput struct {
	CompanyName    string            `json:"company_name"`
	CompanyAddress string            `json:"company_address"`
	CompanyPhone   string            `json:"company_phone"`
	CompanyGSTIN   string            `json:"company_gstin"`
	BankName       string            `json:"bank_name"`
	BankAccount    string            `json:"bank_account"`
	BankIFSC       string            `json:"bank_ifsc"`
	DefaultTaxRate decimal.Decimal   `json:"default_tax_rate"`
	Prefixes       map[string]string `json:"prefixes"`
	DecimalPlaces  int               `json:"decimal_places"`
	DateFormat     string            `json:"date_format"`
	CurrencySymbol string            `json:"currency_symbol"`
}

func (s *SettingsInput) Validate() string {
	if s.DefaultTaxRate.IsNegative() {
		return "default_tax_rate must be non-negative"
	}
	if s.DecimalPlaces < 0 || s.DecimalPlaces > 4 {
		return "decimal_places must be between 0 and 4"
	}
	switch s.DateFormat {
	case "", "DD/MM/YYYY", "MM/DD/YYYY", "YYYY-MM-DD":
	default:
		return "date_format must be one of: DD/MM/YYYY, MM/DD/YYYY, YYYY-MM-DD"
	}
	if s.DateFormat == "" {
		s.DateFormat = "DD/MM/YYYY"
	}
	for t := range s.Prefixes {
		valid := false
		for _, known := range DocumentTypes {
			if t == known {
				valid = true
				break
			}
		}
		if !valid {
			return "prefixes: unknown document type " + t
		}
	}
	return ""
}
