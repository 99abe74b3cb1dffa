package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/manojvns/billdesk/models"
)

// GetSettings reads the single settings row.
func GetSettings(ctx context.Context, db *sql.DB) (models.Settings, error) {
	var s models.Settings
	var rate string
	var inv, quo, po, wb string
	err := db.QueryRowContext(ctx, `SELECT company_name, company_address, company_phone,
		company_gstin, bank_name, bank_account, bank_ifsc, default_tax_rate,
		invoice_prefix, quotation_prefix, purchase_order_prefix, waybill_prefix,
		decimal_places, date_format, currency_symbol, updated_at
		FROM settings WHERE id = 1`).Scan(
		&s.CompanyName, &s.CompanyAddress, &s.CompanyPhone, &s.CompanyGSTIN,
		&s.BankName, &s.BankAccount, &s.BankIFSC, &rate,
		&inv, &quo, &po, &wb,
		&s.DecimalPlaces, &s.DateFormat, &s.CurrencySymbol, &s.UpdatedAt)
	if err != nil {
		return s, fmt.Errorf("reading settings: %w", err)
	}

	s.DefaultTaxRate, err = decimal.NewFromString(rate)
	if err != nil {
		s.DefaultTaxRate = decimal.Zero
	}
	s.Prefixes = map[string]string{
		models.TypeInvoice:       inv,
		models.TypeQuotation:     quo,
		models.TypePurchaseOrder: po,
		models.TypeWaybill:       wb,
	}
	return s, nil
}

// UpdateSettings replaces the settings row.
func UpdateSettings(ctx context.Context, db *sql.DB, input models.SettingsInput) error {
	prefix := func(t, fallback string) string {
		if p, ok := input.Prefixes[t]; ok && p != "" {
			return p
		}
		return fallback
	}
	_, err := db.ExecContext(ctx, `UPDATE settings SET
		company_name = ?, company_address = ?, company_phone = ?, company_gstin = ?,
		bank_name = ?, bank_account = ?, bank_ifsc = ?, default_tax_rate = ?,
		invoice_prefix = ?, quotation_prefix = ?, purchase_order_prefix = ?, waybill_prefix = ?,
		decimal_places = ?, date_format = ?, currency_symbol = ?,
		updated_at = CURRENT_TIMESTAMP
		WHERE id = 1`,
		input.CompanyName, input.CompanyAddress, input.CompanyPhone, input.CompanyGSTIN,
		input.BankName, input.BankAccount, input.BankIFSC, input.DefaultTaxRate.String(),
		prefix(models.TypeInvoice, "INV"), prefix(models.TypeQuotation, "QUO"),
		prefix(models.TypePurchaseOrder, "PO"), prefix(models.TypeWaybill, "WB"),
		input.DecimalPlaces, input.DateFormat, input.CurrencySymbol)
	if err != nil {
		return fmt.Errorf("updating settings: %w", err)
	}
	return nil
}
