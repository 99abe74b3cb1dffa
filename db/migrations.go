package db

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Migrate runs all table creation statements. Safe to call multiple times
// due to IF NOT EXISTS clauses.
func Migrate(db *sql.DB) error {
	slog.Info("running database migrations")

	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w\nstatement: %s", err, stmt)
		}
	}

	slog.Info("database migrations complete")
	return nil
}

var migrations = []string{
	// Per-document-type counters. current_value only ever increases; the
	// single-statement UPDATE in store.NextSequence is the sole mutator.
	`CREATE TABLE IF NOT EXISTS sequences (
		doc_type TEXT PRIMARY KEY,
		current_value INTEGER NOT NULL DEFAULT 0 CHECK(current_value >= 0)
	)`,

	// Business documents: invoices, quotations, purchase orders, waybills.
	// Parties, line items, extra charges and computed totals are stored as
	// JSON text; totals are always recomputed server-side before a write.
	`CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL CHECK(type IN ('invoice', 'quotation', 'purchase_order', 'waybill')),
		seq_no INTEGER NOT NULL,
		issue_date DATE,
		buyer TEXT NOT NULL DEFAULT '{}',
		consignee TEXT,
		items TEXT NOT NULL DEFAULT '[]',
		charges TEXT NOT NULL DEFAULT '[]',
		totals TEXT NOT NULL DEFAULT '{}',
		transport_mode TEXT,
		vehicle_no TEXT,
		reference TEXT,
		notes TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_type ON documents(type)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_created ON documents(created_at)`,

	// Company identity, tax defaults and display preferences. Single row.
	`CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK(id = 1),
		company_name TEXT NOT NULL DEFAULT '',
		company_address TEXT NOT NULL DEFAULT '',
		company_phone TEXT NOT NULL DEFAULT '',
		company_gstin TEXT NOT NULL DEFAULT '',
		bank_name TEXT NOT NULL DEFAULT '',
		bank_account TEXT NOT NULL DEFAULT '',
		bank_ifsc TEXT NOT NULL DEFAULT '',
		default_tax_rate TEXT NOT NULL DEFAULT '18',
		invoice_prefix TEXT NOT NULL DEFAULT 'INV',
		quotation_prefix TEXT NOT NULL DEFAULT 'QUO',
		purchase_order_prefix TEXT NOT NULL DEFAULT 'PO',
		waybill_prefix TEXT NOT NULL DEFAULT 'WB',
		decimal_places INTEGER NOT NULL DEFAULT 2,
		date_format TEXT NOT NULL DEFAULT 'DD/MM/YYYY',
		currency_symbol TEXT NOT NULL DEFAULT 'Rs.',
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`INSERT OR IGNORE INTO settings (id) VALUES (1)`,

	// Stock items referenced by invoice lines.
	`CREATE TABLE IF NOT EXISTS stock_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		hsn_code TEXT,
		unit_price TEXT NOT NULL DEFAULT '0',
		tax_rate TEXT NOT NULL DEFAULT '0',
		quantity TEXT NOT NULL DEFAULT '0',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_items_name ON stock_items(name)`,

	// Employees.
	`CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		role TEXT,
		phone TEXT,
		salary TEXT NOT NULL DEFAULT '0',
		joined_date DATE,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}
