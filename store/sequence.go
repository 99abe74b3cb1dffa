package store

import (
	"context"
	"database/sql"
	"fmt"
)

// querier is satisfied by both *sql.DB and *sql.Tx so number issuance can
// run inside the document-create transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NextSequence issues the next number for a document type. The increment
// is a single UPDATE ... RETURNING, an indivisible read-modify-write, so
// concurrent saves can never observe the same value and no value is ever
// skipped. If the counter store is unreachable the save fails outright; a
// number is never guessed client-side.
func NextSequence(ctx context.Context, q querier, docType string) (int64, error) {
	if _, err := q.ExecContext(ctx,
		`INSERT INTO sequences (doc_type, current_value) VALUES (?, 0)
		 ON CONFLICT(doc_type) DO NOTHING`, docType); err != nil {
		return 0, fmt.Errorf("seeding sequence %q: %w", docType, err)
	}

	var n int64
	err := q.QueryRowContext(ctx,
		`UPDATE sequences SET current_value = current_value + 1
		 WHERE doc_type = ? RETURNING current_value`, docType).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("issuing sequence %q: %w", docType, err)
	}
	return n, nil
}

// FormatID builds the human-readable document ID from the configured
// prefix, the issue year and the zero-padded sequence number, e.g.
// "INV-2026-00042".
func FormatID(prefix string, year int, n int64) string {
	return fmt.Sprintf("%s-%d-%05d", prefix, year, n)
}
