// Package store is the persistence layer: documents keyed by their
// generated IDs, and the per-type sequence counters those IDs come from.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/manojvns/billdesk/models"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// DocumentStore persists business documents in SQLite.
type DocumentStore struct {
	db *sql.DB
}

// NewDocumentStore returns a store over the given database.
func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

const documentColumns = `id, type, seq_no, issue_date, buyer, consignee, items, charges, totals,
	transport_mode, vehicle_no, reference, notes, created_at, updated_at`

// Create issues the next sequence number for the input's type, forms the
// document ID and persists the document, all in one transaction: if the
// insert fails the number is rolled back with it, so no document exists
// without a number and no number leaks on a failed save.
func (s *DocumentStore) Create(ctx context.Context, input models.DocumentInput, totals models.DocumentTotals, prefix string) (models.Document, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Document{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	seq, err := NextSequence(ctx, tx, input.Type)
	if err != nil {
		return models.Document{}, err
	}
	id := FormatID(prefix, issueYear(input.IssueDate), seq)

	buyer, consignee, items, charges, totalsJSON, err := marshalFields(input, totals)
	if err != nil {
		return models.Document{}, err
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO documents
		(id, type, seq_no, issue_date, buyer, consignee, items, charges, totals,
		 transport_mode, vehicle_no, reference, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input.Type, seq, input.IssueDate, buyer, consignee, items, charges, totalsJSON,
		input.TransportMode, input.VehicleNo, input.Reference, input.Notes)
	if err != nil {
		return models.Document{}, fmt.Errorf("inserting document: %w", err)
	}

	if input.Type == models.TypeInvoice {
		if err := deductStock(ctx, tx, input.Items); err != nil {
			return models.Document{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Document{}, fmt.Errorf("committing document: %w", err)
	}
	return s.Get(ctx, id)
}

// Get fetches one document by its generated ID.
func (s *DocumentStore) Get(ctx context.Context, id string) (models.Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = ?`, id)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, ErrNotFound
	}
	return doc, err
}

// Update replaces a document's editable fields. The ID and sequence
// number are kept; updating never re-issues a number.
func (s *DocumentStore) Update(ctx context.Context, id string, input models.DocumentInput, totals models.DocumentTotals) (models.Document, error) {
	buyer, consignee, items, charges, totalsJSON, err := marshalFields(input, totals)
	if err != nil {
		return models.Document{}, err
	}

	res, err := s.db.ExecContext(ctx, `UPDATE documents SET
		issue_date = ?, buyer = ?, consignee = ?, items = ?, charges = ?, totals = ?,
		transport_mode = ?, vehicle_no = ?, reference = ?, notes = ?,
		updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		input.IssueDate, buyer, consignee, items, charges, totalsJSON,
		input.TransportMode, input.VehicleNo, input.Reference, input.Notes, id)
	if err != nil {
		return models.Document{}, fmt.Errorf("updating document: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Document{}, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes a document.
func (s *DocumentStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Search lists documents matching a free-text query over the ID, buyer,
// reference and notes, newest first, optionally restricted to one type.
func (s *DocumentStore) Search(ctx context.Context, query, docType string) ([]models.Document, error) {
	sqlQuery := `SELECT ` + documentColumns + ` FROM documents`
	var conditions []string
	var args []any

	if docType != "" {
		conditions = append(conditions, "type = ?")
		args = append(args, docType)
	}
	if query != "" {
		conditions = append(conditions, "(id LIKE ? OR buyer LIKE ? OR reference LIKE ? OR notes LIKE ?)")
		q := "%" + query + "%"
		args = append(args, q, q, q, q)
	}
	if len(conditions) > 0 {
		sqlQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	sqlQuery += " ORDER BY created_at DESC"

	return s.queryDocuments(ctx, sqlQuery, args...)
}

// Recent lists the latest documents of one type, newest first.
func (s *DocumentStore) Recent(ctx context.Context, docType string, limit int) ([]models.Document, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryDocuments(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE type = ?
		 ORDER BY created_at DESC LIMIT ?`, docType, limit)
}

func (s *DocumentStore) queryDocuments(ctx context.Context, query string, args ...any) ([]models.Document, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func scanDocument(scanner interface{ Scan(...any) error }) (models.Document, error) {
	var doc models.Document
	var buyer, items, charges, totals string
	var consignee *string
	err := scanner.Scan(&doc.ID, &doc.Type, &doc.SeqNo, &doc.IssueDate,
		&buyer, &consignee, &items, &charges, &totals,
		&doc.TransportMode, &doc.VehicleNo, &doc.Reference, &doc.Notes,
		&doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return doc, err
	}

	if err := json.Unmarshal([]byte(buyer), &doc.Buyer); err != nil {
		return doc, fmt.Errorf("decoding buyer for %s: %w", doc.ID, err)
	}
	if consignee != nil {
		doc.Consignee = &models.Party{}
		if err := json.Unmarshal([]byte(*consignee), doc.Consignee); err != nil {
			return doc, fmt.Errorf("decoding consignee for %s: %w", doc.ID, err)
		}
	}
	if err := json.Unmarshal([]byte(items), &doc.Items); err != nil {
		return doc, fmt.Errorf("decoding items for %s: %w", doc.ID, err)
	}
	if err := json.Unmarshal([]byte(charges), &doc.Charges); err != nil {
		return doc, fmt.Errorf("decoding charges for %s: %w", doc.ID, err)
	}
	if err := json.Unmarshal([]byte(totals), &doc.Totals); err != nil {
		return doc, fmt.Errorf("decoding totals for %s: %w", doc.ID, err)
	}
	return doc, nil
}

func marshalFields(input models.DocumentInput, totals models.DocumentTotals) (buyer string, consignee *string, items, charges, totalsJSON string, err error) {
	b, err := json.Marshal(input.Buyer)
	if err != nil {
		return "", nil, "", "", "", fmt.Errorf("encoding buyer: %w", err)
	}
	buyer = string(b)

	if input.Consignee != nil {
		c, err := json.Marshal(input.Consignee)
		if err != nil {
			return "", nil, "", "", "", fmt.Errorf("encoding consignee: %w", err)
		}
		s := string(c)
		consignee = &s
	}

	if input.Items == nil {
		input.Items = []models.LineItem{}
	}
	i, err := json.Marshal(input.Items)
	if err != nil {
		return "", nil, "", "", "", fmt.Errorf("encoding items: %w", err)
	}
	items = string(i)

	if input.Charges == nil {
		input.Charges = []models.Charge{}
	}
	c, err := json.Marshal(input.Charges)
	if err != nil {
		return "", nil, "", "", "", fmt.Errorf("encoding charges: %w", err)
	}
	charges = string(c)

	t, err := json.Marshal(totals)
	if err != nil {
		return "", nil, "", "", "", fmt.Errorf("encoding totals: %w", err)
	}
	totalsJSON = string(t)
	return buyer, consignee, items, charges, totalsJSON, nil
}

// deductStock subtracts invoiced quantities from referenced stock items.
// Unknown references are skipped; stock can go negative, matching the
// best-effort tracking the app promises.
func deductStock(ctx context.Context, tx *sql.Tx, items []models.LineItem) error {
	for _, item := range items {
		if item.StockItemID == nil {
			continue
		}
		var qty string
		err := tx.QueryRowContext(ctx,
			`SELECT quantity FROM stock_items WHERE id = ?`, *item.StockItemID).Scan(&qty)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading stock item %d: %w", *item.StockItemID, err)
		}
		onHand, err := decimal.NewFromString(qty)
		if err != nil {
			onHand = decimal.Zero
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE stock_items SET quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			onHand.Sub(item.Quantity).String(), *item.StockItemID); err != nil {
			return fmt.Errorf("updating stock item %d: %w", *item.StockItemID, err)
		}
	}
	return nil
}

func issueYear(issueDate *string) int {
	if issueDate != nil {
		if t, err := time.Parse("2006-01-02", *issueDate); err == nil {
			return t.Year()
		}
	}
	return time.Now().Year()
}
