package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/manojvns/billdesk/models"
)

var testSettings = models.Settings{
	CompanyName:    "Kaveri Industries",
	CompanyAddress: "Plot 14, MIDC, Pune",
	CompanyGSTIN:   "29BBBBB1111B1Z6",
	BankName:       "SBI",
	BankAccount:    "1234567890",
	BankIFSC:       "SBIN0000123",
	DecimalPlaces:  2,
	DateFormat:     "DD/MM/YYYY",
	CurrencySymbol: "Rs.",
}

func testDoc(itemCount int) models.Document {
	date := "2026-08-30"
	doc := models.Document{
		ID:        "INV-2026-00042",
		Type:      models.TypeInvoice,
		IssueDate: &date,
		Buyer:     models.Party{Name: "Sharma Traders", Address: "Mumbai"},
	}
	for i := 0; i < itemCount; i++ {
		doc.Items = append(doc.Items, models.LineItem{
			Description: fmt.Sprintf("Item %d", i+1),
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.NewFromInt(100),
			TaxRate:     decimal.NewFromInt(18),
		})
	}
	return doc
}

func TestBuildPagesSinglePage(t *testing.T) {
	pages := BuildPages(testDoc(3), testSettings, DefaultOptions)
	require.Len(t, pages, 1)

	p := pages[0]
	require.True(t, p.First)
	require.True(t, p.Last)
	require.False(t, p.Continued)
	require.Equal(t, "TAX INVOICE", p.Title)
	require.Equal(t, "INV-2026-00042", p.DocID)
	require.Equal(t, "30/08/2026", p.Date)
	require.Len(t, p.Rows, 3)
	require.NotNil(t, p.Totals)
}

func TestBuildPagesMultiPage(t *testing.T) {
	pages := BuildPages(testDoc(30), testSettings, DefaultOptions)
	require.Greater(t, len(pages), 1)

	total := 0
	serial := 1
	for i, p := range pages {
		require.Equal(t, i+1, p.Number)
		require.Equal(t, len(pages), p.Count)
		require.Equal(t, i == 0, p.First)
		require.Equal(t, i == len(pages)-1, p.Last)
		require.Equal(t, i < len(pages)-1, p.Continued)

		// Header data only on page 1, totals only on the final page.
		if i == 0 {
			require.NotEmpty(t, p.Title)
			require.NotEmpty(t, p.DocID)
		} else {
			require.Empty(t, p.DocID)
		}
		if p.Last {
			require.NotNil(t, p.Totals)
		} else {
			require.Nil(t, p.Totals)
		}

		// Row order and completeness across the page split.
		for _, row := range p.Rows {
			require.Equal(t, serial, row.SerialNo)
			serial++
		}
		total += len(p.Rows)
	}
	require.Equal(t, 30, total)
}

func TestBuildPagesUntaxedHidesTaxColumns(t *testing.T) {
	doc := testDoc(2)
	for i := range doc.Items {
		doc.Items[i].TaxRate = decimal.Zero
	}
	pages := BuildPages(doc, testSettings, DefaultOptions)
	require.Len(t, pages, 1)

	p := pages[0]
	require.False(t, p.HasTax)
	require.Equal(t, "INVOICE", p.Title)
	for _, row := range p.Rows {
		require.Empty(t, row.CGST)
		require.Empty(t, row.SGST)
	}
	require.Empty(t, p.Totals.CGST)
	require.Empty(t, p.Totals.SGST)
}

func TestBuildPagesEmptyDraft(t *testing.T) {
	// A draft with no lines and no parties still assembles: one page,
	// blank placeholders, zero totals.
	pages := BuildPages(models.Document{Type: models.TypeQuotation}, models.Settings{}, DefaultOptions)
	require.Len(t, pages, 1)
	require.True(t, pages[0].First)
	require.True(t, pages[0].Last)
	require.Empty(t, pages[0].Rows)
	require.NotNil(t, pages[0].Totals)

	html, err := HTML(pages)
	require.NoError(t, err)
	require.Contains(t, html, "QUOTATION")
}

func TestHTMLOutput(t *testing.T) {
	pages := BuildPages(testDoc(30), testSettings, DefaultOptions)
	html, err := HTML(pages)
	require.NoError(t, err)

	require.Contains(t, html, "Kaveri Industries")
	require.Contains(t, html, "INV-2026-00042")
	require.Contains(t, html, "Sharma Traders")
	require.Contains(t, html, "Authorised Signatory")
	require.Contains(t, html, "Rupees")

	// Every page but the last carries the continuation marker.
	marks := strings.Count(html, "Continued on next page")
	require.Equal(t, len(pages)-1, marks)

	// The totals block appears exactly once.
	require.Equal(t, 1, strings.Count(html, "Grand Total"))
}

func TestLongDescriptionsWeighMore(t *testing.T) {
	// Ten items with very long descriptions must spread over more pages
	// than ten one-liners.
	long := testDoc(10)
	for i := range long.Items {
		long.Items[i].Description = strings.Repeat("very long description ", 20)
	}
	shortPages := BuildPages(testDoc(10), testSettings, DefaultOptions)
	longPages := BuildPages(long, testSettings, DefaultOptions)
	require.Greater(t, len(longPages), len(shortPages))
}
