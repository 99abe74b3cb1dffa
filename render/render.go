// Package render assembles paginated, print-ready HTML for business
// documents. Rendering is a pure function of the document, its computed
// tax result and the company settings; missing fields come out as blank
// placeholders so half-filled drafts still preview.
package render

import (
	"github.com/manojvns/billdesk/models"
	"github.com/manojvns/billdesk/paginate"
	"github.com/manojvns/billdesk/tax"
)

// Options controls the page geometry. Weights are in display lines.
type Options struct {
	PageCapacity int // line budget per page
	ReservedTail int // lines kept free on the final page for the totals block
	CharsPerLine int // wrap width used to weigh description text
}

// DefaultOptions matches an A4 item table.
var DefaultOptions = Options{
	PageCapacity: 22,
	ReservedTail: 7,
	CharsPerLine: 48,
}

// RowView is one formatted item-table line.
type RowView struct {
	SerialNo     int
	Description  string
	HSNCode      string
	Quantity     string
	UnitPrice    string
	TaxRate      string
	TaxableValue string
	CGST         string
	SGST         string
	Total        string
}

// TotalsView is the formatted summary block for the final page.
type TotalsView struct {
	TaxableValue string
	CGST         string
	SGST         string
	RoundOff     string
	GrandTotal   string
	AmountWords  string
}

// Page is one independently renderable page of the assembled document.
type Page struct {
	Number    int
	Count     int
	First     bool
	Last      bool
	Continued bool

	// Company is needed on the first page (header) and the last
	// (bank details, signature); it is set on every page.
	Company models.Settings

	// First page only.
	Title     string
	DocID     string
	Date      string
	Buyer     models.Party
	Consignee *models.Party

	Rows   []RowView
	HasTax bool

	// Final page only.
	Totals *TotalsView
}

var titles = map[string]string{
	models.TypeInvoice:       "TAX INVOICE",
	models.TypeQuotation:     "QUOTATION",
	models.TypePurchaseOrder: "PURCHASE ORDER",
	models.TypeWaybill:       "WAYBILL",
}

// BuildPages computes the tax result for a document and splits its rows
// across pages. The returned slice is empty only for a document with no
// rows at all.
func BuildPages(doc models.Document, settings models.Settings, opts Options) []Page {
	result := tax.Calculate(doc.Items, doc.Charges)
	return buildPages(doc, result, settings, opts)
}

func buildPages(doc models.Document, result tax.Result, settings models.Settings, opts Options) []Page {
	if opts.PageCapacity <= 0 {
		opts = DefaultOptions
	}
	places := settings.DecimalPlaces

	weighted := make([]paginate.Weighted[RowView], 0, len(result.Rows))
	for i, row := range result.Rows {
		weighted = append(weighted, paginate.Weighted[RowView]{
			Content: rowView(i+1, row, places),
			Weight:  paginate.WeightOf(row.Description, opts.CharsPerLine),
		})
	}
	rowPages := paginate.Split(weighted, opts.PageCapacity, opts.ReservedTail)
	if len(rowPages) == 0 {
		// A draft with no lines still assembles as a single page.
		rowPages = [][]RowView{nil}
	}

	title := titles[doc.Type]
	if doc.Type == models.TypeInvoice && !result.HasTax {
		title = "INVOICE"
	}

	issueDate := ""
	if doc.IssueDate != nil {
		issueDate = *doc.IssueDate
	}

	pages := make([]Page, 0, len(rowPages))
	for i, rows := range rowPages {
		p := Page{
			Number:    i + 1,
			Count:     len(rowPages),
			First:     i == 0,
			Last:      i == len(rowPages)-1,
			Continued: i < len(rowPages)-1,
			Rows:      rows,
			HasTax:    result.HasTax,
			Company:   settings,
		}
		if p.First {
			p.Title = title
			p.DocID = doc.ID
			p.Date = FormatDate(issueDate, settings.DateFormat)
			p.Buyer = doc.Buyer
			p.Consignee = doc.Consignee
		}
		if p.Last {
			p.Totals = totalsView(result, places)
		}
		pages = append(pages, p)
	}
	return pages
}

func rowView(serial int, row tax.Row, places int) RowView {
	v := RowView{
		SerialNo:     serial,
		Description:  row.Description,
		HSNCode:      row.HSNCode,
		TaxableValue: FormatMoney(row.TaxableValue, places),
		Total:        FormatMoney(row.Total, places),
	}
	if row.Quantity != nil {
		v.Quantity = row.Quantity.String()
	}
	if row.UnitPrice != nil {
		v.UnitPrice = FormatMoney(*row.UnitPrice, places)
	}
	if row.CGST != nil {
		v.TaxRate = row.TaxRate.String() + "%"
		v.CGST = FormatMoney(*row.CGST, places)
		v.SGST = FormatMoney(*row.SGST, places)
	}
	return v
}

func totalsView(result tax.Result, places int) *TotalsView {
	t := &TotalsView{
		TaxableValue: FormatMoney(result.Totals.TaxableValue, places),
		RoundOff:     FormatMoney(result.Totals.RoundOff, places),
		GrandTotal:   FormatMoney(result.Totals.GrandTotal, places),
		AmountWords:  tax.AmountInWords(result.Totals.GrandTotal),
	}
	if result.Totals.CGST != nil {
		t.CGST = FormatMoney(*result.Totals.CGST, places)
		t.SGST = FormatMoney(*result.Totals.SGST, places)
	}
	return t
}
