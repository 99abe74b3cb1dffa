// Package pdf renders assembled document pages to PDF for the save-as-PDF
// export mode. It consumes the same paginated pages as the HTML preview,
// so both outputs always break pages identically.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/manojvns/billdesk/render"
)

// Render produces an A4 portrait PDF, one gofpdf page per assembled page.
func Render(pages []render.Page) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 10)

	for _, p := range pages {
		doc.AddPage()
		writePage(doc, p)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writePage(doc *gofpdf.Fpdf, p render.Page) {
	if p.First {
		doc.SetFont("Arial", "B", 16)
		doc.CellFormat(190, 8, p.Company.CompanyName, "", 1, "C", false, 0, "")
		doc.SetFont("Arial", "", 9)
		doc.CellFormat(190, 5, p.Company.CompanyAddress, "", 1, "C", false, 0, "")
		doc.CellFormat(190, 5, "Phone: "+p.Company.CompanyPhone+"   GSTIN: "+p.Company.CompanyGSTIN, "", 1, "C", false, 0, "")
		doc.Ln(2)

		doc.SetFont("Arial", "B", 12)
		doc.CellFormat(190, 7, p.Title, "TB", 1, "C", false, 0, "")
		doc.SetFont("Arial", "", 9)
		doc.CellFormat(95, 6, "No: "+p.DocID, "", 0, "L", false, 0, "")
		doc.CellFormat(95, 6, "Date: "+p.Date, "", 1, "R", false, 0, "")

		doc.SetFont("Arial", "B", 9)
		doc.CellFormat(190, 5, "Billed To: "+p.Buyer.Name, "", 1, "L", false, 0, "")
		doc.SetFont("Arial", "", 9)
		doc.CellFormat(190, 5, p.Buyer.Address, "", 1, "L", false, 0, "")
		if p.Buyer.GSTIN != "" {
			doc.CellFormat(190, 5, "GSTIN: "+p.Buyer.GSTIN, "", 1, "L", false, 0, "")
		}
		if p.Consignee != nil {
			doc.SetFont("Arial", "B", 9)
			doc.CellFormat(190, 5, "Consignee: "+p.Consignee.Name, "", 1, "L", false, 0, "")
			doc.SetFont("Arial", "", 9)
			doc.CellFormat(190, 5, p.Consignee.Address, "", 1, "L", false, 0, "")
		}
		doc.Ln(2)
	}

	writeItemTable(doc, p)

	if p.Totals != nil {
		writeTotals(doc, p)
	}
	if p.Last {
		doc.Ln(4)
		doc.SetFont("Arial", "", 8)
		doc.CellFormat(190, 5, "Bank: "+p.Company.BankName+"   A/c: "+p.Company.BankAccount+"   IFSC: "+p.Company.BankIFSC, "", 1, "L", false, 0, "")
		doc.Ln(10)
		doc.SetFont("Arial", "", 9)
		doc.CellFormat(190, 5, "For "+p.Company.CompanyName, "", 1, "R", false, 0, "")
		doc.Ln(10)
		doc.CellFormat(190, 5, "Authorised Signatory", "", 1, "R", false, 0, "")
	}
	if p.Continued {
		doc.SetY(270)
		doc.SetFont("Arial", "I", 8)
		doc.CellFormat(190, 5, "Continued on next page...", "", 1, "R", false, 0, "")
	}
}

func writeItemTable(doc *gofpdf.Fpdf, p render.Page) {
	type col struct {
		width float64
		title string
	}
	var cols []col
	if p.HasTax {
		cols = []col{{8, "#"}, {52, "Description"}, {18, "HSN/SAC"}, {14, "Qty"}, {20, "Rate"}, {24, "Taxable"}, {18, "CGST"}, {18, "SGST"}, {18, "Amount"}}
	} else {
		cols = []col{{8, "#"}, {92, "Description"}, {20, "HSN/SAC"}, {18, "Qty"}, {26, "Rate"}, {26, "Amount"}}
	}

	doc.SetFont("Arial", "B", 8)
	for _, c := range cols {
		doc.CellFormat(c.width, 6, c.title, "1", 0, "C", false, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Arial", "", 8)
	for _, row := range p.Rows {
		var cells []string
		if p.HasTax {
			cells = []string{fmt.Sprint(row.SerialNo), row.Description, row.HSNCode,
				row.Quantity, row.UnitPrice, row.TaxableValue, row.CGST, row.SGST, row.Total}
		} else {
			cells = []string{fmt.Sprint(row.SerialNo), row.Description, row.HSNCode,
				row.Quantity, row.UnitPrice, row.Total}
		}
		for i, c := range cols {
			align := "R"
			if i == 1 {
				align = "L"
			}
			doc.CellFormat(c.width, 6, cells[i], "1", 0, align, false, 0, "")
		}
		doc.Ln(-1)
	}
}

func writeTotals(doc *gofpdf.Fpdf, p render.Page) {
	doc.Ln(2)
	line := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		doc.SetFont("Arial", style, 9)
		doc.CellFormat(150, 5, label, "", 0, "R", false, 0, "")
		doc.CellFormat(40, 5, value, "", 1, "R", false, 0, "")
	}
	line("Taxable Value", p.Totals.TaxableValue, false)
	if p.Totals.CGST != "" {
		line("CGST", p.Totals.CGST, false)
		line("SGST", p.Totals.SGST, false)
	}
	line("Round Off", p.Totals.RoundOff, false)
	line("Grand Total", p.Company.CurrencySymbol+" "+p.Totals.GrandTotal, true)

	doc.SetFont("Arial", "I", 8)
	doc.CellFormat(190, 5, p.Totals.AmountWords, "", 1, "L", false, 0, "")
}
