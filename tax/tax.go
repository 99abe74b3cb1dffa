// Package tax computes GST totals for business documents. The combined
// rate on each line is split evenly into CGST and SGST, the intra-state
// convention: a single 18% line yields 9% CGST plus 9% SGST.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/manojvns/billdesk/models"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// Row is a single renderable line of the item table with its computed
// money columns. Quantity and UnitPrice are nil for flat charges; CGST
// and SGST are nil when the document as a whole carries no tax.
type Row struct {
	Description  string
	HSNCode      string
	Quantity     *decimal.Decimal
	UnitPrice    *decimal.Decimal
	TaxRate      decimal.Decimal
	TaxableValue decimal.Decimal
	CGST         *decimal.Decimal
	SGST         *decimal.Decimal
	Total        decimal.Decimal
}

// Result is the full outcome of a tax calculation.
type Result struct {
	Rows   []Row
	Totals models.DocumentTotals
	HasTax bool
}

// Calculate derives per-row and aggregate totals from line items and flat
// charges. A document is taxed iff at least one line carries a positive
// rate; otherwise tax columns are absent entirely, which is distinct from
// showing zero tax. The round-off is the signed correction that brings
// the grand total to a whole currency unit.
func Calculate(items []models.LineItem, charges []models.Charge) Result {
	hasTax := false
	for _, it := range items {
		if it.TaxRate.IsPositive() {
			hasTax = true
			break
		}
	}
	if !hasTax {
		for _, c := range charges {
			if c.TaxRate.IsPositive() {
				hasTax = true
				break
			}
		}
	}

	res := Result{HasTax: hasTax}
	var taxable, cgst, sgst, total decimal.Decimal

	for _, it := range items {
		qty, price := it.Quantity, it.UnitPrice
		row := buildRow(it.Description, it.HSNCode, qty.Mul(price), it.TaxRate, hasTax)
		row.Quantity = &qty
		row.UnitPrice = &price
		res.Rows = append(res.Rows, row)

		taxable = taxable.Add(row.TaxableValue)
		total = total.Add(row.Total)
		if hasTax {
			cgst = cgst.Add(*row.CGST)
			sgst = sgst.Add(*row.SGST)
		}
	}
	for _, c := range charges {
		row := buildRow(c.Description, "", c.Price, c.TaxRate, hasTax)
		res.Rows = append(res.Rows, row)

		taxable = taxable.Add(row.TaxableValue)
		total = total.Add(row.Total)
		if hasTax {
			cgst = cgst.Add(*row.CGST)
			sgst = sgst.Add(*row.SGST)
		}
	}

	// taxable + cgst + sgst and the running row-total sum are the same
	// exact decimal quantity; round-off is computed once against it.
	roundOff := total.Round(0).Sub(total)

	res.Totals = models.DocumentTotals{
		TaxableValue: taxable,
		RoundOff:     roundOff,
		GrandTotal:   total.Add(roundOff),
	}
	if hasTax {
		res.Totals.CGST = &cgst
		res.Totals.SGST = &sgst
	}
	return res
}

func buildRow(desc, hsn string, taxableValue, rate decimal.Decimal, hasTax bool) Row {
	row := Row{
		Description:  desc,
		HSNCode:      hsn,
		TaxRate:      rate,
		TaxableValue: taxableValue,
		Total:        taxableValue,
	}
	if !hasTax {
		return row
	}
	halfRate := rate.Div(two)
	cgst := taxableValue.Mul(halfRate).Div(hundred)
	sgst := taxableValue.Mul(halfRate).Div(hundred)
	row.CGST = &cgst
	row.SGST = &sgst
	row.Total = taxableValue.Add(cgst).Add(sgst)
	return row
}
