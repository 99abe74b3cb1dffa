package render

import (
	"fmt"
	"html/template"
	"strings"
)

// HTML renders the assembled pages as one HTML string, page 1..N
// concatenated in order. Each page is an independent block so the print
// service can break on .page boundaries.
func HTML(pages []Page) (string, error) {
	var b strings.Builder
	b.WriteString(htmlHead)
	for _, p := range pages {
		if err := pageTmpl.Execute(&b, p); err != nil {
			return "", fmt.Errorf("rendering page %d: %w", p.Number, err)
		}
	}
	b.WriteString(htmlFoot)
	return b.String(), nil
}

const htmlHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: sans-serif; font-size: 12px; margin: 0; }
.page { width: 190mm; min-height: 272mm; margin: 4mm auto; padding: 6mm; border: 1px solid #333; page-break-after: always; position: relative; }
.company h1 { margin: 0; font-size: 18px; }
.title { text-align: center; font-weight: bold; font-size: 14px; margin: 6px 0; }
.meta, .party { margin: 4px 0; }
table.items { width: 100%; border-collapse: collapse; margin-top: 6px; }
table.items th, table.items td { border: 1px solid #333; padding: 3px 5px; text-align: right; }
table.items th:nth-child(2), table.items td:nth-child(2) { text-align: left; }
.totals { margin-top: 8px; width: 100%; }
.totals td { padding: 2px 5px; text-align: right; }
.words { margin-top: 6px; font-style: italic; }
.bank { margin-top: 10px; font-size: 11px; }
.sign { margin-top: 28px; text-align: right; }
.continued { position: absolute; bottom: 6mm; right: 8mm; font-style: italic; }
.footer { margin-top: 14px; text-align: center; font-size: 10px; color: #444; }
</style>
</head>
<body>
`

const htmlFoot = "</body>\n</html>\n"

var pageTmpl = template.Must(template.New("page").Parse(`<div class="page">
{{- if .First}}
<div class="company">
<h1>{{.Company.CompanyName}}</h1>
<div>{{.Company.CompanyAddress}}</div>
<div>Phone: {{.Company.CompanyPhone}} &nbsp; GSTIN: {{.Company.CompanyGSTIN}}</div>
</div>
<div class="title">{{.Title}}</div>
<div class="meta">No: <b>{{.DocID}}</b> &nbsp; Date: {{.Date}}</div>
<div class="party">
<b>Billed To:</b> {{.Buyer.Name}}<br>
{{.Buyer.Address}}<br>
{{if .Buyer.GSTIN}}GSTIN: {{.Buyer.GSTIN}}{{end}} {{if .Buyer.Phone}}Phone: {{.Buyer.Phone}}{{end}}
</div>
{{- with .Consignee}}
<div class="party">
<b>Consignee:</b> {{.Name}}<br>
{{.Address}}<br>
{{if .GSTIN}}GSTIN: {{.GSTIN}}{{end}}
</div>
{{- end}}
{{- end}}
<table class="items">
<tr><th>#</th><th>Description</th><th>HSN/SAC</th><th>Qty</th><th>Rate</th>{{if .HasTax}}<th>Taxable</th><th>CGST</th><th>SGST</th>{{end}}<th>Amount</th></tr>
{{- range .Rows}}
<tr><td>{{.SerialNo}}</td><td>{{.Description}}</td><td>{{.HSNCode}}</td><td>{{.Quantity}}</td><td>{{.UnitPrice}}</td>{{if $.HasTax}}<td>{{.TaxableValue}}</td><td>{{.CGST}}</td><td>{{.SGST}}</td>{{end}}<td>{{.Total}}</td></tr>
{{- end}}
</table>
{{- with .Totals}}
<table class="totals">
<tr><td>Taxable Value</td><td>{{.TaxableValue}}</td></tr>
{{- if .CGST}}
<tr><td>CGST</td><td>{{.CGST}}</td></tr>
<tr><td>SGST</td><td>{{.SGST}}</td></tr>
{{- end}}
<tr><td>Round Off</td><td>{{.RoundOff}}</td></tr>
<tr><td><b>Grand Total</b></td><td><b>{{$.Company.CurrencySymbol}} {{.GrandTotal}}</b></td></tr>
</table>
<div class="words">{{.AmountWords}}</div>
{{- end}}
{{- if .Last}}
<div class="bank">
Bank: {{.Company.BankName}} &nbsp; A/c: {{.Company.BankAccount}} &nbsp; IFSC: {{.Company.BankIFSC}}
</div>
<div class="sign">For {{.Company.CompanyName}}<br><br><br>Authorised Signatory</div>
<div class="footer">This is a computer generated document.</div>
{{- end}}
{{- if .Continued}}
<div class="continued">Continued on next page...</div>
{{- end}}
</div>
`))
