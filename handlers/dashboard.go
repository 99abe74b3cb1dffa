package handlers

import (
	"net/http"
)

type dashboardData struct {
	TotalInvoices       int `json:"total_invoices"`
	TotalQuotations     int `json:"total_quotations"`
	TotalPurchaseOrders int `json:"total_purchase_orders"`
	TotalWaybills       int `json:"total_waybills"`
	TotalStockItems     int `json:"total_stock_items"`
	TotalEmployees      int `json:"total_employees"`

	InvoicedTotal float64 `json:"invoiced_total"` // sum of invoice grand totals

	RecentDocuments []map[string]any `json:"recent_documents"`
}

// GetDashboard retrieves dashboard summary statistics
// @Summary      Get dashboard
// @Description  Get per-type document counts, the invoiced total and the most recent documents.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  Response{data=dashboardData}
// @Router       /dashboard [get]
// @Security     BasicAuth
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	var d dashboardData

	DB.QueryRow("SELECT COUNT(*) FROM documents WHERE type = 'invoice'").Scan(&d.TotalInvoices)
	DB.QueryRow("SELECT COUNT(*) FROM documents WHERE type = 'quotation'").Scan(&d.TotalQuotations)
	DB.QueryRow("SELECT COUNT(*) FROM documents WHERE type = 'purchase_order'").Scan(&d.TotalPurchaseOrders)
	DB.QueryRow("SELECT COUNT(*) FROM documents WHERE type = 'waybill'").Scan(&d.TotalWaybills)
	DB.QueryRow("SELECT COUNT(*) FROM stock_items").Scan(&d.TotalStockItems)
	DB.QueryRow("SELECT COUNT(*) FROM employees").Scan(&d.TotalEmployees)

	DB.QueryRow(`SELECT COALESCE(SUM(CAST(json_extract(totals, '$.grand_total') AS REAL)), 0)
		FROM documents WHERE type = 'invoice'`).Scan(&d.InvoicedTotal)

	// Recent 5 documents of any type
	rows, err := DB.Query(`SELECT id, type, issue_date, json_extract(buyer, '$.name'),
		json_extract(totals, '$.grand_total')
		FROM documents ORDER BY created_at DESC LIMIT 5`)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var id, tp string
			var date, buyer, total *string
			rows.Scan(&id, &tp, &date, &buyer, &total)
			d.RecentDocuments = append(d.RecentDocuments, map[string]any{
				"id":          id,
				"type":        tp,
				"issue_date":  date,
				"buyer_name":  buyer,
				"grand_total": total,
			})
		}
	}
	if d.RecentDocuments == nil {
		d.RecentDocuments = []map[string]any{}
	}

	writeJSON(w, http.StatusOK, d)
}
