package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/manojvns/billdesk/models"
)

const stockSelectQuery = `SELECT id, name, hsn_code, unit_price, tax_rate, quantity, created_at, updated_at FROM stock_items`

func scanStockItem(scanner interface{ Scan(...any) error }) (models.StockItem, error) {
	var s models.StockItem
	err := scanner.Scan(&s.ID, &s.Name, &s.HSNCode, &s.UnitPrice, &s.TaxRate, &s.Quantity,
		&s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func getStockItemByID(id int) (models.StockItem, error) {
	return scanStockItem(DB.QueryRow(stockSelectQuery+" WHERE id = ?", id))
}

// ListStockItems lists all stock items
// @Summary      List stock items
// @Tags         stock
// @Produce      json
// @Param        search  query     string  false  "Search by name or HSN code"
// @Success      200     {object}  Response{data=[]models.StockItem}
// @Router       /stock [get]
// @Security     BasicAuth
func ListStockItems(w http.ResponseWriter, r *http.Request) {
	query := stockSelectQuery
	var args []any
	if search := r.URL.Query().Get("search"); search != "" {
		query += " WHERE name LIKE ? OR hsn_code LIKE ?"
		s := "%" + search + "%"
		args = append(args, s, s)
	}
	query += " ORDER BY name"

	rows, err := DB.Query(query, args...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	items := []models.StockItem{}
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		items = append(items, item)
	}
	writeJSON(w, http.StatusOK, items)
}

// GetStockItem retrieves a single stock item by ID
// @Summary      Get stock item
// @Tags         stock
// @Produce      json
// @Param        id   path      int  true  "Stock item ID"
// @Success      200  {object}  Response{data=models.StockItem}
// @Failure      404  {object}  Response{error=string}
// @Router       /stock/{id} [get]
// @Security     BasicAuth
func GetStockItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	item, err := getStockItemByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "stock item not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// CreateStockItem creates a new stock item
// @Summary      Create stock item
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        item  body      models.StockItemInput  true  "Stock item contents"
// @Success      201   {object}  Response{data=models.StockItem}
// @Failure      400   {object}  Response{error=string}
// @Router       /stock [post]
// @Security     BasicAuth
func CreateStockItem(w http.ResponseWriter, r *http.Request) {
	var input models.StockItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var id int
	err := DB.QueryRow(`INSERT INTO stock_items (name, hsn_code, unit_price, tax_rate, quantity)
		VALUES (?, ?, ?, ?, ?) RETURNING id`,
		input.Name, input.HSNCode, input.UnitPrice.String(), input.TaxRate.String(),
		input.Quantity.String()).Scan(&id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	item, err := getStockItemByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch created stock item: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// UpdateStockItem updates an existing stock item
// @Summary      Update stock item
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Stock item ID"
// @Param        item  body      models.StockItemInput  true  "Updated contents"
// @Success      200   {object}  Response{data=models.StockItem}
// @Failure      400   {object}  Response{error=string}
// @Failure      404   {object}  Response{error=string}
// @Router       /stock/{id} [put]
// @Security     BasicAuth
func UpdateStockItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var input models.StockItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	res, err := DB.Exec(`UPDATE stock_items SET name = ?, hsn_code = ?, unit_price = ?,
		tax_rate = ?, quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		input.Name, input.HSNCode, input.UnitPrice.String(), input.TaxRate.String(),
		input.Quantity.String(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		writeError(w, http.StatusNotFound, "stock item not found")
		return
	}
	item, err := getStockItemByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch updated stock item: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteStockItem deletes a stock item
// @Summary      Delete stock item
// @Tags         stock
// @Produce      json
// @Param        id   path      int  true  "Stock item ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /stock/{id} [delete]
// @Security     BasicAuth
func DeleteStockItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	res, err := DB.Exec("DELETE FROM stock_items WHERE id = ?", id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		writeError(w, http.StatusNotFound, "stock item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
