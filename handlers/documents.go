package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/manojvns/billdesk/models"
	"github.com/manojvns/billdesk/store"
	"github.com/manojvns/billdesk/tax"
)

// ListDocuments lists or searches documents
// @Summary      List documents
// @Description  Search documents by number, buyer, reference or notes. With limit set, returns the most recent documents of the given type.
// @Tags         documents
// @Produce      json
// @Param        type    query     string  false  "Document type"  Enums(invoice, quotation, purchase_order, waybill)
// @Param        search  query     string  false  "Free-text search"
// @Param        limit   query     int     false  "Return only the N most recent"
// @Success      200     {object}  Response{data=[]models.Document}
// @Router       /documents [get]
// @Security     BasicAuth
func ListDocuments(w http.ResponseWriter, r *http.Request) {
	docType := r.URL.Query().Get("type")
	search := r.URL.Query().Get("search")

	if l := r.URL.Query().Get("limit"); l != "" && docType != "" {
		limit, _ := strconv.Atoi(l)
		docs, err := Docs.Recent(r.Context(), docType, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, docs)
		return
	}

	docs, err := Docs.Search(r.Context(), search, docType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// GetDocument retrieves a single document by ID
// @Summary      Get document
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Document ID, e.g. INV-2026-00042"
// @Success      200  {object}  Response{data=models.Document}
// @Failure      404  {object}  Response{error=string}
// @Router       /documents/{id} [get]
// @Security     BasicAuth
func GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := Docs.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// CreateDocument creates a new document
// @Summary      Create document
// @Description  Validates the draft, computes GST totals, issues the next sequence number for the type and persists the document. The number is issued at save time, atomically with the insert.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        document  body      models.DocumentInput  true  "Document draft"
// @Success      201       {object}  Response{data=models.Document}
// @Failure      400       {object}  Response{error=string}
// @Router       /documents [post]
// @Security     BasicAuth
func CreateDocument(w http.ResponseWriter, r *http.Request) {
	var input models.DocumentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	settings, err := currentSettings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not save: "+err.Error())
		return
	}

	result := tax.Calculate(input.Items, input.Charges)
	doc, err := Docs.Create(r.Context(), input, result.Totals, settings.PrefixFor(input.Type))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not save: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

// UpdateDocument updates an existing document
// @Summary      Update document
// @Description  Replaces the editable fields and recomputes totals. The document keeps its number; updates never re-issue one.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id        path      string                true  "Document ID"
// @Param        document  body      models.DocumentInput  true  "Updated contents"
// @Success      200       {object}  Response{data=models.Document}
// @Failure      400       {object}  Response{error=string}
// @Failure      404       {object}  Response{error=string}
// @Router       /documents/{id} [put]
// @Security     BasicAuth
func UpdateDocument(w http.ResponseWriter, r *http.Request) {
	var input models.DocumentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	result := tax.Calculate(input.Items, input.Charges)
	doc, err := Docs.Update(r.Context(), chi.URLParam(r, "id"), input, result.Totals)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// DeleteDocument deletes a document
// @Summary      Delete document
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /documents/{id} [delete]
// @Security     BasicAuth
func DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := Docs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
