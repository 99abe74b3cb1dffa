package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/manojvns/billdesk/models"
	"github.com/manojvns/billdesk/pdf"
	"github.com/manojvns/billdesk/render"
	"github.com/manojvns/billdesk/store"
)

func loadForRender(w http.ResponseWriter, r *http.Request) (models.Document, models.Settings, bool) {
	doc, err := Docs.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return doc, models.Settings{}, false
	}
	settings, err := currentSettings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return doc, settings, false
	}
	return doc, settings, true
}

// GetDocumentHTML renders the paginated print preview
// @Summary      Document print preview
// @Description  Assembles the document into paginated, print-ready HTML. Page 1 carries the company header and parties, every page its slice of the item table, and the final page the totals block, amount in words, bank details and signature.
// @Tags         documents
// @Produce      html
// @Param        id   path      string  true  "Document ID"
// @Success      200  {string}  string
// @Failure      404  {object}  Response{error=string}
// @Router       /documents/{id}/html [get]
// @Security     BasicAuth
func GetDocumentHTML(w http.ResponseWriter, r *http.Request) {
	doc, settings, ok := loadForRender(w, r)
	if !ok {
		return
	}

	pages := render.BuildPages(doc, settings, render.DefaultOptions)
	html, err := render.HTML(pages)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// GetDocumentPDF exports the document as PDF
// @Summary      Document PDF export
// @Description  Renders the same paginated content as the HTML preview to an A4 PDF and serves it as a download named after the document ID.
// @Tags         documents
// @Produce      application/pdf
// @Param        id   path      string  true  "Document ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  Response{error=string}
// @Router       /documents/{id}/pdf [get]
// @Security     BasicAuth
func GetDocumentPDF(w http.ResponseWriter, r *http.Request) {
	doc, settings, ok := loadForRender(w, r)
	if !ok {
		return
	}

	pages := render.BuildPages(doc, settings, render.DefaultOptions)
	out, err := pdf.Render(pages)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.ID+`.pdf"`)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.Write(out)
}
