package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/studi-app/studi-api/internal/docs"
)

// DocHandlers contains HTTP handlers for the documentation catalog routes.
type DocHandlers struct {
	catalog *docs.Catalog
}

// NewDocHandlers creates a new DocHandlers instance.
func NewDocHandlers(catalog *docs.Catalog) *DocHandlers {
	return &DocHandlers{catalog: catalog}
}

// ListCategories handles GET /api/docs/categories - all categories in
// fixed order.
func (h *DocHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Categories())
}

// ListItems handles GET /api/docs/items?category_id= - all items, or only
// those in the given category. An unknown category yields an empty list.
func (h *DocHandlers) ListItems(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category_id")
	respondJSON(w, http.StatusOK, h.catalog.Items(categoryID))
}

// GetContent handles GET /api/docs/content/{doc_id} - the full content of
// a documentation item. Items without a content entry yield 404.
func (h *DocHandlers) GetContent(w http.ResponseWriter, r *http.Request) {
	docID := r.PathValue("doc_id")

	content, err := h.catalog.Content(docID)
	if err != nil {
		if errors.Is(err, docs.ErrNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("Document with ID %s not found", docID))
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, content)
}

// Search handles GET /api/docs/search?query= - case-insensitive substring
// search over item titles and summaries. An empty query matches all items.
func (h *DocHandlers) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	respondJSON(w, http.StatusOK, h.catalog.Search(query))
}
