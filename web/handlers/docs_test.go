package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studi-app/studi-api/internal/docs"
	"github.com/studi-app/studi-api/pkg/types"
	"github.com/studi-app/studi-api/web/handlers"
)

func newDocsMux() *http.ServeMux {
	h := handlers.NewDocHandlers(docs.NewCatalog())
	mux := http.NewServeMux()
	mux.HandleFunc("/api/docs/categories", h.ListCategories)
	mux.HandleFunc("/api/docs/items", h.ListItems)
	mux.HandleFunc("/api/docs/content/{doc_id}", h.GetContent)
	mux.HandleFunc("/api/docs/search", h.Search)
	return mux
}

func getJSON(t *testing.T, mux *http.ServeMux, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func TestDocHandlers_ListCategories(t *testing.T) {
	mux := newDocsMux()

	var categories []types.DocCategory
	w := getJSON(t, mux, "/api/docs/categories", &categories)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, categories, 6)
	assert.Equal(t, "architecture", categories[0].ID)
}

func TestDocHandlers_ListItems(t *testing.T) {
	mux := newDocsMux()

	t.Run("all items", func(t *testing.T) {
		var items []types.DocItem
		getJSON(t, mux, "/api/docs/items", &items)
		assert.Len(t, items, 10)
	})

	t.Run("filtered", func(t *testing.T) {
		var items []types.DocItem
		getJSON(t, mux, "/api/docs/items?category_id=user-guides", &items)
		require.Len(t, items, 3)
		for _, item := range items {
			assert.Equal(t, "user-guides", item.CategoryID)
		}
	})

	t.Run("unknown category gives empty list", func(t *testing.T) {
		w := getJSON(t, mux, "/api/docs/items?category_id=bogus", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestDocHandlers_GetContent(t *testing.T) {
	mux := newDocsMux()

	t.Run("existing content", func(t *testing.T) {
		var content types.DocContent
		w := getJSON(t, mux, "/api/docs/content/architecture-overview", &content)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "architecture-overview", content.ID)
		assert.Contains(t, content.Content, "# Architecture Overview")
		assert.Len(t, content.TOC, 4)
	})

	t.Run("item without content entry", func(t *testing.T) {
		w := getJSON(t, mux, "/api/docs/content/memory-system", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t,
			fmt.Sprintf(`{"detail":"Document with ID %s not found"}`, "memory-system"),
			w.Body.String())
	})
}

func TestDocHandlers_Search(t *testing.T) {
	mux := newDocsMux()

	t.Run("case-insensitive match", func(t *testing.T) {
		var items []types.DocItem
		getJSON(t, mux, "/api/docs/search?query=ASSIGNMENT", &items)
		// No item mentions assignments in this catalog.
		assert.Empty(t, items)
	})

	t.Run("title and summary matches", func(t *testing.T) {
		var items []types.DocItem
		getJSON(t, mux, "/api/docs/search?query=api", &items)
		require.NotEmpty(t, items)
		assert.Equal(t, "api-overview", items[0].ID)
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		var items []types.DocItem
		getJSON(t, mux, "/api/docs/search?query=", &items)
		assert.Len(t, items, 10)
	})
}
