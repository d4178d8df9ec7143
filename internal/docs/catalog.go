// Package docs provides the static documentation catalog: categories,
// items, and content blobs, with a naive substring search. The catalog is
// loaded once at startup and immutable afterwards.
package docs

import (
	"errors"
	"strings"

	"github.com/studi-app/studi-api/pkg/types"
)

// ErrNotFound is returned when a document ID has no stored content. Note
// that the content table is a strict subset of the item table: a valid
// item ID without a content entry still yields ErrNotFound.
var ErrNotFound = errors.New("document not found")

// Catalog holds the documentation data. It is read-only after
// construction, so no locking is required.
type Catalog struct {
	categories []types.DocCategory
	items      []types.DocItem
	content    map[string]types.DocContent
}

// NewCatalog creates a catalog with the built-in seed data.
func NewCatalog() *Catalog {
	return seedCatalog()
}

// Categories returns all documentation categories in fixed order.
func (c *Catalog) Categories() []types.DocCategory {
	out := make([]types.DocCategory, len(c.categories))
	copy(out, c.categories)
	return out
}

// Items returns all documentation items, or only those in the given
// category when categoryID is non-empty. An unknown category ID yields an
// empty result, not an error.
func (c *Catalog) Items(categoryID string) []types.DocItem {
	out := make([]types.DocItem, 0, len(c.items))
	for _, item := range c.items {
		if categoryID == "" || item.CategoryID == categoryID {
			out = append(out, item)
		}
	}
	return out
}

// Content returns the stored content for a document ID, or ErrNotFound.
func (c *Catalog) Content(docID string) (*types.DocContent, error) {
	content, ok := c.content[docID]
	if !ok {
		return nil, ErrNotFound
	}
	return &content, nil
}

// Search returns the items whose title or summary contains the query,
// case-insensitively. The summary check is skipped for items without one.
// Results follow catalog insertion order with no ranking; an empty query
// matches every item.
func (c *Catalog) Search(query string) []types.DocItem {
	needle := strings.ToLower(query)
	out := make([]types.DocItem, 0, len(c.items))
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Title), needle) ||
			(item.Summary != "" && strings.Contains(strings.ToLower(item.Summary), needle)) {
			out = append(out, item)
		}
	}
	return out
}
