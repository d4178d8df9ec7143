package docs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/studi-app/studi-api/pkg/types"
)

// catalogFile is the YAML layout of an external catalog file.
type catalogFile struct {
	Categories []types.DocCategory `yaml:"categories"`
	Items      []types.DocItem     `yaml:"items"`
	Content    []types.DocContent  `yaml:"content"`
}

// LoadCatalogFile reads a catalog definition from a YAML file, replacing
// the built-in seed data entirely. Item category references are validated;
// content entries are not required to reference an item.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("docs: failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("docs: failed to parse catalog file: %w", err)
	}

	categoryIDs := make(map[string]bool, len(file.Categories))
	for _, category := range file.Categories {
		if category.ID == "" {
			return nil, fmt.Errorf("docs: category %q has no id", category.Name)
		}
		if categoryIDs[category.ID] {
			return nil, fmt.Errorf("docs: duplicate category id %q", category.ID)
		}
		categoryIDs[category.ID] = true
	}

	content := make(map[string]types.DocContent, len(file.Content))
	for _, entry := range file.Content {
		content[entry.ID] = entry
	}

	for _, item := range file.Items {
		if !categoryIDs[item.CategoryID] {
			return nil, fmt.Errorf("docs: item %q references unknown category %q", item.ID, item.CategoryID)
		}
	}

	return &Catalog{
		categories: file.Categories,
		items:      file.Items,
		content:    content,
	}, nil
}
