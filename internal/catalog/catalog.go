// Package catalog loads the read-only career catalog.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/profile-engine/internal/schemas"
	"github.com/jonathan/profile-engine/internal/types"
)

//go:embed data/careers.json
var defaultCatalog []byte

// Catalog is a fixed list of career entries in catalog order. It is built once and
// then only read, so it can be shared between goroutines without locking.
type Catalog []types.CareerEntry

// LoadResult is a decoded catalog plus the rows that were rejected.
type LoadResult struct {
	Catalog  Catalog
	Rejected []error
}

type document struct {
	Careers []types.CareerEntry `json:"careers"`
}

// Default returns the catalog bundled with the binary.
func Default() (*LoadResult, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from a JSON file. An empty path selects the bundled catalog.
func Load(path string) (*LoadResult, error) {
	if path == "" {
		return Default()
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Parse(content)
}

// Parse decodes a catalog document. Rows that fail validation are left out and
// reported in Rejected; a duplicated id keeps its first occurrence.
func Parse(content []byte) (*LoadResult, error) {
	if err := schemas.Validate(schemas.CareerCatalog, content); err != nil {
		return nil, &LoadError{Message: "schema validation failed", Cause: err}
	}

	var doc document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{Message: "failed to unmarshal JSON", Cause: err}
	}

	result := &LoadResult{Catalog: make(Catalog, 0, len(doc.Careers))}
	seen := make(map[string]struct{}, len(doc.Careers))
	for i := range doc.Careers {
		entry := doc.Careers[i]
		if err := entry.Validate(); err != nil {
			if invalid, ok := err.(*types.InvalidCatalogEntryError); ok {
				invalid.Index = i
			}
			result.Rejected = append(result.Rejected, err)
			continue
		}
		if _, dup := seen[entry.ID]; dup {
			result.Rejected = append(result.Rejected, &types.InvalidCatalogEntryError{
				EntryID: entry.ID,
				Index:   i,
				Message: "duplicate id",
			})
			continue
		}
		seen[entry.ID] = struct{}{}
		result.Catalog = append(result.Catalog, entry)
	}
	return result, nil
}

// Find returns the entry with the given id.
func (c Catalog) Find(id string) (types.CareerEntry, bool) {
	for _, entry := range c {
		if entry.ID == id {
			return entry, true
		}
	}
	return types.CareerEntry{}, false
}
