package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/CartonPack/internal/model"
)

// DefaultCatalogPath returns the default file path for the carton catalog,
// ~/.cartonpack/catalog.json.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// SaveCatalog writes the catalog to the specified JSON file.
func SaveCatalog(path string, c model.Catalog) error {
	return saveJSON(path, c)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (model.Catalog, error) {
	var c model.Catalog
	if err := loadJSON(path, &c); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c = model.DefaultCatalog()
			return c, SaveCatalog(path, c)
		}
		return model.Catalog{}, err
	}
	return c, nil
}

// LoadOrCreateCatalog loads the catalog from the default path.
// If the file does not exist, it creates one with default entries.
func LoadOrCreateCatalog() (model.Catalog, string, error) {
	path := DefaultCatalogPath()
	c, err := LoadCatalog(path)
	return c, path, err
}

// ImportCatalog imports a catalog from a user-specified JSON file, merging it
// with the existing catalog. Presets with duplicate references are skipped.
func ImportCatalog(path string, existing model.Catalog) (model.Catalog, error) {
	var imported model.Catalog
	if err := loadJSON(path, &imported); err != nil {
		return existing, err
	}

	refs := make(map[string]bool, len(existing.Presets))
	for _, p := range existing.Presets {
		refs[p.Reference] = true
	}
	for _, p := range imported.Presets {
		if !refs[p.Reference] {
			existing.Presets = append(existing.Presets, p)
			refs[p.Reference] = true
		}
	}

	return existing, nil
}
