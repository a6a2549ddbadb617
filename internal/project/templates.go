package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/CartonPack/internal/model"
)

// DefaultTemplatePath returns the default file path for the templates store,
// ~/.cartonpack/templates.json.
func DefaultTemplatePath() string {
	return filepath.Join(DefaultConfigDir(), "templates.json")
}

// SaveTemplates writes the template store to a JSON file.
func SaveTemplates(path string, store model.TemplateStore) error {
	return saveJSON(path, store)
}

// LoadTemplates reads a template store from a JSON file. A missing file is an
// empty store, not an error.
func LoadTemplates(path string) (model.TemplateStore, error) {
	var store model.TemplateStore
	if err := loadJSON(path, &store); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewTemplateStore(), nil
		}
		return model.TemplateStore{}, err
	}
	if store.Templates == nil {
		store.Templates = []model.JobTemplate{}
	}
	return store, nil
}

// LoadDefaultTemplates loads templates from the default path.
func LoadDefaultTemplates() (model.TemplateStore, error) {
	return LoadTemplates(DefaultTemplatePath())
}

// SaveDefaultTemplates saves templates to the default path.
func SaveDefaultTemplates(store model.TemplateStore) error {
	return SaveTemplates(DefaultTemplatePath(), store)
}
