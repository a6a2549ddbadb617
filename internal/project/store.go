package project

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveJSON writes v to path as indented JSON, creating any missing parent
// directories first.
func saveJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// loadJSON reads path into v. A missing file surfaces as os.ErrNotExist so
// callers can substitute their defaults.
func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
