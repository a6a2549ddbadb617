package project

import (
	"fmt"
	"time"

	"github.com/piwi3910/CartonPack/internal/model"
)

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version   string                 `json:"version"`
	CreatedAt string                 `json:"created_at"`
	Config    model.AppConfig        `json:"config"`
	Catalog   model.Catalog          `json:"catalog"`
	Carriers  []model.CarrierProfile `json:"carriers"`
	Templates model.TemplateStore    `json:"templates"`
}

// ExportAllData exports all application data (config, catalog, custom
// carriers, and templates) to a single JSON file at the specified path.
func ExportAllData(exportPath string, backup BackupData) error {
	backup.Version = "1.0.0"
	backup.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := saveJSON(exportPath, backup); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained data.
// The caller is responsible for applying the imported state.
func ImportAllData(importPath string) (BackupData, error) {
	var backup BackupData
	if err := loadJSON(importPath, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	// Ensure RecentJobs is never nil
	if backup.Config.RecentJobs == nil {
		backup.Config.RecentJobs = []string{}
	}
	return backup, nil
}
